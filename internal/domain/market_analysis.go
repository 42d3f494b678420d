package domain

import "time"

// Coordinate é um par latitude/longitude
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Competitor é uma escola concorrente retornada pela busca de lugares próximos.
// Rating, UserRatingsTotal e PriceLevel são opcionais na API de mapas.
type Competitor struct {
	PlaceID          string     `json:"place_id"`
	Name             string     `json:"name"`
	Vicinity         string     `json:"vicinity"`
	Rating           *float64   `json:"rating,omitempty"`
	UserRatingsTotal *int       `json:"user_ratings_total,omitempty"`
	PriceLevel       *int       `json:"price_level,omitempty"`
	Location         Coordinate `json:"location"`
}

// PriceDistribution é o histograma de 4 faixas de price_level
type PriceDistribution struct {
	Budget    int `json:"budget"`    // níveis 0 e 1
	Moderate  int `json:"moderate"`  // nível 2
	Expensive int `json:"expensive"` // nível 3
	Luxury    int `json:"luxury"`    // nível 4
}

// Total soma as quatro faixas
func (p PriceDistribution) Total() int {
	return p.Budget + p.Moderate + p.Expensive + p.Luxury
}

type MarketSummary struct {
	TotalCompetitors  int               `json:"total_competitors"`
	AverageRating     float64           `json:"average_rating"`
	PriceDistribution PriceDistribution `json:"price_distribution"`
	Insights          []string          `json:"insights"`
}

// MarketAnalysisSnapshot é o resultado persistido de uma execução do pipeline
type MarketAnalysisSnapshot struct {
	Competitors []Competitor  `json:"competitors"`
	Analysis    MarketSummary `json:"analysis"`
	Center      Coordinate    `json:"center"`
	Address     string        `json:"address,omitempty"`
	Radius      int           `json:"radius"`
	// Degraded indica que alguma página depois da primeira falhou e o resultado é parcial
	Degraded     bool      `json:"degraded"`
	PagesFetched int       `json:"pages_fetched"`
	ComputedAt   time.Time `json:"computed_at"`
}

// IsFresh indica se o snapshot ainda está dentro do TTL informado
func (s *MarketAnalysisSnapshot) IsFresh(now time.Time, ttl time.Duration) bool {
	if s == nil || s.ComputedAt.IsZero() {
		return false
	}

	return now.Sub(s.ComputedAt) < ttl
}

type MarketAnalysisRequest struct {
	Address string `json:"address"`
	Radius  int    `json:"radius,omitempty"`
}

type SchoolMarketAnalysisRequest struct {
	Address string `json:"address,omitempty"`
	Radius  int    `json:"radius,omitempty"`
	Force   bool   `json:"force,omitempty"`
}

type MarketAnalysisResponse struct {
	*MarketAnalysisSnapshot
	FromCache bool `json:"from_cache"`
	// Stale indica que o snapshot devolvido já passou do TTL
	Stale bool `json:"stale"`
}
