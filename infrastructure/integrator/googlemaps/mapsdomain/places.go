package mapsdomain

// PlaceResult é um item da Nearby Search. Campos opcionais vêm como ponteiro
// porque a API simplesmente omite rating/price_level quando não existem.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	PriceLevel       *int     `json:"price_level,omitempty"`
	Geometry         Geometry `json:"geometry"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	Types            []string `json:"types,omitempty"`
}

// NearbySearchResponse representa uma página da Nearby Search
type NearbySearchResponse struct {
	Results       []PlaceResult `json:"results"`
	Status        string        `json:"status"`
	NextPageToken string        `json:"next_page_token,omitempty"`
	ErrorMessage  string        `json:"error_message,omitempty"`
}
