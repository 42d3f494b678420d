package marketanalysis

import (
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/utils"
)

const (
	lowCompetitionThreshold  = 5
	highCompetitionThreshold = 20
	highRatingThreshold      = 4.0
	lowRatingThreshold       = 3.5
)

const (
	InsightNoCompetitors   = "Nenhuma escola particular encontrada na região: oportunidade única de mercado"
	InsightLowCompetition  = "Baixa concorrência na região"
	InsightHighCompetition = "Alta concorrência na região: diferenciação é necessária"
	InsightHighRating      = "Concorrentes bem avaliados: o padrão de qualidade da região é alto"
	InsightLowRating       = "Concorrentes com avaliações baixas: oportunidade de se destacar pela qualidade"
	InsightPriceSensitive  = "Predomínio de escolas econômicas: mercado sensível a preço"
	InsightPremiumMarket   = "Predomínio de escolas caras: mercado premium"
)

// Summarize calcula os agregados da lista já filtrada. Não tem efeitos colaterais.
func Summarize(competitors []domain.Competitor) domain.MarketSummary {
	distribution := priceDistribution(competitors)
	averageRating, rated := averageRating(competitors)

	return domain.MarketSummary{
		TotalCompetitors:  len(competitors),
		AverageRating:     averageRating,
		PriceDistribution: distribution,
		Insights:          insights(len(competitors), averageRating, rated, distribution),
	}
}

// averageRating é a média apenas das notas presentes; sem notas devolve 0
func averageRating(competitors []domain.Competitor) (float64, int) {
	var sum float64
	var rated int

	for _, competitor := range competitors {
		if competitor.Rating == nil {
			continue
		}
		sum += *competitor.Rating
		rated++
	}

	if rated == 0 {
		return 0, 0
	}

	return utils.RoundWithTwoDecimalPlace(sum / float64(rated)), rated
}

// priceDistribution ignora concorrentes sem price_level
func priceDistribution(competitors []domain.Competitor) domain.PriceDistribution {
	var distribution domain.PriceDistribution

	for _, competitor := range competitors {
		if competitor.PriceLevel == nil {
			continue
		}

		switch level := *competitor.PriceLevel; {
		case level <= 1:
			distribution.Budget++
		case level == 2:
			distribution.Moderate++
		case level == 3:
			distribution.Expensive++
		default:
			distribution.Luxury++
		}
	}

	return distribution
}

// insights avalia cada regra de forma independente; várias podem disparar juntas
func insights(total int, average float64, rated int, distribution domain.PriceDistribution) []string {
	result := make([]string, 0)

	if total == 0 {
		result = append(result, InsightNoCompetitors)
	}
	if total < lowCompetitionThreshold {
		result = append(result, InsightLowCompetition)
	}
	if total > highCompetitionThreshold {
		result = append(result, InsightHighCompetition)
	}

	if rated > 0 {
		if average > highRatingThreshold {
			result = append(result, InsightHighRating)
		}
		if average < lowRatingThreshold {
			result = append(result, InsightLowRating)
		}
	}

	premium := distribution.Expensive + distribution.Luxury
	if distribution.Budget > premium {
		result = append(result, InsightPriceSensitive)
	}
	if premium > distribution.Budget {
		result = append(result, InsightPremiumMarket)
	}

	return result
}
