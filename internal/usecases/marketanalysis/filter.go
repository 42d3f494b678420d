package marketanalysis

import (
	"strings"

	"github.com/vfg2006/school-portal-api/internal/domain"
)

// publicInstitutionKeywords identifica escolas públicas/governamentais pelo nome
var publicInstitutionKeywords = []string{
	"municipal",
	"estadual",
	"federal",
	"emef",
	"emei",
	"emeb",
	"e.e.",
	"etec",
	"fatec",
	"prefeitura",
	"governo",
	"pública",
	"publica",
	"instituto federal",
	"secretaria de educação",
}

// IsPublicInstitution indica se o nome contém alguma palavra da denylist
func IsPublicInstitution(name string) bool {
	lowered := strings.ToLower(name)
	for _, keyword := range publicInstitutionKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// FilterPrivateSchools mantém, na ordem original, apenas as escolas que não casam com a denylist
func FilterPrivateSchools(competitors []domain.Competitor) []domain.Competitor {
	filtered := make([]domain.Competitor, 0, len(competitors))
	for _, competitor := range competitors {
		if IsPublicInstitution(competitor.Name) {
			continue
		}
		filtered = append(filtered, competitor)
	}
	return filtered
}
