package domain

import (
	"strings"
	"time"
)

type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// School é o registro de customização de um tenant
type School struct {
	ID                       string                  `json:"id"`
	Name                     string                  `json:"name"`
	Slug                     string                  `json:"slug"`
	CNPJ                     *string                 `json:"cnpj"`
	Address                  Address                 `json:"address"`
	ContactEmail             *string                 `json:"contact_email"`
	LogoURL                  *string                 `json:"logo_url"`
	PrimaryColor             *string                 `json:"primary_color"`
	SecondaryColor           *string                 `json:"secondary_color"`
	WebsiteURL               *string                 `json:"website_url"`
	ERPURL                   *string                 `json:"erp_url"`
	LMSURL                   *string                 `json:"lms_url"`
	HelpdeskURL              *string                 `json:"helpdesk_url"`
	Active                   bool                    `json:"active"`
	MarketAnalysis           *MarketAnalysisSnapshot `json:"market_analysis"`
	MarketAnalysisComputedAt *time.Time              `json:"market_analysis_computed_at"`
	CreatedAt                time.Time               `json:"created_at"`
	UpdatedAt                time.Time               `json:"updated_at"`
}

// FullAddress monta o endereço postal em uma linha para geocodificação
func (s *School) FullAddress() string {
	street := strings.TrimSpace(s.Address.Street)
	if s.Address.Number != "" {
		street = strings.TrimSpace(street + " " + s.Address.Number)
	}

	parts := []string{street, s.Address.Neighborhood, s.Address.City, s.Address.State, s.Address.ZipCode}
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	return strings.Join(nonEmpty, ", ")
}

type SchoolFilters struct {
	Active *bool
}

type CreateSchoolRequest struct {
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	CNPJ           *string `json:"cnpj"`
	Address        Address `json:"address"`
	ContactEmail   *string `json:"contact_email"`
	LogoURL        *string `json:"logo_url"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	WebsiteURL     *string `json:"website_url"`
	ERPURL         *string `json:"erp_url"`
	LMSURL         *string `json:"lms_url"`
	HelpdeskURL    *string `json:"helpdesk_url"`
}

type UpdateSchoolRequest struct {
	ID             string   `json:"id"`
	Name           *string  `json:"name,omitempty"`
	CNPJ           *string  `json:"cnpj,omitempty"`
	Address        *Address `json:"address,omitempty"`
	ContactEmail   *string  `json:"contact_email,omitempty"`
	LogoURL        *string  `json:"logo_url,omitempty"`
	PrimaryColor   *string  `json:"primary_color,omitempty"`
	SecondaryColor *string  `json:"secondary_color,omitempty"`
	WebsiteURL     *string  `json:"website_url,omitempty"`
	ERPURL         *string  `json:"erp_url,omitempty"`
	LMSURL         *string  `json:"lms_url,omitempty"`
	HelpdeskURL    *string  `json:"helpdesk_url,omitempty"`
	Active         *bool    `json:"active,omitempty"`
}

// IsEmpty indica que nenhum campo foi informado para atualização
func (r *UpdateSchoolRequest) IsEmpty() bool {
	return r.Name == nil && r.CNPJ == nil && r.Address == nil && r.ContactEmail == nil &&
		r.LogoURL == nil && r.PrimaryColor == nil && r.SecondaryColor == nil &&
		r.WebsiteURL == nil && r.ERPURL == nil && r.LMSURL == nil && r.HelpdeskURL == nil &&
		r.Active == nil
}
