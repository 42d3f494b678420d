package domain

import "time"

type BannerAudience string

const (
	BannerAudienceAll     BannerAudience = "all"
	BannerAudienceAdmin   BannerAudience = "admin"
	BannerAudienceManager BannerAudience = "manager"
	BannerAudienceUser    BannerAudience = "user"
)

func (a BannerAudience) IsValid() bool {
	switch a {
	case BannerAudienceAll, BannerAudienceAdmin, BannerAudienceManager, BannerAudienceUser:
		return true
	}
	return false
}

// AudienceForRole traduz o role do usuário para o público do banner
func AudienceForRole(roleID int) BannerAudience {
	switch roleID {
	case RoleAdmin:
		return BannerAudienceAdmin
	case RoleSchoolManager:
		return BannerAudienceManager
	default:
		return BannerAudienceUser
	}
}

// Banner é um aviso exibido nos dashboards. SchoolID nulo significa banner global.
type Banner struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	ImageURL  *string        `json:"image_url"`
	LinkURL   *string        `json:"link_url"`
	Audience  BannerAudience `json:"audience"`
	SchoolID  *string        `json:"school_id"`
	Active    bool           `json:"active"`
	StartsAt  time.Time      `json:"starts_at"`
	EndsAt    *time.Time     `json:"ends_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type BannerRequest struct {
	Title    *string         `json:"title,omitempty"`
	Message  *string         `json:"message,omitempty"`
	ImageURL *string         `json:"image_url,omitempty"`
	LinkURL  *string         `json:"link_url,omitempty"`
	Audience *BannerAudience `json:"audience,omitempty"`
	SchoolID *string         `json:"school_id,omitempty"`
	Active   *bool           `json:"active,omitempty"`
	StartsAt *time.Time      `json:"starts_at,omitempty"`
	EndsAt   *time.Time      `json:"ends_at,omitempty"`
}

type ActiveBannerFilters struct {
	Audience BannerAudience
	SchoolID *string
	At       time.Time
}
