package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles dos usuários do portal
const (
	RoleAdmin         = 1
	RoleSchoolManager = 2
	RoleUser          = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password,omitempty"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	SchoolID     *string    `json:"school_id"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Email     *string `json:"email"`
	Active    *bool   `json:"active"`
	RoleID    *int    `json:"role_id"`
	SchoolID  *string `json:"school_id"`
	AvatarURL *string `json:"avatar_url"`
	Deleted   *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserRoleID   int
	UserSchoolID *string
	jwt.RegisteredClaims
}

// IsAdmin indica se o usuário é administrador
func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}

// CanAccessSchool aplica o isolamento por tenant: administradores acessam tudo,
// os demais apenas a própria escola
func (c *Claims) CanAccessSchool(schoolID string) bool {
	if c == nil {
		return false
	}
	if c.IsAdmin() {
		return true
	}
	return c.UserSchoolID != nil && *c.UserSchoolID == schoolID
}
