package handler

import (
	"net/http"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

// CreateUserRequest recebe a senha em texto; o hash é gerado no caso de uso
type CreateUserRequest struct {
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	RoleID   int     `json:"role_id"`
	SchoolID *string `json:"school_id"`
}

// GetUser retorna informações do usuário por ID. Apenas administradores consultam outros usuários.
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intFromPath(w, r, "id")
		if !ok {
			return
		}

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		if !claims.IsAdmin() && claims.UserID != id {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a consultar outro usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
			SchoolID:     req.SchoolID,
		})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, user)
	}
}

// ListUsers lista os usuários; ?school_id= restringe a uma escola
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var schoolID *string
		if value := r.URL.Query().Get("school_id"); value != "" {
			schoolID = &value
		}

		users, err := service.ListUsers(r.Context(), schoolID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intFromPath(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = id

		if err := service.UpdateUser(r.Context(), &req); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
