package handler

import (
	"net/http"

	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			// não revela se o email existe
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithError(err).Info("Falha de login")
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
				return
			}
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, user)
	}
}

// ChangePassword permite que o usuário altere apenas a própria senha
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, ok := intFromPath(w, r, "id")
		if !ok {
			return
		}

		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro usuário", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeServiceError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GeneratePassword redefine a senha de um usuário; a rota é restrita a administradores
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID, ok := intFromPath(w, r, "id")
		if !ok {
			return
		}

		newPassword, err := service.ResetPassword(r.Context(), targetUserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, GeneratePasswordResponse{
			Password: newPassword,
		})
	}
}
