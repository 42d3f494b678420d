package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
	"github.com/vfg2006/school-portal-api/internal/usecases/school"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
	"github.com/vfg2006/school-portal-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError converte os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		analysisErr *marketanalysis.AnalysisError
		schoolErr   *school.SchoolError
		bannerErr   *banner.BannerError
		supportErr  *support.SupportError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &analysisErr):
		apiErrors.Write(w, apiErrors.APIError{
			Code:    analysisErr.Code,
			Message: analysisErr.Err.Error(),
			Details: detailsOrNil(analysisErr.Details),
			Status:  analysisErr.Status,
		})
	case errors.As(err, &schoolErr):
		apiErrors.WriteError(w, schoolErr.Code, schoolErr.Err.Error(), detailsOrNil(schoolErr.Details))
	case errors.As(err, &bannerErr):
		apiErrors.WriteError(w, bannerErr.Code, bannerErr.Err.Error(), detailsOrNil(bannerErr.Details))
	case errors.As(err, &supportErr):
		apiErrors.WriteError(w, supportErr.Code, supportErr.Err.Error(), detailsOrNil(supportErr.Details))
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), detailsOrNil(authErr.Details))
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não tratado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func detailsOrNil(details string) any {
	if details == "" {
		return nil
	}
	return details
}

func claimsOrUnauthorized(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// schoolFromPath lê o :id da rota e aplica o isolamento por escola
func schoolFromPath(w http.ResponseWriter, r *http.Request) (string, *domain.Claims, bool) {
	claims, ok := claimsOrUnauthorized(w, r)
	if !ok {
		return "", nil, false
	}

	schoolID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if schoolID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da escola não fornecido", nil)
		return "", nil, false
	}

	if !claims.CanAccessSchool(schoolID) {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"user_id":   claims.UserID,
			"school_id": schoolID,
		}).Warn("Acesso negado a escola de outro tenant")
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar esta escola", nil)
		return "", nil, false
	}

	return schoolID, claims, true
}

func intFromPath(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if value == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}

	return id, true
}
