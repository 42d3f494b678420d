package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleAdmin}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{"rota pública não exige token", "/healthcheck", "", stubValidator{}, http.StatusNoContent},
		{"sem header Authorization", "/v1/schools", "", stubValidator{}, http.StatusUnauthorized},
		{"header sem Bearer", "/v1/schools", "abc", stubValidator{}, http.StatusUnauthorized},
		{"token inválido", "/v1/schools", "Bearer abc", stubValidator{err: errors.New("invalid")}, http.StatusUnauthorized},
		{"token válido", "/v1/schools", "Bearer abc", stubValidator{claims: claims}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	schoolID := "SCH1"

	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{"sem claims", nil, AdminOnly(), http.StatusUnauthorized},
		{"admin em rota de admin", &domain.Claims{UserRoleID: domain.RoleAdmin}, AdminOnly(), http.StatusNoContent},
		{"gestor em rota de admin", &domain.Claims{UserRoleID: domain.RoleSchoolManager, UserSchoolID: &schoolID}, AdminOnly(), http.StatusForbidden},
		{"gestor em rota de gestor", &domain.Claims{UserRoleID: domain.RoleSchoolManager, UserSchoolID: &schoolID}, AdminOrManager(), http.StatusNoContent},
		{"usuário final em rota de gestor", &domain.Claims{UserRoleID: domain.RoleUser}, AdminOrManager(), http.StatusForbidden},
		{"usuário final em rota geral", &domain.Claims{UserRoleID: domain.RoleUser}, AllRoles(), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/anything", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/v1/schools", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/schools", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/schools", nil)
	req.Header.Set(log.CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(log.CorrelationIDHeader))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/schools", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
