package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/school-portal-api/internal/api/handler/router"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ptr[T any](v T) *T { return &v }

var (
	adminClaims   = &domain.Claims{UserID: 1, UserEmail: "admin@portal.com", UserRoleID: domain.RoleAdmin}
	managerClaims = &domain.Claims{UserID: 2, UserEmail: "gestor@escola.com", UserRoleID: domain.RoleSchoolManager, UserSchoolID: ptr("SCH1")}
	userClaims    = &domain.Claims{UserID: 3, UserEmail: "aluno@escola.com", UserRoleID: domain.RoleUser, UserSchoolID: ptr("SCH1")}
)

// serve monta um router com as rotas informadas e injeta as claims como o AuthMiddleware faria
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	rec := serve(t, nil, nil, http.MethodGet, "/v1/nada", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "VAL_004", decodeBody(t, rec)["code"])

	routes := []router.Route{{
		Path:    "/v1/ping",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	}}
	rec = serve(t, routes, nil, http.MethodPost, "/v1/ping", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
