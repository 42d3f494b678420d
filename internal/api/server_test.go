package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/school-portal-api/internal/api"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
	authmocks "github.com/vfg2006/school-portal-api/internal/usecases/authenticating/mocks"
	bannermocks "github.com/vfg2006/school-portal-api/internal/usecases/banner/mocks"
	analysismocks "github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis/mocks"
	schoolmocks "github.com/vfg2006/school-portal-api/internal/usecases/school/mocks"
	supportmocks "github.com/vfg2006/school-portal-api/internal/usecases/support/mocks"
)

func newTestServer(t *testing.T) (*api.Server, *authmocks.MockAuthenticator, *analysismocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	analyzer := analysismocks.NewMockAnalyzer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:  authenticator,
		Schools:        schoolmocks.NewMockSchoolService(ctrl),
		MarketAnalysis: analyzer,
		Banners:        bannermocks.NewMockBannerService(ctrl),
		Support:        supportmocks.NewMockSupportService(ctrl),
	})
	require.NoError(t, err)

	return server, authenticator, analyzer
}

func TestServer_HealthcheckIsPublic(t *testing.T) {
	server, _, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestServer_RequiresBearerToken(t *testing.T) {
	server, authenticator, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/schools/SCH1/market-analysis", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	authenticator.EXPECT().ValidateToken("expirado").Return(nil, errors.New("token expirado"))

	req := httptest.NewRequest(http.MethodGet, "/v1/schools/SCH1/market-analysis", nil)
	req.Header.Set("Authorization", "Bearer expirado")
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ManagerReadsOwnSchoolAnalysis(t *testing.T) {
	server, authenticator, analyzer := newTestServer(t)
	schoolID := "SCH1"

	authenticator.EXPECT().
		ValidateToken("valido").
		Return(&domain.Claims{UserID: 2, UserRoleID: domain.RoleSchoolManager, UserSchoolID: &schoolID}, nil)
	analyzer.EXPECT().
		GetSchoolAnalysis(gomock.Any(), schoolID).
		Return(&domain.MarketAnalysisResponse{MarketAnalysisSnapshot: &domain.MarketAnalysisSnapshot{Radius: 10000}, FromCache: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/schools/SCH1/market-analysis", nil)
	req.Header.Set("Authorization", "Bearer valido")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"from_cache":true`)
}

func TestNew_RequiresAuthenticator(t *testing.T) {
	_, err := api.New(&config.Config{}, api.Services{})
	assert.Error(t, err)
}
