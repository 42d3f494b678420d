package marketanalysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps"
	mapsmocks "github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mocks"
	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/infrastructure/repository/mocks"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	maps    *mapsmocks.MockMapsIntegrator
	schools *mocks.MockSchoolRepository
	service Analyzer
}

func newFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.MarketAnalysis.DefaultRadius = 10000
	cfg.MarketAnalysis.CacheTTL = 24 * time.Hour
	cfg.MarketAnalysis.Timeout = 5 * time.Second

	f := &serviceFixture{
		maps:    mapsmocks.NewMockMapsIntegrator(ctrl),
		schools: mocks.NewMockSchoolRepository(ctrl),
	}
	f.service = NewService(cfg, f.maps, f.schools,
		WithWaiter(func(context.Context, time.Duration) error { return nil }),
		WithClock(func() time.Time { return fixedNow }),
	)
	return f
}

func assertAnalysisError(t *testing.T, err error, sentinel error, code string) *AnalysisError {
	t.Helper()

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, code, analysisErr.Code)
	return analysisErr
}

func TestAnalyze_Scenario(t *testing.T) {
	f := newFixture(t)
	coord := domain.Coordinate{Lat: -23.55, Lng: -46.63}

	f.maps.EXPECT().ValidateAPIKey().Return(nil)
	f.maps.EXPECT().Geocode(gomock.Any(), "Rua Exemplo 123, São Paulo").Return(coord, nil)
	f.maps.EXPECT().
		NearbySearch(gomock.Any(), googlemaps.NearbySearchRequest{Center: coord, Radius: DefaultRadius}).
		Return(&googlemaps.NearbyPage{Competitors: competitorsNamed("Colégio ABC", "EMEF José Silva", "Escola Municipal Maria")}, nil)

	snapshot, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua Exemplo 123, São Paulo"})
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.Analysis.TotalCompetitors)
	assert.Len(t, snapshot.Competitors, snapshot.Analysis.TotalCompetitors)
	assert.Equal(t, "Colégio ABC", snapshot.Competitors[0].Name)
	assert.Equal(t, coord, snapshot.Center)
	assert.Equal(t, DefaultRadius, snapshot.Radius)
	assert.Equal(t, fixedNow, snapshot.ComputedAt)
	assert.False(t, snapshot.Degraded)
	assert.Equal(t, 1, snapshot.PagesFetched)
}

func TestAnalyze_MissingAddress(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "   "})

	analysisErr := assertAnalysisError(t, err, ErrMissingAddress, apiErrors.ErrMissingAddress)
	assert.Equal(t, 400, apiErrors.StatusFor(analysisErr.Code))
}

func TestAnalyze_InvalidRadius(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua A", Radius: MaxRadius + 1})

	assertAnalysisError(t, err, ErrInvalidRadius, apiErrors.ErrInvalidRadius)
}

func TestAnalyze_APIKeyErrorsShortCircuit(t *testing.T) {
	tests := []struct {
		name     string
		keyErr   error
		sentinel error
		code     string
	}{
		{"chave ausente", googlemaps.ErrMissingAPIKey, ErrMissingAPIKey, apiErrors.ErrMissingAPIKey},
		{"formato inválido", googlemaps.ErrInvalidAPIKeyFormat, ErrInvalidAPIKeyFormat, apiErrors.ErrInvalidAPIKeyFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.maps.EXPECT().ValidateAPIKey().Return(tt.keyErr)
			f.maps.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)
			f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).Times(0)

			_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua A"})

			analysisErr := assertAnalysisError(t, err, tt.sentinel, tt.code)
			assert.Equal(t, 500, apiErrors.StatusFor(analysisErr.Code))
		})
	}
}

func TestAnalyze_UnresolvableAddressMakesNoNearbyCalls(t *testing.T) {
	f := newFixture(t)
	f.maps.EXPECT().ValidateAPIKey().Return(nil)
	f.maps.EXPECT().Geocode(gomock.Any(), "Lugar Nenhum").
		Return(domain.Coordinate{}, &googlemaps.StatusError{Operation: googlemaps.OperationGeocode, Status: "ZERO_RESULTS"})
	f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Lugar Nenhum"})

	analysisErr := assertAnalysisError(t, err, ErrGeocodeFailed, apiErrors.ErrGeocodeFailed)
	assert.Equal(t, "ZERO_RESULTS", analysisErr.Status)
	assert.Equal(t, 400, apiErrors.StatusFor(analysisErr.Code))
}

func TestAnalyze_FirstPageFailure(t *testing.T) {
	f := newFixture(t)
	f.maps.EXPECT().ValidateAPIKey().Return(nil)
	f.maps.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{Lat: 1, Lng: 1}, nil)
	f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).
		Return(nil, &googlemaps.StatusError{Operation: googlemaps.OperationNearbySearch, Status: "OVER_QUERY_LIMIT"})

	_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua A", Radius: 3000})

	analysisErr := assertAnalysisError(t, err, ErrPlacesAPI, apiErrors.ErrPlacesAPI)
	assert.Equal(t, "OVER_QUERY_LIMIT", analysisErr.Status)
	assert.Equal(t, 500, apiErrors.StatusFor(analysisErr.Code))
}

func TestAnalyze_LaterPageFailureIsDegraded(t *testing.T) {
	f := newFixture(t)
	f.maps.EXPECT().ValidateAPIKey().Return(nil)
	f.maps.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{Lat: 1, Lng: 1}, nil)
	gomock.InOrder(
		f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).
			Return(&googlemaps.NearbyPage{Competitors: competitorsNamed("Colégio A", "Colégio B"), NextPageToken: "t2"}, nil),
		f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")),
	)

	snapshot, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua A"})
	require.NoError(t, err)

	assert.True(t, snapshot.Degraded)
	assert.Equal(t, 2, snapshot.Analysis.TotalCompetitors)
	assert.Equal(t, 2, snapshot.PagesFetched)
}

func TestAnalyze_UnhandledError(t *testing.T) {
	f := newFixture(t)
	f.maps.EXPECT().ValidateAPIKey().Return(nil)
	f.maps.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{}, errors.New("dial tcp: i/o timeout"))

	_, err := f.service.Analyze(context.Background(), domain.MarketAnalysisRequest{Address: "Rua A"})

	analysisErr := assertAnalysisError(t, err, ErrUnhandled, apiErrors.ErrInternalServer)
	assert.Contains(t, analysisErr.Details, "i/o timeout")
}

func TestAnalyzeSchool_CacheHitMakesNoUpstreamCalls(t *testing.T) {
	f := newFixture(t)
	computedAt := fixedNow.Add(-2 * time.Hour)
	stored := &domain.MarketAnalysisSnapshot{
		Competitors: competitorsNamed("Colégio A"),
		Analysis:    domain.MarketSummary{TotalCompetitors: 1},
		Address:     "Rua A, 10",
		Radius:      DefaultRadius,
		ComputedAt:  computedAt,
	}
	f.schools.EXPECT().GetByID(gomock.Any(), "SCH1").Return(&domain.School{
		ID:                       "SCH1",
		MarketAnalysis:           stored,
		MarketAnalysisComputedAt: &computedAt,
	}, nil)
	f.maps.EXPECT().ValidateAPIKey().Times(0)
	f.maps.EXPECT().Geocode(gomock.Any(), gomock.Any()).Times(0)
	f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).Times(0)
	f.schools.EXPECT().SaveMarketAnalysis(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	response, err := f.service.AnalyzeSchool(context.Background(), "SCH1", domain.SchoolMarketAnalysisRequest{})
	require.NoError(t, err)

	assert.True(t, response.FromCache)
	assert.Same(t, stored, response.MarketAnalysisSnapshot)
}

func TestAnalyzeSchool_RecomputesWhenStaleOrForced(t *testing.T) {
	tests := []struct {
		name       string
		computedAt *time.Time
		snapshotAt time.Time
		request    domain.SchoolMarketAnalysisRequest
	}{
		{
			name:       "snapshot expirado",
			computedAt: ptrTime(fixedNow.Add(-25 * time.Hour)),
			request:    domain.SchoolMarketAnalysisRequest{},
		},
		{
			name:    "snapshot sem computed_at",
			request: domain.SchoolMarketAnalysisRequest{},
		},
		{
			name:       "force ignora o cache",
			computedAt: ptrTime(fixedNow.Add(-time.Minute)),
			request:    domain.SchoolMarketAnalysisRequest{Force: true},
		},
		{
			name:       "raio diferente do cache",
			computedAt: ptrTime(fixedNow.Add(-time.Minute)),
			snapshotAt: fixedNow.Add(-time.Minute),
			request:    domain.SchoolMarketAnalysisRequest{Radius: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			school := &domain.School{
				ID:      "SCH1",
				Address: domain.Address{Street: "Rua A", Number: "10", City: "São Paulo", State: "SP"},
				MarketAnalysis: &domain.MarketAnalysisSnapshot{
					Radius:     DefaultRadius,
					ComputedAt: tt.snapshotAt,
				},
				MarketAnalysisComputedAt: tt.computedAt,
			}
			coord := domain.Coordinate{Lat: -23.5, Lng: -46.6}

			f.schools.EXPECT().GetByID(gomock.Any(), "SCH1").Return(school, nil)
			f.maps.EXPECT().ValidateAPIKey().Return(nil)
			f.maps.EXPECT().Geocode(gomock.Any(), "Rua A 10, São Paulo, SP").Return(coord, nil)
			f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).
				Return(&googlemaps.NearbyPage{Competitors: competitorsNamed("Colégio Novo")}, nil)
			f.schools.EXPECT().SaveMarketAnalysis(gomock.Any(), "SCH1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, snapshot *domain.MarketAnalysisSnapshot) error {
					assert.Equal(t, fixedNow, snapshot.ComputedAt)
					assert.Equal(t, "Colégio Novo", snapshot.Competitors[0].Name)
					return nil
				})

			response, err := f.service.AnalyzeSchool(context.Background(), "SCH1", tt.request)
			require.NoError(t, err)

			assert.False(t, response.FromCache)
			assert.Equal(t, 1, response.Analysis.TotalCompetitors)
		})
	}
}

func TestAnalyzeSchool_Errors(t *testing.T) {
	t.Run("escola inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().GetByID(gomock.Any(), "X").Return(nil, nil)

		_, err := f.service.AnalyzeSchool(context.Background(), "X", domain.SchoolMarketAnalysisRequest{})
		assertAnalysisError(t, err, ErrSchoolNotFound, apiErrors.ErrNotFound)
	})

	t.Run("erro no banco", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().GetByID(gomock.Any(), "X").Return(nil, errors.New("db down"))

		_, err := f.service.AnalyzeSchool(context.Background(), "X", domain.SchoolMarketAnalysisRequest{})
		assertAnalysisError(t, err, ErrFetchSchool, apiErrors.ErrDatabaseOperation)
	})

	t.Run("escola sem endereço", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().GetByID(gomock.Any(), "X").Return(&domain.School{ID: "X"}, nil)

		_, err := f.service.AnalyzeSchool(context.Background(), "X", domain.SchoolMarketAnalysisRequest{})
		assertAnalysisError(t, err, ErrMissingAddress, apiErrors.ErrMissingAddress)
	})

	t.Run("falha ao persistir", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().GetByID(gomock.Any(), "X").Return(&domain.School{ID: "X"}, nil)
		f.maps.EXPECT().ValidateAPIKey().Return(nil)
		f.maps.EXPECT().Geocode(gomock.Any(), "Av. Paulista 1000").Return(domain.Coordinate{Lat: 1, Lng: 1}, nil)
		f.maps.EXPECT().NearbySearch(gomock.Any(), gomock.Any()).Return(&googlemaps.NearbyPage{}, nil)
		f.schools.EXPECT().SaveMarketAnalysis(gomock.Any(), "X", gomock.Any()).Return(errors.New("db down"))

		_, err := f.service.AnalyzeSchool(context.Background(), "X", domain.SchoolMarketAnalysisRequest{Address: "Av. Paulista 1000"})
		assertAnalysisError(t, err, ErrPersistAnalysis, apiErrors.ErrDatabaseOperation)
	})
}

func TestGetSchoolAnalysis(t *testing.T) {
	t.Run("sem análise", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().GetByID(gomock.Any(), "SCH1").Return(&domain.School{ID: "SCH1"}, nil)

		_, err := f.service.GetSchoolAnalysis(context.Background(), "SCH1")
		assertAnalysisError(t, err, ErrNoAnalysis, apiErrors.ErrNotFound)
	})

	t.Run("análise expirada é devolvida marcada como stale", func(t *testing.T) {
		f := newFixture(t)
		stored := &domain.MarketAnalysisSnapshot{ComputedAt: fixedNow.Add(-48 * time.Hour)}
		f.schools.EXPECT().GetByID(gomock.Any(), "SCH1").Return(&domain.School{ID: "SCH1", MarketAnalysis: stored}, nil)

		response, err := f.service.GetSchoolAnalysis(context.Background(), "SCH1")
		require.NoError(t, err)

		assert.Same(t, stored, response.MarketAnalysisSnapshot)
		assert.True(t, response.FromCache)
		assert.True(t, response.Stale)
	})

	t.Run("análise recente", func(t *testing.T) {
		f := newFixture(t)
		stored := &domain.MarketAnalysisSnapshot{ComputedAt: fixedNow.Add(-time.Hour)}
		f.schools.EXPECT().GetByID(gomock.Any(), "SCH1").Return(&domain.School{ID: "SCH1", MarketAnalysis: stored}, nil)

		response, err := f.service.GetSchoolAnalysis(context.Background(), "SCH1")
		require.NoError(t, err)
		assert.False(t, response.Stale)
	})
}

func TestClearSchoolAnalysis(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().ClearMarketAnalysis(gomock.Any(), "SCH1").Return(nil)

		assert.NoError(t, f.service.ClearSchoolAnalysis(context.Background(), "SCH1"))
	})

	t.Run("escola inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.schools.EXPECT().ClearMarketAnalysis(gomock.Any(), "X").Return(repository.ErrNotFound)

		err := f.service.ClearSchoolAnalysis(context.Background(), "X")
		assertAnalysisError(t, err, ErrSchoolNotFound, apiErrors.ErrNotFound)
	})
}

func ptrTime(t time.Time) *time.Time { return &t }
