package marketanalysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps"
	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

const (
	DefaultRadius   = 10000 // metros
	MaxRadius       = 50000 // máximo aceito pela Places API
	DefaultCacheTTL = 24 * time.Hour
)

type Analyzer interface {
	Analyze(ctx context.Context, request domain.MarketAnalysisRequest) (*domain.MarketAnalysisSnapshot, error)
	AnalyzeSchool(ctx context.Context, schoolID string, request domain.SchoolMarketAnalysisRequest) (*domain.MarketAnalysisResponse, error)
	GetSchoolAnalysis(ctx context.Context, schoolID string) (*domain.MarketAnalysisResponse, error)
	ClearSchoolAnalysis(ctx context.Context, schoolID string) error
}

type Option func(*Service)

// WithWaiter substitui a espera entre páginas (testes usam um waiter instantâneo)
func WithWaiter(wait Waiter) Option {
	return func(s *Service) {
		s.waiter = wait
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	mapsService      googlemaps.MapsIntegrator
	schoolRepository repository.SchoolRepository
	search           *CompetitorSearch
	waiter           Waiter
	defaultRadius    int
	cacheTTL         time.Duration
	timeout          time.Duration
	pageDelay        time.Duration
	now              func() time.Time
}

// NewService recebe a configuração já carregada; a API key chega pelo integrador de mapas
func NewService(
	cfg *config.Config,
	mapsService googlemaps.MapsIntegrator,
	schoolRepository repository.SchoolRepository,
	opts ...Option,
) Analyzer {
	s := &Service{
		mapsService:      mapsService,
		schoolRepository: schoolRepository,
		waiter:           SleepWaiter,
		defaultRadius:    cfg.MarketAnalysis.DefaultRadius,
		cacheTTL:         cfg.MarketAnalysis.CacheTTL,
		timeout:          cfg.MarketAnalysis.Timeout,
		pageDelay:        cfg.MarketAnalysis.PageDelay,
		now:              time.Now,
	}

	if s.defaultRadius <= 0 {
		s.defaultRadius = DefaultRadius
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = DefaultCacheTTL
	}

	for _, opt := range opts {
		opt(s)
	}

	s.search = NewCompetitorSearch(mapsService, s.waiter, s.pageDelay)

	return s
}

func (s *Service) Analyze(ctx context.Context, request domain.MarketAnalysisRequest) (*domain.MarketAnalysisSnapshot, error) {
	return s.run(ctx, request.Address, request.Radius)
}

// AnalyzeSchool devolve o snapshot em cache quando ainda está no TTL e corresponde ao pedido;
// caso contrário executa o pipeline e sobrescreve o snapshot da escola
func (s *Service) AnalyzeSchool(ctx context.Context, schoolID string, request domain.SchoolMarketAnalysisRequest) (*domain.MarketAnalysisResponse, error) {
	school, err := s.getSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	if !request.Force && school.MarketAnalysis != nil && s.matchesCached(school.MarketAnalysis, request) && s.isFresh(school) {
		log.ForContext(ctx).WithField("school_id", schoolID).Debug("Análise de mercado servida do cache")
		return &domain.MarketAnalysisResponse{
			MarketAnalysisSnapshot: school.MarketAnalysis,
			FromCache:              true,
		}, nil
	}

	address := strings.TrimSpace(request.Address)
	if address == "" {
		address = school.FullAddress()
	}

	snapshot, err := s.run(ctx, address, request.Radius)
	if err != nil {
		return nil, err
	}

	if err := s.schoolRepository.SaveMarketAnalysis(ctx, school.ID, snapshot); err != nil {
		log.ForContext(ctx).WithError(err).WithField("school_id", school.ID).Error("Erro ao salvar análise de mercado")
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewAnalysisError(ErrSchoolNotFound, apiErrors.ErrNotFound, schoolID)
		}
		return nil, NewAnalysisError(ErrPersistAnalysis, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &domain.MarketAnalysisResponse{
		MarketAnalysisSnapshot: snapshot,
	}, nil
}

func (s *Service) GetSchoolAnalysis(ctx context.Context, schoolID string) (*domain.MarketAnalysisResponse, error) {
	school, err := s.getSchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	if school.MarketAnalysis == nil {
		return nil, NewAnalysisError(ErrNoAnalysis, apiErrors.ErrNotFound, schoolID)
	}

	return &domain.MarketAnalysisResponse{
		MarketAnalysisSnapshot: school.MarketAnalysis,
		FromCache:              true,
		Stale:                  !s.isFresh(school),
	}, nil
}

func (s *Service) ClearSchoolAnalysis(ctx context.Context, schoolID string) error {
	if err := s.schoolRepository.ClearMarketAnalysis(ctx, schoolID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewAnalysisError(ErrSchoolNotFound, apiErrors.ErrNotFound, schoolID)
		}
		return NewAnalysisError(ErrPersistAnalysis, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithField("school_id", schoolID).Info("Análise de mercado removida")
	return nil
}

func (s *Service) getSchool(ctx context.Context, schoolID string) (*domain.School, error) {
	school, err := s.schoolRepository.GetByID(ctx, schoolID)
	if err != nil {
		return nil, NewAnalysisError(ErrFetchSchool, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if school == nil {
		return nil, NewAnalysisError(ErrSchoolNotFound, apiErrors.ErrNotFound, schoolID)
	}
	return school, nil
}

// isFresh usa a coluna market_analysis_computed_at quando existir; snapshot sem data é sempre stale
func (s *Service) isFresh(school *domain.School) bool {
	snapshot := *school.MarketAnalysis
	if school.MarketAnalysisComputedAt != nil {
		snapshot.ComputedAt = *school.MarketAnalysisComputedAt
	}
	return snapshot.IsFresh(s.now(), s.cacheTTL)
}

// matchesCached indica se o pedido não pede outro endereço/raio além do que está em cache
func (s *Service) matchesCached(snapshot *domain.MarketAnalysisSnapshot, request domain.SchoolMarketAnalysisRequest) bool {
	if address := strings.TrimSpace(request.Address); address != "" && !strings.EqualFold(address, snapshot.Address) {
		return false
	}
	if request.Radius > 0 && request.Radius != snapshot.Radius {
		return false
	}
	return true
}

// run executa o pipeline e registra o resultado. Erros que não são AnalysisError
// são tratados como não previstos: logados com horário e tempo decorrido e devolvidos como 500.
func (s *Service) run(ctx context.Context, address string, radius int) (*domain.MarketAnalysisSnapshot, error) {
	startTime := s.now()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"address": address,
		"radius":  radius,
	})

	snapshot, err := s.compute(ctx, address, radius)
	elapsed := s.now().Sub(startTime)

	if err != nil {
		var analysisErr *AnalysisError
		if errors.As(err, &analysisErr) {
			logger.WithError(err).WithField("elapsed_ms", elapsed.Milliseconds()).Warn("Análise de mercado não concluída")
			return nil, err
		}

		logger.WithError(err).WithFields(log.Fields{
			"timestamp":  startTime.Format(time.RFC3339),
			"elapsed_ms": elapsed.Milliseconds(),
		}).Error("Erro não tratado na análise de mercado")

		details := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			details = fmt.Sprintf("timeout após %s: %s", elapsed.Round(time.Millisecond), details)
		}
		return nil, NewAnalysisError(ErrUnhandled, apiErrors.ErrInternalServer, details)
	}

	logger.WithFields(log.Fields{
		"competitors": snapshot.Analysis.TotalCompetitors,
		"pages":       snapshot.PagesFetched,
		"degraded":    snapshot.Degraded,
		"elapsed_ms":  elapsed.Milliseconds(),
	}).Info("Análise de mercado concluída")

	return snapshot, nil
}

func (s *Service) compute(ctx context.Context, address string, radius int) (*domain.MarketAnalysisSnapshot, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, NewAnalysisError(ErrMissingAddress, apiErrors.ErrMissingAddress, "Informe o endereço para a análise")
	}

	radius, err := s.normalizeRadius(radius)
	if err != nil {
		return nil, err
	}

	// falha rápido, sem consumir cota
	if err := s.mapsService.ValidateAPIKey(); err != nil {
		if keyErr, ok := apiKeyError(err); ok {
			return nil, keyErr
		}
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	center, err := s.mapsService.Geocode(ctx, address)
	if err != nil {
		return nil, geocodeError(err)
	}

	search, err := s.search.Run(ctx, center, radius)
	if err != nil {
		return nil, placesError(err)
	}

	competitors := FilterPrivateSchools(search.Competitors)

	return &domain.MarketAnalysisSnapshot{
		Competitors:  competitors,
		Analysis:     Summarize(competitors),
		Center:       center,
		Address:      address,
		Radius:       radius,
		Degraded:     search.Degraded,
		PagesFetched: search.PagesFetched,
		ComputedAt:   s.now().UTC(),
	}, nil
}

func (s *Service) normalizeRadius(radius int) (int, error) {
	if radius <= 0 {
		return s.defaultRadius, nil
	}
	if radius > MaxRadius {
		return 0, NewAnalysisError(ErrInvalidRadius, apiErrors.ErrInvalidRadius,
			fmt.Sprintf("O raio máximo é %d metros", MaxRadius))
	}
	return radius, nil
}

func apiKeyError(err error) (*AnalysisError, bool) {
	switch {
	case errors.Is(err, googlemaps.ErrMissingAPIKey):
		return NewAnalysisError(ErrMissingAPIKey, apiErrors.ErrMissingAPIKey, "Configure a API key da plataforma de mapas"), true
	case errors.Is(err, googlemaps.ErrInvalidAPIKeyFormat):
		return NewAnalysisError(ErrInvalidAPIKeyFormat, apiErrors.ErrInvalidAPIKeyFormat, "Verifique a API key da plataforma de mapas"), true
	}
	return nil, false
}

func geocodeError(err error) error {
	if keyErr, ok := apiKeyError(err); ok {
		return keyErr
	}

	var statusErr *googlemaps.StatusError
	if errors.As(err, &statusErr) {
		return NewAnalysisErrorWithStatus(ErrGeocodeFailed, apiErrors.ErrGeocodeFailed,
			"Endereço não encontrado, verifique os dados informados", statusErr.Status)
	}

	return err
}

// placesError trata a falha da primeira página; cancelamento segue como erro não previsto
func placesError(err error) error {
	if keyErr, ok := apiKeyError(err); ok {
		return keyErr
	}

	var statusErr *googlemaps.StatusError
	if errors.As(err, &statusErr) {
		return NewAnalysisErrorWithStatus(ErrPlacesAPI, apiErrors.ErrPlacesAPI, statusErr.Error(), statusErr.Status)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	return NewAnalysisError(ErrPlacesAPI, apiErrors.ErrPlacesAPI, err.Error())
}
