package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
	"github.com/vfg2006/school-portal-api/pkg/log"
)

const defaultMaxConcurrentJobs = 2

// MarketAnalysisRefreshConfig representa a configuração do agendador de atualização das análises
type MarketAnalysisRefreshConfig struct {
	CronSchedule      string
	RequestDelay      time.Duration
	MaxConcurrentJobs int
	CacheTTL          time.Duration
	Enabled           bool
}

// RefreshSummary resume a última execução
type RefreshSummary struct {
	Schools   int `json:"schools"`
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// MarketAnalysisRefreshService recalcula as análises de mercado ausentes ou vencidas
type MarketAnalysisRefreshService struct {
	scheduler  *gocron.Scheduler
	config     MarketAnalysisRefreshConfig
	schoolRepo repository.SchoolRepository
	analyzer   marketanalysis.Analyzer
	wait       marketanalysis.Waiter
	now        func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         RefreshSummary
}

func NewMarketAnalysisRefreshService(
	schoolRepo repository.SchoolRepository,
	analyzer marketanalysis.Analyzer,
	appConfig *config.Config,
) *MarketAnalysisRefreshService {
	refreshConfig := MarketAnalysisRefreshConfig{
		CronSchedule:      appConfig.MarketAnalysisRefresh.CronSchedule,
		RequestDelay:      time.Duration(appConfig.MarketAnalysisRefresh.RequestDelaySeconds) * time.Second,
		MaxConcurrentJobs: appConfig.MarketAnalysisRefresh.MaxConcurrentJobs,
		CacheTTL:          appConfig.MarketAnalysis.CacheTTL,
		Enabled:           appConfig.MarketAnalysisRefresh.Enabled,
	}

	if refreshConfig.MaxConcurrentJobs <= 0 {
		refreshConfig.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}
	if refreshConfig.CacheTTL <= 0 {
		refreshConfig.CacheTTL = marketanalysis.DefaultCacheTTL
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       refreshConfig.CronSchedule,
		"request_delay":       refreshConfig.RequestDelay.String(),
		"max_concurrent_jobs": refreshConfig.MaxConcurrentJobs,
		"cache_ttl":           refreshConfig.CacheTTL.String(),
		"enabled":             refreshConfig.Enabled,
	}).Info("Configuração do agendador de análises de mercado carregada")

	return &MarketAnalysisRefreshService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     refreshConfig,
		schoolRepo: schoolRepo,
		analyzer:   analyzer,
		wait:       marketanalysis.SleepWaiter,
		now:        time.Now,
	}
}

// Start agenda a atualização e para o agendador quando o contexto for cancelado
func (s *MarketAnalysisRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Atualização de análises de mercado desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de análises de mercado")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshStaleAnalyses(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de análises de mercado: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de análises de mercado")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshStaleAnalyses é protegido por syncRunning: execuções sobrepostas são ignoradas
func (s *MarketAnalysisRefreshService) refreshStaleAnalyses(ctx context.Context) {
	if !s.acquire() {
		log.L.Info("Atualização de análises de mercado já em andamento, ignorando")
		return
	}
	defer s.release()

	s.run(ctx)
}

func (s *MarketAnalysisRefreshService) run(ctx context.Context) RefreshSummary {
	ctx, _ = log.WithCorrelationID(ctx, "")
	logger := log.ForContext(ctx)

	startTime := s.now()
	s.syncMutex.Lock()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	schools, err := s.schoolRepo.ListWithStaleMarketAnalysis(ctx, startTime.Add(-s.config.CacheTTL))
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar escolas com análise de mercado vencida")
		return RefreshSummary{}
	}

	summary := RefreshSummary{Schools: len(schools)}
	if len(schools) == 0 {
		logger.Info("Nenhuma escola com análise de mercado vencida")
		s.complete(summary)
		return summary
	}

	var (
		mu    sync.Mutex
		group errgroup.Group
	)
	group.SetLimit(s.config.MaxConcurrentJobs)

	for _, school := range schools {
		school := school
		group.Go(func() error {
			ok := s.refreshSchool(ctx, school)

			mu.Lock()
			if ok {
				summary.Refreshed++
			} else {
				summary.Failed++
			}
			mu.Unlock()

			// espaça as chamadas à API de mapas; cancelamento interrompe o lote
			return s.wait(ctx, s.config.RequestDelay)
		})
	}

	if err := group.Wait(); err != nil {
		logger.WithError(err).Warn("Atualização de análises de mercado interrompida")
	}

	logger.WithFields(log.Fields{
		"duration":  s.now().Sub(startTime).String(),
		"schools":   summary.Schools,
		"refreshed": summary.Refreshed,
		"failed":    summary.Failed,
	}).Info("Atualização de análises de mercado concluída")

	s.complete(summary)
	return summary
}

func (s *MarketAnalysisRefreshService) refreshSchool(ctx context.Context, school *domain.School) bool {
	logger := log.ForContext(ctx).WithField("school_id", school.ID)

	if ctx.Err() != nil {
		return false
	}

	_, err := s.analyzer.AnalyzeSchool(ctx, school.ID, domain.SchoolMarketAnalysisRequest{Force: true})
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar análise de mercado da escola")
		return false
	}

	logger.Debug("Análise de mercado atualizada")
	return true
}

func (s *MarketAnalysisRefreshService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

func (s *MarketAnalysisRefreshService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

func (s *MarketAnalysisRefreshService) complete(summary RefreshSummary) {
	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.lastSummary = summary
	s.syncMutex.Unlock()
}

// TriggerManualSync dispara uma atualização em segundo plano. Retorna false se já houver uma em andamento.
func (s *MarketAnalysisRefreshService) TriggerManualSync() bool {
	if !s.acquire() {
		log.L.Info("Atualização de análises de mercado já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando atualização manual de análises de mercado")
	go func() {
		defer s.release()
		s.run(context.Background())
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *MarketAnalysisRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"max_concurrent":         s.config.MaxConcurrentJobs,
		"request_delay":          s.config.RequestDelay.String(),
		"cache_ttl":              s.config.CacheTTL.String(),
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}
