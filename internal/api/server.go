package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/school-portal-api/internal/api/handler"
	"github.com/vfg2006/school-portal-api/internal/api/handler/router"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/scheduler"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
	"github.com/vfg2006/school-portal-api/internal/usecases/school"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
	"github.com/vfg2006/school-portal-api/pkg/log"
	"github.com/vfg2006/school-portal-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator  authenticating.Authenticator
	Schools        school.SchoolService
	MarketAnalysis marketanalysis.Analyzer
	Banners        banner.BannerService
	Support        support.SupportService
	MarketRefresh  *scheduler.MarketAnalysisRefreshService
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	cronServices := handler.CronJobServices{}
	if services.MarketRefresh != nil {
		cronServices[handler.CronJobTypeMarketAnalysis] = services.MarketRefresh
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Schools(services.Schools)...),
		router.WithRoutes(handler.MarketAnalysis(services.MarketAnalysis)...),
		router.WithRoutes(handler.Banners(services.Banners)...),
		router.WithRoutes(handler.Support(services.Support)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	log.L.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usado nos testes de ponta a ponta
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
