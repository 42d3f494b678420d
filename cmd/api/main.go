package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/school-portal-api/infrastructure/database/postgres"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsclient"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk"
	"github.com/vfg2006/school-portal-api/infrastructure/integrator/helpdesk/helpdeskclient"
	"github.com/vfg2006/school-portal-api/infrastructure/repository"
	"github.com/vfg2006/school-portal-api/internal/api"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/scheduler"
	"github.com/vfg2006/school-portal-api/internal/usecases/authenticating"
	"github.com/vfg2006/school-portal-api/internal/usecases/banner"
	"github.com/vfg2006/school-portal-api/internal/usecases/marketanalysis"
	"github.com/vfg2006/school-portal-api/internal/usecases/school"
	"github.com/vfg2006/school-portal-api/internal/usecases/support"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	schoolRepo := repository.NewSchoolRepository(pgConn)
	bannerRepo := repository.NewBannerRepository(pgConn)

	// A API key de mapas só é validada na primeira chamada: o portal sobe sem ela
	mapsIntegrator := googlemaps.New(cfg, mapsclient.NewClient(cfg))
	helpdeskIntegrator := helpdesk.New(helpdeskclient.NewClient(cfg))

	authenticator := authenticating.NewService(userRepo, cfg)
	schoolService := school.NewService(schoolRepo)
	analyzer := marketanalysis.NewService(cfg, mapsIntegrator, schoolRepo)
	bannerService := banner.NewService(bannerRepo)
	supportService := support.NewService(helpdeskIntegrator)

	marketRefreshService := scheduler.NewMarketAnalysisRefreshService(schoolRepo, analyzer, cfg)
	if err := marketRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análises de mercado")
	} else {
		logrus.Info("Agendador de análises de mercado configurado")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:  authenticator,
		Schools:        schoolService,
		MarketAnalysis: analyzer,
		Banners:        bannerService,
		Support:        supportService,
		MarketRefresh:  marketRefreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
