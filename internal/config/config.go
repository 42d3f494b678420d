package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                   App                   `mapstructure:",squash"`
	Server                Server                `mapstructure:",squash"`
	Database              Database              `mapstructure:",squash"`
	Auth                  Auth                  `mapstructure:",squash"`
	Cors                  Cors                  `mapstructure:",squash"`
	GoogleMaps            GoogleMaps            `mapstructure:",squash"`
	MarketAnalysis        MarketAnalysis        `mapstructure:",squash"`
	MarketAnalysisRefresh MarketAnalysisRefresh `mapstructure:",squash"`
	Helpdesk              Helpdesk              `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	SecretKey     string        `mapstructure:"secret_key"`
	TokenDuration time.Duration `mapstructure:"auth_token_duration"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// GoogleMaps agrupa a chave e os endpoints da plataforma de mapas (geocoding + places)
type GoogleMaps struct {
	APIKey            string  `mapstructure:"google_maps_api_key"`
	GeocodeURL        string  `mapstructure:"google_maps_geocode_url"`
	PlacesURL         string  `mapstructure:"google_maps_places_url"`
	RequestsPerSecond float64 `mapstructure:"google_maps_requests_per_second"`
	Language          string  `mapstructure:"google_maps_language"`
}

type MarketAnalysis struct {
	DefaultRadius int           `mapstructure:"market_analysis_default_radius"`
	CacheTTL      time.Duration `mapstructure:"market_analysis_cache_ttl"`
	Timeout       time.Duration `mapstructure:"market_analysis_timeout"`
	PageDelay     time.Duration `mapstructure:"market_analysis_page_delay"`
}

type MarketAnalysisRefresh struct {
	CronSchedule        string `mapstructure:"market_analysis_refresh_cron"`
	RequestDelaySeconds int    `mapstructure:"market_analysis_refresh_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"market_analysis_refresh_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"market_analysis_refresh_enabled"`
}

type Helpdesk struct {
	URL     string        `mapstructure:"helpdesk_url"`
	Token   string        `mapstructure:"helpdesk_token"`
	Timeout time.Duration `mapstructure:"helpdesk_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/school_portal?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_DURATION", "24h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("GOOGLE_MAPS_API_KEY", "")
	viper.SetDefault("GOOGLE_MAPS_GEOCODE_URL", "https://maps.googleapis.com/maps/api/geocode/json")
	viper.SetDefault("GOOGLE_MAPS_PLACES_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("GOOGLE_MAPS_REQUESTS_PER_SECOND", 10)
	viper.SetDefault("GOOGLE_MAPS_LANGUAGE", "pt-BR")

	// Defaults da análise de mercado
	viper.SetDefault("MARKET_ANALYSIS_DEFAULT_RADIUS", 10000) // metros
	viper.SetDefault("MARKET_ANALYSIS_CACHE_TTL", "24h")
	viper.SetDefault("MARKET_ANALYSIS_TIMEOUT", "30s")
	viper.SetDefault("MARKET_ANALYSIS_PAGE_DELAY", "2s") // o page token do Places só fica válido após alguns segundos

	viper.SetDefault("MARKET_ANALYSIS_REFRESH_CRON", "0 2 * * 1")        // Segundas-feiras às 2h da manhã
	viper.SetDefault("MARKET_ANALYSIS_REFRESH_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre escolas
	viper.SetDefault("MARKET_ANALYSIS_REFRESH_MAX_CONCURRENT_JOBS", 2)   // 2 análises simultâneas
	viper.SetDefault("MARKET_ANALYSIS_REFRESH_ENABLED", false)           // Habilitar atualização automática

	viper.SetDefault("HELPDESK_URL", "https://api.helpdesk.example.com/v1")
	viper.SetDefault("HELPDESK_TOKEN", "")
	viper.SetDefault("HELPDESK_TIMEOUT", "20s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.GoogleMaps.APIKey == "" {
		logrus.Warn("GOOGLE_MAPS_API_KEY não configurada: a análise de mercado vai falhar até que seja definida")
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
