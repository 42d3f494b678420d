package mapsclient

import (
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	mapsdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsdomain"
	"github.com/vfg2006/school-portal-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	DefaultPlacesURL  = "https://maps.googleapis.com/maps/api/place"
	DefaultLanguage   = "pt-BR"
	defaultRegion     = "br"
)

type Client interface {
	Geocode(ctx context.Context, params GeocodeParams) (*mapsdomain.GeocodeResponse, error)
	NearbySearch(ctx context.Context, params NearbySearchParams) (*mapsdomain.NearbySearchResponse, error)
}

// Option configura o client
type Option func(*MapsClient)

// WithHTTPClient substitui o http.Client padrão
func WithHTTPClient(hc *http.Client) Option {
	return func(c *MapsClient) {
		c.httpClient = hc
	}
}

// WithGeocodeURL sobrescreve o endpoint de geocoding (útil em testes)
func WithGeocodeURL(u string) Option {
	return func(c *MapsClient) {
		c.geocodeURL = u
	}
}

// WithPlacesURL sobrescreve a URL base da Places API
func WithPlacesURL(u string) Option {
	return func(c *MapsClient) {
		c.placesURL = u
	}
}

// WithRateLimit limita as requisições por segundo enviadas à plataforma de mapas
func WithRateLimit(rps float64) Option {
	return func(c *MapsClient) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

type MapsClient struct {
	httpClient *http.Client
	apiKey     string
	geocodeURL string
	placesURL  string
	language   string
	limiter    *rate.Limiter
}

// NewClient cria o client da plataforma de mapas a partir da configuração
func NewClient(cfg *config.Config, opts ...Option) Client {
	c := &MapsClient{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:     cfg.GoogleMaps.APIKey,
		geocodeURL: cfg.GoogleMaps.GeocodeURL,
		placesURL:  cfg.GoogleMaps.PlacesURL,
		language:   cfg.GoogleMaps.Language,
		limiter:    rate.NewLimiter(10, 10),
	}

	if c.geocodeURL == "" {
		c.geocodeURL = DefaultGeocodeURL
	}
	if c.placesURL == "" {
		c.placesURL = DefaultPlacesURL
	}
	if c.language == "" {
		c.language = DefaultLanguage
	}

	WithRateLimit(cfg.GoogleMaps.RequestsPerSecond)(c)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get executa um GET respeitando o rate limit e decodifica o corpo em out.
// Status HTTP diferente de 200 é erro; o status lógico da API fica a cargo do chamador.
func (c *MapsClient) get(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "rate limit da API de mapas")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return nil
}
