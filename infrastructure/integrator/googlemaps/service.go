package googlemaps

import (
	"context"
	"strings"

	"github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsclient"
	mapsdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsdomain"
	"github.com/vfg2006/school-portal-api/internal/config"
	"github.com/vfg2006/school-portal-api/internal/domain"
)

const (
	apiKeyPrefix    = "AIza"
	apiKeyMinLength = 39

	OperationGeocode      = "Geocoding API"
	OperationNearbySearch = "Places API"
)

// NearbySearchRequest descreve uma página da busca. PageToken vazio = primeira página.
type NearbySearchRequest struct {
	Center    domain.Coordinate
	Radius    int
	PageToken string
}

type NearbyPage struct {
	Competitors   []domain.Competitor
	NextPageToken string
}

type MapsIntegrator interface {
	ValidateAPIKey() error
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
	NearbySearch(ctx context.Context, request NearbySearchRequest) (*NearbyPage, error)
}

type MapsService struct {
	apiKey string
	Client mapsclient.Client
}

func New(cfg *config.Config, client mapsclient.Client) MapsIntegrator {
	return &MapsService{
		apiKey: cfg.GoogleMaps.APIKey,
		Client: client,
	}
}

// ValidateAPIKey checa a chave localmente, sem consumir cota da API
func (s *MapsService) ValidateAPIKey() error {
	key := strings.TrimSpace(s.apiKey)
	if key == "" {
		return ErrMissingAPIKey
	}

	if !strings.HasPrefix(key, apiKeyPrefix) || len(key) < apiKeyMinLength {
		return ErrInvalidAPIKeyFormat
	}

	return nil
}

// Geocode devolve a coordenada do primeiro resultado. Status diferente de OK ou
// lista vazia viram *StatusError; falhas de transporte são devolvidas como estão.
func (s *MapsService) Geocode(ctx context.Context, address string) (domain.Coordinate, error) {
	if err := s.ValidateAPIKey(); err != nil {
		return domain.Coordinate{}, err
	}

	resp, err := s.Client.Geocode(ctx, mapsclient.GeocodeParams{Address: address})
	if err != nil {
		return domain.Coordinate{}, err
	}

	if resp.Status != mapsdomain.StatusOK || len(resp.Results) == 0 {
		return domain.Coordinate{}, &StatusError{
			Operation: OperationGeocode,
			Status:    resp.Status,
			Message:   resp.ErrorMessage,
		}
	}

	location := resp.Results[0].Geometry.Location
	return domain.Coordinate{Lat: location.Lat, Lng: location.Lng}, nil
}

// NearbySearch busca uma página de escolas. ZERO_RESULTS é uma página vazia válida.
func (s *MapsService) NearbySearch(ctx context.Context, request NearbySearchRequest) (*NearbyPage, error) {
	if err := s.ValidateAPIKey(); err != nil {
		return nil, err
	}

	resp, err := s.Client.NearbySearch(ctx, mapsclient.NearbySearchParams{
		Lat:       request.Center.Lat,
		Lng:       request.Center.Lng,
		Radius:    request.Radius,
		PageToken: request.PageToken,
	})
	if err != nil {
		return nil, err
	}

	switch resp.Status {
	case mapsdomain.StatusOK:
	case mapsdomain.StatusZeroResults:
		return &NearbyPage{Competitors: []domain.Competitor{}}, nil
	default:
		return nil, &StatusError{
			Operation: OperationNearbySearch,
			Status:    resp.Status,
			Message:   resp.ErrorMessage,
		}
	}

	competitors := make([]domain.Competitor, 0, len(resp.Results))
	for _, place := range resp.Results {
		competitors = append(competitors, toCompetitor(place))
	}

	return &NearbyPage{
		Competitors:   competitors,
		NextPageToken: resp.NextPageToken,
	}, nil
}

func toCompetitor(place mapsdomain.PlaceResult) domain.Competitor {
	return domain.Competitor{
		PlaceID:          place.PlaceID,
		Name:             place.Name,
		Vicinity:         place.Vicinity,
		Rating:           place.Rating,
		UserRatingsTotal: place.UserRatingsTotal,
		PriceLevel:       place.PriceLevel,
		Location: domain.Coordinate{
			Lat: place.Geometry.Location.Lat,
			Lng: place.Geometry.Location.Lng,
		},
	}
}
