package mapsclient

import (
	"context"
	"net/url"
	"strconv"

	mapsdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsdomain"
)

const (
	SchoolPlaceType = "school"
	SchoolKeyword   = "escola particular"
)

type NearbySearchParams struct {
	Lat       float64
	Lng       float64
	Radius    int
	PageToken string
}

// NearbySearch busca escolas ao redor de um ponto. Com PageToken apenas o token
// e a chave são enviados, como exige a API.
func (c *MapsClient) NearbySearch(ctx context.Context, params NearbySearchParams) (*mapsdomain.NearbySearchResponse, error) {
	endpoint, err := url.Parse(c.placesURL + "/nearbysearch/json")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if params.PageToken != "" {
		query.Set("pagetoken", params.PageToken)
	} else {
		query.Set("location", strconv.FormatFloat(params.Lat, 'f', -1, 64)+","+strconv.FormatFloat(params.Lng, 'f', -1, 64))
		query.Set("radius", strconv.Itoa(params.Radius))
		query.Set("type", SchoolPlaceType)
		query.Set("keyword", SchoolKeyword)
		query.Set("language", c.language)
	}
	query.Set("key", c.apiKey)
	endpoint.RawQuery = query.Encode()

	var response mapsdomain.NearbySearchResponse
	if err := c.get(ctx, endpoint.String(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}
