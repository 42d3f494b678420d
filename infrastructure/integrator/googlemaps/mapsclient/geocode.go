package mapsclient

import (
	"context"
	"net/url"

	mapsdomain "github.com/vfg2006/school-portal-api/infrastructure/integrator/googlemaps/mapsdomain"
)

type GeocodeParams struct {
	Address string
}

func (c *MapsClient) Geocode(ctx context.Context, params GeocodeParams) (*mapsdomain.GeocodeResponse, error) {
	endpoint, err := url.Parse(c.geocodeURL)
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("address", params.Address)
	query.Set("key", c.apiKey)
	query.Set("language", c.language)
	query.Set("region", defaultRegion)
	endpoint.RawQuery = query.Encode()

	var response mapsdomain.GeocodeResponse
	if err := c.get(ctx, endpoint.String(), &response); err != nil {
		return nil, err
	}

	return &response, nil
}
