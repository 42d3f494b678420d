package mapsdomain

// Status devolvidos pelas APIs de mapas
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Geometry struct {
	Location     LatLng `json:"location"`
	LocationType string `json:"location_type,omitempty"`
}

type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id"`
}

// GeocodeResponse representa a resposta da Geocoding API
type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}
