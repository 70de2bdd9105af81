package airports

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

type aviationstackResponse struct {
	Data []aviationstackAirport `json:"data"`
}

type aviationstackAirport struct {
	IATACode    string `json:"iata_code"`
	ICAOCode    string `json:"icao_code"`
	AirportName string `json:"airport_name"`
	CountryName string `json:"country_name"`
}

// aviationstackAdapter returns every known airport; the query is not sent
// and narrowing happens locally.
type aviationstackAdapter struct{}

func (aviationstackAdapter) name() string {
	return models.ProviderAviationstack
}

func (aviationstackAdapter) defaultEndpoint() string {
	return "https://api.aviationstack.com/v1/airports"
}

func (aviationstackAdapter) newRequest(ctx context.Context, endpoint, apiKey, _ string) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("access_key", apiKey)
	u.RawQuery = q.Encode()

	return http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
}

func (aviationstackAdapter) decode(body io.Reader) ([]models.Airport, error) {
	var resp aviationstackResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, err
	}

	airports := make([]models.Airport, len(resp.Data))
	for i, a := range resp.Data {
		airports[i] = models.Airport{
			ICAO:    a.ICAOCode,
			IATA:    a.IATACode,
			Name:    a.AirportName,
			Country: a.CountryName,
		}
	}
	return airports, nil
}
