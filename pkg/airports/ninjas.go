package airports

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

type ninjasAirport struct {
	ICAO    string `json:"icao"`
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// ninjasAdapter filters server-side by name and authenticates with a header
type ninjasAdapter struct{}

func (ninjasAdapter) name() string {
	return models.ProviderNinjas
}

func (ninjasAdapter) defaultEndpoint() string {
	return "https://api.api-ninjas.com/v1/airports"
}

func (ninjasAdapter) newRequest(ctx context.Context, endpoint, apiKey, query string) (*http.Request, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("name", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		req.Header.Set("X-Api-Key", apiKey)
	}
	return req, nil
}

func (ninjasAdapter) decode(body io.Reader) ([]models.Airport, error) {
	var resp []ninjasAirport
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, err
	}

	airports := make([]models.Airport, len(resp))
	for i, a := range resp {
		airports[i] = models.Airport{
			ICAO:    a.ICAO,
			IATA:    a.IATA,
			Name:    a.Name,
			City:    a.City,
			Region:  a.Region,
			Country: a.Country,
		}
	}
	return airports, nil
}
