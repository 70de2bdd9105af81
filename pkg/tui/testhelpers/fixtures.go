package testhelpers

import (
	"fmt"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// Sample airports
var (
	LondonHeathrow = models.Airport{ICAO: "EGLL", IATA: "LHR", Name: "London Heathrow", City: "London", Region: "England", Country: "GB"}
	LondonGatwick  = models.Airport{ICAO: "EGKK", IATA: "LGW", Name: "London Gatwick", City: "Crawley", Region: "England", Country: "GB"}
	ParisOrly      = models.Airport{ICAO: "LFPO", IATA: "ORY", Name: "Paris Orly", City: "Paris", Region: "Ile-de-France", Country: "FR"}
	JFK            = models.Airport{ICAO: "KJFK", IATA: "JFK", Name: "John F Kennedy International", City: "New York", Region: "New-York", Country: "US"}
)

// EuropeanAirports is a small mixed result set
func EuropeanAirports() []models.Airport {
	return []models.Airport{LondonHeathrow, LondonGatwick, ParisOrly}
}

// ManyAirports returns n airports in one city so every query on the city
// matches all of them
func ManyAirports(n int, city string) []models.Airport {
	out := make([]models.Airport, n)
	for i := range out {
		out[i] = models.Airport{
			ICAO:    fmt.Sprintf("X%03d", i),
			IATA:    fmt.Sprintf("X%02d", i),
			Name:    fmt.Sprintf("%s Field %d", city, i+1),
			City:    city,
			Country: "US",
		}
	}
	return out
}
