// Package search holds the airport search state machine and the pure
// functions that narrow and window lookup results.
package search

import (
	"strings"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// DefaultPageSize is the number of rows shown before "show more"
const DefaultPageSize = 10

// FilterAirports returns the airports whose name, city, region or country
// contains query, ignoring case. Order is preserved and raw is not modified.
func FilterAirports(raw []models.Airport, query string) []models.Airport {
	q := strings.ToLower(query)
	filtered := make([]models.Airport, 0, len(raw))
	for _, a := range raw {
		if matches(a, q) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func matches(a models.Airport, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(a.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(a.City), lowerQuery) ||
		strings.Contains(strings.ToLower(a.Region), lowerQuery) ||
		strings.Contains(strings.ToLower(a.Country), lowerQuery)
}

// Window truncates filtered to pageSize entries unless expanded.
// A non-positive pageSize disables windowing.
func Window(filtered []models.Airport, expanded bool, pageSize int) []models.Airport {
	if expanded || pageSize <= 0 || len(filtered) <= pageSize {
		return filtered
	}
	return filtered[:pageSize]
}
