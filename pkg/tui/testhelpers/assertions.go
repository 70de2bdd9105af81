package testhelpers

import (
	"strings"
	"testing"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// AssertAirportNames checks the names of airports in order
func AssertAirportNames(t *testing.T, expected []string, actual []models.Airport) {
	t.Helper()

	if len(expected) != len(actual) {
		t.Errorf("Airport count mismatch: expected %d, got %d", len(expected), len(actual))
		return
	}
	for i, name := range expected {
		if actual[i].Name != name {
			t.Errorf("Airport name mismatch at index %d: expected %q, got %q", i, name, actual[i].Name)
		}
	}
}

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	if !strings.Contains(view, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	if strings.Contains(view, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, view)
	}
}
