package cli

import (
	"fmt"
	"strings"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// ValidateOutputFormat validates an --output flag value
func ValidateOutputFormat(f string) error {
	switch OutputFormat(strings.ToLower(f)) {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", f)
}

// NormalizeProvider maps provider aliases to their canonical name
func NormalizeProvider(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "ninjas", "api-ninjas", "apininjas":
		return models.ProviderNinjas
	case "aviationstack", "aviation-stack":
		return models.ProviderAviationstack
	default:
		return strings.ToLower(strings.TrimSpace(p))
	}
}

// ValidateProvider validates a --provider flag value
func ValidateProvider(p string) error {
	switch NormalizeProvider(p) {
	case models.ProviderNinjas, models.ProviderAviationstack:
		return nil
	}
	return fmt.Errorf("invalid provider: %s (must be: %s or %s)", p, models.ProviderNinjas, models.ProviderAviationstack)
}
