package models

import (
	"fmt"
	"time"
)

// Lookup provider names
const (
	ProviderNinjas        = "ninjas"
	ProviderAviationstack = "aviationstack"
)

// Settings represents the application configuration
type Settings struct {
	Lookup LookupSettings `yaml:"lookup" json:"lookup"`
	UI     UISettings     `yaml:"ui" json:"ui"`
}

// LookupSettings controls the remote airport lookup
type LookupSettings struct {
	Provider  string            `yaml:"provider" json:"provider"` // "ninjas" or "aviationstack"
	Endpoint  string            `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	APIKey    string            `yaml:"api_key,omitempty" json:"api_key,omitempty"`
	Timeout   time.Duration     `yaml:"timeout" json:"timeout"`
	RateLimit RateLimitSettings `yaml:"rate_limit" json:"rate_limit"`
}

// RateLimitSettings bounds how fast keystrokes turn into requests
type RateLimitSettings struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// UISettings controls UI preferences
type UISettings struct {
	PageSize   int  `yaml:"page_size" json:"page_size"`
	ShowHeader bool `yaml:"show_header" json:"show_header"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Lookup: LookupSettings{
			Provider: ProviderNinjas,
			Timeout:  10 * time.Second,
			RateLimit: RateLimitSettings{
				RequestsPerSecond: 5,
				Burst:             10,
			},
		},
		UI: UISettings{
			PageSize:   10,
			ShowHeader: true,
		},
	}
}

// Validate reports the first invalid setting
func (s *Settings) Validate() error {
	switch s.Lookup.Provider {
	case ProviderNinjas, ProviderAviationstack:
	default:
		return fmt.Errorf("unknown lookup provider %q (expected %q or %q)",
			s.Lookup.Provider, ProviderNinjas, ProviderAviationstack)
	}
	if s.Lookup.Timeout < 0 {
		return fmt.Errorf("lookup timeout must not be negative, got %s", s.Lookup.Timeout)
	}
	if s.Lookup.RateLimit.RequestsPerSecond < 0 || s.Lookup.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if s.UI.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", s.UI.PageSize)
	}
	return nil
}
