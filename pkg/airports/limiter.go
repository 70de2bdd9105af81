package airports

import (
	"golang.org/x/time/rate"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// NewLimiter builds the request limiter shared by every lookup of one client.
// A zero rate disables limiting.
func NewLimiter(cfg models.RateLimitSettings) *rate.Limiter {
	if cfg.RequestsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
}
