package airports

import (
	"errors"
	"fmt"
)

// ErrLookupFailed matches every failed airport lookup via errors.Is
var ErrLookupFailed = errors.New("airport lookup failed")

// LookupError describes a failed request to an upstream provider
type LookupError struct {
	Provider   string
	Query      string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("%s lookup %q", e.Provider, e.Query)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLookupFailed
func (e *LookupError) Is(target error) bool {
	return target == ErrLookupFailed
}

func newLookupError(provider, query string, status int, err error) *LookupError {
	return &LookupError{
		Provider:   provider,
		Query:      query,
		StatusCode: status,
		Err:        err,
	}
}
