package testhelpers

import (
	"context"
	"sync"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// FakeFetcher answers lookups from a fixed table and records every call.
// A lookup whose context is already cancelled returns the context error.
type FakeFetcher struct {
	mu      sync.Mutex
	Results map[string][]models.Airport
	Err     error
	Calls   []string
	CtxErrs []error
}

// NewFakeFetcher creates a fetcher answering from results
func NewFakeFetcher(results map[string][]models.Airport) *FakeFetcher {
	if results == nil {
		results = map[string][]models.Airport{}
	}
	return &FakeFetcher{Results: results}
}

func (f *FakeFetcher) Name() string {
	return "fake"
}

func (f *FakeFetcher) Lookup(ctx context.Context, query string) ([]models.Airport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, query)
	f.CtxErrs = append(f.CtxErrs, ctx.Err())
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Results[query], nil
}

// CallCount returns the number of lookups made
func (f *FakeFetcher) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}
