package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

func TestSetQueryBlankIsIdle(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		s, req := State{}.SetQuery(q)
		assert.Nil(t, req)
		assert.Equal(t, PhaseIdle, s.Phase)
		assert.Empty(t, s.Raw)
		assert.Equal(t, StatusPrompt, s.Status())
	}
}

func TestSetQueryIssuesOneRequest(t *testing.T) {
	s, req := State{}.SetQuery("Lon")
	require.NotNil(t, req)
	assert.Equal(t, "Lon", req.Query)
	assert.Equal(t, s.Seq, req.Seq)
	assert.Equal(t, PhaseFetching, s.Phase)
	assert.Equal(t, StatusLoading, s.Status())
}

func TestResolveScenarioLon(t *testing.T) {
	s, req := State{}.SetQuery("Lon")
	s, applied := s.Resolve(Response{Seq: req.Seq, Query: req.Query, Airports: []models.Airport{heathrow, orly}})

	require.True(t, applied)
	assert.Equal(t, PhaseReady, s.Phase)
	assert.Equal(t, []models.Airport{heathrow, orly}, s.Raw, "raw results are stored verbatim")
	assert.Equal(t, []models.Airport{heathrow}, s.Filtered())
	assert.Equal(t, StatusResults, s.Status())
}

func TestLastQueryWins(t *testing.T) {
	s, reqA := State{}.SetQuery("a")
	s, reqAB := s.SetQuery("ab")

	abResults := []models.Airport{{Name: "Abu Dhabi"}}
	aResults := []models.Airport{{Name: "Amsterdam"}, {Name: "Abu Dhabi"}}

	s, applied := s.Resolve(Response{Seq: reqAB.Seq, Query: "ab", Airports: abResults})
	require.True(t, applied)

	s, applied = s.Resolve(Response{Seq: reqA.Seq, Query: "a", Airports: aResults})
	assert.False(t, applied, "stale response must be dropped")
	assert.Equal(t, abResults, s.Raw)
	assert.Equal(t, "ab", s.Query)
}

func TestStaleResponseBeforeLatest(t *testing.T) {
	s, reqA := State{}.SetQuery("a")
	s, _ = s.SetQuery("ab")

	s, applied := s.Resolve(Response{Seq: reqA.Seq, Airports: []models.Airport{{Name: "Amsterdam"}}})
	assert.False(t, applied)
	assert.Equal(t, PhaseFetching, s.Phase)
	assert.Empty(t, s.Raw)
}

func TestClearingQueryDropsInFlightResponse(t *testing.T) {
	s, req := State{}.SetQuery("par")
	s, _ = s.SetQuery("")

	s, applied := s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{orly}})
	assert.False(t, applied)
	assert.Empty(t, s.Raw)
	assert.Equal(t, PhaseIdle, s.Phase)
}

func TestClearingQueryClearsRaw(t *testing.T) {
	s, req := State{}.SetQuery("par")
	s, _ = s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{orly}})
	require.NotEmpty(t, s.Raw)

	s, next := s.SetQuery("  ")
	assert.Nil(t, next)
	assert.Empty(t, s.Raw)
	assert.Empty(t, s.Filtered())
	assert.Equal(t, PhaseIdle, s.Phase)
}

func TestResolveFailureKeepsPreviousResults(t *testing.T) {
	s, req := State{}.SetQuery("par")
	s, _ = s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{orly}})

	s, req = s.SetQuery("pari")
	lookupErr := errors.New("timeout")
	s, applied := s.Resolve(Response{Seq: req.Seq, Err: lookupErr})

	require.True(t, applied)
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, lookupErr, s.Err)
	assert.Equal(t, []models.Airport{orly}, s.Raw)
	assert.Equal(t, StatusResults, s.Status())

	s, req = s.SetQuery("paris")
	s, _ = s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{orly}})
	assert.NoError(t, s.Err)
	assert.Equal(t, PhaseReady, s.Phase)
}

func TestStatusNoResults(t *testing.T) {
	s, req := State{}.SetQuery("zzz")
	s, _ = s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{heathrow}})

	assert.Empty(t, s.Filtered())
	assert.Equal(t, StatusNoResults, s.Status())
}

func TestExpandScenario(t *testing.T) {
	s, req := State{}.SetQuery("spring")
	s, _ = s.Resolve(Response{Seq: req.Seq, Airports: makeAirports(15)})

	assert.Len(t, s.Displayed(DefaultPageSize), 10)
	assert.True(t, s.HasMore(DefaultPageSize))

	s = s.Expand()
	assert.Len(t, s.Displayed(DefaultPageSize), 15)
	assert.False(t, s.HasMore(DefaultPageSize))

	// typing within the same cycle keeps the list expanded
	s, _ = s.SetQuery("springf")
	assert.True(t, s.Expanded)
}

func TestFreshQueryCycleCollapses(t *testing.T) {
	s, _ := State{}.SetQuery("spring")
	s = s.Expand()

	s, _ = s.SetQuery("")
	s, _ = s.SetQuery("s")
	assert.False(t, s.Expanded)
}

func TestReset(t *testing.T) {
	s, req := State{}.SetQuery("lon")
	s = s.Expand()

	s = s.Reset()
	assert.Equal(t, "", s.Query)
	assert.Empty(t, s.Raw)
	assert.False(t, s.Expanded)
	assert.Equal(t, PhaseIdle, s.Phase)

	s, applied := s.Resolve(Response{Seq: req.Seq, Airports: []models.Airport{heathrow}})
	assert.False(t, applied, "responses from a closed session are dropped")
	assert.Empty(t, s.Raw)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "fetching", PhaseFetching.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
