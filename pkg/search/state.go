package search

import (
	"strings"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// Phase is the lifecycle position of a search
type Phase int

const (
	PhaseIdle     Phase = iota // query empty, no results
	PhaseFetching              // request in flight
	PhaseReady                 // results available, possibly empty
	PhaseFailed                // last request failed, previous results kept
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetching:
		return "fetching"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Status tells the view which of the distinct list states to render
type Status int

const (
	StatusPrompt    Status = iota // nothing typed yet
	StatusLoading                 // waiting for the first results of this query
	StatusNoResults               // a query was typed but nothing matches
	StatusResults                 // rows to render
)

// Request asks the fetcher for airports. Seq tags the request so that only
// the response to the latest query is applied.
type Request struct {
	Seq   uint64
	Query string
}

// Response is the outcome of a Request
type Response struct {
	Seq      uint64
	Query    string
	Airports []models.Airport
	Err      error
}

// State is the airport search state. Transitions return a new value and
// never share mutable state with the receiver beyond Raw, which is only
// ever replaced, never modified in place.
type State struct {
	Query    string
	Raw      []models.Airport
	Expanded bool
	Phase    Phase
	Seq      uint64
	Err      error
}

// SetQuery replaces the query. A blank query clears the results and returns
// a nil request; otherwise exactly one request is returned for text.
func (s State) SetQuery(text string) (State, *Request) {
	freshCycle := strings.TrimSpace(s.Query) == ""

	s.Query = text
	// Bumping Seq on every change also invalidates a request still in
	// flight when the query is cleared.
	s.Seq++

	if strings.TrimSpace(text) == "" {
		s.Raw = nil
		s.Phase = PhaseIdle
		s.Err = nil
		return s, nil
	}

	if freshCycle {
		s.Expanded = false
	}
	s.Phase = PhaseFetching
	return s, &Request{Seq: s.Seq, Query: text}
}

// Resolve applies resp if it answers the current request. The second return
// value is false when resp was stale and dropped.
func (s State) Resolve(resp Response) (State, bool) {
	if resp.Seq != s.Seq || s.Phase != PhaseFetching {
		return s, false
	}
	if resp.Err != nil {
		s.Phase = PhaseFailed
		s.Err = resp.Err
		return s, true
	}
	s.Raw = resp.Airports
	s.Phase = PhaseReady
	s.Err = nil
	return s, true
}

// Expand shows the full filtered list
func (s State) Expand() State {
	s.Expanded = true
	return s
}

// Reset returns to Idle for a new modal session. Seq stays monotonic so
// responses belonging to the previous session are still discarded.
func (s State) Reset() State {
	return State{Seq: s.Seq + 1}
}

// Filtered returns the raw results narrowed by the current query
func (s State) Filtered() []models.Airport {
	return FilterAirports(s.Raw, s.Query)
}

// Displayed returns the rows to render for pageSize
func (s State) Displayed(pageSize int) []models.Airport {
	return Window(s.Filtered(), s.Expanded, pageSize)
}

// HasMore reports whether a "show more" affordance applies
func (s State) HasMore(pageSize int) bool {
	return !s.Expanded && pageSize > 0 && len(s.Filtered()) > pageSize
}

// Status classifies what the list area should show
func (s State) Status() Status {
	if strings.TrimSpace(s.Query) == "" {
		return StatusPrompt
	}
	if len(s.Filtered()) > 0 {
		return StatusResults
	}
	if s.Phase == PhaseFetching {
		return StatusLoading
	}
	return StatusNoResults
}
