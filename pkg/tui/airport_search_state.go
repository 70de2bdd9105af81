package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flightbook/flightbook-cli/pkg/airports"
	"github.com/flightbook/flightbook-cli/pkg/booking"
	"github.com/flightbook/flightbook-cli/pkg/diag"
	"github.com/flightbook/flightbook-cli/pkg/models"
	"github.com/flightbook/flightbook-cli/pkg/search"
)

// airportsFetchedMsg carries a lookup result back into the update loop
type airportsFetchedMsg struct {
	resp search.Response
}

// AirportSearchState drives the airport selection modal. Only the response
// to the latest query is ever applied; superseded requests are cancelled
// and their late results dropped by sequence number.
type AirportSearchState struct {
	Active bool
	Slot   booking.Slot

	search    search.State
	bar       *SearchBar
	spinner   spinner.Model
	viewport  viewport.Model
	cursor    int
	pageSize  int
	fetcher   airports.Fetcher
	reporter  diag.Reporter
	selection *booking.Selection
	cancel    context.CancelFunc
	width     int
	height    int
}

// NewAirportSearchState creates the modal state. A non-positive pageSize
// falls back to search.DefaultPageSize.
func NewAirportSearchState(fetcher airports.Fetcher, reporter diag.Reporter, pageSize int) *AirportSearchState {
	if pageSize <= 0 {
		pageSize = search.DefaultPageSize
	}
	if reporter == nil {
		reporter = diag.Discard
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &AirportSearchState{
		bar:      NewSearchBar(),
		spinner:  s,
		viewport: viewport.New(0, 0),
		pageSize: pageSize,
		fetcher:  fetcher,
		reporter: reporter,
		width:    60,
		height:   24,
	}
}

// Start opens the modal for slot
func (s *AirportSearchState) Start(sel *booking.Selection, slot booking.Slot) tea.Cmd {
	s.cancelInFlight()
	s.selection = sel
	s.selection.OpenFor(slot)
	s.Active = true
	s.Slot = slot
	s.search = s.search.Reset()
	s.cursor = 0
	s.bar.Reset()
	s.bar.SetActive(true)
	return textinput.Blink
}

// Stop closes the modal without committing anything
func (s *AirportSearchState) Stop() {
	s.cancelInFlight()
	s.Active = false
	s.search = s.search.Reset()
	s.cursor = 0
	s.bar.Reset()
	s.bar.SetActive(false)
	if s.selection != nil {
		s.selection.Close()
	}
}

// SetSize sets the modal dimensions
func (s *AirportSearchState) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.bar.SetWidth(s.modalWidth() - 4)
}

// Search exposes the current search state
func (s *AirportSearchState) Search() search.State {
	return s.search
}

// Query returns the text in the search bar
func (s *AirportSearchState) Query() string {
	return s.search.Query
}

// SetQuery replaces the query and issues the lookup for it, if any
func (s *AirportSearchState) SetQuery(text string) tea.Cmd {
	s.cancelInFlight()

	var req *search.Request
	s.search, req = s.search.SetQuery(text)
	s.cursor = 0
	if s.bar.Value() != text {
		s.bar.SetValue(text)
	}
	if req == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.reporter.Debugf("lookup seq=%d query=%q provider=%s", req.Seq, req.Query, s.fetcherName())
	return tea.Batch(lookupCmd(ctx, s.fetcher, *req), s.spinner.Tick)
}

func lookupCmd(ctx context.Context, fetcher airports.Fetcher, req search.Request) tea.Cmd {
	return func() tea.Msg {
		found, err := fetcher.Lookup(ctx, req.Query)
		return airportsFetchedMsg{resp: search.Response{
			Seq:      req.Seq,
			Query:    req.Query,
			Airports: found,
			Err:      err,
		}}
	}
}

// HandleResult applies a lookup result. Stale results are dropped.
func (s *AirportSearchState) HandleResult(msg airportsFetchedMsg) tea.Cmd {
	next, applied := s.search.Resolve(msg.resp)
	if !applied {
		s.reporter.Debugf("dropped stale lookup seq=%d query=%q", msg.resp.Seq, msg.resp.Query)
		return nil
	}
	s.search = next
	s.cancelInFlight()
	s.clampCursor()

	if msg.resp.Err != nil {
		s.reporter.Report(msg.resp.Err, "provider", s.fetcherName(), "query", msg.resp.Query)
		return statusCmd("Airport lookup failed: " + msg.resp.Err.Error())
	}
	return nil
}

// HandleSpinner advances the spinner while a request is in flight
func (s *AirportSearchState) HandleSpinner(msg spinner.TickMsg) tea.Cmd {
	if s.search.Phase != search.PhaseFetching {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// Update forwards non-key messages (cursor blink) to the search bar
func (s *AirportSearchState) Update(msg tea.Msg) tea.Cmd {
	if !s.Active {
		return nil
	}
	var cmd tea.Cmd
	s.bar, cmd = s.bar.Update(msg)
	return cmd
}

// HandleInput processes keyboard input for the modal
func (s *AirportSearchState) HandleInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !s.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc":
		s.Stop()
		return true, nil

	case "up", "ctrl+p":
		if s.cursor > 0 {
			s.cursor--
		}
		return true, nil

	case "down", "ctrl+n":
		if s.cursor < s.rowCount()-1 {
			s.cursor++
		}
		return true, nil

	case "ctrl+e":
		s.search = s.search.Expand()
		return true, nil

	case "enter":
		displayed := s.search.Displayed(s.pageSize)
		switch {
		case s.cursor < len(displayed):
			return true, s.commit(displayed[s.cursor])
		case s.search.HasMore(s.pageSize):
			s.search = s.search.Expand()
		}
		return true, nil
	}

	var cmd tea.Cmd
	s.bar, cmd = s.bar.Update(msg)
	if s.bar.Value() != s.search.Query {
		return true, tea.Batch(cmd, s.SetQuery(s.bar.Value()))
	}
	return true, cmd
}

// commit writes the airport into the active slot and ends the session
func (s *AirportSearchState) commit(a models.Airport) tea.Cmd {
	s.selection.Commit(a)
	slot := s.Slot
	s.Stop()
	return statusCmd(fmt.Sprintf("%s: %s", slot, a.Name))
}

// rowCount includes the "show more" row when present
func (s *AirportSearchState) rowCount() int {
	n := len(s.search.Displayed(s.pageSize))
	if s.search.HasMore(s.pageSize) {
		n++
	}
	return n
}

func (s *AirportSearchState) clampCursor() {
	if n := s.rowCount(); s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *AirportSearchState) cancelInFlight() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *AirportSearchState) fetcherName() string {
	if s.fetcher == nil {
		return "none"
	}
	return s.fetcher.Name()
}

func (s *AirportSearchState) modalWidth() int {
	w := s.width - 8
	if w > 80 {
		w = 80
	}
	if w < 30 {
		w = 30
	}
	return w
}

// listHeight is the number of rows the list area may use
func (s *AirportSearchState) listHeight() int {
	h := s.height - 12
	if h < 5 {
		h = 5
	}
	return h
}

func statusCmd(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}
