package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightbook/flightbook-cli/pkg/models"
	"github.com/flightbook/flightbook-cli/pkg/tui/testhelpers"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// runCmd executes cmd and flattens batches into their messages
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findFetched(t *testing.T, msgs []tea.Msg) airportsFetchedMsg {
	t.Helper()
	for _, m := range msgs {
		if f, ok := m.(airportsFetchedMsg); ok {
			return f
		}
	}
	t.Fatalf("no airportsFetchedMsg in %v", msgs)
	return airportsFetchedMsg{}
}

func findStatus(msgs []tea.Msg) (StatusMsg, bool) {
	for _, m := range msgs {
		if s, ok := m.(StatusMsg); ok {
			return s, true
		}
	}
	return "", false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func newTestSearch(results map[string][]models.Airport) (*AirportSearchState, *testhelpers.FakeFetcher, *testhelpers.RecordingReporter) {
	fetcher := testhelpers.NewFakeFetcher(results)
	reporter := &testhelpers.RecordingReporter{}
	s := NewAirportSearchState(fetcher, reporter, 10)
	s.SetSize(100, 40)
	return s, fetcher, reporter
}
