package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightbook/flightbook-cli/pkg/booking"
)

// TravelerState manages the traveler counter modal
type TravelerState struct {
	Active    bool
	cursor    int
	travelers *booking.Travelers
}

// NewTravelerState creates an inactive traveler modal
func NewTravelerState() *TravelerState {
	return &TravelerState{}
}

// Start opens the modal editing t
func (ts *TravelerState) Start(t *booking.Travelers) {
	ts.Active = true
	ts.cursor = 0
	ts.travelers = t
}

// Stop closes the modal
func (ts *TravelerState) Stop() {
	ts.Active = false
	ts.cursor = 0
}

// Kind returns the counter under the cursor
func (ts *TravelerState) Kind() booking.TravelerKind {
	return booking.TravelerKinds[ts.cursor]
}

// HandleInput processes keyboard input for the traveler modal
func (ts *TravelerState) HandleInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !ts.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc", "enter", "q":
		ts.Stop()
		return true, statusCmd("Travelers: " + ts.travelers.Summary())

	case "up", "k":
		if ts.cursor > 0 {
			ts.cursor--
		}

	case "down", "j":
		if ts.cursor < len(booking.TravelerKinds)-1 {
			ts.cursor++
		}

	case "right", "l", "+", "=":
		ts.travelers.Increment(ts.Kind())

	case "left", "h", "-":
		ts.travelers.Decrement(ts.Kind())
	}
	return true, nil
}

// View renders the counters
func (ts *TravelerState) View() string {
	if !ts.Active {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Travelers"))
	b.WriteString("\n\n")
	for i, kind := range booking.TravelerKinds {
		line := fmt.Sprintf("%-10s  −  %3d  +", kind, ts.travelers.Count(kind))
		if i == ts.cursor {
			b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(line))
		} else {
			b.WriteString("  " + NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(formatHelpRows([][]string{{"↑/↓ nav", "←/→ or -/+ change", "enter done"}}))

	return ActiveBorderStyle.Padding(0, 1).Render(b.String())
}
