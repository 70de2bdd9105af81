package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightbook/flightbook-cli/pkg/booking"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

// ClassState manages the cabin class modal
type ClassState struct {
	Active bool
	cursor int
	trip   *booking.Trip
}

// NewClassState creates an inactive class modal
func NewClassState() *ClassState {
	return &ClassState{}
}

// Start opens the modal with the cursor on the current class
func (cs *ClassState) Start(trip *booking.Trip) {
	cs.Active = true
	cs.trip = trip
	cs.cursor = 0
	for i, c := range models.CabinClasses {
		if c == trip.Class {
			cs.cursor = i
		}
	}
}

// Stop closes the modal
func (cs *ClassState) Stop() {
	cs.Active = false
}

// HandleInput processes keyboard input for the class modal
func (cs *ClassState) HandleInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !cs.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc", "q":
		cs.Stop()

	case "up", "k":
		if cs.cursor > 0 {
			cs.cursor--
		}

	case "down", "j":
		if cs.cursor < len(models.CabinClasses)-1 {
			cs.cursor++
		}

	case "enter", " ":
		class := models.CabinClasses[cs.cursor]
		cs.trip.ChooseClass(class)
		cs.Stop()
		return true, statusCmd("Class: " + string(class))
	}
	return true, nil
}

// View renders the class choices as radio buttons
func (cs *ClassState) View() string {
	if !cs.Active {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Select Class"))
	b.WriteString("\n\n")
	for i, c := range models.CabinClasses {
		radio := "( )"
		if cs.trip.Class == c {
			radio = "(•)"
		}
		line := radio + " " + string(c)
		if i == cs.cursor {
			b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(line))
		} else {
			b.WriteString("  " + NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(formatHelpRows([][]string{{"↑/↓ nav", "enter choose", "esc close"}}))

	return ActiveBorderStyle.Padding(0, 1).Render(b.String())
}
