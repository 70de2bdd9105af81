package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightbook/flightbook-cli/pkg/booking"
)

// DatePickerState is a month calendar editing one of the trip dates
type DatePickerState struct {
	Active bool
	Field  booking.DateField
	cursor time.Time
	dates  *booking.Dates
	now    func() time.Time
}

// NewDatePickerState creates an inactive picker
func NewDatePickerState(now func() time.Time) *DatePickerState {
	if now == nil {
		now = time.Now
	}
	return &DatePickerState{now: now}
}

// Start opens the picker on the current value of field
func (dp *DatePickerState) Start(dates *booking.Dates, field booking.DateField) {
	dp.Active = true
	dp.Field = field
	dp.dates = dates
	dates.Edit(field)
	dp.cursor = dates.Value(field)
	dp.clamp()
}

// Stop closes the picker without committing
func (dp *DatePickerState) Stop() {
	dp.Active = false
}

// Cursor returns the highlighted day
func (dp *DatePickerState) Cursor() time.Time {
	return dp.cursor
}

func (dp *DatePickerState) minDay() time.Time {
	return dp.dates.MinFor(dp.Field, dp.now())
}

func (dp *DatePickerState) clamp() {
	if earliest := dp.minDay(); dp.cursor.Before(earliest) {
		dp.cursor = earliest
	}
}

// HandleInput processes keyboard input for the picker
func (dp *DatePickerState) HandleInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !dp.Active {
		return false, nil
	}

	switch msg.String() {
	case "esc", "q":
		dp.Stop()
		return true, nil

	case "left", "h":
		dp.cursor = dp.cursor.AddDate(0, 0, -1)
	case "right", "l":
		dp.cursor = dp.cursor.AddDate(0, 0, 1)
	case "up", "k":
		dp.cursor = dp.cursor.AddDate(0, 0, -7)
	case "down", "j":
		dp.cursor = dp.cursor.AddDate(0, 0, 7)
	case "pgup", "[":
		dp.cursor = dp.cursor.AddDate(0, -1, 0)
	case "pgdown", "]":
		dp.cursor = dp.cursor.AddDate(0, 1, 0)

	case "enter", " ":
		dp.dates.Choose(dp.cursor, dp.now())
		dp.Stop()
		return true, statusCmd(fmt.Sprintf("%s: %s", dp.Field, booking.FormatDate(dp.dates.Value(dp.Field))))
	}

	dp.clamp()
	return true, nil
}

// View renders the month containing the cursor
func (dp *DatePickerState) View() string {
	if !dp.Active {
		return ""
	}

	earliest := dp.minDay()
	first := time.Date(dp.cursor.Year(), dp.cursor.Month(), 1, 0, 0, 0, 0, dp.cursor.Location())
	// Monday-first offset
	offset := (int(first.Weekday()) + 6) % 7

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(dp.Field.String()))
	b.WriteString("\n\n")
	b.WriteString(NormalStyle.Render(fmt.Sprintf("%-20s", first.Format("January 2006"))))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("   ", offset))
	col := offset
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", d.Day())
		switch {
		case d.Equal(dp.cursor):
			cell = SelectedStyle.Render(cell)
		case d.Before(earliest):
			cell = EmptyStyle.Render(cell)
		default:
			cell = NormalStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(formatHelpRows([][]string{
		{"←/→ day", "↑/↓ week", "[/] month"},
		{"enter choose", "esc cancel"},
	}))

	return ActiveBorderStyle.Padding(0, 1).Render(b.String())
}
