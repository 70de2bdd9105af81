package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flightbook/flightbook-cli/pkg/booking"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

func (m *HomeModel) View() string {
	if m.confirm.Active() {
		return place(m.width, m.height, m.confirm.View())
	}
	if m.airportSearch.Active {
		return place(m.width, m.height, m.airportSearch.View())
	}
	if m.travelers.Active {
		return place(m.width, m.height, m.travelers.View())
	}
	if m.classes.Active {
		return place(m.width, m.height, m.classes.View())
	}
	if m.datePicker.Active {
		return place(m.width, m.height, m.datePicker.View())
	}

	var sections []string
	if m.showHeader {
		sections = append(sections, renderHeader(m.width, "Book a Flight"), "")
	}
	sections = append(sections, renderPromo(m.width), "")

	var body strings.Builder
	body.WriteString(m.renderRow(fieldTripType, "Trip", m.renderTripType()))
	body.WriteString(m.renderRow(fieldDeparture, booking.DepartureDate.String(), booking.FormatDate(m.trip.Dates.Departure)))
	body.WriteString(m.renderRow(fieldReturn, booking.ReturnDate.String(), booking.FormatDate(m.trip.Dates.Return)))
	body.WriteString(m.renderRow(fieldFrom, booking.Origin.String(), m.trip.Airports.Origin))
	body.WriteString(m.renderRow(fieldTo, booking.Destination.String(), m.trip.Airports.Destination))
	body.WriteString(m.renderRow(fieldTravelers, "Travelers", m.trip.Travelers.Summary()))
	body.WriteString(m.renderRow(fieldClass, "Class", m.trip.ClassLabel()))
	body.WriteString("\n")
	body.WriteString(m.renderFareOptions())

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	sections = append(sections,
		ContentPaddingStyle.Render(InactiveBorderStyle.Width(width).Padding(0, 1).Render(body.String())),
		ContentPaddingStyle.Render(formatHelpRows([][]string{
			{"↑/↓ nav", "enter open", "←/→ change", "^y copy summary", "q quit"},
		})),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *HomeModel) renderRow(field homeField, label, value string) string {
	marker := "  "
	valueStyle := NormalStyle
	if m.focus == field {
		marker = CursorStyle.Render("▸ ")
		valueStyle = SelectedStyle
	}
	return marker + LabelStyle.Render(padRight(label, 16)) + valueStyle.Render(value) + "\n"
}

func (m *HomeModel) renderTripType() string {
	var parts []string
	for _, t := range []models.TripType{models.OneWay, models.RoundTrip} {
		if m.trip.Type == t {
			parts = append(parts, "["+t.Title()+"]")
		} else {
			parts = append(parts, " "+t.Title()+" ")
		}
	}
	return strings.Join(parts, " ")
}

func (m *HomeModel) renderFareOptions() string {
	chips := make([]string, len(models.FareOptions))
	for i, f := range models.FareOptions {
		style := ChipStyle
		if m.trip.Fare == f {
			style = ChipMarkedStyle
		}
		if m.focus == fieldFare && i == m.fareCursor {
			style = style.BorderForeground(lipgloss.Color(ColorActive))
		}
		chips[i] = style.Render(string(f))
	}

	marker := "  "
	if m.focus == fieldFare {
		marker = CursorStyle.Render("▸ ")
	}
	return marker + HeaderStyle.Render("Special Fare Options") + "\n" +
		lipgloss.NewStyle().PaddingLeft(2).Render(lipgloss.JoinHorizontal(lipgloss.Top, chips...))
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
