package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/flightbook/flightbook-cli/pkg/search"
)

// View renders the airport selection modal
func (s *AirportSearchState) View() string {
	if !s.Active {
		return ""
	}

	width := s.modalWidth()
	contentWidth := width - 4

	var b strings.Builder

	title := HeaderStyle.Render(fmt.Sprintf("Select Airport (%s)", s.Slot))
	if s.search.Phase == search.PhaseFetching && s.search.Status() == search.StatusResults {
		title += " " + s.spinner.View()
	}
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(s.bar.View())
	b.WriteString("\n")

	if s.search.Phase == search.PhaseFailed && s.search.Err != nil {
		banner := wordwrap.String("Lookup failed: "+s.search.Err.Error(), contentWidth)
		b.WriteString(ErrorStyle.Render(banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderList(contentWidth))
	b.WriteString("\n\n")

	b.WriteString(formatHelpRows([][]string{
		{"↑/↓ nav", "enter select", "^e show all", "esc close"},
	}))

	return ActiveBorderStyle.
		Width(width).
		Padding(0, 1).
		Render(b.String())
}

func (s *AirportSearchState) renderList(width int) string {
	switch s.search.Status() {
	case search.StatusPrompt:
		return EmptyStyle.Render("Start typing to search airports")
	case search.StatusLoading:
		return s.spinner.View() + " " + EmptyStyle.Render("Searching...")
	case search.StatusNoResults:
		return EmptyStyle.Render(fmt.Sprintf("No airports found for %q", s.search.Query))
	}

	displayed := s.search.Displayed(s.pageSize)
	rows := make([]string, 0, len(displayed)+1)
	for i, a := range displayed {
		label := truncate.StringWithTail(a.Label(), uint(width-2), "…")
		rows = append(rows, s.renderRow(i, label))
	}
	if s.search.HasMore(s.pageSize) {
		more := len(s.search.Filtered()) - len(displayed)
		rows = append(rows, s.renderRow(len(displayed), fmt.Sprintf("Show more (%d more)", more)))
	}

	content := strings.Join(rows, "\n")
	height := s.listHeight()
	if len(rows) <= height {
		return content
	}

	// Scroll so the cursor stays visible
	s.viewport.Width = width
	s.viewport.Height = height
	s.viewport.SetContent(content)
	switch {
	case s.cursor < s.viewport.YOffset:
		s.viewport.SetYOffset(s.cursor)
	case s.cursor >= s.viewport.YOffset+height:
		s.viewport.SetYOffset(s.cursor - height + 1)
	}
	return s.viewport.View()
}

func (s *AirportSearchState) renderRow(index int, text string) string {
	if index == s.cursor {
		return CursorStyle.Render("▸ ") + SelectedStyle.Render(text)
	}
	return "  " + NormalStyle.Render(text)
}

// place centers a modal over the available area
func place(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
