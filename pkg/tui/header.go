package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const promoTitle = "Easy EMI Plans"

const promoText = "Get your dream flight with flexible EMI options that suit your budget."

func renderHeader(width int, title string) string {
	logo := `┏━╸╻  ╻┏━╸╻ ╻╺┳╸┏┓ ┏━┓┏━┓╻┏
┣╸ ┃  ┃┃╺┓┣━┫ ┃ ┣┻┓┃ ┃┃ ┃┣┻┓
╹  ┗━╸╹┗━┛╹ ╹ ╹ ┗━┛┗━┛┗━┛╹ ╹`

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // Pink/magenta color
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	logoRendered := logoStyle.Render(logo)
	if title == "" {
		return headerPadding.Render(logoRendered)
	}

	// title sits on the last logo line
	titleRendered := titleStyle.Render("\n\n" + title)
	gap := width - 2 - lipgloss.Width(logoRendered) - lipgloss.Width(title)
	if gap < 1 {
		gap = 1
	}
	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		logoRendered,
		lipgloss.NewStyle().Width(gap).Render(""),
		titleRendered,
	)
	return headerPadding.Render(content)
}

func renderPromo(width int) string {
	card := lipgloss.JoinVertical(lipgloss.Left,
		PromoStyle.Bold(true).Render(promoTitle),
		NormalStyle.Render(promoText),
	)
	return ContentPaddingStyle.Width(width).Render(card)
}
