package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/flightbook/flightbook-cli/pkg/booking"
)

// statusDuration is how long a status message stays on screen
const statusDuration = 3 * time.Second

type App struct {
	home      *HomeModel
	width     int
	height    int
	statusMsg string
	statusID  int
}

// NewApp creates the root model of the booking screen
func NewApp(opts Options) *App {
	return &App{
		home: NewHomeModel(opts),
	}
}

// Trip returns the trip as edited so far
func (a *App) Trip() booking.Trip {
	return a.home.Trip()
}

func (a *App) Init() tea.Cmd {
	return a.home.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// leave a line for the status bar
		a.home.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusID++
		id := a.statusID
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{id: id}
		})

	case clearStatusMsg:
		// a newer message has its own timer
		if msg.id == a.statusID {
			a.statusMsg = ""
		}
		return a, nil
	}

	m, cmd := a.home.Update(msg)
	if hm, ok := m.(*HomeModel); ok {
		a.home = hm
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.home.View()
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(wordwrap.String(a.statusMsg, a.width-2))
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}
	return content
}

// StatusMsg shows a transient message in the status bar
type StatusMsg string

type clearStatusMsg struct {
	id int
}
