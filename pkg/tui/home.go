package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flightbook/flightbook-cli/pkg/airports"
	"github.com/flightbook/flightbook-cli/pkg/booking"
	"github.com/flightbook/flightbook-cli/pkg/diag"
	"github.com/flightbook/flightbook-cli/pkg/models"
)

// homeField is a focusable row of the booking screen
type homeField int

const (
	fieldTripType homeField = iota
	fieldDeparture
	fieldReturn
	fieldFrom
	fieldTo
	fieldTravelers
	fieldClass
	fieldFare
	fieldCount
)

// HomeModel is the booking screen
type HomeModel struct {
	trip       booking.Trip
	focus      homeField
	fareCursor int

	airportSearch *AirportSearchState
	travelers     *TravelerState
	classes       *ClassState
	datePicker    *DatePickerState
	confirm       *ConfirmationModel

	now        func() time.Time
	copyText   func(string) error
	reporter   diag.Reporter
	showHeader bool
	width      int
	height     int
}

// NewHomeModel creates the booking screen for opts
func NewHomeModel(opts Options) *HomeModel {
	opts = opts.withDefaults()
	return &HomeModel{
		trip:          booking.NewTrip(opts.Now()),
		airportSearch: NewAirportSearchState(opts.Fetcher, opts.Reporter, opts.PageSize),
		travelers:     NewTravelerState(),
		classes:       NewClassState(),
		datePicker:    NewDatePickerState(opts.Now),
		confirm:       NewConfirmation(),
		now:           opts.Now,
		copyText:      opts.Clipboard,
		reporter:      opts.Reporter,
		showHeader:    opts.ShowHeader,
	}
}

// Trip returns the current trip state
func (m *HomeModel) Trip() booking.Trip {
	return m.trip
}

// SetSize updates the layout dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.airportSearch.SetSize(width, height)
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case airportsFetchedMsg:
		return m, m.airportSearch.HandleResult(msg)

	case spinner.TickMsg:
		return m, m.airportSearch.HandleSpinner(msg)

	case tea.KeyMsg:
		if handled, cmd := m.handleModalInput(msg); handled {
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m, m.airportSearch.Update(msg)
}

// handleModalInput routes keys to whichever modal is open
func (m *HomeModel) handleModalInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.confirm.Active() {
		return true, m.confirm.Update(msg)
	}
	if m.airportSearch.Active {
		return m.airportSearch.HandleInput(msg)
	}
	if m.travelers.Active {
		return m.travelers.HandleInput(msg)
	}
	if m.classes.Active {
		return m.classes.HandleInput(msg)
	}
	if m.datePicker.Active {
		return m.datePicker.HandleInput(msg)
	}
	return false, nil
}

func (m *HomeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, m.quit()

	case "up", "k", "shift+tab":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "down", "j", "tab":
		m.focus = (m.focus + 1) % fieldCount

	case "left", "h":
		switch m.focus {
		case fieldFare:
			if m.fareCursor > 0 {
				m.fareCursor--
			}
		case fieldTripType:
			m.trip.ToggleType()
		}

	case "right", "l":
		switch m.focus {
		case fieldFare:
			if m.fareCursor < len(models.FareOptions)-1 {
				m.fareCursor++
			}
		case fieldTripType:
			m.trip.ToggleType()
		}

	case "enter", " ":
		return m, m.activate()

	case "ctrl+y":
		return m, m.copySummary()
	}
	return m, nil
}

// activate opens or toggles the focused field
func (m *HomeModel) activate() tea.Cmd {
	switch m.focus {
	case fieldTripType:
		m.trip.ToggleType()
	case fieldDeparture:
		m.datePicker.Start(&m.trip.Dates, booking.DepartureDate)
	case fieldReturn:
		m.datePicker.Start(&m.trip.Dates, booking.ReturnDate)
	case fieldFrom:
		return m.airportSearch.Start(&m.trip.Airports, booking.Origin)
	case fieldTo:
		return m.airportSearch.Start(&m.trip.Airports, booking.Destination)
	case fieldTravelers:
		m.travelers.Start(&m.trip.Travelers)
	case fieldClass:
		m.classes.Start(&m.trip)
	case fieldFare:
		m.trip.ToggleFare(models.FareOptions[m.fareCursor])
	}
	return nil
}

func (m *HomeModel) copySummary() tea.Cmd {
	if err := m.copyText(m.trip.Summary()); err != nil {
		m.reporter.Report(err, "action", "clipboard")
		return statusCmd("Failed to copy trip summary: " + err.Error())
	}
	return statusCmd("Trip summary copied to clipboard")
}

// quit leaves right away unless something was entered
func (m *HomeModel) quit() tea.Cmd {
	if !m.hasChanges() {
		return tea.Quit
	}
	m.confirm.Show(ConfirmationConfig{
		Title:       "Leave Booking",
		Message:     "Discard the trip entered so far?",
		Details:     strings.Split(strings.TrimSpace(m.trip.Summary()), "\n"),
		Destructive: true,
		Width:       50,
	}, func() tea.Cmd {
		return tea.Quit
	}, nil)
	return nil
}

// hasChanges reports whether the trip differs from a fresh one in a way
// worth confirming before quitting
func (m *HomeModel) hasChanges() bool {
	t := m.trip
	return t.Airports.IsSet(booking.Origin) ||
		t.Airports.IsSet(booking.Destination) ||
		t.Travelers.Total() > 0 ||
		t.Class != "" ||
		t.Fare != ""
}

// Options configures the booking screen
type Options struct {
	Fetcher    airports.Fetcher
	Reporter   diag.Reporter
	PageSize   int
	ShowHeader bool
	Now        func() time.Time
	Clipboard  func(string) error
}

func (o Options) withDefaults() Options {
	if o.Reporter == nil {
		o.Reporter = diag.Discard
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Clipboard == nil {
		o.Clipboard = writeClipboard
	}
	return o
}
