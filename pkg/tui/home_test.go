package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbook/flightbook-cli/pkg/booking"
	"github.com/flightbook/flightbook-cli/pkg/models"
	"github.com/flightbook/flightbook-cli/pkg/tui/testhelpers"
)

type clipboardSpy struct {
	text string
	err  error
}

func (c *clipboardSpy) write(s string) error {
	c.text = s
	return c.err
}

func newTestHome(results map[string][]models.Airport) (*HomeModel, *clipboardSpy, *testhelpers.RecordingReporter) {
	spy := &clipboardSpy{}
	reporter := &testhelpers.RecordingReporter{}
	m := NewHomeModel(Options{
		Fetcher:   testhelpers.NewFakeFetcher(results),
		Reporter:  reporter,
		PageSize:  10,
		Now:       fixedNow,
		Clipboard: spy.write,
	})
	m.SetSize(100, 40)
	return m, spy, reporter
}

func press(m *HomeModel, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func TestHomeModel_InitialView(t *testing.T) {
	m, _, _ := newTestHome(nil)
	view := m.View()

	testhelpers.AssertViewContains(t, view, "Easy EMI Plans")
	testhelpers.AssertViewContains(t, view, "[One Way]")
	testhelpers.AssertViewContains(t, view, "Tue, Mar 10")
	testhelpers.AssertViewContains(t, view, "Select Airport")
	testhelpers.AssertViewContains(t, view, "0 Ad, 0 Ch, 0 In")
	testhelpers.AssertViewContains(t, view, "Select Class")
	testhelpers.AssertViewContains(t, view, "Special Fare Options")
	testhelpers.AssertViewContains(t, view, "Senior Citizen")
}

func TestHomeModel_ToggleTripType(t *testing.T) {
	m, _, _ := newTestHome(nil)

	press(m, key(tea.KeyEnter))
	assert.Equal(t, models.RoundTrip, m.Trip().Type)

	press(m, key(tea.KeyLeft))
	assert.Equal(t, models.OneWay, m.Trip().Type)
}

func TestHomeModel_FocusWraps(t *testing.T) {
	m, _, _ := newTestHome(nil)

	press(m, key(tea.KeyUp))
	assert.Equal(t, fieldFare, m.focus)

	press(m, key(tea.KeyTab))
	assert.Equal(t, fieldTripType, m.focus)
}

func TestHomeModel_SelectOriginAndDestination(t *testing.T) {
	m, _, _ := newTestHome(map[string][]models.Airport{
		"L": {testhelpers.LondonHeathrow, testhelpers.ParisOrly},
		"P": {testhelpers.ParisOrly},
	})

	// focus "From" and open the modal
	press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	press(m, key(tea.KeyEnter))
	require.True(t, m.airportSearch.Active)
	assert.Equal(t, booking.Origin, m.airportSearch.Slot)

	m.Update(findFetched(t, runCmd(t, m.airportSearch.SetQuery("L"))))
	press(m, key(tea.KeyEnter))

	assert.False(t, m.airportSearch.Active)
	assert.Equal(t, "London Heathrow", m.Trip().Airports.Origin)
	assert.Equal(t, booking.UnsetAirportLabel, m.Trip().Airports.Destination)

	// "To"
	press(m, key(tea.KeyDown), key(tea.KeyEnter))
	require.True(t, m.airportSearch.Active)
	assert.Equal(t, booking.Destination, m.airportSearch.Slot)

	m.Update(findFetched(t, runCmd(t, m.airportSearch.SetQuery("P"))))
	press(m, key(tea.KeyEnter))

	assert.Equal(t, "London Heathrow", m.Trip().Airports.Origin)
	assert.Equal(t, "Paris Orly", m.Trip().Airports.Destination)
}

func TestHomeModel_ModalCapturesKeys(t *testing.T) {
	m, _, _ := newTestHome(nil)
	press(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	require.True(t, m.airportSearch.Active)

	// "q" is typed into the query rather than quitting
	cmd := press(m, keyRunes("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "q", m.airportSearch.Query())
	testhelpers.AssertViewContains(t, m.View(), "Select Airport (From)")

	press(m, key(tea.KeyEsc))
	assert.False(t, m.airportSearch.Active)
}

func TestHomeModel_Travelers(t *testing.T) {
	m, _, _ := newTestHome(nil)
	m.focus = fieldTravelers

	press(m, key(tea.KeyEnter))
	require.True(t, m.travelers.Active)
	press(m, keyRunes("+"), keyRunes("+"), key(tea.KeyDown), keyRunes("+"), key(tea.KeyEnter))

	assert.False(t, m.travelers.Active)
	assert.Equal(t, booking.Travelers{Adults: 2, Children: 1}, m.Trip().Travelers)
	testhelpers.AssertViewContains(t, m.View(), "2 Ad, 1 Ch, 0 In")
}

func TestHomeModel_ClassAndDates(t *testing.T) {
	m, _, _ := newTestHome(nil)

	m.focus = fieldClass
	press(m, key(tea.KeyEnter), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, models.First, m.Trip().Class)

	m.focus = fieldReturn
	press(m, key(tea.KeyEnter))
	require.True(t, m.datePicker.Active)
	press(m, key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, "Tue, Mar 17", booking.FormatDate(m.Trip().Dates.Return))
	assert.Equal(t, "Tue, Mar 10", booking.FormatDate(m.Trip().Dates.Departure))
}

func TestHomeModel_FareOptions(t *testing.T) {
	m, _, _ := newTestHome(nil)
	m.focus = fieldFare

	press(m, key(tea.KeyRight), key(tea.KeyEnter))
	assert.Equal(t, models.FareSeniorCitizen, m.Trip().Fare)

	press(m, key(tea.KeyEnter))
	assert.Equal(t, models.FareOption(""), m.Trip().Fare)

	press(m, key(tea.KeyRight), key(tea.KeyRight), key(tea.KeySpace))
	assert.Equal(t, models.FareArmedForce, m.Trip().Fare)
}

func TestHomeModel_CopySummary(t *testing.T) {
	m, spy, reporter := newTestHome(nil)

	cmd := press(m, key(tea.KeyCtrlY))
	status, ok := findStatus(runCmd(t, cmd))
	require.True(t, ok)
	assert.Equal(t, StatusMsg("Trip summary copied to clipboard"), status)
	assert.Contains(t, spy.text, "Trip:       One Way")
	assert.Equal(t, 0, reporter.ErrorCount())

	spy.err = errors.New("no clipboard utility")
	cmd = press(m, key(tea.KeyCtrlY))
	status, _ = findStatus(runCmd(t, cmd))
	assert.Contains(t, string(status), "Failed to copy trip summary")
	assert.Equal(t, 1, reporter.ErrorCount())
}

func TestHomeModel_Quit(t *testing.T) {
	m, _, _ := newTestHome(nil)
	cmd := press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestHomeModel_QuitConfirmsWithChanges(t *testing.T) {
	m, _, _ := newTestHome(nil)
	m.focus = fieldClass
	press(m, key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, models.Economy, m.Trip().Class)

	cmd := press(m, keyRunes("q"))
	assert.Nil(t, cmd)
	require.True(t, m.confirm.Active())
	view := m.View()
	testhelpers.AssertViewContains(t, view, "Discard the trip entered so far?")
	testhelpers.AssertViewContains(t, view, "Class:      Economy")

	// "n" keeps the screen
	press(m, keyRunes("n"))
	assert.False(t, m.confirm.Active())
	testhelpers.AssertViewContains(t, m.View(), "Special Fare Options")

	press(m, keyRunes("q"))
	cmd = press(m, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
