// Package booking holds the local trip state of the booking screen: trip
// type, dates, airports, travelers, class and fare option.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

// UnsetClassLabel is shown until a cabin class is chosen
const UnsetClassLabel = "Select Class"

// Trip aggregates the independent pieces of screen state
type Trip struct {
	Type      models.TripType
	Dates     Dates
	Airports  Selection
	Travelers Travelers
	Class     models.CabinClass // empty until chosen
	Fare      models.FareOption // empty when no special fare applies
}

// NewTrip returns a one-way trip departing today
func NewTrip(today time.Time) Trip {
	return Trip{
		Type:     models.OneWay,
		Dates:    NewDates(today),
		Airports: NewSelection(),
	}
}

// ToggleType switches between one-way and round-trip
func (t *Trip) ToggleType() {
	if t.Type == models.RoundTrip {
		t.Type = models.OneWay
	} else {
		t.Type = models.RoundTrip
	}
}

// ChooseClass sets the cabin class
func (t *Trip) ChooseClass(c models.CabinClass) {
	t.Class = c
}

// ClassLabel returns the chosen class or the placeholder
func (t Trip) ClassLabel() string {
	if t.Class == "" {
		return UnsetClassLabel
	}
	return string(t.Class)
}

// ToggleFare marks f, or clears it when f is already marked
func (t *Trip) ToggleFare(f models.FareOption) {
	if t.Fare == f {
		t.Fare = ""
		return
	}
	t.Fare = f
}

// Summary renders a plain-text itinerary. The return date is only listed
// for round trips.
func (t Trip) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip:       %s\n", t.Type.Title())
	fmt.Fprintf(&b, "From:       %s\n", t.Airports.Origin)
	fmt.Fprintf(&b, "To:         %s\n", t.Airports.Destination)
	fmt.Fprintf(&b, "Departure:  %s\n", FormatDate(t.Dates.Departure))
	if t.Type == models.RoundTrip {
		fmt.Fprintf(&b, "Return:     %s\n", FormatDate(t.Dates.Return))
	}
	fmt.Fprintf(&b, "Travelers:  %s\n", t.Travelers.Summary())
	fmt.Fprintf(&b, "Class:      %s\n", t.ClassLabel())
	if t.Fare != "" {
		fmt.Fprintf(&b, "Fare:       %s\n", t.Fare)
	}
	return b.String()
}
