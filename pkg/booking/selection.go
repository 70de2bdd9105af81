package booking

import "github.com/flightbook/flightbook-cli/pkg/models"

// Slot is one of the two airport fields of a trip
type Slot int

const (
	Origin Slot = iota
	Destination
)

func (s Slot) String() string {
	if s == Destination {
		return "To"
	}
	return "From"
}

// UnsetAirportLabel is shown for a slot nothing was committed to
const UnsetAirportLabel = "Select Airport"

// Selection tracks the origin and destination labels and which slot the
// airport modal is editing.
type Selection struct {
	Origin      string
	Destination string
	Active      Slot
	Open        bool
}

// NewSelection returns a selection with both slots unset
func NewSelection() Selection {
	return Selection{Origin: UnsetAirportLabel, Destination: UnsetAirportLabel}
}

// OpenFor opens the modal editing slot
func (s *Selection) OpenFor(slot Slot) {
	s.Active = slot
	s.Open = true
}

// Close closes the modal without committing
func (s *Selection) Close() {
	s.Open = false
}

// Commit writes the airport name into the active slot only and closes the modal
func (s *Selection) Commit(a models.Airport) {
	switch s.Active {
	case Origin:
		s.Origin = a.Name
	case Destination:
		s.Destination = a.Name
	}
	s.Open = false
}

// Label returns the text stored for slot
func (s Selection) Label(slot Slot) string {
	if slot == Destination {
		return s.Destination
	}
	return s.Origin
}

// IsSet reports whether an airport was committed to slot
func (s Selection) IsSet(slot Slot) bool {
	return s.Label(slot) != UnsetAirportLabel && s.Label(slot) != ""
}
