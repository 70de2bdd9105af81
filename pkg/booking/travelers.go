package booking

import "fmt"

// TravelerKind addresses one of the traveler counters
type TravelerKind int

const (
	Adults TravelerKind = iota
	Children
	Infants
)

// TravelerKinds lists the counters in display order
var TravelerKinds = []TravelerKind{Adults, Children, Infants}

func (k TravelerKind) String() string {
	switch k {
	case Adults:
		return "Adults"
	case Children:
		return "Children"
	case Infants:
		return "Infants"
	}
	return "Unknown"
}

// Travelers holds three independent non-negative counters. No rule ties the
// counters together; zero adults with children is accepted.
type Travelers struct {
	Adults   int
	Children int
	Infants  int
}

func (t *Travelers) counter(kind TravelerKind) *int {
	switch kind {
	case Adults:
		return &t.Adults
	case Children:
		return &t.Children
	case Infants:
		return &t.Infants
	}
	return nil
}

// Count returns the value of one counter
func (t Travelers) Count(kind TravelerKind) int {
	if c := t.counter(kind); c != nil {
		return *c
	}
	return 0
}

// Increment adds one traveler of kind
func (t *Travelers) Increment(kind TravelerKind) {
	if c := t.counter(kind); c != nil {
		*c++
	}
}

// Decrement removes one traveler of kind; it is a no-op at zero
func (t *Travelers) Decrement(kind TravelerKind) {
	if c := t.counter(kind); c != nil && *c > 0 {
		*c--
	}
}

// Total is the sum of all counters
func (t Travelers) Total() int {
	return t.Adults + t.Children + t.Infants
}

// Summary renders the compact counter line, e.g. "2 Ad, 1 Ch, 0 In"
func (t Travelers) Summary() string {
	return fmt.Sprintf("%d Ad, %d Ch, %d In", t.Adults, t.Children, t.Infants)
}
