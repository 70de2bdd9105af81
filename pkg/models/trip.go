package models

// TripType is one-way or round-trip
type TripType string

const (
	OneWay    TripType = "one-way"
	RoundTrip TripType = "round-trip"
)

// Title returns the label shown on the trip type toggle
func (t TripType) Title() string {
	if t == RoundTrip {
		return "Round Trip"
	}
	return "One Way"
}

// CabinClass is one of the fixed travel classes
type CabinClass string

const (
	Economy  CabinClass = "Economy"
	Business CabinClass = "Business"
	First    CabinClass = "First"
)

// CabinClasses lists the classes in display order
var CabinClasses = []CabinClass{Economy, Business, First}

// FareOption is a promotional fare tag
type FareOption string

const (
	FareStudent       FareOption = "Student"
	FareSeniorCitizen FareOption = "Senior Citizen"
	FareArmedForce    FareOption = "Armed Force"
)

// FareOptions lists the special fares in display order
var FareOptions = []FareOption{FareStudent, FareSeniorCitizen, FareArmedForce}
