package models

import "strconv"

// Airport is the normalized airport record every lookup adapter produces.
type Airport struct {
	ICAO    string `json:"icao" yaml:"icao"`
	IATA    string `json:"iata" yaml:"iata"`
	Name    string `json:"name" yaml:"name"`
	City    string `json:"city" yaml:"city"`
	Region  string `json:"region" yaml:"region"`
	Country string `json:"country" yaml:"country"`
}

// Label returns the text shown for an airport row
func (a Airport) Label() string {
	switch {
	case a.City != "" && a.Country != "":
		return a.Name + " (" + a.City + ", " + a.Country + ")"
	case a.Country != "":
		return a.Name + " (" + a.Country + ")"
	case a.City != "":
		return a.Name + " (" + a.City + ")"
	}
	return a.Name
}

// Key composes a display key for list rendering. Upstreams do not guarantee
// unique codes, so the row index is part of the key.
func (a Airport) Key(index int) string {
	return a.IATA + "-" + a.City + "-" + a.Country + "-" + strconv.Itoa(index)
}
