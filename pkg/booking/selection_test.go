package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flightbook/flightbook-cli/pkg/models"
)

func TestSelectionCommitOrigin(t *testing.T) {
	s := NewSelection()
	s.OpenFor(Origin)
	s.Commit(models.Airport{Name: "London Heathrow", City: "London"})

	assert.Equal(t, "London Heathrow", s.Origin)
	assert.Equal(t, UnsetAirportLabel, s.Destination)
	assert.False(t, s.Open)
	assert.True(t, s.IsSet(Origin))
	assert.False(t, s.IsSet(Destination))
}

func TestSelectionCommitDestinationLeavesOrigin(t *testing.T) {
	s := NewSelection()
	s.OpenFor(Origin)
	s.Commit(models.Airport{Name: "Paris Orly"})

	s.OpenFor(Destination)
	assert.True(t, s.Open)
	assert.Equal(t, Destination, s.Active)
	s.Commit(models.Airport{Name: "John F Kennedy International"})

	assert.Equal(t, "Paris Orly", s.Label(Origin))
	assert.Equal(t, "John F Kennedy International", s.Label(Destination))
}

func TestSelectionClose(t *testing.T) {
	s := NewSelection()
	s.OpenFor(Destination)
	s.Close()

	assert.False(t, s.Open)
	assert.Equal(t, UnsetAirportLabel, s.Destination)
}

func TestSlotString(t *testing.T) {
	assert.Equal(t, "From", Origin.String())
	assert.Equal(t, "To", Destination.String())
}
