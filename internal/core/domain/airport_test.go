package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAirportLayout(t *testing.T) {
	assert.True(t, IsAirportLayout([]string{"IATA", "ICAO", "Airport name", "Location served", "Time", "DST"}))
	assert.True(t, IsAirportLayout([]string{"IATA", "ICAO", "Airport name", "Location served"}))

	assert.False(t, IsAirportLayout(nil))
	assert.False(t, IsAirportLayout([]string{"IATA", "ICAO", "Airport name"}))
	assert.False(t, IsAirportLayout([]string{"ICAO", "IATA", "Airport name", "Location served"}))
	assert.False(t, IsAirportLayout([]string{"IATA", "ICAO", "Airport name", "Location served", "Time"}))
	assert.False(t, IsAirportLayout([]string{"IATA", "ICAO", "Airport Name", "Location served"}))
}
