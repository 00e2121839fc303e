package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeRequestEvent_Validate(t *testing.T) {
	tests := []struct {
		name      string
		event     GeocodeRequestEvent
		valid     bool
		isReverse bool
	}{
		{
			name:  "address only",
			event: GeocodeRequestEvent{RequestID: uuid.New(), Address: "北京市朝阳区阜通东大街6号"},
			valid: true,
		},
		{
			name:      "location only",
			event:     GeocodeRequestEvent{RequestID: uuid.New(), Location: &Point{Lat: 39.99, Lon: 116.48}},
			valid:     true,
			isReverse: true,
		},
		{
			name:      "location out of range",
			event:     GeocodeRequestEvent{RequestID: uuid.New(), Location: &Point{Lat: 116.48, Lon: 39.99}, Address: "x"},
			valid:     false,
			isReverse: true,
		},
		{
			name:  "empty event",
			event: GeocodeRequestEvent{RequestID: uuid.New()},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.event.Validate())
			assert.Equal(t, tt.isReverse, tt.event.IsReverse())
		})
	}
}

func TestPoint(t *testing.T) {
	p := Point{Lat: 39.990464, Lon: 116.481488}
	assert.Equal(t, "116.481488,39.990464", p.String())

	parsed, err := ParsePoint("116.481488,39.990464")
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	_, err = ParsePoint("116.48")
	assert.Error(t, err)

	_, err = ParsePoint("abc,39.99")
	assert.Error(t, err)
}
