package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("known distance Colombo to Kandy", func(t *testing.T) {
		// Colombo (6.9271, 79.8612) to Kandy (7.2906, 80.6337) is ~94 km
		d := HaversineDistance(6.9271, 79.8612, 7.2906, 80.6337)
		assert.InDelta(t, 94.0, d, 3.0)
	})

	t.Run("zero distance for same point", func(t *testing.T) {
		d := HaversineDistance(6.9271, 79.8612, 6.9271, 79.8612)
		assert.InDelta(t, 0.0, d, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := HaversineDistance(6.9271, 79.8612, 8.3114, 80.4037)
		ba := HaversineDistance(8.3114, 80.4037, 6.9271, 79.8612)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("antipodal points bounded by half circumference", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 180)
		assert.InDelta(t, 20015.0, d, 10.0)
	})
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"valid Sri Lanka", 6.9271, 79.8612, true},
		{"boundary north pole", 90, 0, true},
		{"boundary date line", 0, 180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -90.1, 0, false},
		{"longitude too high", 0, 180.1, false},
		{"longitude too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateCoordinates(tt.lat, tt.lon))
		})
	}
}
