package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineMeters(t *testing.T) {
	// Tiananmen to Wangfujing, roughly 1.7 km.
	d := HaversineMeters(39.916527, 116.397128, 39.917718, 116.417199)
	require.InDelta(t, 1700, d, 200)

	// Same point.
	require.Equal(t, 0.0, HaversineMeters(39.916527, 116.397128, 39.916527, 116.397128))

	// One degree of latitude is about 111 km.
	d = HaversineMeters(0, 0, 1, 0)
	require.InDelta(t, 111000, d, 500)
}
