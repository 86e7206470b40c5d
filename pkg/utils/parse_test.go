package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	lat, lng := ParseLatLng("39.9165, 116.3971")
	require.NotNil(t, lat)
	require.NotNil(t, lng)
	require.InDelta(t, 39.9165, *lat, 1e-9)
	require.InDelta(t, 116.3971, *lng, 1e-9)

	lat, lng = ParseLatLng(" -33.86 , 151.21 ")
	require.NotNil(t, lat)
	require.NotNil(t, lng)
	require.InDelta(t, -33.86, *lat, 1e-9)
	require.InDelta(t, 151.21, *lng, 1e-9)
}

func TestParseLatLngRejectsNonCoordinates(t *testing.T) {
	for _, text := range []string{
		"",
		"Shinjuku, Tokyo",
		"39.9165",
		"39.9165,116.3971,12",
		"north, east",
	} {
		lat, lng := ParseLatLng(text)
		require.Nil(t, lat, "input %q", text)
		require.Nil(t, lng, "input %q", text)
	}
}
