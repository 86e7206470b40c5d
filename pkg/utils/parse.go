package utils

import (
	"strconv"
	"strings"
)

// ParseLatLng parses a "lat,lng" string. It returns nil pointers when the
// text is not a coordinate pair, letting the caller fall through to
// geocoding instead.
func ParseLatLng(text string) (*float64, *float64) {
	if !strings.Contains(text, ",") {
		return nil, nil
	}

	parts := strings.SplitN(text, ",", 2)
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return nil, nil
	}

	return &lat, &lon
}
