package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	require.Equal(t, "09:00", FormatClock(DayStartMinute))
	require.Equal(t, "00:00", FormatClock(0))
	require.Equal(t, "13:05", FormatClock(13*60+5))
	require.Equal(t, "23:59", FormatClock(23*60+59))

	// Past midnight wraps around.
	require.Equal(t, "01:30", FormatClock(25*60+30))
}
