package utils

import "fmt"

// DayStartMinute is the synthetic wall-clock start of a visiting day
// (09:00), expressed in minutes since midnight.
const DayStartMinute = 9 * 60

// FormatClock renders minutes since midnight as HH:MM. Values past
// midnight wrap into the next day.
func FormatClock(minute int) string {
	if minute < 0 {
		minute = 0
	}
	minute %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
