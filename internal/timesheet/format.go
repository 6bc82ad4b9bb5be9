package timesheet

import "strconv"

// FormatHours renders a duration as "1 hour", "0.5 hour", "2.5 hours".
// Zero is plural ("0 hours"). No rounding is applied.
func FormatHours(hours float64) string {
	if hours > 0 && hours <= 1 {
		return formatNumber(hours) + " hour"
	}
	return formatNumber(hours) + " hours"
}

// formatNumber prints the shortest representation that round-trips.
func formatNumber(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
