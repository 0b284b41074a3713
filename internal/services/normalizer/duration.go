package normalizer

import "strconv"

// FormatDuration converts a duration in seconds to the ISO 8601 style
// string used by the YouTube Data API (PT#H#M#S). Zero or negative input
// yields "PT0S". Zero hour/minute components are omitted, but the seconds
// component is kept whenever it is the only one, so the result is never a
// bare "PT".
func FormatDuration(seconds int64) string {
	if seconds <= 0 {
		return "PT0S"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	duration := "PT"
	if hours > 0 {
		duration += strconv.FormatInt(hours, 10) + "H"
	}
	if minutes > 0 {
		duration += strconv.FormatInt(minutes, 10) + "M"
	}
	if secs > 0 || (hours == 0 && minutes == 0) {
		duration += strconv.FormatInt(secs, 10) + "S"
	}

	return duration
}
