package advisor

import "time"

// IsNight reports whether observed falls outside the sunrise..sunset interval.
// All three values come from the same provider clock, so no zone conversion is
// done. If any of them is missing the answer is false (day).
func IsNight(observed, sunrise, sunset time.Time) bool {
	if observed.IsZero() || sunrise.IsZero() || sunset.IsZero() {
		return false
	}
	return observed.Before(sunrise) || observed.After(sunset)
}
