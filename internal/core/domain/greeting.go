package domain

// Greeting returns the header greeting for an hour of the day.
// Hours outside 0-23 are wrapped into range.
func Greeting(hour int) string {
	hour %= 24
	if hour < 0 {
		hour += 24
	}
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}
