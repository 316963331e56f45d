package analytics

import "time"

// Streaks derives the current and longest consecutive-day completion streaks
// from completion timestamps ordered newest-first. The full history is
// expected, not a windowed slice.
//
// The scan walks an expected-date cursor backwards from today: a completion
// whose calendar date equals the cursor extends the streak and moves the
// cursor one day back; the first mismatch stops the scan entirely.
func Streaks(completions []time.Time, now time.Time) (current int, longest int) {
	if len(completions) == 0 {
		return 0, 0
	}

	expected := toDay(now)
	for _, ts := range completions {
		if !toDay(ts).Equal(expected) {
			break
		}
		current++
		expected = expected.AddDate(0, 0, -1)
	}

	// TODO: walk the whole history for a true historical maximum.
	longest = current
	return current, longest
}

func toDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
