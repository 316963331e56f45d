package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreaksEmptyHistory(t *testing.T) {
	current, longest := Streaks(nil, time.Now())

	assert.Equal(t, 0, current)
	assert.Equal(t, 0, longest)
}

func TestStreaksConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 9, 21, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 7, 15, 0, 0, time.UTC),
	}

	current, longest := Streaks(completions, now)

	assert.Equal(t, 3, current)
	assert.Equal(t, 3, longest)
}

func TestStreaksStopsAtGap(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 8, 0, 0, 0, time.UTC), // June 9 missing
		time.Date(2025, 6, 7, 8, 0, 0, 0, time.UTC),
	}

	current, longest := Streaks(completions, now)

	assert.Equal(t, 1, current)
	assert.Equal(t, 1, longest)
}

func TestStreaksNoCompletionToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 8, 0, 0, 0, time.UTC),
	}

	current, longest := Streaks(completions, now)

	assert.Equal(t, 0, current)
	assert.Equal(t, 0, longest)
}

func TestStreaksSecondCompletionSameDayEndsScan(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC),
	}

	current, _ := Streaks(completions, now)

	assert.Equal(t, 1, current)
}

func TestStreaksTimezoneNormalization(t *testing.T) {
	// 23:00-05:00 on June 9 is June 10 in UTC.
	loc := time.FixedZone("EST", -5*3600)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []time.Time{
		time.Date(2025, 6, 9, 23, 0, 0, 0, loc),
	}

	current, _ := Streaks(completions, now)

	assert.Equal(t, 1, current)
}
