package analytics

import (
	"time"

	"github.com/careloop/selfcare-backend/internal/models"
)

// RoutineAnalytics is the aggregated view over a user's routines and
// completion events within a day window.
type RoutineAnalytics struct {
	TotalRoutines        int            `json:"total_routines"`
	CompletedRoutines    int            `json:"completed_routines"`
	CompletionRate       float64        `json:"completion_rate"`
	MostCommonMood       *string        `json:"most_common_mood"`
	AverageEffectiveness *float64       `json:"average_effectiveness"`
	CurrentStreak        int            `json:"current_streak"`
	LongestStreak        int            `json:"longest_streak"`
	MoodTrends           map[string]int `json:"mood_trends"`
	CategoryDistribution map[string]int `json:"category_distribution"`
}

// ComputeRoutineAnalytics aggregates in-window routines and completions.
// allCompletionTimes must be the user's full completion history ordered
// newest-first; streaks are never window-limited.
//
// The completion rate divides in-window completion events by in-window
// routines. A completion may reference a routine created before the window,
// so the rate can exceed 1; callers depend on this behavior.
func ComputeRoutineAnalytics(
	routines []models.Routine,
	completions []models.RoutineCompletion,
	allCompletionTimes []time.Time,
	now time.Time,
) RoutineAnalytics {
	result := RoutineAnalytics{
		MoodTrends:           make(map[string]int),
		CategoryDistribution: make(map[string]int),
	}

	result.TotalRoutines = len(routines)
	result.CompletedRoutines = len(completions)
	if result.TotalRoutines > 0 {
		result.CompletionRate = round2(float64(result.CompletedRoutines) / float64(result.TotalRoutines))
	}

	moodOrder := make([]string, 0, len(routines))
	for _, r := range routines {
		if _, seen := result.MoodTrends[r.Mood]; !seen {
			moodOrder = append(moodOrder, r.Mood)
		}
		result.MoodTrends[r.Mood]++

		if r.Category != nil {
			result.CategoryDistribution[*r.Category]++
		}
	}

	best := ""
	bestCount := 0
	for _, mood := range moodOrder {
		if result.MoodTrends[mood] > bestCount {
			best = mood
			bestCount = result.MoodTrends[mood]
		}
	}
	if best != "" {
		result.MostCommonMood = &best
	}

	var ratingSum, ratingCount int
	for _, c := range completions {
		if c.EffectivenessRating != nil {
			ratingSum += *c.EffectivenessRating
			ratingCount++
		}
	}
	if ratingCount > 0 {
		avg := round2(float64(ratingSum) / float64(ratingCount))
		result.AverageEffectiveness = &avg
	}

	result.CurrentStreak, result.LongestStreak = Streaks(allCompletionTimes, now)
	return result
}
