package analytics

import (
	"fmt"
	"math"

	"github.com/careloop/selfcare-backend/internal/models"
)

// MoodAnalytics is the aggregated view over a user's mood entries.
type MoodAnalytics struct {
	TotalEntries     int                `json:"total_entries"`
	AverageIntensity float64            `json:"average_intensity"`
	MostCommonMood   *string            `json:"most_common_mood"`
	MoodDistribution map[string]int     `json:"mood_distribution"`
	DailyAverages    map[string]float64 `json:"daily_averages"`
	Trends           map[string]float64 `json:"trends"`
}

// ComputeMoodAnalytics aggregates a snapshot of mood entries. An empty
// snapshot yields a zero-valued record, never an error.
func ComputeMoodAnalytics(entries []models.MoodEntry) MoodAnalytics {
	result := MoodAnalytics{
		MoodDistribution: make(map[string]int),
		DailyAverages:    make(map[string]float64),
		Trends:           make(map[string]float64),
	}

	if len(entries) == 0 {
		return result
	}

	result.TotalEntries = len(entries)

	var intensitySum, intensityCount int
	dailySums := make(map[string]int)
	dailyCounts := make(map[string]int)
	weeklySums := make(map[string]int)
	weeklyCounts := make(map[string]int)

	// moodOrder preserves first-occurrence order so the argmax below is
	// stable under ties.
	moodOrder := make([]string, 0, len(entries))
	for _, entry := range entries {
		if _, seen := result.MoodDistribution[entry.Mood]; !seen {
			moodOrder = append(moodOrder, entry.Mood)
		}
		result.MoodDistribution[entry.Mood]++

		if entry.Intensity == nil {
			continue
		}
		intensitySum += *entry.Intensity
		intensityCount++

		dayKey := entry.CreatedAt.UTC().Format("2006-01-02")
		dailySums[dayKey] += *entry.Intensity
		dailyCounts[dayKey]++

		year, week := entry.CreatedAt.UTC().ISOWeek()
		weekKey := fmt.Sprintf("%d-W%02d", year, week)
		weeklySums[weekKey] += *entry.Intensity
		weeklyCounts[weekKey]++
	}

	if intensityCount > 0 {
		result.AverageIntensity = round2(float64(intensitySum) / float64(intensityCount))
	}

	best := ""
	bestCount := 0
	for _, mood := range moodOrder {
		if result.MoodDistribution[mood] > bestCount {
			best = mood
			bestCount = result.MoodDistribution[mood]
		}
	}
	if best != "" {
		result.MostCommonMood = &best
	}

	// Days or weeks without any intensity-bearing entries are omitted.
	for day, sum := range dailySums {
		result.DailyAverages[day] = float64(sum) / float64(dailyCounts[day])
	}
	for week, sum := range weeklySums {
		result.Trends[week] = float64(sum) / float64(weeklyCounts[week])
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
