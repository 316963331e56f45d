package analytics

import (
	"testing"
	"time"

	"github.com/careloop/selfcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestComputeRoutineAnalyticsEmpty(t *testing.T) {
	result := ComputeRoutineAnalytics(nil, nil, nil, time.Now())

	assert.Equal(t, 0, result.TotalRoutines)
	assert.Equal(t, 0, result.CompletedRoutines)
	assert.Equal(t, 0.0, result.CompletionRate)
	assert.Nil(t, result.MostCommonMood)
	assert.Nil(t, result.AverageEffectiveness)
	assert.Equal(t, 0, result.CurrentStreak)
	assert.Empty(t, result.MoodTrends)
	assert.Empty(t, result.CategoryDistribution)
}

func TestComputeRoutineAnalyticsCompletionRate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	routines := []models.Routine{
		{Mood: "stressed", Category: strPtr(models.CategoryMindfulness)},
		{Mood: "tired", Category: strPtr(models.CategoryPhysical)},
		{Mood: "stressed", Category: strPtr(models.CategoryMindfulness)},
		{Mood: "flat"},
	}
	completions := []models.RoutineCompletion{{}, {}}

	result := ComputeRoutineAnalytics(routines, completions, nil, now)

	assert.Equal(t, 4, result.TotalRoutines)
	assert.Equal(t, 2, result.CompletedRoutines)
	assert.Equal(t, 0.5, result.CompletionRate)
	require.NotNil(t, result.MostCommonMood)
	assert.Equal(t, "stressed", *result.MostCommonMood)
	assert.Equal(t, map[string]int{"stressed": 2, "tired": 1, "flat": 1}, result.MoodTrends)
	assert.Equal(t, map[string]int{
		models.CategoryMindfulness: 2,
		models.CategoryPhysical:    1,
	}, result.CategoryDistribution)
}

func TestComputeRoutineAnalyticsRateCanExceedOne(t *testing.T) {
	// Completions may reference routines created before the window, so the
	// in-window rate is allowed past 1.
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	routines := []models.Routine{{Mood: "calm"}}
	completions := []models.RoutineCompletion{{}, {}, {}}

	result := ComputeRoutineAnalytics(routines, completions, nil, now)

	assert.Equal(t, 3.0, result.CompletionRate)
}

func TestComputeRoutineAnalyticsAverageEffectiveness(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []models.RoutineCompletion{
		{EffectivenessRating: intPtr(5)},
		{EffectivenessRating: intPtr(4)},
		{EffectivenessRating: nil},
	}

	result := ComputeRoutineAnalytics(nil, completions, nil, now)

	require.NotNil(t, result.AverageEffectiveness)
	assert.Equal(t, 4.5, *result.AverageEffectiveness)
}

func TestComputeRoutineAnalyticsNoRatings(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	completions := []models.RoutineCompletion{{}, {}}

	result := ComputeRoutineAnalytics(nil, completions, nil, now)

	assert.Nil(t, result.AverageEffectiveness)
}

func TestComputeRoutineAnalyticsStreaksUseFullHistory(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	history := []time.Time{
		time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC),
	}

	result := ComputeRoutineAnalytics(nil, nil, history, now)

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 2, result.LongestStreak)
}
