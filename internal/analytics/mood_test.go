package analytics

import (
	"testing"
	"time"

	"github.com/careloop/selfcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodEntry(mood string, intensity *int, at time.Time) models.MoodEntry {
	return models.MoodEntry{Mood: mood, Intensity: intensity, CreatedAt: at}
}

func intPtr(v int) *int { return &v }

func TestComputeMoodAnalyticsEmpty(t *testing.T) {
	result := ComputeMoodAnalytics(nil)

	assert.Equal(t, 0, result.TotalEntries)
	assert.Equal(t, 0.0, result.AverageIntensity)
	assert.Nil(t, result.MostCommonMood)
	assert.Empty(t, result.MoodDistribution)
	assert.Empty(t, result.DailyAverages)
	assert.Empty(t, result.Trends)
}

func TestComputeMoodAnalyticsDistributionSumsToTotal(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodEntry("calm", intPtr(7), at),
		moodEntry("calm", intPtr(6), at),
		moodEntry("anxious", intPtr(4), at),
		moodEntry("tired", nil, at),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, 4, result.TotalEntries)
	sum := 0
	for _, count := range result.MoodDistribution {
		sum += count
	}
	assert.Equal(t, result.TotalEntries, sum)
}

func TestComputeMoodAnalyticsAverageIgnoresMissingIntensity(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodEntry("calm", intPtr(8), at),
		moodEntry("calm", intPtr(5), at),
		moodEntry("flat", nil, at),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, 6.5, result.AverageIntensity)
}

func TestComputeMoodAnalyticsAllIntensityAbsent(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodEntry("calm", nil, at),
		moodEntry("tired", nil, at),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, 2, result.TotalEntries)
	assert.Equal(t, 0.0, result.AverageIntensity)
	assert.Empty(t, result.DailyAverages)
	assert.Empty(t, result.Trends)
	require.NotNil(t, result.MostCommonMood)
	assert.Equal(t, "calm", *result.MostCommonMood)
}

func TestComputeMoodAnalyticsMostCommonMoodStableOnTies(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodEntry("tired", intPtr(3), at),
		moodEntry("calm", intPtr(7), at),
		moodEntry("calm", intPtr(6), at),
		moodEntry("tired", intPtr(4), at),
	}

	result := ComputeMoodAnalytics(entries)

	require.NotNil(t, result.MostCommonMood)
	assert.Equal(t, "tired", *result.MostCommonMood)
}

func TestComputeMoodAnalyticsDailyAveragesOmitEmptyDays(t *testing.T) {
	entries := []models.MoodEntry{
		moodEntry("calm", intPtr(6), time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)),
		moodEntry("calm", intPtr(8), time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)),
		moodEntry("flat", nil, time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, map[string]float64{"2025-06-10": 7}, result.DailyAverages)
}

func TestComputeMoodAnalyticsWeeklyTrendKeys(t *testing.T) {
	// June 10 2025 is a Tuesday in ISO week 24; June 16 starts week 25.
	entries := []models.MoodEntry{
		moodEntry("calm", intPtr(6), time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)),
		moodEntry("calm", intPtr(8), time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, map[string]float64{
		"2025-W24": 6,
		"2025-W25": 8,
	}, result.Trends)
}

func TestComputeMoodAnalyticsAverageRounded(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	entries := []models.MoodEntry{
		moodEntry("calm", intPtr(5), at),
		moodEntry("calm", intPtr(5), at),
		moodEntry("calm", intPtr(6), at),
	}

	result := ComputeMoodAnalytics(entries)

	assert.Equal(t, 5.33, result.AverageIntensity)
}
