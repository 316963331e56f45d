package services

import (
	"strings"

	"github.com/careloop/selfcare-backend/internal/models"
)

const fallbackDuration = 15

var fallbackTips = []string{
	"Take your time with each step",
	"Focus on the present moment",
	"Be kind to yourself",
}

type fallbackEntry struct {
	key      string
	steps    []string
	category string
	priority string
}

// Checked in order; the first key found in the lowercased mood wins and
// "stressed" is the default.
var fallbackEntries = []fallbackEntry{
	{
		key: "stressed",
		steps: []string{
			"Take 5 deep breaths, inhaling for 4 counts and exhaling for 6 counts",
			"Step outside or near a window for fresh air and natural light",
			"Write down 3 things you're grateful for today",
		},
		category: models.CategoryMindfulness,
		priority: models.PriorityHigh,
	},
	{
		key: "tired",
		steps: []string{
			"Drink a glass of water to rehydrate",
			"Do 5 gentle stretches or light movement",
			"Take a 5-minute walk or do some light exercise",
		},
		category: models.CategoryPhysical,
		priority: models.PriorityMedium,
	},
	{
		key: "anxious",
		steps: []string{
			"Practice the 5-4-3-2-1 grounding technique",
			"Listen to calming music or nature sounds for 5 minutes",
			"Call or text someone you care about",
		},
		category: models.CategoryMindfulness,
		priority: models.PriorityHigh,
	},
}

// fallbackRoutine returns the canned routine substituted when the generation
// call fails or produces nothing usable.
func fallbackRoutine(mood string) *RoutineDraft {
	moodLower := strings.ToLower(mood)

	entry := fallbackEntries[0]
	for _, candidate := range fallbackEntries {
		if strings.Contains(moodLower, candidate.key) {
			entry = candidate
			break
		}
	}

	duration := fallbackDuration
	category := entry.category
	priority := entry.priority
	return &RoutineDraft{
		Steps:             entry.steps,
		EstimatedDuration: &duration,
		Category:          &category,
		Priority:          &priority,
		Tips:              fallbackTips,
	}
}
