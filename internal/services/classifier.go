package services

import (
	"strings"

	"github.com/careloop/selfcare-backend/internal/models"
)

// Classification rules are ordered: earlier rules shadow later ones on
// overlapping keywords, and mood rules are checked before goal rules.
type keywordRule struct {
	keywords []string
	value    string
}

var moodCategoryRules = []keywordRule{
	{[]string{"anxious", "stressed", "overwhelmed"}, models.CategoryMindfulness},
	{[]string{"tired", "low energy", "sluggish"}, models.CategoryPhysical},
}

var goalCategoryRules = []keywordRule{
	{[]string{"creative", "art", "write", "music"}, models.CategoryCreative},
	{[]string{"social", "connect", "friends", "family"}, models.CategorySocial},
	{[]string{"relax", "calm", "peaceful"}, models.CategoryRelaxation},
	{[]string{"productive", "focus", "work"}, models.CategoryProductivity},
}

var priorityRules = []keywordRule{
	{[]string{"crisis", "emergency", "urgent", "severe"}, models.PriorityUrgent},
	{[]string{"very", "extremely", "really", "intense"}, models.PriorityHigh},
	{[]string{"somewhat", "a bit", "slightly"}, models.PriorityLow},
}

// classifyCategory maps a mood/goal pair to a routine category.
func classifyCategory(mood, goal string) string {
	moodLower := strings.ToLower(mood)
	goalLower := strings.ToLower(goal)

	for _, rule := range moodCategoryRules {
		if containsAny(moodLower, rule.keywords) {
			return rule.value
		}
	}
	for _, rule := range goalCategoryRules {
		if containsAny(goalLower, rule.keywords) {
			return rule.value
		}
	}
	return models.CategoryEmotional
}

// classifyPriority maps mood text to a priority level.
func classifyPriority(mood string) string {
	moodLower := strings.ToLower(mood)

	for _, rule := range priorityRules {
		if containsAny(moodLower, rule.keywords) {
			return rule.value
		}
	}
	return models.PriorityMedium
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
