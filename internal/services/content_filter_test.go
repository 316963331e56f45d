package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilterIsClean(t *testing.T) {
	cf := NewContentFilter()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"plain note", "Felt much calmer after the breathing exercise", true},
		{"profanity", "this day was shit", false},
		{"profanity mixed case", "What the FUCK", false},
		{"substring not flagged", "classic assessment", true},
		{"url", "check https://example.com for more", false},
		{"www url", "see www.example.com/page", false},
		{"email", "reach me at someone@example.com", false},
		{"phone", "call 555-123-4567 anytime", false},
		{"parenthesized phone", "call (555) 123-4567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cf.IsClean(tt.text))
		})
	}
}

func TestContentFilterSanitize(t *testing.T) {
	cf := NewContentFilter()

	assert.Equal(t, "slept well, feeling rested", cf.Sanitize("slept well, feeling rested"))
	assert.Equal(t, FilteredPlaceholder, cf.Sanitize("visit www.spam.site now"))
	assert.Equal(t, "", cf.Sanitize(""))
}
