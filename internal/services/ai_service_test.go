package services

import (
	"context"
	"errors"
	"testing"

	"github.com/careloop/selfcare-backend/internal/dto"
	"github.com/careloop/selfcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	response string
	err      error
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.response, s.err
}

func TestGenerateDraftStructuredResponse(t *testing.T) {
	svc := NewAIService(&stubCompleter{
		response: `{"steps": ["Breathe", "Stretch", "Journal"], "duration": 12, "tips": ["Go slow"]}`,
	})

	draft := svc.GenerateDraft(context.Background(), &dto.GenerateRequest{
		Mood: "anxious", Goal: "calm down",
	}, nil)

	require.NotNil(t, draft)
	assert.Equal(t, []string{"Breathe", "Stretch", "Journal"}, draft.Steps)
	require.NotNil(t, draft.EstimatedDuration)
	assert.Equal(t, 12, *draft.EstimatedDuration)
	require.NotNil(t, draft.Category)
	assert.Equal(t, models.CategoryMindfulness, *draft.Category)
	require.NotNil(t, draft.Priority)
	assert.Equal(t, models.PriorityMedium, *draft.Priority)
}

func TestGenerateDraftFallsBackOnError(t *testing.T) {
	svc := NewAIService(&stubCompleter{err: errors.New("connection refused")})

	draft := svc.GenerateDraft(context.Background(), &dto.GenerateRequest{
		Mood: "feeling stressed", Goal: "unwind",
	}, nil)

	require.NotNil(t, draft)
	assert.Len(t, draft.Steps, 3)
	require.NotNil(t, draft.EstimatedDuration)
	assert.Equal(t, 15, *draft.EstimatedDuration)
	require.NotNil(t, draft.Category)
	assert.Equal(t, models.CategoryMindfulness, *draft.Category)
	require.NotNil(t, draft.Priority)
	assert.Equal(t, models.PriorityHigh, *draft.Priority)
	assert.Len(t, draft.Tips, 3)
}

func TestGenerateDraftFallbackKeyedByMood(t *testing.T) {
	tests := []struct {
		mood         string
		wantCategory string
		wantPriority string
		wantFirst    string
	}{
		{"so tired today", models.CategoryPhysical, models.PriorityMedium, "Drink a glass of water to rehydrate"},
		{"anxious again", models.CategoryMindfulness, models.PriorityHigh, "Practice the 5-4-3-2-1 grounding technique"},
		{"no keyword here", models.CategoryMindfulness, models.PriorityHigh, "Take 5 deep breaths, inhaling for 4 counts and exhaling for 6 counts"},
	}

	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			svc := NewAIService(&stubCompleter{err: ErrAIUnavailable})

			draft := svc.GenerateDraft(context.Background(), &dto.GenerateRequest{
				Mood: tt.mood, Goal: "feel better",
			}, nil)

			require.NotNil(t, draft)
			require.NotEmpty(t, draft.Steps)
			assert.Equal(t, tt.wantFirst, draft.Steps[0])
			assert.Equal(t, tt.wantCategory, *draft.Category)
			assert.Equal(t, tt.wantPriority, *draft.Priority)
		})
	}
}

func TestGenerateDraftDurationDefaulting(t *testing.T) {
	requested := 25

	t.Run("structured response without duration inherits the request", func(t *testing.T) {
		svc := NewAIService(&stubCompleter{response: `{"steps": ["Walk"], "tips": []}`})

		draft := svc.GenerateDraft(context.Background(), &dto.GenerateRequest{
			Mood: "fine", Goal: "move", Duration: &requested,
		}, nil)

		require.NotNil(t, draft.EstimatedDuration)
		assert.Equal(t, 25, *draft.EstimatedDuration)
	})

	t.Run("text response leaves duration unset", func(t *testing.T) {
		svc := NewAIService(&stubCompleter{response: "1. Walk around the block"})

		draft := svc.GenerateDraft(context.Background(), &dto.GenerateRequest{
			Mood: "fine", Goal: "move", Duration: &requested,
		}, nil)

		assert.Nil(t, draft.EstimatedDuration)
	})
}

func TestBuildPromptIncludesOptionalFields(t *testing.T) {
	ctx := "working from home"
	duration := 30
	prompt := buildPrompt(&dto.GenerateRequest{
		Mood:     "stressed",
		Goal:     "relax",
		Context:  &ctx,
		Duration: &duration,
	}, []RoutineHistoryItem{
		{Mood: "tired", Goal: "rest"},
		{Mood: "anxious", Goal: "calm"},
		{Mood: "flat", Goal: "energize"},
		{Mood: "ok", Goal: "maintain"},
	})

	assert.Contains(t, prompt, "Currently feels: stressed")
	assert.Contains(t, prompt, "Wants to achieve: relax")
	assert.Contains(t, prompt, "Additional context: working from home")
	assert.Contains(t, prompt, "Preferred duration: 30 minutes")
	// Only the last 3 history items are rendered.
	assert.NotContains(t, prompt, "Mood: tired")
	assert.Contains(t, prompt, "Mood: anxious, Goal: calm")
	assert.Contains(t, prompt, "Mood: ok, Goal: maintain")
}
