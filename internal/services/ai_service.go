package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/careloop/selfcare-backend/internal/dto"
)

// RoutineDraft is the transient output of a generation call, used to
// construct a persisted routine. It is never stored as-is.
type RoutineDraft struct {
	Steps             []string
	EstimatedDuration *int
	Category          *string
	Priority          *string
	Tips              []string
}

// RoutineHistoryItem summarizes a past routine for prompt context.
type RoutineHistoryItem struct {
	Mood string
	Goal string
}

// AIService turns generation requests into routine drafts. Upstream failures
// and unusable responses degrade into a deterministic fallback routine, so
// GenerateDraft never returns an error.
type AIService struct {
	client TextCompleter
}

func NewAIService(client TextCompleter) *AIService {
	return &AIService{client: client}
}

// GenerateDraft builds a prompt, invokes the text generator once and parses
// whatever comes back. Category and priority always come from the keyword
// classifier, not the model.
func (s *AIService) GenerateDraft(ctx context.Context, req *dto.GenerateRequest, history []RoutineHistoryItem) *RoutineDraft {
	prompt := buildPrompt(req, history)

	raw, err := s.client.Complete(ctx, prompt)
	if err != nil {
		slog.Error("routine generation failed, using fallback", "action", "generate_routine", "error", err)
		return fallbackRoutine(req.Mood)
	}

	content, structured := parseGenerated(raw)
	if !structured {
		slog.Warn("generation response was not valid JSON, parsed as text", "action", "generate_routine")
	}

	duration := content.Duration
	if duration == nil && structured {
		duration = req.Duration
	}

	category := classifyCategory(req.Mood, req.Goal)
	priority := classifyPriority(req.Mood)
	return &RoutineDraft{
		Steps:             content.Steps,
		EstimatedDuration: duration,
		Category:          &category,
		Priority:          &priority,
		Tips:              content.Tips,
	}
}

func buildPrompt(req *dto.GenerateRequest, history []RoutineHistoryItem) string {
	var b strings.Builder

	b.WriteString("You are an expert self-care and wellness coach. Create a personalized routine for a user who:\n")
	fmt.Fprintf(&b, "- Currently feels: %s\n", req.Mood)
	fmt.Fprintf(&b, "- Wants to achieve: %s\n", req.Goal)

	if req.Context != nil && *req.Context != "" {
		fmt.Fprintf(&b, "- Additional context: %s\n", *req.Context)
	}
	if req.Duration != nil {
		fmt.Fprintf(&b, "- Preferred duration: %d minutes\n", *req.Duration)
	}
	if len(history) > 0 {
		fmt.Fprintf(&b, "- Previous successful routines: %s\n", formatHistory(history))
	}

	b.WriteString(`
Please generate a response in the following JSON format:
{
    "steps": ["step 1", "step 2", "step 3"],
    "duration": estimated_duration_in_minutes,
    "tips": ["tip 1", "tip 2"]
}

Requirements:
- Provide 3-5 specific, actionable steps
- Each step should be concise and clear
- Consider the user's current mood and goal
- Make it practical and achievable
- Include helpful tips for better results
- Ensure the routine is evidence-based and safe
`)

	return b.String()
}

// formatHistory renders the last 3 routines for prompt context.
func formatHistory(history []RoutineHistoryItem) string {
	if len(history) > 3 {
		history = history[len(history)-3:]
	}

	parts := make([]string, 0, len(history))
	for _, item := range history {
		parts = append(parts, fmt.Sprintf("Mood: %s, Goal: %s", item.Mood, item.Goal))
	}
	return strings.Join(parts, "; ")
}
