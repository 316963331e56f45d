package dto

// GenerateRequest asks for a new AI-generated routine.
type GenerateRequest struct {
	Mood     string  `json:"mood"`
	Goal     string  `json:"goal"`
	Context  *string `json:"context"`
	Duration *int    `json:"duration"`
}

// CompleteRoutineRequest records a completion event for a routine.
type CompleteRoutineRequest struct {
	CompletedSteps      []int   `json:"completed_steps"`
	MoodAfter           *string `json:"mood_after"`
	EffectivenessRating *int    `json:"effectiveness_rating"`
	Notes               *string `json:"notes"`
}
