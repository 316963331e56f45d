package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Routine categories.
const (
	CategoryMindfulness  = "Mindfulness"
	CategoryPhysical     = "Physical"
	CategoryEmotional    = "Emotional"
	CategoryProductivity = "Productivity"
	CategoryRelaxation   = "Relaxation"
	CategorySocial       = "Social"
	CategoryCreative     = "Creative"
)

// Priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Routine is a generated sequence of self-care steps tied to a mood/goal
// pair. CompletionCount is only incremented by completion events and equals
// the number of RoutineCompletion rows referencing the routine.
type Routine struct {
	ID              uuid.UUID                     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID                     `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood            string                        `gorm:"size:255;not null" json:"mood"`
	Goal            string                        `gorm:"type:text;not null" json:"goal"`
	Steps           datatypes.JSONSlice[string]   `gorm:"not null" json:"steps"`
	Context         *string                       `gorm:"type:text" json:"context"`
	Duration        *int                          `json:"duration"`
	Category        *string                       `gorm:"size:50" json:"category"`
	Priority        *string                       `gorm:"size:20" json:"priority"`
	IsTemplate      bool                          `gorm:"default:false" json:"is_template"`
	CompletionCount int                           `gorm:"default:0" json:"completion_count"`
	CreatedAt       time.Time                     `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
	DeletedAt       gorm.DeletedAt                `gorm:"index" json:"-"`
}

// RoutineCompletion records that a user performed part or all of a routine.
// Created exactly once per completion event and never mutated afterwards.
type RoutineCompletion struct {
	ID                  uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID              uuid.UUID                `gorm:"type:uuid;not null;index" json:"user_id"`
	RoutineID           uuid.UUID                `gorm:"type:uuid;not null;index" json:"routine_id"`
	CompletedSteps      datatypes.JSONSlice[int] `gorm:"not null" json:"completed_steps"`
	MoodAfter           *string                  `gorm:"size:255" json:"mood_after"`
	EffectivenessRating *int                     `json:"effectiveness_rating"`
	Notes               *string                  `gorm:"type:text" json:"notes"`
	CompletedAt         time.Time                `gorm:"index" json:"completed_at"`
}

// RoutineTemplate is a pre-built routine offered before any AI generation.
type RoutineTemplate struct {
	ID                uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name              string                      `gorm:"size:255;not null" json:"name"`
	Description       *string                     `gorm:"type:text" json:"description"`
	MoodTags          datatypes.JSONSlice[string] `gorm:"not null" json:"mood_tags"`
	GoalTags          datatypes.JSONSlice[string] `gorm:"not null" json:"goal_tags"`
	Steps             datatypes.JSONSlice[string] `gorm:"not null" json:"steps"`
	Category          string                      `gorm:"size:50;not null" json:"category"`
	Priority          string                      `gorm:"size:20;not null" json:"priority"`
	EstimatedDuration int                         `gorm:"not null" json:"estimated_duration"`
	UsageCount        int                         `gorm:"default:0" json:"usage_count"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}
