package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MoodEntry is a standalone logged emotional state, independent of routines.
type MoodEntry struct {
	ID        uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood      string                      `gorm:"size:255;not null" json:"mood"`
	Intensity *int                        `json:"intensity"`
	Context   *string                     `gorm:"type:text" json:"context"`
	Triggers  datatypes.JSONSlice[string] `json:"triggers"`
	CreatedAt time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	DeletedAt gorm.DeletedAt              `gorm:"index" json:"-"`
}
