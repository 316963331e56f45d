package dto

import "time"

type MoodCreateRequest struct {
	Mood      string     `json:"mood"`
	Intensity *int       `json:"intensity"`
	Context   *string    `json:"context"`
	Triggers  []string   `json:"triggers"`
	CreatedAt *time.Time `json:"created_at"`
}

// MoodUpdateRequest only touches the fields that are present.
type MoodUpdateRequest struct {
	Mood      *string   `json:"mood"`
	Intensity *int      `json:"intensity"`
	Context   *string   `json:"context"`
	Triggers  *[]string `json:"triggers"`
}
