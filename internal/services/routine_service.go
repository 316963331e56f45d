package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careloop/selfcare-backend/internal/analytics"
	"github.com/careloop/selfcare-backend/internal/dto"
	"github.com/careloop/selfcare-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
	ErrInvalidRating   = errors.New("effectiveness rating must be between 1 and 5")
)

const aiHistoryLimit = 5

// RoutineService manages self-care routines: AI generation, retrieval,
// completion tracking and analytics.
type RoutineService struct {
	db     *gorm.DB
	ai     *AIService
	filter *ContentFilter
}

func NewRoutineService(db *gorm.DB, ai *AIService, filter *ContentFilter) *RoutineService {
	return &RoutineService{db: db, ai: ai, filter: filter}
}

// GenerateRoutine creates a new routine from a generation request. Upstream
// AI failures never surface to the caller; the draft degrades to a fallback.
func (s *RoutineService) GenerateRoutine(ctx context.Context, req *dto.GenerateRequest, userID uuid.UUID) (*models.Routine, error) {
	req.Mood = strings.TrimSpace(req.Mood)
	req.Goal = strings.TrimSpace(req.Goal)
	if req.Mood == "" {
		return nil, errors.New("mood cannot be empty")
	}
	if req.Goal == "" {
		return nil, errors.New("goal cannot be empty")
	}
	if req.Duration != nil && (*req.Duration < 5 || *req.Duration > 120) {
		return nil, errors.New("duration must be between 5 and 120 minutes")
	}

	history, err := s.historyForAI(userID)
	if err != nil {
		return nil, err
	}

	draft := s.ai.GenerateDraft(ctx, req, history)

	routine := models.Routine{
		ID:       uuid.New(),
		UserID:   userID,
		Mood:     req.Mood,
		Goal:     req.Goal,
		Steps:    datatypes.NewJSONSlice(draft.Steps),
		Context:  req.Context,
		Duration: draft.EstimatedDuration,
		Category: draft.Category,
		Priority: draft.Priority,
	}

	if err := s.db.Create(&routine).Error; err != nil {
		return nil, fmt.Errorf("failed to create routine: %w", err)
	}

	return &routine, nil
}

// GetRoutine fetches a routine owned by the user.
func (s *RoutineService) GetRoutine(routineID, userID uuid.UUID) (*models.Routine, error) {
	var routine models.Routine
	if err := s.db.Where("id = ? AND user_id = ?", routineID, userID).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return &routine, nil
}

// GetUserRoutines lists the user's routines newest-first.
func (s *RoutineService) GetUserRoutines(userID uuid.UUID, limit, offset int) ([]models.Routine, error) {
	var routines []models.Routine
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&routines).Error
	return routines, err
}

// CompleteRoutine records a completion event and bumps the routine's
// completion count in the same transaction.
func (s *RoutineService) CompleteRoutine(req *dto.CompleteRoutineRequest, routineID, userID uuid.UUID) (*models.RoutineCompletion, error) {
	if req.EffectivenessRating != nil && (*req.EffectivenessRating < 1 || *req.EffectivenessRating > 5) {
		return nil, ErrInvalidRating
	}

	notes := req.Notes
	if notes != nil {
		clean := s.filter.Sanitize(*notes)
		notes = &clean
	}

	completion := models.RoutineCompletion{
		ID:                  uuid.New(),
		UserID:              userID,
		RoutineID:           routineID,
		CompletedSteps:      datatypes.NewJSONSlice(req.CompletedSteps),
		MoodAfter:           req.MoodAfter,
		EffectivenessRating: req.EffectivenessRating,
		Notes:               notes,
		CompletedAt:         time.Now().UTC(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var routine models.Routine
		if err := tx.Where("id = ? AND user_id = ?", routineID, userID).First(&routine).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoutineNotFound
			}
			return err
		}

		if err := tx.Create(&completion).Error; err != nil {
			return err
		}

		return tx.Model(&routine).
			UpdateColumn("completion_count", gorm.Expr("completion_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return &completion, nil
}

// SearchRoutines matches the query against mood and goal, case-insensitive.
func (s *RoutineService) SearchRoutines(userID uuid.UUID, query string, limit int) ([]models.Routine, error) {
	var routines []models.Routine
	pattern := "%" + query + "%"
	err := s.db.Where("user_id = ? AND (goal ILIKE ? OR mood ILIKE ?)", userID, pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&routines).Error
	return routines, err
}

// GetRecommendations returns the user's most completed routines.
func (s *RoutineService) GetRecommendations(userID uuid.UUID, limit int) ([]models.Routine, error) {
	var routines []models.Routine
	err := s.db.Where("user_id = ?", userID).
		Order("completion_count DESC").
		Limit(limit).
		Find(&routines).Error
	return routines, err
}

// GetTemplates lists routine templates, most used first.
func (s *RoutineService) GetTemplates(limit int) ([]models.RoutineTemplate, error) {
	var templates []models.RoutineTemplate
	err := s.db.Order("usage_count DESC").Limit(limit).Find(&templates).Error
	return templates, err
}

// GetUserAnalytics aggregates the user's routines and completions over the
// last `days` days. Streaks always use the full completion history.
func (s *RoutineService) GetUserAnalytics(userID uuid.UUID, days int) (*analytics.RoutineAnalytics, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -days)

	var routines []models.Routine
	if err := s.db.Where("user_id = ? AND created_at >= ?", userID, start).
		Find(&routines).Error; err != nil {
		return nil, err
	}

	var completions []models.RoutineCompletion
	if err := s.db.Where("user_id = ? AND completed_at >= ?", userID, start).
		Find(&completions).Error; err != nil {
		return nil, err
	}

	var completionTimes []time.Time
	if err := s.db.Model(&models.RoutineCompletion{}).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Pluck("completed_at", &completionTimes).Error; err != nil {
		return nil, err
	}

	result := analytics.ComputeRoutineAnalytics(routines, completions, completionTimes, now)
	return &result, nil
}

// GetMoodTrends returns mood occurrence counts over in-window routines.
func (s *RoutineService) GetMoodTrends(userID uuid.UUID, days int) (map[string]int, error) {
	start := time.Now().UTC().AddDate(0, 0, -days)

	rows := []struct {
		Mood  string
		Count int
	}{}
	err := s.db.Model(&models.Routine{}).
		Select("mood, count(mood) as count").
		Where("user_id = ? AND created_at >= ?", userID, start).
		Group("mood").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	trends := make(map[string]int, len(rows))
	for _, row := range rows {
		trends[row.Mood] = row.Count
	}
	return trends, nil
}

// GetCategoryDistribution counts in-window routines per category.
func (s *RoutineService) GetCategoryDistribution(userID uuid.UUID, days int) (map[string]int, error) {
	start := time.Now().UTC().AddDate(0, 0, -days)

	rows := []struct {
		Category string
		Count    int
	}{}
	err := s.db.Model(&models.Routine{}).
		Select("category, count(category) as count").
		Where("user_id = ? AND created_at >= ? AND category IS NOT NULL", userID, start).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := make(map[string]int, len(rows))
	for _, row := range rows {
		dist[row.Category] = row.Count
	}
	return dist, nil
}

func (s *RoutineService) historyForAI(userID uuid.UUID) ([]RoutineHistoryItem, error) {
	var recent []models.Routine
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(aiHistoryLimit).
		Find(&recent).Error; err != nil {
		return nil, err
	}

	history := make([]RoutineHistoryItem, 0, len(recent))
	for _, r := range recent {
		history = append(history, RoutineHistoryItem{Mood: r.Mood, Goal: r.Goal})
	}
	return history, nil
}
