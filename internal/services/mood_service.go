package services

import (
	"errors"
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
	ErrMoodEntryNotFound = errors.New("mood entry not found")
	ErrInvalidIntensity  = errors.New("intensity must be between 1 and 10")
)

// MoodService manages mood journal entries and their analytics.
type MoodService struct {
	db     *gorm.DB
	filter *ContentFilter
}

func NewMoodService(db *gorm.DB, filter *ContentFilter) *MoodService {
	return &MoodService{db: db, filter: filter}
}

func (s *MoodService) CreateMoodEntry(req *dto.MoodCreateRequest, userID uuid.UUID) (*models.MoodEntry, error) {
	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		return nil, errors.New("mood cannot be empty")
	}
	if req.Intensity != nil && (*req.Intensity < 1 || *req.Intensity > 10) {
		return nil, ErrInvalidIntensity
	}

	moodContext := req.Context
	if moodContext != nil {
		clean := s.filter.Sanitize(*moodContext)
		moodContext = &clean
	}

	entry := models.MoodEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Mood:      mood,
		Intensity: req.Intensity,
		Context:   moodContext,
		Triggers:  datatypes.NewJSONSlice(req.Triggers),
	}
	if req.CreatedAt != nil {
		entry.CreatedAt = req.CreatedAt.UTC()
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *MoodService) GetMoodEntry(entryID, userID uuid.UUID) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMoodEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// GetUserMoods lists entries newest-first with optional date bounds.
func (s *MoodService) GetUserMoods(userID uuid.UUID, limit, offset int, start, end *time.Time) ([]models.MoodEntry, error) {
	query := s.db.Where("user_id = ?", userID)
	if start != nil {
		query = query.Where("created_at >= ?", start.UTC())
	}
	if end != nil {
		query = query.Where("created_at <= ?", end.UTC())
	}

	var entries []models.MoodEntry
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, err
}

// UpdateMoodEntry applies partial updates; nil fields are left untouched.
func (s *MoodService) UpdateMoodEntry(req *dto.MoodUpdateRequest, entryID, userID uuid.UUID) (*models.MoodEntry, error) {
	entry, err := s.GetMoodEntry(entryID, userID)
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		mood := strings.TrimSpace(*req.Mood)
		if mood == "" {
			return nil, errors.New("mood cannot be empty")
		}
		entry.Mood = mood
	}
	if req.Intensity != nil {
		if *req.Intensity < 1 || *req.Intensity > 10 {
			return nil, ErrInvalidIntensity
		}
		entry.Intensity = req.Intensity
	}
	if req.Context != nil {
		clean := s.filter.Sanitize(*req.Context)
		entry.Context = &clean
	}
	if req.Triggers != nil {
		entry.Triggers = datatypes.NewJSONSlice(*req.Triggers)
	}

	if err := s.db.Save(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *MoodService) DeleteMoodEntry(entryID, userID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMoodEntryNotFound
	}
	return nil
}

// GetMoodAnalytics aggregates the user's entries over the last `days` days.
func (s *MoodService) GetMoodAnalytics(userID uuid.UUID, days int) (*analytics.MoodAnalytics, error) {
	start := time.Now().UTC().AddDate(0, 0, -days)

	var entries []models.MoodEntry
	if err := s.db.Where("user_id = ? AND created_at >= ?", userID, start).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	result := analytics.ComputeMoodAnalytics(entries)
	return &result, nil
}
