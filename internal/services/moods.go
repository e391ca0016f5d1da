package services

import (
	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Moods creates standalone mood records, optionally back-referencing the
// attendance event they were logged with.
type Moods struct {
	db *gorm.DB
}

func NewMoods(db *gorm.DB) *Moods {
	return &Moods{db: db}
}

func (s *Moods) Create(userID uuid.UUID, req models.CreateMoodRequest) (*models.Mood, error) {
	if req.MoodLevel < 1 || req.MoodLevel > 5 {
		return nil, apperrors.Validation("mood level must be between 1 and 5")
	}

	mood := models.Mood{
		UserID:    userID,
		MoodLevel: req.MoodLevel,
		Emotion:   req.Emotion,
		Notes:     req.Notes,
		CheckinID: req.CheckinID,
	}
	if err := s.db.Create(&mood).Error; err != nil {
		return nil, err
	}
	return &mood, nil
}

// ListForUser returns the user's moods newest first.
func (s *Moods) ListForUser(userID uuid.UUID, page Page) ([]models.Mood, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	var moods []models.Mood
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&moods).Error
	return moods, err
}
