package services

import (
	"errors"

	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goals is the per-user goal registry.
type Goals struct {
	db *gorm.DB
}

func NewGoals(db *gorm.DB) *Goals {
	return &Goals{db: db}
}

func (s *Goals) Create(userID uuid.UUID, req models.CreateGoalRequest) (*models.Goal, error) {
	priority := models.PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *Goals) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("goal")
		}
		return nil, err
	}
	return &goal, nil
}

// Update applies only the supplied fields.
func (s *Goals) Update(id uuid.UUID, req models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
		goal.Title = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
		goal.Description = req.Description
	}
	if req.IsCompleted != nil {
		updates["is_completed"] = *req.IsCompleted
		goal.IsCompleted = *req.IsCompleted
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
		goal.Priority = *req.Priority
	}
	if len(updates) == 0 {
		return goal, nil
	}
	if err := s.db.Model(&models.Goal{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

// ListForUser returns goals newest-created first, optionally filtered by
// completion state.
func (s *Goals) ListForUser(userID uuid.UUID, completed *bool, page Page) ([]models.Goal, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}

	q := s.db.Where("user_id = ?", userID)
	if completed != nil {
		q = q.Where("is_completed = ?", *completed)
	}

	var goals []models.Goal
	err := q.Order("created_at DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&goals).Error
	return goals, err
}

func (s *Goals) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Goal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("goal")
	}
	return nil
}
