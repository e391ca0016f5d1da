package services

import (
	"errors"
	"time"

	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/clock"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance owns the check-in/check-out state transitions and duration
// computation. Moods supplied alongside an event go through the Moods
// service so the level validation lives in one place.
type Attendance struct {
	db    *gorm.DB
	clock *clock.Clock
	moods *Moods
}

func NewAttendance(db *gorm.DB, clk *clock.Clock, moods *Moods) *Attendance {
	return &Attendance{db: db, clock: clk, moods: moods}
}

// CheckIn records a checked_in event. The mood, when supplied, is persisted
// first and referenced by the event. Multiple open check-ins per user are
// allowed; each is closed by at most one checkout.
func (s *Attendance) CheckIn(userID uuid.UUID, req models.CheckInRequest) (*models.CheckIn, error) {
	var moodID *uuid.UUID
	var mood *models.Mood
	if req.Mood != nil {
		m, err := s.moods.Create(userID, models.CreateMoodRequest{
			MoodLevel: req.Mood.MoodLevel,
			Emotion:   req.Mood.Emotion,
			Notes:     req.Mood.Notes,
		})
		if err != nil {
			return nil, err
		}
		mood = m
		moodID = &m.ID
	}

	event := models.CheckIn{
		UserID:            userID,
		Status:            models.StatusCheckedIn,
		Timestamp:         s.clock.Now(),
		LocationLatitude:  req.LocationLatitude,
		LocationLongitude: req.LocationLongitude,
		LocationName:      req.LocationName,
		Notes:             req.Notes,
		GoalID:            req.GoalID,
		MoodID:            moodID,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	event.Mood = mood
	return &event, nil
}

// CheckOut closes the newest same-day open check-in and records the elapsed
// whole minutes on a new checked_out event. Closing is a conditional stamp
// (status flips checked_in -> checked_out, matched by RowsAffected), so two
// concurrent checkouts can never both claim the same check-in: the loser
// re-reads and either claims an earlier open event or records no duration.
// With no same-day open check-in the duration stays null; checkout is never
// rejected.
func (s *Attendance) CheckOut(userID uuid.UUID, req models.CheckOutRequest) (*models.CheckIn, error) {
	now := s.clock.Now()
	dayStart := s.clock.DayStart(now)

	var checkout models.CheckIn
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var duration *int
		for {
			var open models.CheckIn
			err := tx.Where("user_id = ? AND status = ? AND timestamp >= ?",
				userID, models.StatusCheckedIn, dayStart).
				Order("timestamp DESC").
				First(&open).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// no open check-in today, checkout still recorded
				break
			}
			if err != nil {
				return err
			}

			res := tx.Model(&models.CheckIn{}).
				Where("id = ? AND status = ?", open.ID, models.StatusCheckedIn).
				Update("status", models.StatusCheckedOut)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				mins := int(now.Sub(open.Timestamp) / time.Minute)
				duration = &mins
				break
			}
			// another checkout claimed this row first
		}

		checkout = models.CheckIn{
			UserID:          userID,
			Status:          models.StatusCheckedOut,
			Timestamp:       now,
			Notes:           req.Notes,
			DurationMinutes: duration,
		}
		return tx.Create(&checkout).Error
	})
	if err != nil {
		return nil, err
	}

	if req.Mood != nil {
		mood, err := s.moods.Create(userID, models.CreateMoodRequest{
			MoodLevel: req.Mood.MoodLevel,
			Emotion:   req.Mood.Emotion,
			Notes:     req.Mood.Notes,
			CheckinID: &checkout.ID,
		})
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(&checkout).Update("mood_id", mood.ID).Error; err != nil {
			return nil, err
		}
		checkout.MoodID = &mood.ID
		checkout.Mood = mood
	}

	return &checkout, nil
}

func (s *Attendance) GetByID(id uuid.UUID) (*models.CheckIn, error) {
	var event models.CheckIn
	if err := s.db.Preload("Mood").First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("check-in")
		}
		return nil, err
	}
	return &event, nil
}

// ListForUser returns the user's events newest first.
func (s *Attendance) ListForUser(userID uuid.UUID, page Page) ([]models.CheckIn, error) {
	if err := page.validate(); err != nil {
		return nil, err
	}
	var events []models.CheckIn
	err := s.db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&events).Error
	return events, err
}

// Update applies the note and location name when supplied. Ownership checks
// belong to the caller.
func (s *Attendance) Update(id uuid.UUID, req models.UpdateCheckInRequest) (*models.CheckIn, error) {
	event, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
		event.Notes = req.Notes
	}
	if req.LocationName != nil {
		updates["location_name"] = *req.LocationName
		event.LocationName = req.LocationName
	}
	if len(updates) == 0 {
		return event, nil
	}
	if err := s.db.Model(&models.CheckIn{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event outright; there is no tombstone.
func (s *Attendance) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.CheckIn{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("check-in")
	}
	return nil
}
