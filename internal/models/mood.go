package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mood is a self-reported 1-5 affect rating, optionally back-referencing
// the attendance event it was recorded with.
type Mood struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	MoodLevel int        `json:"moodLevel" gorm:"not null"`
	Emotion   *string    `json:"emotion" gorm:"size:50"`
	Notes     *string    `json:"notes" gorm:"size:500"`
	CheckinID *uuid.UUID `json:"checkinId" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (m *Mood) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CreateMoodRequest struct {
	MoodLevel int        `json:"moodLevel" validate:"required,min=1,max=5"`
	Emotion   *string    `json:"emotion" validate:"omitempty,max=50"`
	Notes     *string    `json:"notes" validate:"omitempty,max=500"`
	CheckinID *uuid.UUID `json:"checkinId"`
}
