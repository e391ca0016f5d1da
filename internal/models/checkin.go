package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// CheckIn is a single attendance event. A checked_out row closes the most
// recent same-day checked_in row and carries the elapsed whole minutes.
type CheckIn struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	Status            string     `json:"status" gorm:"size:20;not null"`
	Timestamp         time.Time  `json:"timestamp" gorm:"index;not null"`
	LocationLatitude  *float64   `json:"locationLatitude"`
	LocationLongitude *float64   `json:"locationLongitude"`
	LocationName      *string    `json:"locationName" gorm:"size:255"`
	Notes             *string    `json:"notes" gorm:"size:1000"`
	DurationMinutes   *int       `json:"durationMinutes"`
	MoodID            *uuid.UUID `json:"moodId" gorm:"type:uuid"`
	GoalID            *uuid.UUID `json:"goalId" gorm:"type:uuid"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`

	Mood *Mood `json:"mood,omitempty" gorm:"foreignKey:MoodID;constraint:OnDelete:SET NULL"`
	Goal *Goal `json:"goal,omitempty" gorm:"foreignKey:GoalID;constraint:OnDelete:SET NULL"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CheckIn DTOs
type MoodInput struct {
	MoodLevel int     `json:"moodLevel" validate:"required,min=1,max=5"`
	Emotion   *string `json:"emotion" validate:"omitempty,max=50"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

type CheckInRequest struct {
	LocationLatitude  *float64   `json:"locationLatitude"`
	LocationLongitude *float64   `json:"locationLongitude"`
	LocationName      *string    `json:"locationName" validate:"omitempty,max=255"`
	Notes             *string    `json:"notes" validate:"omitempty,max=1000"`
	GoalID            *uuid.UUID `json:"goalId"`
	Mood              *MoodInput `json:"mood"`
}

type CheckOutRequest struct {
	Notes *string    `json:"notes" validate:"omitempty,max=1000"`
	Mood  *MoodInput `json:"mood"`
}

type UpdateCheckInRequest struct {
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
	LocationName *string `json:"locationName" validate:"omitempty,max=255"`
}

type DailyStatsResponse struct {
	TotalCheckinsToday   int      `json:"totalCheckinsToday"`
	IsCheckedIn          bool     `json:"isCheckedIn"`
	LatestCheckin        *CheckIn `json:"latestCheckin"`
	TotalDurationMinutes int      `json:"totalDurationMinutes"`
	MoodHistory          []Mood   `json:"moodHistory"`
}
