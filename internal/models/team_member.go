package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership roles, highest tier first.
const (
	RoleOwner   = "owner"
	RoleManager = "manager"
	RoleMember  = "member"
)

type TeamMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_team"`
	TeamID   uuid.UUID `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_user_team"`
	Role     string    `json:"role" gorm:"size:50;not null;default:member"`
	JoinedAt time.Time `json:"joinedAt"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (m *TeamMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
