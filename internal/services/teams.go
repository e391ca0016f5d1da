package services

import (
	"crypto/rand"
	"errors"

	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	teamCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	teamCodeLength = 6
)

// Teams owns team lifecycle, join codes and the role-based authorization
// checks around membership.
type Teams struct {
	db           *gorm.DB
	codeAttempts int
}

func NewTeams(db *gorm.DB, codeAttempts int) *Teams {
	if codeAttempts < 1 {
		codeAttempts = 1
	}
	return &Teams{db: db, codeAttempts: codeAttempts}
}

// CreateTeam creates the team and the creator's owner membership in one
// transaction. The join code is regenerated on a unique-index collision;
// exhausting the attempts surfaces Conflict.
func (s *Teams) CreateTeam(name string, description *string, creatorID uuid.UUID) (*models.Team, error) {
	for attempt := 0; attempt < s.codeAttempts; attempt++ {
		code, err := generateTeamCode()
		if err != nil {
			return nil, err
		}

		team := models.Team{
			Name:        name,
			Code:        code,
			Description: description,
			CreatedBy:   creatorID,
			IsActive:    true,
		}
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&team).Error; err != nil {
				return err
			}
			member := models.TeamMember{
				TeamID: team.ID,
				UserID: creatorID,
				Role:   models.RoleOwner,
			}
			return tx.Create(&member).Error
		})
		if err == nil {
			return &team, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, err
	}
	return nil, apperrors.Conflict("could not generate a unique team code")
}

func generateTeamCode() (string, error) {
	buf := make([]byte, teamCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = teamCodeChars[int(buf[i])%len(teamCodeChars)]
	}
	return string(buf), nil
}

// JoinByCode adds the user to the team behind the code with role member.
func (s *Teams) JoinByCode(code string, userID uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team")
		}
		return nil, err
	}

	member := models.TeamMember{
		TeamID: team.ID,
		UserID: userID,
		Role:   models.RoleMember,
	}
	if err := s.db.Create(&member).Error; err != nil {
		// unique (user_id, team_id) index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("already a member of this team")
		}
		return nil, err
	}
	return &team, nil
}

// RemoveMember deletes the target's membership row. Only owners may remove;
// removing an absent member is a no-op.
func (s *Teams) RemoveMember(teamID, requesterID, targetUserID uuid.UUID) error {
	if err := s.db.First(&models.Team{}, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("team")
		}
		return err
	}

	role, err := s.GetRole(teamID, requesterID)
	if err != nil {
		return err
	}
	if role == nil || *role != models.RoleOwner {
		return apperrors.Forbidden("only team owners can remove members")
	}

	return s.db.Where("team_id = ? AND user_id = ?", teamID, targetUserID).
		Delete(&models.TeamMember{}).Error
}

func (s *Teams) GetTeam(teamID uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("team")
		}
		return nil, err
	}
	return &team, nil
}

func (s *Teams) GetMembers(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.Where("team_id = ?", teamID).Preload("User").Find(&members).Error
	return members, err
}

func (s *Teams) IsMember(teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetRole returns nil without error when the user has no membership.
func (s *Teams) GetRole(teamID, userID uuid.UUID) (*string, error) {
	var member models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member.Role, nil
}

// ListTeamsForUser returns the active teams the user belongs to.
func (s *Teams) ListTeamsForUser(userID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND teams.is_active = ?", userID, true).
		Find(&teams).Error
	return teams, err
}
