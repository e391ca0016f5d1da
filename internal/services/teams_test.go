package services

import (
	"regexp"
	"testing"

	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var teamCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func newTeamsFixture(t *testing.T) (*Teams, *gorm.DB, uuid.UUID) {
	db := newTestDB(t)
	return NewTeams(db, 5), db, newTestUser(t, db, "owner@example.com")
}

func TestCreateTeam_GrantsOwnerMembershipAndCode(t *testing.T) {
	svc, _, ownerID := newTeamsFixture(t)

	team, err := svc.CreateTeam("Platform", strptr("infra crew"), ownerID)
	require.NoError(t, err)

	assert.Regexp(t, teamCodePattern, team.Code)
	assert.True(t, team.IsActive)
	assert.Equal(t, ownerID, team.CreatedBy)

	role, err := svc.GetRole(team.ID, ownerID)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, models.RoleOwner, *role)

	members, err := svc.GetMembers(team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, ownerID, members[0].UserID)
}

func TestCreateTeam_CodesAreUnique(t *testing.T) {
	svc, _, ownerID := newTeamsFixture(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		team, err := svc.CreateTeam("Team", nil, ownerID)
		require.NoError(t, err)
		assert.False(t, seen[team.Code], "duplicate code %s", team.Code)
		seen[team.Code] = true
	}
}

func TestJoinByCode(t *testing.T) {
	svc, db, ownerID := newTeamsFixture(t)
	joinerID := newTestUser(t, db, "joiner@example.com")

	team, err := svc.CreateTeam("Platform", nil, ownerID)
	require.NoError(t, err)

	joined, err := svc.JoinByCode(team.Code, joinerID)
	require.NoError(t, err)
	assert.Equal(t, team.ID, joined.ID)

	role, err := svc.GetRole(team.ID, joinerID)
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, models.RoleMember, *role)

	t.Run("unknown code is not found", func(t *testing.T) {
		_, err := svc.JoinByCode("ZZZZZZ", joinerID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		_, err := svc.JoinByCode(team.Code, joinerID)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestRemoveMember(t *testing.T) {
	svc, db, ownerID := newTeamsFixture(t)
	memberID := newTestUser(t, db, "member@example.com")
	outsiderID := newTestUser(t, db, "outsider@example.com")

	team, err := svc.CreateTeam("Platform", nil, ownerID)
	require.NoError(t, err)
	_, err = svc.JoinByCode(team.Code, memberID)
	require.NoError(t, err)

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := svc.RemoveMember(team.ID, memberID, ownerID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		err := svc.RemoveMember(team.ID, outsiderID, memberID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("unknown team is not found", func(t *testing.T) {
		err := svc.RemoveMember(uuid.New(), ownerID, memberID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("owner removes member", func(t *testing.T) {
		require.NoError(t, svc.RemoveMember(team.ID, ownerID, memberID))
		isMember, err := svc.IsMember(team.ID, memberID)
		require.NoError(t, err)
		assert.False(t, isMember)
	})

	t.Run("removing an absent member is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.RemoveMember(team.ID, ownerID, memberID))
	})
}

func TestListTeamsForUser_SkipsInactive(t *testing.T) {
	svc, db, ownerID := newTeamsFixture(t)

	active, err := svc.CreateTeam("Active", nil, ownerID)
	require.NoError(t, err)
	dormant, err := svc.CreateTeam("Dormant", nil, ownerID)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Team{}).Where("id = ?", dormant.ID).
		Update("is_active", false).Error)

	teams, err := svc.ListTeamsForUser(ownerID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, active.ID, teams[0].ID)
}

func TestListTeamsForUser_OnlyMemberships(t *testing.T) {
	svc, db, ownerID := newTeamsFixture(t)
	otherID := newTestUser(t, db, "other@example.com")

	_, err := svc.CreateTeam("Platform", nil, ownerID)
	require.NoError(t, err)

	teams, err := svc.ListTeamsForUser(otherID)
	require.NoError(t, err)
	assert.Empty(t, teams)
}

func TestGenerateTeamCode_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateTeamCode()
		require.NoError(t, err)
		assert.Regexp(t, teamCodePattern, code)
	}
}
