package services

import (
	"testing"

	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoalsFixture(t *testing.T) (*Goals, uuid.UUID) {
	db := newTestDB(t)
	return NewGoals(db), newTestUser(t, db, "worker@example.com")
}

func TestGoalCreate_DefaultsToMediumPriority(t *testing.T) {
	svc, userID := newGoalsFixture(t)

	goal, err := svc.Create(userID, models.CreateGoalRequest{Title: "Ship the report"})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityMedium, goal.Priority)
	assert.False(t, goal.IsCompleted)

	high, err := svc.Create(userID, models.CreateGoalRequest{
		Title:    "Fix the outage",
		Priority: strptr(models.PriorityHigh),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriorityHigh, high.Priority)
}

func TestGoalUpdate_PartialLeavesRestUntouched(t *testing.T) {
	svc, userID := newGoalsFixture(t)

	goal, err := svc.Create(userID, models.CreateGoalRequest{
		Title:       "Ship the report",
		Description: strptr("quarterly numbers"),
	})
	require.NoError(t, err)

	done := true
	updated, err := svc.Update(goal.ID, models.UpdateGoalRequest{IsCompleted: &done})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, "Ship the report", updated.Title)
	assert.Equal(t, "quarterly numbers", *updated.Description)
	assert.Equal(t, models.PriorityMedium, updated.Priority)

	got, err := svc.GetByID(goal.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, "Ship the report", got.Title)
}

func TestGoalList_CompletedFilter(t *testing.T) {
	svc, userID := newGoalsFixture(t)

	open, err := svc.Create(userID, models.CreateGoalRequest{Title: "open"})
	require.NoError(t, err)
	closed, err := svc.Create(userID, models.CreateGoalRequest{Title: "closed"})
	require.NoError(t, err)
	done := true
	_, err = svc.Update(closed.ID, models.UpdateGoalRequest{IsCompleted: &done})
	require.NoError(t, err)

	completed := true
	goals, err := svc.ListForUser(userID, &completed, DefaultPage())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, closed.ID, goals[0].ID)

	completed = false
	goals, err = svc.ListForUser(userID, &completed, DefaultPage())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, open.ID, goals[0].ID)

	goals, err = svc.ListForUser(userID, nil, DefaultPage())
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}

func TestGoalList_PaginationBounds(t *testing.T) {
	svc, userID := newGoalsFixture(t)

	_, err := svc.ListForUser(userID, nil, Page{Skip: 0, Limit: 0})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGoalDelete(t *testing.T) {
	svc, userID := newGoalsFixture(t)

	goal, err := svc.Create(userID, models.CreateGoalRequest{Title: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(goal.ID))
	_, err = svc.GetByID(goal.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(goal.ID), apperrors.ErrNotFound)
}
