package services

import (
	"testing"
	"time"

	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (*Stats, *Attendance, *Moods, *time.Time, uuid.UUID) {
	db := newTestDB(t)
	clk, current := newTestClock(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	moods := NewMoods(db)
	attendance := NewAttendance(db, clk, moods)
	return NewStats(db, clk, moods), attendance, moods, current, newTestUser(t, db, "worker@example.com")
}

func TestTodayStats_EmptyDay(t *testing.T) {
	stats, _, _, _, userID := newStatsFixture(t)

	got, err := stats.GetTodayStats(userID)
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalCheckinsToday)
	assert.False(t, got.IsCheckedIn)
	assert.Nil(t, got.LatestCheckin)
	assert.Equal(t, 0, got.TotalDurationMinutes)
	assert.Empty(t, got.MoodHistory)
}

// 09:00 check-in, 09:45 check-out, 10:00 check-in with no checkout.
func TestTodayStats_FullDayScenario(t *testing.T) {
	stats, attendance, _, current, userID := newStatsFixture(t)

	_, err := attendance.CheckIn(userID, models.CheckInRequest{})
	require.NoError(t, err)

	*current = time.Date(2025, 6, 2, 9, 45, 0, 0, time.UTC)
	_, err = attendance.CheckOut(userID, models.CheckOutRequest{})
	require.NoError(t, err)

	*current = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	second, err := attendance.CheckIn(userID, models.CheckInRequest{})
	require.NoError(t, err)

	got, err := stats.GetTodayStats(userID)
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalCheckinsToday)
	assert.True(t, got.IsCheckedIn)
	assert.Equal(t, 45, got.TotalDurationMinutes)
	require.NotNil(t, got.LatestCheckin)
	assert.Equal(t, second.ID, got.LatestCheckin.ID)
}

// A user whose newest event today is a checkout is no longer checked in,
// even though an earlier checked_in event may still exist that day.
func TestTodayStats_CheckedOutAgain(t *testing.T) {
	stats, attendance, _, current, userID := newStatsFixture(t)

	_, err := attendance.CheckIn(userID, models.CheckInRequest{})
	require.NoError(t, err)
	*current = current.Add(20 * time.Minute)
	_, err = attendance.CheckIn(userID, models.CheckInRequest{})
	require.NoError(t, err)

	// closes the 09:20 check-in; the 09:00 one stays open
	*current = current.Add(25 * time.Minute)
	_, err = attendance.CheckOut(userID, models.CheckOutRequest{})
	require.NoError(t, err)

	got, err := stats.GetTodayStats(userID)
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalCheckinsToday)
	assert.False(t, got.IsCheckedIn)
	assert.Equal(t, models.StatusCheckedOut, got.LatestCheckin.Status)
}

func TestTodayStats_ExcludesOtherDays(t *testing.T) {
	stats, attendance, _, current, userID := newStatsFixture(t)

	_, err := attendance.CheckIn(userID, models.CheckInRequest{})
	require.NoError(t, err)

	*current = current.Add(24 * time.Hour)
	got, err := stats.GetTodayStats(userID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalCheckinsToday)
	assert.False(t, got.IsCheckedIn)
}

func TestTodayStats_MoodHistoryCapped(t *testing.T) {
	stats, _, moods, current, userID := newStatsFixture(t)

	for i := 0; i < 12; i++ {
		_, err := moods.Create(userID, models.CreateMoodRequest{MoodLevel: 1 + i%5})
		require.NoError(t, err)
		*current = current.Add(time.Minute)
	}

	got, err := stats.GetTodayStats(userID)
	require.NoError(t, err)
	assert.Len(t, got.MoodHistory, 10)
}
