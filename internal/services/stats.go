package services

import (
	"github.com/checkinhq/checkin-api/internal/clock"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const moodHistoryLimit = 10

// Stats derives per-user daily attendance summaries. It shares the clock
// with Attendance so both agree on the day window.
type Stats struct {
	db    *gorm.DB
	clock *clock.Clock
	moods *Moods
}

func NewStats(db *gorm.DB, clk *clock.Clock, moods *Moods) *Stats {
	return &Stats{db: db, clock: clk, moods: moods}
}

// GetTodayStats summarizes the user's events within [DayStart, NextDayStart).
// isCheckedIn reports whether the newest event today is still checked_in,
// not whether any event today ever was.
func (s *Stats) GetTodayStats(userID uuid.UUID) (*models.DailyStatsResponse, error) {
	now := s.clock.Now()

	var events []models.CheckIn
	err := s.db.Where("user_id = ? AND timestamp >= ? AND timestamp < ?",
		userID, s.clock.DayStart(now), s.clock.NextDayStart(now)).
		Order("timestamp DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	moods, err := s.moods.ListForUser(userID, Page{Skip: 0, Limit: moodHistoryLimit})
	if err != nil {
		return nil, err
	}

	stats := models.DailyStatsResponse{
		TotalCheckinsToday: len(events),
		MoodHistory:        moods,
	}
	if len(events) > 0 {
		stats.LatestCheckin = &events[0]
		stats.IsCheckedIn = events[0].Status == models.StatusCheckedIn
	}
	for i := range events {
		if events[i].DurationMinutes != nil {
			stats.TotalDurationMinutes += *events[i].DurationMinutes
		}
	}
	return &stats, nil
}
