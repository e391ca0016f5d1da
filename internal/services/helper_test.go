package services

import (
	"testing"
	"time"

	"github.com/checkinhq/checkin-api/internal/clock"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// one connection so every session sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Goal{},
		&models.Mood{},
		&models.CheckIn{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "x",
		FullName: "Test User",
		Timezone: "UTC",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

// newTestClock returns a clock whose current time is read through the
// returned pointer, so tests can advance it between calls.
func newTestClock(start time.Time) (*clock.Clock, *time.Time) {
	current := new(time.Time)
	*current = start
	clk := clock.NewWithNow(time.UTC, func() time.Time { return *current })
	return clk, current
}

func strptr(s string) *string { return &s }
