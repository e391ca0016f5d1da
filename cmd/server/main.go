package main

import (
	"strings"

	"github.com/checkinhq/checkin-api/internal/clock"
	"github.com/checkinhq/checkin-api/internal/config"
	"github.com/checkinhq/checkin-api/internal/database"
	"github.com/checkinhq/checkin-api/internal/handlers"
	"github.com/checkinhq/checkin-api/internal/middleware"
	"github.com/checkinhq/checkin-api/internal/routes"
	"github.com/checkinhq/checkin-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	loc, err := cfg.Location()
	if err != nil {
		log.WithError(err).Fatalf("invalid timezone %q", cfg.Timezone)
	}
	clk := clock.New(loc)

	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	userSvc := services.NewUsers(db)
	moodSvc := services.NewMoods(db)
	goalSvc := services.NewGoals(db)
	attendanceSvc := services.NewAttendance(db, clk, moodSvc)
	statsSvc := services.NewStats(db, clk, moodSvc)
	teamSvc := services.NewTeams(db, cfg.TeamCodeCreateAttempts)

	auth := middleware.NewAuth(cfg)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOriginList(), ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app, auth, routes.Handlers{
		Auth:     handlers.NewAuthHandler(userSvc, auth, log),
		Users:    handlers.NewUserHandler(userSvc, log),
		Checkins: handlers.NewCheckinHandler(attendanceSvc, statsSvc, log),
		Teams:    handlers.NewTeamHandler(teamSvc, log),
		Goals:    handlers.NewGoalHandler(goalSvc, log),
		Moods:    handlers.NewMoodHandler(moodSvc, log),
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
