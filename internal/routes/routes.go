package routes

import (
	"github.com/checkinhq/checkin-api/internal/handlers"
	"github.com/checkinhq/checkin-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Checkins *handlers.CheckinHandler
	Teams    *handlers.TeamHandler
	Goals    *handlers.GoalHandler
	Moods    *handlers.MoodHandler
}

func Setup(app *fiber.App, auth *middleware.Auth, h Handlers) {
	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.Refresh)

	protected := api.Group("/", auth.Protected())

	users := protected.Group("/users")
	users.Get("/me", h.Users.GetMe)
	users.Put("/me", h.Users.UpdateMe)
	users.Get("/:id", h.Users.GetUser)

	checkins := protected.Group("/checkins")
	checkins.Post("/check-in", h.Checkins.CheckIn)
	checkins.Post("/check-out", h.Checkins.CheckOut)
	checkins.Get("/today", h.Checkins.GetTodayStats)
	checkins.Get("/", h.Checkins.List)
	checkins.Get("/:id", h.Checkins.Get)
	checkins.Patch("/:id", h.Checkins.Update)
	checkins.Delete("/:id", h.Checkins.Delete)

	teams := protected.Group("/teams")
	teams.Post("/", h.Teams.Create)
	teams.Get("/", h.Teams.ListMine)
	teams.Post("/join", h.Teams.Join)
	teams.Get("/:id", h.Teams.Get)
	teams.Post("/:id/members/:userId/remove", h.Teams.RemoveMember)

	goals := protected.Group("/goals")
	goals.Post("/", h.Goals.Create)
	goals.Get("/", h.Goals.List)
	goals.Get("/:id", h.Goals.Get)
	goals.Patch("/:id", h.Goals.Update)
	goals.Delete("/:id", h.Goals.Delete)

	moods := protected.Group("/moods")
	moods.Post("/", h.Moods.Create)
	moods.Get("/", h.Moods.List)
}
