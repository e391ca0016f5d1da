package handlers

import (
	"github.com/checkinhq/checkin-api/internal/middleware"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/checkinhq/checkin-api/internal/services"
	"github.com/checkinhq/checkin-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MoodHandler struct {
	moods *services.Moods
	log   *logrus.Logger
}

func NewMoodHandler(moods *services.Moods, log *logrus.Logger) *MoodHandler {
	return &MoodHandler{moods: moods, log: log}
}

func (h *MoodHandler) Create(c *fiber.Ctx) error {
	var req models.CreateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	mood, err := h.moods.Create(middleware.GetUserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mood)
}

func (h *MoodHandler) List(c *fiber.Ctx) error {
	page := services.Page{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", services.DefaultPageLimit),
	}

	moods, err := h.moods.ListForUser(middleware.GetUserID(c), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(moods)
}
