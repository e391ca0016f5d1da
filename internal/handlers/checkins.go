package handlers

import (
	"github.com/checkinhq/checkin-api/internal/apperrors"
	"github.com/checkinhq/checkin-api/internal/middleware"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/checkinhq/checkin-api/internal/services"
	"github.com/checkinhq/checkin-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type CheckinHandler struct {
	attendance *services.Attendance
	stats      *services.Stats
	log        *logrus.Logger
}

func NewCheckinHandler(attendance *services.Attendance, stats *services.Stats, log *logrus.Logger) *CheckinHandler {
	return &CheckinHandler{attendance: attendance, stats: stats, log: log}
}

func (h *CheckinHandler) CheckIn(c *fiber.Ctx) error {
	var req models.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	event, err := h.attendance.CheckIn(middleware.GetUserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *CheckinHandler) CheckOut(c *fiber.Ctx) error {
	var req models.CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	event, err := h.attendance.CheckOut(middleware.GetUserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *CheckinHandler) GetTodayStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetTodayStats(middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stats)
}

func (h *CheckinHandler) List(c *fiber.Ctx) error {
	page := services.Page{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", services.DefaultPageLimit),
	}

	events, err := h.attendance.ListForUser(middleware.GetUserID(c), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *CheckinHandler) Get(c *fiber.Ctx) error {
	event, err := h.ownedEvent(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *CheckinHandler) Update(c *fiber.Ctx) error {
	event, err := h.ownedEvent(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.UpdateCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	updated, err := h.attendance.Update(event.ID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(updated)
}

func (h *CheckinHandler) Delete(c *fiber.Ctx) error {
	event, err := h.ownedEvent(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.attendance.Delete(event.ID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ownedEvent resolves :id and enforces that it belongs to the caller. A
// foreign event reads as not found, never as forbidden.
func (h *CheckinHandler) ownedEvent(c *fiber.Ctx) (*models.CheckIn, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, apperrors.NotFound("check-in")
	}
	event, err := h.attendance.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event.UserID != middleware.GetUserID(c) {
		return nil, apperrors.NotFound("check-in")
	}
	return event, nil
}
