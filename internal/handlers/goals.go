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

type GoalHandler struct {
	goals *services.Goals
	log   *logrus.Logger
}

func NewGoalHandler(goals *services.Goals, log *logrus.Logger) *GoalHandler {
	return &GoalHandler{goals: goals, log: log}
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	goal, err := h.goals.Create(middleware.GetUserID(c), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	var completed *bool
	if v := c.Query("completed"); v != "" {
		b := v == "true"
		completed = &b
	}
	page := services.Page{
		Skip:  c.QueryInt("skip", 0),
		Limit: c.QueryInt("limit", services.DefaultPageLimit),
	}

	goals, err := h.goals.ListForUser(middleware.GetUserID(c), completed, page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(goals)
}

func (h *GoalHandler) Get(c *fiber.Ctx) error {
	goal, err := h.ownedGoal(c)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(goal)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	goal, err := h.ownedGoal(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	updated, err := h.goals.Update(goal.ID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(updated)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	goal, err := h.ownedGoal(c)
	if err != nil {
		return respondError(c, h.log, err)
	}

	if err := h.goals.Delete(goal.ID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *GoalHandler) ownedGoal(c *fiber.Ctx) (*models.Goal, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, apperrors.NotFound("goal")
	}
	goal, err := h.goals.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != middleware.GetUserID(c) {
		return nil, apperrors.NotFound("goal")
	}
	return goal, nil
}
