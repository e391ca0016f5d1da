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

type TeamHandler struct {
	teams *services.Teams
	log   *logrus.Logger
}

func NewTeamHandler(teams *services.Teams, log *logrus.Logger) *TeamHandler {
	return &TeamHandler{teams: teams, log: log}
}

func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req models.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	team, err := h.teams.CreateTeam(req.Name, req.Description, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (h *TeamHandler) ListMine(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeamsForUser(middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(teams)
}

// Get returns the team with its member list; members only.
func (h *TeamHandler) Get(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid team ID")
	}

	team, err := h.teams.GetTeam(teamID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	isMember, err := h.teams.IsMember(teamID, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !isMember {
		return respondError(c, h.log, apperrors.Forbidden("not a member of this team"))
	}

	members, err := h.teams.GetMembers(teamID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.TeamDetailResponse{Team: *team, Members: members})
}

func (h *TeamHandler) Join(c *fiber.Ctx) error {
	var req models.JoinTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	team, err := h.teams.JoinByCode(req.TeamCode, middleware.GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(team)
}

func (h *TeamHandler) RemoveMember(c *fiber.Ctx) error {
	teamID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid team ID")
	}
	targetID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	if err := h.teams.RemoveMember(teamID, middleware.GetUserID(c), targetID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
