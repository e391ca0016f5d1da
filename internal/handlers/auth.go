package handlers

import (
	"github.com/checkinhq/checkin-api/internal/middleware"
	"github.com/checkinhq/checkin-api/internal/models"
	"github.com/checkinhq/checkin-api/internal/services"
	"github.com/checkinhq/checkin-api/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	users *services.Users
	auth  *middleware.Auth
	log   *logrus.Logger
}

func NewAuthHandler(users *services.Users, auth *middleware.Auth, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{users: users, auth: auth, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.users.Register(req)
	if err != nil {
		return respondError(c, h.log, err)
	}

	tokens, err := h.tokenPair(user)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tokens)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		// every credential failure reads the same to the caller
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	tokens, err := h.tokenPair(user)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(tokens)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req models.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := validation.ValidateStruct(req); err != nil {
		return respondError(c, h.log, err)
	}

	claims, err := h.auth.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired refresh token",
		})
	}

	user, err := h.users.GetByID(claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	tokens, err := h.tokenPair(user)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(tokens)
}

func (h *AuthHandler) tokenPair(user *models.User) (*models.TokenResponse, error) {
	access, err := h.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := h.auth.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &models.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         *user,
	}, nil
}
