package api

import (
	"github.com/gofiber/fiber/v2"
)

type pointsDeltaInput struct {
	Points int `json:"points"`
}

// Me returns the profile behind the bearer token.
func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateUserPoints(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	var input pointsDeltaInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.gamification.ApplyDelta(userID, input.Points)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}
