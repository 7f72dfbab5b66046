package api

import (
	"errors"
	"strconv"

	"github.com/avolkova/stride/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service failures onto the HTTP taxonomy:
// validation and duplicate-email conflicts are 400, missing references 404,
// credential mismatches 401, anything else 500 with the message passed
// through.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validationError *services.ValidationError
	switch {
	case errors.As(err, &validationError):
		return apiError(c, fiber.StatusBadRequest, validationError.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
