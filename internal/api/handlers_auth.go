package api

import (
	"github.com/avolkova/stride/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type signupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) SignUp(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.SignUp(input.Name, input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		handler.logger.Error("sign token failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse(token, &user))
}

func (handler *Handler) LogIn(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.LogIn(input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		handler.logger.Error("sign token failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(authResponse(token, &user))
}

func authResponse(token string, user *models.User) fiber.Map {
	return fiber.Map{
		"token": token,
		"user":  user,
	}
}
