package api

import (
	"errors"

	"github.com/avolkova/stride/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type habitCreateInput struct {
	UserID       uint    `json:"userId"`
	Name         string  `json:"name"`
	Icon         string  `json:"icon"`
	Color        string  `json:"color"`
	DailyTarget  float64 `json:"dailyTarget"`
	Unit         string  `json:"unit"`
	Reminder     bool    `json:"reminder"`
	ReminderTime string  `json:"reminderTime"`
}

type habitUpdateInput struct {
	Name         *string  `json:"name"`
	Icon         *string  `json:"icon"`
	Color        *string  `json:"color"`
	DailyTarget  *float64 `json:"dailyTarget"`
	Unit         *string  `json:"unit"`
	Reminder     *bool    `json:"reminder"`
	ReminderTime *string  `json:"reminderTime"`
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	var input habitCreateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.Create(services.HabitInput{
		UserID:       input.UserID,
		Name:         input.Name,
		Icon:         input.Icon,
		Color:        input.Color,
		DailyTarget:  input.DailyTarget,
		Unit:         input.Unit,
		Reminder:     input.Reminder,
		ReminderTime: input.ReminderTime,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(habit)
}

func (handler *Handler) ListHabitsByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	habits, err := handler.habitService.ListByUser(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(habits)
}

func (handler *Handler) UpdateHabit(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	var input habitUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	habit, err := handler.habitService.Update(habitID, services.HabitUpdate{
		Name:         input.Name,
		Icon:         input.Icon,
		Color:        input.Color,
		DailyTarget:  input.DailyTarget,
		Unit:         input.Unit,
		Reminder:     input.Reminder,
		ReminderTime: input.ReminderTime,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(habit)
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	removed, err := handler.habitService.Delete(habitID)
	if err != nil {
		var cascadeError *services.CascadeDeleteError
		if errors.As(err, &cascadeError) {
			handler.logger.Error("habit cascade delete failed",
				zap.Uint("habit_id", cascadeError.HabitID),
				zap.Error(cascadeError.Cause),
			)
		}
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"deleted":        true,
		"entriesRemoved": removed,
	})
}
