package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type progressInput struct {
	UserID  uint    `json:"userId"`
	HabitID uint    `json:"habitId"`
	Date    string  `json:"date"`
	Value   float64 `json:"value"`
}

func (handler *Handler) UpsertProgress(c *fiber.Ctx) error {
	var input progressInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.UserID == 0 || input.HabitID == 0 {
		return apiError(c, fiber.StatusBadRequest, "userId and habitId are required")
	}

	entry, err := handler.progressService.Upsert(input.UserID, input.HabitID, input.Date, input.Value)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) ProgressForDate(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	entries, err := handler.progressService.EntriesForDate(userID, c.Params("date"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) ProgressForHabit(c *fiber.Ctx) error {
	habitID, err := parseIDParam(c, "habitId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid habit id")
	}

	entries, err := handler.progressService.RecentForHabit(habitID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(entries)
}

func (handler *Handler) WeeklyStats(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	stats, err := handler.progressService.WeeklyStats(userID, time.Now().UTC())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
