package api

import "github.com/gofiber/fiber/v2"

const serviceVersion = "1.0.0"

func (handler *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "stride",
		"status":  "ok",
		"version": serviceVersion,
	})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
