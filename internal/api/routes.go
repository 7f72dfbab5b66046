package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.SignUp)
	auth.Post("/login", handler.LogIn)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.Me)
	users.Get("/:id", handler.GetUser)
	users.Put("/:id/points", handler.UpdateUserPoints)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Post("", handler.CreateHabit)
	habits.Get("/user/:userId", handler.ListHabitsByUser)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)

	progress := api.Group("/progress", handler.AuthRequired)
	progress.Post("", handler.UpsertProgress)
	progress.Get("/user/:userId/date/:date", handler.ProgressForDate)
	progress.Get("/user/:userId/week", handler.WeeklyStats)
	progress.Get("/habit/:habitId", handler.ProgressForHabit)
}
