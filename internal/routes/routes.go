package routes

import (
	"github.com/gofiber/fiber/v2"

	"secondbrain/internal/handlers"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Get("/analytics", h.GetAnalytics)

	api.Get("/goals", h.GetGoals)
	api.Post("/goals", h.CreateGoal)
	api.Put("/goals/:id", h.UpdateGoal)
	api.Delete("/goals/:id", h.DeleteGoal)
	api.Post("/goals/:id/complete", h.CompleteGoal)

	api.Get("/goals/:id/tasks", h.GetTasks)
	api.Post("/goals/:id/tasks", h.CreateTask)
	api.Put("/goals/:id/tasks/:taskId", h.UpdateTask)
	api.Post("/goals/:id/tasks/:taskId/toggle", h.ToggleTask)
	api.Delete("/goals/:id/tasks/:taskId", h.DeleteTask)

	api.Post("/log-hours", h.LogHours)
	api.Post("/mood", h.SetMood)

	api.Post("/chat", h.Chat)

	// Raw record dump, debug only.
	api.Get("/memory", h.GetMemory)
}
