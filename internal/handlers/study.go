package handlers

import (
	"github.com/gofiber/fiber/v2"

	"secondbrain/internal/engine"
	"secondbrain/internal/models"
)

// LogHours adds hours to today's log entry. Additive: logging twice in one
// day accumulates. The response reports the day's running total and streak.
func (h *Handler) LogHours(c *fiber.Ctx) error {
	var req models.LogHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	today := h.clock.Today()
	entry, err := h.store.AddHours(today.Format(models.DateLayout), req.Hours)
	if err != nil {
		return h.fail(c, err)
	}

	logs, err := h.store.GetLogEntries()
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"date":        entry.Date,
		"total_today": entry.Hours,
		"streak":      engine.Streak(logs, today),
	})
}

// SetMood overwrites the single current mood value.
func (h *Handler) SetMood(c *fiber.Ctx) error {
	var req models.UpdateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	state, err := h.store.SetMood(req.Mood)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"mood": state.Mood})
}
