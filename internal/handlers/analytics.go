package handlers

import (
	"github.com/gofiber/fiber/v2"

	"secondbrain/internal/engine"
)

// GetAnalytics recomputes the full analytics payload from source records.
// Nothing derived is cached, so this can never disagree with the goals list.
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	goals, err := h.store.GetGoals()
	if err != nil {
		return h.fail(c, err)
	}
	tasks, err := h.store.GetTasksByGoal()
	if err != nil {
		return h.fail(c, err)
	}
	logs, err := h.store.GetLogEntries()
	if err != nil {
		return h.fail(c, err)
	}
	mood, err := h.store.GetMood()
	if err != nil {
		return h.fail(c, err)
	}

	view, err := engine.DeriveAnalytics(goals, tasks, logs, mood, h.userName, h.clock.Today())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// GetMemory dumps the raw persisted document for debugging.
func (h *Handler) GetMemory(c *fiber.Ctx) error {
	snap, err := h.store.Snapshot()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}
