package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"secondbrain/internal/engine"
	"secondbrain/internal/models"
)

// GetGoals returns every goal with its derived fields, in insertion order.
func (h *Handler) GetGoals(c *fiber.Ctx) error {
	goals, err := h.store.GetGoals()
	if err != nil {
		return h.fail(c, err)
	}
	tasks, err := h.store.GetTasksByGoal()
	if err != nil {
		return h.fail(c, err)
	}

	today := h.clock.Today()
	views := make([]engine.GoalView, 0, len(goals))
	for _, g := range goals {
		v, err := engine.DeriveGoalView(g, tasks[g.ID], today)
		if err != nil {
			return h.fail(c, err)
		}
		views = append(views, v)
	}
	return c.JSON(views)
}

func (h *Handler) CreateGoal(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.store.CreateGoal(req.Title, req.Deadline)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.goalView(goal))
}

func (h *Handler) UpdateGoal(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.store.UpdateGoal(id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.goalView(goal))
}

func (h *Handler) DeleteGoal(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.store.DeleteGoal(id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

// CompleteGoal is idempotent; completing an already-completed goal is a no-op.
func (h *Handler) CompleteGoal(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	goal, err := h.store.CompleteGoal(id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.goalView(goal))
}

// goalView derives the serializable view for a single freshly-mutated goal.
// Deadlines are validated on write, so derivation failing here means the
// stored record is corrupt; log it and return what we have.
func (h *Handler) goalView(goal models.Goal) engine.GoalView {
	tasks, err := h.store.GetTasks(goal.ID)
	if err != nil {
		tasks = nil
	}
	v, err := engine.DeriveGoalView(goal, tasks, h.clock.Today())
	if err != nil {
		h.logger.Error("goal view derivation failed", zap.Uint("goalId", goal.ID), zap.Error(err))
	}
	return v
}
