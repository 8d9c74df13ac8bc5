package handlers

import (
	"github.com/gofiber/fiber/v2"

	"secondbrain/internal/models"
)

// GetTasks lists the tasks of a goal. An unknown goal yields an empty list,
// not a 404, so clients can render a just-deleted goal's panel safely.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	goalID, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	tasks, err := h.store.GetTasks(goalID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tasks)
}

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	goalID, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req models.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.store.CreateTask(goalID, req.Task)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	goalID, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return h.fail(c, err)
	}

	var req models.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	task, err := h.store.UpdateTask(goalID, taskID, req.Task)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(task)
}

func (h *Handler) ToggleTask(c *fiber.Ctx) error {
	goalID, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return h.fail(c, err)
	}

	task, err := h.store.ToggleTask(goalID, taskID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(task)
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	goalID, err := parseID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.store.DeleteTask(goalID, taskID); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"deleted": taskID})
}
