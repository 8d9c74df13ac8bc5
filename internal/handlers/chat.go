package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type chatRequest struct {
	Message string `json:"message"`
}

// Chat classifies the message and dispatches it through the agent. The
// returned intent tag tells the client whether to refresh derived views.
func (h *Handler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message required",
		})
	}

	result, err := h.agent.Handle(req.Message)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}
