package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"secondbrain/internal/agent"
	"secondbrain/internal/clock"
	"secondbrain/internal/models"
	"secondbrain/internal/store"
)

// Handler carries the wired dependencies for every route. Nothing here is
// package-level state; main owns the store and injects it.
type Handler struct {
	store    store.Store
	agent    *agent.Agent
	clock    clock.Clock
	logger   *zap.Logger
	userName string
}

func New(st store.Store, ag *agent.Agent, clk clock.Clock, logger *zap.Logger, userName string) *Handler {
	return &Handler{
		store:    st,
		agent:    ag,
		clock:    clk,
		logger:   logger,
		userName: userName,
	}
}

// fail maps the error taxonomy onto HTTP statuses: validation 400,
// not-found 404, conflict 409, anything else 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	var nf *models.NotFoundError
	var cf *models.ConflictError

	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Error(),
			"field": ve.Field,
		})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": nf.Error(),
		})
	case errors.As(err, &cf):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": cf.Error(),
		})
	default:
		h.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, &models.ValidationError{Field: name, Reason: "must be a positive integer"}
	}
	return uint(id), nil
}
