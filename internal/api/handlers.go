package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"menodiary/internal/services"
)

type Handler struct {
	logs     *services.LogService
	profiles *services.ProfileService
	store    services.StateStore
	coach    *services.CoachClient
	logger   *zap.Logger
}

func NewHandler(store services.StateStore, coach *services.CoachClient, logger *zap.Logger) *Handler {
	return &Handler{
		logs:     services.NewLogService(store),
		profiles: services.NewProfileService(store),
		store:    store,
		coach:    coach,
		logger:   logger,
	}
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
