package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"menodiary/internal/services"
)

const insightRetryMessage = "Não consegui conectar com a coach virtual. Tente novamente mais tarde."

// GenerateInsight hands a derived summary of recent logs to the
// generative-text collaborator. Failures come back as a friendly retry
// message; the collaborator can never touch the stored state.
func (handler *Handler) GenerateInsight(c *fiber.Ctx) error {
	if handler.coach == nil || !handler.coach.Enabled() {
		return apiError(c, fiber.StatusServiceUnavailable, "coach not configured")
	}

	state := handler.store.Load()
	summary := services.BuildRecentSummary(state, 0)
	if summary == "" {
		return apiError(c, fiber.StatusUnprocessableEntity, "no logs to analyze")
	}

	insight, err := handler.coach.GenerateInsight(c.Context(), summary)
	if err != nil {
		handler.logger.Warn("insight generation failed", zap.Error(err))
		return apiError(c, fiber.StatusBadGateway, insightRetryMessage)
	}

	return c.JSON(fiber.Map{"insight": insight})
}
