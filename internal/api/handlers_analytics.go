package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"menodiary/internal/models"
	"menodiary/internal/services"
)

// resolveRangeQuery reads ?range=last7|last30|last90|all|custom plus
// from/to for custom ranges. Invalid input normalizes to the default
// window inside ResolveRange instead of failing the request.
func resolveRangeQuery(c *fiber.Ctx, state models.AppState) services.DateRange {
	preset := services.RangePreset(c.Query("range", string(services.RangeLast30)))
	return services.ResolveRange(preset, time.Now(), state, c.Query("from"), c.Query("to"))
}

func (handler *Handler) GetTrend(c *fiber.Ctx) error {
	state := handler.store.Load()
	r := resolveRangeQuery(c, state)
	return c.JSON(fiber.Map{
		"range": r,
		"trend": services.MoodTrend(state, r),
	})
}

func (handler *Handler) GetSymptomFrequencies(c *fiber.Ctx) error {
	state := handler.store.Load()
	r := resolveRangeQuery(c, state)
	return c.JSON(fiber.Map{
		"range":    r,
		"symptoms": services.SymptomFrequencies(state, r),
	})
}

func (handler *Handler) GetTherapyComparison(c *fiber.Ctx) error {
	state := handler.store.Load()
	return c.JSON(services.CompareTherapy(state, services.DefaultTherapyMetrics()))
}

func (handler *Handler) GetReportSummary(c *fiber.Ctx) error {
	state := handler.store.Load()
	r := resolveRangeQuery(c, state)
	return c.JSON(services.BuildReportSummary(state, r))
}

func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	state := handler.store.Load()
	reminders := services.EvaluateReminders(state, time.Now())
	if reminders == nil {
		reminders = []services.Reminder{}
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}
