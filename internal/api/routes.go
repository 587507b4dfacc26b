package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/api/health", handler.Health)

	app.Get("/api/state", handler.GetState)
	app.Delete("/api/data", handler.DeleteData)

	app.Put("/api/profile", handler.PutProfile)
	app.Patch("/api/profile", handler.PatchProfile)

	app.Put("/api/logs", handler.PutLog)
	app.Post("/api/logs/:date/symptoms/:id/toggle", handler.ToggleSymptom)

	app.Get("/api/symptoms", handler.GetSymptomCatalog)

	app.Get("/api/analytics/trend", handler.GetTrend)
	app.Get("/api/analytics/symptoms", handler.GetSymptomFrequencies)
	app.Get("/api/analytics/therapy", handler.GetTherapyComparison)
	app.Get("/api/analytics/summary", handler.GetReportSummary)

	app.Get("/api/reminders", handler.GetReminders)
	app.Get("/api/export", handler.Export)
	app.Post("/api/insight", handler.GenerateInsight)
}
