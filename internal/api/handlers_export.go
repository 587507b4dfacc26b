package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"menodiary/internal/services"
)

func (handler *Handler) Export(c *fiber.Ctx) error {
	state := handler.store.Load()
	r := resolveRangeQuery(c, state)

	var output bytes.Buffer
	switch c.Query("format", "csv") {
	case "csv":
		if err := services.WriteCSV(&output, state, r); err != nil {
			handler.logger.Error("csv export failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "export failed")
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="menodiary.csv"`)
	case "xlsx":
		if err := services.WriteXLSX(&output, state, r); err != nil {
			handler.logger.Error("xlsx export failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "export failed")
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="menodiary.xlsx"`)
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown format")
	}

	return c.Send(output.Bytes())
}
