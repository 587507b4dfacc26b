package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"menodiary/internal/models"
	"menodiary/internal/services"
)

func (handler *Handler) PutLog(c *fiber.Ctx) error {
	entry := models.DailyLog{}
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log payload")
	}

	state, err := handler.logs.UpsertLog(entry)
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrInvalidMood):
		return apiError(c, fiber.StatusBadRequest, "invalid mood")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save log")
	}
	return c.JSON(state)
}

func (handler *Handler) ToggleSymptom(c *fiber.Ctx) error {
	state, err := handler.logs.ToggleQuickSymptom(c.Params("date"), c.Params("id"), time.Now())
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrUnknownSymptom):
		return apiError(c, fiber.StatusBadRequest, "unknown symptom")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to toggle symptom")
	}
	return c.JSON(state)
}

func (handler *Handler) GetSymptomCatalog(c *fiber.Ctx) error {
	return c.JSON(models.SymptomCatalog())
}
