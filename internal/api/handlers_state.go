package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"menodiary/internal/models"
	"menodiary/internal/services"
)

func (handler *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(handler.store.Load())
}

func (handler *Handler) DeleteData(c *fiber.Ctx) error {
	state, err := handler.logs.ClearData()
	if err != nil {
		handler.logger.Error("clear data failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data")
	}
	return c.JSON(state)
}

func (handler *Handler) PutProfile(c *fiber.Ctx) error {
	profile := models.UserProfile{}
	if err := c.BodyParser(&profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile payload")
	}
	if !models.IsValidTheme(profile.Theme) {
		return apiError(c, fiber.StatusBadRequest, "invalid theme")
	}
	if !models.IsValidHrtStatus(profile.HrtStatus) {
		return apiError(c, fiber.StatusBadRequest, "invalid hrt status")
	}
	return c.JSON(handler.profiles.SaveProfile(profile))
}

type profilePatchPayload struct {
	Op            string                       `json:"op"`
	Name          string                       `json:"name,omitempty"`
	Theme         string                       `json:"theme,omitempty"`
	Notifications *models.NotificationSettings `json:"notifications,omitempty"`
	HrtStatus     string                       `json:"hrtStatus,omitempty"`
	HrtStartDate  string                       `json:"hrtStartDate,omitempty"`
}

// PatchProfile applies one tagged update. Ops mirror the commands the
// settings screens issue: setName, setTheme, setNotifications, setHrt,
// completeOnboarding.
func (handler *Handler) PatchProfile(c *fiber.Ctx) error {
	payload := profilePatchPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patch payload")
	}

	var update services.ProfileUpdate
	switch payload.Op {
	case "setName":
		update = services.SetName{Name: payload.Name}
	case "setTheme":
		update = services.SetTheme{Theme: payload.Theme}
	case "setNotifications":
		if payload.Notifications == nil {
			return apiError(c, fiber.StatusBadRequest, "missing notifications")
		}
		update = services.SetNotifications{Settings: *payload.Notifications}
	case "setHrt":
		update = services.SetHrt{Status: payload.HrtStatus, StartDate: payload.HrtStartDate}
	case "completeOnboarding":
		update = services.CompleteOnboarding{}
	default:
		return apiError(c, fiber.StatusBadRequest, "unknown op")
	}

	state, err := handler.profiles.Apply(update)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(state)
}
