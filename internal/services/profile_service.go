package services

import (
	"errors"
	"time"

	"menodiary/internal/models"
)

var (
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidHrtStatus = errors.New("invalid hrt status")
)

type ProfileService struct {
	store StateStore
}

func NewProfileService(store StateStore) *ProfileService {
	return &ProfileService{store: store}
}

// SaveProfile replaces the whole profile, the operation the onboarding
// flow and the full settings form use.
func (service *ProfileService) SaveProfile(profile models.UserProfile) models.AppState {
	state := service.store.Load()
	state.Profile = profile
	service.store.Save(state)
	return state
}

// ProfileUpdate is a tagged single-field change. Collaborators apply
// named updates instead of poking profile fields by name, so each
// mutable field group keeps its own validation.
type ProfileUpdate interface {
	apply(profile *models.UserProfile) error
}

type SetName struct {
	Name string
}

func (update SetName) apply(profile *models.UserProfile) error {
	profile.Name = update.Name
	return nil
}

type SetTheme struct {
	Theme string
}

func (update SetTheme) apply(profile *models.UserProfile) error {
	if !models.IsValidTheme(update.Theme) {
		return ErrInvalidTheme
	}
	profile.Theme = update.Theme
	return nil
}

type SetNotifications struct {
	Settings models.NotificationSettings
}

func (update SetNotifications) apply(profile *models.UserProfile) error {
	settings := update.Settings
	if settings.DailyTime != "" {
		if _, err := time.Parse("15:04", settings.DailyTime); err != nil {
			settings.DailyTime = models.DefaultProfile().Notifications.DailyTime
		}
	}
	profile.Notifications = settings
	return nil
}

type SetHrt struct {
	Status    string
	StartDate string
}

func (update SetHrt) apply(profile *models.UserProfile) error {
	if !models.IsValidHrtStatus(update.Status) {
		return ErrInvalidHrtStatus
	}
	if update.StartDate != "" {
		if _, err := time.Parse(models.DateLayout, update.StartDate); err != nil {
			return ErrInvalidDate
		}
	}
	profile.HrtStatus = update.Status
	profile.HrtStartDate = update.StartDate
	return nil
}

// CompleteOnboarding is one-way: once set the flag is only ever reset
// by a full data erase.
type CompleteOnboarding struct{}

func (update CompleteOnboarding) apply(profile *models.UserProfile) error {
	profile.IsOnboarded = true
	return nil
}

// Apply runs the updates against the stored profile. Nothing is saved
// when any update fails; unrelated fields are never touched.
func (service *ProfileService) Apply(updates ...ProfileUpdate) (models.AppState, error) {
	state := service.store.Load()
	for _, update := range updates {
		if err := update.apply(&state.Profile); err != nil {
			return models.AppState{}, err
		}
	}
	service.store.Save(state)
	return state, nil
}
