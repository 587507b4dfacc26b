package services

import (
	"testing"

	"menodiary/internal/models"
)

func TestSaveProfileReplacesWholeProfile(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(store)

	profile := models.DefaultProfile()
	profile.Name = "Helena"
	profile.Age = 52
	profile.Theme = models.ThemeDark
	profile.IsOnboarded = true

	state := service.SaveProfile(profile)
	if state.Profile.Name != "Helena" || state.Profile.Theme != models.ThemeDark {
		t.Fatalf("unexpected profile: %+v", state.Profile)
	}
	if store.saves != 1 {
		t.Fatalf("expected one save, got %d", store.saves)
	}
}

func TestApplyTouchesOnlyNamedFields(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(store)

	seed := models.DefaultProfile()
	seed.Name = "Helena"
	service.SaveProfile(seed)

	state, err := service.Apply(SetTheme{Theme: models.ThemeDark})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state.Profile.Theme != models.ThemeDark {
		t.Fatalf("theme not applied: %+v", state.Profile)
	}
	if state.Profile.Name != "Helena" || state.Profile.Age != 45 {
		t.Fatalf("unrelated fields were disturbed: %+v", state.Profile)
	}
}

func TestApplyRejectsInvalidTheme(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(store)
	service.SaveProfile(models.DefaultProfile())
	saved := store.saves

	if _, err := service.Apply(SetTheme{Theme: "sepia"}); err != ErrInvalidTheme {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if store.saves != saved {
		t.Fatalf("a failed update must not save")
	}
}

func TestApplyResetsUnparseableDailyTime(t *testing.T) {
	service := NewProfileService(newMemStore())

	settings := models.DefaultProfile().Notifications
	settings.DailyTime = "nine in the morning"
	state, err := service.Apply(SetNotifications{Settings: settings})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state.Profile.Notifications.DailyTime != "09:00" {
		t.Fatalf("expected default daily time, got %q", state.Profile.Notifications.DailyTime)
	}
}

func TestApplySetHrtValidatesInput(t *testing.T) {
	service := NewProfileService(newMemStore())

	if _, err := service.Apply(SetHrt{Status: "patch"}); err != ErrInvalidHrtStatus {
		t.Fatalf("expected ErrInvalidHrtStatus, got %v", err)
	}
	if _, err := service.Apply(SetHrt{Status: models.HrtSystemic, StartDate: "01/02/2024"}); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}

	state, err := service.Apply(SetHrt{Status: models.HrtSystemic, StartDate: "2024-02-01"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state.Profile.HrtStatus != models.HrtSystemic || state.Profile.HrtStartDate != "2024-02-01" {
		t.Fatalf("unexpected hrt fields: %+v", state.Profile)
	}
}

func TestCompleteOnboardingIsOneWay(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(store)

	state, err := service.Apply(CompleteOnboarding{})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !state.Profile.IsOnboarded {
		t.Fatalf("expected onboarding flag set")
	}
}

func TestApplyPartialFailureAbortsAllUpdates(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(store)
	service.SaveProfile(models.DefaultProfile())
	saved := store.saves

	_, err := service.Apply(SetName{Name: "Helena"}, SetTheme{Theme: "sepia"})
	if err != ErrInvalidTheme {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if store.saves != saved {
		t.Fatalf("no update may be saved when one fails")
	}
	if store.Load().Profile.Name == "Helena" {
		t.Fatalf("earlier updates in a failed batch must not persist")
	}
}
