package services

import (
	"fmt"
	"time"

	"menodiary/internal/models"
)

const (
	ReminderInactivity      = "inactivity"
	ReminderMedicationCheck = "medicationCheck"

	inactivityThresholdDays       = 3
	medicationFollowUpOffsetHours = 2
)

type Reminder struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EvaluateReminders runs the session-start heuristics over the current
// history. It is read-only and idempotent; a missing or unparseable
// profile field skips the corresponding check instead of failing.
//
// The medication follow-up carries no "already notified today" state:
// it matches an entire clock hour and re-fires on every evaluation
// inside that hour. Delivery-side de-duplication lives in the
// notifier, keeping the evaluator's behavior observable and unchanged.
func EvaluateReminders(state models.AppState, now time.Time) []Reminder {
	settings := state.Profile.Notifications
	if !settings.Enabled {
		return nil
	}

	reminders := make([]Reminder, 0, 2)

	if settings.ReminderTypes.Inactivity {
		if reminder, ok := inactivityReminder(state, now); ok {
			reminders = append(reminders, reminder)
		}
	}

	if settings.ReminderTypes.MedicationCheck && state.Profile.HrtStatus != models.HrtNone {
		if reminder, ok := medicationReminder(settings.DailyTime, now); ok {
			reminders = append(reminders, reminder)
		}
	}

	return reminders
}

func inactivityReminder(state models.AppState, now time.Time) (Reminder, bool) {
	latest := ""
	for date := range state.Logs {
		if date > latest {
			latest = date
		}
	}
	if latest == "" {
		return Reminder{}, false
	}

	lastDay, err := time.Parse(models.DateLayout, latest)
	if err != nil {
		return Reminder{}, false
	}

	today, _ := time.Parse(models.DateLayout, now.Format(models.DateLayout))
	elapsed := int(today.Sub(lastDay).Hours() / 24)
	if elapsed <= inactivityThresholdDays {
		return Reminder{}, false
	}

	return Reminder{
		Type:    ReminderInactivity,
		Message: fmt.Sprintf("Você não faz um registro há %d dias. Como você está?", elapsed),
	}, true
}

func medicationReminder(dailyTime string, now time.Time) (Reminder, bool) {
	configured, err := time.Parse("15:04", dailyTime)
	if err != nil {
		return Reminder{}, false
	}

	if now.Hour() != configured.Hour()+medicationFollowUpOffsetHours {
		return Reminder{}, false
	}

	return Reminder{
		Type:    ReminderMedicationCheck,
		Message: "Você já tomou sua medicação hoje?",
	}, true
}
