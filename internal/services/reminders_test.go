package services

import (
	"testing"

	"menodiary/internal/models"
)

func reminderState(enabled bool) models.AppState {
	state := models.NewAppState()
	state.Profile.Notifications.Enabled = enabled
	return state
}

func hasReminder(reminders []Reminder, reminderType string) bool {
	for _, reminder := range reminders {
		if reminder.Type == reminderType {
			return true
		}
	}
	return false
}

func TestRemindersSkippedWhenNotificationsDisabled(t *testing.T) {
	state := reminderState(false)
	state.Logs["2024-01-01"] = models.DailyLog{Date: "2024-01-01", Mood: models.MoodNormal}

	if reminders := EvaluateReminders(state, mustTime(t, "2024-01-20 11:00")); len(reminders) != 0 {
		t.Fatalf("expected no reminders, got %+v", reminders)
	}
}

func TestInactivityReminderFiresAfterThreshold(t *testing.T) {
	state := reminderState(true)
	state.Logs["2024-01-10"] = models.DailyLog{Date: "2024-01-10", Mood: models.MoodNormal}

	reminders := EvaluateReminders(state, mustTime(t, "2024-01-15 10:00"))
	if !hasReminder(reminders, ReminderInactivity) {
		t.Fatalf("expected inactivity reminder after 5 days, got %+v", reminders)
	}
}

func TestInactivityReminderRespectsThreshold(t *testing.T) {
	state := reminderState(true)
	state.Logs["2024-01-12"] = models.DailyLog{Date: "2024-01-12", Mood: models.MoodNormal}

	// Exactly 3 days elapsed: at the threshold, not past it.
	reminders := EvaluateReminders(state, mustTime(t, "2024-01-15 10:00"))
	if hasReminder(reminders, ReminderInactivity) {
		t.Fatalf("expected no reminder at the threshold, got %+v", reminders)
	}
}

func TestInactivityReminderNoopWithoutLogs(t *testing.T) {
	reminders := EvaluateReminders(reminderState(true), mustTime(t, "2024-01-15 10:00"))
	if hasReminder(reminders, ReminderInactivity) {
		t.Fatalf("expected no reminder with zero logs, got %+v", reminders)
	}
}

func TestInactivityReminderHonorsToggle(t *testing.T) {
	state := reminderState(true)
	state.Profile.Notifications.ReminderTypes.Inactivity = false
	state.Logs["2024-01-01"] = models.DailyLog{Date: "2024-01-01", Mood: models.MoodNormal}

	reminders := EvaluateReminders(state, mustTime(t, "2024-01-20 10:00"))
	if hasReminder(reminders, ReminderInactivity) {
		t.Fatalf("expected toggle to suppress reminder, got %+v", reminders)
	}
}

func TestMedicationReminderFiresAtFollowUpHour(t *testing.T) {
	state := reminderState(true)
	state.Profile.HrtStatus = models.HrtSystemic
	state.Profile.Notifications.DailyTime = "09:00"

	// Follow-up fires two hours after the configured reminder time.
	reminders := EvaluateReminders(state, mustTime(t, "2024-01-15 11:30"))
	if !hasReminder(reminders, ReminderMedicationCheck) {
		t.Fatalf("expected medication reminder at 11h, got %+v", reminders)
	}

	reminders = EvaluateReminders(state, mustTime(t, "2024-01-15 12:00"))
	if hasReminder(reminders, ReminderMedicationCheck) {
		t.Fatalf("expected no medication reminder outside the hour, got %+v", reminders)
	}
}

func TestMedicationReminderRequiresActiveTherapy(t *testing.T) {
	state := reminderState(true)
	state.Profile.HrtStatus = models.HrtNone
	state.Profile.Notifications.DailyTime = "09:00"

	reminders := EvaluateReminders(state, mustTime(t, "2024-01-15 11:00"))
	if hasReminder(reminders, ReminderMedicationCheck) {
		t.Fatalf("expected no reminder without active therapy, got %+v", reminders)
	}
}

func TestMedicationReminderSkipsUnparseableTime(t *testing.T) {
	state := reminderState(true)
	state.Profile.HrtStatus = models.HrtLocal
	state.Profile.Notifications.DailyTime = "morning"

	reminders := EvaluateReminders(state, mustTime(t, "2024-01-15 11:00"))
	if hasReminder(reminders, ReminderMedicationCheck) {
		t.Fatalf("expected unparseable time to skip the check, got %+v", reminders)
	}
}
