package services

import (
	"errors"
	"time"

	"menodiary/internal/models"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidMood    = errors.New("invalid mood")
	ErrUnknownSymptom = errors.New("unknown symptom")
	ErrClearFailed    = errors.New("clear data failed")
)

// StateStore is the load/save boundary every repository operation goes
// through. Each mutation is a full read-modify-write of the document.
type StateStore interface {
	Load() models.AppState
	Save(state models.AppState)
	Clear() error
}

type LogService struct {
	store StateStore
}

func NewLogService(store StateStore) *LogService {
	return &LogService{store: store}
}

// UpsertLog replaces the log for entry.Date in full. The caller must
// supply the complete log, including any timeline it does not intend
// to change.
func (service *LogService) UpsertLog(entry models.DailyLog) (models.AppState, error) {
	if _, err := time.Parse(models.DateLayout, entry.Date); err != nil {
		return models.AppState{}, ErrInvalidDate
	}
	if !models.IsValidMood(entry.Mood) {
		return models.AppState{}, ErrInvalidMood
	}
	if entry.Symptoms == nil {
		entry.Symptoms = []string{}
	}
	if entry.Timeline == nil {
		entry.Timeline = []models.TimelineEvent{}
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}

	state := service.store.Load()
	state.Logs[entry.Date] = entry
	service.store.Save(state)
	return state, nil
}

// ToggleQuickSymptom flips the presence of a quick symptom for a date.
// The symptom set and the timeline record the same fact and must move
// in lock-step: toggle-on appends exactly one event, toggle-off removes
// the id and every timeline event carrying it for that date.
func (service *LogService) ToggleQuickSymptom(date string, symptomID string, now time.Time) (models.AppState, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.AppState{}, ErrInvalidDate
	}
	if !models.KnownSymptom(symptomID) {
		return models.AppState{}, ErrUnknownSymptom
	}

	state := service.store.Load()

	entry, found := state.Logs[date]
	if !found {
		state.Logs[date] = models.DailyLog{
			Date:      date,
			Mood:      models.MoodNormal,
			Symptoms:  []string{symptomID},
			Notes:     "",
			Timestamp: now.UnixMilli(),
			Timeline:  []models.TimelineEvent{{ID: symptomID, Timestamp: now.UnixMilli()}},
		}
		service.store.Save(state)
		return state, nil
	}

	if entry.HasSymptom(symptomID) {
		symptoms := make([]string, 0, len(entry.Symptoms))
		for _, id := range entry.Symptoms {
			if id != symptomID {
				symptoms = append(symptoms, id)
			}
		}
		timeline := make([]models.TimelineEvent, 0, len(entry.Timeline))
		for _, event := range entry.Timeline {
			if event.ID != symptomID {
				timeline = append(timeline, event)
			}
		}
		entry.Symptoms = symptoms
		entry.Timeline = timeline
	} else {
		entry.Symptoms = append(entry.Symptoms, symptomID)
		entry.Timeline = append(entry.Timeline, models.TimelineEvent{ID: symptomID, Timestamp: now.UnixMilli()})
	}

	entry.Timestamp = now.UnixMilli()
	state.Logs[date] = entry
	service.store.Save(state)
	return state, nil
}

// ClearData erases the document and returns the fresh default state,
// the same effect as restarting from onboarding.
func (service *LogService) ClearData() (models.AppState, error) {
	if err := service.store.Clear(); err != nil {
		return models.AppState{}, ErrClearFailed
	}
	return service.store.Load(), nil
}
