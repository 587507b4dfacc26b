package models

const DateLayout = "2006-01-02"

const (
	MoodGreat  = "great"
	MoodNormal = "normal"
	MoodHard   = "hard"
)

func IsValidMood(mood string) bool {
	return mood == MoodGreat || mood == MoodNormal || mood == MoodHard
}

// TimelineEvent records one intra-day toggle-on of a quick symptom.
// Timestamp is Unix milliseconds, matching the log's own Timestamp.
type TimelineEvent struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
}

// DailyLog is one day's check-in. Date (YYYY-MM-DD) is the primary key;
// there is at most one log per date. Symptoms holds the current symptom
// set while Timeline is the audit log of quick-symptom toggles; the two
// are kept consistent by every mutation.
type DailyLog struct {
	Date            string          `json:"date"`
	Mood            string          `json:"mood"`
	Symptoms        []string        `json:"symptoms"`
	MedicationTaken bool            `json:"medicationTaken"`
	Notes           string          `json:"notes"`
	Timestamp       int64           `json:"timestamp"`
	Timeline        []TimelineEvent `json:"timeline,omitempty"`
}

func (log DailyLog) HasSymptom(id string) bool {
	for _, symptomID := range log.Symptoms {
		if symptomID == id {
			return true
		}
	}
	return false
}

// AppState is the whole persisted document: one profile and the daily
// logs keyed by date. It is owned by the document store; all mutation
// goes through a full load-modify-save cycle.
type AppState struct {
	Profile UserProfile         `json:"profile"`
	Logs    map[string]DailyLog `json:"logs"`
}

func NewAppState() AppState {
	return AppState{
		Profile: DefaultProfile(),
		Logs:    map[string]DailyLog{},
	}
}
