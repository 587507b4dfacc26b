package models

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	HrtNone     = "none"
	HrtSystemic = "systemic"
	HrtLocal    = "local"
	HrtPhyto    = "phyto"
)

const (
	SupportYes     = "yes"
	SupportNo      = "no"
	SupportPartial = "partial"
)

type ReminderTypes struct {
	Daily            bool `json:"daily"`
	Inactivity       bool `json:"inactivity"`
	MedicationCheck  bool `json:"medicationCheck"`
	PeriodPrediction bool `json:"periodPrediction"`
}

type NotificationSettings struct {
	Enabled       bool          `json:"enabled"`
	DailyTime     string        `json:"dailyTime"`
	ReminderTypes ReminderTypes `json:"reminderTypes"`
}

type UserProfile struct {
	Name          string               `json:"name"`
	IsOnboarded   bool                 `json:"isOnboarded"`
	Theme         string               `json:"theme"`
	Notifications NotificationSettings `json:"notifications"`

	Age             int      `json:"age"`
	LastPeriodDate  string   `json:"lastPeriodDate"`
	SurgicalHistory []string `json:"surgicalHistory"`

	MaritalStatus string `json:"maritalStatus"`
	Occupation    string `json:"occupation"`

	HrtStatus    string `json:"hrtStatus"`
	HrtStartDate string `json:"hrtStartDate,omitempty"`

	MenopausePerception string   `json:"menopausePerception"`
	SupportNetwork      string   `json:"supportNetwork"`
	BodyImageFeeling    string   `json:"bodyImageFeeling"`
	Goals               []string `json:"goals"`
}

// DefaultProfile is the canonical profile shape. Documents persisted by
// older builds are decoded on top of it, so fields they predate keep
// these values.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:        "",
		IsOnboarded: false,
		Theme:       ThemeLight,
		Notifications: NotificationSettings{
			Enabled:   false,
			DailyTime: "09:00",
			ReminderTypes: ReminderTypes{
				Daily:            true,
				Inactivity:       true,
				MedicationCheck:  true,
				PeriodPrediction: false,
			},
		},
		Age:                 45,
		LastPeriodDate:      "",
		SurgicalHistory:     []string{},
		MaritalStatus:       "",
		Occupation:          "",
		HrtStatus:           HrtNone,
		HrtStartDate:        "",
		MenopausePerception: "",
		SupportNetwork:      SupportPartial,
		BodyImageFeeling:    "",
		Goals:               []string{},
	}
}

func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}

func IsValidHrtStatus(status string) bool {
	switch status {
	case HrtNone, HrtSystemic, HrtLocal, HrtPhyto:
		return true
	default:
		return false
	}
}
