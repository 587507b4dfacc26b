package services

import (
	"math"

	"menodiary/internal/models"
)

const (
	TherapyUnavailableNotActive    = "therapy not active"
	TherapyUnavailableNoStartDate  = "missing therapy start date"
	TherapyUnavailableInsufficient = "insufficient data"
)

// TherapyMetric defines one before/after comparison column. Absence
// metrics count days without the marker symptom (e.g. good sleep =
// days without insomnia). Improvement direction is part of the metric,
// never decided at a call site: a drop in a lower-is-better metric and
// a rise in a higher-is-better one both count as improvement.
type TherapyMetric struct {
	Key            string
	Label          string
	SymptomID      string
	Absence        bool
	HigherIsBetter bool
}

func DefaultTherapyMetrics() []TherapyMetric {
	return []TherapyMetric{
		{Key: "hot_flash_days", Label: "Dias com fogachos", SymptomID: "hot_flash", Absence: false, HigherIsBetter: false},
		{Key: "good_sleep_days", Label: "Noites bem dormidas", SymptomID: "insomnia", Absence: true, HigherIsBetter: true},
	}
}

type TherapyMetricResult struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	BeforePercent int    `json:"beforePercent"`
	AfterPercent  int    `json:"afterPercent"`
	Delta         int    `json:"delta"`
	Improved      bool   `json:"improved"`
}

type TherapyComparison struct {
	Available  bool                  `json:"available"`
	Reason     string                `json:"reason,omitempty"`
	StartDate  string                `json:"startDate,omitempty"`
	BeforeDays int                   `json:"beforeDays"`
	AfterDays  int                   `json:"afterDays"`
	Metrics    []TherapyMetricResult `json:"metrics,omitempty"`
}

// CompareTherapy partitions the history at the therapy start date and
// computes each metric per bucket. An empty bucket yields an explicit
// insufficient-data result instead of a division by zero.
func CompareTherapy(state models.AppState, metrics []TherapyMetric) TherapyComparison {
	profile := state.Profile
	if profile.HrtStatus == models.HrtNone {
		return TherapyComparison{Reason: TherapyUnavailableNotActive}
	}
	if profile.HrtStartDate == "" {
		return TherapyComparison{Reason: TherapyUnavailableNoStartDate}
	}

	before := make([]models.DailyLog, 0, len(state.Logs))
	after := make([]models.DailyLog, 0, len(state.Logs))
	for date, entry := range state.Logs {
		if date < profile.HrtStartDate {
			before = append(before, entry)
		} else {
			after = append(after, entry)
		}
	}

	comparison := TherapyComparison{
		StartDate:  profile.HrtStartDate,
		BeforeDays: len(before),
		AfterDays:  len(after),
	}

	if len(before) == 0 || len(after) == 0 {
		comparison.Reason = TherapyUnavailableInsufficient
		return comparison
	}

	comparison.Available = true
	comparison.Metrics = make([]TherapyMetricResult, 0, len(metrics))
	for _, metric := range metrics {
		beforePercent := markerPercent(before, metric)
		afterPercent := markerPercent(after, metric)

		improved := afterPercent < beforePercent
		if metric.HigherIsBetter {
			improved = afterPercent > beforePercent
		}

		comparison.Metrics = append(comparison.Metrics, TherapyMetricResult{
			Key:           metric.Key,
			Label:         metric.Label,
			BeforePercent: beforePercent,
			AfterPercent:  afterPercent,
			Delta:         afterPercent - beforePercent,
			Improved:      improved,
		})
	}

	return comparison
}

func markerPercent(logs []models.DailyLog, metric TherapyMetric) int {
	matched := 0
	for _, entry := range logs {
		has := entry.HasSymptom(metric.SymptomID)
		if metric.Absence {
			has = !has
		}
		if has {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(logs)) * 100))
}
