package services

import (
	"sort"
	"time"

	"menodiary/internal/models"
)

type RangePreset string

const (
	RangeLast7   RangePreset = "last7"
	RangeLast30  RangePreset = "last30"
	RangeLast90  RangePreset = "last90"
	RangeAllTime RangePreset = "all"
	RangeCustom  RangePreset = "custom"
)

const defaultWindowDays = 30

// DateRange is an inclusive [Start, End] pair of YYYY-MM-DD dates.
// Date strings in this layout compare correctly as plain strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// ResolveRange turns a named preset and "today" into a concrete range.
// Invalid input never propagates: an unknown preset, a custom range
// with start after end, or all-time over an empty history all fall
// back to the default last-30-days window.
func ResolveRange(preset RangePreset, today time.Time, state models.AppState, customStart string, customEnd string) DateRange {
	end := today.Format(models.DateLayout)

	switch preset {
	case RangeLast7:
		return lastDays(today, 7)
	case RangeLast30:
		return lastDays(today, defaultWindowDays)
	case RangeLast90:
		return lastDays(today, 90)
	case RangeAllTime:
		earliest := earliestLogDate(state)
		if earliest == "" {
			return lastDays(today, defaultWindowDays)
		}
		return DateRange{Start: earliest, End: end}
	case RangeCustom:
		if !validDay(customStart) || !validDay(customEnd) || customStart > customEnd {
			return lastDays(today, defaultWindowDays)
		}
		return DateRange{Start: customStart, End: customEnd}
	default:
		return lastDays(today, defaultWindowDays)
	}
}

func lastDays(today time.Time, days int) DateRange {
	return DateRange{
		Start: today.AddDate(0, 0, -(days - 1)).Format(models.DateLayout),
		End:   today.Format(models.DateLayout),
	}
}

func validDay(value string) bool {
	_, err := time.Parse(models.DateLayout, value)
	return err == nil
}

func earliestLogDate(state models.AppState) string {
	earliest := ""
	for date := range state.Logs {
		if earliest == "" || date < earliest {
			earliest = date
		}
	}
	return earliest
}

// LogsInRange returns the logs whose date falls inside the range,
// ascending by date.
func LogsInRange(state models.AppState, r DateRange) []models.DailyLog {
	logs := make([]models.DailyLog, 0, len(state.Logs))
	for date, entry := range state.Logs {
		if r.Contains(date) {
			logs = append(logs, entry)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
	return logs
}
