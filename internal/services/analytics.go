package services

import (
	"math"
	"sort"

	"menodiary/internal/models"
)

// Every function here is a pure read over (AppState, DateRange):
// no mutation, no incremental state, recomputed from scratch per call.

const (
	moodScoreGreat  = 90
	moodScoreNormal = 50
	moodScoreHard   = 20

	symptomPenalty    = 5
	maxSymptomPenalty = 30
)

type TrendPoint struct {
	Date         string `json:"date"`
	Score        int    `json:"score"`
	Mood         string `json:"mood"`
	SymptomCount int    `json:"symptomCount"`
}

// MoodScore maps a day to a bounded [0,100] well-being index: a base
// score per mood minus a capped symptom penalty, floored at zero.
func MoodScore(mood string, symptomCount int) int {
	base := moodScoreNormal
	switch mood {
	case models.MoodGreat:
		base = moodScoreGreat
	case models.MoodHard:
		base = moodScoreHard
	}

	penalty := symptomCount * symptomPenalty
	if penalty > maxSymptomPenalty {
		penalty = maxSymptomPenalty
	}

	score := base - penalty
	if score < 0 {
		score = 0
	}
	return score
}

// MoodTrend scores every log in the range, ascending by date.
func MoodTrend(state models.AppState, r DateRange) []TrendPoint {
	logs := LogsInRange(state, r)
	points := make([]TrendPoint, 0, len(logs))
	for _, entry := range logs {
		points = append(points, TrendPoint{
			Date:         entry.Date,
			Score:        MoodScore(entry.Mood, len(entry.Symptoms)),
			Mood:         entry.Mood,
			SymptomCount: len(entry.Symptoms),
		})
	}
	return points
}

type SymptomFrequency struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
	// Percent of recorded days in the range that carry the symptom.
	Percent int `json:"percent"`
}

// SymptomFrequencies ranks symptom occurrences across the range,
// descending by count; ties break by ascending symptom id.
func SymptomFrequencies(state models.AppState, r DateRange) []SymptomFrequency {
	logs := LogsInRange(state, r)
	if len(logs) == 0 {
		return []SymptomFrequency{}
	}
	totalDays := len(logs)

	counts := make(map[string]int)
	for _, entry := range logs {
		for _, id := range entry.Symptoms {
			counts[id]++
		}
	}

	frequencies := make([]SymptomFrequency, 0, len(counts))
	for id, count := range counts {
		frequencies = append(frequencies, SymptomFrequency{
			ID:      id,
			Name:    models.SymptomName(id),
			Count:   count,
			Percent: int(math.Round(float64(count) / float64(totalDays) * 100)),
		})
	}

	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count == frequencies[j].Count {
			return frequencies[i].ID < frequencies[j].ID
		}
		return frequencies[i].Count > frequencies[j].Count
	})

	return frequencies
}

type NoteEntry struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

type ReportSummary struct {
	Range       DateRange          `json:"range"`
	TotalDays   int                `json:"totalDays"`
	GreatDays   int                `json:"greatDays"`
	HardDays    int                `json:"hardDays"`
	TopSymptoms []SymptomFrequency `json:"topSymptoms"`
	RecentNotes []NoteEntry        `json:"recentNotes"`
}

const (
	topSymptomLimit = 5
	recentNoteLimit = 5
)

// BuildReportSummary aggregates the range into the printable report
// figures: recorded days, mood counts, top symptoms, latest notes.
func BuildReportSummary(state models.AppState, r DateRange) ReportSummary {
	logs := LogsInRange(state, r)

	summary := ReportSummary{
		Range:       r,
		TotalDays:   len(logs),
		TopSymptoms: []SymptomFrequency{},
		RecentNotes: []NoteEntry{},
	}

	for _, entry := range logs {
		switch entry.Mood {
		case models.MoodGreat:
			summary.GreatDays++
		case models.MoodHard:
			summary.HardDays++
		}
	}

	frequencies := SymptomFrequencies(state, r)
	if len(frequencies) > topSymptomLimit {
		frequencies = frequencies[:topSymptomLimit]
	}
	summary.TopSymptoms = frequencies

	for i := len(logs) - 1; i >= 0 && len(summary.RecentNotes) < recentNoteLimit; i-- {
		if logs[i].Notes != "" {
			summary.RecentNotes = append(summary.RecentNotes, NoteEntry{Date: logs[i].Date, Notes: logs[i].Notes})
		}
	}

	return summary
}
