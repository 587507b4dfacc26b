package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"menodiary/internal/models"
)

// The coach is the external generative-text collaborator. It only ever
// sees a derived plain-text summary of recent logs, never the raw
// document, and its output is appended as a read-only insight.

const (
	defaultCoachEndpoint = "https://generativelanguage.googleapis.com"
	defaultCoachModel    = "gemini-3-flash-preview"

	coachSummaryDays = 7
)

var ErrCoachUnavailable = errors.New("coach unavailable")

const coachPrompt = `Atue como uma coach de saúde feminina especializada em climatério.
Analise estes registros recentes de uma mulher:
%s

Forneça um parágrafo curto, acolhedor e motivacional (max 60 palavras).
Identifique 1 padrão se houver (ex: piora do sono ou melhora do humor) e dê 1 dica prática e gentil.
Não faça diagnósticos médicos. Use um tom empático.`

// BuildRecentSummary renders the last few logs as one line per day,
// the only view of the history the collaborator receives.
func BuildRecentSummary(state models.AppState, days int) string {
	if days <= 0 {
		days = coachSummaryDays
	}

	logs := make([]models.DailyLog, 0, len(state.Logs))
	for _, entry := range state.Logs {
		logs = append(logs, entry)
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})
	if len(logs) > days {
		logs = logs[len(logs)-days:]
	}

	lines := make([]string, 0, len(logs))
	for _, entry := range logs {
		lines = append(lines, fmt.Sprintf("Date: %s, Mood: %s, Symptoms: %s",
			entry.Date, entry.Mood, strings.Join(entry.Symptoms, ", ")))
	}
	return strings.Join(lines, "\n")
}

type CoachClient struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
	logger   *zap.Logger
}

func NewCoachClient(endpoint string, apiKey string, model string, logger *zap.Logger) *CoachClient {
	if endpoint == "" {
		endpoint = defaultCoachEndpoint
	}
	if model == "" {
		model = defaultCoachModel
	}
	return &CoachClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		logger: logger,
	}
}

func (coach *CoachClient) Enabled() bool {
	return coach.apiKey != ""
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// GenerateInsight sends the summary to the model. The request is
// cancellable through ctx and never blocks longer than the client
// timeout; failures are reported, not retried here.
func (coach *CoachClient) GenerateInsight(ctx context.Context, summary string) (string, error) {
	if !coach.Enabled() {
		return "", ErrCoachUnavailable
	}

	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: fmt.Sprintf(coachPrompt, summary)}}},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", coach.endpoint, coach.model, coach.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := coach.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		coach.logger.Warn("coach request rejected",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return "", fmt.Errorf("coach status %d: %w", resp.StatusCode, ErrCoachUnavailable)
	}

	parsed := generateResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrCoachUnavailable
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
