package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"menodiary/internal/models"
)

// TelegramNotifier is an optional delivery channel for reminder
// signals. The evaluator stays pure; only delivery is de-duplicated,
// at most one message per reminder type per day.
type TelegramNotifier struct {
	botToken string
	chatID   string
	client   *http.Client
	logger   *zap.Logger

	mu       sync.Mutex
	sentDays map[string]string
}

func NewTelegramNotifier(botToken string, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		logger:   logger,
		sentDays: make(map[string]string),
	}
}

func (notifier *TelegramNotifier) Enabled() bool {
	return notifier.botToken != "" && notifier.chatID != ""
}

func (notifier *TelegramNotifier) Deliver(ctx context.Context, reminders []Reminder, now time.Time) {
	if !notifier.Enabled() {
		return
	}

	today := now.Format(models.DateLayout)
	for _, reminder := range reminders {
		if !notifier.shouldSend(reminder.Type, today) {
			continue
		}
		if err := notifier.sendTelegram(ctx, reminder.Message); err != nil {
			notifier.logger.Warn("send reminder failed",
				zap.String("type", reminder.Type),
				zap.Error(err),
			)
		}
	}
}

func (notifier *TelegramNotifier) shouldSend(reminderType string, today string) bool {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()

	if sentOn, ok := notifier.sentDays[reminderType]; ok && sentOn == today {
		return false
	}
	notifier.sentDays[reminderType] = today
	return true
}

func (notifier *TelegramNotifier) sendTelegram(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", notifier.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", notifier.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := notifier.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
