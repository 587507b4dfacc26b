package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.DBPath != filepath.Join("data", "menodiary.db") {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
}

func TestLoadReadsYAMLAndExpandsEnv(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "123:abc")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9090\"\ntelegram:\n  bot_token: ${TEST_BOT_TOKEN}\n  chat_id: \"42\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port from file, got %q", cfg.Port)
	}
	if cfg.Telegram.BotToken != "123:abc" || cfg.Telegram.ChatID != "42" {
		t.Fatalf("unexpected telegram config: %+v", cfg.Telegram)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "7070")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Fatalf("environment must win over the file, got %q", cfg.Port)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
