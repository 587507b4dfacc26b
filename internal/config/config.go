package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port   string `yaml:"port"`
	DBPath string `yaml:"db_path"`

	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`

	Coach struct {
		Endpoint string `yaml:"endpoint"`
		APIKey   string `yaml:"api_key"`
		Model    string `yaml:"model"`
	} `yaml:"coach"`
}

// Load reads the optional YAML config and layers environment variables
// on top. A missing file is not an error; everything has a default.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = filepath.Join("configs", "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// Support ${ENV_VAR} placeholders in YAML config.
		data = []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus environment only.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join("data", "menodiary.db")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setIfPresent(&cfg.Port, "PORT")
	setIfPresent(&cfg.DBPath, "DB_PATH")
	setIfPresent(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setIfPresent(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	setIfPresent(&cfg.Coach.Endpoint, "COACH_ENDPOINT")
	setIfPresent(&cfg.Coach.APIKey, "GEMINI_API_KEY")
	setIfPresent(&cfg.Coach.Model, "COACH_MODEL")
}

func setIfPresent(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}
