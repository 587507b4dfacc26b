package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menodiary/internal/config"
	"menodiary/internal/store"
)

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "menodiary",
	Short: "menodiary is a local-first menopause symptom journal",
	Long:  "menodiary keeps daily mood and symptom logs in a local database and derives trends, therapy comparisons, and reminders from them.",
}

func Execute() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

func openDocumentStore(cfg *config.Config, logger *zap.Logger) (*store.DocumentStore, error) {
	database, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	return store.NewDocumentStore(database, logger)
}

func newLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}
