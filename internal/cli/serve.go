package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menodiary/internal/api"
	"menodiary/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the journal API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLogger, err := newLogger()
		if err != nil {
			return err
		}
		defer appLogger.Sync()

		documents, err := openDocumentStore(cfg, appLogger)
		if err != nil {
			return err
		}

		coach := services.NewCoachClient(cfg.Coach.Endpoint, cfg.Coach.APIKey, cfg.Coach.Model, appLogger)
		handler := api.NewHandler(documents, coach, appLogger)

		app := fiber.New(fiber.Config{
			AppName:               "Menodiary",
			DisableStartupMessage: true,
		})
		app.Use(recover.New())
		app.Use(logger.New())
		app.Use(compress.New())
		api.RegisterRoutes(app, handler)

		sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stopSignals()

		// Reminders are evaluated once per session, at startup.
		reminders := services.EvaluateReminders(documents.Load(), time.Now())
		for _, reminder := range reminders {
			appLogger.Info("reminder",
				zap.String("type", reminder.Type),
				zap.String("message", reminder.Message),
			)
		}
		notifier := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, appLogger)
		if notifier.Enabled() && len(reminders) > 0 {
			notifier.Deliver(sigCtx, reminders, time.Now())
		}

		go func() {
			<-sigCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				appLogger.Error("server shutdown failed", zap.Error(err))
			}
		}()

		appLogger.Info("menodiary listening",
			zap.String("port", cfg.Port),
			zap.String("db", cfg.DBPath),
		)
		return app.Listen(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
