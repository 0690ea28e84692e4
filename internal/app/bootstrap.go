package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/pantherbooks/identity/internal/config"
	"github.com/pantherbooks/identity/internal/middleware"
	"github.com/pantherbooks/identity/internal/pkg/logging"
	"github.com/pantherbooks/identity/internal/pkg/message"
	"github.com/pantherbooks/identity/internal/platform/db"
)

// Run wires the whole service together and blocks until the context is
// canceled or the server fails.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	logging.Setup(appEnv, os.Getenv("LOG_LEVEL"), os.Stdout)

	cfg, err := config.Load("config.json")
	if err != nil {
		return err
	}

	dbConn, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn); err != nil {
		return err
	}

	const envKey = "KEY"
	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	provider, err := newProvider(cfg, securityKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	apiServer := New(cfg, provider, middlewares)
	if err := apiServer.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return apiServer.Shutdown()
}
