package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup installs the default slog logger: text in development, JSON in production.
func Setup(appEnv, logLevel string, out io.Writer) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(logLevel),
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
