package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger creates the application logger for the given environment.
// Non-local environments additionally append JSON records to a file under logDir.
func SetupLogger(env, logDir string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(logOutput(logDir), &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(logOutput(logDir), &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func logOutput(logDir string) io.Writer {
	if logDir == "" {
		return os.Stdout
	}
	file, err := os.OpenFile(filepath.Join(logDir, "rhino-bot.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, file)
}
