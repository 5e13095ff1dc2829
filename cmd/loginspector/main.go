package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		appLogger().Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// appLogger falls back to the default logger when config never loaded.
func appLogger() *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
