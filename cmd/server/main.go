package main

import (
	"context"
	"log/slog"
	"os"

	"hrdesk/internal/app/server"
	"hrdesk/internal/platform/config"
)

func main() {
	cfg := config.Load()

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
