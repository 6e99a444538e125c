package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/breve/pkg/logger"
	"github.com/mchmarny/breve/pkg/server"
)

// main serves menu.yaml and the dist directory of the working directory with
// default settings. cmd/breve exposes the flags.
func main() {
	logger.SetDefaultLogger("dev")

	srv, err := server.New(server.WithMenuFile("menu.yaml"), server.WithAssetsDir("dist"))
	if err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
