package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/breve/pkg/config"
	"github.com/mchmarny/breve/pkg/server"
)

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.Int("port", server.DefaultPort, "Port to run the server on")
	menuFile := fs.String("menu", "menu.yaml", "Menu spec file, reloaded on change")
	configFile := fs.String("config", "", "Widget config file (defaults when empty)")
	assets := fs.String("assets", "dist", "Directory holding breve.wasm and wasm_exec.js")
	shutdown := fs.Duration("shutdown", server.DefaultShutdownTimeout, "Graceful shutdown timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			return err
		}
	}

	srv, err := server.New(
		server.WithPort(*port),
		server.WithMenuFile(*menuFile),
		server.WithAssetsDir(*assets),
		server.WithConfig(cfg),
		server.WithShutdownTimeout(*shutdown),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Serve(ctx)
}
