package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/breve/pkg/logger"
)

var version = "v0.0.0" // Set at build time via -ldflags "-X main.version=version"

const usage = `usage: breve <command> [flags]

commands:
  serve   run the development server
  lint    check a menu file
  version print the version
`

func main() {
	logger.SetDefaultLogger(version)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = serve(os.Args[2:])
	case "lint":
		err = lint(os.Args[2:])
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}
