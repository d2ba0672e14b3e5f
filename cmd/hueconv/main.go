// Package main parses and validates the flags and input passed to the
// program, and then either converts the given colors or runs the WebSocket
// conversion service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hueconv/hueconv/internal/app"
	"github.com/hueconv/hueconv/internal/server"
)

func main() {
	preprocessVerbosityArgs()

	cfg, err := parseConfig()
	if errors.Is(err, errVersionRequested) {
		return
	}
	if err != nil {
		fmt.Printf("Error parsing input: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(cfg)

	if cfg.Serve {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		srv := server.New(server.WithLogger(logger))
		if err := srv.Serve(ctx, cfg.ListenAddr); err != nil {
			fmt.Printf("Error running conversion service: %v\n", err)
			os.Exit(1)
		}
		return
	}

	client := app.Client{
		Colors:      cfg.Colors,
		Format:      cfg.Format,
		ColorMode:   cfg.ColorMode,
		ShowWebsafe: cfg.Websafe,
		Quiet:       cfg.Quiet,
		Verbosity:   cfg.Verbosity,
		Log:         logger,
	}

	if err := client.Validate(); err != nil {
		fmt.Printf("Error in input settings: %v\n", err)
		os.Exit(1)
	}

	if err := client.Run(); err != nil {
		fmt.Printf("Error converting colors: %v\n", err)
		os.Exit(1)
	}
}
