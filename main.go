/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/cmd"
	"github.com/humaidq/vitalboard/logging"
)

func main() {
	logging.Init()

	// A local .env may carry the API settings; real environment wins.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Logger(logging.SourceApp).Warn("failed to read .env file", "error", err)
	}

	app := &cli.Command{
		Name:  "vitalboard",
		Usage: "Vitalboard - Patient Vitals Dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "minimum log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logging.SetLevel(c.String("log-level")); err != nil {
				return ctx, fmt.Errorf("invalid log level: %w", err)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdPatients,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		logging.Logger(logging.SourceApp).Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
