/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalboard/api"
)

const (
	flagAPIURL      = "api-url"
	flagAPIUsername = "api-username"
	flagAPIPassword = "api-password"
	flagAPITimeout  = "api-timeout"
)

// apiFlags are shared by every command that talks to the patient API. The
// VITE_ names are accepted so existing frontend environments keep working.
func apiFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagAPIURL,
			Sources: cli.EnvVars("API_URL", "VITE_API_URL"),
			Usage:   "patient API endpoint returning the full patient list",
		},
		&cli.StringFlag{
			Name:    flagAPIUsername,
			Sources: cli.EnvVars("API_USERNAME", "VITE_API_USERNAME"),
			Usage:   "username for HTTP Basic auth against the patient API",
		},
		&cli.StringFlag{
			Name:    flagAPIPassword,
			Sources: cli.EnvVars("API_PASSWORD", "VITE_API_PASSWORD"),
			Usage:   "password for HTTP Basic auth against the patient API",
		},
		&cli.DurationFlag{
			Name:    flagAPITimeout,
			Sources: cli.EnvVars("API_TIMEOUT"),
			Usage:   "timeout for the patient fetch (0 disables it)",
		},
	}
}

// apiConfig gathers the upstream settings once. Missing values are not
// rejected here; the fetch reports them.
func apiConfig(cmd *cli.Command) api.Config {
	return api.Config{
		URL:      cmd.String(flagAPIURL),
		Username: cmd.String(flagAPIUsername),
		Password: cmd.String(flagAPIPassword),
		Timeout:  cmd.Duration(flagAPITimeout),
	}
}
