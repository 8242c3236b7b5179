/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errPortRequired = errors.New("port is required (set via --port or PORT env var)")
	errServerClosed = errors.New("web server stopped unexpectedly")
)
