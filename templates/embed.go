/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package templates

import "embed"

// Templates contains the dashboard page templates.
//
//go:embed *.html
var Templates embed.FS
