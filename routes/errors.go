/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errEmptyChartWindow = errors.New("no history entries to chart")
	errNoPhoneDigits    = errors.New("phone number has no digits")
)
