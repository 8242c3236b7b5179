/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import (
	"strings"
	"time"
)

const longDateLayout = "January 2, 2006"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"20060102",
}

// ParseDate parses a stored date in any of the accepted layouts.
func ParseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatDate renders a stored date as "January 2, 2006". Empty input yields
// "N/A" and anything unparseable, blank strings included, is returned
// unchanged.
func FormatDate(raw string) string {
	if raw == "" {
		return notAvailable
	}

	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}

	return t.Format(longDateLayout)
}
