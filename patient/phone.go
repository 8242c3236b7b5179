/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import (
	"regexp"
	"strings"
)

var nonDigitRegex = regexp.MustCompile(`[^\d]`)

// NormalizePhone removes all non-digit characters.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// TelURI returns a tel: URI for a phone number, or "" if it has no digits.
// A leading "+" is kept so international numbers stay dialable.
func TelURI(phone string) string {
	digits := NormalizePhone(phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "tel:+" + digits
	}
	return "tel:" + digits
}
