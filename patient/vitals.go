/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import (
	"strconv"
	"strings"
)

// Trend is the direction indicator shown next to a vital.
type Trend int

const (
	TrendNone Trend = iota
	TrendUp
	TrendDown
)

const (
	levelNormal = "Normal"
	levelHigher = "Higher"
	levelLower  = "Lower"

	notAvailable = "N/A"
)

func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "none"
	}
}

// Arrow returns the display arrow for the trend, empty for TrendNone.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return ""
	}
}

// Classification is the display category derived from a vital.
type Classification struct {
	Label string
	Trend Trend
}

// Classify maps a vital to its display label and trend. A missing vital is
// reported as "Normal" with no trend.
func Classify(v *Vital) Classification {
	if v == nil {
		return Classification{Label: levelNormal, Trend: TrendNone}
	}

	label := v.Levels
	if label == "" {
		label = levelNormal
	}

	switch {
	case strings.Contains(v.Levels, levelHigher):
		return Classification{Label: label, Trend: TrendUp}
	case strings.Contains(v.Levels, levelLower):
		return Classification{Label: label, Trend: TrendDown}
	default:
		return Classification{Label: label, Trend: TrendNone}
	}
}

// DisplayValue formats a vital's value, "N/A" when absent or zero.
func DisplayValue(v *Vital) string {
	if v == nil || v.Value == 0 {
		return notAvailable
	}
	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}
