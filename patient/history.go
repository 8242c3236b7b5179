/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

import "fmt"

// ChartWindow is the number of snapshots plotted on the trend chart.
const ChartWindow = 6

// WindowFor takes the n most recent entries of a newest-first history and
// returns them oldest-to-newest in a new slice.
func WindowFor(history []DiagnosisHistoryEntry, n int) []DiagnosisHistoryEntry {
	if n <= 0 || len(history) == 0 {
		return []DiagnosisHistoryEntry{}
	}
	if n > len(history) {
		n = len(history)
	}

	window := make([]DiagnosisHistoryEntry, n)
	for i := 0; i < n; i++ {
		window[n-1-i] = history[i]
	}

	return window
}

// Latest returns the most recent snapshot, or nil for an empty history.
func Latest(history []DiagnosisHistoryEntry) *DiagnosisHistoryEntry {
	if len(history) == 0 {
		return nil
	}
	latest := history[0]
	return &latest
}

// ChartLabel renders the x-axis label for a snapshot, e.g. "Mar. 24".
func ChartLabel(e DiagnosisHistoryEntry) string {
	month := []rune(e.Month)
	if len(month) > 3 {
		month = month[:3]
	}
	return fmt.Sprintf("%s. %d", string(month), e.Year%100)
}
