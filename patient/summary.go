/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

// LabPreviewSize is the number of lab results shown on the dashboard.
const LabPreviewSize = 5

// Reading is a vital prepared for display.
type Reading struct {
	Title string
	Value string
	Unit  string
	Label string
	Trend Trend
}

// Summary is everything the dashboard views derive from one patient.
type Summary struct {
	Patient     Patient
	DateOfBirth string

	// Latest is nil when the patient has no history.
	Latest    *DiagnosisHistoryEntry
	Systolic  Reading
	Diastolic Reading
	Vitals    []Reading

	Chart       []DiagnosisHistoryEntry
	Diagnostics []DiagnosticListItem
	Labs        []string
}

// Summarize derives the display summary of a patient.
func Summarize(p Patient) Summary {
	latest := Latest(p.DiagnosisHistory)

	var snapshot DiagnosisHistoryEntry
	if latest != nil {
		snapshot = *latest
	}

	return Summary{
		Patient:     p,
		DateOfBirth: FormatDate(p.DateOfBirth),
		Latest:      latest,
		Systolic:    newReading("Systolic", snapshot.Systolic(), ""),
		Diastolic:   newReading("Diastolic", snapshot.Diastolic(), ""),
		Vitals: []Reading{
			newReading("Respiratory Rate", snapshot.RespiratoryRate, "bpm"),
			newReading("Temperature", snapshot.Temperature, "°F"),
			newReading("Heart Rate", snapshot.HeartRate, "bpm"),
		},
		Chart:       WindowFor(p.DiagnosisHistory, ChartWindow),
		Diagnostics: p.DiagnosticList,
		Labs:        LabPreview(p.LabResults, LabPreviewSize),
	}
}

// LabPreview returns at most n lab results in delivery order.
func LabPreview(results []string, n int) []string {
	if n <= 0 || len(results) == 0 {
		return []string{}
	}
	if n > len(results) {
		n = len(results)
	}
	out := make([]string, n)
	copy(out, results[:n])
	return out
}

func newReading(title string, v *Vital, unit string) Reading {
	c := Classify(v)
	return Reading{
		Title: title,
		Value: DisplayValue(v),
		Unit:  unit,
		Label: c.Label,
		Trend: c.Trend,
	}
}
