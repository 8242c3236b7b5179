/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patient

// Vital is a single clinical measurement with its qualitative level, e.g.
// "Higher than Average".
type Vital struct {
	Value  float64 `json:"value"`
	Levels string  `json:"levels"`
}

// BloodPressure holds the systolic and diastolic readings of a snapshot.
type BloodPressure struct {
	Systolic  *Vital `json:"systolic"`
	Diastolic *Vital `json:"diastolic"`
}

// DiagnosisHistoryEntry is one monthly clinical snapshot.
type DiagnosisHistoryEntry struct {
	Month           string         `json:"month"`
	Year            int            `json:"year"`
	BloodPressure   *BloodPressure `json:"blood_pressure"`
	RespiratoryRate *Vital         `json:"respiratory_rate"`
	Temperature     *Vital         `json:"temperature"`
	HeartRate       *Vital         `json:"heart_rate"`
}

// Systolic returns the systolic reading, or nil when absent.
func (e DiagnosisHistoryEntry) Systolic() *Vital {
	if e.BloodPressure == nil {
		return nil
	}
	return e.BloodPressure.Systolic
}

// Diastolic returns the diastolic reading, or nil when absent.
func (e DiagnosisHistoryEntry) Diastolic() *Vital {
	if e.BloodPressure == nil {
		return nil
	}
	return e.BloodPressure.Diastolic
}

// DiagnosticListItem is a read-only problem/diagnosis row.
type DiagnosticListItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Patient is a record as delivered by the upstream patient endpoint.
//
// DiagnosisHistory is kept newest-first, in delivery order.
type Patient struct {
	// ID is assigned by the Directory on load and is not part of the wire
	// format.
	ID string `json:"-"`

	Name             string                  `json:"name"`
	Gender           string                  `json:"gender"`
	Age              int                     `json:"age"`
	PhoneNumber      string                  `json:"phone_number"`
	EmergencyContact string                  `json:"emergency_contact"`
	InsuranceType    string                  `json:"insurance_type"`
	ProfilePicture   string                  `json:"profile_picture"`
	DateOfBirth      string                  `json:"date_of_birth"`
	DiagnosisHistory []DiagnosisHistoryEntry `json:"diagnosis_history"`
	DiagnosticList   []DiagnosticListItem    `json:"diagnostic_list"`
	LabResults       []string                `json:"lab_results"`
}

// IsFemale reports whether the patient's gender is recorded as female.
func (p Patient) IsFemale() bool {
	return p.Gender == "Female"
}
