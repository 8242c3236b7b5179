/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/vitalboard/metrics"
	"github.com/humaidq/vitalboard/patient"
)

const (
	dashboardTemplate = "dashboard"

	loadFailedMessage      = "Failed to load patient data."
	patientNotFoundMessage = "Patient not found."
	unknownPatientMessage  = "That patient is not in the current list."
)

// SidebarItem is one row of the patient list.
type SidebarItem struct {
	ID       string
	Name     string
	Gender   string
	Age      int
	Picture  string
	Selected bool
}

// Dashboard renders the selected patient, or the loading/failure states
// while the startup fetch has not produced one.
func Dashboard(dir *patient.Directory, t template.Template, data template.Data) {
	setSiteTitle(data)

	switch dir.Status() {
	case patient.StatusLoading:
		data["Loading"] = true
		t.HTML(http.StatusOK, dashboardTemplate)
		return
	case patient.StatusFailed:
		data["Error"] = loadFailedMessage
		t.HTML(http.StatusBadGateway, dashboardTemplate)
		return
	}

	current, ok := dir.Current()
	if !ok {
		data["NotFound"] = patientNotFoundMessage
		t.HTML(http.StatusOK, dashboardTemplate)
		return
	}

	summary := patient.Summarize(current)

	chart, err := generateBloodPressureChart(summary.Chart)
	switch {
	case errors.Is(err, errEmptyChartWindow):
	case err != nil:
		logger.Error("failed to render blood pressure chart", "patient_id", current.ID, "error", err)
	default:
		data["ChartHTML"] = htmltemplate.HTML(chart)
	}

	if qr, err := contactQRCode(current.PhoneNumber); err == nil {
		data["ContactQR"] = qr
	} else if !errors.Is(err, errNoPhoneDigits) {
		logger.Warn("failed to render contact QR code", "patient_id", current.ID, "error", err)
	}

	data["Sidebar"] = sidebarItems(dir.Patients(), current.ID)
	data["Patient"] = current
	data["Summary"] = summary
	setPatientPageTitle(data, current.Name)

	t.HTML(http.StatusOK, dashboardTemplate)
}

// SelectPatient changes the selected patient. Unknown identifiers leave the
// selection untouched.
func SelectPatient(c flamego.Context, s session.Session, dir *patient.Directory) {
	id := c.Param("id")

	switch {
	case dir.SelectByID(id):
		metrics.RecordSelection(metrics.SelectionSelected)
	case dir.Status() == patient.StatusFailed:
		metrics.RecordSelection(metrics.SelectionNotFound)
		SetErrorFlash(s, loadFailedMessage)
	default:
		metrics.RecordSelection(metrics.SelectionNotFound)
		logger.Warn("ignoring selection of unknown patient", "patient_id", id)
		SetWarningFlash(s, unknownPatientMessage)
	}

	c.Redirect("/", http.StatusSeeOther)
}

func sidebarItems(patients []patient.Patient, selectedID string) []SidebarItem {
	items := make([]SidebarItem, 0, len(patients))
	for _, p := range patients {
		items = append(items, SidebarItem{
			ID:       p.ID,
			Name:     p.Name,
			Gender:   p.Gender,
			Age:      p.Age,
			Picture:  p.ProfilePicture,
			Selected: p.ID == selectedID,
		})
	}
	return items
}
