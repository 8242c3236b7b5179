// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/flamego/flamego"

	"github.com/humaidq/vitalboard/patient"
)

func newContactTestApp(dir *patient.Directory) *flamego.Flame {
	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.Map(dir)
		c.Next()
	})
	f.Get("/patients/{id}/contact.vcf", ContactCard)

	return f
}

func TestContactCardUnknownPatient(t *testing.T) {
	t.Parallel()

	dir := patient.NewDirectory()
	dir.Load(twoPatients())

	req := httptest.NewRequest(http.MethodGet, "/patients/nope/contact.vcf", nil)
	rec := httptest.NewRecorder()
	newContactTestApp(dir).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestContactCardDownload(t *testing.T) {
	t.Parallel()

	dir := patient.NewDirectory()
	dir.Load(twoPatients())
	first := dir.Patients()[0]

	req := httptest.NewRequest(http.MethodGet, "/patients/"+first.ID+"/contact.vcf", nil)
	rec := httptest.NewRecorder()
	newContactTestApp(dir).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/vcard") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "emily-williams.vcf") {
		t.Fatalf("unexpected content disposition %q", cd)
	}

	card, err := vcard.NewDecoder(rec.Body).Decode()
	if err != nil {
		t.Fatalf("failed to decode vcard: %v", err)
	}
	if got := card.PreferredValue(vcard.FieldFormattedName); got != "Emily Williams" {
		t.Fatalf("unexpected FN %q", got)
	}
	if got := card.PreferredValue(vcard.FieldTelephone); got != "(711) 984-6696" {
		t.Fatalf("unexpected TEL %q", got)
	}
	if got := card.Value(vcard.FieldVersion); got != "4.0" {
		t.Fatalf("expected vCard 4.0, got %q", got)
	}
}

func TestBuildVCard(t *testing.T) {
	t.Parallel()

	p := patient.Patient{
		ID:               "2b0c7f4e-8d6a-5b1e-9c3f-0a1b2c3d4e5f",
		Name:             "Jessica Taylor",
		Gender:           "Female",
		DateOfBirth:      "1996-08-23",
		EmergencyContact: "(415) 555-5678",
		InsuranceType:    "Sunrise Health Assurance",
		ProfilePicture:   "javascript:alert(1)",
	}

	card := buildVCard(p)

	name := card.Name()
	if name == nil || name.GivenName != "Jessica" || name.FamilyName != "Taylor" {
		t.Fatalf("unexpected name: %#v", name)
	}
	if sex, _ := card.Gender(); sex != vcard.SexFemale {
		t.Fatalf("unexpected gender %q", sex)
	}
	if got := card.Value(vcard.FieldBirthday); got != "19960823" {
		t.Fatalf("unexpected birthday %q", got)
	}
	if got := card.Value(vcard.FieldUID); got != "urn:uuid:"+p.ID {
		t.Fatalf("unexpected UID %q", got)
	}
	if got := card.Value(vcard.FieldPhoto); got != "" {
		t.Fatalf("expected unsafe photo to be dropped, got %q", got)
	}

	note := card.Value(vcard.FieldNote)
	if !strings.Contains(note, "(415) 555-5678") || !strings.Contains(note, "Sunrise Health Assurance") {
		t.Fatalf("unexpected note %q", note)
	}
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in         string
		wantGiven  string
		wantFamily string
	}{
		{in: "", wantGiven: "", wantFamily: ""},
		{in: "Cher", wantGiven: "Cher", wantFamily: ""},
		{in: "Mary Ann Smith", wantGiven: "Mary Ann", wantFamily: "Smith"},
	}

	for _, tt := range tests {
		given, family := splitName(tt.in)
		if given != tt.wantGiven || family != tt.wantFamily {
			t.Fatalf("splitName(%q) = %q, %q", tt.in, given, family)
		}
	}
}

func TestVCardFileName(t *testing.T) {
	t.Parallel()

	if got := vcardFileName("Emily O'Brien"); got != "emily-obrien.vcf" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := vcardFileName("   "); got != "patient.vcf" {
		t.Fatalf("unexpected fallback file name %q", got)
	}
}

func TestContactQRCode(t *testing.T) {
	t.Parallel()

	qr, err := contactQRCode("(415) 555-1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(qr, "data:image/png;base64,") {
		t.Fatalf("expected png data URI, got %q", qr[:min(len(qr), 40)])
	}
	if safeImageURL(qr) == "" {
		t.Fatal("expected QR data URI to pass the image URL filter")
	}

	if _, err := contactQRCode("n/a"); !errors.Is(err, errNoPhoneDigits) {
		t.Fatalf("expected errNoPhoneDigits, got %v", err)
	}
}
