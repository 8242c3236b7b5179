// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/humaidq/vitalboard/patient"
)

const twoPatientsJSON = `[
	{
		"name": "Emily Williams",
		"gender": "Female",
		"age": 18,
		"date_of_birth": "2006-08-19",
		"diagnosis_history": [
			{"month": "March", "year": 2024, "blood_pressure": {"systolic": {"value": 120, "levels": "Normal"}, "diastolic": {"value": 80, "levels": "Normal"}}}
		],
		"lab_results": ["Blood Tests"]
	},
	{
		"name": "Ryan Johnson",
		"gender": "Male",
		"age": 45,
		"date_of_birth": "1979-06-22",
		"diagnosis_history": [
			{"month": "March", "year": 2024, "blood_pressure": {"systolic": {"value": 165, "levels": "Higher than Average"}, "diastolic": {"value": 95, "levels": "Higher than Average"}}}
		]
	}
]`

var errTestFetcher = errors.New("fetcher failed")

func newUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func TestFetchPatientsSendsBasicAuth(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(twoPatientsJSON))
	})

	client := NewClient(Config{URL: srv.URL, Username: "coalition", Password: "skills-test"})

	patients, err := client.FetchPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("coalition:skills-test"))
	if gotAuth != want {
		t.Fatalf("expected Authorization %q, got %q", want, gotAuth)
	}

	if len(patients) != 2 || patients[1].Name != "Ryan Johnson" {
		t.Fatalf("unexpected patients: %+v", patients)
	}
	if got := patients[1].DiagnosisHistory[0].Systolic(); got == nil || got.Value != 165 {
		t.Fatalf("unexpected systolic reading: %+v", got)
	}
}

func TestFetchPatientsNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := NewClient(Config{URL: srv.URL}).FetchPatients(context.Background())
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status error with 401, got %v", err)
	}
}

func TestFetchPatientsMalformedBody(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	})

	_, err := NewClient(Config{URL: srv.URL}).FetchPatients(context.Background())
	if !errors.Is(err, ErrDecodeResponse) {
		t.Fatalf("expected ErrDecodeResponse, got %v", err)
	}
}

func TestFetchPatientsMissingURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(Config{}).FetchPatients(context.Background()); err == nil {
		t.Fatal("expected error for missing URL")
	}
}

func TestFetchPatientsMissingNestedFields(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name": "Partial", "diagnosis_history": [{"month": "May", "year": 2024}]}]`))
	})

	patients, err := NewClient(Config{URL: srv.URL}).FetchPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := patients[0].DiagnosisHistory[0]
	if entry.Systolic() != nil || entry.HeartRate != nil {
		t.Fatalf("expected missing readings to decode as absent, got %+v", entry)
	}
}

type stubFetcher struct {
	patients []patient.Patient
	err      error
}

func (s stubFetcher) FetchPatients(context.Context) ([]patient.Patient, error) {
	return s.patients, s.err
}

func TestLoadDirectorySuccess(t *testing.T) {
	t.Parallel()

	dir := patient.NewDirectory()
	err := LoadDirectory(context.Background(), stubFetcher{patients: []patient.Patient{{Name: "A"}, {Name: "B"}}}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	current, ok := dir.Current()
	if !ok || current.Name != "A" {
		t.Fatalf("expected first patient selected, got %+v", current)
	}
}

func TestLoadDirectoryEmpty(t *testing.T) {
	t.Parallel()

	dir := patient.NewDirectory()
	if err := LoadDirectory(context.Background(), stubFetcher{}, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dir.Status() != patient.StatusEmpty {
		t.Fatalf("expected empty status, got %s", dir.Status())
	}
}

func TestLoadDirectoryFailure(t *testing.T) {
	t.Parallel()

	dir := patient.NewDirectory()
	err := LoadDirectory(context.Background(), stubFetcher{err: errTestFetcher}, dir)
	if !errors.Is(err, errTestFetcher) {
		t.Fatalf("expected fetcher error, got %v", err)
	}

	if dir.Status() != patient.StatusFailed {
		t.Fatalf("expected failed status, got %s", dir.Status())
	}
	if _, ok := dir.Current(); ok {
		t.Fatal("expected no selection after failure")
	}
}

func TestLoadDirectoryUnauthorizedUpstream(t *testing.T) {
	t.Parallel()

	srv := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	dir := patient.NewDirectory()
	err := LoadDirectory(context.Background(), NewClient(Config{URL: srv.URL, Username: "u", Password: "wrong"}), dir)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected status error, got %v", err)
	}
	if dir.Status() != patient.StatusFailed {
		t.Fatalf("expected failed status, got %s", dir.Status())
	}
}
