// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "/"},
		{path: "/metrics", want: "/metrics"},
		{path: "/patients/6ba7b811-9dad-11d1-80b4-00c04fd430c8/select", want: "/patients/:id/select"},
		{path: "/patients/not-a-uuid/select", want: "/patients/not-a-uuid/select"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Fatalf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMiddlewareCapturesStatus(t *testing.T) {
	t.Parallel()

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/brew", "418"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/brew", "418"))
	if after != before+1 {
		t.Fatalf("expected request counter to increase by one, got %v -> %v", before, after)
	}
}

func TestRecordHelpers(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(patientSelections.WithLabelValues(SelectionNotFound))
	RecordSelection(SelectionNotFound)
	if got := testutil.ToFloat64(patientSelections.WithLabelValues(SelectionNotFound)); got != before+1 {
		t.Fatalf("expected selection counter to increase, got %v -> %v", before, got)
	}

	fetchBefore := testutil.ToFloat64(upstreamFetchTotal.WithLabelValues(FetchHTTPError))
	RecordUpstreamFetch(FetchHTTPError, 10*time.Millisecond)
	if got := testutil.ToFloat64(upstreamFetchTotal.WithLabelValues(FetchHTTPError)); got != fetchBefore+1 {
		t.Fatalf("expected fetch counter to increase, got %v -> %v", fetchBefore, got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	t.Parallel()

	SetPatientsLoaded(3)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "vitalboard_patients_loaded") {
		t.Fatalf("expected patients gauge in exposition, got %q", string(body))
	}
}
