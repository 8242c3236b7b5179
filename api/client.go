/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/humaidq/vitalboard/logging"
	"github.com/humaidq/vitalboard/metrics"
	"github.com/humaidq/vitalboard/patient"
)

var logger = logging.Logger(logging.SourceAPI)

// Config holds the upstream patient API settings. It is built once at
// startup and not changed afterwards.
type Config struct {
	URL      string
	Username string
	Password string

	// Timeout bounds a single fetch; zero means no timeout.
	Timeout time.Duration
}

// Fetcher retrieves the full patient collection.
type Fetcher interface {
	FetchPatients(ctx context.Context) ([]patient.Patient, error)
}

// Client fetches patients from the upstream API using HTTP Basic auth.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchPatients performs the single GET against the configured endpoint.
func (c *Client) FetchPatients(ctx context.Context) ([]patient.Patient, error) {
	start := time.Now()

	patients, outcome, err := c.fetch(ctx)
	metrics.RecordUpstreamFetch(outcome, time.Since(start))

	return patients, err
}

func (c *Client) fetch(ctx context.Context) ([]patient.Patient, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.URL, nil)
	if err != nil {
		return nil, metrics.FetchTransportError, fmt.Errorf("failed to build patient request: %w", err)
	}

	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, metrics.FetchTransportError, fmt.Errorf("failed to fetch patients: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, metrics.FetchHTTPError, &StatusError{Code: resp.StatusCode}
	}

	var patients []patient.Patient
	if err := json.NewDecoder(resp.Body).Decode(&patients); err != nil {
		return nil, metrics.FetchDecodeError, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return patients, metrics.FetchSuccess, nil
}

// LoadDirectory performs the startup fetch and hands the result to dir.
// Failures are logged and recorded on the directory; nothing is retried.
func LoadDirectory(ctx context.Context, f Fetcher, dir *patient.Directory) error {
	patients, err := f.FetchPatients(ctx)
	if err != nil {
		fields := []interface{}{"event", "fetch_failed", "error", err}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			fields = append(fields, "status", statusErr.Code)
		}

		logger.Error("Error fetching patient data", fields...)
		dir.Fail(err)
		metrics.SetPatientsLoaded(0)

		return err
	}

	if len(patients) == 0 {
		logger.Warn("Patient not found in list", "event", "fetch_empty")
	} else {
		logger.Info("Loaded patient data", "event", "fetch_succeeded", "count", len(patients))
	}

	dir.Load(patients)
	metrics.SetPatientsLoaded(len(patients))

	return nil
}
