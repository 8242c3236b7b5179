/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnexpectedStatus is returned when the upstream responds with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	// ErrDecodeResponse is returned when the upstream body is not a patient array.
	ErrDecodeResponse = errors.New("failed to decode patient list")
)

// StatusError carries the HTTP status of a failed upstream request.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d %s", e.Code, http.StatusText(e.Code))
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
