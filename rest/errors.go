// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a structured error response from the service. Callers use
// errors.As to extract it:
//
//	var apiErr *APIError
//	if errors.As(err, &apiErr) && apiErr.Code == ErrCodeUnknownMember { ... }
type APIError struct {
	// Code is the service's numeric error code (e.g., 10007).
	Code int `json:"code"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Errors holds per-field details for form validation failures.
	Errors json.RawMessage `json:"errors,omitempty"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rest: %d (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Service error codes switchboard reacts to.
const (
	ErrCodeGeneral            = 0
	ErrCodeUnknownApplication = 10002
	ErrCodeUnknownChannel     = 10003
	ErrCodeUnknownGuild       = 10004
	ErrCodeUnknownMember      = 10007
	ErrCodeUnknownRole        = 10011
	ErrCodeUnknownCommand     = 10063
	ErrCodeUnauthorized       = 40001
	ErrCodeMissingAccess      = 50001
	ErrCodeMissingPermissions = 50013
	ErrCodeInvalidFormBody    = 50035
)

// IsAPIError reports whether err is or wraps an *APIError with the given
// code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
