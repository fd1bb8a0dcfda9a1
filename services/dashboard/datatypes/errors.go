// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides domain types, request/response types, and the
// error taxonomy for the dashboard service.
package datatypes

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Taxonomy
// =============================================================================

// The dashboard collapses most failures to a single HTTP status, so the
// error kind carried in the response body is the only signal a client can
// use to distinguish failure categories. Every error that crosses a
// handler boundary must wrap exactly one of these sentinels.
var (
	// ErrNotConfigured indicates a missing provider credential. Distinct
	// from a transient upstream failure: the operation can never succeed
	// until the deployment is reconfigured.
	ErrNotConfigured = errors.New("provider credential not configured")

	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound indicates the target entity is absent, locally or at
	// the provider.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates the remote provider returned a non-success
	// response or was unreachable.
	ErrUpstream = errors.New("upstream provider failure")

	// ErrStore indicates a local persistence failure.
	ErrStore = errors.New("local store failure")
)

// ErrorKind maps an error to the machine-readable kind string carried in
// error response bodies. Unrecognized errors are reported as "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	case errors.Is(err, ErrStore):
		return "store_error"
	default:
		return "internal"
	}
}

// WrapUpstream attaches the upstream sentinel to a provider error while
// preserving the original chain for logging.
func WrapUpstream(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrUpstream, err))
}

// WrapStore attaches the store sentinel to a persistence error while
// preserving the original chain for logging.
func WrapStore(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStore, err))
}
