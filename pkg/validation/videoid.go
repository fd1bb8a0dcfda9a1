// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for
// security-critical operations.
//
// This package contains validators for identifiers that end up in
// outbound provider queries. Using these validators keeps malformed or
// hostile configuration values out of request URLs.
package validation

import (
	"fmt"
	"regexp"
)

// videoIDPattern matches YouTube video identifiers plus the local
// placeholder ids used by development deployments. Real provider ids are
// 11 characters of URL-safe base64; placeholders are short lowercase
// words like "default".
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

// ValidateVideoID validates a configured video identifier before it is
// embedded in provider query parameters.
//
// Valid identifiers:
//   - 1-64 characters
//   - Letters A-Z a-z
//   - Digits 0-9
//   - Underscores and hyphens
//
// Returns an error if the identifier is invalid.
//
// Example:
//
//	if err := validation.ValidateVideoID(cfg.VideoID); err != nil {
//	    return nil, err
//	}
func ValidateVideoID(id string) error {
	if id == "" {
		return fmt.Errorf("video id must not be empty")
	}
	if !videoIDPattern.MatchString(id) {
		return fmt.Errorf("invalid video id %q: must be 1-64 characters of [A-Za-z0-9_-]", id)
	}
	return nil
}
