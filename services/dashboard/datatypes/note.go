// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// noteValidate is the shared validator instance for note payloads.
// Initialized in init() with custom validators.
var noteValidate *validator.Validate

func init() {
	noteValidate = validator.New()
	_ = noteValidate.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings that are empty after trimming. The
// stock "required" rule accepts all-whitespace content, which would let an
// effectively empty note through.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Note is a freeform annotation owned exclusively by the local store.
// ID, VideoID, and CreatedAt are immutable once the note is persisted.
type Note struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoteRequest carries a new note. Tags are comma-delimited free
// text used only for search; they are not validated against a vocabulary.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"notblank"`
	Tags    string `json:"tags"`
}

// Validate returns ErrValidation when the content is empty after trimming.
func (r CreateNoteRequest) Validate() error {
	if err := noteValidate.Struct(r); err != nil {
		return fmt.Errorf("%w: note content must not be empty", ErrValidation)
	}
	return nil
}

// UpdateNoteRequest is a partial update. Nil fields are left unchanged.
type UpdateNoteRequest struct {
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
}

// Validate rejects an update that would blank out the content. Omitting
// the field entirely is the way to leave content untouched.
func (r UpdateNoteRequest) Validate() error {
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return fmt.Errorf("%w: note content must not be empty", ErrValidation)
	}
	return nil
}
