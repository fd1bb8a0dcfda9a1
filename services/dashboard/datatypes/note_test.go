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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateNoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateNoteRequest
		wantErr bool
	}{
		{"valid", CreateNoteRequest{Content: "check the intro pacing"}, false},
		{"valid with tags", CreateNoteRequest{Content: "new thumbnail", Tags: "ideas,art"}, false},
		{"empty content", CreateNoteRequest{Content: ""}, true},
		{"whitespace content", CreateNoteRequest{Content: "   \t\n"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateNoteRequest_Validate(t *testing.T) {
	content := "updated content"
	blank := "   "
	empty := ""
	tags := "newtag"

	assert.NoError(t, UpdateNoteRequest{}.Validate())
	assert.NoError(t, UpdateNoteRequest{Content: &content}.Validate())
	assert.NoError(t, UpdateNoteRequest{Tags: &tags}.Validate())
	assert.ErrorIs(t, UpdateNoteRequest{Content: &blank}.Validate(), ErrValidation)
	assert.ErrorIs(t, UpdateNoteRequest{Content: &empty}.Validate(), ErrValidation)
}
