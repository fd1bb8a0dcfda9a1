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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditRecord(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec, err := NewAuditRecord("rec-1", VideoUpdatedMeta{NewTitle: "Better Title"}, StatusSuccess, ts)
	require.NoError(t, err)

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, ActionVideoUpdated, rec.Action)
	assert.Equal(t, StatusSuccess, rec.Status)
	assert.Equal(t, ts, rec.Timestamp)
	assert.JSONEq(t, `{"newTitle":"Better Title"}`, string(rec.Metadata))
}

func TestVideoUpdatedMeta_OldTitleOmittedWhenEmpty(t *testing.T) {
	raw, err := json.Marshal(VideoUpdatedMeta{NewTitle: "New"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "oldTitle")

	raw, err = json.Marshal(VideoUpdatedMeta{OldTitle: "Old", NewTitle: "New"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"oldTitle":"Old","newTitle":"New"}`, string(raw))
}

func TestDecodeMetadata_KnownKinds(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		raw    string
		want   Metadata
	}{
		{
			name:   "video updated",
			action: ActionVideoUpdated,
			raw:    `{"oldTitle":"Old","newTitle":"New"}`,
			want:   &VideoUpdatedMeta{OldTitle: "Old", NewTitle: "New"},
		},
		{
			name:   "comment added",
			action: ActionCommentAdded,
			raw:    `{"text":"great video"}`,
			want:   &CommentAddedMeta{Text: "great video"},
		},
		{
			name:   "comment deleted",
			action: ActionCommentDeleted,
			raw:    `{"commentId":"c-9"}`,
			want:   &CommentDeletedMeta{CommentID: "c-9"},
		},
		{
			name:   "note created",
			action: ActionNoteCreated,
			raw:    `{"tags":"ideas,thumbnail"}`,
			want:   &NoteCreatedMeta{Tags: "ideas,thumbnail"},
		},
		{
			name:   "note deleted",
			action: ActionNoteDeleted,
			raw:    `{"noteId":"n-3"}`,
			want:   &NoteDeletedMeta{NoteID: "n-3"},
		},
		{
			name:   "suggestions generated",
			action: ActionSuggestionsGenerated,
			raw:    `{"count":3}`,
			want:   &SuggestionsGeneratedMeta{Count: 3},
		},
		{
			name:   "suggestion selected",
			action: ActionSuggestionSelected,
			raw:    `{"suggestion":"Catchy Title"}`,
			want:   &SuggestionSelectedMeta{Suggestion: "Catchy Title"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := DecodeMetadata(tt.action, json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, meta)
			assert.Equal(t, tt.action, meta.Kind())
		})
	}
}

func TestDecodeMetadata_UnknownKindFallsThrough(t *testing.T) {
	meta, err := DecodeMetadata("playlist_reordered", json.RawMessage(`{"from":2,"to":0}`))
	require.NoError(t, err)

	generic, ok := meta.(GenericMeta)
	require.True(t, ok)
	assert.Equal(t, Action("playlist_reordered"), generic.Kind())
	assert.Equal(t, float64(2), generic.Fields["from"])
	assert.Equal(t, float64(0), generic.Fields["to"])
}

func TestDecodeMetadata_EmptyPayload(t *testing.T) {
	meta, err := DecodeMetadata(ActionNoteCreated, nil)
	require.NoError(t, err)
	assert.Equal(t, &NoteCreatedMeta{}, meta)

	meta, err = DecodeMetadata("custom_action", nil)
	require.NoError(t, err)
	assert.Equal(t, Action("custom_action"), meta.Kind())
}

func TestDecodeMetadata_MalformedPayload(t *testing.T) {
	_, err := DecodeMetadata(ActionCommentAdded, json.RawMessage(`{broken`))
	assert.Error(t, err)

	_, err = DecodeMetadata("custom_action", json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestGenericMeta_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(GenericMeta{Action: "custom", Fields: map[string]any{"key": "value"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, string(raw))

	raw, err = json.Marshal(GenericMeta{Action: "custom"})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestAuditRecord_RoundTripUnknownKind(t *testing.T) {
	original := AuditRecord{
		ID:        "rec-7",
		Action:    "future_action",
		Metadata:  json.RawMessage(`{"anything":"goes"}`),
		Status:    StatusSuccess,
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded AuditRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, original.Action, decoded.Action)
	assert.JSONEq(t, string(original.Metadata), string(decoded.Metadata))
}
