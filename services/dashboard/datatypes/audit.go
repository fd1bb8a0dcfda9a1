// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// This file contains the audit record model. Records are append-only:
// once written they are never updated or deleted, and the log is the
// system of record for "what happened" independent of whether the
// triggering action succeeded against an external provider.
package datatypes

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// Action Kinds
// =============================================================================

// Action identifies the user intent an audit record describes. The set is
// closed but extensible; unknown kinds arriving over the wire decode into
// the catch-all GenericMeta.
type Action string

const (
	ActionVideoUpdated         Action = "video_updated"
	ActionCommentAdded         Action = "comment_added"
	ActionCommentDeleted       Action = "comment_deleted"
	ActionNoteCreated          Action = "note_created"
	ActionNoteUpdated          Action = "note_updated"
	ActionNoteDeleted          Action = "note_deleted"
	ActionSuggestionsGenerated Action = "ai_suggestions_generated"
	ActionSuggestionSelected   Action = "ai_suggestion_selected"
)

// Status classifies the outcome of the intent an audit record describes.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// =============================================================================
// Metadata (tagged union keyed by action kind)
// =============================================================================

// Metadata is the intent-specific context attached to an audit record.
// Each variant carries its own strongly-typed payload; GenericMeta is the
// forward-compatibility catch-all for kinds this build does not know.
type Metadata interface {
	Kind() Action
}

// VideoUpdatedMeta records a metadata overwrite at the provider. OldTitle
// is best-effort: the pipeline issues exactly one provider call per
// intent, so the previous title is only present when the caller knew it.
type VideoUpdatedMeta struct {
	OldTitle string `json:"oldTitle,omitempty"`
	NewTitle string `json:"newTitle"`
}

func (VideoUpdatedMeta) Kind() Action { return ActionVideoUpdated }

type CommentAddedMeta struct {
	Text string `json:"text"`
}

func (CommentAddedMeta) Kind() Action { return ActionCommentAdded }

type CommentDeletedMeta struct {
	CommentID string `json:"commentId"`
}

func (CommentDeletedMeta) Kind() Action { return ActionCommentDeleted }

type NoteCreatedMeta struct {
	Tags string `json:"tags"`
}

func (NoteCreatedMeta) Kind() Action { return ActionNoteCreated }

type NoteUpdatedMeta struct {
	NoteID string `json:"noteId"`
}

func (NoteUpdatedMeta) Kind() Action { return ActionNoteUpdated }

type NoteDeletedMeta struct {
	NoteID string `json:"noteId"`
}

func (NoteDeletedMeta) Kind() Action { return ActionNoteDeleted }

type SuggestionsGeneratedMeta struct {
	Count int `json:"count"`
}

func (SuggestionsGeneratedMeta) Kind() Action { return ActionSuggestionsGenerated }

type SuggestionSelectedMeta struct {
	Suggestion string `json:"suggestion"`
}

func (SuggestionSelectedMeta) Kind() Action { return ActionSuggestionSelected }

// GenericMeta carries an arbitrary key/value bag for action kinds without
// a dedicated variant, including client-supplied kinds on the append
// endpoint.
type GenericMeta struct {
	Action Action
	Fields map[string]any
}

func (g GenericMeta) Kind() Action { return g.Action }

// MarshalJSON emits only the bag; the action kind lives on the record.
func (g GenericMeta) MarshalJSON() ([]byte, error) {
	if g.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(g.Fields)
}

// DecodeMetadata turns a raw metadata payload back into its typed variant.
// Unknown action kinds fall through to GenericMeta.
func DecodeMetadata(action Action, raw json.RawMessage) (Metadata, error) {
	var meta Metadata
	switch action {
	case ActionVideoUpdated:
		meta = &VideoUpdatedMeta{}
	case ActionCommentAdded:
		meta = &CommentAddedMeta{}
	case ActionCommentDeleted:
		meta = &CommentDeletedMeta{}
	case ActionNoteCreated:
		meta = &NoteCreatedMeta{}
	case ActionNoteUpdated:
		meta = &NoteUpdatedMeta{}
	case ActionNoteDeleted:
		meta = &NoteDeletedMeta{}
	case ActionSuggestionsGenerated:
		meta = &SuggestionsGeneratedMeta{}
	case ActionSuggestionSelected:
		meta = &SuggestionSelectedMeta{}
	default:
		g := GenericMeta{Action: action, Fields: map[string]any{}}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &g.Fields); err != nil {
				return nil, fmt.Errorf("decode %q metadata: %w", action, err)
			}
		}
		return g, nil
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, meta); err != nil {
			return nil, fmt.Errorf("decode %q metadata: %w", action, err)
		}
	}
	return meta, nil
}

// =============================================================================
// Records
// =============================================================================

// AuditRecord is one immutable log entry. Metadata is kept as raw JSON so
// records with unknown kinds survive a round trip unmodified.
type AuditRecord struct {
	ID        string          `json:"id"`
	Action    Action          `json:"action"`
	Metadata  json.RawMessage `json:"metadata"`
	Status    Status          `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewAuditRecord builds a record from a typed metadata variant. The
// identifier and timestamp are assigned by the caller at persistence time.
func NewAuditRecord(id string, meta Metadata, status Status, ts time.Time) (AuditRecord, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return AuditRecord{}, fmt.Errorf("encode %q metadata: %w", meta.Kind(), err)
	}
	return AuditRecord{
		ID:        id,
		Action:    meta.Kind(),
		Metadata:  raw,
		Status:    status,
		Timestamp: ts,
	}, nil
}

// AppendLogRequest is the client-driven append payload. The UI uses this
// path for intents it completes locally, such as selecting a suggestion.
type AppendLogRequest struct {
	Action   string         `json:"action" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}
