// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pipeline

import (
	"context"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

// VideoGateway is the pipeline's view of the video metadata and comment
// provider. A nil gateway means the provider credential is absent; the
// pipeline surfaces NotConfigured without touching the network.
type VideoGateway interface {
	FetchVideo(ctx context.Context) (datatypes.Video, error)
	UpdateVideo(ctx context.Context, title, description string) error
	ListComments(ctx context.Context) ([]datatypes.Comment, error)
	PostComment(ctx context.Context, text string) (string, error)
	DeleteComment(ctx context.Context, id string) error
}

// TitleSuggester is the pipeline's view of the text-generation provider.
// Nil means the credential is absent.
type TitleSuggester interface {
	GenerateTitles(ctx context.Context, title, description string) ([]string, error)
}

// NoteStore is the pipeline's view of the local note collection.
type NoteStore interface {
	Create(ctx context.Context, videoID, content, tags string) (datatypes.Note, error)
	Search(ctx context.Context, query string) ([]datatypes.Note, error)
	Update(ctx context.Context, id string, content, tags *string) (datatypes.Note, error)
	Delete(ctx context.Context, id string) error
}

// AuditSink receives one record per user intent, regardless of the
// intent's outcome.
//
// Sink errors must not block primary operations: the pipeline logs them
// and moves on. A test double should record whether an append was
// attempted, not just whether it succeeded.
type AuditSink interface {
	Append(ctx context.Context, rec datatypes.AuditRecord) error
	Recent(ctx context.Context) ([]datatypes.AuditRecord, error)
}
