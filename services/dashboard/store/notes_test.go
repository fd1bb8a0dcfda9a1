// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

func newTestNotes(t *testing.T) *Notes {
	t.Helper()
	db, err := Open(InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNotes(db)
}

func TestNotesCreate(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, "vid-1", "tighten the intro", "editing")
	require.NoError(t, err)

	assert.NotEmpty(t, note.ID)
	assert.Equal(t, "vid-1", note.VideoID)
	assert.Equal(t, "tighten the intro", note.Content)
	assert.Equal(t, "editing", note.Tags)
	assert.False(t, note.CreatedAt.IsZero())
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestNotesCreate_EmptyContentRejected(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := notes.Create(ctx, "vid-1", content, "tag")
		assert.ErrorIs(t, err, datatypes.ErrValidation)
	}

	// Nothing may have been persisted by the rejected creates.
	all, err := notes.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNotesSearch_CaseInsensitiveSubstring(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	byContent, err := notes.Create(ctx, "vid-1", "xABCy", "")
	require.NoError(t, err)
	byTags, err := notes.Create(ctx, "vid-1", "unrelated", "aAbBcC")
	require.NoError(t, err)
	_, err = notes.Create(ctx, "vid-1", "xyz", "qrs")
	require.NoError(t, err)

	matches, err := notes.Search(ctx, "abc")
	require.NoError(t, err)

	ids := make([]string, 0, len(matches))
	for _, n := range matches {
		ids = append(ids, n.ID)
	}
	assert.ElementsMatch(t, []string{byContent.ID, byTags.ID}, ids)
}

func TestNotesSearch_EmptyQueryReturnsAllNewestFirst(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	var created []datatypes.Note
	for _, content := range []string{"first", "second", "third"} {
		note, err := notes.Create(ctx, "vid-1", content, "")
		require.NoError(t, err)
		created = append(created, note)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := notes.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, created[2].ID, all[0].ID)
	assert.Equal(t, created[1].ID, all[1].ID)
	assert.Equal(t, created[0].ID, all[2].ID)
}

func TestNotesSearch_NoMatches(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	_, err := notes.Create(ctx, "vid-1", "some content", "some tags")
	require.NoError(t, err)

	matches, err := notes.Search(ctx, "nomatch")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestNotesUpdate_PartialFields(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, "vid-1", "original content", "original tags")
	require.NoError(t, err)

	newContent := "revised content"
	updated, err := notes.Update(ctx, note.ID, &newContent, nil)
	require.NoError(t, err)
	assert.Equal(t, "revised content", updated.Content)
	assert.Equal(t, "original tags", updated.Tags)
	assert.Equal(t, note.ID, updated.ID)
	assert.Equal(t, note.VideoID, updated.VideoID)
	assert.True(t, updated.CreatedAt.Equal(note.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(note.UpdatedAt))

	newTags := "revised tags"
	updated, err = notes.Update(ctx, note.ID, nil, &newTags)
	require.NoError(t, err)
	assert.Equal(t, "revised content", updated.Content)
	assert.Equal(t, "revised tags", updated.Tags)
}

func TestNotesUpdate_NoopWithNilFields(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, "vid-1", "content", "tags")
	require.NoError(t, err)

	updated, err := notes.Update(ctx, note.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, note.Content, updated.Content)
	assert.Equal(t, note.Tags, updated.Tags)
}

func TestNotesUpdate_UnknownID(t *testing.T) {
	notes := newTestNotes(t)
	content := "anything"

	_, err := notes.Update(context.Background(), "no-such-id", &content, nil)
	assert.ErrorIs(t, err, datatypes.ErrNotFound)
}

func TestNotesUpdate_BlankContentRejected(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, "vid-1", "keep me", "")
	require.NoError(t, err)

	blank := "  "
	_, err = notes.Update(ctx, note.ID, &blank, nil)
	assert.ErrorIs(t, err, datatypes.ErrValidation)

	// Stored note must be untouched.
	all, err := notes.Search(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep me", all[0].Content)
}

func TestNotesDelete_Idempotent(t *testing.T) {
	notes := newTestNotes(t)
	ctx := context.Background()

	note, err := notes.Create(ctx, "vid-1", "delete me", "")
	require.NoError(t, err)

	require.NoError(t, notes.Delete(ctx, note.ID))
	require.NoError(t, notes.Delete(ctx, note.ID))
	require.NoError(t, notes.Delete(ctx, "never-existed"))

	all, err := notes.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)
}
