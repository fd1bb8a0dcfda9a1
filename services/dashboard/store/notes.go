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
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

const notePrefix = "note:"

// Notes is the mutable collection of freeform annotations. All documents
// live under the note: prefix as JSON.
type Notes struct {
	db *badger.DB
}

// NewNotes returns a note store on the given database handle.
func NewNotes(db *badger.DB) *Notes {
	return &Notes{db: db}
}

func noteKey(id string) []byte {
	return []byte(notePrefix + id)
}

// Create persists a new note. The identifier and creation timestamp are
// assigned here and are immutable afterwards. Content that is empty after
// trimming is rejected before anything touches the database.
func (n *Notes) Create(ctx context.Context, videoID, content, tags string) (datatypes.Note, error) {
	if strings.TrimSpace(content) == "" {
		return datatypes.Note{}, fmt.Errorf("%w: note content must not be empty", datatypes.ErrValidation)
	}

	now := time.Now().UTC()
	note := datatypes.Note{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.put(note); err != nil {
		return datatypes.Note{}, datatypes.WrapStore("create note", err)
	}
	return note, nil
}

// Search returns notes matching the query, most recently created first.
// An empty query matches everything. A non-empty query is a
// case-insensitive substring match against content OR tags; a note
// matches if either field matches.
func (n *Notes) Search(ctx context.Context, query string) ([]datatypes.Note, error) {
	needle := strings.ToLower(query)
	notes := make([]datatypes.Note, 0)

	err := n.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(notePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var note datatypes.Note
				if err := json.Unmarshal(val, &note); err != nil {
					return fmt.Errorf("decode note %s: %w", it.Item().Key(), err)
				}
				if needle == "" ||
					strings.Contains(strings.ToLower(note.Content), needle) ||
					strings.Contains(strings.ToLower(note.Tags), needle) {
					notes = append(notes, note)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, datatypes.WrapStore("search notes", err)
	}

	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.After(notes[j].CreatedAt)
		}
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

// Update applies a partial update. Nil content or tags leave the stored
// field unchanged; identifier, owning video, and creation timestamp are
// immutable. Returns ErrNotFound when the id does not resolve.
func (n *Notes) Update(ctx context.Context, id string, content, tags *string) (datatypes.Note, error) {
	if content != nil && strings.TrimSpace(*content) == "" {
		return datatypes.Note{}, fmt.Errorf("%w: note content must not be empty", datatypes.ErrValidation)
	}

	var note datatypes.Note
	err := n.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(noteKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: note %s", datatypes.ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &note)
		}); err != nil {
			return err
		}

		if content != nil {
			note.Content = *content
		}
		if tags != nil {
			note.Tags = *tags
		}
		note.UpdatedAt = time.Now().UTC()

		val, err := json.Marshal(note)
		if err != nil {
			return err
		}
		return txn.Set(noteKey(note.ID), val)
	})
	if err != nil {
		if errors.Is(err, datatypes.ErrNotFound) {
			return datatypes.Note{}, err
		}
		return datatypes.Note{}, datatypes.WrapStore("update note", err)
	}
	return note, nil
}

// Delete removes a note by identifier. Deleting a nonexistent id is not
// an error; the operation is idempotent from the caller's perspective.
func (n *Notes) Delete(ctx context.Context, id string) error {
	err := n.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(noteKey(id))
	})
	if err != nil {
		return datatypes.WrapStore("delete note", err)
	}
	return nil
}

func (n *Notes) put(note datatypes.Note) error {
	val, err := json.Marshal(note)
	if err != nil {
		return err
	}
	return n.db.Update(func(txn *badger.Txn) error {
		return txn.Set(noteKey(note.ID), val)
	})
}
