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
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

const (
	auditPrefix = "log:"

	// recentLimit bounds the query window. The dashboard only ever shows
	// the most recent slice of the trail; older records stay on disk.
	recentLimit = 100
)

// Audit is the append-only action trail. Records are never updated or
// deleted once written. Keys embed a zero-padded nanosecond timestamp so
// reverse iteration returns most-recent-first.
type Audit struct {
	db *badger.DB
}

// NewAudit returns an audit log on the given database handle.
func NewAudit(db *badger.DB) *Audit {
	return &Audit{db: db}
}

func auditKey(rec datatypes.AuditRecord) []byte {
	return []byte(fmt.Sprintf("%s%020d:%s", auditPrefix, rec.Timestamp.UnixNano(), rec.ID))
}

// Append writes one record. There is no update path; the record's
// identifier and timestamp must already be assigned.
func (a *Audit) Append(ctx context.Context, rec datatypes.AuditRecord) error {
	val, err := json.Marshal(rec)
	if err != nil {
		return datatypes.WrapStore("encode audit record", err)
	}
	err = a.db.Update(func(txn *badger.Txn) error {
		return txn.Set(auditKey(rec), val)
	})
	if err != nil {
		return datatypes.WrapStore("append audit record", err)
	}
	return nil
}

// Recent returns up to the 100 most recent records, newest first.
func (a *Audit) Recent(ctx context.Context) ([]datatypes.AuditRecord, error) {
	records := make([]datatypes.AuditRecord, 0, recentLimit)

	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(auditPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration starts just past the end of the prefix range.
		seek := append([]byte(auditPrefix), 0xff)
		for it.Seek(seek); it.Valid() && len(records) < recentLimit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec datatypes.AuditRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("decode audit record %s: %w", it.Item().Key(), err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, datatypes.WrapStore("list audit records", err)
	}
	return records, nil
}
