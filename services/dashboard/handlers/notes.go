// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/pipeline"
)

// SearchNotes returns notes matching ?q= as a case-insensitive substring
// over content or tags, newest first. An empty query returns everything.
func SearchNotes(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		notes, err := p.SearchNotes(c.Request.Context(), c.Query("q"))
		if err != nil {
			slog.Error("failed to search notes", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notes": notes})
	}
}

// CreateNote persists a new note against the configured video.
func CreateNote(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(c, failureStatus(err, false), err)
			return
		}
		note, err := p.CreateNote(c.Request.Context(), req.Content, req.Tags)
		if err != nil {
			slog.Error("failed to create note", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"note": note})
	}
}

// UpdateNote applies a partial update: omitted fields stay unchanged.
func UpdateNote(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req datatypes.UpdateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		if err := req.Validate(); err != nil {
			writeError(c, failureStatus(err, false), err)
			return
		}
		note, err := p.UpdateNote(c.Request.Context(), id, req.Content, req.Tags)
		if err != nil {
			slog.Error("failed to update note", "note_id", id, "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"note": note})
	}
}

// DeleteNote removes a note. Deleting an unknown id reports success; the
// local contract is idempotent delete.
func DeleteNote(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := p.DeleteNote(c.Request.Context(), id); err != nil {
			slog.Error("failed to delete note", "note_id", id, "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
