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

// ListComments returns the current first page of top-level comments.
// Each fetch is authoritative; nothing is cached across requests.
func ListComments(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		comments, err := p.ListComments(c.Request.Context())
		if err != nil {
			slog.Error("failed to list comments", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"comments": comments})
	}
}

// PostComment creates a new top-level comment on the target video.
func PostComment(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.PostCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		id, err := p.PostComment(c.Request.Context(), req.Text)
		if err != nil {
			slog.Error("failed to post comment", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "commentId": id})
	}
}

// DeleteComment deletes a comment by provider identifier. An unknown
// identifier is a provider error and comes back as one.
func DeleteComment(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := p.DeleteComment(c.Request.Context(), id); err != nil {
			slog.Error("failed to delete comment", "comment_id", id, "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
