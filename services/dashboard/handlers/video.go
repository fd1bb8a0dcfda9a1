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

// GetVideo returns the target video's current metadata and statistics.
// The one 404 on the surface lives here: a configured but missing video.
func GetVideo(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		video, err := p.FetchVideo(c.Request.Context())
		if err != nil {
			slog.Error("failed to fetch video", "error", err)
			writeError(c, failureStatus(err, true), err)
			return
		}
		c.JSON(http.StatusOK, video)
	}
}

// UpdateVideo overwrites the video's title and description.
func UpdateVideo(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.UpdateVideoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		if err := p.UpdateVideo(c.Request.Context(), req.Title, req.Description); err != nil {
			slog.Error("failed to update video", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
