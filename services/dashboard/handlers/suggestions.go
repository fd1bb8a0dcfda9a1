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

// GenerateTitles returns up to three alternative titles for the video.
// Entries are opaque text; the model may still prepend punctuation.
func GenerateTitles(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.SuggestTitlesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		suggestions, err := p.GenerateTitles(c.Request.Context(), req.Title, req.Description)
		if err != nil {
			slog.Error("failed to generate title suggestions", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}
