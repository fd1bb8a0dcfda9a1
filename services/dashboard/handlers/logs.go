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

// ListLogs returns the 100 most recent audit records, newest first.
func ListLogs(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		logs, err := p.RecentLogs(c.Request.Context())
		if err != nil {
			slog.Error("failed to list audit records", "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": logs})
	}
}

// AppendLog records a client-driven action, such as the operator
// selecting a suggestion in the UI. Unknown action kinds are accepted and
// kept as an opaque metadata bag.
func AppendLog(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.AppendLogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}
		rec, err := p.RecordAction(c.Request.Context(), req.Action, req.Metadata)
		if err != nil {
			slog.Error("failed to append audit record", "action", req.Action, "error", err)
			writeError(c, failureStatus(err, false), err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"log": rec})
	}
}
