// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers provides the gin handlers for the dashboard's HTTP
// surface. Handlers are thin: bind, dispatch to the pipeline, map the
// error taxonomy onto the wire contract.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

// failureStatus maps a pipeline error to the surface's status contract:
// 500 for nearly everything, 404 only where the route allows it (the
// video fetch path), 400 for rejected input. The error kind in the body
// is what actually distinguishes categories for the client.
func failureStatus(err error, allowNotFound bool) int {
	switch {
	case errors.Is(err, datatypes.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, datatypes.ErrNotFound) && allowNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError emits the uniform error body. The kind string survives even
// where status codes collapse to 500.
func writeError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"error": err.Error(),
		"kind":  datatypes.ErrorKind(err),
	})
}

// writeBindError reports a request body that failed binding. Binding
// failures never reach the pipeline, so they are classified here.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "invalid request body: " + err.Error(),
		"kind":  datatypes.ErrorKind(datatypes.ErrValidation),
	})
}
