// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/handlers"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/pipeline"
)

// SetupRoutes registers the dashboard surface. Every state-changing route
// goes through the pipeline; there is no side door to the gateways.
func SetupRoutes(router *gin.Engine, p *pipeline.Pipeline, registry *prometheus.Registry) {
	router.GET("/health", handlers.HealthCheck)
	if registry != nil {
		router.GET("/metrics", gin.WrapH(
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	router.GET("/video", handlers.GetVideo(p))
	router.PATCH("/video", handlers.UpdateVideo(p))

	router.GET("/comments", handlers.ListComments(p))
	router.POST("/comments", handlers.PostComment(p))
	router.DELETE("/comments/:id", handlers.DeleteComment(p))

	router.GET("/notes", handlers.SearchNotes(p))
	router.POST("/notes", handlers.CreateNote(p))
	router.PATCH("/notes/:id", handlers.UpdateNote(p))
	router.DELETE("/notes/:id", handlers.DeleteNote(p))

	router.POST("/ai/titles", handlers.GenerateTitles(p))

	router.GET("/logs", handlers.ListLogs(p))
	router.POST("/logs", handlers.AppendLog(p))
}
