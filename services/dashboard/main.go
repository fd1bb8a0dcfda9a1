// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/CreatorDeck/pkg/logging"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/observability"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/pipeline"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/routes"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/store"
	"github.com/AleutianAI/CreatorDeck/services/suggest"
	"github.com/AleutianAI/CreatorDeck/services/youtube"
)

// initTracer wires the OTLP exporter. Only called when the collector
// endpoint is configured; the dashboard runs fine without one.
func initTracer(endpoint string) (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("dashboard-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	port := os.Getenv("DASHBOARD_PORT")
	if port == "" {
		port = "12300"
	}

	logger, err := logging.New(logging.Config{
		Level:   logging.ParseLevel(os.Getenv("DASHBOARD_LOG_LEVEL")),
		LogDir:  os.Getenv("DASHBOARD_LOG_DIR"),
		Service: "dashboard",
		JSON:    true,
	})
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer logger.Close()
	slog.SetDefault(logger.Slog())

	// --- Init the tracer (optional) ---
	if otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); otelEndpoint != "" {
		cleanup, err := initTracer(otelEndpoint)
		if err != nil {
			log.Fatalf("failed to setup the OTLP tracer: %v", err)
		}
		defer cleanup(context.Background())
	} else {
		slog.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing disabled")
	}

	// --- Local store (notes + audit log) ---
	dataDir := os.Getenv("DASHBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data/dashboard"
	}
	db, err := store.Open(store.DefaultConfig(dataDir))
	if err != nil {
		log.Fatalf("failed to open store at %s: %v", dataDir, err)
	}
	defer db.Close()

	// --- YouTube gateway ---
	// Missing credentials put the service in lightweight mode: note and
	// audit routes keep working, video routes report not_configured.
	videoID := os.Getenv("YOUTUBE_VIDEO_ID")
	if videoID == "" {
		videoID = "default"
	}
	var videoGateway pipeline.VideoGateway
	yt, err := youtube.New(context.Background(), youtube.Config{
		APIKey:  os.Getenv("YOUTUBE_API_KEY"),
		VideoID: videoID,
	})
	switch {
	case err == nil:
		videoGateway = yt
	case errors.Is(err, datatypes.ErrNotConfigured):
		slog.Warn("YOUTUBE_API_KEY not set. Running in lightweight mode.")
	default:
		log.Fatalf("failed to setup the YouTube gateway: %v", err)
	}

	// --- Title suggestion gateway ---
	var suggester pipeline.TitleSuggester
	ai, err := suggest.NewOpenAIClient(suggest.Config{
		APIKey: os.Getenv("OPENAI_API_KEY"),
		Model:  os.Getenv("OPENAI_MODEL"),
	})
	switch {
	case err == nil:
		suggester = ai
	case errors.Is(err, datatypes.ErrNotConfigured):
		slog.Warn("OPENAI_API_KEY not set. Title suggestions disabled.")
	default:
		log.Fatalf("failed to setup the suggestion gateway: %v", err)
	}

	registry := prometheus.NewRegistry()
	p := pipeline.New(pipeline.Config{
		Video:     videoGateway,
		Suggester: suggester,
		Notes:     store.NewNotes(db),
		Audit:     store.NewAudit(db),
		VideoID:   videoID,
		Metrics:   observability.NewMetrics(registry),
		Logger:    slog.Default(),
	})

	router := gin.Default()
	router.Use(otelgin.Middleware("dashboard-service"))
	routes.SetupRoutes(router, p, registry)

	slog.Info("starting dashboard service", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
