// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pipeline is the dashboard's orchestrator. Every user intent
// flows through here: the pipeline dispatches to exactly one gateway or
// store, appends exactly one audit record describing what was attempted,
// and returns the underlying result or error unchanged.
//
// The audit write is a best-effort side channel. No transaction spans the
// gateway call and the audit write; the two are independent effects, and
// an audit failure never surfaces as a failure of the user-facing
// operation.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/observability"
)

var tracer = otel.Tracer("creatordeck.dashboard.pipeline")

// loggerWithTrace returns a logger with trace context attached so audit
// anomalies can be correlated with the request that caused them.
func loggerWithTrace(ctx context.Context, logger *slog.Logger) *slog.Logger {
	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return logger
	}
	return logger.With(
		slog.String("trace_id", spanCtx.TraceID().String()),
		slog.String("span_id", spanCtx.SpanID().String()),
	)
}

// Config holds the pipeline's dependencies. Gateways may be nil when the
// corresponding provider credential is absent; the pipeline then degrades
// only the dependent intents, never the whole process.
type Config struct {
	Video     VideoGateway
	Suggester TitleSuggester
	Notes     NoteStore
	Audit     AuditSink

	// VideoID is the owning-resource identifier stamped on new notes.
	VideoID string

	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Pipeline routes user intents. Construct once at startup and pass by
// reference to request handlers; it holds no per-request state.
type Pipeline struct {
	video     VideoGateway
	suggester TitleSuggester
	notes     NoteStore
	audit     AuditSink
	videoID   string
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// New builds a pipeline from the given dependencies.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics(prometheus.NewRegistry())
	}
	return &Pipeline{
		video:     cfg.Video,
		suggester: cfg.Suggester,
		notes:     cfg.Notes,
		audit:     cfg.Audit,
		videoID:   cfg.VideoID,
		metrics:   metrics,
		logger:    logger,
	}
}

// =============================================================================
// Read paths (no audit)
// =============================================================================

// FetchVideo returns the target video snapshot.
func (p *Pipeline) FetchVideo(ctx context.Context) (datatypes.Video, error) {
	if p.video == nil {
		return datatypes.Video{}, fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	}
	return p.video.FetchVideo(ctx)
}

// ListComments returns the current first page of top-level comments.
func (p *Pipeline) ListComments(ctx context.Context) ([]datatypes.Comment, error) {
	if p.video == nil {
		return nil, fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	}
	return p.video.ListComments(ctx)
}

// SearchNotes returns notes matching the query, newest first.
func (p *Pipeline) SearchNotes(ctx context.Context, query string) ([]datatypes.Note, error) {
	return p.notes.Search(ctx, query)
}

// RecentLogs returns the most recent audit records, newest first.
func (p *Pipeline) RecentLogs(ctx context.Context) ([]datatypes.AuditRecord, error) {
	return p.audit.Recent(ctx)
}

// =============================================================================
// Intents (exactly one audit record each)
// =============================================================================

// UpdateVideo overwrites the video's title and description at the
// provider. The audit record carries the new title only: one intent means
// one provider call, and the pipeline will not spend a second call to
// learn the previous title.
func (p *Pipeline) UpdateVideo(ctx context.Context, title, description string) error {
	ctx, span := tracer.Start(ctx, "pipeline.UpdateVideo")
	defer span.End()
	defer p.observe(datatypes.ActionVideoUpdated, time.Now())

	var err error
	if p.video == nil {
		err = fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	} else {
		err = p.video.UpdateVideo(ctx, title, description)
	}
	p.emit(ctx, datatypes.VideoUpdatedMeta{NewTitle: title}, err)
	return p.finish(span, err)
}

// PostComment creates a top-level comment and returns the provider's
// identifier for it.
func (p *Pipeline) PostComment(ctx context.Context, text string) (string, error) {
	ctx, span := tracer.Start(ctx, "pipeline.PostComment")
	defer span.End()
	defer p.observe(datatypes.ActionCommentAdded, time.Now())

	var id string
	var err error
	if p.video == nil {
		err = fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	} else {
		id, err = p.video.PostComment(ctx, text)
	}
	p.emit(ctx, datatypes.CommentAddedMeta{Text: text}, err)
	return id, p.finish(span, err)
}

// DeleteComment deletes a comment by provider identifier. Provider
// errors, including unknown identifiers, are surfaced unchanged.
func (p *Pipeline) DeleteComment(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "pipeline.DeleteComment")
	defer span.End()
	defer p.observe(datatypes.ActionCommentDeleted, time.Now())

	var err error
	if p.video == nil {
		err = fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	} else {
		err = p.video.DeleteComment(ctx, id)
	}
	p.emit(ctx, datatypes.CommentDeletedMeta{CommentID: id}, err)
	return p.finish(span, err)
}

// CreateNote persists a new note against the configured video.
func (p *Pipeline) CreateNote(ctx context.Context, content, tags string) (datatypes.Note, error) {
	ctx, span := tracer.Start(ctx, "pipeline.CreateNote")
	defer span.End()
	defer p.observe(datatypes.ActionNoteCreated, time.Now())

	note, err := p.notes.Create(ctx, p.videoID, content, tags)
	p.emit(ctx, datatypes.NoteCreatedMeta{Tags: tags}, err)
	return note, p.finish(span, err)
}

// UpdateNote applies a partial update to a note.
func (p *Pipeline) UpdateNote(ctx context.Context, id string, content, tags *string) (datatypes.Note, error) {
	ctx, span := tracer.Start(ctx, "pipeline.UpdateNote")
	defer span.End()
	defer p.observe(datatypes.ActionNoteUpdated, time.Now())

	note, err := p.notes.Update(ctx, id, content, tags)
	p.emit(ctx, datatypes.NoteUpdatedMeta{NoteID: id}, err)
	return note, p.finish(span, err)
}

// DeleteNote removes a note by identifier.
func (p *Pipeline) DeleteNote(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "pipeline.DeleteNote")
	defer span.End()
	defer p.observe(datatypes.ActionNoteDeleted, time.Now())

	err := p.notes.Delete(ctx, id)
	p.emit(ctx, datatypes.NoteDeletedMeta{NoteID: id}, err)
	return p.finish(span, err)
}

// GenerateTitles requests up to three alternative titles from the
// text-generation provider.
func (p *Pipeline) GenerateTitles(ctx context.Context, title, description string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "pipeline.GenerateTitles")
	defer span.End()
	defer p.observe(datatypes.ActionSuggestionsGenerated, time.Now())

	var suggestions []string
	var err error
	if p.suggester == nil {
		err = fmt.Errorf("%w: OpenAI API key", datatypes.ErrNotConfigured)
	} else {
		suggestions, err = p.suggester.GenerateTitles(ctx, title, description)
	}
	p.emit(ctx, datatypes.SuggestionsGeneratedMeta{Count: len(suggestions)}, err)
	return suggestions, p.finish(span, err)
}

// RecordAction appends a client-driven audit record. Unlike the other
// intents, the audit write IS the primary operation here, so its failure
// surfaces to the caller. Intents the UI completes locally, such as
// selecting a suggestion, arrive through this path.
func (p *Pipeline) RecordAction(ctx context.Context, action string, fields map[string]any) (datatypes.AuditRecord, error) {
	ctx, span := tracer.Start(ctx, "pipeline.RecordAction")
	defer span.End()

	if fields == nil {
		fields = map[string]any{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return datatypes.AuditRecord{}, fmt.Errorf("%w: metadata not encodable", datatypes.ErrValidation)
	}
	rec := datatypes.AuditRecord{
		ID:        uuid.NewString(),
		Action:    datatypes.Action(action),
		Metadata:  raw,
		Status:    datatypes.StatusSuccess,
		Timestamp: time.Now().UTC(),
	}
	if err := p.audit.Append(ctx, rec); err != nil {
		return datatypes.AuditRecord{}, p.finish(span, err)
	}
	p.metrics.ActionsTotal.WithLabelValues(action, string(datatypes.StatusSuccess)).Inc()
	return rec, nil
}

// =============================================================================
// Internals
// =============================================================================

// emit appends the audit record for one intent. Failures are counted and
// logged, never propagated: observability must not block primary
// functionality. The append runs on a cancellation-free context so a
// client hanging up mid-request cannot hole the trail.
func (p *Pipeline) emit(ctx context.Context, meta datatypes.Metadata, opErr error) {
	status := datatypes.StatusSuccess
	if opErr != nil {
		status = datatypes.StatusFailed
	}
	p.metrics.ActionsTotal.WithLabelValues(string(meta.Kind()), string(status)).Inc()

	rec, err := datatypes.NewAuditRecord(uuid.NewString(), meta, status, time.Now().UTC())
	if err == nil {
		err = p.audit.Append(context.WithoutCancel(ctx), rec)
	}
	if err != nil {
		p.metrics.AuditAppendFailuresTotal.Inc()
		loggerWithTrace(ctx, p.logger).Error("audit append failed",
			"action", meta.Kind(), "status", status, "error", err)
	}
}

// observe records intent latency. Used with defer so the histogram sees
// error paths too.
func (p *Pipeline) observe(action datatypes.Action, start time.Time) {
	p.metrics.ActionDurationSeconds.WithLabelValues(string(action)).
		Observe(time.Since(start).Seconds())
}

// finish annotates the span and hands the underlying error back
// unchanged.
func (p *Pipeline) finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
