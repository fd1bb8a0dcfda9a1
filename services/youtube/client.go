// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package youtube is the stateless gateway to the video metadata and
// comment provider. It translates dashboard intents into YouTube Data API
// v3 calls and normalizes the provider's response and error shapes.
//
// Each operation issues exactly one outbound call and performs no
// retries; retry policy, if any, belongs to the caller. The dashboard
// holds no authoritative copy of provider data, so nothing here caches
// across requests.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/AleutianAI/CreatorDeck/pkg/validation"
	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

const (
	// commentPageSize caps one list call to the provider's first page of
	// top-level threads. Replies are out of scope.
	commentPageSize = 20

	// updateCategoryID is the fixed category classifier carried on every
	// metadata update. The provider requires a complete snippet, category
	// included, even when only the title changes.
	updateCategoryID = "24"

	// callTimeout bounds each outbound provider call. The transport's own
	// defaults are unbounded, which is not acceptable for a request-scoped
	// proxy.
	callTimeout = 30 * time.Second
)

// Config holds the provider credential and the configured target video.
type Config struct {
	// APIKey is the provider credential. Required.
	APIKey string

	// VideoID is the single target resource this deployment manages.
	VideoID string

	// Endpoint overrides the provider base URL. Used by tests.
	Endpoint string
}

// Client is the resource gateway. Construct once at startup and pass by
// reference; it is stateless and safe for concurrent use.
type Client struct {
	svc     *ytapi.Service
	videoID string
}

// New builds a gateway from the given configuration. A missing credential
// is a construction error; callers that want degraded operation keep a
// nil gateway instead and surface NotConfigured themselves.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: YouTube API key", datatypes.ErrNotConfigured)
	}
	if err := validation.ValidateVideoID(cfg.VideoID); err != nil {
		return nil, fmt.Errorf("%w: %v", datatypes.ErrValidation, err)
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc, videoID: cfg.VideoID}, nil
}

// FetchVideo returns a snapshot of the configured video's metadata and
// statistics. Optional statistics absent from the provider response are
// normalized to zero.
func (c *Client) FetchVideo(ctx context.Context) (datatypes.Video, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(c.videoID).
		Context(ctx).
		Do()
	if err != nil {
		return datatypes.Video{}, mapProviderError("fetch video", err)
	}
	if len(resp.Items) == 0 {
		return datatypes.Video{}, fmt.Errorf("%w: video %s", datatypes.ErrNotFound, c.videoID)
	}

	item := resp.Items[0]
	video := datatypes.Video{ID: item.Id}
	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		video.Description = item.Snippet.Description
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			video.Thumbnail = item.Snippet.Thumbnails.Default.Url
		}
	}
	if item.Statistics != nil {
		video.Views = item.Statistics.ViewCount
		video.Likes = item.Statistics.LikeCount
		video.CommentCount = item.Statistics.CommentCount
	}
	return video, nil
}

// UpdateVideo overwrites the video's title and description at the
// provider. This is a full replace: the provider expects a complete
// snippet object, so the caller must supply the full desired title and
// description on every call.
func (c *Client) UpdateVideo(ctx context.Context, title, description string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	update := &ytapi.Video{
		Id: c.videoID,
		Snippet: &ytapi.VideoSnippet{
			Title:       title,
			Description: description,
			CategoryId:  updateCategoryID,
		},
	}
	_, err := c.svc.Videos.Update([]string{"snippet"}, update).
		Context(ctx).
		Do()
	if err != nil {
		return mapProviderError("update video", err)
	}
	return nil
}

// ListComments fetches up to one page of top-level comment threads,
// flattened to one comment per thread, in the provider's ordering.
func (c *Client) ListComments(ctx context.Context) ([]datatypes.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.svc.CommentThreads.List([]string{"snippet"}).
		VideoId(c.videoID).
		MaxResults(commentPageSize).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapProviderError("list comments", err)
	}

	comments := make([]datatypes.Comment, 0, len(resp.Items))
	for _, thread := range resp.Items {
		if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil ||
			thread.Snippet.TopLevelComment.Snippet == nil {
			slog.Warn("skipping malformed comment thread", "thread_id", thread.Id)
			continue
		}
		top := thread.Snippet.TopLevelComment.Snippet
		comments = append(comments, datatypes.Comment{
			ID:          thread.Id,
			AuthorName:  top.AuthorDisplayName,
			Text:        top.TextDisplay,
			Likes:       top.LikeCount,
			PublishedAt: top.PublishedAt,
		})
	}
	return comments, nil
}

// PostComment creates a new top-level comment thread on the configured
// video and returns the provider-assigned thread identifier.
func (c *Client) PostComment(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: comment text must not be empty", datatypes.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	thread := &ytapi.CommentThread{
		Snippet: &ytapi.CommentThreadSnippet{
			VideoId: c.videoID,
			TopLevelComment: &ytapi.Comment{
				Snippet: &ytapi.CommentSnippet{
					TextOriginal: text,
				},
			},
		},
	}
	created, err := c.svc.CommentThreads.Insert([]string{"snippet"}, thread).
		Context(ctx).
		Do()
	if err != nil {
		return "", mapProviderError("post comment", err)
	}
	return created.Id, nil
}

// DeleteComment deletes the comment with the given provider identifier.
// The provider distinguishes a missing identifier as an error, and that
// error is surfaced, not swallowed.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := c.svc.Comments.Delete(id).Context(ctx).Do(); err != nil {
		return mapProviderError("delete comment", err)
	}
	return nil
}

// mapProviderError folds transport failures and non-2xx provider
// responses into the upstream taxonomy while keeping the original error
// chain for logging.
func mapProviderError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return datatypes.WrapUpstream(fmt.Sprintf("%s: provider returned %d", op, apiErr.Code), err)
	}
	return datatypes.WrapUpstream(op, err)
}
