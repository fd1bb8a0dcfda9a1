// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// This file contains transient snapshots of provider-owned resources. The
// dashboard never holds an authoritative copy of a video or a comment;
// both are scoped to a single request/response cycle.
package datatypes

// Video is a point-in-time snapshot of the configured target video's
// metadata and statistics. Counts are provider-authoritative and read-only
// from the dashboard's perspective.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	Views        uint64 `json:"views"`
	Likes        uint64 `json:"likes"`
	CommentCount uint64 `json:"commentCount"`
}

// Comment is one top-level comment thread, flattened. Replies are out of
// scope for the dashboard.
type Comment struct {
	ID          string `json:"id"`
	AuthorName  string `json:"authorName"`
	Text        string `json:"text"`
	Likes       int64  `json:"likes"`
	PublishedAt string `json:"publishedAt"`
}

// UpdateVideoRequest carries the full desired title and description. The
// provider expects a complete snippet object, so this is a full replace,
// not a partial patch.
type UpdateVideoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// PostCommentRequest carries the body of a new top-level comment.
type PostCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// SuggestTitlesRequest carries the current title and description the
// suggestion prompt is built from.
type SuggestTitlesRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
