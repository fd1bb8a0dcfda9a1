// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/AleutianAI/CreatorDeck/services/dashboard/datatypes"
)

const (
	// maxSuggestions bounds the parsed candidate list. The prompt asks
	// for exactly this many, but the completion is free text and may
	// contain more, fewer, or blank lines.
	maxSuggestions = 3

	// completionMaxTokens bounds the completion length. Three titles fit
	// comfortably; anything longer is wasted spend.
	completionMaxTokens = 200

	defaultModel = "gpt-3.5-turbo"
)

// Config holds the text-generation provider credential and model choice.
type Config struct {
	// APIKey is the provider credential. Required.
	APIKey string

	// Model overrides the default completion model.
	Model string

	// BaseURL overrides the provider base URL. Used by tests and for
	// OpenAI-compatible local backends.
	BaseURL string
}

// OpenAIClient generates title suggestions through the OpenAI chat
// completion API. Stateless; safe for concurrent use.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a suggestion gateway. A missing credential is a
// construction error; callers that want degraded operation keep a nil
// gateway instead and surface NotConfigured themselves.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: OpenAI API key", datatypes.ErrNotConfigured)
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
		slog.Warn("suggestion model not set, using default", "model", model)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// GenerateTitles implements the TitleSuggester interface. One outbound
// call, no retries.
func (o *OpenAIClient) GenerateTitles(ctx context.Context, title, description string) ([]string, error) {
	prompt := fmt.Sprintf(
		`Generate 3 creative alternative titles for a YouTube video with the current title: %q. Description: %q. Return only 3 titles, one per line, without numbering.`,
		title, description)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: completionMaxTokens,
	})
	if err != nil {
		return nil, datatypes.WrapUpstream("generate titles", err)
	}
	if len(resp.Choices) == 0 {
		return nil, datatypes.WrapUpstream("generate titles", fmt.Errorf("provider returned no choices"))
	}

	suggestions := parseSuggestions(resp.Choices[0].Message.Content)
	slog.Debug("parsed title suggestions", "count", len(suggestions), "model", o.model)
	return suggestions, nil
}

// parseSuggestions splits a raw completion on line breaks, drops blank
// lines, and truncates to the first three non-blank lines. Lines are kept
// verbatim; leading punctuation or numbering the model emitted anyway is
// the caller's problem.
func parseSuggestions(raw string) []string {
	suggestions := make([]string, 0, maxSuggestions)
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		suggestions = append(suggestions, line)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}
