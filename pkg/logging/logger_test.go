// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
}

func TestNew_StderrOnly(t *testing.T) {
	logger, err := New(Config{Level: LevelDebug})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, logger.Close())
}

func TestNew_FileLogging(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Config{
		Level:   LevelInfo,
		LogDir:  dir,
		Service: "dashboard",
		Quiet:   true,
	})
	require.NoError(t, err)

	logger.Info("video fetched", "video_id", "abc123")
	logger.Debug("should be filtered out")
	require.NoError(t, logger.Close())

	name := "dashboard_" + time.Now().Format("2006-01-02") + ".log"
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 1)
	assert.Equal(t, "video fetched", entries[0]["msg"])
	assert.Equal(t, "abc123", entries[0]["video_id"])
	assert.Equal(t, "dashboard", entries[0]["service"])
}

func TestNew_CreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	logger, err := New(Config{LogDir: dir, Quiet: true})
	require.NoError(t, err)
	defer logger.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefault(t *testing.T) {
	logger := Default()
	require.NotNil(t, logger)
	assert.NoError(t, logger.Close())
}

func TestCloseWithoutFile(t *testing.T) {
	logger, err := New(Config{Quiet: true})
	require.NoError(t, err)
	assert.NoError(t, logger.Close())
}

func TestMultiHandler_Fanout(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	fileA, err := os.Create(filepath.Join(dirA, "a.log"))
	require.NoError(t, err)
	defer fileA.Close()
	fileB, err := os.Create(filepath.Join(dirB, "b.log"))
	require.NoError(t, err)
	defer fileB.Close()

	handler := multiHandler{
		slog.NewJSONHandler(fileA, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(fileB, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	logger := slog.New(handler)
	logger.Info("info entry")
	logger.Error("error entry")

	countLines := func(path string) int {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		n := 0
		for _, b := range data {
			if b == '\n' {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 2, countLines(fileA.Name()))
	assert.Equal(t, 1, countLines(fileB.Name()))
}
