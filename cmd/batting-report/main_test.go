package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battingcli/internal/config"
	"battingcli/internal/exporter"
)

func TestWriteReportFormats(t *testing.T) {
	dir := t.TempDir()
	paths := &config.Paths{ReportsDir: dir}
	report := exporter.LeaderboardReport{
		Metric: "avg",
		Scope:  "1957",
		Entries: []exporter.LeaderboardEntry{
			{Rank: 1, PlayerID: "mayswi01", Name: "Willie Mays", Value: 0.333},
		},
	}
	ctx := context.Background()
	logger := slog.Default()

	t.Run("csv", func(t *testing.T) {
		require.NoError(t, writeReport(ctx, logger, paths, report, "csv", ""))
		assert.FileExists(t, filepath.Join(dir, "leaderboard_avg_1957.csv"))
	})

	t.Run("json", func(t *testing.T) {
		require.NoError(t, writeReport(ctx, logger, paths, report, "json", ""))
		assert.FileExists(t, filepath.Join(dir, "leaderboard_avg_1957.json"))
	})

	t.Run("xlsx", func(t *testing.T) {
		require.NoError(t, writeReport(ctx, logger, paths, report, "xlsx", ""))
		assert.FileExists(t, filepath.Join(dir, "leaderboard_avg_1957.xlsx"))
	})

	t.Run("explicit output path", func(t *testing.T) {
		out := filepath.Join(dir, "custom.csv")
		require.NoError(t, writeReport(ctx, logger, paths, report, "csv", out))
		assert.FileExists(t, out)
	})

	t.Run("text prints without writing files", func(t *testing.T) {
		require.NoError(t, writeReport(ctx, logger, paths, report, "text", ""))
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := writeReport(ctx, logger, paths, report, "yaml", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}
