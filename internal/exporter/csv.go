package exporter

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality for reports
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes tabular data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(ctx context.Context, path string, options WriteOptions) error {
	w.logger.InfoContext(ctx, "writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create CSV file", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM prefix", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return apperrors.NewStorageError("failed to write CSV header row", err)
		}
	}

	for _, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError("failed to write CSV data row", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteLeaderboard writes a ranked leaderboard report as CSV.
func (w *CSVWriter) WriteLeaderboard(ctx context.Context, path string, report LeaderboardReport) error {
	records := make([][]string, 0, len(report.Entries))
	for _, entry := range report.Entries {
		records = append(records, []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.PlayerID,
			entry.Name,
			formatMetric(entry.Value),
		})
	}

	return w.WriteCSV(ctx, path, WriteOptions{
		Headers: []string{"Rank", "PlayerID", "Name", report.Metric},
		Records: records,
	})
}

// WriteCareerCSV writes career-aggregate batting records as CSV, one row per
// player with the summed counting stats.
func (w *CSVWriter) WriteCareerCSV(ctx context.Context, path string, careers []domain.BattingRecord) error {
	records := make([][]string, 0, len(careers))
	for _, career := range careers {
		records = append(records, []string{
			career.PlayerID,
			formatInt(career.AtBats),
			formatInt(career.Hits),
			formatInt(career.Walks),
			formatInt(career.Singles),
			formatInt(career.Doubles),
			formatInt(career.Triples),
			formatInt(career.HomeRuns),
		})
	}

	return w.WriteCSV(ctx, path, WriteOptions{
		Headers: []string{"playerID", "AB", "H", "BB", "1B", "2B", "3B", "HR"},
		Records: records,
	})
}
