package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "battingcli/internal/errors"
)

// ExcelWriter exports leaderboard reports as xlsx workbooks.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteLeaderboard writes the report to an xlsx file with one sheet named
// after the metric.
func (w *ExcelWriter) WriteLeaderboard(ctx context.Context, path string, report LeaderboardReport) error {
	w.logger.InfoContext(ctx, "writing leaderboard workbook",
		slog.String("path", path),
		slog.Int("entry_count", len(report.Entries)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s %s", report.Metric, report.Scope)
	// Sheet names are capped at 31 characters by the xlsx format.
	if len(sheet) > 31 {
		sheet = sheet[:31]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return apperrors.NewStorageError("failed to name leaderboard sheet", err)
	}

	headers := []string{"Rank", "PlayerID", "Name", report.Metric}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return apperrors.NewStorageError("failed to compute header cell", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return apperrors.NewStorageError("failed to write header cell", err)
		}
	}

	for row, entry := range report.Entries {
		values := []interface{}{entry.Rank, entry.PlayerID, entry.Name, entry.Value}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return apperrors.NewStorageError("failed to compute data cell", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return apperrors.NewStorageError("failed to write data cell", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save leaderboard workbook", err)
	}

	return nil
}
