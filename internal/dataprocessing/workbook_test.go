package dataprocessing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "battingcli/internal/errors"
)

func writeBattingWorkbook(t *testing.T, path string, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestParseFileWorkbook(t *testing.T) {
	ctx := context.Background()

	t.Run("parses batting sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batting.xlsx")
		writeBattingWorkbook(t, path, "Batting", [][]interface{}{
			{"playerID", "yearID", "AB", "H", "BB", "2B", "3B", "HR"},
			{"aaronha01", 1957, 615, 198, 57, 27, 6, 44},
			{"mayswi01", 1957, 585, 195, 76, 26, 20, 35},
		})

		records, err := ParseFile(ctx, path, ParseOptions{})
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "aaronha01", records[0].PlayerID)
		assert.Equal(t, int64(615), records[0].AtBats)
		assert.Equal(t, int64(121), records[0].Singles)
	})

	t.Run("finds sheet by header sniffing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "batting.xlsx")
		writeBattingWorkbook(t, path, "2024 Season Export", [][]interface{}{
			{"playerID", "yearID", "AB", "H", "BB", "2B", "3B", "HR"},
			{"p1", 2024, 100, 30, 10, 6, 1, 3},
		})

		records, err := ParseFile(ctx, path, ParseOptions{})
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("no batting sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "other.xlsx")
		writeBattingWorkbook(t, path, "Pitching", [][]interface{}{
			{"playerID", "ERA", "W", "L"},
			{"p1", 3.14, 10, 5},
		})

		_, err := ParseFile(ctx, path, ParseOptions{})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	})
}
