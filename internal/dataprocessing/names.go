package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	apperrors "battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

// NameColumns names the master-file columns holding player identity.
type NameColumns struct {
	PlayerID  string
	FirstName string
	LastName  string
}

// DefaultNameColumns returns the Lahman master-file column names.
func DefaultNameColumns() NameColumns {
	return NameColumns{
		PlayerID:  "playerID",
		FirstName: "nameFirst",
		LastName:  "nameLast",
	}
}

// NameOptions configures master player file parsing.
type NameOptions struct {
	Separator rune
	Columns   NameColumns
	Logger    *slog.Logger
}

func (o NameOptions) withDefaults() NameOptions {
	if o.Separator == 0 {
		o.Separator = ','
	}
	if o.Columns == (NameColumns{}) {
		o.Columns = DefaultNameColumns()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// LoadPlayerNames reads the master player file and returns a lookup keyed by
// player identifier. Later rows with a duplicate identifier overwrite earlier
// ones, matching keyed-table semantics.
func LoadPlayerNames(ctx context.Context, path string, opts NameOptions) (map[string]domain.PlayerName, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open master player file", err).WithContext("path", path)
	}
	defer file.Close()
	return ReadPlayerNames(ctx, file, opts)
}

// ReadPlayerNames parses master player rows from CSV data with a header row.
func ReadPlayerNames(ctx context.Context, r io.Reader, opts NameOptions) (map[string]domain.PlayerName, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(r)
	reader.Comma = opts.Separator
	reader.TrimLeadingSpace = true
	// Master files often carry many extra biographical columns.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read master file header", err)
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	idIdx, ok := positions[opts.Columns.PlayerID]
	if !ok {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("missing required column %q in master file header", opts.Columns.PlayerID), nil)
	}
	firstIdx, hasFirst := positions[opts.Columns.FirstName]
	lastIdx, hasLast := positions[opts.Columns.LastName]

	names := make(map[string]domain.PlayerName)
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read master file row %d", rowNum), err)
		}
		rowNum++

		if idIdx >= len(row) {
			continue
		}
		playerID := strings.TrimSpace(row[idIdx])
		if playerID == "" {
			continue
		}

		name := domain.PlayerName{PlayerID: playerID}
		if hasFirst && firstIdx < len(row) {
			name.FirstName = strings.TrimSpace(row[firstIdx])
		}
		if hasLast && lastIdx < len(row) {
			name.LastName = strings.TrimSpace(row[lastIdx])
		}
		names[playerID] = name
	}

	opts.Logger.InfoContext(ctx, "loaded master player names",
		slog.Int("player_count", len(names)))

	return names, nil
}
