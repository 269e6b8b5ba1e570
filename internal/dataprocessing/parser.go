package dataprocessing

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"

	apperrors "battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

// validate checks struct tags on parsed records at the input boundary.
var validate = validator.New()

// ColumnMapping names the input columns holding each batting stat. The
// Singles column is optional: when empty or absent from the header, singles
// are derived as H - 2B - 3B - HR, the convention of most published batting
// tables.
type ColumnMapping struct {
	PlayerID string
	Year     string
	AtBats   string
	Hits     string
	Walks    string
	Singles  string
	Doubles  string
	Triples  string
	HomeRuns string
}

// DefaultColumns returns the Lahman-database column names.
func DefaultColumns() ColumnMapping {
	return ColumnMapping{
		PlayerID: "playerID",
		Year:     "yearID",
		AtBats:   "AB",
		Hits:     "H",
		Walks:    "BB",
		Singles:  "1B",
		Doubles:  "2B",
		Triples:  "3B",
		HomeRuns: "HR",
	}
}

// ParseOptions configures batting file parsing.
type ParseOptions struct {
	// Separator is the CSV field separator. Zero value means comma.
	Separator rune
	// Columns maps batting stats to input column names. Zero value means
	// DefaultColumns.
	Columns ColumnMapping
	// StrictHitComposition rejects rows whose hit subtypes sum to more than
	// total hits. When false such rows are kept with a logged warning.
	StrictHitComposition bool
	// Logger receives row-level warnings. Nil means slog.Default.
	Logger *slog.Logger
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.Separator == 0 {
		o.Separator = ','
	}
	if o.Columns == (ColumnMapping{}) {
		o.Columns = DefaultColumns()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// ParseFile reads a batting file and returns its records. The format is
// chosen by extension: .csv via ParseCSV, .xlsx workbooks via excelize with
// header-sniffing sheet discovery.
func ParseFile(ctx context.Context, path string, opts ParseOptions) ([]domain.BattingRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, apperrors.NewStorageError("failed to open batting file", err).WithContext("path", path)
		}
		defer file.Close()
		return ParseCSV(ctx, file, opts)
	case ".xlsx":
		return parseWorkbook(ctx, path, opts)
	default:
		return nil, apperrors.NewInvalidArgumentError(
			fmt.Sprintf("unsupported batting file format: %s", filepath.Ext(path)))
	}
}

// ParseCSV reads batting records from CSV data with a header row. Rows with
// non-numeric counting stats or missing required columns fail the whole parse
// with a PARSING error naming the offending row.
func ParseCSV(ctx context.Context, r io.Reader, opts ParseOptions) ([]domain.BattingRecord, error) {
	opts = opts.withDefaults()

	reader := csv.NewReader(r)
	reader.Comma = opts.Separator
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read header row", err)
	}

	columns, err := mapColumns(header, opts.Columns)
	if err != nil {
		return nil, err
	}

	var records []domain.BattingRecord
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read row %d", rowNum), err)
		}
		rowNum++

		record, err := buildRecord(row, columns, opts)
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("invalid batting row %d", rowNum), err)
		}
		records = append(records, record)
	}

	opts.Logger.InfoContext(ctx, "parsed batting records",
		slog.Int("record_count", len(records)))

	return records, nil
}

// columnIndex holds the resolved position of each stat column in the input.
// singles == -1 means the column is absent and singles are derived.
type columnIndex struct {
	playerID, year, atBats, hits, walks int
	singles                             int
	doubles, triples, homeRuns          int
}

func mapColumns(header []string, mapping ColumnMapping) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	required := func(name string) (int, error) {
		if idx, ok := positions[name]; ok {
			return idx, nil
		}
		return 0, apperrors.NewParsingError(
			fmt.Sprintf("missing required column %q in header", name), nil)
	}

	var idx columnIndex
	var err error
	if idx.playerID, err = required(mapping.PlayerID); err != nil {
		return idx, err
	}
	if idx.year, err = required(mapping.Year); err != nil {
		return idx, err
	}
	if idx.atBats, err = required(mapping.AtBats); err != nil {
		return idx, err
	}
	if idx.hits, err = required(mapping.Hits); err != nil {
		return idx, err
	}
	if idx.walks, err = required(mapping.Walks); err != nil {
		return idx, err
	}
	if idx.doubles, err = required(mapping.Doubles); err != nil {
		return idx, err
	}
	if idx.triples, err = required(mapping.Triples); err != nil {
		return idx, err
	}
	if idx.homeRuns, err = required(mapping.HomeRuns); err != nil {
		return idx, err
	}

	idx.singles = -1
	if mapping.Singles != "" {
		if pos, ok := positions[mapping.Singles]; ok {
			idx.singles = pos
		}
	}

	return idx, nil
}

func buildRecord(row []string, idx columnIndex, opts ParseOptions) (domain.BattingRecord, error) {
	cell := func(pos int) (string, error) {
		if pos >= len(row) {
			return "", fmt.Errorf("row has %d fields, need at least %d", len(row), pos+1)
		}
		return strings.TrimSpace(row[pos]), nil
	}

	count := func(pos int, name string) (int64, error) {
		raw, err := cell(pos)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric %s value %q", name, raw)
		}
		if value < 0 {
			return 0, fmt.Errorf("negative %s value %d", name, value)
		}
		return value, nil
	}

	var record domain.BattingRecord
	var err error

	if record.PlayerID, err = cell(idx.playerID); err != nil {
		return record, err
	}

	rawYear, err := cell(idx.year)
	if err != nil {
		return record, err
	}
	if record.Year, err = strconv.Atoi(rawYear); err != nil {
		return record, fmt.Errorf("non-numeric year value %q", rawYear)
	}

	if record.AtBats, err = count(idx.atBats, "AB"); err != nil {
		return record, err
	}
	if record.Hits, err = count(idx.hits, "H"); err != nil {
		return record, err
	}
	if record.Walks, err = count(idx.walks, "BB"); err != nil {
		return record, err
	}
	if record.Doubles, err = count(idx.doubles, "2B"); err != nil {
		return record, err
	}
	if record.Triples, err = count(idx.triples, "3B"); err != nil {
		return record, err
	}
	if record.HomeRuns, err = count(idx.homeRuns, "HR"); err != nil {
		return record, err
	}

	if idx.singles >= 0 {
		if record.Singles, err = count(idx.singles, "1B"); err != nil {
			return record, err
		}
	} else {
		derived := record.Hits - record.Doubles - record.Triples - record.HomeRuns
		if derived < 0 {
			derived = 0
		}
		record.Singles = derived
	}

	if err := validate.Struct(record); err != nil {
		return record, fmt.Errorf("record validation failed: %w", err)
	}
	if !record.IsValid() {
		return record, fmt.Errorf("invalid batting record for player %q", record.PlayerID)
	}

	if err := record.CheckHitComposition(); err != nil {
		if opts.StrictHitComposition {
			return record, err
		}
		opts.Logger.Warn("hit composition mismatch, keeping row",
			slog.String("player_id", record.PlayerID),
			slog.Int("year", record.Year),
			slog.String("detail", err.Error()))
	}

	return record, nil
}

// parseWorkbook extracts batting records from an .xlsx workbook. The sheet is
// discovered by sniffing for a header row containing the mapped player and
// at-bats columns.
func parseWorkbook(ctx context.Context, path string, opts ParseOptions) ([]domain.BattingRecord, error) {
	opts = opts.withDefaults()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	var rows [][]string
	var sheetName string
	for _, name := range f.GetSheetList() {
		candidate, err := f.GetRows(name)
		if err != nil || len(candidate) < 2 {
			continue
		}
		headerText := strings.Join(candidate[0], " ")
		if strings.Contains(headerText, opts.Columns.PlayerID) && strings.Contains(headerText, opts.Columns.AtBats) {
			rows = candidate
			sheetName = name
			break
		}
	}

	if rows == nil {
		return nil, apperrors.NewParsingError("could not find batting data sheet in workbook", nil).
			WithContext("path", path)
	}

	opts.Logger.DebugContext(ctx, "found batting data sheet",
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(rows)))

	columns, err := mapColumns(rows[0], opts.Columns)
	if err != nil {
		return nil, err
	}

	var records []domain.BattingRecord
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		record, err := buildRecord(row, columns, opts)
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("invalid batting row %d", i+2), err)
		}
		records = append(records, record)
	}

	opts.Logger.InfoContext(ctx, "parsed batting records from workbook",
		slog.String("sheet_name", sheetName),
		slog.Int("record_count", len(records)))

	return records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
