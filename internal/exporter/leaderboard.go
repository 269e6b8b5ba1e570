package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"battingcli/internal/batting"
	apperrors "battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

// ScopeCareer identifies a leaderboard computed over career aggregates rather
// than a single season.
const ScopeCareer = "career"

// LeaderboardEntry is one ranked row of a report: position, identity, value.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

// LeaderboardReport is a complete ranked report for one metric and scope.
type LeaderboardReport struct {
	Metric      string             `json:"metric"`
	Scope       string             `json:"scope"`
	Entries     []LeaderboardEntry `json:"entries"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// BuildLeaderboard joins ranked scores with the master name lookup into a
// displayable report. Players missing from the lookup fall back to their
// identifier, never an error. Scope is the season year, or ScopeCareer for
// year zero.
func BuildLeaderboard(scores []batting.PlayerScore, names map[string]domain.PlayerName, metric string, year int) LeaderboardReport {
	scope := ScopeCareer
	if year != domain.CareerYear {
		scope = strconv.Itoa(year)
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for i, score := range scores {
		name := score.PlayerID
		if pn, ok := names[score.PlayerID]; ok && pn.FullName() != "" {
			name = pn.FullName()
		}
		entries = append(entries, LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: score.PlayerID,
			Name:     name,
			Value:    score.Value,
		})
	}

	return LeaderboardReport{
		Metric:      metric,
		Scope:       scope,
		Entries:     entries,
		GeneratedAt: time.Now().UTC(),
	}
}

// FormatEntry renders one entry as the classic report line, e.g.
// "0.300 --- Hank Aaron".
func FormatEntry(entry LeaderboardEntry) string {
	return fmt.Sprintf("%s --- %s", formatMetric(entry.Value), entry.Name)
}

// Lines renders the whole report as display lines in rank order.
func (r LeaderboardReport) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, entry := range r.Entries {
		lines = append(lines, FormatEntry(entry))
	}
	return lines
}

// WriteLeaderboardJSON writes the report to a JSON file with metadata,
// matching the structured output consumed by downstream tooling.
func WriteLeaderboardJSON(ctx context.Context, path string, report LeaderboardReport) error {
	logger := slog.Default()
	logger.InfoContext(ctx, "writing leaderboard JSON",
		slog.String("path", path),
		slog.Int("entry_count", len(report.Entries)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err)
	}

	payload := map[string]interface{}{
		"metric":       report.Metric,
		"scope":        report.Scope,
		"entries":      report.Entries,
		"count":        len(report.Entries),
		"generated_at": report.GeneratedAt.Format(time.RFC3339),
		"format":       "leaderboard_v1",
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON file for leaderboard", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return apperrors.NewStorageError("failed to encode leaderboard to JSON", err)
	}

	return nil
}
