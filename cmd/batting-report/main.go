package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"battingcli/internal/batting"
	"battingcli/internal/config"
	"battingcli/internal/dataprocessing"
	"battingcli/internal/exporter"
	"battingcli/internal/infrastructure"
	"battingcli/pkg/contracts"
	"battingcli/pkg/contracts/domain"
)

func main() {
	battingFile := flag.String("batting", "", "batting file, csv or xlsx (defaults to configured path)")
	masterFile := flag.String("master", "", "master player file csv (defaults to configured path)")
	metricName := flag.String("metric", "avg", "metric to rank by: avg | obp | slg")
	year := flag.Int("year", 0, "season year to rank; 0 ranks career aggregates")
	topN := flag.Int("top", 0, "number of players to report (defaults to configured value)")
	minAB := flag.Int64("min-ab", -1, "qualification cutoff in at-bats; 0 disables (defaults to configured value)")
	format := flag.String("format", "text", "output format: text | csv | json | xlsx")
	out := flag.String("out", "", "output file path (defaults to data/reports, ignored for text)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	paths, err := config.GetPaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *battingFile == "" {
		*battingFile = paths.BattingCSV
	}
	if *masterFile == "" {
		*masterFile = paths.MasterCSV
	}
	if *topN <= 0 {
		*topN = cfg.Analysis.TopPlayers
	}
	if *minAB < 0 {
		*minAB = cfg.Analysis.MinimumAtBats
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	metric, err := batting.MetricByName(*metricName)
	if err != nil {
		logger.Error("Invalid metric", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Starting batting report",
		slog.String("version", contracts.GetVersionString()),
		slog.String("batting_file", *battingFile),
		slog.String("metric", *metricName),
		slog.Int("year", *year),
		slog.Int("top", *topN),
		slog.Int64("min_ab", *minAB))

	records, err := dataprocessing.ParseFile(ctx, *battingFile, dataprocessing.ParseOptions{
		Separator:            cfg.Analysis.SeparatorRune(),
		StrictHitComposition: cfg.Analysis.StrictHitComposition,
		Logger:               logger,
	})
	if err != nil {
		logger.Error("Failed to parse batting file", "error", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		logger.Error("No batting records found",
			slog.String("path", *battingFile),
			slog.String("hint", "check the batting file has a header row and data"))
		os.Exit(1)
	}

	// Narrow to the requested season, or fold every player's seasons into
	// career aggregates.
	var pool []domain.BattingRecord
	if *year != domain.CareerYear {
		pool = batting.FilterByYear(records, *year)
		if len(pool) == 0 {
			logger.Error("No records for requested year", slog.Int("year", *year))
			os.Exit(1)
		}
	} else {
		pool = batting.GroupByPlayer(records)
	}

	qualified := batting.Qualified(pool, *minAB)
	logger.InfoContext(ctx, "Applied qualification cutoff",
		slog.Int("candidates", len(pool)),
		slog.Int("qualified", len(qualified)))

	top := batting.TopPlayers(qualified, metric, *topN)

	names := map[string]domain.PlayerName{}
	if *masterFile != "" {
		names, err = dataprocessing.LoadPlayerNames(ctx, *masterFile, dataprocessing.NameOptions{
			Separator: cfg.Analysis.SeparatorRune(),
			Logger:    logger,
		})
		if err != nil {
			logger.Warn("Failed to load master player file, using player ids",
				"error", err)
			names = map[string]domain.PlayerName{}
		}
	}

	report := exporter.BuildLeaderboard(top, names, *metricName, *year)

	if err := writeReport(ctx, logger, paths, report, *format, *out); err != nil {
		logger.Error("Failed to write report", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Batting report complete",
		slog.Int("entries", len(report.Entries)))
}

func writeReport(ctx context.Context, logger *slog.Logger, paths *config.Paths, report exporter.LeaderboardReport, format, out string) error {
	if format == "text" {
		for _, line := range report.Lines() {
			fmt.Println(line)
		}
		return nil
	}

	if out == "" {
		name := fmt.Sprintf("leaderboard_%s_%s.%s", report.Metric, report.Scope, format)
		out = paths.GetReportPath(name)
	} else if !filepath.IsAbs(out) {
		if abs, err := filepath.Abs(out); err == nil {
			out = abs
		}
	}

	switch format {
	case "csv":
		return exporter.NewCSVWriter(logger).WriteLeaderboard(ctx, out, report)
	case "json":
		return exporter.WriteLeaderboardJSON(ctx, out, report)
	case "xlsx":
		return exporter.NewExcelWriter(logger).WriteLeaderboard(ctx, out, report)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
