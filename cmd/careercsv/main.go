package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"battingcli/internal/batting"
	"battingcli/internal/config"
	"battingcli/internal/dataprocessing"
	"battingcli/internal/exporter"
	"battingcli/internal/infrastructure"
)

func main() {
	battingFile := flag.String("batting", "", "batting file, csv or xlsx (defaults to configured path)")
	out := flag.String("out", "", "output csv file path (defaults to data/reports/careers.csv)")
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
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	if *battingFile == "" {
		*battingFile = paths.BattingCSV
	}
	if *out == "" {
		*out = paths.GetReportPath("careers.csv")
	}

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	logger.InfoContext(ctx, "Starting career aggregation",
		slog.String("batting_file", *battingFile),
		slog.String("output_file", *out))

	records, err := dataprocessing.ParseFile(ctx, *battingFile, dataprocessing.ParseOptions{
		Separator:            cfg.Analysis.SeparatorRune(),
		StrictHitComposition: cfg.Analysis.StrictHitComposition,
		Logger:               logger,
	})
	if err != nil {
		logger.Error("Failed to parse batting file", "error", err)
		os.Exit(1)
	}

	careers := batting.GroupByPlayer(records)
	logger.InfoContext(ctx, "Aggregated careers",
		slog.Int("season_records", len(records)),
		slog.Int("players", len(careers)))

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteCareerCSV(ctx, *out, careers); err != nil {
		logger.Error("Failed to write career CSV", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Career CSV complete", slog.String("path", *out))
}
