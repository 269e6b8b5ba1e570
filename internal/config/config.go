package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// LoggingConfig contains logging configuration.
// Defaults are applied by applyDefaults after both layers load; envconfig
// default tags would clobber file values for every unset env var.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR"`
	ReportsDir  string `yaml:"reports_dir" envconfig:"REPORTS_DIR"`
	LogsDir     string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
	BattingFile string `yaml:"batting_file" envconfig:"BATTING_FILE"`
	MasterFile  string `yaml:"master_file" envconfig:"MASTER_FILE"`
}

// AnalysisConfig contains analysis behavior configuration
type AnalysisConfig struct {
	// MinimumAtBats is the qualification cutoff applied before ranking.
	// Zero or unset falls back to the conventional 500; disabling the
	// cutoff for a single run is done with the report CLI's -min-ab flag.
	MinimumAtBats int64 `yaml:"minimum_at_bats" envconfig:"MINIMUM_AT_BATS"`
	// TopPlayers is the default leaderboard size.
	TopPlayers int `yaml:"top_players" envconfig:"TOP_PLAYERS"`
	// StrictHitComposition makes the parser reject rows whose hit subtypes
	// sum to more than total hits instead of logging a warning.
	StrictHitComposition bool `yaml:"strict_hit_composition" envconfig:"STRICT_HIT_COMPOSITION"`
	// Separator is the field separator for CSV input files.
	Separator string `yaml:"separator" envconfig:"SEPARATOR"`
}

// SeparatorRune converts the configured separator to the rune form the
// parsers take. Empty falls back to comma.
func (a AnalysisConfig) SeparatorRune() rune {
	runes := []rune(a.Separator)
	if len(runes) == 0 {
		return ','
	}
	return runes[0]
}

// Load loads configuration from environment variables and config file.
// Environment variables (prefix BATTING) take precedence over the file.
func Load() (*Config, error) {
	var cfg Config

	// Load from config file first so env vars can override
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = *fileConfig
	}

	if err := envconfig.Process("BATTING", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Analysis.MinimumAtBats < 0 {
		return fmt.Errorf("minimum at-bats must be non-negative, got %d", c.Analysis.MinimumAtBats)
	}
	if len(c.Analysis.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Analysis.Separator)
	}

	return nil
}

func getConfigFilePath() string {
	if path := os.Getenv("BATTING_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills whatever neither the config file nor the environment
// set. It is the single source of defaults; the struct tags carry none.
func applyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "console"
	}
	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = "logs/battingcli.log"
	}
	if cfg.Paths.DataDir == "" {
		cfg.Paths.DataDir = "data"
	}
	if cfg.Paths.ReportsDir == "" {
		cfg.Paths.ReportsDir = "data/reports"
	}
	if cfg.Paths.LogsDir == "" {
		cfg.Paths.LogsDir = "logs"
	}
	if cfg.Paths.BattingFile == "" {
		cfg.Paths.BattingFile = "data/batting.csv"
	}
	if cfg.Paths.MasterFile == "" {
		cfg.Paths.MasterFile = "data/master.csv"
	}
	if cfg.Analysis.MinimumAtBats == 0 {
		cfg.Analysis.MinimumAtBats = 500
	}
	if cfg.Analysis.TopPlayers == 0 {
		cfg.Analysis.TopPlayers = 10
	}
	if cfg.Analysis.Separator == "" {
		cfg.Analysis.Separator = ","
	}
}
