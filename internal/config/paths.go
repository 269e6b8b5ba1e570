package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds resolved absolute paths for the application's working files.
// All paths are anchored at the executable directory so the tool behaves the
// same regardless of the caller's working directory.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ReportsDir    string
	LogsDir       string
	BattingCSV    string
	MasterCSV     string
}

// GetPaths resolves the application paths from the given paths configuration.
func GetPaths(cfg PathsConfig) (*Paths, error) {
	execDir, err := executableDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable directory: %w", err)
	}

	p := &Paths{
		ExecutableDir: execDir,
		DataDir:       resolve(execDir, cfg.DataDir),
		ReportsDir:    resolve(execDir, cfg.ReportsDir),
		LogsDir:       resolve(execDir, cfg.LogsDir),
		BattingCSV:    resolve(execDir, cfg.BattingFile),
		MasterCSV:     resolve(execDir, cfg.MasterFile),
	}

	return p, nil
}

// EnsureDirectories creates the data, reports, and logs directories if missing.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the full path for a log file name inside the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetReportPath returns the full path for a report file name inside the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

func executableDir() (string, error) {
	// BATTING_EXECUTABLE_DIR overrides detection; used by tests and packaging.
	if dir := os.Getenv("BATTING_EXECUTABLE_DIR"); dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
