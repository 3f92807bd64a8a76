package cli

import (
	"fmt"
	"io"

	"github.com/sdejongh/dircmp/pkg/config"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/spf13/cobra"
)

const (
	logMaxSize    = 10 * 1024 * 1024
	logMaxBackups = 3
)

// validateCompareFlags validates flags that have no configuration counterpart
func validateCompareFlags(flags *CompareFlags) error {
	validDiffFormats := map[string]bool{"human": true, "json": true}
	if !validDiffFormats[flags.DiffFormat] {
		return fmt.Errorf("invalid differences report format: %s (valid: human, json)", flags.DiffFormat)
	}
	return nil
}

// loadConfig loads configuration from file or returns default
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	return config.Load(globals.ConfigFile)
}

// applyFlagsToConfig overrides config values with command-line flags set explicitly
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config, globals *GlobalFlags, flags *CompareFlags) error {
	changed := cmd.Flags().Changed

	if changed("hash") {
		cfg.Compare.Hash = models.HashAlgorithm(flags.Hash)
	}
	if changed("dir-match") {
		cfg.Compare.DirectoryMatch = models.DirectoryMatch(flags.DirMatch)
	}

	// Exclude patterns
	if changed("exclude") {
		cfg.Exclude = flags.Exclude
	}

	// Output
	if changed("output") {
		cfg.Output.Format = flags.Output
	}
	if changed("color") {
		cfg.Output.Color = flags.Color
	}
	if changed("progress") {
		cfg.Output.Progress = flags.Progress
	}

	// Logging
	if changed("log-file") {
		cfg.Logging.File = flags.LogFile
		cfg.Logging.Enabled = flags.LogFile != ""
	}
	if changed("log-format") {
		cfg.Logging.Format = flags.LogFormat
	}
	if changed("log-level") {
		cfg.Logging.Level = flags.LogLevel
	}

	// Disable progress in quiet mode
	if globals.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// createLogger builds the logger selected by configuration.
// Verbose mode adds a debug console logger on stderr when no log file is configured.
func createLogger(cfg *config.Config, globals *GlobalFlags, stderr io.Writer) (logging.Logger, error) {
	level := logging.ParseLevel(cfg.Logging.Level)

	switch {
	case cfg.Logging.Enabled && cfg.Logging.File != "":
		logger, err := logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       cfg.Logging.File,
			Format:     logging.Format(cfg.Logging.Format),
			Level:      level,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return logger, nil

	case globals.Verbose:
		return logging.NewConsoleLogger(stderr, logging.DebugLevel), nil

	case cfg.Logging.Enabled:
		return logging.New(stderr, logging.Format(cfg.Logging.Format), level), nil

	default:
		return logging.NewNullLogger(), nil
	}
}
