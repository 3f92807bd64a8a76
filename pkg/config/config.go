package config

import (
	"github.com/sdejongh/dircmp/pkg/hasher"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/snapshot"
)

// Config represents the application configuration
type Config struct {
	Compare     CompareConfig     `yaml:"compare"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Exclude     []string          `yaml:"exclude"`
}

// CompareConfig holds comparison-related settings
type CompareConfig struct {
	Hash           models.HashAlgorithm  `yaml:"hash"`
	DirectoryMatch models.DirectoryMatch `yaml:"directory_match"`
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	BufferSize int `yaml:"buffer_size"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "table" or "json"
	Color    string `yaml:"color"`    // "auto", "always" or "never"
	Progress bool   `yaml:"progress"` // Show hashing progress bar
	Quiet    bool   `yaml:"quiet"`    // Suppress warnings on stderr
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Format  string `yaml:"format"` // "json" or "text"
	Level   string `yaml:"level"`  // "debug", "info", "warn", "error"
	File    string `yaml:"file"`   // Log file path (empty = stderr)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Hash:           models.HashSHA256,
			DirectoryMatch: models.MatchName,
		},
		Performance: PerformanceConfig{
			BufferSize: hasher.DefaultBufferSize,
		},
		Output: OutputConfig{
			Format:   "table",
			Color:    "auto",
			Progress: false,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Format:  "json",
			Level:   "info",
			File:    "",
		},
		Exclude: []string{},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := hasher.New(c.Compare.Hash, c.Performance.BufferSize); err != nil || c.Compare.Hash == "" {
		return &models.ValidationError{
			Field:   "compare.hash",
			Message: "must be 'sha256', 'md5', or 'xxhash'",
			Err:     models.ErrHashingUnavailable,
		}
	}

	if c.Compare.DirectoryMatch != models.MatchName && c.Compare.DirectoryMatch != models.MatchPath {
		return &models.ValidationError{
			Field:   "compare.directory_match",
			Message: "must be 'name' or 'path'",
		}
	}

	if c.Performance.BufferSize < 1024 {
		return &models.ValidationError{
			Field:   "performance.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	validFormats := map[string]bool{"table": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'table' or 'json'",
		}
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[c.Output.Color] {
		return &models.ValidationError{
			Field:   "output.color",
			Message: "must be 'auto', 'always', or 'never'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if err := snapshot.ValidatePatterns(c.Exclude); err != nil {
		return &models.ValidationError{
			Field:   "exclude",
			Message: err.Error(),
		}
	}

	return nil
}
