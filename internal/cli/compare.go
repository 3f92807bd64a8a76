package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sdejongh/dircmp/pkg/diff"
	"github.com/sdejongh/dircmp/pkg/hasher"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/output"
	"github.com/sdejongh/dircmp/pkg/snapshot"
	"github.com/sdejongh/dircmp/pkg/storage"
	"github.com/spf13/cobra"
)

func runCompare(cmd *cobra.Command, args []string, globals *GlobalFlags, flags *CompareFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	// Validate flags
	if err := validateCompareFlags(flags); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig(globals)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	if err := applyFlagsToConfig(cmd, cfg, globals, flags); err != nil {
		return err
	}

	logger, err := createLogger(cfg, globals, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	logger.Debug(ctx, "configuration loaded", logging.Fields{
		"hash":      string(cfg.Compare.Hash),
		"dir_match": string(cfg.Compare.DirectoryMatch),
		"format":    cfg.Output.Format,
		"log_level": logging.LevelString(logging.ParseLevel(cfg.Logging.Level)),
	})

	h, err := hasher.New(cfg.Compare.Hash, cfg.Performance.BufferSize)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cfg.Output.Format, output.Options{
		Color:   output.ResolveColor(cfg.Output.Color, stdout),
		Summary: globals.Verbose,
	})
	if err != nil {
		return err
	}

	// Left root first: a failure aborts before the right root is touched
	left, err := storage.NewLocal(args[0])
	if err != nil {
		return err
	}
	defer left.Close()

	right, err := storage.NewLocal(args[1])
	if err != nil {
		return err
	}
	defer right.Close()

	scanner := snapshot.NewScanner(h, logger)
	scanner.SetExcludePatterns(cfg.Exclude)

	var bar *output.ProgressBar
	if cfg.Output.Progress && output.IsTerminal(stderr) {
		bar = output.NewProgressBar(stderr)
		scanner.SetProgressCallback(bar.Update)
	}

	engine := diff.NewEngine(left, right, scanner, logger, h.Algorithm(), diff.Options{
		DirectoryMatch: cfg.Compare.DirectoryMatch,
	})

	report, err := engine.Run(ctx)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &ExitCodeError{
				Code: models.StatusCancelled.ExitCode(),
				Err:  fmt.Errorf("comparison cancelled: %w", err),
			}
		}
		return err
	}

	if err := formatter.Format(stdout, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if !cfg.Output.Quiet {
		printWarnings(stderr, report.Warnings, output.ResolveColor(cfg.Output.Color, stderr))
	}

	// Write differences report if requested
	if flags.DiffReport != "" {
		if err := output.WriteDifferencesReport(report, flags.DiffReport, flags.DiffFormat); err != nil {
			return fmt.Errorf("failed to write differences report: %w", err)
		}
		logger.Debug(ctx, "differences report written", logging.Fields{"path": flags.DiffReport})
	}

	// Exit with appropriate code
	if code := report.Status.ExitCode(); code != 0 {
		return &ExitCodeError{Code: code}
	}
	return nil
}

// printWarnings lists entries that were skipped while scanning
func printWarnings(w io.Writer, warnings []models.ScanWarning, useColor bool) {
	label := color.New(color.FgYellow)
	if useColor {
		label.EnableColor()
	} else {
		label.DisableColor()
	}

	for _, warning := range warnings {
		label.Fprint(w, "Warning:")
		fmt.Fprintf(w, " %s: skipped %s\n", warning.Side, warning.Error)
	}
}
