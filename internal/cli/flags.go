package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds global flag values
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

// AddGlobalFlags adds global flags to the root command
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVar(
		&flags.ConfigFile,
		"config",
		"",
		"config file (default is $HOME/.config/dircmp/config.yaml)",
	)
	cmd.PersistentFlags().BoolVarP(
		&flags.Verbose,
		"verbose",
		"v",
		false,
		"verbose output (debug log on stderr, summary counts)",
	)
	cmd.PersistentFlags().BoolVarP(
		&flags.Quiet,
		"quiet",
		"q",
		false,
		"suppress warnings and progress",
	)
}

// CompareFlags holds flag values for the compare command
type CompareFlags struct {
	Hash       string
	DirMatch   string
	Exclude    []string
	Output     string
	Color      string
	Progress   bool
	DiffReport string
	DiffFormat string
	LogFile    string
	LogFormat  string
	LogLevel   string
}

// addCompareFlags registers the compare flags on cmd
func addCompareFlags(cmd *cobra.Command, flags *CompareFlags) {
	cmd.Flags().StringVar(&flags.Hash, "hash", "sha256", "content hash: sha256, md5, xxhash")
	cmd.Flags().StringVar(&flags.DirMatch, "dir-match", "name", "subdirectory matching: name, path")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", []string{}, "glob patterns to exclude (trailing / matches directories only)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "table", "output format: table, json")
	cmd.Flags().StringVar(&flags.Color, "color", "auto", "colour action glyphs: auto, always, never")
	cmd.Flags().BoolVar(&flags.Progress, "progress", false, "show hashing progress on stderr")
	cmd.Flags().StringVar(&flags.DiffReport, "diff-report", "", "write differences report to file")
	cmd.Flags().StringVar(&flags.DiffFormat, "diff-format", "human", "differences report format: human, json")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write logs to file")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "json", "log format: json, text")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
}
