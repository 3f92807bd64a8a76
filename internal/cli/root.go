package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the dircmp command tree.
// The root command itself compares two directories.
func NewRootCommand() *cobra.Command {
	globals := &GlobalFlags{}
	flags := &CompareFlags{}

	rootCmd := &cobra.Command{
		Use:   "dircmp <left> <right>",
		Short: "Compare the contents of two directories",
		Long: `dircmp compares the immediate contents of two directories and reports
each entry as unchanged, added, removed, modified or renamed. Renames are
detected by content hash, so a file moved to a new name is paired with its
original rather than reported as one removal and one addition.

Legend:  (space) unchanged   + added   - removed   * modified   ~ renamed

Exit status: 0 success, 1 error, 2 some files could not be read, 3 cancelled`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", resolvedVersion(), Commit, BuildDate),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, globals, flags)
		},
	}

	// Add global flags
	AddGlobalFlags(rootCmd, globals)
	addCompareFlags(rootCmd, flags)

	// Add commands
	rootCmd.AddCommand(NewConfigCommand(globals))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the command tree with the given context and arguments
func Execute(ctx context.Context, args []string) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
