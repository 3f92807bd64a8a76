package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sdejongh/dircmp/pkg/hasher"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/spf13/cobra"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// resolvedVersion prefers the ldflags version and falls back to the module
// version recorded by `go install`
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the version, build details and supported hash algorithms.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, resolvedVersion())
				return
			}

			var hashes []string
			for _, algorithm := range []models.HashAlgorithm{models.HashSHA256, models.HashMD5, models.HashXXHash} {
				if h, err := hasher.New(algorithm, hasher.DefaultBufferSize); err == nil {
					hashes = append(hashes, fmt.Sprintf("%s (%d-bit)", h.Algorithm(), h.Size()*8))
				}
			}

			fmt.Fprintf(out, "dircmp %s\n", resolvedVersion())
			fmt.Fprintf(out, "  Commit:     %s\n", Commit)
			fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "  Hashes:     %s\n", strings.Join(hashes, ", "))
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")

	return cmd
}
