package output

import (
	"fmt"
	"io"
	"os"

	"github.com/sdejongh/dircmp/pkg/models"
	"golang.org/x/term"
)

// Formatter defines the interface for rendering a comparison report
// Implementations include the two-column table and JSON formatters
type Formatter interface {
	// Format writes the report to w
	Format(w io.Writer, report *models.CompareReport) error

	// Name returns the formatter name
	Name() string
}

// Options configures formatter construction
type Options struct {
	// Color enables coloured action glyphs (table only)
	Color bool

	// Summary appends per-action counts below the table
	Summary bool
}

// NewFormatter creates the formatter registered under format
func NewFormatter(format string, opts Options) (Formatter, error) {
	switch format {
	case "", "table":
		return NewTableFormatter(opts), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use: table, json)", format)
	}
}

// IsTerminal reports whether w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// ResolveColor decides whether colour is used for the given mode (auto, always, never)
func ResolveColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTerminal(w)
	}
}
