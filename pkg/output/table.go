package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/sdejongh/dircmp/pkg/models"
)

// glyphs maps each action to its table prefix
var glyphs = map[models.ActionKind]string{
	models.ActionUnchanged: " ",
	models.ActionAdded:     "+",
	models.ActionRemoved:   "-",
	models.ActionModified:  "*",
	models.ActionRenamed:   "~",
}

// Glyph returns the table prefix for an action
func Glyph(action models.ActionKind) string {
	if g, ok := glyphs[action]; ok {
		return g
	}
	return "?"
}

// TableFormatter renders a report as a two-column table, left root against right root
type TableFormatter struct {
	summary bool
	colors  map[models.ActionKind]*color.Color
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(opts Options) *TableFormatter {
	colors := map[models.ActionKind]*color.Color{
		models.ActionAdded:    color.New(color.FgGreen),
		models.ActionRemoved:  color.New(color.FgRed),
		models.ActionModified: color.New(color.FgYellow),
		models.ActionRenamed:  color.New(color.FgCyan),
	}
	for _, c := range colors {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &TableFormatter{
		summary: opts.Summary,
		colors:  colors,
	}
}

// cell is one side of a table row
type cell struct {
	action  models.ActionKind
	text    string // name with directory suffix
	present bool
}

// plain returns the uncoloured cell content
func (c cell) plain() string {
	if !c.present {
		return ""
	}
	return Glyph(c.action) + " " + c.text
}

type row struct {
	left, right cell
}

// buildRows lays out file entries followed by directory entries
func buildRows(result *models.DiffResult) []row {
	rows := make([]row, 0, len(result.Files)+len(result.Directories))
	for _, entry := range result.Files {
		rows = append(rows, newRow(entry, ""))
	}
	for _, entry := range result.Directories {
		rows = append(rows, newRow(entry, "/"))
	}
	return rows
}

func newRow(entry models.DiffEntry, suffix string) row {
	var r row
	if entry.Left != nil {
		r.left = cell{action: entry.Action, text: entry.Left.Name + suffix, present: true}
	}
	if entry.Right != nil {
		r.right = cell{action: entry.Action, text: entry.Right.Name + suffix, present: true}
	}
	return r
}

// Format writes the table: a header with both root names, a separator, then one row per entry
func (f *TableFormatter) Format(w io.Writer, report *models.CompareReport) error {
	result := report.Result
	rows := buildRows(result)

	leftWidth := runewidth.StringWidth(result.LeftName)
	rightWidth := runewidth.StringWidth(result.RightName)
	for _, r := range rows {
		leftWidth = max(leftWidth, runewidth.StringWidth(r.left.plain()))
		rightWidth = max(rightWidth, runewidth.StringWidth(r.right.plain()))
	}

	var b strings.Builder
	writeLine(&b, pad(result.LeftName, result.LeftName, leftWidth), pad(result.RightName, result.RightName, rightWidth))
	writeLine(&b, strings.Repeat("-", leftWidth), strings.Repeat("-", rightWidth))

	for _, r := range rows {
		writeLine(&b,
			pad(f.render(r.left), r.left.plain(), leftWidth),
			pad(f.render(r.right), r.right.plain(), rightWidth))
	}

	if f.summary {
		f.writeSummary(&b, report)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// render returns the cell content with a coloured glyph
func (f *TableFormatter) render(c cell) string {
	if !c.present {
		return ""
	}
	glyph := Glyph(c.action)
	if col, ok := f.colors[c.action]; ok {
		glyph = col.Sprint(glyph)
	}
	return glyph + " " + c.text
}

// pad right-fills rendered to width, measuring the uncoloured text
func pad(rendered, plain string, width int) string {
	if n := width - runewidth.StringWidth(plain); n > 0 {
		return rendered + strings.Repeat(" ", n)
	}
	return rendered
}

func writeLine(b *strings.Builder, left, right string) {
	b.WriteString(left)
	b.WriteString(" | ")
	b.WriteString(right)
	b.WriteString("\n")
}

func (f *TableFormatter) writeSummary(b *strings.Builder, report *models.CompareReport) {
	fmt.Fprintf(b, "\nSummary:\n")
	fmt.Fprintf(b, "  Files:        %s\n", formatSummary(report.Result.FileSummary()))
	fmt.Fprintf(b, "  Directories:  %s\n", formatSummary(report.Result.DirectorySummary()))
	fmt.Fprintf(b, "  Hashed:       %s (%s)\n", humanize.Bytes(uint64(report.BytesHashed)), report.Hash)
	if len(report.Warnings) > 0 {
		fmt.Fprintf(b, "  Skipped:      %d unreadable\n", len(report.Warnings))
	}
	fmt.Fprintf(b, "  Duration:     %s\n", report.Duration.Round(time.Millisecond))
}

// formatSummary renders counts as "1 unchanged, 2 added, ..."
func formatSummary(s models.Summary) string {
	parts := make([]string, 0, len(models.Actions))
	for _, action := range models.Actions {
		parts = append(parts, fmt.Sprintf("%d %s", s.Count(action), action))
	}
	return strings.Join(parts, ", ")
}

// Name returns the formatter name
func (f *TableFormatter) Name() string {
	return "table"
}
