package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/sdejongh/dircmp/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct{}

// JSONReportData represents the complete report
type JSONReportData struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	Hash        string             `json:"hash"`
	Left        JSONRootData       `json:"left"`
	Right       JSONRootData       `json:"right"`
	Duration    string             `json:"duration"`
	DurationMs  int64              `json:"duration_ms"`
	BytesHashed int64              `json:"bytes_hashed"`
	Files       []models.DiffEntry `json:"files"`
	Directories []models.DiffEntry `json:"directories"`
	Summary     JSONSummaryData    `json:"summary"`
	Warnings    []JSONWarningData  `json:"warnings,omitempty"`
}

// JSONRootData identifies one compared root
type JSONRootData struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// JSONSummaryData holds per-action counts
type JSONSummaryData struct {
	Files       models.Summary `json:"files"`
	Directories models.Summary `json:"directories"`
}

// JSONWarningData represents a skipped entry
type JSONWarningData struct {
	Side  string `json:"side"`
	Path  string `json:"path"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the report as a single indented JSON document
func (f *JSONFormatter) Format(w io.Writer, report *models.CompareReport) error {
	result := report.Result

	var warnings []JSONWarningData
	for _, warning := range report.Warnings {
		warnings = append(warnings, JSONWarningData{
			Side:  string(warning.Side),
			Path:  warning.Path,
			Error: warning.Error,
		})
	}

	data := JSONReportData{
		ID:          report.ID,
		Status:      string(report.Status),
		Hash:        string(report.Hash),
		Left:        JSONRootData{Name: result.LeftName, Path: result.LeftPath},
		Right:       JSONRootData{Name: result.RightName, Path: result.RightPath},
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		BytesHashed: report.BytesHashed,
		Files:       nonNil(result.Files),
		Directories: nonNil(result.Directories),
		Summary: JSONSummaryData{
			Files:       result.FileSummary(),
			Directories: result.DirectorySummary(),
		},
		Warnings: warnings,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// nonNil keeps empty entry lists encoded as [] rather than null
func nonNil(entries []models.DiffEntry) []models.DiffEntry {
	if entries == nil {
		return []models.DiffEntry{}
	}
	return entries
}
