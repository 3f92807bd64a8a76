package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sdejongh/dircmp/pkg/models"
)

// WriteDifferencesReport writes the differences report to a file.
// Format can be "human" or "json". When nothing differs no report is written
// and a report left at path by an earlier run is removed.
func WriteDifferencesReport(report *models.CompareReport, path string, format string) error {
	if !report.Result.HasDifferences() {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to remove stale differences file: %w", err)
		}
		return nil
	}
	differences := report.Result.Differences()

	var buf bytes.Buffer
	var err error
	switch format {
	case "json":
		err = writeDifferencesJSON(report, differences, &buf)
	default: // "human"
		err = writeDifferencesHuman(report, differences, &buf)
	}
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create differences file: %w", err)
	}
	if _, err := buf.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write differences file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write differences file: %w", err)
	}
	return nil
}

// writeDifferencesHuman writes differences in human-readable format
func writeDifferencesHuman(report *models.CompareReport, differences []models.DiffEntry, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Differences Report\n")
	fmt.Fprintf(&b, "==================\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "Run: %s\n", report.ID)
	fmt.Fprintf(&b, "Left: %s\n", report.LeftPath)
	fmt.Fprintf(&b, "Right: %s\n", report.RightPath)
	fmt.Fprintf(&b, "Hash: %s\n\n", report.Hash)

	fmt.Fprintf(&b, "Total Differences: %d\n\n", len(differences))

	// Group by action
	byAction := make(map[models.ActionKind][]models.DiffEntry)
	for _, diff := range differences {
		byAction[diff.Action] = append(byAction[diff.Action], diff)
	}

	actionOrder := []models.ActionKind{
		models.ActionRemoved,
		models.ActionAdded,
		models.ActionModified,
		models.ActionRenamed,
	}

	actionLabels := map[models.ActionKind]string{
		models.ActionRemoved:  "Only in Left",
		models.ActionAdded:    "Only in Right",
		models.ActionModified: "Modified",
		models.ActionRenamed:  "Renamed",
	}

	for _, action := range actionOrder {
		diffs := byAction[action]
		if len(diffs) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%d entries)", actionLabels[action], len(diffs))
		fmt.Fprintf(&b, "%s\n", label)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(label)))

		for _, diff := range diffs {
			switch {
			case diff.Left != nil && diff.Right != nil && diff.Left.Name != diff.Right.Name:
				fmt.Fprintf(&b, "  %s -> %s\n", displayName(diff.Left), displayName(diff.Right))
			default:
				fmt.Fprintf(&b, "  %s\n", displayName(entrySide(diff)))
			}

			if diff.Left != nil && !diff.Left.IsDir {
				fmt.Fprintf(&b, "    Left:   %s\n", describeFile(diff.Left))
			}
			if diff.Right != nil && !diff.Right.IsDir {
				fmt.Fprintf(&b, "    Right:  %s\n", describeFile(diff.Right))
			}

			fmt.Fprintf(&b, "\n")
		}

		fmt.Fprintf(&b, "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeDifferencesJSON writes differences in JSON format
func writeDifferencesJSON(report *models.CompareReport, differences []models.DiffEntry, w io.Writer) error {
	output := struct {
		Generated   string             `json:"generated"`
		ID          string             `json:"id"`
		LeftPath    string             `json:"left_path"`
		RightPath   string             `json:"right_path"`
		Hash        string             `json:"hash"`
		TotalCount  int                `json:"total_count"`
		Differences []models.DiffEntry `json:"differences"`
	}{
		Generated:   time.Now().Format(time.RFC3339),
		ID:          report.ID,
		LeftPath:    report.LeftPath,
		RightPath:   report.RightPath,
		Hash:        string(report.Hash),
		TotalCount:  len(differences),
		Differences: differences,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func entrySide(diff models.DiffEntry) *models.EntryRef {
	if diff.Right != nil {
		return diff.Right
	}
	return diff.Left
}

func displayName(ref *models.EntryRef) string {
	if ref.IsDir {
		return ref.Name + "/"
	}
	return ref.Name
}

// describeFile renders size and a shortened hash
func describeFile(ref *models.EntryRef) string {
	hash := ref.Hash
	if len(hash) > 12 {
		hash = hash[:12]
	}
	return fmt.Sprintf("%s, hash: %s", humanize.Bytes(uint64(ref.Size)), hash)
}
