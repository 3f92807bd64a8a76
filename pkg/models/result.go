package models

// DiffResult is the ordered outcome of comparing two directories
type DiffResult struct {
	// LeftName and RightName are the display names of the two roots
	LeftName  string `json:"left_name"`
	RightName string `json:"right_name"`

	// LeftPath and RightPath are the absolute root paths
	LeftPath  string `json:"left_path"`
	RightPath string `json:"right_path"`

	// Files holds file entries in emission order
	Files []DiffEntry `json:"files"`

	// Directories holds subdirectory entries in emission order
	Directories []DiffEntry `json:"directories"`
}

// Summary counts entries per action
type Summary struct {
	Unchanged int `json:"unchanged"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Modified  int `json:"modified"`
	Renamed   int `json:"renamed"`
}

// Count returns the number of entries for the given action
func (s Summary) Count(action ActionKind) int {
	switch action {
	case ActionUnchanged:
		return s.Unchanged
	case ActionAdded:
		return s.Added
	case ActionRemoved:
		return s.Removed
	case ActionModified:
		return s.Modified
	case ActionRenamed:
		return s.Renamed
	default:
		return 0
	}
}

// Total returns the number of entries counted
func (s Summary) Total() int {
	return s.Unchanged + s.Added + s.Removed + s.Modified + s.Renamed
}

func (s *Summary) add(action ActionKind) {
	switch action {
	case ActionUnchanged:
		s.Unchanged++
	case ActionAdded:
		s.Added++
	case ActionRemoved:
		s.Removed++
	case ActionModified:
		s.Modified++
	case ActionRenamed:
		s.Renamed++
	}
}

// FileSummary counts file entries per action
func (r *DiffResult) FileSummary() Summary {
	var s Summary
	for _, e := range r.Files {
		s.add(e.Action)
	}
	return s
}

// DirectorySummary counts directory entries per action
func (r *DiffResult) DirectorySummary() Summary {
	var s Summary
	for _, e := range r.Directories {
		s.add(e.Action)
	}
	return s
}

// Differences returns every entry that is not unchanged, files first
func (r *DiffResult) Differences() []DiffEntry {
	var diffs []DiffEntry
	for _, e := range r.Files {
		if e.Action != ActionUnchanged {
			diffs = append(diffs, e)
		}
	}
	for _, e := range r.Directories {
		if e.Action != ActionUnchanged {
			diffs = append(diffs, e)
		}
	}
	return diffs
}

// HasDifferences reports whether any entry is not unchanged
func (r *DiffResult) HasDifferences() bool {
	return len(r.Differences()) > 0
}
