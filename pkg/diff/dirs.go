package diff

import (
	"sort"

	"github.com/sdejongh/dircmp/pkg/models"
)

// DiffDirectories classifies the subdirectories of two snapshots.
// A left subdirectory is unchanged if the right side holds one with the same
// identity, otherwise removed; right subdirectories never matched are added.
// With MatchName the identity is the name relative to each root; with
// MatchPath it is the full path.
func DiffDirectories(left, right []models.DirRecord, match models.DirectoryMatch) []models.DiffEntry {
	identity := func(d models.DirRecord) string {
		if match == models.MatchPath {
			return d.Path
		}
		return d.Name
	}

	remaining := make(map[string]models.DirRecord, len(right))
	for _, d := range right {
		remaining[identity(d)] = d
	}

	entries := make([]models.DiffEntry, 0, len(left)+len(right))

	for _, l := range sortedDirs(left) {
		if r, ok := remaining[identity(l)]; ok {
			delete(remaining, identity(l))
			entries = append(entries, models.DiffEntry{
				Action: models.ActionUnchanged,
				Left:   models.DirRef(l),
				Right:  models.DirRef(r),
			})
			continue
		}

		entries = append(entries, models.DiffEntry{
			Action: models.ActionRemoved,
			Left:   models.DirRef(l),
		})
	}

	added := make([]models.DirRecord, 0, len(remaining))
	for _, r := range remaining {
		added = append(added, r)
	}
	for _, r := range sortedDirs(added) {
		entries = append(entries, models.DiffEntry{
			Action: models.ActionAdded,
			Right:  models.DirRef(r),
		})
	}

	return entries
}

func sortedDirs(dirs []models.DirRecord) []models.DirRecord {
	sorted := make([]models.DirRecord, len(dirs))
	copy(sorted, dirs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Path < sorted[j].Path
	})
	return sorted
}
