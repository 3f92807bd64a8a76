package diff

import (
	"bytes"
	"sort"

	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/snapshot"
)

// DiffFiles classifies the file records of two snapshots.
//
// Files present on both sides under the same name are unchanged or modified.
// Left-only files are pooled by content key; a right-only file whose content
// key and size match a pooled file is a rename of it. Right-only files left
// unmatched are added and pooled files left unmatched are removed.
//
// When several left-only files share the same content only the lexically last
// one stays in the pool; the others can only ever be reported as removed.
//
// Entries are emitted pass by pass, each pass in lexical name order.
// Neither snapshot is modified.
func DiffFiles(left, right *snapshot.Snapshot) []models.DiffEntry {
	entries := make([]models.DiffEntry, 0, len(left.Files)+len(right.Files))

	// Working copy of the right side, consumed as names are matched
	remaining := make(map[string]*models.FileRecord, len(right.Files))
	for name, record := range right.Files {
		remaining[name] = record
	}

	pool := make(map[models.ContentKey]*models.FileRecord)
	var displaced []*models.FileRecord

	// Pass 1: match by name
	for _, name := range left.FileNames() {
		l := left.Files[name]

		r, ok := remaining[name]
		if !ok {
			key := l.Key()
			if prev, exists := pool[key]; exists {
				displaced = append(displaced, prev)
			}
			pool[key] = l
			continue
		}

		delete(remaining, name)

		action := models.ActionModified
		if bytes.Equal(l.Hash, r.Hash) && l.Size == r.Size {
			action = models.ActionUnchanged
		}
		entries = append(entries, models.DiffEntry{
			Action: action,
			Left:   models.FileRef(l),
			Right:  models.FileRef(r),
		})
	}

	// Pass 2: match the rest of the right side by content
	for _, name := range sortedNames(remaining) {
		r := remaining[name]
		key := r.Key()

		// A digest match with a different size is treated as a false match
		if l, ok := pool[key]; ok && l.Size == r.Size {
			delete(pool, key)
			entries = append(entries, models.DiffEntry{
				Action: models.ActionRenamed,
				Left:   models.FileRef(l),
				Right:  models.FileRef(r),
			})
			continue
		}

		entries = append(entries, models.DiffEntry{
			Action: models.ActionAdded,
			Right:  models.FileRef(r),
		})
	}

	// Pass 3: whatever is still pooled, plus displaced duplicates, was removed
	removed := displaced
	for _, l := range pool {
		removed = append(removed, l)
	}
	sort.Slice(removed, func(i, j int) bool {
		return removed[i].Name < removed[j].Name
	})
	for _, l := range removed {
		entries = append(entries, models.DiffEntry{
			Action: models.ActionRemoved,
			Left:   models.FileRef(l),
		})
	}

	return entries
}

func sortedNames(files map[string]*models.FileRecord) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
