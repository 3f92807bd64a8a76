package diff

import (
	"crypto/sha256"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/snapshot"
)

// newSnapshot builds a snapshot whose files hold the given contents
func newSnapshot(root string, files map[string]string) *snapshot.Snapshot {
	snap := &snapshot.Snapshot{
		Root:  root,
		Name:  filepath.Base(root),
		Files: make(map[string]*models.FileRecord),
	}
	for name, content := range files {
		sum := sha256.Sum256([]byte(content))
		snap.Files[name] = &models.FileRecord{
			Name: name,
			Path: filepath.Join(root, name),
			Size: int64(len(content)),
			Hash: sum[:],
		}
	}
	return snap
}

type row struct {
	action models.ActionKind
	left   string
	right  string
}

func rows(entries []models.DiffEntry) []row {
	out := make([]row, 0, len(entries))
	for _, e := range entries {
		r := row{action: e.Action}
		if e.Left != nil {
			r.left = e.Left.Name
		}
		if e.Right != nil {
			r.right = e.Right.Name
		}
		out = append(out, r)
	}
	return out
}

func assertRows(t *testing.T, entries []models.DiffEntry, want []row) {
	t.Helper()
	got := rows(entries)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("entries = %+v\nwant      %+v", got, want)
	}
	for _, e := range entries {
		if !e.Valid() {
			t.Errorf("entry %+v has sides inconsistent with its action", e)
		}
	}
}

func TestDiffFiles_Identity(t *testing.T) {
	files := map[string]string{"a.txt": "hello", "b.txt": "bye", "c.bin": ""}
	left := newSnapshot("/l", files)
	right := newSnapshot("/r", files)

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionUnchanged, "a.txt", "a.txt"},
		{models.ActionUnchanged, "b.txt", "b.txt"},
		{models.ActionUnchanged, "c.bin", "c.bin"},
	})
}

func TestDiffFiles_PureRename(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a.txt": "hello"})
	right := newSnapshot("/r", map[string]string{"b.txt": "hello"})

	entries := DiffFiles(left, right)
	assertRows(t, entries, []row{
		{models.ActionRenamed, "a.txt", "b.txt"},
	})

	if entries[0].Left.Path != "/l/a.txt" || entries[0].Right.Path != "/r/b.txt" {
		t.Errorf("rename paths = %s -> %s", entries[0].Left.Path, entries[0].Right.Path)
	}
}

func TestDiffFiles_ModifiedSameName(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a.txt": "hello"})
	right := newSnapshot("/r", map[string]string{"a.txt": "world"})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionModified, "a.txt", "a.txt"},
	})
}

func TestDiffFiles_AdditionAndRemoval(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a.txt": "hello", "old.txt": "bye"})
	right := newSnapshot("/r", map[string]string{"a.txt": "hello", "new.txt": "new"})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionUnchanged, "a.txt", "a.txt"},
		{models.ActionAdded, "", "new.txt"},
		{models.ActionRemoved, "old.txt", ""},
	})
}

func TestDiffFiles_SameHashDifferentSizeIsModified(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a.txt": "hello"})
	right := newSnapshot("/r", map[string]string{"a.txt": "hello"})
	right.Files["a.txt"].Size = 999

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionModified, "a.txt", "a.txt"},
	})
}

func TestDiffFiles_CollisionWithSizeMismatch(t *testing.T) {
	// A colliding hasher: both files get the same digest despite different sizes
	collision := []byte{0xca, 0xfe}
	left := &snapshot.Snapshot{Root: "/l", Files: map[string]*models.FileRecord{
		"a.txt": {Name: "a.txt", Path: "/l/a.txt", Size: 5, Hash: collision},
	}}
	right := &snapshot.Snapshot{Root: "/r", Files: map[string]*models.FileRecord{
		"b.txt": {Name: "b.txt", Path: "/r/b.txt", Size: 6, Hash: collision},
	}}

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionAdded, "", "b.txt"},
		{models.ActionRemoved, "a.txt", ""},
	})
}

func TestDiffFiles_CollisionPoolEntryStaysAvailable(t *testing.T) {
	// The size-mismatched candidate must not consume the pooled entry
	collision := []byte{0x01}
	left := &snapshot.Snapshot{Root: "/l", Files: map[string]*models.FileRecord{
		"a.txt": {Name: "a.txt", Path: "/l/a.txt", Size: 5, Hash: collision},
	}}
	right := &snapshot.Snapshot{Root: "/r", Files: map[string]*models.FileRecord{
		"b.txt": {Name: "b.txt", Path: "/r/b.txt", Size: 6, Hash: collision},
		"c.txt": {Name: "c.txt", Path: "/r/c.txt", Size: 5, Hash: collision},
	}}

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionAdded, "", "b.txt"},
		{models.ActionRenamed, "a.txt", "c.txt"},
	})
}

func TestDiffFiles_DuplicateContentBothRemoved(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"dup1.txt": "x", "dup2.txt": "x"})
	right := newSnapshot("/r", map[string]string{})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionRemoved, "dup1.txt", ""},
		{models.ActionRemoved, "dup2.txt", ""},
	})
}

func TestDiffFiles_DuplicateContentOnlyOneRename(t *testing.T) {
	// Only the lexically last duplicate stays eligible for a rename
	left := newSnapshot("/l", map[string]string{"dup1.txt": "x", "dup2.txt": "x"})
	right := newSnapshot("/r", map[string]string{"moved.txt": "x"})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionRenamed, "dup2.txt", "moved.txt"},
		{models.ActionRemoved, "dup1.txt", ""},
	})
}

func TestDiffFiles_RightDuplicatesOneRename(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"orig.txt": "same"})
	right := newSnapshot("/r", map[string]string{"copy1.txt": "same", "copy2.txt": "same"})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionRenamed, "orig.txt", "copy1.txt"},
		{models.ActionAdded, "", "copy2.txt"},
	})
}

func TestDiffFiles_NameMatchTakesPrecedenceOverContent(t *testing.T) {
	// a.txt changed and b.txt now holds a.txt's old content: no rename is reported
	left := newSnapshot("/l", map[string]string{"a.txt": "one", "b.txt": "two"})
	right := newSnapshot("/r", map[string]string{"a.txt": "three", "b.txt": "one"})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionModified, "a.txt", "a.txt"},
		{models.ActionModified, "b.txt", "b.txt"},
	})
}

func TestDiffFiles_PassOrdering(t *testing.T) {
	left := newSnapshot("/l", map[string]string{
		"z-same.txt": "z",
		"a-same.txt": "a",
		"m-gone.txt": "gone",
		"b-gone.txt": "gone-too",
		"k-old.txt":  "renamed",
	})
	right := newSnapshot("/r", map[string]string{
		"z-same.txt": "z",
		"a-same.txt": "a2",
		"y-new.txt":  "fresh",
		"c-new.txt":  "renamed",
	})

	assertRows(t, DiffFiles(left, right), []row{
		{models.ActionModified, "a-same.txt", "a-same.txt"},
		{models.ActionUnchanged, "z-same.txt", "z-same.txt"},
		{models.ActionRenamed, "k-old.txt", "c-new.txt"},
		{models.ActionAdded, "", "y-new.txt"},
		{models.ActionRemoved, "b-gone.txt", ""},
		{models.ActionRemoved, "m-gone.txt", ""},
	})
}

func TestDiffFiles_Deterministic(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"})
	right := newSnapshot("/r", map[string]string{"a": "1", "x": "2", "y": "3", "f": "6", "g": "7"})

	first := DiffFiles(left, right)
	for i := 0; i < 20; i++ {
		if again := DiffFiles(left, right); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from the first run", i)
		}
	}
}

func TestDiffFiles_SnapshotsUntouched(t *testing.T) {
	left := newSnapshot("/l", map[string]string{"a.txt": "hello", "old.txt": "bye"})
	right := newSnapshot("/r", map[string]string{"a.txt": "hello", "new.txt": "bye"})

	DiffFiles(left, right)

	if len(left.Files) != 2 || len(right.Files) != 2 {
		t.Errorf("snapshots were modified: left=%d right=%d", len(left.Files), len(right.Files))
	}
	if _, ok := right.Files["a.txt"]; !ok {
		t.Error("matched name was removed from the right snapshot")
	}
}

func TestDiffFiles_Empty(t *testing.T) {
	left := newSnapshot("/l", nil)
	right := newSnapshot("/r", nil)

	if entries := DiffFiles(left, right); len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
