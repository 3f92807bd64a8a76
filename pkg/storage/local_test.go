package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/spf13/afero"
)

// TestNewLocal tests the Local backend constructor
func TestNewLocal(t *testing.T) {
	t.Run("ValidDirectory", func(t *testing.T) {
		tempDir := t.TempDir()

		local, err := NewLocal(tempDir)
		if err != nil {
			t.Fatalf("NewLocal() error = %v", err)
		}
		defer local.Close()

		if local.Root() != tempDir {
			t.Errorf("Root() = %s, want %s", local.Root(), tempDir)
		}
	})

	t.Run("NonExistentPath", func(t *testing.T) {
		_, err := NewLocal("/nonexistent/path/that/does/not/exist")
		if !errors.Is(err, models.ErrNotADirectory) {
			t.Errorf("NewLocal() error = %v, want ErrNotADirectory", err)
		}
	})

	t.Run("FileNotDirectory", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(tempFile, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		_, err := NewLocal(tempFile)
		if !errors.Is(err, models.ErrNotADirectory) {
			t.Errorf("NewLocal() error = %v, want ErrNotADirectory", err)
		}
	})

	t.Run("RelativePath", func(t *testing.T) {
		tempDir := t.TempDir()

		oldWd, _ := os.Getwd()
		os.Chdir(filepath.Dir(tempDir))
		defer os.Chdir(oldWd)

		local, err := NewLocal(filepath.Base(tempDir))
		if err != nil {
			t.Fatalf("NewLocal() should work with relative path: %v", err)
		}
		if !filepath.IsAbs(local.Root()) {
			t.Errorf("Root() should be absolute, got %s", local.Root())
		}
	})
}

// TestLocalList tests the List method
func TestLocalList(t *testing.T) {
	tempDir := t.TempDir()

	files := map[string][]byte{
		"b.txt":             []byte("content-b"),
		"a.txt":             []byte("a"),
		"subdir/nested.txt": []byte("nested"),
	}
	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(fullPath, content, 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
	if err := os.Symlink(filepath.Join(tempDir, "a.txt"), filepath.Join(tempDir, "link.txt")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "broken")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	local, err := NewLocal(tempDir)
	if err != nil {
		t.Fatalf("NewLocal() error = %v", err)
	}

	ctx := context.Background()

	t.Run("ImmediateChildrenOnly", func(t *testing.T) {
		entries, err := local.List(ctx)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		want := []struct {
			name string
			kind Kind
		}{
			{"a.txt", KindFile},
			{"b.txt", KindFile},
			{"broken", KindOther},
			{"link.txt", KindFile},
			{"subdir", KindDir},
		}
		if len(entries) != len(want) {
			t.Fatalf("List() returned %d entries, want %d: %+v", len(entries), len(want), entries)
		}
		for i, w := range want {
			if entries[i].Name != w.name {
				t.Errorf("entries[%d].Name = %s, want %s", i, entries[i].Name, w.name)
			}
			if entries[i].Kind != w.kind {
				t.Errorf("entries[%d].Kind = %d, want %d", i, entries[i].Kind, w.kind)
			}
			if entries[i].Path != filepath.Join(tempDir, w.name) {
				t.Errorf("entries[%d].Path = %s", i, entries[i].Path)
			}
		}
	})

	t.Run("SymlinkReportsTargetSize", func(t *testing.T) {
		entries, _ := local.List(ctx)
		for _, e := range entries {
			if e.Name == "link.txt" && e.Size != 1 {
				t.Errorf("link.txt size = %d, want 1", e.Size)
			}
			if e.Name == "b.txt" && e.Size != 9 {
				t.Errorf("b.txt size = %d, want 9", e.Size)
			}
		}
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := local.List(ctx)
		if err == nil {
			t.Error("List() should return error on cancelled context")
		}
	})
}

// TestLocalOpen tests the Open method
func TestLocalOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := []byte("test content for reading")
	if err := afero.WriteFile(fs, "/root/test.txt", content, 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	local, err := NewLocalFs(fs, "/root")
	if err != nil {
		t.Fatalf("NewLocalFs() error = %v", err)
	}

	ctx := context.Background()

	t.Run("ReadExistingFile", func(t *testing.T) {
		reader, err := local.Open(ctx, "test.txt")
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			t.Fatalf("ReadAll() error = %v", err)
		}

		if !bytes.Equal(data, content) {
			t.Errorf("Open() content = %s, want %s", string(data), string(content))
		}
	})

	t.Run("ReadNonExistentFile", func(t *testing.T) {
		_, err := local.Open(ctx, "nonexistent.txt")
		if err == nil {
			t.Error("Open() should fail for non-existent file")
		}
	})
}

// TestLocalMemFs tests listing on an in-memory filesystem
func TestLocalMemFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/left/one.txt", []byte("1"), 0644)
	fs.MkdirAll("/left/sub", 0755)

	local, err := NewLocalFs(fs, "/left")
	if err != nil {
		t.Fatalf("NewLocalFs() error = %v", err)
	}

	entries, err := local.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "one.txt" || entries[0].Kind != KindFile {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Name != "sub" || entries[1].Kind != KindDir {
		t.Errorf("entries[1] = %+v", entries[1])
	}

	_, err = NewLocalFs(fs, "/left/one.txt")
	if !errors.Is(err, models.ErrNotADirectory) {
		t.Errorf("NewLocalFs() on a file error = %v, want ErrNotADirectory", err)
	}
}
