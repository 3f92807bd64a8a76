package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sdejongh/dircmp/internal/platform"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/spf13/afero"
)

// Local is a filesystem-based storage backend
type Local struct {
	fs       afero.Fs
	rootPath string
}

// NewLocal creates a backend on the operating system filesystem
func NewLocal(rootPath string) (*Local, error) {
	return NewLocalFs(afero.NewOsFs(), rootPath)
}

// NewLocalFs creates a backend on the given filesystem.
// It fails with ErrNotADirectory if rootPath does not denote a directory.
func NewLocalFs(fs afero.Fs, rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(platform.NormalizePath(rootPath))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := fs.Stat(absPath)
	if err != nil {
		return nil, models.NewPathError(models.ErrNotADirectory, absPath, err)
	}

	if !info.IsDir() {
		return nil, models.NewPathError(models.ErrNotADirectory, absPath, nil)
	}

	return &Local{fs: fs, rootPath: absPath}, nil
}

// Root returns the absolute root path
func (l *Local) Root() string {
	return l.rootPath
}

// List returns the immediate children of the root
func (l *Local) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := afero.ReadDir(l.fs, l.rootPath)
	if err != nil {
		return nil, models.NewPathError(models.ErrUnreadable, l.rootPath, err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		fullPath := filepath.Join(l.rootPath, entry.Name())
		info := entry

		// Follow symlinks so links to files and directories count as their targets
		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := l.fs.Stat(fullPath)
			if err != nil {
				files = append(files, FileInfo{Name: entry.Name(), Path: fullPath, Kind: KindOther})
				continue
			}
			info = target
		}

		files = append(files, FileInfo{
			Name: entry.Name(),
			Path: fullPath,
			Size: info.Size(),
			Kind: kindOf(info),
		})
	}

	return files, nil
}

// Open opens a child file for reading
func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.rootPath, name)

	file, err := l.fs.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}

func kindOf(info os.FileInfo) Kind {
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
