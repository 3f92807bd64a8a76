package storage

import (
	"context"
	"io"
)

// Kind classifies a directory child
type Kind int

const (
	// KindOther is anything that is neither a regular file nor a directory
	// (devices, sockets, broken symlinks)
	KindOther Kind = iota
	// KindFile is a regular file
	KindFile
	// KindDir is a directory
	KindDir
)

// FileInfo represents metadata about an immediate child of a root
type FileInfo struct {
	Name string
	Path string
	Size int64
	Kind Kind
}

// Backend defines the directory listing primitive used by scans
type Backend interface {
	// Root returns the absolute root path
	Root() string

	// List returns the immediate children of the root, sorted by name.
	// Symlinks are resolved; children that cannot be resolved are KindOther.
	List(ctx context.Context) ([]FileInfo, error)

	// Open opens a child file for reading
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Close releases any resources held by the backend
	Close() error
}
