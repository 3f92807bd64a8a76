package models

import (
	"encoding/hex"
)

// FileRecord represents a regular file captured by a directory scan
type FileRecord struct {
	// Name is the file name relative to the scanned root
	Name string

	// Path is the full path of the file
	Path string

	// Size in bytes
	Size int64

	// Hash is the content digest computed over the full file content
	Hash []byte
}

// Key returns the content key used to group files by content
func (r *FileRecord) Key() ContentKey {
	return NewContentKey(r.Hash)
}

// DirRecord represents an immediate subdirectory captured by a directory scan
type DirRecord struct {
	// Name is the directory name relative to the scanned root
	Name string

	// Path is the full path of the directory
	Path string
}

// ContentKey is a comparable identifier derived from a content hash.
// Two keys are equal iff the underlying digests are equal byte for byte.
type ContentKey string

// NewContentKey creates a content key from a digest
func NewContentKey(hash []byte) ContentKey {
	return ContentKey(hash)
}

// String returns the hex form of the key
func (k ContentKey) String() string {
	return hex.EncodeToString([]byte(k))
}

// ActionKind classifies a compared entry
type ActionKind string

const (
	// ActionUnchanged indicates the entry is identical on both sides
	ActionUnchanged ActionKind = "unchanged"
	// ActionAdded indicates the entry exists only on the right side
	ActionAdded ActionKind = "added"
	// ActionRemoved indicates the entry exists only on the left side
	ActionRemoved ActionKind = "removed"
	// ActionModified indicates the entry exists on both sides with different content
	ActionModified ActionKind = "modified"
	// ActionRenamed indicates the same content under a different name
	ActionRenamed ActionKind = "renamed"
)

// Actions lists every action kind in display order
var Actions = []ActionKind{
	ActionUnchanged,
	ActionAdded,
	ActionRemoved,
	ActionModified,
	ActionRenamed,
}

// EntryRef identifies one side of a compared entry
type EntryRef struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"is_dir,omitempty"`
	Size  int64  `json:"size,omitempty"`
	Hash  string `json:"hash,omitempty"`
}

// FileRef builds an entry reference for a file record
func FileRef(r *FileRecord) *EntryRef {
	return &EntryRef{
		Name: r.Name,
		Path: r.Path,
		Size: r.Size,
		Hash: hex.EncodeToString(r.Hash),
	}
}

// DirRef builds an entry reference for a directory record
func DirRef(d DirRecord) *EntryRef {
	return &EntryRef{
		Name:  d.Name,
		Path:  d.Path,
		IsDir: true,
	}
}

// DiffEntry is one classified row of a comparison.
// Removed entries carry Left only, added entries carry Right only,
// every other action carries both.
type DiffEntry struct {
	Action ActionKind `json:"action"`
	Left   *EntryRef  `json:"left,omitempty"`
	Right  *EntryRef  `json:"right,omitempty"`
}

// Name returns the name shown for the entry, preferring the right side
func (e DiffEntry) Name() string {
	if e.Right != nil {
		return e.Right.Name
	}
	if e.Left != nil {
		return e.Left.Name
	}
	return ""
}

// Valid reports whether the sides present match the action
func (e DiffEntry) Valid() bool {
	switch e.Action {
	case ActionRemoved:
		return e.Left != nil && e.Right == nil
	case ActionAdded:
		return e.Left == nil && e.Right != nil
	case ActionUnchanged, ActionModified, ActionRenamed:
		return e.Left != nil && e.Right != nil
	default:
		return false
	}
}
