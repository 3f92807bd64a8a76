package snapshot

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/sdejongh/dircmp/internal/platform"
	"github.com/sdejongh/dircmp/pkg/hasher"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// Snapshot is the flat inventory of one directory's immediate children.
// It is read-only once Scan returns.
type Snapshot struct {
	// Root is the absolute path of the scanned directory
	Root string

	// Name is the display name of the root
	Name string

	// Files maps each file name to its record
	Files map[string]*models.FileRecord

	// Dirs holds the immediate subdirectories sorted by name
	Dirs []models.DirRecord

	// Warnings lists files dropped because they could not be read
	Warnings []models.ScanWarning
}

// FileNames returns the file names in lexical order
func (s *Snapshot) FileNames() []string {
	names := make([]string, 0, len(s.Files))
	for name := range s.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalBytes returns the sum of all file sizes
func (s *Snapshot) TotalBytes() int64 {
	var total int64
	for _, f := range s.Files {
		total += f.Size
	}
	return total
}

// Scanner builds snapshots from storage backends
type Scanner struct {
	hasher   hasher.Hasher
	logger   logging.Logger
	exclude  []string
	progress func(models.ProgressUpdate)
}

// NewScanner creates a scanner hashing file content with h
func NewScanner(h hasher.Hasher, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		hasher: h,
		logger: logger,
	}
}

// SetExcludePatterns sets glob patterns for children to leave out of snapshots
func (s *Scanner) SetExcludePatterns(patterns []string) {
	s.exclude = patterns
}

// SetProgressCallback sets a callback for progress reporting during hashing
func (s *Scanner) SetProgressCallback(callback func(models.ProgressUpdate)) {
	s.progress = callback
}

// Scan lists the immediate children of backend's root and hashes every regular file.
// Listing failures are fatal. A file that cannot be read is left out of the
// snapshot and recorded as a warning; the scan continues with the other children.
func (s *Scanner) Scan(ctx context.Context, side models.Side, backend storage.Backend) (*Snapshot, error) {
	root := backend.Root()
	logger := s.logger.WithFields(logging.Fields{"side": string(side), "root": root})

	children, err := backend.List(ctx)
	if err != nil {
		logger.Error(ctx, "failed to list directory", err, nil)
		return nil, err
	}

	snap := &Snapshot{
		Root:  root,
		Name:  platform.DisplayName(root),
		Files: make(map[string]*models.FileRecord),
	}

	var files []storage.FileInfo
	for _, child := range children {
		if shouldExclude(child.Name, child.Kind == storage.KindDir, s.exclude) {
			logger.Debug(ctx, "excluded", logging.Fields{"name": child.Name})
			continue
		}

		switch child.Kind {
		case storage.KindDir:
			snap.Dirs = append(snap.Dirs, models.DirRecord{Name: child.Name, Path: child.Path})
		case storage.KindFile:
			files = append(files, child)
		default:
			logger.Debug(ctx, "skipped special file", logging.Fields{"name": child.Name})
		}
	}

	s.report(models.ProgressUpdate{Type: "scan_start", Side: side, Files: len(files)})

	for _, file := range files {
		record, err := s.hashFile(ctx, backend, file)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			logger.Warn(ctx, "skipped unreadable file", logging.Fields{"path": file.Path, "error": err.Error()})
			snap.Warnings = append(snap.Warnings, models.ScanWarning{
				Side:      side,
				Path:      file.Path,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			continue
		}

		snap.Files[record.Name] = record
		s.report(models.ProgressUpdate{Type: "file_hashed", Side: side, Path: file.Path, Bytes: file.Size})
	}

	s.report(models.ProgressUpdate{Type: "scan_complete", Side: side, Files: len(snap.Files)})

	logger.Info(ctx, "scan complete", logging.Fields{
		"files":    len(snap.Files),
		"dirs":     len(snap.Dirs),
		"warnings": len(snap.Warnings),
	})

	return snap, nil
}

// hashFile builds the record for one regular file
func (s *Scanner) hashFile(ctx context.Context, backend storage.Backend, file storage.FileInfo) (*models.FileRecord, error) {
	reader, err := backend.Open(ctx, file.Name)
	if err != nil {
		return nil, models.NewPathError(models.ErrUnreadable, file.Path, unwrapCause(err))
	}
	defer reader.Close()

	digest, err := s.hasher.Hash(ctx, reader)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, models.NewPathError(models.ErrUnreadable, file.Path, unwrapCause(err))
	}

	return &models.FileRecord{
		Name: file.Name,
		Path: file.Path,
		Size: file.Size,
		Hash: digest,
	}, nil
}

func (s *Scanner) report(update models.ProgressUpdate) {
	if s.progress != nil {
		s.progress(update)
	}
}

// unwrapCause strips our own wrapping so warnings read "path is not readable: <path>: <cause>"
func unwrapCause(err error) error {
	if cause := errors.Unwrap(err); cause != nil {
		return cause
	}
	return err
}
