package diff

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sdejongh/dircmp/pkg/logging"
	"github.com/sdejongh/dircmp/pkg/models"
	"github.com/sdejongh/dircmp/pkg/snapshot"
	"github.com/sdejongh/dircmp/pkg/storage"
)

// Options controls how a comparison classifies entries
type Options struct {
	DirectoryMatch models.DirectoryMatch
}

// Compare classifies two snapshots into a result
func Compare(left, right *snapshot.Snapshot, opts Options) *models.DiffResult {
	return &models.DiffResult{
		LeftName:    left.Name,
		RightName:   right.Name,
		LeftPath:    left.Root,
		RightPath:   right.Root,
		Files:       DiffFiles(left, right),
		Directories: DiffDirectories(left.Dirs, right.Dirs, opts.DirectoryMatch),
	}
}

// Engine orchestrates a comparison run
type Engine struct {
	left    storage.Backend
	right   storage.Backend
	scanner *snapshot.Scanner
	logger  logging.Logger
	opts    Options
	hash    models.HashAlgorithm
}

// NewEngine creates a new comparison engine over two validated roots
func NewEngine(
	left, right storage.Backend,
	scanner *snapshot.Scanner,
	logger logging.Logger,
	hash models.HashAlgorithm,
	opts Options,
) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Engine{
		left:    left,
		right:   right,
		scanner: scanner,
		logger:  logger,
		opts:    opts,
		hash:    hash,
	}
}

// Run scans both roots concurrently and classifies their entries.
// Unreadable files are reported as warnings and yield a partial status.
func (e *Engine) Run(ctx context.Context) (*models.CompareReport, error) {
	report := &models.CompareReport{
		ID:        uuid.New().String(),
		LeftPath:  e.left.Root(),
		RightPath: e.right.Root(),
		Hash:      e.hash,
		StartTime: time.Now(),
	}

	logger := e.logger.WithFields(logging.Fields{"run_id": report.ID})
	logger.Info(ctx, "comparison started", logging.Fields{
		"left":  report.LeftPath,
		"right": report.RightPath,
		"hash":  string(e.hash),
	})

	// a fatal failure on one side stops the other
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var leftSnap, rightSnap *snapshot.Snapshot
	var leftErr, rightErr error
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if leftSnap, leftErr = e.scanner.Scan(scanCtx, models.SideLeft, e.left); leftErr != nil {
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		if rightSnap, rightErr = e.scanner.Scan(scanCtx, models.SideRight, e.right); rightErr != nil {
			cancel()
		}
	}()
	wg.Wait()

	if side, err := scanFailure(ctx, leftErr, rightErr); err != nil {
		logger.Error(ctx, "comparison failed", err, logging.Fields{"side": string(side)})
		return nil, fmt.Errorf("failed to scan %s directory: %w", side, err)
	}

	report.Result = Compare(leftSnap, rightSnap, e.opts)
	report.BytesHashed = leftSnap.TotalBytes() + rightSnap.TotalBytes()
	report.Warnings = append(report.Warnings, leftSnap.Warnings...)
	report.Warnings = append(report.Warnings, rightSnap.Warnings...)

	report.Status = models.StatusSuccess
	if len(report.Warnings) > 0 {
		report.Status = models.StatusPartial
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	files := report.Result.FileSummary()
	logger.Info(ctx, "comparison complete", logging.Fields{
		"unchanged": files.Unchanged,
		"added":     files.Added,
		"removed":   files.Removed,
		"modified":  files.Modified,
		"renamed":   files.Renamed,
		"warnings":  len(report.Warnings),
		"duration":  report.Duration.String(),
	})

	return report, nil
}

// scanFailure picks the error that caused a run to fail. A scan stopped only
// because the other side failed yields to that side's error; the left side
// wins when both failed on their own.
func scanFailure(ctx context.Context, leftErr, rightErr error) (models.Side, error) {
	stoppedBySibling := func(err error) bool {
		return ctx.Err() == nil && errors.Is(err, context.Canceled)
	}

	switch {
	case leftErr != nil && !stoppedBySibling(leftErr):
		return models.SideLeft, leftErr
	case rightErr != nil && !stoppedBySibling(rightErr):
		return models.SideRight, rightErr
	case leftErr != nil:
		return models.SideLeft, leftErr
	case rightErr != nil:
		return models.SideRight, rightErr
	}
	return "", nil
}
