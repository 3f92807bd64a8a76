package models

import (
	"time"
)

// CompareReport represents the results of a comparison run
type CompareReport struct {
	// Run details
	ID        string
	LeftPath  string
	RightPath string
	Hash      HashAlgorithm

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Result holds the classified entries
	Result *DiffResult

	// BytesHashed is the total size of all files hashed on both sides
	BytesHashed int64

	// Warnings lists entries skipped during scanning
	Warnings []ScanWarning

	// Overall status
	Status CompareStatus
}

// Side identifies which root an entry was scanned from
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ScanWarning records an entry dropped from a snapshot
type ScanWarning struct {
	Side      Side
	Path      string
	Error     string
	Timestamp time.Time
}

// CompareStatus represents the overall result
type CompareStatus string

const (
	// StatusSuccess indicates every entry was scanned
	StatusSuccess CompareStatus = "success"
	// StatusPartial indicates some entries were skipped
	StatusPartial CompareStatus = "partial"
	// StatusFailed indicates the comparison could not produce a result
	StatusFailed CompareStatus = "failed"
	// StatusCancelled indicates the comparison was cancelled
	StatusCancelled CompareStatus = "cancelled"
)

// ExitCode returns the appropriate exit code for the status
func (s CompareStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusFailed:
		return 1
	case StatusPartial:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 1
	}
}
