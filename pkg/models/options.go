package models

// HashAlgorithm selects the content digest used to identify files
type HashAlgorithm string

const (
	// HashSHA256 computes SHA-256 digests
	HashSHA256 HashAlgorithm = "sha256"
	// HashMD5 computes MD5 digests (faster, not collision resistant)
	HashMD5 HashAlgorithm = "md5"
	// HashXXHash computes 64-bit xxHash digests (fastest, not cryptographic)
	HashXXHash HashAlgorithm = "xxhash"
)

// DirectoryMatch selects how subdirectories are paired between roots
type DirectoryMatch string

const (
	// MatchName pairs subdirectories by their name relative to each root
	MatchName DirectoryMatch = "name"
	// MatchPath pairs subdirectories by full path, so only a directory compared
	// against itself can report unchanged subdirectories
	MatchPath DirectoryMatch = "path"
)

// ProgressUpdate represents a progress notification during scanning
type ProgressUpdate struct {
	Type  string // "scan_start", "file_hashed", "scan_complete"
	Side  Side
	Path  string
	Bytes int64
	Files int
}
