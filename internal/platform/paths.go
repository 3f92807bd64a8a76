package platform

import (
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	// Convert to platform-specific separators
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// DisplayName returns the name shown for a root directory in table headers.
// Filesystem roots have no base name and are shown as given.
func DisplayName(path string) string {
	normalized := NormalizePath(path)
	base := filepath.Base(normalized)
	if base == string(filepath.Separator) {
		return normalized
	}
	return base
}
