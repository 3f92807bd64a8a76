package snapshot

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidatePatterns checks that every exclusion pattern is well formed
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(strings.TrimSuffix(pattern, "/")) {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	return nil
}

// shouldExclude checks if a child should be excluded based on the given patterns.
// Patterns support:
//   - Simple glob patterns: *.tmp, *.log
//   - Directory patterns: .git/, node_modules/ (match directories only)
//   - Any-depth patterns: **/cache
func shouldExclude(name string, isDir bool, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		// Directory patterns only apply to directories
		if strings.HasSuffix(pattern, "/") {
			if !isDir {
				continue
			}
			pattern = strings.TrimSuffix(pattern, "/")
		}

		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}

	return false
}
