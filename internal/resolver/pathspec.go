package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathSpec classifies a raw input string against filesystem state at the
// time of normalization. Fields are derived once and never refreshed.
type PathSpec struct {
	// Raw is the trimmed input string.
	Raw string
	// Exists reports whether Raw names an existing filesystem entry.
	Exists bool
	// IsFile reports whether Raw is an existing regular file.
	IsFile bool
	// IsDir reports whether Raw is an existing directory.
	IsDir bool
	// ContainsWildcard reports whether Raw contains glob metacharacters.
	ContainsWildcard bool
}

// NormalizeInput trims and classifies a raw path/pattern string.
// Returns ErrInvalidInput for empty or whitespace-only input.
func NormalizeInput(raw string) (PathSpec, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PathSpec{}, fmt.Errorf("normalize input: %w", ErrInvalidInput)
	}

	spec := PathSpec{
		Raw:              trimmed,
		ContainsWildcard: containsGlobMeta(trimmed),
	}

	if info, err := os.Stat(trimmed); err == nil {
		spec.Exists = true
		spec.IsDir = info.IsDir()
		spec.IsFile = info.Mode().IsRegular()
	}

	return spec, nil
}

// containsGlobMeta reports whether a pattern contains glob metacharacters.
func containsGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// isDirectory reports whether path is an existing directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// isRegularFile reports whether path is an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// canonicalPath returns the absolute, symlink-resolved form of path, used
// for deduplication comparisons.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", abs, err)
	}
	return resolved, nil
}
