package resolver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Bounds for the diagnostic walk. The walk exists to explain a failure, not
// to enumerate a tree; zero counts below the bound are inconclusive and the
// report says so.
const (
	maxWalkDepth = 6
	maxWalkDirs  = 4096
)

// DirCount records how many entries with the target extension sit directly
// in one visited directory. Note carries a per-directory access error when
// the directory could not be read; its count is then zero by annotation,
// not by evidence.
type DirCount struct {
	Path  string `json:"path" yaml:"path"`
	Count int    `json:"count" yaml:"count"`
	Note  string `json:"note,omitempty" yaml:"note,omitempty"`
}

// DiagnosticReport explains a resolution that produced no matches. It is a
// structured value for the caller to render; it is never persisted and its
// contents are not reusable as matches.
type DiagnosticReport struct {
	Input        string     `json:"input" yaml:"input"`
	Extension    string     `json:"extension" yaml:"extension"`
	Anchor       string     `json:"anchor" yaml:"anchor"`
	Directories  []DirCount `json:"directories" yaml:"directories"`
	TotalMatches int        `json:"total_matches" yaml:"total_matches"`
	Truncated    bool       `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Causes       []string   `json:"causes" yaml:"causes"`
}

// Diagnose performs one bounded recursive walk from the best available
// anchor directory and aggregates per-directory counts of entries with the
// target extension. Returns ErrAnchorNotFound when no existing ancestor
// directory exists for the input. The walk is read-only; finding matches
// here is reported as a hint that the chain's assumptions were wrong, never
// as a silent success.
func Diagnose(ctx context.Context, spec PathSpec, ext string) (*DiagnosticReport, error) {
	anchor, err := anchorDirectory(spec)
	if err != nil {
		return nil, err
	}

	report := &DiagnosticReport{
		Input:     spec.Raw,
		Extension: ext,
		Anchor:    anchor,
	}

	suffix := "." + ext
	counts := make(map[string]*DirCount)
	record := func(dir string) *DirCount {
		if entry, ok := counts[dir]; ok {
			return entry
		}
		entry := &DirCount{Path: dir}
		counts[dir] = entry
		return entry
	}

	visited := 0
	walkErr := filepath.WalkDir(anchor, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// Permission denied or transient I/O failure: annotate the
			// directory and keep walking its siblings.
			record(path).Note = err.Error()
			return nil
		}

		if d.IsDir() {
			rel, relErr := filepath.Rel(anchor, path)
			if relErr == nil && rel != "." {
				depth := strings.Count(rel, string(filepath.Separator)) + 1
				if depth > maxWalkDepth {
					report.Truncated = true
					return filepath.SkipDir
				}
			}
			visited++
			if visited > maxWalkDirs {
				report.Truncated = true
				return fs.SkipAll
			}
			record(path)
			return nil
		}

		if strings.HasSuffix(d.Name(), suffix) && d.Type().IsRegular() {
			record(filepath.Dir(path)).Count++
			report.TotalMatches++
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("diagnostic walk from %s: %w", anchor, walkErr)
	}

	dirs := make([]string, 0, len(counts))
	for dir := range counts {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	report.Directories = make([]DirCount, 0, len(dirs))
	for _, dir := range dirs {
		report.Directories = append(report.Directories, *counts[dir])
	}

	report.Causes = diagnosticCauses(spec, ext, anchor, report)
	return report, nil
}

// anchorDirectory determines the root of the diagnostic walk: the input
// itself when it is a directory, its parent when it is a file, otherwise
// the nearest existing ancestor of the input with any trailing glob
// characters stripped.
func anchorDirectory(spec PathSpec) (string, error) {
	if spec.IsDir {
		if abs, err := filepath.Abs(spec.Raw); err == nil {
			return abs, nil
		}
		return spec.Raw, nil
	}
	if spec.IsFile {
		if abs, err := filepath.Abs(filepath.Dir(spec.Raw)); err == nil {
			return abs, nil
		}
		return filepath.Dir(spec.Raw), nil
	}

	probe := trimTrailingGlob(spec.Raw)
	if probe == "" {
		probe = "."
	}
	abs, err := filepath.Abs(probe)
	if err != nil {
		return "", fmt.Errorf("anchor for %q: %w", spec.Raw, ErrAnchorNotFound)
	}
	for {
		if isDirectory(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return "", fmt.Errorf("anchor for %q: %w", spec.Raw, ErrAnchorNotFound)
}

// diagnosticCauses builds the free-form cause list from what the walk saw.
func diagnosticCauses(spec PathSpec, ext, anchor string, report *DiagnosticReport) []string {
	var causes []string

	if !spec.Exists {
		causes = append(causes, fmt.Sprintf(
			"input does not exist; nearest existing ancestor is %s", anchor))
	}
	if spec.IsFile {
		causes = append(causes, fmt.Sprintf(
			"input is a regular file but does not end in .%s", ext))
	}

	if report.TotalMatches > 0 {
		causes = append(causes, fmt.Sprintf(
			"%d .%s file(s) exist under %s; the input pattern does not cover them",
			report.TotalMatches, ext, anchor))
	} else {
		causes = append(causes, fmt.Sprintf(
			"no .%s files found under %s", ext, anchor))
	}

	if report.Truncated {
		causes = append(causes, fmt.Sprintf(
			"walk stopped at depth %d or %d directories; zero counts below the bound are inconclusive",
			maxWalkDepth, maxWalkDirs))
	}

	for _, dir := range report.Directories {
		if dir.Note != "" {
			causes = append(causes, fmt.Sprintf(
				"could not read %s: %s", dir.Path, dir.Note))
		}
	}

	return causes
}
