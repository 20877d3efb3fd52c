package resolver

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Strategy is one rule in the fallback chain. Applies reports whether the
// rule has anything to try for the given input; Candidates expands the rule
// into raw, unvalidated candidate paths. Strategies are stateless and never
// fail for "no match" — an expansion error means the strategy produced no
// candidates and the chain moves on.
type Strategy struct {
	Name       string
	Applies    func(spec PathSpec, ext string) bool
	Candidates func(spec PathSpec, ext string) ([]string, error)
}

// DefaultStrategies returns the fallback chain in evaluation order. Later
// strategies are more permissive interpretations of the input; the order is
// load-bearing and must not change, or a loose reading could mask a precise
// user intent.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			// The input taken at face value, as a glob pattern or literal
			// path. doublestar expands ** across directory boundaries.
			Name: "direct-glob",
			Applies: func(PathSpec, string) bool {
				return true
			},
			Candidates: func(spec PathSpec, _ string) ([]string, error) {
				return expandGlob(spec.Raw)
			},
		},
		{
			// The input is an existing directory: scan it recursively for
			// files with the target extension.
			Name: "directory-scan",
			Applies: func(spec PathSpec, _ string) bool {
				return spec.IsDir
			},
			Candidates: func(spec PathSpec, ext string) ([]string, error) {
				return expandGlob(recursivePattern(spec.Raw, ext))
			},
		},
		{
			// The input holds a single-level *.<ext> wildcard: rewrite it
			// to descend recursively.
			Name: "wildcard-rewrite",
			Applies: func(spec PathSpec, ext string) bool {
				token := "*." + ext
				return strings.Contains(spec.Raw, token) &&
					!strings.Contains(spec.Raw, "**")
			},
			Candidates: func(spec PathSpec, ext string) ([]string, error) {
				return expandGlob(rewriteWildcard(spec.Raw, ext))
			},
		},
		{
			// Strip trailing wildcard and separator characters; if what
			// remains is an existing directory, scan it recursively.
			Name: "trailing-clean",
			Applies: func(spec PathSpec, _ string) bool {
				cleaned := trimTrailingGlob(spec.Raw)
				return cleaned != "" && cleaned != spec.Raw && isDirectory(cleaned)
			},
			Candidates: func(spec PathSpec, ext string) ([]string, error) {
				return expandGlob(recursivePattern(trimTrailingGlob(spec.Raw), ext))
			},
		},
		{
			// Last resort: fall back to the input's parent directory and
			// scan it recursively.
			Name: "parent-dir",
			Applies: func(spec PathSpec, _ string) bool {
				if !strings.ContainsAny(spec.Raw, `/\`) {
					return false
				}
				return isDirectory(filepath.Dir(spec.Raw))
			},
			Candidates: func(spec PathSpec, ext string) ([]string, error) {
				return expandGlob(recursivePattern(filepath.Dir(spec.Raw), ext))
			},
		},
	}
}

// expandGlob expands a pattern with ** support. A literal path with no
// metacharacters matches itself when it exists.
func expandGlob(pattern string) ([]string, error) {
	return doublestar.FilepathGlob(filepath.FromSlash(pattern))
}

// recursivePattern builds the <dir>/**/*.<ext> pattern for a recursive
// directory scan.
func recursivePattern(dir, ext string) string {
	return filepath.Join(dir, "**", "*."+ext)
}

// rewriteWildcard forces a single-level *.<ext> wildcard into a recursive
// one. A trailing *.<ext> is rebuilt from its base directory; anywhere
// else, the first occurrence is replaced textually.
func rewriteWildcard(raw, ext string) string {
	token := "*." + ext
	if strings.HasSuffix(raw, token) {
		base := strings.TrimSuffix(raw, token)
		base = strings.TrimRight(base, `/\`)
		if base == "" {
			base = "."
		}
		return filepath.Join(base, "**", token)
	}
	return strings.Replace(raw, token, filepath.Join("**", token), 1)
}

// trimTrailingGlob strips trailing wildcard and separator characters.
func trimTrailingGlob(raw string) string {
	return strings.TrimRight(raw, `*?[/\`)
}
