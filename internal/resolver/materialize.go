package resolver

import (
	"sort"
	"strings"
)

// MatchSet is the validated output of a resolution: absolute,
// symlink-resolved file paths in ascending lexicographic order with no
// duplicates. Every entry was a regular file with the target extension at
// the time of materialization; the check is not cached, so filesystem
// changes between resolution and use are the caller's concern.
type MatchSet []string

// Materialize filters raw candidate paths down to a MatchSet. Candidates
// whose suffix does not case-sensitively equal ".<ext>", or that are not
// regular files at the time of the check, are dropped. Remaining entries
// are deduplicated by canonical path and sorted. Materializing an existing
// MatchSet yields the same MatchSet.
func Materialize(candidates []string, ext string) MatchSet {
	suffix := "." + ext
	seen := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		if !strings.HasSuffix(candidate, suffix) {
			continue
		}
		canonical, err := canonicalPath(candidate)
		if err != nil {
			// Dangling symlink or a file removed since the glob expanded.
			continue
		}
		if !strings.HasSuffix(canonical, suffix) {
			// A symlink named *.<ext> pointing at a differently-named
			// target would otherwise smuggle in a wrong-extension entry
			// and break idempotence.
			continue
		}
		if !isRegularFile(canonical) {
			continue
		}
		seen[canonical] = true
	}

	matches := make(MatchSet, 0, len(seen))
	for path := range seen {
		matches = append(matches, path)
	}
	sort.Strings(matches)

	return matches
}
