package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultExtension is matched when Options.Extension is empty.
const DefaultExtension = "h5"

// Options configures a single resolution.
type Options struct {
	// Extension is the file suffix to match, without the leading dot
	// (one is stripped if present). Comparisons are case-sensitive.
	// Empty means DefaultExtension.
	Extension string

	// Progress, when non-nil, is invoked once per strategy attempted,
	// in chain order, before the short-circuit decision. It is called
	// synchronously on the resolving goroutine.
	Progress func(ProgressEvent)
}

// ProgressEvent describes one attempted strategy. ResolutionID is shared by
// all events of one Resolve call so embedding callers can correlate events
// from concurrent resolutions.
type ProgressEvent struct {
	ResolutionID string
	// Index is the strategy's 1-based position in the chain.
	Index    int
	Strategy string
	// Candidates is the raw candidate count before materialization.
	Candidates int
	// Matches is the count surviving materialization.
	Matches int
}

// Result is the outcome of a resolution. Exactly one of Matches (non-empty)
// or Report (non-nil) is populated.
type Result struct {
	// ID identifies this resolution; it matches ProgressEvent.ResolutionID.
	ID string
	// Input is the normalized form of the raw input.
	Input PathSpec
	// Extension is the normalized extension that was matched.
	Extension string

	Matches MatchSet
	Report  *DiagnosticReport

	// Strategy and StrategyIndex record which chain rule produced the
	// matches. StrategyIndex is 1-based; 0 means no strategy matched.
	Strategy      string
	StrategyIndex int

	// SingleFileLiteral is true when the match is exactly the input file
	// taken literally. Callers wanting folder-wide discovery should
	// re-resolve with <dir>/**/*.<ext>; the resolver never widens a
	// literal match on its own.
	SingleFileLiteral bool
}

// Resolve runs the strategy chain for input and returns either a non-empty
// MatchSet or a DiagnosticReport. It fails only for blank input
// (ErrInvalidInput), a malformed extension (ErrBadExtension), a diagnostic
// phase with no existing ancestor (ErrAnchorNotFound), or cancellation.
//
// The chain short-circuits on the first strategy whose candidates survive
// materialization. Filesystem errors inside a strategy are treated as that
// strategy producing no candidates. Cancellation is checked before each
// strategy; strategy boundaries are the natural cancellation points.
func Resolve(ctx context.Context, input string, opts Options) (*Result, error) {
	ext, err := normalizeExtension(opts.Extension)
	if err != nil {
		return nil, err
	}

	spec, err := NormalizeInput(input)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID:        uuid.NewString(),
		Input:     spec,
		Extension: ext,
	}

	for i, strategy := range DefaultStrategies() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolution cancelled before %s: %w", strategy.Name, err)
		}
		if !strategy.Applies(spec, ext) {
			continue
		}

		candidates, err := strategy.Candidates(spec, ext)
		if err != nil {
			// An unexpandable pattern is a strategy with nothing to
			// offer, not a failed resolution.
			candidates = nil
		}
		matches := Materialize(candidates, ext)

		if opts.Progress != nil {
			opts.Progress(ProgressEvent{
				ResolutionID: result.ID,
				Index:        i + 1,
				Strategy:     strategy.Name,
				Candidates:   len(candidates),
				Matches:      len(matches),
			})
		}

		if len(matches) > 0 {
			result.Matches = matches
			result.Strategy = strategy.Name
			result.StrategyIndex = i + 1
			result.SingleFileLiteral = i == 0 && len(matches) == 1 && spec.IsFile
			return result, nil
		}
	}

	report, err := Diagnose(ctx, spec, ext)
	if err != nil {
		return nil, err
	}
	result.Report = report
	return result, nil
}

// normalizeExtension strips whitespace and a leading dot, applies the
// default, and rejects extensions that cannot form a valid suffix.
func normalizeExtension(ext string) (string, error) {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExtension, nil
	}
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" || strings.ContainsAny(ext, `*?[/\`) {
		return "", fmt.Errorf("extension %q: %w", ext, ErrBadExtension)
	}
	return ext, nil
}
