package display

import (
	"fmt"
	"io"

	"github.com/harrison/datafind/internal/resolver"
)

// StrategyProgress prints one line per attempted resolution strategy.
type StrategyProgress struct {
	writer io.Writer
	total  int
}

// NewStrategyProgress creates a progress printer for a chain of total
// strategies.
func NewStrategyProgress(w io.Writer, total int) *StrategyProgress {
	return &StrategyProgress{
		writer: w,
		total:  total,
	}
}

// Step displays one attempted strategy: [N/Total] name: candidates/matches
// (cyan).
func (p *StrategyProgress) Step(event resolver.ProgressEvent) {
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s: %d candidate(s), %d match(es)\x1b[0m\n",
		event.Index, p.total, event.Strategy, event.Candidates, event.Matches)
}

// Complete displays the final match count with a green checkmark.
func (p *StrategyProgress) Complete(strategy string, matched int) {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m %d file(s) via %s\n", matched, strategy)
}
