package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/datafind/internal/display"
	"github.com/harrison/datafind/internal/logger"
	"github.com/harrison/datafind/internal/resolver"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for datafind
func NewRootCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "datafind <path-or-pattern>",
		Short: "Resolve an ambiguous path or pattern into a set of data files",
		Long: `Datafind turns a possibly malformed or under-specified path, directory,
or glob pattern into a concrete list of data files with a target extension
(default h5).

Five increasingly permissive strategies are tried in fixed order, stopping
at the first that yields matches:
  1. The input taken literally as a path or glob (** supported)
  2. Recursive scan when the input is a directory
  3. Rewrite of a single-level *.<ext> wildcard into a recursive one
  4. Retry after stripping trailing wildcard/separator characters
  5. Retry against the input's parent directory

When nothing matches, a bounded walk from the nearest existing directory
produces a diagnostic report on stderr explaining why.

Exit code: 0 with one path per line on stdout when files were found,
1 with the report on stderr otherwise`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := display.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			opts.format = format
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.extension, "ext", resolver.DefaultExtension, "file extension to match (case-sensitive, leading dot optional)")
	cmd.Flags().StringVar(&opts.output, "output", string(display.FormatText), "output format: text, json, or yaml")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print per-strategy progress to stderr")

	return cmd
}

// runOptions carries the parsed flag values into runResolve.
type runOptions struct {
	extension string
	output    string
	format    display.Format
	logLevel  string
	verbose   bool
}

// runResolve executes one resolution and renders the outcome. A non-nil
// return means exit code 1: either a resolution error or an empty result
// whose report has already been written to stderr.
func runResolve(ctx context.Context, input string, opts runOptions, stdout, stderr io.Writer) error {
	log := logger.NewConsoleLogger(stderr, opts.logLevel)

	var progress *display.StrategyProgress
	if opts.verbose {
		progress = display.NewStrategyProgress(stderr, len(resolver.DefaultStrategies()))
	}

	result, err := resolver.Resolve(ctx, input, resolver.Options{
		Extension: opts.extension,
		Progress: func(event resolver.ProgressEvent) {
			log.LogDebug(fmt.Sprintf("strategy %d (%s): %d candidate(s), %d match(es)",
				event.Index, event.Strategy, event.Candidates, event.Matches))
			if progress != nil {
				progress.Step(event)
			}
		},
	})
	if err != nil {
		return err
	}

	if result.Report != nil {
		log.LogInfo(fmt.Sprintf("no matches; diagnostics anchored at %s", result.Report.Anchor))
		if err := display.Report(stderr, opts.format, result.Report, terminalWriter(stderr)); err != nil {
			return err
		}
		return fmt.Errorf("no .%s files matched %s", result.Extension, input)
	}

	if progress != nil {
		progress.Complete(result.Strategy, len(result.Matches))
	}

	if result.SingleFileLiteral {
		dir := filepath.Dir(result.Matches[0])
		hint := display.Warning{
			Title:      "input matched exactly one file, taken literally",
			Suggestion: fmt.Sprintf("to search the whole folder, run: datafind '%s'", filepath.Join(dir, "**", "*."+result.Extension)),
		}
		hint.Display(stderr)
	}

	return display.Matches(stdout, opts.format, result)
}

// terminalWriter reports whether w is a TTY that should receive colour.
func terminalWriter(w io.Writer) bool {
	if w == os.Stdout {
		return isatty.IsTerminal(os.Stdout.Fd())
	}
	if w == os.Stderr {
		return isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}
