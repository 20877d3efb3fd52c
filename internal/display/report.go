package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harrison/datafind/internal/resolver"
)

// Format selects how matches and reports are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an --output flag value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json, or yaml)", s)
}

// matchDocument is the machine-readable envelope for a successful
// resolution.
type matchDocument struct {
	ID       string   `json:"id" yaml:"id"`
	Strategy string   `json:"strategy" yaml:"strategy"`
	Matches  []string `json:"matches" yaml:"matches"`
}

// Matches renders a successful resolution. Text output is one absolute
// path per line and nothing else, so it composes with xargs and friends.
func Matches(out io.Writer, format Format, result *resolver.Result) error {
	switch format {
	case FormatJSON:
		return encodeJSON(out, matchDocument{
			ID:       result.ID,
			Strategy: result.Strategy,
			Matches:  result.Matches,
		})
	case FormatYAML:
		return encodeYAML(out, matchDocument{
			ID:       result.ID,
			Strategy: result.Strategy,
			Matches:  result.Matches,
		})
	default:
		for _, path := range result.Matches {
			fmt.Fprintln(out, path)
		}
		return nil
	}
}

// Report renders a diagnostic report. colorOutput enables ANSI colour for
// the text format; JSON and YAML are never coloured.
func Report(out io.Writer, format Format, report *resolver.DiagnosticReport, colorOutput bool) error {
	switch format {
	case FormatJSON:
		return encodeJSON(out, report)
	case FormatYAML:
		return encodeYAML(out, report)
	default:
		renderTextReport(out, report, colorOutput)
		return nil
	}
}

// renderTextReport writes the human-readable report form.
func renderTextReport(out io.Writer, report *resolver.DiagnosticReport, colorOutput bool) {
	var b strings.Builder

	if colorOutput {
		b.WriteString("\x1b[33m")
	}
	fmt.Fprintf(&b, "No .%s files matched: %s\n", report.Extension, report.Input)
	if colorOutput {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprintf(&b, "    Anchor directory: %s\n", report.Anchor)
	fmt.Fprintf(&b, "    Files found during walk: %d\n", report.TotalMatches)
	if report.Truncated {
		b.WriteString("    Walk was truncated; counts are a lower bound\n")
	}

	if len(report.Directories) > 0 {
		b.WriteString("    Per-directory counts:\n")
		for _, dir := range report.Directories {
			fmt.Fprintf(&b, "      %6d  %s", dir.Count, dir.Path)
			if dir.Note != "" {
				fmt.Fprintf(&b, "  (%s)", dir.Note)
			}
			b.WriteString("\n")
		}
	}

	if len(report.Causes) > 0 {
		b.WriteString("    Likely causes:\n")
		for _, cause := range report.Causes {
			fmt.Fprintf(&b, "      - %s\n", cause)
		}
	}

	fmt.Fprint(out, b.String())
}

func encodeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
