package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output encoding accepted by Write.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ErrBadFormat indicates an unsupported output format.
var ErrBadFormat = errors.New("report: unknown output format")

// ParseFormat validates an output format name. The empty string means table.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadFormat, name)
	}
}

// Write renders reports to w. A single report is encoded as an object in
// JSON and YAML, several as a list. Tables list one run per row; for a single
// run the solution path follows the table.
func Write(w io.Writer, f Format, reports ...Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		var err error
		if len(reports) == 1 {
			err = enc.Encode(reports[0])
		} else {
			err = enc.Encode(reports)
		}
		if err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, FormatMarkdown:
		mode := ASCII
		if f == FormatMarkdown {
			mode = Markdown
		}
		if _, err := fmt.Fprintln(w, Table(mode, reports...)); err != nil {
			return err
		}
		if len(reports) == 1 && reports[0].Found {
			return writePath(w, reports[0])
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, f)
	}
}

// Table builds the comparison table of reports.
func Table(mode Mode, reports ...Report) string {
	tb := NewTable(mode)
	tb.Header("Algorithm", "Outcome", "Cost", "Depth", "Expanded", "Generated", "Skipped", "Pruned", "Max fringe", "Iterations", "Elapsed")
	for _, r := range reports {
		depth := "-"
		if r.Found {
			depth = fmt.Sprint(r.Depth)
		}
		tb.Row(r.Algorithm, r.Outcome(), fmt.Sprintf("%g", r.Cost), depth,
			r.Stats.Expanded, r.Stats.Generated, r.Stats.Skipped, r.Stats.Pruned,
			r.Stats.MaxFringe, r.Stats.Iterations, r.Elapsed)
	}
	cfgs := make([]ColumnConfig, 0, 9)
	for col := 3; col <= 11; col++ {
		cfgs = append(cfgs, ColumnConfig{Number: col, Align: AlignRight})
	}
	tb.Columns(cfgs...)
	if len(reports) > 0 {
		tb.Footer("problem", reports[0].Problem, "", "", "", "", "", "", "", "", "")
	}

	return tb.String()
}

func writePath(w io.Writer, r Report) error {
	var b strings.Builder
	for i, s := range r.States {
		if i == 0 {
			fmt.Fprintf(&b, "  %s\n", s)
			continue
		}
		fmt.Fprintf(&b, "  --%s--> %s\n", r.Actions[i-1], s)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
