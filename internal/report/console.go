// Package report renders resolution results for humans (console) and for
// tooling (JSON).
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// Symbols for record classification
const (
	symbolMatched   = "✓"
	symbolUnmatched = "?"
	symbolAmbiguous = "‼"
)

// Reporter receives resolution output as the run progresses.
type Reporter interface {
	// FeatureStart opens a new feature section.
	FeatureStart(featureID string)

	// Record reports one resolved step under the current feature.
	Record(record resolve.ResolutionRecord)

	// Problem reports a structural error (malformed scenario, invalid
	// pattern) that excluded input from the run.
	Problem(err error)

	// PrintSummary prints the aggregate counts at the end of the run.
	PrintSummary(summary resolve.Summary)
}

// ConsoleReporter prints a styled report to a writer.
type ConsoleReporter struct {
	w io.Writer

	headerStyle    lipgloss.Style
	matchedStyle   lipgloss.Style
	unmatchedStyle lipgloss.Style
	ambiguousStyle lipgloss.Style
	detailStyle    lipgloss.Style

	problems int
}

// NewConsoleReporter creates a reporter writing to w. With useColors false
// every style renders as plain text.
func NewConsoleReporter(w io.Writer, useColors bool) *ConsoleReporter {
	r := &ConsoleReporter{w: w}
	if useColors {
		r.headerStyle = lipgloss.NewStyle().Bold(true)
		r.matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		r.unmatchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		r.ambiguousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		r.detailStyle = lipgloss.NewStyle().Faint(true)
	}
	return r
}

func (r *ConsoleReporter) FeatureStart(featureID string) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.headerStyle.Render(featureID))
}

func (r *ConsoleReporter) Record(record resolve.ResolutionRecord) {
	step := string(record.Step.Keyword) + " " + record.Step.Text

	switch record.Classification {
	case resolve.Matched:
		fmt.Fprintf(r.w, "  %s %s\n", r.matchedStyle.Render(symbolMatched), step)
	case resolve.Unmatched:
		fmt.Fprintf(r.w, "  %s %s\n", r.unmatchedStyle.Render(symbolUnmatched), step)
		fmt.Fprintf(r.w, "      %s\n", r.detailStyle.Render("no matching definition"))
	case resolve.Ambiguous:
		fmt.Fprintf(r.w, "  %s %s\n", r.ambiguousStyle.Render(symbolAmbiguous), step)
		for _, candidate := range record.Candidates {
			fmt.Fprintf(r.w, "      %s\n", r.detailStyle.Render("matches "+candidate))
		}
	}
}

func (r *ConsoleReporter) Problem(err error) {
	if r.problems == 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, r.headerStyle.Render("problems"))
	}
	r.problems++
	fmt.Fprintf(r.w, "  %s\n", r.ambiguousStyle.Render(err.Error()))
}

func (r *ConsoleReporter) PrintSummary(summary resolve.Summary) {
	fmt.Fprintln(r.w)

	counts := summary.Global
	line := fmt.Sprintf("%d step(s)", counts.Total)
	parts := make([]string, 0, 3)
	if counts.Matched > 0 {
		parts = append(parts, r.matchedStyle.Render(fmt.Sprintf("%d matched", counts.Matched)))
	}
	if counts.Unmatched > 0 {
		parts = append(parts, r.unmatchedStyle.Render(fmt.Sprintf("%d unmatched", counts.Unmatched)))
	}
	if counts.Ambiguous > 0 {
		parts = append(parts, r.ambiguousStyle.Render(fmt.Sprintf("%d ambiguous", counts.Ambiguous)))
	}
	if len(parts) > 0 {
		line += " (" + strings.Join(parts, ", ") + ")"
	}
	fmt.Fprintln(r.w, line)
}

// noopReporter discards all output
type noopReporter struct{}

// NewNoopReporter creates a reporter that discards all output.
func NewNoopReporter() Reporter {
	return &noopReporter{}
}

func (r *noopReporter) FeatureStart(featureID string)          {}
func (r *noopReporter) Record(record resolve.ResolutionRecord) {}
func (r *noopReporter) Problem(err error)                      {}
func (r *noopReporter) PrintSummary(summary resolve.Summary)   {}
