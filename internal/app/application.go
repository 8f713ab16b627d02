package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Mojo-Solo/stepcheck/internal/report"
	"github.com/Mojo-Solo/stepcheck/internal/stubgen"
	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// Exit codes for CI pipelines. Ambiguity always dominates: it means two
// definitions silently compete for the same step. ExitRunError marks a run
// that could not complete at all (unreadable input, bad tag expression) and
// stays distinct from the resolution outcomes.
const (
	ExitOK        = 0
	ExitAmbiguous = 1
	ExitUnmatched = 2
	ExitRunError  = 3
)

// Options configures one analysis run.
type Options struct {
	// FeatureDirs are searched recursively for .feature files.
	FeatureDirs []string

	// TSStepDirs are searched for cucumber-js TypeScript/JavaScript
	// step-definition sources.
	TSStepDirs []string

	// GoStepDirs are searched for Go sources with @step comments.
	GoStepDirs []string

	// TagExpression filters scenarios (cucumber tag-expression syntax,
	// e.g. "@smoke and not @slow"). Empty means all scenarios.
	TagExpression string

	// JSONPath, when set, receives the machine-readable report.
	JSONPath string

	// StubsPath, when set, receives generated Go stubs for unmatched steps.
	StubsPath string

	// StrictUnmatched treats unmatched steps as fatal (exit code 2)
	// instead of pending.
	StrictUnmatched bool

	Logger *slog.Logger
}

// Run executes the full analysis pipeline: scan features and definitions,
// compile, build the step catalog, resolve, and render reports. It returns
// the process exit code; a non-nil error means the run itself could not
// complete (unreadable input), not that steps failed to resolve.
func Run(ctx context.Context, features FeatureScanner, definitions DefinitionScanner, reporter report.Reporter, opts Options) (int, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	lines, err := features.ScanFeatures(ctx, opts.FeatureDirs, opts.TagExpression)
	if err != nil {
		return ExitRunError, err
	}
	patterns, err := definitions.ScanDefinitions(ctx, opts.TSStepDirs, opts.GoStepDirs)
	if err != nil {
		return ExitRunError, err
	}
	logger.Debug("scanned inputs", "lines", len(lines), "patterns", len(patterns))

	// Invalid patterns are excluded and reported, never silently dropped.
	var problems []error
	matchers := make([]*resolve.CompiledMatcher, 0, len(patterns))
	for _, pattern := range patterns {
		matcher, err := resolve.Compile(pattern)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		matchers = append(matchers, matcher)
	}

	steps, catalogErrs := resolve.BuildCatalog(lines)
	problems = append(problems, catalogErrs...)

	records := resolve.Resolve(steps, matchers)
	summary := resolve.Summarize(records)

	render(reporter, records, problems, summary)

	if opts.JSONPath != "" {
		if err := writeJSON(opts.JSONPath, records, problems, summary); err != nil {
			return ExitRunError, err
		}
		logger.Debug("wrote JSON report", "path", opts.JSONPath)
	}
	if opts.StubsPath != "" && summary.Global.Unmatched > 0 {
		if err := writeStubs(opts.StubsPath, records); err != nil {
			return ExitRunError, err
		}
		logger.Debug("wrote stubs", "path", opts.StubsPath)
	}

	switch {
	case summary.Global.Ambiguous > 0:
		return ExitAmbiguous, nil
	case opts.StrictUnmatched && summary.Global.Unmatched > 0:
		return ExitUnmatched, nil
	default:
		return ExitOK, nil
	}
}

// render drives the reporter: records grouped into feature sections in
// input order, then problems, then the summary.
func render(reporter report.Reporter, records []resolve.ResolutionRecord, problems []error, summary resolve.Summary) {
	currentFeature := ""
	for i, record := range records {
		if i == 0 || record.Step.FeatureID != currentFeature {
			currentFeature = record.Step.FeatureID
			reporter.FeatureStart(currentFeature)
		}
		reporter.Record(record)
	}
	for _, problem := range problems {
		reporter.Problem(problem)
	}
	reporter.PrintSummary(summary)
}

func writeJSON(path string, records []resolve.ResolutionRecord, problems []error, summary resolve.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating JSON report %s: %w", path, err)
	}
	defer file.Close()
	return report.NewDocument(records, problems, summary).Write(file)
}

func writeStubs(path string, records []resolve.ResolutionRecord) error {
	output := stubgen.BuildOutput(stubgen.PackageName(filepath.Dir(path)), records)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating stub file %s: %w", path, err)
	}
	defer file.Close()
	return output.Generate(file)
}
