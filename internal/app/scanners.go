package app

import (
	"context"
	"fmt"
	"os"

	tagexpressions "github.com/cucumber/tag-expressions/go/v6"

	"github.com/Mojo-Solo/stepcheck/internal/scanner"
	"github.com/Mojo-Solo/stepcheck/pkg/gherkinscan"
	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// GherkinFeatureScanner reads feature files from disk via gherkinscan.
type GherkinFeatureScanner struct{}

func NewGherkinFeatureScanner() *GherkinFeatureScanner {
	return &GherkinFeatureScanner{}
}

func (s *GherkinFeatureScanner) ScanFeatures(ctx context.Context, directories []string, tagExpression string) ([]resolve.RawLine, error) {
	var evaluator tagexpressions.Evaluatable
	if tagExpression != "" {
		parsed, err := tagexpressions.Parse(tagExpression)
		if err != nil {
			return nil, fmt.Errorf("invalid tag expression %q: %w", tagExpression, err)
		}
		evaluator = parsed
	}

	files, err := gherkinscan.SearchFeatureFilesIn(directories)
	if err != nil {
		return nil, err
	}

	lines := make([]resolve.RawLine, 0)
	for _, file := range files {
		reader, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not read file %s: %w", file, err)
		}

		document, err := gherkinscan.ParseGherkinFile(reader)
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("gherkin parse error in file %s: %w", file, err)
		}

		lines = append(lines, gherkinscan.ExtractRawLines(document, file, evaluator)...)
	}
	return lines, nil
}

// SourceDefinitionScanner scrapes TypeScript/JavaScript and Go
// step-definition sources from disk.
type SourceDefinitionScanner struct{}

func NewSourceDefinitionScanner() *SourceDefinitionScanner {
	return &SourceDefinitionScanner{}
}

func (s *SourceDefinitionScanner) ScanDefinitions(ctx context.Context, tsDirectories, goDirectories []string) ([]resolve.DefinitionPattern, error) {
	patterns := make([]resolve.DefinitionPattern, 0)

	for _, dir := range tsDirectories {
		found, err := scanner.ScanTypeScriptDir(dir)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, found...)
	}
	for _, dir := range goDirectories {
		found, err := scanner.ScanGoDir(dir)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, found...)
	}

	return patterns, nil
}
