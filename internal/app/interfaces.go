//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=app
package app

import (
	"context"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

type (
	// FeatureScanner produces raw step lines from feature sources.
	FeatureScanner interface {
		ScanFeatures(ctx context.Context, directories []string, tagExpression string) ([]resolve.RawLine, error)
	}

	// DefinitionScanner produces definition patterns from step-definition
	// sources.
	DefinitionScanner interface {
		ScanDefinitions(ctx context.Context, tsDirectories, goDirectories []string) ([]resolve.DefinitionPattern, error)
	}
)
