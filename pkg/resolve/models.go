// Package resolve implements static step resolution for behavior-driven
// test suites: it classifies every scenario step as unmatched, matched, or
// ambiguous against a set of compiled step-definition patterns.
//
// The package performs no I/O. Callers feed it raw step lines and raw
// definition patterns (see the scanners in this repository) and consume
// ResolutionRecords and a Summary.
package resolve

// Keyword is a Gherkin step keyword.
type Keyword string

const (
	KeywordGiven Keyword = "Given"
	KeywordWhen  Keyword = "When"
	KeywordThen  Keyword = "Then"

	// KeywordAnd only appears on raw input lines. BuildCatalog rewrites it
	// to the nearest preceding concrete keyword; it never survives into a
	// Step or a DefinitionPattern.
	KeywordAnd Keyword = "And"
)

// IsConcrete reports whether the keyword is one of Given/When/Then.
func (k Keyword) IsConcrete() bool {
	return k == KeywordGiven || k == KeywordWhen || k == KeywordThen
}

// RawLine is one scenario line as extracted from a feature source, before
// catalog normalization.
type RawLine struct {
	Keyword    Keyword
	Text       string
	ScenarioID string
	FeatureID  string
}

// Step is one normalized scenario step. Keyword is always concrete and Text
// is trimmed and non-empty.
type Step struct {
	Keyword    Keyword
	Text       string
	ScenarioID string
	FeatureID  string
}

// PatternKind tells how a definition pattern's text is interpreted.
type PatternKind int

const (
	// KindLiteral matches the step text by exact string equality.
	KindLiteral PatternKind = iota
	// KindExpression contains {string}/{int}/{float}/{word} placeholders
	// that are expanded to regex fragments at compile time.
	KindExpression
	// KindRegex is a raw regular expression used verbatim between anchors.
	KindRegex
)

// String returns a human-readable label for the pattern kind.
func (k PatternKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindExpression:
		return "expression"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// DefinitionPattern is one step-definition pattern as declared in source.
type DefinitionPattern struct {
	// Keyword is Given, When, or Then. Definitions are never declared as And.
	Keyword Keyword

	// RawPattern is the pattern text exactly as declared.
	RawPattern string

	// Kind is computed once from RawPattern at construction.
	Kind PatternKind

	// SourceRef identifies where the definition was declared (e.g.
	// "steps/login.ts:42"). Carried through for diagnostics only.
	SourceRef string
}

// NewDefinitionPattern builds a DefinitionPattern, classifying the raw
// pattern as literal, expression, or regex.
func NewDefinitionPattern(keyword Keyword, raw, sourceRef string) DefinitionPattern {
	return DefinitionPattern{
		Keyword:    keyword,
		RawPattern: raw,
		Kind:       KindOf(raw),
		SourceRef:  sourceRef,
	}
}

// Classification is the resolution outcome for one step.
type Classification int

const (
	// Unmatched means no definition pattern accepted the step.
	Unmatched Classification = iota
	// Matched means exactly one definition pattern accepted the step.
	Matched
	// Ambiguous means two or more definition patterns accepted the step.
	Ambiguous
)

// String returns a human-readable label for the classification.
func (c Classification) String() string {
	switch c {
	case Unmatched:
		return "unmatched"
	case Matched:
		return "matched"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// ResolutionRecord is the resolution result for one step.
type ResolutionRecord struct {
	Step           Step
	Classification Classification

	// Candidates holds the SourceRefs of every definition pattern whose
	// compiled matcher accepted the step's text, in matcher input order.
	Candidates []string
}

// Counts holds unmatched/matched/ambiguous tallies.
type Counts struct {
	Total     int
	Unmatched int
	Matched   int
	Ambiguous int
}

// Summary aggregates resolution counts globally and per feature.
type Summary struct {
	Global    Counts
	ByFeature map[string]Counts
}
