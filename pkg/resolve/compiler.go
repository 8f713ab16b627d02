package resolve

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// placeholderFragments is the closed placeholder vocabulary and the regex
// fragment each placeholder expands to. Callers needing more types extend
// this table in source; there is deliberately no runtime registry.
var placeholderFragments = map[string]string{
	// A double-quoted run of anything except a double quote, quotes
	// included in the matched span.
	"string": `"[^"]*"`,
	// Decimal digits with an optional leading minus.
	"int": `-?\d+`,
	// {int} shape with an optional fractional part.
	"float": `-?\d+(?:\.\d+)?`,
	// One or more word characters, no whitespace.
	"word": `\w+`,
}

// placeholderRe finds {name} tokens in an expression pattern.
var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// KindOf classifies a raw definition pattern.
//
// A pattern containing a {name} token is an expression. A pattern without
// placeholders but with regex metacharacters (anchors, alternation,
// character classes, unescaped groups, backslash escapes) is a raw regex.
// Everything else is a literal.
func KindOf(raw string) PatternKind {
	if placeholderRe.MatchString(raw) {
		return KindExpression
	}
	if hasRegexMeta(raw) {
		return KindRegex
	}
	return KindLiteral
}

func hasRegexMeta(raw string) bool {
	escaped := false
	for _, r := range raw {
		if escaped {
			// A backslash escape (\d, \w, \(, ...) only appears in
			// regex-kind patterns.
			return true
		}
		switch r {
		case '\\':
			escaped = true
		case '^', '$', '|', '[', ']', '(', ')', '*', '+', '?':
			return true
		}
	}
	return false
}

// CompiledMatcher is an anchored matching predicate derived from one
// DefinitionPattern. It tests the entire step text; a substring match is
// not a match.
type CompiledMatcher struct {
	Keyword   Keyword
	SourceRef string

	// Arity is the placeholder count (capture-group count for regex-kind
	// patterns). Diagnostics only; classification never extracts arguments.
	Arity int

	// literal is set for literal-kind patterns, re for the other kinds.
	literal string
	exact   bool
	re      *regexp.Regexp
}

// Matches reports whether the matcher accepts the whole text.
func (m *CompiledMatcher) Matches(text string) bool {
	if m.exact {
		return m.literal == text
	}
	return m.re.MatchString(text)
}

// Compile turns a definition pattern into an anchored matcher.
//
// Compilation is pure and deterministic: compiling the same pattern twice
// yields equivalent matchers. A regex-kind pattern that does not compile,
// or an expression-kind pattern referencing a placeholder outside the
// recognized vocabulary, yields a *InvalidPatternError.
func Compile(p DefinitionPattern) (*CompiledMatcher, error) {
	m := &CompiledMatcher{
		Keyword:   p.Keyword,
		SourceRef: p.SourceRef,
	}

	switch p.Kind {
	case KindLiteral:
		m.exact = true
		m.literal = p.RawPattern

	case KindExpression:
		body, arity, err := expandExpression(p.RawPattern)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Reason: err.Error()}
		}
		re, err := regexp.Compile("^(?:" + body + ")$")
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Reason: "does not compile", Err: err}
		}
		m.re = re
		m.Arity = arity

	case KindRegex:
		// The declared regex body is respected as-is between anchors; no
		// placeholder substitution. The non-capturing group keeps the
		// anchors binding the whole body when it carries a top-level
		// alternation.
		re, err := regexp.Compile("^(?:" + p.RawPattern + ")$")
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Reason: "does not compile", Err: err}
		}
		m.re = re
		m.Arity = re.NumSubexp()

	default:
		return nil, &InvalidPatternError{Pattern: p, Reason: "unknown pattern kind"}
	}

	return m, nil
}

// expandExpression escapes the literal segments of an expression pattern
// and substitutes every recognized placeholder with its regex fragment.
func expandExpression(raw string) (body string, arity int, err error) {
	var b strings.Builder
	prev := 0

	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(raw, -1) {
		b.WriteString(regexp.QuoteMeta(raw[prev:loc[0]]))

		name := raw[loc[2]:loc[3]]
		fragment, ok := placeholderFragments[name]
		if !ok {
			return "", 0, fmt.Errorf("unrecognized placeholder {%s}", name)
		}
		b.WriteString(fragment)
		arity++
		prev = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(raw[prev:]))

	return b.String(), arity, nil
}

// CompileCache memoizes compiled matchers by keyword and raw pattern.
// Compilation is pure, so a cache hit is always equivalent to recompiling;
// the lock only prevents redundant work, not incorrect results. Safe for
// concurrent use.
type CompileCache struct {
	mu       sync.RWMutex
	matchers map[string]*CompiledMatcher
}

// NewCompileCache creates an empty cache.
func NewCompileCache() *CompileCache {
	return &CompileCache{matchers: make(map[string]*CompiledMatcher)}
}

// Compile returns the cached matcher for the pattern, compiling and storing
// it on first use. Compilation failures are not cached. The SourceRef of
// the first compilation wins; callers that need per-declaration SourceRefs
// (duplicate detection) should call the package-level Compile instead.
func (c *CompileCache) Compile(p DefinitionPattern) (*CompiledMatcher, error) {
	key := string(p.Keyword) + "\x00" + p.RawPattern

	c.mu.RLock()
	m, ok := c.matchers[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	m, err := Compile(p)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.matchers[key] = m
	c.mu.Unlock()

	return m, nil
}
