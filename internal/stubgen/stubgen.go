// Package stubgen emits Go step-definition stubs for unmatched steps. The
// generated functions carry @step comments, so a later scan picks them up
// once implemented. Stubs always go to a fresh writer; existing sources are
// never edited in place.
package stubgen

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

var (
	quotedSpanRe = regexp.MustCompile(`"[^"]*"`)
	floatRe      = regexp.MustCompile(`(^|\s)-?\d+\.\d+(\s|$)`)
	intRe        = regexp.MustCompile(`(^|\s)-?\d+(\s|$)`)
)

// SuggestPattern proposes a definition pattern for a step text: quoted
// spans become {string}, bare numerics become {int} or {float}.
func SuggestPattern(text string) string {
	pattern := quotedSpanRe.ReplaceAllString(text, "{string}")
	// Repeat until stable: the leading/trailing space groups overlap
	// between adjacent numbers.
	for {
		next := floatRe.ReplaceAllString(pattern, "${1}{float}$2")
		next = intRe.ReplaceAllString(next, "${1}{int}$2")
		if next == pattern {
			return pattern
		}
		pattern = next
	}
}

// FuncName derives an exported Go identifier from a step's keyword and
// suggested pattern.
func FuncName(keyword resolve.Keyword, pattern string) string {
	var b strings.Builder
	b.WriteString(string(keyword))

	upperNext := true
	for _, r := range pattern {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if upperNext {
				r = unicode.ToUpper(r)
				upperNext = false
			}
			b.WriteRune(r)
		default:
			upperNext = true
		}
	}
	return b.String()
}

// Stub is one generated step definition.
type Stub struct {
	Keyword  resolve.Keyword
	Pattern  string
	FuncName string
}

// Output collects the stubs to generate into one file.
type Output struct {
	PackageName string
	Stubs       []Stub
}

// BuildOutput assembles stubs for every unmatched record, deduplicated by
// keyword and suggested pattern. Colliding function names get a numeric
// suffix.
func BuildOutput(packageName string, records []resolve.ResolutionRecord) Output {
	output := Output{PackageName: packageName}

	seenPatterns := make(map[string]bool)
	seenNames := make(map[string]bool)

	for _, record := range records {
		if record.Classification != resolve.Unmatched {
			continue
		}

		pattern := SuggestPattern(record.Step.Text)
		key := string(record.Step.Keyword) + "\x00" + pattern
		if seenPatterns[key] {
			continue
		}
		seenPatterns[key] = true

		name := FuncName(record.Step.Keyword, pattern)
		base := name
		for suffix := 2; seenNames[name]; suffix++ {
			name = fmt.Sprintf("%s%d", base, suffix)
		}
		seenNames[name] = true

		output.Stubs = append(output.Stubs, Stub{
			Keyword:  record.Step.Keyword,
			Pattern:  pattern,
			FuncName: name,
		})
	}

	return output
}

// paramTypes maps placeholder names to stub parameter types.
var paramTypes = map[string]string{
	"string": "string",
	"int":    "int",
	"float":  "float64",
	"word":   "string",
}

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Generate writes the stub file.
func (o Output) Generate(writer io.Writer) error {
	pkgName := o.PackageName
	if pkgName == "" {
		pkgName = "steps"
	}
	file := jen.NewFile(pkgName)

	for _, stub := range o.Stubs {
		params := make([]jen.Code, 0)
		for i, match := range placeholderRe.FindAllStringSubmatch(stub.Pattern, -1) {
			paramType, ok := paramTypes[strings.ToLower(match[1])]
			if !ok {
				paramType = "string"
			}
			params = append(params, jen.Id(fmt.Sprintf("arg%d", i+1)).Id(paramType))
		}

		file.Comment(fmt.Sprintf("@step %s `%s`", stub.Keyword, stub.Pattern))
		file.Func().Id(stub.FuncName).Params(params...).Error().Block(
			jen.Return(jen.Qual("errors", "New").Call(jen.Lit("pending step"))),
		)
	}

	_, err := writer.Write([]byte(file.GoString()))
	return err
}
