// Package scanner extracts step-definition patterns from step-definition
// sources: cucumber-js TypeScript/JavaScript files and Go files annotated
// with @step comments.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

var (
	// Given('...'), When("..."), Then(`...`) calls and their @-decorator
	// forms. The body group runs up to the matching quote; one alternative
	// per quote style because RE2 has no backreferences.
	quotedCallRe = regexp.MustCompile("@?(Given|When|Then)\\(\\s*(?:'([^']*)'|\"([^\"]*)\"|`([^`]*)`)")

	// Given(/^...$/, ...) regex-literal form, optional flags.
	regexCallRe = regexp.MustCompile(`@?(Given|When|Then)\(\s*/(.*?)/[a-z]*\s*[,)]`)
)

// ScanTypeScriptDir walks a directory tree and scrapes step definitions
// from every .ts and .js file.
func ScanTypeScriptDir(directory string) ([]resolve.DefinitionPattern, error) {
	patterns := make([]resolve.DefinitionPattern, 0)

	err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(info.Name())
		if ext != ".ts" && ext != ".js" {
			return nil
		}

		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()

		found, err := scanTypeScriptSource(path, file)
		if err != nil {
			return err
		}
		patterns = append(patterns, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return patterns, nil
}

// scanTypeScriptSource scrapes one source. Recognized declaration forms:
//
//	Given('pattern', ...)    When("pattern", ...)    Then(`pattern`, ...)
//	@Given('pattern')        (decorator style)
//	Given(/^pattern$/, ...)  (regex literal; delimiters and outer anchors
//	                          are stripped, the matcher re-anchors)
//
// Multi-line patterns are not recognized; cucumber patterns are one-liners
// in practice and the original suites never spread them.
func scanTypeScriptSource(path string, reader io.Reader) ([]resolve.DefinitionPattern, error) {
	patterns := make([]resolve.DefinitionPattern, 0)

	lineNo := 0
	scan := bufio.NewScanner(reader)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scan.Scan() {
		lineNo++
		line := scan.Text()

		for _, match := range quotedCallRe.FindAllStringSubmatch(line, -1) {
			keyword, raw := resolve.Keyword(match[1]), match[2]
			if raw == "" {
				raw = match[3]
			}
			if raw == "" {
				raw = match[4]
			}
			if strings.TrimSpace(raw) == "" {
				continue
			}
			patterns = append(patterns, resolve.NewDefinitionPattern(
				keyword, raw, fmt.Sprintf("%s:%d", path, lineNo)))
		}

		for _, match := range regexCallRe.FindAllStringSubmatch(line, -1) {
			keyword, body := resolve.Keyword(match[1]), stripAnchors(match[2])
			if strings.TrimSpace(body) == "" {
				continue
			}
			patterns = append(patterns, resolve.NewDefinitionPattern(
				keyword, body, fmt.Sprintf("%s:%d", path, lineNo)))
		}
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return patterns, nil
}

// stripAnchors removes the outer ^ and $ of a regex-literal body. The
// compiler re-anchors every pattern, so keeping them would be redundant
// (and their absence in source must not weaken matching).
func stripAnchors(body string) string {
	body = strings.TrimPrefix(body, "^")
	body = strings.TrimSuffix(body, "$")
	return body
}
