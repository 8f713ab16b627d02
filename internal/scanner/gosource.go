package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/Mojo-Solo/stepcheck/pkg/resolve"
)

// StepPrefix marks a function doc comment as a step definition:
//
//	// @step Given `I have {int} apples`
//	func HaveApples(count int) error { ... }
const StepPrefix = "@step"

var stepCommentRe = regexp.MustCompile("^// @step (Given|When|Then) `(.+)`$")

// ScanGoDir parses every Go package under the directory tree and collects
// step definitions declared via @step doc comments.
func ScanGoDir(directory string) ([]resolve.DefinitionPattern, error) {
	directories := []string{directory}
	err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != directory {
			directories = append(directories, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	patterns := make([]resolve.DefinitionPattern, 0)
	fset := token.NewFileSet()

	for _, dir := range directories {
		packages, err := parser.ParseDir(fset, dir, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", dir, err)
		}

		for _, packageData := range packages {
			for _, node := range packageData.Files {
				for _, decl := range node.Decls {
					fnDecl, ok := decl.(*ast.FuncDecl)
					if !ok {
						continue
					}
					keyword, raw, ok := stepComment(fnDecl)
					if !ok {
						continue
					}
					position := fset.Position(fnDecl.Pos())
					patterns = append(patterns, resolve.NewDefinitionPattern(
						keyword, raw, fmt.Sprintf("%s:%d", position.Filename, position.Line)))
				}
			}
		}
	}

	return patterns, nil
}

// stepComment returns the keyword and backtick-quoted pattern of the first
// @step line in the function's doc comment.
func stepComment(fnDecl *ast.FuncDecl) (resolve.Keyword, string, bool) {
	if fnDecl.Doc == nil {
		return "", "", false
	}
	for _, comment := range fnDecl.Doc.List {
		match := stepCommentRe.FindStringSubmatch(comment.Text)
		if match != nil {
			return resolve.Keyword(match[1]), match[2], true
		}
	}
	return "", "", false
}
