package stubgen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// PackageName picks the package name for a stub file destined for dir.
// It prefers the package clause of existing Go files there, then the last
// segment of the module path when dir is a module root, then the directory
// name. Hyphens and dots are sanitized into valid identifier characters.
func PackageName(dir string) string {
	if name := packageClauseIn(dir); name != "" {
		return name
	}
	if name := moduleBaseName(dir); name != "" {
		return name
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "steps"
	}
	if name := sanitizePackageName(filepath.Base(abs)); name != "" {
		return name
	}
	return "steps"
}

func packageClauseIn(dir string) string {
	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, parseErr := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if parseErr != nil {
			continue
		}
		if f.Name != nil && f.Name.Name != "" {
			return f.Name.Name
		}
	}
	return ""
}

func moduleBaseName(dir string) string {
	goModPath := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	modFile, err := modfile.Parse(goModPath, data, nil)
	if err != nil || modFile.Module == nil {
		return ""
	}
	return sanitizePackageName(filepath.Base(modFile.Module.Mod.Path))
}

// sanitizePackageName turns a raw directory or module path segment into a
// valid Go package name.
func sanitizePackageName(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		case r == '-' || r == '.':
			if i > 0 {
				b.WriteRune('_')
			}
		}
	}

	name := b.String()
	if name == "" {
		return ""
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	return name
}
