// Package source is the Go front end for the extractor: it parses annotated
// Go files and presents their declarations through the extractor's capability
// interfaces.
package source

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"github.com/veltran/tsbridge/internal/errors"
	"github.com/veltran/tsbridge/internal/extractor"
)

// Package holds the declaration units of one parsed Go package
type Package struct {
	Name  string
	Units []extractor.Unit
}

// LoadDirectory parses all Go files in a directory (excluding tests) and
// adapts them into declaration units. Units are ordered by file name so
// repeated runs see identical input.
func LoadDirectory(dir string) (*Package, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(info fs.FileInfo) bool {
		return !strings.HasSuffix(info.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError("directory "+dir, err)
	}
	if len(pkgs) == 0 {
		return nil, nil
	}

	// Pick the single non-test package; directories with multiple packages
	// are not supported, matching the Go build rule.
	var pkg *ast.Package
	var pkgName string
	for name, p := range pkgs {
		pkg = p
		pkgName = name
		break
	}

	fileNames := make([]string, 0, len(pkg.Files))
	for name := range pkg.Files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	files := make([]*ast.File, 0, len(fileNames))
	for _, name := range fileNames {
		files = append(files, pkg.Files[name])
	}
	resolver := newTypeResolver(files)

	result := &Package{Name: pkgName}
	for i, name := range fileNames {
		result.Units = append(result.Units, newUnit(name, files[i], resolver))
	}
	return result, nil
}

// ParseSource adapts a single Go source string into a declaration unit.
// Primarily a seam for tests and embedding callers.
func ParseSource(filename, src string) (extractor.Unit, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.WrapParseError(filename, err)
	}
	resolver := newTypeResolver([]*ast.File{file})
	return newUnit(filename, file, resolver), nil
}
