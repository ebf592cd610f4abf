// Package testpkg type-checks Go source in memory for tests.
package testpkg

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of packages created by [Load].
const PkgPath = "example.com/p"

// Load parses and type-checks the given files as a single package. Files are
// named "a.go", "b.go", and so on. Standard library imports are resolved from
// source. The files must type-check.
func Load(t testing.TB, srcs ...string) *packages.Package {
	t.Helper()
	pkg := LoadWithTypeErrors(t, srcs...)
	require.Empty(t, pkg.TypeErrors)
	return pkg
}

// LoadWithTypeErrors is like [Load] but keeps type errors in TypeErrors of the
// package instead of failing.
func LoadWithTypeErrors(t testing.TB, srcs ...string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	var files []*ast.File
	var names []string
	for i, src := range srcs {
		name := fmt.Sprintf("%c.go", 'a'+i)
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments|parser.AllErrors)
		require.NoError(t, err)
		files = append(files, file)
		names = append(names, name)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	var typeErrs []types.Error
	conf := types.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			typeErrs = append(typeErrs, err.(types.Error))
		},
	}
	pkg, _ := conf.Check(PkgPath, fset, files, info)

	return &packages.Package{
		ID:        PkgPath,
		Name:      pkg.Name(),
		PkgPath:   PkgPath,
		GoFiles:   names,
		Fset:      fset,
		Syntax:    files,
		Types:     pkg,
		TypesInfo: info,

		TypeErrors: typeErrs,
	}
}
