package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildergen/internal/codefmt"
)

// Exclude reports whether a file should be ignored by the [Parser]. It
// receives the file name as recorded in the package's file set.
type Exclude func(filename string) bool

// Parser parses an AST of the underlying package to collect records annotated
// with the Builder directive.
type Parser struct {
	pkg     *packages.Package
	exclude Exclude

	// claimed holds positions of directive comments consumed by records,
	// including ones rejected with an error.
	claimed map[token.Pos]struct{}
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. exclude may be nil.
func New(pkg *packages.Package, exclude Exclude) (*Parser, error) {
	for _, req := range []struct {
		what string
		ok   bool
	}{
		{"name", pkg.Name != ""},
		{"path", pkg.PkgPath != ""},
		{"types", pkg.Types != nil},
		{"fset", pkg.Fset != nil},
		{"syntax", pkg.Syntax != nil},
		{"types info", pkg.TypesInfo != nil},
	} {
		if !req.ok {
			return nil, fmt.Errorf("need pkg %s", req.what)
		}
	}
	return &Parser{
		pkg:     pkg,
		exclude: exclude,
		claimed: make(map[token.Pos]struct{}),
	}, nil
}

// Files returns the syntax of the package except excluded files.
func (p *Parser) Files() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if p.exclude != nil && p.exclude(p.Filename(file)) {
			continue
		}
		files = append(files, file)
	}
	return files
}

// Filename returns the name of the file in the package's file set.
func (p *Parser) Filename(file *ast.File) string {
	return p.pkg.Fset.File(file.Pos()).Name()
}

// ParseRecords collects every type declaration annotated with the Builder
// directive. Records are returned in source order. It collects all errors
// instead of stopping at the first one; records with errors are not returned.
func (p *Parser) ParseRecords() ([]*Record, error) {
	records := linkedhashmap.New() // token.Pos -> *Record
	var errs error

	for _, file := range p.Files() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			// A directive on the declaration itself annotates its only type.
			// In a group of types, it is ambiguous.
			declDirs := directives(gen.Doc)
			if len(declDirs) != 0 && len(gen.Specs) > 1 {
				p.claim(declDirs)
				err := codefmt.Errorf(p, declDirs[0], "%s must annotate a single type; move it onto a type in the group", Directive)
				errs = errors.Join(errs, err)
				declDirs = nil
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)

				dirs := slices.Concat(declDirs, directives(spec.Doc))
				if len(dirs) == 0 {
					continue
				}
				p.claim(dirs)

				rec, err := p.parseRecord(file, spec, dirs[0])
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				records.Put(spec.Pos(), rec)
			}
		}
	}

	out := make([]*Record, 0, records.Size())
	it := records.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Record))
	}
	return out, errs
}

// claim marks the directives as consumed by a type declaration.
func (p *Parser) claim(dirs []*ast.Comment) {
	for _, dir := range dirs {
		p.claimed[dir.Pos()] = struct{}{}
	}
}
