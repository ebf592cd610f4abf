package parse

import (
	"errors"
	"go/ast"

	"github.com/sublee/buildergen/internal/codefmt"
)

// Validate checks for Builder directives outside type declarations. It must be
// called after [Parser.ParseRecords] because it relies on the directives
// claimed there. It collects all errors instead of stopping at the first
// error.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Files() {
		owners := docOwners(file)
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !IsDirective(c) {
					continue
				}
				if _, ok := p.claimed[c.Pos()]; ok {
					continue
				}

				// Point at the declaration holding the directive if any, so
				// that the error is reported on a line of code.
				var at codefmt.Poser = c
				if owner, ok := owners[group]; ok {
					at = owner
				}
				err := codefmt.Errorf(p, at, "misplaced %s directive; it must annotate a struct type declaration", Directive)
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

// docOwners maps doc comment groups to the name of the node they document.
func docOwners(file *ast.File) map[*ast.CommentGroup]ast.Node {
	owners := make(map[*ast.CommentGroup]ast.Node)
	ast.Inspect(file, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.FuncDecl:
			if node.Doc != nil {
				owners[node.Doc] = node.Name
			}
		case *ast.GenDecl:
			if node.Doc != nil && len(node.Specs) != 0 {
				owners[node.Doc] = specName(node.Specs[0])
			}
		case *ast.ValueSpec:
			if node.Doc != nil {
				owners[node.Doc] = node.Names[0]
			}
		case *ast.Field:
			if node.Doc == nil {
				break
			}
			if len(node.Names) != 0 {
				owners[node.Doc] = node.Names[0]
			} else {
				owners[node.Doc] = node.Type
			}
		}
		return true
	})
	return owners
}

func specName(spec ast.Spec) ast.Node {
	switch spec := spec.(type) {
	case *ast.ValueSpec:
		return spec.Names[0]
	case *ast.TypeSpec:
		return spec.Name
	case *ast.ImportSpec:
		return spec.Path
	}
	return spec
}
