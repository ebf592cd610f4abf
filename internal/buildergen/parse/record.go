package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sublee/buildergen/internal/codefmt"
)

// UnsupportedShape is the diagnostic for annotated declarations which are not
// structs with named fields.
const UnsupportedShape = "Builder only supports structs with named fields"

// Record is a struct type annotated with the Builder directive.
type Record struct {
	File      *ast.File
	Spec      *ast.TypeSpec
	TypeName  *types.TypeName
	Struct    *types.Struct
	Directive *ast.Comment

	// Members are the settable fields in declaration order.
	Members []Member
}

// Name returns the name of the struct type.
func (r *Record) Name() string { return r.Spec.Name.Name }

// Pos returns the position of the type name.
func (r *Record) Pos() token.Pos { return r.Spec.Name.Pos() }

// Object returns the type name object.
func (r *Record) Object() types.Object { return r.TypeName }

// Generic reports whether the struct type has type parameters.
func (r *Record) Generic() bool {
	named, ok := r.TypeName.Type().(*types.Named)
	return ok && named.TypeParams().Len() != 0
}

// Member is a named field of a [Record].
type Member struct {
	// Name is the field name. For embedded fields, it is the implicit name,
	// e.g., "Time" for an embedded *time.Time.
	Name string

	Var      *types.Var
	Embedded bool
}

// Pos returns the position of the field.
func (m Member) Pos() token.Pos { return m.Var.Pos() }

// parseRecord checks the shape of an annotated type declaration and collects
// its members.
func (p *Parser) parseRecord(file *ast.File, spec *ast.TypeSpec, dir *ast.Comment) (*Record, error) {
	unsupported := codefmt.Errorf(p, spec.Name, "%s", UnsupportedShape)

	if spec.Assign.IsValid() {
		// type R = T
		return nil, unsupported
	}

	if _, ok := spec.Type.(*ast.StructType); !ok {
		// type R int, type R interface{...}, type R T, ...
		return nil, unsupported
	}

	obj, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, unsupported
	}
	t, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, unsupported
	}

	var members []Member
	for v := range t.Fields() {
		if v.Name() == "_" {
			continue
		}
		members = append(members, Member{
			Name:     v.Name(),
			Var:      v,
			Embedded: v.Embedded(),
		})
	}
	if len(members) == 0 {
		// type R struct{}
		return nil, unsupported
	}

	return &Record{
		File:      file,
		Spec:      spec,
		TypeName:  obj,
		Struct:    t,
		Directive: dir,
		Members:   members,
	}, nil
}
