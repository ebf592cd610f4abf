package emit

import (
	"go/token"

	"github.com/sublee/buildergen/internal/buildergen/parse"
	"github.com/sublee/buildergen/internal/codefmt"
	"github.com/sublee/buildergen/internal/naming"
)

// Builder writes the builder of a [parse.Record].
type Builder struct {
	rec     *parse.Record
	name    string
	factory string
	slots   []slot
}

// slot is a builder field holding the value of a member until Build.
type slot struct {
	parse.Member

	// field is the name of the builder field.
	field string
}

// New plans the builder of the record. It never fails because the record has
// already been validated by the parser.
func New(rec *parse.Record) *Builder {
	name := naming.UpperFirst(rec.Name()) + "Builder"

	// Fields and methods share a namespace in Go.
	ns := codefmt.NewNS(nil)
	for _, m := range rec.Members {
		ns.Reserve(m.Name)
	}
	ns.Reserve("Build")

	slots := make([]slot, len(rec.Members))
	for i, m := range rec.Members {
		slots[i] = slot{Member: m, field: ns.Name(naming.LowerCamel(m.Name))}
	}

	return &Builder{
		rec:     rec,
		name:    name,
		factory: "New" + name,
		slots:   slots,
	}
}

// Name returns the name of the builder struct, e.g., "ServerBuilder".
func (b *Builder) Name() string { return b.name }

// Factory returns the name of the factory function, e.g., "NewServerBuilder".
func (b *Builder) Factory() string { return b.factory }

// Record returns the record which the builder builds.
func (b *Builder) Record() *parse.Record { return b.rec }

// Fields returns the names of the builder fields in declaration order of the
// members.
func (b *Builder) Fields() []string {
	fields := make([]string, len(b.slots))
	for i, s := range b.slots {
		fields[i] = s.field
	}
	return fields
}

// Pos returns the position of the record.
func (b *Builder) Pos() token.Pos { return b.rec.Pos() }

// WriteDefineCode writes the builder struct, its setters, Build, and the
// factory function. The namespace of w must be local to this builder because
// receiver and parameter names are reserved in it.
func (b *Builder) WriteDefineCode(w *codefmt.Writer) {
	// Member types are qualified first so that the receiver and the parameter
	// never shadow a package they refer to.
	typeNames := make([]string, len(b.slots))
	for i, s := range b.slots {
		typeNames[i] = w.Type(s.Var.Type())
	}
	errorsPkg := w.Import("errors", "errors")
	for _, imp := range w.Imports() {
		w.Reserve(imp.Name)
	}

	c := code{
		Builder: b,
		recv:    w.Name("b"),
		value:   w.Name("value"),
		errors:  errorsPkg,
		types:   typeNames,
	}
	c.writeStruct(w)
	for i := range b.slots {
		c.writeSetter(w, i)
	}
	c.writeBuild(w)
	c.writeFactory(w)
}

// code holds names resolved for writing a builder.
type code struct {
	*Builder

	recv   string // receiver of the builder methods
	value  string // parameter of the setters
	errors string // name of the imported "errors" package

	// types are the member types qualified for the generated file.
	types []string
}

// writeStruct writes the builder struct declaration.
func (c code) writeStruct(w *codefmt.Writer) {
	w.Printf("// %s builds %s values one field at a time. Create it with %s.\n", c.name, c.rec.Name(), c.factory)
	w.Printf("type %s struct {\n", c.name)
	for i, s := range c.slots {
		w.Printf("%s *%s\n", s.field, c.types[i])
	}
	w.Printf("}\n\n")
}
