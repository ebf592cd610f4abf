package buildergen

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildergen/internal/buildergen/emit"
	"github.com/sublee/buildergen/internal/buildergen/parse"
	"github.com/sublee/buildergen/internal/codefmt"
)

// Buildergen generates builder code for the target package. Call [Build] and
// then [Generate] to get the generated code. All potential errors are returned
// by [Build]. Once [Build] succeeds, [Generate] never fails.
type Buildergen struct {
	p   *parse.Parser
	ns  *codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	builders []*emit.Builder
	generics []*parse.Record
}

// New creates a new [Buildergen] for the given package. If the package does
// not satisfy the requirements, an error is returned. The package must have
// its Syntax, Types and TypesInfo. Type errors outside of records are
// tolerated because calls to builders which are not generated yet cannot
// type-check. exclude may be nil.
//
// Files generated by buildergen are ignored, so the result is the same whether
// or not the previous output is part of the package.
func New(pkg *packages.Package, exclude parse.Exclude) (*Buildergen, error) {
	generated := make(map[string]bool) // by file name
	parser, err := parse.New(pkg, func(filename string) bool {
		return generated[filename] || exclude != nil && exclude(filename)
	})
	if err != nil {
		return nil, err
	}
	for _, file := range pkg.Syntax {
		if generatedFile(file) {
			generated[parser.Filename(file)] = true
		}
	}

	// Names declared by the previous output are free to be declared again.
	ns := codefmt.NewNS(nil)
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if f := pkg.Fset.File(scope.Lookup(name).Pos()); f == nil || !generated[f.Name()] {
			ns.Reserve(name)
		}
	}

	var buf bytes.Buffer
	return &Buildergen{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg, ns.Clone()),
	}, nil
}

// Build prepares code generation by parsing records and planning their
// builders. All potential errors are returned by this method. It must be
// called before [Generate].
func (bg *Buildergen) Build() error {
	recs, errs := bg.p.ParseRecords()
	errs = errors.Join(errs, bg.p.Validate())
	if errs != nil {
		return errs
	}

	for _, rec := range recs {
		if err := bg.typeErrors(rec); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if rec.Generic() {
			// Type parameters are not carried over to builders.
			bg.generics = append(bg.generics, rec)
			continue
		}

		// Setters are named after the fields.
		for _, m := range rec.Members {
			if m.Name == "Build" {
				err := codefmt.Errorf(bg.p, m, "cannot derive Builder for %s: field Build conflicts with the Build method", rec.Name())
				errs = errors.Join(errs, err)
			}
		}

		b := emit.New(rec)
		bg.builders = append(bg.builders, b)

		// Builders must not collide with declarations in the package and
		// with each other.
		for _, name := range []string{b.Name(), b.Factory()} {
			if !bg.ns.Reserve(name) {
				err := codefmt.Errorf(bg.p, rec, "cannot derive Builder for %s: %s is already declared", rec.Name(), name)
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

// typeErrors returns the type errors located in the declaration of the record.
// Such a record has members of invalid types which cannot be written.
func (bg *Buildergen) typeErrors(rec *parse.Record) error {
	var errs error
	for _, e := range bg.p.Pkg().TypeErrors {
		if e.Pos >= rec.Spec.Pos() && e.Pos < rec.Spec.End() {
			err := codefmt.Errorf(bg.p, codefmt.Pos(e.Pos), "%s", e.Msg)
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// Builders returns the planned builders in source order.
func (bg *Buildergen) Builders() []*emit.Builder {
	return bg.builders
}

// Generics returns the records skipped because they have type parameters.
func (bg *Buildergen) Generics() []*parse.Record {
	return bg.generics
}

// Generate generates builder code for the package. It must be called after
// [Build] succeeds. It returns nil if there is no builder to generate.
func (bg *Buildergen) Generate() []byte {
	if len(bg.builders) == 0 {
		return nil
	}
	bg.writeBuilderCode()
	return bg.frameCode()
}

// writeBuilderCode writes the declarations of every builder, each preceded by
// a comment locating its record.
func (bg *Buildergen) writeBuilderCode() {
	for _, b := range bg.builders {
		name := filepath.Base(bg.p.Filename(b.Record().File))
		fmt.Fprintf(bg.buf, "// %s: %s\n\n", name, b.Record().Name())

		w := bg.w.WithNS(bg.ns.Clone())
		b.WriteDefineCode(w)
	}
}

func (bg *Buildergen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !buildergen\n\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/buildergen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n\n", bg.p.Pkg().Name)

	imports := bg.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imports {
			if imp.Aliased {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	_, _ = io.Copy(&buf, bg.buf)
	code := bytes.TrimRight(buf.Bytes(), "\n")
	code = append(code, '\n')

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}

// headerPrefix starts the header comment of generated files.
const headerPrefix = "// Code generated by github.com/sublee/buildergen"

// Header reports whether the code starts with the header of a file generated
// by buildergen.
func Header(code []byte) bool {
	for line := range strings.Lines(string(code)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//go:build") {
			continue
		}
		return strings.HasPrefix(line, headerPrefix)
	}
	return false
}

// generatedFile reports whether the file has the header of a file generated by
// buildergen before its package clause.
func generatedFile(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			break
		}
		for _, c := range group.List {
			if strings.HasPrefix(c.Text, headerPrefix) {
				return true
			}
		}
	}
	return false
}
