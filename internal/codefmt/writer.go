package codefmt

import (
	"fmt"
	"go/types"
	"io"
	"maps"
	"path"
	"slices"

	"golang.org/x/tools/go/packages"
)

// Writer writes generated code into a package. It tracks the imports the code
// needs and the identifiers it declares.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	pkgNS   *NS
	imports map[string]Import // by local name
	ns      *NS
}

// Import is a package imported by generated code.
type Import struct {
	Name string
	Path string

	// Aliased is true if Name differs from the name the package declares.
	Aliased bool
}

// NewWriter creates a [Writer] for code in pkg. ns holds the names declared
// at package level. The writer never modifies it.
func NewWriter(w io.Writer, pkg *packages.Package, ns *NS) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		pkgNS:   ns,
		imports: make(map[string]Import),
		ns:      ns.Clone(),
	}
}

// WithNS returns a writer sharing the output and the imports but taking names
// from ns.
func (w *Writer) WithNS(ns *NS) *Writer {
	copied := *w
	copied.ns = ns
	return &copied
}

// Printf writes formatted code.
func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w.w, format, args...)
}

// Name takes a unique identifier from the namespace.
func (w *Writer) Name(name string) string { return w.ns.Name(name) }

// Reserve takes the name in the namespace. It reports false if the name was
// taken.
func (w *Writer) Reserve(name string) bool { return w.ns.Reserve(name) }

// Import returns the name under which code refers to the package at path. The
// package is imported as name unless a package scope declaration or another
// import already uses it, in which case it is aliased with a number:
//
//	errorsName := w.Import("errors", "errors") // "errors2" if var errors exists
//	w.Printf("%s.New(%q)", errorsName, "host was not set")
//
// An empty name means the last element of path.
func (w *Writer) Import(pkgPath, name string) string {
	if name == "" {
		name = path.Base(pkgPath)
	}
	for local, imp := range w.imports {
		if imp.Path == pkgPath {
			return local
		}
	}

	// The package scope never sees file imports, so a name is free unless
	// something in the package declares it or an import took it.
	ns := w.pkgNS.Clone()
	for local := range w.imports {
		ns.Reserve(local)
	}
	local := ns.Name(name)
	w.imports[local] = Import{Name: local, Path: pkgPath, Aliased: local != name}
	return local
}

// Imports returns the imports collected so far, sorted by path.
func (w *Writer) Imports() []Import {
	imps := slices.Collect(maps.Values(w.imports))
	slices.SortFunc(imps, func(a, b Import) int {
		if a.Path < b.Path {
			return -1
		}
		if a.Path > b.Path {
			return 1
		}
		return 0
	})
	return imps
}

// Type returns the Go syntax of the type as seen from the package. Types of
// other packages are qualified by the names returned from [Writer.Import].
func (w *Writer) Type(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		if pkg.Path() == w.pkg.PkgPath {
			return ""
		}
		return w.Import(pkg.Path(), pkg.Name())
	})
}
