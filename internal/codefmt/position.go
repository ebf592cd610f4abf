package codefmt

import (
	"fmt"
	"go/token"
	"os"
	"path/filepath"
)

// cwd makes positions in diagnostics relative to where the tool runs.
var cwd, _ = os.Getwd()

// FormatPosition returns "file:line:column" with the file name relative to
// the current directory when possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-"
	}
	name := pos.Filename
	if rel, err := filepath.Rel(cwd, name); err == nil && filepath.IsAbs(name) {
		name = rel
	}
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Column)
}

// FormatPos formats a position in the file set of the package.
func FormatPos(pkger Pkger, pos token.Pos) string {
	pkg := pkger.Pkg()
	if pkg == nil || pkg.Fset == nil {
		return "-"
	}
	return FormatPosition(pkg.Fset.Position(pos))
}
