package codefmt

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"
)

type (
	Pkger interface{ Pkg() *packages.Package }
	Poser interface{ Pos() token.Pos }
	Ender interface{ End() token.Pos }
)

// Pos is a [Poser] at a bare position.
type Pos token.Pos

func (p Pos) Pos() token.Pos { return token.Pos(p) }

// CodeError is a diagnostic located in user code.
type CodeError struct {
	msg      string
	pos, end token.Pos
	position token.Position
}

// Errorf creates a [CodeError] at the position of poser. The position is
// resolved by the file set of the package. Both pkger and poser may be nil
// for an error without a position. Errors cannot be wrapped.
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: CodeError cannot wrap an error")
		}
	}

	e := &CodeError{msg: fmt.Sprintf(format, args...)}
	if poser == nil {
		return e
	}
	e.pos = poser.Pos()
	if ender, ok := poser.(Ender); ok {
		e.end = ender.End()
	}
	if pkger != nil && e.pos.IsValid() {
		if pkg := pkger.Pkg(); pkg != nil && pkg.Fset != nil {
			e.position = pkg.Fset.Position(e.pos)
		}
	}
	return e
}

// Message returns the diagnostic without its position.
func (e *CodeError) Message() string { return e.msg }

// Pos returns the start of the offending code. It may be token.NoPos.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the offending code. It may be token.NoPos.
func (e *CodeError) End() token.Pos { return e.end }

// Error prefixes the message with file:line:column if the position is known.
func (e *CodeError) Error() string {
	if !e.position.IsValid() {
		return e.msg
	}
	return FormatPosition(e.position) + ": " + e.msg
}

// Flatten returns the leaves of errors joined by [errors.Join], in order.
func Flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		if err == nil {
			return nil
		}
		return []error{err}
	}
	var leaves []error
	for _, err := range joined.Unwrap() {
		leaves = append(leaves, Flatten(err)...)
	}
	return leaves
}
