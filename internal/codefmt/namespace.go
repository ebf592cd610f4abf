package codefmt

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS hands out identifiers which are unique within one Go scope.
type NS struct {
	used map[string]bool
}

// NewNS creates a namespace where Go keywords and the names declared in scope
// are already taken. scope may be nil.
func NewNS(scope *types.Scope) *NS {
	ns := &NS{used: make(map[string]bool)}
	for tok := token.BREAK; tok <= token.VAR; tok++ {
		if tok.IsKeyword() {
			ns.used[tok.String()] = true
		}
	}
	if scope != nil {
		for _, name := range scope.Names() {
			ns.used[name] = true
		}
	}
	return ns
}

// Clone copies the namespace so that names taken in the copy stay local.
func (ns *NS) Clone() *NS {
	used := make(map[string]bool, len(ns.used))
	for name := range ns.used {
		used[name] = true
	}
	return &NS{used: used}
}

// Taken reports whether the name is used.
func (ns *NS) Taken(name string) bool { return ns.used[name] }

// Reserve takes the name. It reports false if the name was already taken.
func (ns *NS) Reserve(name string) bool {
	if ns.used[name] {
		return false
	}
	ns.used[name] = true
	return true
}

// Name takes the first free identifier derived from name: name itself, then
// name2, name3, and so on. A name ending with a digit is numbered after an
// underscore, e.g., "v1_2". Panics if name has no identifier characters.
func (ns *NS) Name(name string) string {
	base := NormalizeName(name)
	if ns.Reserve(base) {
		return base
	}
	sep := ""
	if last := base[len(base)-1]; last >= '0' && last <= '9' {
		sep = "_"
	}
	for i := 2; ; i++ {
		if candidate := base + sep + strconv.Itoa(i); ns.Reserve(candidate) {
			return candidate
		}
	}
}

// NormalizeName turns an arbitrary string into a Go identifier by dropping
// characters which cannot appear in identifiers and title-casing the chunks
// they separated.
func NormalizeName(name string) string {
	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(chunks) == 0 {
		panic("codefmt: no identifier in " + strconv.Quote(name))
	}
	title := cases.Title(language.Und, cases.NoLower)
	for i := 1; i < len(chunks); i++ {
		chunks[i] = title.String(chunks[i])
	}
	return strings.Join(chunks, "")
}
