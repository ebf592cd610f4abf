package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LowerCamel lowers the first word of the name so that an exported name
// becomes its unexported counterpart.
//
//	Host     -> host
//	HTTPAddr -> httpAddr
//	ID       -> id
//	host     -> host
func LowerCamel(name string) string {
	words := SplitWords(name)
	if len(words) == 0 {
		return name
	}
	words[0] = cases.Lower(language.Und).String(words[0])
	return strings.Join(words, "")
}

// UpperFirst upper-cases the first letter of the name.
func UpperFirst(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
