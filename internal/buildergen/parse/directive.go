package parse

import (
	"go/ast"
	"strings"
)

// Directive is the comment which annotates a struct type to derive a builder.
//
//	//derive:Builder
//	type Server struct {
//		Host string
//		Port uint16
//	}
const Directive = "//derive:Builder"

// IsDirective reports whether the comment is the Builder directive. Trailing
// text after whitespace is allowed.
func IsDirective(c *ast.Comment) bool {
	rest, ok := strings.CutPrefix(c.Text, Directive)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// directives returns the Builder directives in the comment group.
func directives(group *ast.CommentGroup) []*ast.Comment {
	if group == nil {
		return nil
	}
	var dirs []*ast.Comment
	for _, c := range group.List {
		if IsDirective(c) {
			dirs = append(dirs, c)
		}
	}
	return dirs
}
