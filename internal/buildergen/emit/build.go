package emit

import (
	"strconv"

	"github.com/sublee/buildergen/internal/codefmt"
)

// NotSetMessage returns the error message of Build when the member has not
// been set.
func NotSetMessage(member string) string {
	return member + " was not set"
}

// writeBuild writes the Build method. It checks the presence of the members in
// declaration order and fails at the first unset one. Otherwise, it copies the
// values out of the slots so that the builder can be used again.
func (c code) writeBuild(w *codefmt.Writer) {
	rec := c.rec.Name()
	w.Printf("// Build returns a %s with the values set so far. It fails if any field has\n", rec)
	w.Printf("// not been set. The builder is left unchanged.\n")
	w.Printf("func (%s *%s) Build() (%s, error) {\n", c.recv, c.name, rec)

	for _, s := range c.slots {
		w.Printf("if %s.%s == nil {\n", c.recv, s.field)
		w.Printf("return %s{}, %s.New(%s)\n", rec, c.errors, strconv.Quote(NotSetMessage(s.Name)))
		w.Printf("}\n")
	}

	w.Printf("return %s{\n", rec)
	for _, s := range c.slots {
		w.Printf("%s: *%s.%s,\n", s.Name, c.recv, s.field)
	}
	w.Printf("}, nil\n")
	w.Printf("}\n\n")
}
