package emit

import (
	"github.com/sublee/buildergen/internal/codefmt"
)

// writeSetter writes the setter of the i-th member. Setting a member again
// overwrites the previous value.
func (c code) writeSetter(w *codefmt.Writer, i int) {
	s := c.slots[i]
	w.Printf("// %s sets %s of the %s to build.\n", s.Name, s.Name, c.rec.Name())
	w.Printf("func (%s *%s) %s(%s %s) *%s {\n", c.recv, c.name, s.Name, c.value, c.types[i], c.name)
	w.Printf("%s.%s = &%s\n", c.recv, s.field, c.value)
	w.Printf("return %s\n", c.recv)
	w.Printf("}\n\n")
}
