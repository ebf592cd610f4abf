package emit

import (
	"github.com/sublee/buildergen/internal/codefmt"
)

// writeFactory writes the function creating a builder with every slot unset.
func (c code) writeFactory(w *codefmt.Writer) {
	w.Printf("// %s returns a %s with no field set.\n", c.factory, c.name)
	w.Printf("func %s() *%s {\n", c.factory, c.name)
	w.Printf("return &%s{\n", c.name)
	for _, s := range c.slots {
		w.Printf("%s: nil,\n", s.field)
	}
	w.Printf("}\n")
	w.Printf("}\n\n")
}
