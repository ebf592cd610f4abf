package hygiene

import strs "strings"

var (
	errors  = 0
	strings = 1
	b       = 2
	value   = 3
)

type (
	//derive:Builder
	Pair struct {
		K, V string
	}

	//derive:Builder
	Text struct {
		R *strs.Reader
	}
)
