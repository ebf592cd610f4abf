package shapes

import "io"

//derive:Builder
type Tup [2]int32 // want `Builder only supports structs with named fields`

//derive:Builder
type Number int // want `Builder only supports structs with named fields`

//derive:Builder
type Reader interface{ io.Reader } // want `Builder only supports structs with named fields`

//derive:Builder
type Empty struct{} // want `Builder only supports structs with named fields`

//derive:Builder
type Blanks struct { // want `Builder only supports structs with named fields`
	_ int
	_ string
}

type Point struct{ X, Y int }

//derive:Builder
type Defined Point // want `Builder only supports structs with named fields`

//derive:Builder
type Alias = Point // want `Builder only supports structs with named fields`

//derive:Builder
type Func func() error // want `Builder only supports structs with named fields`
