package regenerated

// The builder of Server has been generated into builder_gen.go already.
//
//derive:Builder
type Server struct {
	Host string
}

var _ = NewServerBuilder().Host("localhost")
