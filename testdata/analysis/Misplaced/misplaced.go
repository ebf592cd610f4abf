package misplaced

//derive:Builder
func Run() {} // want `misplaced //derive:Builder directive; it must annotate a struct type declaration`

//derive:Builder
var Default = 1 // want `misplaced //derive:Builder directive`

//derive:Builder
const Limit = 10 // want `misplaced //derive:Builder directive`

type Server struct {
	//derive:Builder
	Host string // want `misplaced //derive:Builder directive`
}

var (
	//derive:Builder
	a, b = 1, 2 // want `misplaced //derive:Builder directive`
)

func helper() {
	//derive:Builder
	type local struct{ X int } // want `misplaced //derive:Builder directive`

	_ = local{}
}
