package grouped

//derive:Builder
type (
	A struct{ X int }
	B struct{ Y int }
)

//derive:Builder
type C int
