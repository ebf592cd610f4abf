// Package emit writes the code derived from a record annotated with the
// Builder directive.
//
// Generated Code
// ==============
//
// For the following record:
//
//	//derive:Builder
//	type Server struct {
//		Host string
//		Port uint16
//	}
//
// The builder is written as the following declarations, in this order:
//
//	type ServerBuilder struct {     // builder struct
//		host *string                // one slot per member, nil = unset
//		port *uint16
//	}
//	func (b *ServerBuilder) Host(value string) *ServerBuilder  // setters
//	func (b *ServerBuilder) Port(value uint16) *ServerBuilder
//	func (b *ServerBuilder) Build() (Server, error)            // presence check
//	func NewServerBuilder() *ServerBuilder                     // factory
//
// Naming
// ======
//
// - Builder and factory:
//   The builder is always exported: the record name with its first letter
//   upper-cased and "Builder" appended. The factory is "New" followed by the
//   builder name.
//
// - Setters:
//   Exactly the member names. Go does not allow a field and a method with the
//   same name, so slots cannot share the member names.
//
// - Slots:
//   The member name with its first word lower-cased, disambiguated against
//   the setters, Build, and Go keywords. For example, Host is held by "host"
//   but an unexported member "host" is held by "host2".
//
// - Receivers and parameters:
//   Allocated from the writer's namespace so that they never shadow package
//   scope names referred to in method bodies.
package emit
