// Package buildergen generates builders for annotated structs.
//
// A builder collects the fields of a struct one at a time and checks that
// every field has been set before it constructs the struct. Annotate a struct
// with the //derive:Builder directive:
//
//	//derive:Builder
//	type Command struct {
//		Executable string
//		Args       []string
//		Env        []string
//		CurrentDir string
//	}
//
// Then run the buildergen command. It will generate builder_gen.go for your
// package:
//
//	go run github.com/sublee/buildergen/cmd/buildergen
//
// The generated code declares CommandBuilder, its setters named after the
// fields, Build, and NewCommandBuilder:
//
//	cmd, err := NewCommandBuilder().
//		Executable("cargo").
//		Args([]string{"build", "--release"}).
//		Env([]string{}).
//		CurrentDir("..").
//		Build()
//
// Build fails with an error such as "CurrentDir was not set" if any field has
// not been set. Fields are checked in declaration order, so the error always
// names the first missing field. Setting a field again overwrites the previous
// value. Build does not reset the builder, so it can build the same value
// again.
//
// # Supported types
//
// Only struct types with at least one named field can derive a builder. Type
// aliases, empty structs, interfaces, and other defined types are reported as
// errors:
//
//	main.go:4:6: Builder only supports structs with named fields
//
// Embedded fields are set by their implicit names, e.g., Time for an embedded
// time.Time. Blank fields are skipped. Field tags are ignored. Structs with
// type parameters are skipped with a warning.
//
// # Generated files
//
// Generated files begin with the "//go:build !buildergen" constraint. The
// buildergen command loads packages with the buildergen tag, so builders
// generated before never conflict with the next generation.
//
// # Configuration
//
// The buildergen command reads .buildergen.yaml in the working directory if it
// exists, or the file given by -config. Flags override the file:
//
//	tags: integration     # -b: comma-separated build tags
//	tests: false          # -t: include test files
//	output: builder_gen.go # -o: generated file name in each package
//	exclude:              # doublestar globs of files not to scan
//	  - "**/testdata/**"
//
// # Linting
//
// The analyzer in [github.com/sublee/buildergen/pkg/buildergenanalysis]
// reports misplaced directives, unsupported types and name conflicts without
// generating code.
// It is also available as a golangci-lint plugin.
package buildergen
