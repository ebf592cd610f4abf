// golangcilintbuildergen package provides a plugin for golangci-lint to
// integrate the buildergen analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-buildergen binary that reports the errors
// buildergen would stop at, such as misplaced //derive:Builder directives or
// builder names which are already declared.
package golangcilintbuildergen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/buildergen/pkg/buildergenanalysis"
)

func init() {
	register.Plugin("buildergen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return BuildergenLinter{}, nil
}

type BuildergenLinter struct{}

func (BuildergenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{buildergenanalysis.Analyzer}, nil
}

// GetLoadMode requires type information because records are resolved through
// go/types.
func (BuildergenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
