// Package buildergenanalysis reports the errors buildergen would stop at,
// without generating any code.
package buildergenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildergen/internal/buildergen"
	"github.com/sublee/buildergen/internal/codefmt"
)

// Analyzer checks the //derive:Builder directives of the package and the
// builders they would generate.
var Analyzer = &analysis.Analyzer{
	Name: "buildergen",
	Doc:  "linter for //derive:Builder directives",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	bg, err := buildergen.New(pkg, nil)
	if err != nil {
		return nil, err
	}

	for _, err := range codefmt.Flatten(bg.Build()) {
		codeErr, ok := err.(*codefmt.CodeError)
		if !ok {
			return nil, err
		}
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Message(),
		})
	}
	return nil, nil
}
