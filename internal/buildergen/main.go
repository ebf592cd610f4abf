package buildergen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/buildergen/internal/buildergen/parse"
	"github.com/sublee/buildergen/internal/codefmt"
)

var Version string

// loadMode is what [Buildergen] needs from a loaded package.
const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
	packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo

// Main generates builders for the packages matching patterns. The command-line
// tool is a thin wrapper around it.
//
// Packages are loaded in wd with env and the build tags and test setting of
// cfg. Canceling ctx aborts loading. Debug and warning records go to the
// logger in ctx if any.
//
// The result maps the path of each output file, relative to wd, to its
// content. A package without annotated structs has no output. Errors in all
// packages are collected and sorted by position.
func Main(ctx context.Context, wd string, env []string, cfg Config, patterns []string) (map[string][]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pkgs, err := load(ctx, wd, env, cfg.Tags, cfg.Tests, patterns)
	if err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx)
	exclude := cfg.excluder(wd)
	outs := make(map[string][]byte)
	var errs error

	for _, pkg := range pkgs {
		out, code, err := generate(logger, wd, pkg, exclude, cfg.Output)
		switch {
		case err != nil:
			errs = errors.Join(errs, err)
		case code != nil:
			outs[out] = code
		}
	}
	if errs != nil {
		return nil, reorderErrors(errs)
	}
	return outs, nil
}

// generate returns the output path and the code of a package. The code is nil
// if the package has nothing to generate.
func generate(logger *log.Logger, wd string, pkg *packages.Package, exclude parse.Exclude, output string) (string, []byte, error) {
	if len(pkg.GoFiles) == 0 {
		return "", nil, nil
	}

	bg, err := New(pkg, exclude)
	if err != nil {
		return "", nil, err
	}
	if err := bg.Build(); err != nil {
		return "", nil, err
	}
	for _, rec := range bg.Generics() {
		logger.Warn("skipped generic struct", "pos", codefmt.FormatPos(bg.p, rec.Pos()), "type", rec.Name())
	}

	code := bg.Generate()
	if code == nil {
		logger.Debug("no annotated structs", "pkg", pkg.PkgPath)
		return "", nil, nil
	}

	dir := filepath.Dir(pkg.GoFiles[0])
	if rel, err := filepath.Rel(wd, dir); err == nil {
		dir = rel
	}
	out := filepath.Join(dir, output)

	// Only a previous output may be replaced.
	if prev, err := os.ReadFile(filepath.Join(wd, out)); err == nil && !Header(prev) {
		return "", nil, fmt.Errorf("%s: refusing to overwrite a file not generated by buildergen", out)
	}

	logger.Debug("generated builders", "pkg", pkg.PkgPath, "count", len(bg.Builders()), "out", out)
	return out, code, nil
}

// load loads the packages with the buildergen build tag so that previous
// outputs, which are constrained by "!buildergen", are left out.
//
// Type errors are not fatal here. Code calling builders does not type-check
// until they are generated, and [Buildergen.Build] reports the type errors
// which matter.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	buildTags := "buildergen"
	if tags != "" {
		buildTags += "," + tags
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:       loadMode,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + buildTags},
		Tests:      tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}
	log.FromContext(ctx).Debug("loaded packages", "count", len(pkgs), "tags", buildTags)

	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			switch {
			case err.Kind == packages.TypeError:
				continue
			case err.Pos == "":
				errs = errors.Join(errs, errors.New(err.Msg))
				continue
			}

			// Positions are "file:line:col" with an absolute file name.
			file, lineCol, _ := strings.Cut(err.Pos, ":")
			if rel, relErr := filepath.Rel(wd, file); relErr == nil {
				err.Pos = rel + ":" + lineCol
			}
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return pkgs, nil
}

// reorderErrors sorts the errors by message, which starts with the position
// for errors in code.
func reorderErrors(errs error) error {
	list := codefmt.Flatten(errs)
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}
