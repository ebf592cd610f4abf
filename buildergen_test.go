package buildergen_test

import (
	"fmt"
	"go/build"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/txtar"

	buildergeninternal "github.com/sublee/buildergen/internal/buildergen"
	"github.com/sublee/buildergen/pkg/buildergenanalysis"
)

// TestAnalysis tests directive errors using the Go analysis protocol. In this
// test, buildergen errors will be reported as analysis errors. "// want
// `REGEXP`" comments in the fixture source files are used to check for
// expected analysis errors.
//
// The directory structure of testdata for subtests is as follows:
//
//	testdata/
//	└── analysis/
//	    ├── pkg1/
//	    │   └── *.go // with want comments
//	    └── pkg2/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	t.Setenv("GOFLAGS", "-tags=buildergen")

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		t.Run(ent.Name(), func(t *testing.T) {
			defer func() {
				if t.Failed() {
					t.Logf("\n\tReproduce:\tgo run ./cmd/buildergen ./testdata/analysis/%s", ent.Name())
				}
			}()

			analysistest.Run(t, "", buildergenanalysis.Analyzer, "./testdata/analysis/"+ent.Name())
		})
	}
}

// TestPrograms tests the programs archived in testdata/program/*.txtar. An
// archive holds the files of a module named example.com/<archive name> and
// one of the expectations:
//
//	-- want/program_output.txt --
//	output of the program after generating builders
//	-- want/buildergen_error.txt --
//	errors of buildergen, one per line
//
// The comment of the archive may name the package to run as "run ./cmd". It is
// "./main" by default.
func TestPrograms(t *testing.T) {
	paths, err := filepath.Glob(filepath.FromSlash("testdata/program/*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		test, err := loadProgramTest(p)
		if err != nil {
			t.Error(err)
			continue
		}
		t.Run(test.name, test.Test())
	}
}

// programTest is a test case for a program. It executes buildergen for the
// program and runs the program with generated code to check the output.
type programTest struct {
	name    string
	archive string
	run     string
	files   []txtar.File
	want    struct {
		ProgramOutput   string
		BuildergenError string
	}
}

func (test *programTest) PkgPath() string {
	return "example.com/" + test.name
}

// loadProgramTest reads a program test case from a txtar archive.
func loadProgramTest(archive string) (*programTest, error) {
	ar, err := txtar.ParseFile(archive)
	if err != nil {
		return nil, fmt.Errorf("load test case %s: %w", archive, err)
	}

	test := &programTest{
		name:    strings.TrimSuffix(filepath.Base(archive), ".txtar"),
		archive: archive,
		run:     "./main",
	}
	if run, ok := strings.CutPrefix(strings.TrimSpace(string(ar.Comment)), "run "); ok {
		test.run = run
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "want/program_output.txt":
			test.want.ProgramOutput = strings.TrimSpace(string(f.Data))
		case "want/buildergen_error.txt":
			test.want.BuildergenError = strings.TrimSpace(string(f.Data))
		default:
			if path.Base(f.Name) == buildergeninternal.DefaultOutput {
				return nil, fmt.Errorf("load test case %s: %s must not be archived", archive, f.Name)
			}
			test.files = append(test.files, f)
		}
	}

	if test.want.ProgramOutput == "" && test.want.BuildergenError == "" {
		return nil, fmt.Errorf("load test case %s: does not want anything", archive)
	}
	return test, nil
}

// materialize writes the module of the program into dir.
func (test *programTest) materialize(dir string) error {
	for _, f := range test.files {
		dst := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", f.Name, err)
		}
		if err := os.WriteFile(dst, f.Data, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}

	// Generated code depends on the standard library only.
	gomod := fmt.Sprintf("module %s\n\ngo 1.25.0\n", test.PkgPath())
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o666); err != nil {
		return fmt.Errorf("write go.mod: %w", err)
	}
	return nil
}

// Test returns a test function for the program test. It runs buildergen for
// the program and then checks its error or output messages.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		defer func() {
			if t.Failed() {
				t.Logf("\n\tReproduce:\tgo run ./cmd/buildergen ./... in the module of %s", test.archive)
			}
		}()

		wd := t.TempDir()
		require.NoError(t, test.materialize(wd), "Materialization failed")

		// Run buildergen
		env := os.Environ()
		cfg := buildergeninternal.DefaultConfig()
		generated, buildergenErr := buildergeninternal.Main(t.Context(), wd, env, cfg, []string{"./..."})

		// Check for the buildergen error
		if test.want.BuildergenError != "" {
			require.Error(t, buildergenErr, "buildergen should have exited with an error")
			have := relPathInString(buildergenErr.Error(), wd)
			assert.Equal(t, normalizeWhitespace(test.want.BuildergenError), normalizeWhitespace(have))
			return
		}
		require.NoError(t, buildergenErr, "buildergen exited with errors unexpectedly")

		// Write generated files
		for name, content := range generated {
			err := os.WriteFile(filepath.Join(wd, name), content, 0o666)
			require.NoError(t, err, "Failed to write a generated file")
		}

		// Running again over the previous output changes nothing.
		regenerated, err := buildergeninternal.Main(t.Context(), wd, env, cfg, []string{"./..."})
		require.NoError(t, err, "buildergen failed to regenerate")
		assert.Equal(t, generated, regenerated)

		// Run the program
		goCmd := filepath.Join(build.Default.GOROOT, "bin", "go")
		cmd := exec.Command(goCmd, "run", test.run)
		cmd.Dir = wd
		progOut, err := cmd.CombinedOutput()
		require.NoError(t, err, string(progOut))

		assert.Equal(t, test.want.ProgramOutput, strings.TrimSpace(string(progOut)))
	}
}

// relPathInString replaces paths in the given string to their relative paths to
// the new working directory.
func relPathInString(s, wd string) string {
	realWD, err := os.Getwd()
	if err != nil {
		return s
	}

	rel, err := filepath.Rel(realWD, wd)
	if err != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+string(filepath.Separator), "")
	s = strings.ReplaceAll(s, rel, "")
	return s
}

// normalizeWhitespace normalizes whitespace in the given string for consistent
// comparison regardless of whitespace style.
func normalizeWhitespace(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\t", "    ")
	return s
}
