// Package corpora runs table-driven tests whose table is a directory of input
// files, each paired with files holding the expected outputs.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root is the directory of test cases, relative to the file calling
	// [Corpus.Run].
	Root string

	// Refresh names an environment variable holding a doublestar glob. Test
	// cases matching the glob rewrite their output files instead of comparing
	// them. A refreshed run always fails so that it is never mistaken for a
	// passing one.
	Refresh string

	// Extension is the file extension, without the dot, of the input files.
	Extension string

	// Outputs are the expected outputs of each test case. An output file is
	// named after the input file with an extra extension, e.g., "foo.go.gen".
	// A missing output file expects an empty output.
	Outputs []Output

	// Test runs a test case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is an expected output of test cases.
type Output struct {
	// Extension is appended to the input file name to locate the output file.
	Extension string

	// Compare compares outputs. If nil, outputs must be equal byte-for-byte.
	Compare Compare
}

// Compare returns an empty string if got matches want. Otherwise, it returns a
// message describing the mismatch.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var inputs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walk %s: %v", root, err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, input := range inputs {
		name, _ := filepath.Rel(testDir, input)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("corpora: read %s: %v", input, err)
			}

			results := c.Test(t, name, string(text))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d results, want %d", len(results), len(c.Outputs))
			}

			refreshing := false
			if refresh != "" {
				refreshing, _ = doublestar.Match(refresh, name)
			}

			for i, output := range c.Outputs {
				path := fmt.Sprint(input, ".", output.Extension)
				if refreshing {
					if err := write(path, results[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("corpora: read %s: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %s:\n%s", path, msg)
				}
			}
		})
	}
}

// write writes the output file, or removes it if the output is empty.
func write(path, output string) error {
	if output == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(path, []byte(output), 0o644)
}

// Diff is the default [Compare]. It reports a unified diff with ANSI colors.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine the directory of the test file")
	}
	return filepath.Dir(file)
}
