package buildergen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/sublee/buildergen/internal/buildergen/parse"
)

// DefaultOutput is the default name of the generated file in each package.
const DefaultOutput = "builder_gen.go"

// Config controls which packages and files are processed and where the
// generated code goes.
type Config struct {
	// Tags are comma-separated build tags to use when loading packages.
	Tags string `yaml:"tags"`

	// Tests indicates whether to include test files.
	Tests bool `yaml:"tests"`

	// Output is the name of the generated file in each package.
	Output string `yaml:"output"`

	// Exclude lists doublestar globs of files not to scan for records. They
	// are matched against slash-separated paths relative to the working
	// directory, e.g., "internal/**/*_mock.go".
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns the configuration used when there is no config file.
func DefaultConfig() Config {
	return Config{Output: DefaultOutput}
}

// LoadConfig reads a YAML config file. Unset keys keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the output file name and the exclude globs.
func (cfg Config) Validate() error {
	var errs error
	switch {
	case cfg.Output == "":
		errs = errors.Join(errs, errors.New("output must not be empty"))
	case filepath.Base(cfg.Output) != cfg.Output:
		errs = errors.Join(errs, fmt.Errorf("output %q must be a file name, not a path", cfg.Output))
	case filepath.Ext(cfg.Output) != ".go":
		errs = errors.Join(errs, fmt.Errorf("output %q must end with .go", cfg.Output))
	}
	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = errors.Join(errs, fmt.Errorf("invalid exclude pattern %q", pattern))
		}
	}
	return errs
}

// excluder returns a [parse.Exclude] matching the exclude globs against file
// names relative to wd. It returns nil if there is no glob.
func (cfg Config) excluder(wd string) parse.Exclude {
	if len(cfg.Exclude) == 0 {
		return nil
	}
	return func(filename string) bool {
		if rel, err := filepath.Rel(wd, filename); err == nil {
			filename = rel
		}
		filename = filepath.ToSlash(filename)
		for _, pattern := range cfg.Exclude {
			if ok, _ := doublestar.Match(pattern, filename); ok {
				return true
			}
		}
		return false
	}
}
