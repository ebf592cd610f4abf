package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	buildergeninternal "github.com/sublee/buildergen/internal/buildergen"
)

var Version = "dev"

// defaultConfigFile is loaded from the working directory when -config is not
// given.
const defaultConfigFile = ".buildergen.yaml"

var (
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", buildergeninternal.DefaultOutput, "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
	configFlag = flag.String("config", "", "YAML config file (default "+defaultConfigFile+" if it exists)")
	vFlag      = flag.Bool("v", false, "verbose logging")
)

func init() {
	buildergeninternal.Version = Version
}

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "buildergen",
		Level:  log.InfoLevel,
	})
	if *vFlag {
		logger.SetLevel(log.DebugLevel)
	}

	color, err := useColor(*cFlag)
	if err != nil {
		exit(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		exit(err)
	}
	cfg, err := loadConfig(logger, wd)
	if err != nil {
		exit(err)
	}

	ctx := log.WithContext(context.Background(), logger)
	outs, err := buildergeninternal.Main(ctx, wd, os.Environ(), cfg, flag.Args())
	if err != nil {
		if color {
			err = errors.New(colorize(err.Error()))
		}
		exit(err)
	}

	if err := writeAll(logger, outs); err != nil {
		exit(err)
	}
}

// exit prints the error and exits with status 1.
func exit(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// useColor interprets the -c flag.
func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -c value: %s", mode)
}

// writeAll writes the generated files concurrently.
func writeAll(logger *log.Logger, outs map[string][]byte) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for out, code := range outs {
		g.Go(func() error {
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return err
			}
			logger.Info("generated", "file", out)
			return nil
		})
	}
	return g.Wait()
}

// loadConfig reads the config file and applies the flags given explicitly on
// top of it.
func loadConfig(logger *log.Logger, wd string) (buildergeninternal.Config, error) {
	cfg := buildergeninternal.DefaultConfig()

	path := *configFlag
	if path == "" {
		path = filepath.Join(wd, defaultConfigFile)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	if path != "" {
		var err error
		cfg, err = buildergeninternal.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		logger.Debug("loaded config", "path", path)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			cfg.Tags = *bFlag
		case "t":
			cfg.Tests = *tFlag
		case "o":
			cfg.Output = *oFlag
		}
	})
	return cfg, nil
}

// isatty reports whether diagnostics go to a terminal which understands ANSI
// escape codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var rePos = regexp.MustCompile(`(?m)^[^\s:]+\.go:\d+:\d+:`)

// colorize adds ANSI color codes to the message. Positions of diagnostics are
// dimmed so that messages stand out.
func colorize(message string) string {
	const (
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllStringFunc(message, func(pos string) string {
		return dim + pos + reset
	})
}
