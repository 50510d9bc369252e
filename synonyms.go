// synonyms answers, for pairs of words, whether a dictionary of synonym pairs
// puts them in the same group. The input holds any number of test cases, each
// with its own dictionary and queries; one answer per query is printed:
// "synonyms", "different" or "no words".
//
// Usage:
//
//	synonyms test.in.json
//	synonyms --format yaml -j 4 -o answers.txt cases.yaml
//	cat test.in.json | synonyms --format json -
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexflint/go-arg"
)

const defaultInput = "test.in.json"

type args struct {
	Input   string `arg:"positional" help:"input file, - for stdin (default: test.in.json)"`
	Output  string `arg:"-o,--output,env:SYNONYMS_OUTPUT" help:"output file path (default: stdout)"`
	Format  string `arg:"--format,env:SYNONYMS_FORMAT" default:"auto" help:"input format: auto, json, jsonc or yaml"`
	Workers int    `arg:"-j,--workers,env:SYNONYMS_WORKERS" default:"1" help:"test cases analyzed in parallel"`
	Verbose bool   `arg:"-v,--verbose" help:"enable debug logging"`
}

func (args) Description() string {
	return "Checks word pairs against per-test-case synonym dictionaries."
}

func parseArgs(argv []string, stdout io.Writer) (*args, bool, error) {
	a := &args{}
	p, err := arg.NewParser(arg.Config{Program: "synonyms"}, a)
	if err != nil {
		return nil, false, err
	}
	if err := p.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			p.WriteHelp(stdout)
			return nil, true, nil
		}
		return nil, false, err
	}
	if a.Input == "" {
		a.Input = defaultInput
	}
	return a, false, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(argv []string, stdout, stderr io.Writer) error {
	a, done, err := parseArgs(argv, stdout)
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if done {
		return nil
	}
	logger := newLogger(stderr, a.Verbose)

	format, err := parseInputFormat(a.Format)
	if err != nil {
		return err
	}
	model, err := loadInput(a.Input, format)
	if err != nil {
		return err
	}
	logger.Debug("input loaded", "path", a.Input, "testCases", len(model.TestCases))
	for _, w := range model.warnings() {
		logger.Warn("advisory count mismatch", "detail", w)
	}

	answers := analyze(model.TestCases, a.Workers)
	logger.Debug("analysis done", "answers", len(answers), "workers", a.Workers)

	w := stdout
	if a.Output != "" {
		f, err := os.Create(a.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := writeAnswers(w, answers); err != nil {
		return fmt.Errorf("failed to write answers: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		exitWithError("error while analyzing synonyms: %s", err.Error())
	}
}

func exitWithError(format string, a ...interface{}) {
	if format[len(format)-1] != '\n' {
		format += "\n"
	}
	fmt.Fprintf(os.Stderr, format, a...)
	os.Exit(1)
}
