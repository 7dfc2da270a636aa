// Package cli provides the command-line interface of the analyzer.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/config"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/pkg/analyzer"
)

// ProgramName is used in usage and help output.
const ProgramName = "analyzer"

// CLI declares the command-line options. Defaults live in the config package
// so that unset flags never shadow the config file or the environment.
type CLI struct {
	Cin      bool   `name:"cin" help:"Read from the standard input stream."`
	Ifstream string `name:"ifstream" help:"Read from the file at PATH." placeholder:"PATH"`
	Cout     bool   `name:"cout" help:"Write to the standard output stream."`
	Ofstream string `name:"ofstream" help:"Write to the file at PATH, truncating it." placeholder:"PATH"`
	Format   string `name:"format" help:"Report format: box, light, markdown, csv, html or json." placeholder:"FORMAT"`
	Encoding string `name:"encoding" help:"Input encoding: utf8, cp437, cp850 or iso-8859-1." placeholder:"ENC"`
	Top      int    `name:"top" help:"Only report the N most frequent words." placeholder:"N"`
	Stats    bool   `name:"stats" help:"Append read statistics to the report."`
	TieBreak string `name:"tie-break" help:"Order of equal counts: word or first-seen." placeholder:"ORDER"`
	Strict   bool   `name:"strict" help:"Exit with failure status when a file cannot be opened."`
	Config   string `name:"config" help:"YAML configuration file." placeholder:"FILE"`
	Verbose  bool   `name:"verbose" short:"v" help:"Log phase details to stderr."`
}

// given returns the options present on the command line, keyed like the
// configuration file.
func (c *CLI) given(ctx *kong.Context) map[string]interface{} {
	values := map[string]interface{}{
		"cin":       c.Cin,
		"ifstream":  c.Ifstream,
		"cout":      c.Cout,
		"ofstream":  c.Ofstream,
		"format":    c.Format,
		"encoding":  c.Encoding,
		"top":       c.Top,
		"stats":     c.Stats,
		"tie-break": c.TieBreak,
		"strict":    c.Strict,
		"verbose":   c.Verbose,
	}

	flags := make(map[string]interface{})
	for _, p := range ctx.Path {
		if p.Flag == nil {
			continue
		}
		if v, ok := values[p.Flag.Name]; ok {
			if p.Flag.Name == "tie-break" {
				flags["tie_break"] = v
				continue
			}
			flags[p.Flag.Name] = v
		}
	}
	return flags
}

// Run executes one analysis and returns the process exit status.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr, ProgramName)
		return 0
	}

	var cli CLI
	exited, exitCode := false, 0

	parser, err := kong.New(&cli,
		kong.Name(ProgramName),
		kong.Description("Count word occurrences in a text stream and print a sorted frequency report."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			exited, exitCode = true, code
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	ctx, err := parser.Parse(normalizeArgs(args))
	if exited {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.Load(cli.Config, cli.given(ctx))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := newLogger(stderr, cfg.Verbose)
	logger.Debug("configuration loaded", "mode", cfg.Mode, "format", cfg.Format, "encoding", cfg.Encoding)

	a := analyzer.New(
		analyzer.WithLogger(logger),
		analyzer.WithFormat(cfg.ReportFormat()),
		analyzer.WithTieBreak(cfg.ReportTieBreak()),
		analyzer.WithTop(cfg.Top),
		analyzer.WithStats(cfg.Stats),
	)

	openFailed := false

	// Read phase
	if cfg.Mode.Has(config.ModeIfstream) {
		if err := readFile(a, cfg.PathIn, cfg.Encoding); err != nil {
			var openErr *openError
			if !errors.As(err, &openErr) {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			logger.Debug("input file not opened", "path", cfg.PathIn, "error", openErr.err)
			printOpenFailure(stderr, cfg.PathIn)
			openFailed = true
		}
	} else if cfg.Mode.Has(config.ModeCin) {
		r, err := analyzer.NewDecoder(stdin, cfg.Encoding)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		a.Read(r)
	}

	// Write phase
	if cfg.Mode.Has(config.ModeOfstream) {
		if err := writeFile(a, cfg.PathOut); err != nil {
			var openErr *openError
			if !errors.As(err, &openErr) {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			logger.Debug("output file not opened", "path", cfg.PathOut, "error", openErr.err)
			printOpenFailure(stderr, cfg.PathOut)
			openFailed = true
		}
	} else if cfg.Mode.Has(config.ModeCout) {
		if err := a.Write(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if openFailed && cfg.Strict {
		return 1
	}
	return 0
}

type openError struct {
	path string
	err  error
}

func (e *openError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.path, e.err)
}

func (e *openError) Unwrap() error { return e.err }

func readFile(a *analyzer.Analyzer, path, encoding string) error {
	file, err := os.Open(path)
	if err != nil {
		return &openError{path: path, err: err}
	}
	defer file.Close()

	r, err := analyzer.NewDecoder(file, encoding)
	if err != nil {
		return err
	}
	a.Read(r)
	return nil
}

func writeFile(a *analyzer.Analyzer, path string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &openError{path: path, err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing %s: %w", path, cerr)
		}
	}()

	return a.Write(file)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
