//go:build !lambda

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const usage = `Usage: good-importer [flags] <input.json>

Converts a GOOD inventory export into mona's artifact import format.
mona documents are written back unchanged.

Positional arguments:
  input.json   GOOD or mona document

Flags:
`

func main() {
	configPath := flag.String("config", "", "YAML config file")
	outPath := flag.String("o", "", "Write the result to this file instead of stdout")
	pretty := flag.Bool("json-pretty", false, "Indent JSON output")
	strict := flag.Bool("strict", false, "Validate the GOOD envelope against its schema")
	workers := flag.Int("workers", 0, "Goroutines validating records (0 = config value)")
	verbose := flag.Bool("verbose", false, "Log dropped substats and other debug diagnostics")
	summary := flag.String("summary", "", "Summary table style: ascii, markdown or none")
	maxSkip := flag.Float64("max-skip-ratio", -1, "Fail when skipped/total exceeds this ratio (0 disables)")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "json-pretty":
			cfg.Pretty = *pretty
		case "strict":
			cfg.Strict = *strict
		case "workers":
			cfg.Workers = *workers
		case "summary":
			cfg.Summary = SummaryMode(*summary)
		case "max-skip-ratio":
			cfg.MaxSkipRatio = *maxSkip
		}
	})
	if *verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(os.Stderr, cfg.LogLevel)

	res, err := ImportFile(args[0], cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	out, err := EncodeResult(res, cfg.Pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := writeOutput(os.Stdout, *outPath, out); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if s := FormatSummary(res, cfg.Summary); s != "" {
		fmt.Fprintln(os.Stderr, s)
	}
	if err := res.CheckSkipRatio(cfg.MaxSkipRatio); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// writeOutput writes out to path, or to stdout with a trailing newline when
// path is empty.
func writeOutput(stdout io.Writer, path string, out []byte) error {
	if path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		return nil
	}
	if _, err := stdout.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	return nil
}
