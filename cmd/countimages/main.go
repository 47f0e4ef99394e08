// Command countimages reports, per configured dataset, how many image files
// under its source directory satisfy the dataset's dimension constraints.
//
// It parses flags, loads the dataset configuration from a JSON file or
// stdin, and either runs directory diagnostics (--check) or the counting
// pipeline, printing an id-sorted count table with a grand total.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/minha12/countimages/internal/check"
	"github.com/minha12/countimages/internal/config"
	"github.com/minha12/countimages/internal/display"
	"github.com/minha12/countimages/internal/logging"
	"github.com/minha12/countimages/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	opts := config.DefaultOptions()
	if err := config.ParseFlags(&opts, version); err != nil {
		fmt.Fprintf(os.Stderr, "countimages: %v\n", err)
		return 1
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "countimages: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "countimages: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()
	log.Debug("countimages v%s (%s)", version, commit)

	fsys := afero.NewOsFs()

	if opts.ConfigPath == "" {
		log.Info("No config file provided, expecting JSON input from stdin...")
	}
	datasets, err := config.LoadDatasets(fsys, opts.ConfigPath, os.Stdin)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if opts.CheckOnly {
		if !check.RunCheck(fsys, datasets, log) {
			return 1
		}
		return 0
	}

	// Phase 3: Count. The progress bar tracks per-dataset completions on
	// stderr; the report itself goes to stdout.
	runner := pipeline.Runner{
		Fs:       fsys,
		Log:      log,
		Parallel: opts.Parallel,
		Workers:  opts.Workers,
	}

	countable := len(pipeline.CountableDatasets(datasets))
	finishProgress := func() {}
	if opts.ShowProgress && countable > 0 {
		bar := display.StartProgress(countable)
		runner.Progress = func() { bar.Increment() }
		finishProgress = func() { bar.Finish() }
	}

	results, err := runner.Run(context.Background(), datasets)
	finishProgress()
	if err != nil {
		log.Error("Counting failed: %v", err)
		return 1
	}

	display.RenderReport(os.Stdout, results, datasets)
	return 0
}
