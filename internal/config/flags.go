package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-progress) are applied after Parse so Options
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into opts. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, bad value).
func ParseFlags(opts *Options, version string) error {
	fs := flag.NewFlagSet("countimages", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Negated/override flags: we capture bools then apply to opts after
	// Parse, so that defaults from DefaultOptions() hold unless set.
	var negated negatedFlags

	fs.StringVar(&opts.ConfigPath, "config", "", "Dataset configuration JSON file (default: stdin)")
	fs.StringVar(&opts.ConfigPath, "c", "", "Same as --config")
	fs.BoolVar(&opts.Parallel, "parallel", false, "Count datasets concurrently")
	fs.BoolVar(&opts.Parallel, "p", false, "Same as --parallel")
	fs.IntVar(&opts.Workers, "workers", 0, "Worker pool size for --parallel (0 = one per CPU)")

	fs.BoolVar(&negated.noProgress, "no-progress", false, "Do not show the progress bar")
	fs.BoolVar(&negated.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&negated.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&opts.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&opts.CheckOnly, "check", false, "Check dataset directories and exit")
	fs.StringVar(&opts.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&opts.LogFile, "l", "", "Same as --log")

	fs.BoolVar(&negated.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&negated.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&negated.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&negated.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(opts, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "countimages v"+version)
		os.Exit(0)
	}

	if args := fs.Args(); len(args) != 0 {
		return fmt.Errorf("unexpected argument %q (datasets come from --config or stdin)", args[0])
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noProgress -> ShowProgress=false)
// or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noProgress  bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// applyNegatedFlags copies negated and override flag values into opts.
func applyNegatedFlags(opts *Options, n *negatedFlags) {
	if n.noProgress {
		opts.ShowProgress = false
	}
	if n.noColor {
		opts.ColorMode = ColorNever
	} else if n.forceColor {
		opts.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "countimages v" + version + " — per-dataset image counts for training configs"},
		{"", ""},
		{"  countimages [OPTIONS]", ""},
		{"", ""},
		{"Input", ""},
		{"  -c, --config <path>", "Dataset configuration JSON file (default: stdin)"},
		{"", ""},
		{"Execution", ""},
		{"  -p, --parallel", "Count datasets concurrently"},
		{"  --workers <n>", "Worker pool size for --parallel (default: one per CPU)"},
		{"", ""},
		{"Display", ""},
		{"  --no-progress", "Do not show the progress bar"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --check", "Check dataset directories and exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
