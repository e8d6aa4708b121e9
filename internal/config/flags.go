package config

// This file implements CLI flag parsing and help text. Flags shared by both
// binaries are registered unconditionally; the --exiftool override only
// exists on the variant that actually invokes exiftool.

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. On --help or
// --version it prints and exits. name is the binary name shown in usage.
// On error it returns non-nil (e.g. unknown flag, missing directory).
func ParseFlags(cfg *Config, name, version string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() { printUsage(fs, name, version) }

	var exit exitFlags

	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report planned renames without performing them")
	fs.StringVar(&cfg.IPhonePrefix, "iphone-prefix", cfg.IPhonePrefix, "Device token for iPhone files")
	fs.StringVar(&cfg.AndroidPrefix, "android-prefix", cfg.AndroidPrefix, "Device token for Android files")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "Civil timezone for generated names")
	fs.StringVar(&cfg.FfprobeBin, "ffprobe", cfg.FfprobeBin, "ffprobe binary to invoke")
	if cfg.MetadataDevice {
		fs.StringVar(&cfg.ExiftoolBin, "exiftool", cfg.ExiftoolBin, "exiftool binary to invoke")
	}
	fs.BoolVarP(&cfg.Analyze, "analyze", "a", false, "Probe files and print the plan table, change nothing")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.BoolVar(&exit.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&exit.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.BoolVarP(&exit.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&exit.showHelp, "help", "h", false, "Show this help and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if exit.showHelp {
		fs.Usage()
		os.Exit(0)
	}
	if exit.showVersion {
		fmt.Fprintln(os.Stdout, name+" v"+version)
		os.Exit(0)
	}

	// --no-color wins over --color when both are passed.
	if exit.noColor {
		cfg.ColorMode = ColorNever
	} else if exit.forceColor {
		cfg.ColorMode = ColorAlways
	}

	return parsePositionalArgs(fs, cfg)
}

// exitFlags holds flags that are applied after Parse: color overrides and
// flags that print and exit (help, version).
type exitFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets Dir from the single positional argument. In
// CheckOnly mode the argument is optional.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly && len(args) == 0 {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one directory argument")
	}
	cfg.Dir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr.
func printUsage(fs *flag.FlagSet, name, version string) {
	fmt.Fprintf(os.Stderr, "%s v%s: rename media files to YYYYMMDD-HHMMSS-<device>.<ext>\n\n", name, version)
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <directory>\n\n", name)
	fmt.Fprint(os.Stderr, fs.FlagUsages())
}
