// Package srctl implements the repo's dev harness: layout checks for the
// native engine pieces, Go test runs, and a build-and-run smoke of the CLI.
package srctl

import (
	"flag"
	"fmt"
	"os"
)

type Config struct {
	LogLvl string
}

func usage() {
	fmt.Println("Usage: srctl [--log-level info] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  check lib|models|all")
	fmt.Println("  test go")
	fmt.Println("  test engine")
	fmt.Println("  smoke")
}

// Run dispatches the CLI command. It returns an error instead of exiting,
// enabling reuse from other packages or tests.
func Run(args []string, cfg *Config) error {
	switch args[0] {
	case "check":
		if len(args) < 2 {
			return fmt.Errorf("check requires a subcommand: lib|models|all")
		}
		switch args[1] {
		case "lib":
			return fnCheckLib()
		case "models":
			return fnCheckModels()
		case "all":
			if err := fnCheckLib(); err != nil {
				return err
			}
			return fnCheckModels()
		default:
			return fmt.Errorf("unknown check subcommand: %s", args[1])
		}
	case "test":
		if len(args) < 2 {
			return fmt.Errorf("test requires a subcommand: go|engine")
		}
		switch args[1] {
		case "go":
			return fnRunGoTests(cfg)
		case "engine":
			return fnBuildEngine()
		default:
			return fmt.Errorf("unknown test subcommand: %s", args[1])
		}
	case "smoke":
		return fnSmoke()
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func ParseConfig() (*Config, []string) {
	return ParseConfigWith(flag.CommandLine, os.Args[1:])
}

// ParseConfigWith parses flags using the provided FlagSet and args slice.
// Tests inject their own FlagSet so global state stays untouched.
func ParseConfigWith(fs *flag.FlagSet, args []string) (*Config, []string) {
	cfg := &Config{}
	if fs.Lookup("log-level") == nil {
		fs.String("log-level", envStr("SRCTL_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	}
	_ = fs.Parse(args)
	ll := envStr("SRCTL_LOG_LEVEL", "info")
	if f := fs.Lookup("log-level"); f != nil {
		if v := f.Value.String(); v != "" {
			ll = v
		}
	}
	cfg.LogLvl = ll
	return cfg, fs.Args()
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "help" {
			usage()
			return 0
		}
	}
	fs := flag.NewFlagSet("srctl", flag.ContinueOnError)
	cfg, rest := ParseConfigWith(fs, args)
	SetLogLevel(cfg.LogLvl)
	if len(rest) == 0 {
		usage()
		return 2
	}
	if err := Run(rest, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/srctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
