// Command sitebuild renders a Markdown content tree into a static HTML site.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch cmd {
	case "build":
		flags, positional, err := parseBuildFlags(rest, env.Stderr)
		if err != nil {
			return parseFailure(err, env)
		}
		if len(positional) > 0 {
			fmt.Fprintf(env.Stderr, "build: unexpected argument %q\n", positional[0])
			return ExitUsage
		}

		setMaxProcs(env, flags.common.verbose)

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if err := runBuild(ctx, flags, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "init":
		flags, positional, err := parseInitFlags(rest, env.Stderr)
		if err != nil {
			return parseFailure(err, env)
		}
		if err := runInit(positional, flags, env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitebuild %s\n", Version)
		return ExitSuccess

	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// parseFailure reports a flag parsing error. -h/--help is not a failure:
// usage has already been printed.
func parseFailure(err error, env *Environment) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, err)
	return exitCodeFor(err)
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(env *Environment, verbose bool) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}
