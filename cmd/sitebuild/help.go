package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitebuild <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render the content tree into the output directory")
	fmt.Fprintln(w, "  init       Create starter templates, styles and content")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'sitebuild help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitebuild build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every Markdown file under the content directory to HTML.")
	fmt.Fprintln(w, "Without --config, ./sitebuild.yaml is used when present.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --site-title <s>      Title of the root index page")
	fmt.Fprintln(w, "      --sections <list>     Only walk these top-level directories (a,b,c)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = one per CPU, 1 = sequential)")
	fmt.Fprintln(w, "      --strict              Exit non-zero when any page fails")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "      --content <dir>       Content directory (default: content)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: dist)")
	fmt.Fprintln(w, "      --templates <dir>     Templates directory (default: templates)")
	fmt.Fprintln(w, "      --styles <dir>        Styles directory (\"\" = do not copy)")
	fmt.Fprintln(w, "      --root-index <file>   Top-level index file (\"\" = none)")
	fmt.Fprintln(w, "      --embedded-templates  Use the built-in starter templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --no-raw-html         Omit raw HTML found in sources")
	fmt.Fprintln(w, "      --no-highlight        Disable code highlighting")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style for inline colors")
	fmt.Fprintln(w, "      --marks               Convert ==text== to <mark>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Fill {{toc}} in templates")
	fmt.Fprintln(w, "      --no-toc              Leave {{toc}} empty")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintln(w, "      --toc-min-depth <n>   Min heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-max-depth <n>   Max heading depth (1-6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file details and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SITEBUILD_CONFIG, SITEBUILD_SITE_TITLE, SITEBUILD_CONTENT_DIR,")
	fmt.Fprintln(w, "  SITEBUILD_OUTPUT_DIR, SITEBUILD_TEMPLATES_DIR, SITEBUILD_STYLES_DIR,")
	fmt.Fprintln(w, "  SITEBUILD_SECTIONS, SITEBUILD_WORKERS, SITEBUILD_STRICT")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: sitebuild init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create starter templates, styles, content and sitebuild.yaml in dir")
	fmt.Fprintln(w, "(default: current directory). Existing files are never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: sitebuild version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: sitebuild help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
