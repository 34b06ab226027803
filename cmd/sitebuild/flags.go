package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds site layout flags.
type pathFlags struct {
	content   string
	output    string
	templates string
	styles    string
	rootIndex string

	embeddedTemplates bool
}

// markdownFlags holds Markdown rendering flags.
type markdownFlags struct {
	noRawHTML      bool
	noHighlight    bool
	highlightStyle string
	marks          bool
}

// tocFlags holds table of contents flags.
type tocFlags struct {
	enabled  bool
	disabled bool
	title    string
	minDepth int
	maxDepth int
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common    commonFlags
	paths     pathFlags
	siteTitle string
	sections  []string
	workers   int
	strict    bool
	markdown  markdownFlags
	toc       tocFlags

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
}

// addPathFlags adds site layout flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVar(&f.content, "content", "", "content directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.templates, "templates", "", "templates directory")
	fs.StringVar(&f.styles, "styles", "", "styles directory copied to <output>/styles")
	fs.StringVar(&f.rootIndex, "root-index", "", "top-level index file")
	fs.BoolVar(&f.embeddedTemplates, "embedded-templates", false, "use the built-in starter templates")
}

// addMarkdownFlags adds Markdown rendering flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.BoolVar(&f.noRawHTML, "no-raw-html", false, "omit raw HTML found in sources")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code highlighting")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for inline colors (default: CSS classes)")
	fs.BoolVar(&f.marks, "marks", false, "convert ==text== to <mark>")
}

// addTOCFlags adds TOC flags to a FlagSet.
func addTOCFlags(fs *flag.FlagSet, f *tocFlags) {
	fs.BoolVar(&f.enabled, "toc", false, "enable {{toc}} in templates")
	fs.BoolVar(&f.disabled, "no-toc", false, "disable {{toc}}")
	fs.StringVar(&f.title, "toc-title", "", "table of contents heading")
	fs.IntVar(&f.minDepth, "toc-min-depth", 0, "min heading depth for TOC (1-6, default: 2)")
	fs.IntVar(&f.maxDepth, "toc-max-depth", 0, "max heading depth for TOC (1-6, default: 3)")
}

// parseBuildFlags parses flags for the build command.
func parseBuildFlags(args []string, stderr io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	fs.StringVar(&f.siteTitle, "site-title", "", "title of the root index page")
	fs.StringSliceVar(&f.sections, "sections", nil, "only walk these top-level content directories")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = one per CPU, 1 = sequential)")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when any page fails")

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addMarkdownFlags(fs, &f.markdown)
	addTOCFlags(fs, &f.toc)

	fs.Usage = func() { printBuildUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	if f.toc.enabled && f.toc.disabled {
		return nil, nil, fmt.Errorf("%w: --toc and --no-toc are mutually exclusive", ErrUsage)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// parseInitFlags parses flags for the init command.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &initFlags{}

	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")

	fs.Usage = func() { printInitUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapParseError(err)
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: init takes at most one directory", ErrUsage)
	}
	return f, fs.Args(), nil
}

func wrapParseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
