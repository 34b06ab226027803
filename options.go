package site

import (
	"log/slog"

	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

// Defaults for a site laid out as content/, templates/, styles/ and a
// root index.md, built into dist/.
const (
	DefaultSiteTitle          = "evanshlee"
	DefaultContentDir         = "content"
	DefaultOutputDir          = "dist"
	DefaultTemplatesDir       = "templates"
	DefaultStylesDir          = "styles"
	DefaultRootIndex          = "index.md"
	DefaultBaseTemplate       = "base.html"
	DefaultNavigationTemplate = "partials/navigation.html"
)

// TemplateLoader loads page templates by slash-separated relative name.
// A missing template must be reported with an error wrapping
// ErrTemplateNotFound or fs.ErrNotExist, so the navigation partial can be
// treated as optional.
type TemplateLoader interface {
	LoadTemplate(name string) (string, error)
}

// MarkdownOptions configures Markdown conversion.
type MarkdownOptions struct {
	RawHTML        bool   // Pass raw HTML in sources through to output
	Highlight      bool   // Syntax-highlight fenced code blocks
	HighlightStyle string // Chroma style name; empty emits CSS classes
	Marks          bool   // Convert ==text== to <mark>text</mark>
}

// DefaultMarkdownOptions returns the Markdown settings used by NewBuilder.
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{RawHTML: true, Highlight: true}
}

// TOC configures the table of contents exposed to templates as {{toc}}.
type TOC struct {
	Title    string // Heading above the list; empty omits it
	MinDepth int    // Shallowest heading level listed (1-6)
	MaxDepth int    // Deepest heading level listed (1-6)
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds the directories and settings of a Builder.
type builderConfig struct {
	siteTitle      string
	contentDir     string
	outputDir      string
	templatesDir   string
	stylesDir      string
	rootIndex      string
	baseTemplate   string
	navTemplate    string
	sections       []string
	workers        int
	markdown       MarkdownOptions
	toc            *TOC
	templateLoader TemplateLoader
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{
		siteTitle:    DefaultSiteTitle,
		contentDir:   DefaultContentDir,
		outputDir:    DefaultOutputDir,
		templatesDir: DefaultTemplatesDir,
		stylesDir:    DefaultStylesDir,
		rootIndex:    DefaultRootIndex,
		baseTemplate: DefaultBaseTemplate,
		navTemplate:  DefaultNavigationTemplate,
		workers:      1,
		markdown:     DefaultMarkdownOptions(),
	}
}

// WithSiteTitle sets the title of the root index page, also exposed to
// templates as {{siteTitle}}.
func WithSiteTitle(title string) Option {
	return func(b *Builder) {
		b.cfg.siteTitle = title
	}
}

// WithContentDir sets the content root. A missing directory is not an error;
// only the root index is built.
func WithContentDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.contentDir = dir
	}
}

// WithOutputDir sets the output root.
func WithOutputDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.outputDir = dir
	}
}

// WithTemplatesDir sets the directory templates are loaded from.
// Ignored when WithTemplateLoader is used.
func WithTemplatesDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.templatesDir = dir
	}
}

// WithStylesDir sets the styles directory copied to <output>/styles.
// An empty dir disables copying.
func WithStylesDir(dir string) Option {
	return func(b *Builder) {
		b.cfg.stylesDir = dir
	}
}

// WithRootIndex sets the top-level index file rendered to <output>/index.html.
// An empty path disables it.
func WithRootIndex(path string) Option {
	return func(b *Builder) {
		b.cfg.rootIndex = path
	}
}

// WithTemplateNames sets the base template and navigation partial names.
// An empty navigation name disables navigation.
func WithTemplateNames(base, navigation string) Option {
	return func(b *Builder) {
		b.cfg.baseTemplate = base
		b.cfg.navTemplate = navigation
	}
}

// WithTemplateLoader replaces the templates directory with a custom loader.
func WithTemplateLoader(loader TemplateLoader) Option {
	return func(b *Builder) {
		b.cfg.templateLoader = loader
	}
}

// WithSections restricts the walk to the named top-level directories of
// the content root, in the given order. Files directly in the content root
// are then skipped. No names means the whole tree is walked.
func WithSections(names ...string) Option {
	return func(b *Builder) {
		b.cfg.sections = append([]string(nil), names...)
	}
}

// WithWorkers sets how many files are rendered concurrently.
// Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.cfg.workers = max(n, 1)
	}
}

// WithMarkdown sets Markdown conversion options.
func WithMarkdown(opts MarkdownOptions) Option {
	return func(b *Builder) {
		b.cfg.markdown = opts
	}
}

// WithTOC enables the {{toc}} template value. Nil disables it.
func WithTOC(toc *TOC) Option {
	return func(b *Builder) {
		b.cfg.toc = toc
	}
}

// WithLogger sets the logger for progress and per-file errors.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// withHTMLConverter replaces the Markdown converter, for tests.
func withHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(b *Builder) {
		b.htmlConverter = c
	}
}
