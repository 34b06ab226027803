// Package site builds a static HTML site from a tree of Markdown files.
//
// # Quick Start
//
// Create a builder with the project directories and run it once:
//
//	b := site.NewBuilder(
//	    site.WithContentDir("content"),
//	    site.WithOutputDir("dist"),
//	    site.WithTemplatesDir("templates"),
//	    site.WithStylesDir("styles"),
//	)
//
//	result, err := b.Build(ctx)
//	if err != nil {
//	    log.Fatal(err) // setup failure: output dir, styles, base template
//	}
//	fmt.Printf("Processed %d files\n", result.Processed)
//
// # Build Pipeline
//
// Build runs these stages in order:
//
//  1. Create the output directory
//  2. Copy the styles directory into <output>/styles
//  3. Load the base template (required) and navigation partial (optional)
//  4. Render the root index.md, if present, to <output>/index.html
//  5. Walk the content directory depth-first and render every .md file
//
// Each Markdown file goes through: route resolution, read, line-ending
// normalization, removal of a leading "// filepath:" or "<!-- filepath: -->"
// line, rewriting of "](x.md)" links to "](x.html)", conversion with Goldmark,
// and composition into the base template.
//
// # Routes
//
// Every source file maps to a Route. For a content root "content":
//
//	content/index.md       -> dist/index.html        title: site title, no section
//	content/posts/index.md -> dist/posts/index.html  title: "Posts", section "posts"
//	content/posts/hello.md -> dist/posts/hello.html  title: "hello", section "posts"
//
// # Templates
//
// Templates use two constructs: {{name}} substitutes a value and
// {{#if name}}...{{/if}} keeps its body only when the value is truthy.
// The base template receives title, navigation, content, showSuffix,
// siteTitle and toc. The navigation partial receives section and
// sectionTitle.
//
// # Headings
//
// Every heading gets an id derived from its text and a self-link:
//
//	## My Section
//
// renders as
//
//	<h2 id="my-section"><a href="#my-section" class="heading-anchor">My Section</a></h2>
//
// Identical headings in one document produce identical ids.
//
// # Error Handling
//
// Setup failures abort Build and are returned as errors (ErrOutputDir,
// ErrStylesCopy, ErrBaseTemplateNotFound). Failures of individual files are
// logged, recorded in BuildResult.Files and never stop the build:
//
//	for _, f := range result.Files {
//	    if errors.Is(f.Err, site.ErrReadSource) {
//	        // handle unreadable source
//	    }
//	}
package site
