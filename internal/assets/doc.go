// Package assets loads page templates and provides the starter site.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── FilesystemLoader  - loads from the site's templates directory
//	    └── EmbeddedLoader    - loads from the go:embed starter site
//
// FilesystemLoader is what a build uses. Template names are slash-separated
// paths relative to the templates directory, such as "base.html" or
// "partials/navigation.html".
//
// EmbeddedLoader serves the starter templates compiled into the binary, and
// WriteStarter copies the whole starter site (templates, styles, content)
// into a directory for `sitebuild init`.
//
// # Starter Layout
//
//	{dir}/
//	├── index.md
//	├── content/
//	│   └── posts/
//	│       ├── index.md
//	│       └── hello.md
//	├── styles/
//	│   └── main.css
//	└── templates/
//	    ├── base.html
//	    └── partials/
//	        └── navigation.html
//
// # Security
//
// Template names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within its base directory.
package assets
