// Package pipeline implements the per-page rendering stages of a site build.
//
// A content file flows through these stages:
//   - Source preprocessing (line endings, filepath annotation, .md links)
//   - Markdown to HTML conversion via goldmark, with anchored headings
//   - Page composition from the base template and navigation partial
//
// Path resolution, directory traversal and file I/O live in the root site
// package. This package only transforms strings.
package pipeline
