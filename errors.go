package site

import (
	"errors"

	"github.com/evanshlee/evanshlee.github.io/internal/assets"
	"github.com/evanshlee/evanshlee.github.io/internal/pipeline"
)

// Sentinel errors for setup failures. Any of these aborts a build.
var (
	ErrOutputDir            = errors.New("failed to create output directory")
	ErrStylesCopy           = errors.New("failed to copy styles")
	ErrBaseTemplateNotFound = errors.New("base template not found")
)

// ErrTemplateNotFound is the not-found error of the built-in template
// loaders. Custom TemplateLoader implementations may wrap it or fs.ErrNotExist.
var ErrTemplateNotFound = assets.ErrTemplateNotFound

// Sentinel errors for per-file failures, reported in FileResult.Err.
var (
	ErrReadSource         = errors.New("failed to read source file")
	ErrHTMLConversion     = pipeline.ErrHTMLConversion
	ErrWritePage          = errors.New("failed to write page")
	ErrOutsideContentRoot = errors.New("source file is outside content root")
)
