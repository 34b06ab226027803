package assets

// TemplateLoader defines the contract for loading page templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by slash-separated relative name,
	// including its extension (e.g. "partials/navigation.html").
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidTemplateName if the name is unsafe.
	LoadTemplate(name string) (string, error)
}
