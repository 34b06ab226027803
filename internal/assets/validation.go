package assets

import (
	"fmt"
	"path"
	"strings"
)

// ValidateTemplateName checks that a template name is a safe relative path.
// Backslashes are rejected so names mean the same thing on every platform.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidTemplateName)
	}
	if strings.ContainsAny(name, "\\\x00") || path.IsAbs(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidTemplateName, name)
		}
	}
	return nil
}
