package templates

import "errors"

var (
	ErrTemplateNotConfigured = errors.New("templates: template is not configured")
	ErrDuplicateTemplate     = errors.New("templates: duplicate template")
	ErrInvalidDescriptor     = errors.New("templates: invalid descriptor")
)
