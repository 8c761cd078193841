package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// Template is a parsed template file: frontmatter metadata plus markdown body.
type Template struct {
	Metadata map[string]any
	Body     string
}

// Subject returns the "Subject" frontmatter field, or "" when absent.
func (t *Template) Subject() string {
	s, _ := t.Metadata["Subject"].(string)
	return s
}

// ParseTemplate splits a template file into YAML frontmatter and markdown body.
// Files without a leading "---" have no metadata.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{Metadata: map[string]any{}, Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(content[len(frontmatterDelimiter):], "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	front, body, found := bytes.Cut(rest, frontmatterDelimiter)
	if !found {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	// Exactly one line break after the closing delimiter belongs to it.
	if !bytes.HasPrefix(body, []byte("\r\n")) {
		body = bytes.TrimPrefix(body, []byte("\n"))
	} else {
		body = body[2:]
	}

	metadata := map[string]any{}
	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return &Template{Metadata: metadata, Body: string(body)}, nil
}
