package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown templates with YAML frontmatter to HTML.
// Parsed templates and layouts are cached; Render is safe for concurrent use.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templateCache map[string]*cachedTemplate
	layoutCache   map[string]*template.Template
	layoutDir     string

	mu sync.RWMutex
}

type cachedTemplate struct {
	parsed *Template
	tmpl   *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	LayoutDir string // Default: "layouts"
}

// NewRenderer creates a renderer reading templates from filesystem.
func NewRenderer(filesystem fs.FS, opts ...RendererConfig) *Renderer {
	var cfg RendererConfig
	if len(opts) > 0 {
		cfg = opts[0]
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:        filesystem,
		layoutDir: cfg.LayoutDir,
		md: goldmark.New(
			goldmark.WithExtensions(NewButtonExtension()),
		),
		templateCache: make(map[string]*cachedTemplate),
		layoutCache:   make(map[string]*template.Template),
	}
}

// RenderResult contains the rendered HTML, plain text, and template metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Template returns the parsed template at name (a path inside the renderer FS).
func (r *Renderer) Template(name string) (*Template, error) {
	cached, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}
	return cached.parsed, nil
}

// Render executes the template at name with data and wraps it into layout.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := cached.tmpl.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRenderFailed, name, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert %s: %v", ErrRenderFailed, name, err)
	}

	layoutTmpl, err := r.getLayout(layout)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layoutTmpl.Execute(&out, map[string]any{
		"Content":  template.HTML(body.String()),
		"Metadata": cached.parsed.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		HTML:     out.String(),
		Text:     markdown.String(),
		Metadata: cached.parsed.Metadata,
	}, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templateCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.templateCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	parsed, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	tmpl, err := texttemplate.New(name).Option("missingkey=error").Parse(parsed.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRenderFailed, name, err)
	}

	cached = &cachedTemplate{parsed: parsed, tmpl: tmpl}
	r.templateCache[name] = cached
	return cached, nil
}

func (r *Renderer) getLayout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layoutCache[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout %s: %v", ErrRenderFailed, name, err)
	}

	r.layoutCache[name] = tmpl
	return tmpl, nil
}
