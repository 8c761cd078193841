package templates

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/mailer"
)

const templateExt = ".md"

// Load registers every <kind>/<key>.md file found in fsys. The subject comes
// from the "Subject" frontmatter field and is required. Rendered bodies are
// wrapped into layout.
func Load(renderer *mailer.Renderer, fsys fs.FS, layout string) (*Registry, error) {
	var descriptors []Descriptor

	for _, kind := range audience.Kinds {
		files, err := fs.Glob(fsys, path.Join(string(kind), "*"+templateExt))
		if err != nil {
			return nil, fmt.Errorf("templates: list %s: %w", kind, err)
		}

		for _, name := range files {
			tmpl, err := renderer.Template(name)
			if err != nil {
				return nil, fmt.Errorf("templates: load %s: %w", name, err)
			}

			descriptors = append(descriptors, Descriptor{
				Audience: kind,
				Key:      strings.TrimSuffix(path.Base(name), templateExt),
				Subject:  tmpl.Subject(),
				Render:   markdownRender(renderer, layout, name),
			})
		}
	}

	return New(descriptors...)
}

func markdownRender(renderer *mailer.Renderer, layout, name string) RenderFunc {
	return func(ctx context.Context, data any) (Content, error) {
		if err := ctx.Err(); err != nil {
			return Content{}, err
		}
		res, err := renderer.Render(layout, name, data)
		if err != nil {
			return Content{}, err
		}
		return Content{HTML: res.HTML, Text: res.Text}, nil
	}
}
