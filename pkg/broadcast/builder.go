package broadcast

import (
	"context"
	"fmt"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/mailer"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

// headerer is implemented by template data that adds message headers.
type headerer interface {
	Headers() map[string]string
}

// Builder renders one email per recipient.
type Builder struct {
	from        string
	siteURL     string
	concurrency int
}

// NewBuilder creates a Builder sending from the given address. siteURL is the
// base of the per-recipient links. concurrency <= 0 renders all payloads at once.
func NewBuilder(from, siteURL string, concurrency int) *Builder {
	return &Builder{from: from, siteURL: siteURL, concurrency: concurrency}
}

// Build renders tmpl for every recipient. The result has one email per
// recipient in the same order. The first render error cancels the remaining
// renders and is returned wrapped in ErrRenderFailed.
func (b *Builder) Build(ctx context.Context, a audience.Audience, tmpl templates.Descriptor, recipients []audience.Recipient) ([]*mailer.Email, error) {
	emails := make([]*mailer.Email, len(recipients))
	if len(recipients) == 0 {
		return emails, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if b.concurrency > 0 {
		g.SetLimit(b.concurrency)
	}

	tags := mailer.Tags{
		"audience": string(a.Kind()),
		"template": tmpl.Key,
	}

	for i, r := range recipients {
		g.Go(func() error {
			data := a.TemplateData(b.siteURL, r)

			content, err := tmpl.Render(gctx, data)
			if err != nil {
				return fmt.Errorf("%w: %s for %s: %w", ErrRenderFailed, tmpl.Key, r.Email, err)
			}

			email := &mailer.Email{
				From:    b.from,
				To:      []string{r.Email},
				Subject: tmpl.Subject,
				HTML:    content.HTML,
				Text:    content.Text,
				Tags:    maps.Clone(tags),
			}
			if h, ok := data.(headerer); ok {
				email.Headers = h.Headers()
			}
			emails[i] = email
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return emails, nil
}
