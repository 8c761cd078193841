package emails_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/emails"
	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/mailer"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

func TestEmbeddedTemplates(t *testing.T) {
	t.Parallel()

	reg, err := templates.Load(mailer.NewRenderer(emails.FS), emails.FS, emails.Layout)
	require.NoError(t, err)

	require.Equal(t, []string{"2025-09-30"}, reg.Keys(audience.KindNewsletter))
	require.Equal(t, []string{"8-2025-09-24"}, reg.Keys(audience.KindEvent))

	ctx := context.Background()

	newsletter, err := reg.Lookup(audience.KindNewsletter, "2025-09-30")
	require.NoError(t, err)
	require.Equal(t, "✨ NN1 Dev Club #9", newsletter.Subject)

	content, err := newsletter.Render(ctx, audience.NewsletterData{UnsubscribeURL: "https://nn1.dev/newsletter/unsubscribe/abc"})
	require.NoError(t, err)
	require.Contains(t, content.HTML, "<title>✨ NN1 Dev Club #9</title>")
	require.Contains(t, content.HTML, `href="https://nn1.dev/newsletter/unsubscribe/abc"`)
	require.Contains(t, content.Text, "https://nn1.dev/newsletter/unsubscribe/abc")

	event, err := reg.Lookup(audience.KindEvent, "8-2025-09-24")
	require.NoError(t, err)
	require.Equal(t, "✨ NN1 Dev Club #8: See you tomorrow!", event.Subject)

	content, err = event.Render(ctx, audience.EventData{TicketURL: "https://nn1.dev/events/8/t-1"})
	require.NoError(t, err)
	require.Contains(t, content.HTML, `class="btn"`)
	require.Contains(t, content.HTML, "https://nn1.dev/events/8/t-1")
}
