package audience

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
)

// Kind names an audience variant.
type Kind string

const (
	KindNewsletter Kind = "newsletter"
	KindEvent      Kind = "event"
)

// Kinds lists every audience kind.
var Kinds = []Kind{KindNewsletter, KindEvent}

// ParseKind converts a request value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindNewsletter, KindEvent:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Audience is the target of a broadcast. It is implemented only by
// Newsletter and Event.
type Audience interface {
	Kind() Kind

	// TemplateData returns the per-recipient data passed to the template.
	TemplateData(siteURL string, r Recipient) any

	slog.LogValuer

	resolve(ctx context.Context, r *Resolver) []Recipient
}

// Newsletter targets every newsletter subscriber. When ExcludeMembersEventID
// is set, subscribers registered for that event are left out.
type Newsletter struct {
	ExcludeMembersEventID *int
}

func (Newsletter) Kind() Kind { return KindNewsletter }

func (Newsletter) TemplateData(siteURL string, r Recipient) any {
	return NewsletterData{
		UnsubscribeURL: joinURL(siteURL, "newsletter", "unsubscribe", r.ID),
	}
}

func (n Newsletter) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", string(KindNewsletter))}
	if n.ExcludeMembersEventID != nil {
		attrs = append(attrs, slog.Int("exclude_members_event_id", *n.ExcludeMembersEventID))
	}
	return slog.GroupValue(attrs...)
}

func (n Newsletter) resolve(ctx context.Context, r *Resolver) []Recipient {
	return r.resolveNewsletter(ctx, n)
}

// Event targets the confirmed members of one event.
type Event struct {
	ID int
}

func (Event) Kind() Kind { return KindEvent }

func (e Event) TemplateData(siteURL string, r Recipient) any {
	return EventData{
		TicketURL: joinURL(siteURL, "events", strconv.Itoa(e.ID), r.ID),
	}
}

func (e Event) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", string(KindEvent)),
		slog.Int("event_id", e.ID),
	)
}

func (e Event) resolve(ctx context.Context, r *Resolver) []Recipient {
	return r.resolveEvent(ctx, e)
}

// NewsletterData is the template data for newsletter broadcasts.
type NewsletterData struct {
	UnsubscribeURL string
}

// Headers returns the one-click unsubscribe headers for the message.
func (d NewsletterData) Headers() map[string]string {
	return map[string]string{
		"List-Unsubscribe":      "<" + d.UnsubscribeURL + ">",
		"List-Unsubscribe-Post": "List-Unsubscribe=One-Click",
	}
}

// EventData is the template data for event broadcasts.
type EventData struct {
	TicketURL string
}

func joinURL(base string, segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(escaped, "/")
}
