package audience

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nn1-dev/mailcast/pkg/logger"
)

// Fetcher loads raw audience lists from the upstream services.
type Fetcher interface {
	FetchNewsletter(ctx context.Context) ([]Recipient, error)
	FetchEventMembers(ctx context.Context, eventID int) ([]Recipient, error)
}

// Resolver turns an Audience into the ordered list of recipients to email.
type Resolver struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(fetcher Fetcher, log *slog.Logger) *Resolver {
	if log == nil {
		log = logger.NewNope()
	}
	return &Resolver{fetcher: fetcher, logger: log}
}

// Resolve returns the recipients of a. It never fails: upstream errors are
// reported and the affected list is treated as empty.
func (r *Resolver) Resolve(ctx context.Context, a Audience) []Recipient {
	return a.resolve(ctx, r)
}

func (r *Resolver) resolveNewsletter(ctx context.Context, n Newsletter) []Recipient {
	var subscribers, excluded []Recipient

	var g errgroup.Group
	g.Go(func() error {
		subscribers = r.fetchNewsletter(ctx)
		return nil
	})
	if n.ExcludeMembersEventID != nil {
		g.Go(func() error {
			excluded = r.fetchEventMembers(ctx, *n.ExcludeMembersEventID)
			return nil
		})
	}
	_ = g.Wait()

	return exclude(subscribers, excluded)
}

func (r *Resolver) resolveEvent(ctx context.Context, e Event) []Recipient {
	members := r.fetchEventMembers(ctx, e.ID)

	confirmed := make([]Recipient, 0, len(members))
	for _, m := range members {
		if m.Confirmed {
			confirmed = append(confirmed, m)
		}
	}
	return confirmed
}

func (r *Resolver) fetchNewsletter(ctx context.Context) []Recipient {
	recipients, err := r.fetcher.FetchNewsletter(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch newsletter members", slog.Any("error", err))
		return nil
	}
	return r.withEmail(ctx, recipients)
}

func (r *Resolver) fetchEventMembers(ctx context.Context, eventID int) []Recipient {
	recipients, err := r.fetcher.FetchEventMembers(ctx, eventID)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch event members",
			slog.Int("event_id", eventID),
			slog.Any("error", err),
		)
		return nil
	}
	return r.withEmail(ctx, recipients)
}

// withEmail drops entries without an address; a single empty address would
// make the provider reject the whole batch it lands in.
func (r *Resolver) withEmail(ctx context.Context, recipients []Recipient) []Recipient {
	kept := make([]Recipient, 0, len(recipients))
	for _, rec := range recipients {
		if rec.Email == "" {
			r.logger.WarnContext(ctx, "skipping audience entry without email", slog.String("id", rec.ID))
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// exclude returns the recipients whose email does not exactly match any
// excluded entry. Matching is case-sensitive.
func exclude(recipients, excluded []Recipient) []Recipient {
	if len(excluded) == 0 {
		return recipients
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		skip[e.Email] = struct{}{}
	}

	kept := make([]Recipient, 0, len(recipients))
	for _, rec := range recipients {
		if _, ok := skip[rec.Email]; !ok {
			kept = append(kept, rec)
		}
	}
	return kept
}
