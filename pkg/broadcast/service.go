package broadcast

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/logger"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

// Resolver resolves an audience into recipients.
type Resolver interface {
	Resolve(ctx context.Context, a audience.Audience) []audience.Recipient
}

// Service runs broadcasts end to end.
type Service struct {
	templates  *templates.Registry
	resolver   Resolver
	builder    *Builder
	dispatcher *Dispatcher
	logger     *slog.Logger
}

// NewService wires the pipeline stages together. A nil logger discards output.
func NewService(reg *templates.Registry, resolver Resolver, builder *Builder, dispatcher *Dispatcher, log *slog.Logger) *Service {
	if log == nil {
		log = logger.NewNope()
	}
	return &Service{
		templates:  reg,
		resolver:   resolver,
		builder:    builder,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// Templates returns the registry the service renders from.
func (s *Service) Templates() *templates.Registry { return s.templates }

// Broadcast validates req, resolves its audience, renders one email per
// recipient and dispatches them. Validation and template lookup happen before
// any upstream call.
func (s *Service) Broadcast(ctx context.Context, req Request) (*Outcome, error) {
	target, err := req.Target()
	if err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Lookup(target.Kind(), req.Template)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := s.logger.With(
		slog.String("broadcast_id", uuid.NewString()),
		slog.Any("audience", target),
		slog.String("template", tmpl.Key),
		slog.String("mode", string(s.dispatcher.Mode())),
	)

	recipients := s.resolver.Resolve(ctx, target)
	if len(recipients) == 0 {
		log.WarnContext(ctx, "broadcast has no recipients")
	}

	emails, err := s.builder.Build(ctx, target, tmpl, recipients)
	if err != nil {
		log.ErrorContext(ctx, "failed to build broadcast", slog.Any("error", err))
		return nil, err
	}

	outcome, err := s.dispatcher.Dispatch(ctx, emails)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "broadcast dispatched",
		slog.Int("recipients", len(recipients)),
		slog.Int("sent", len(outcome.Sent)+len(outcome.SentSuccess)),
		slog.Int("failed", len(outcome.SentError)),
		slog.Duration("duration", time.Since(start)),
	)
	return outcome, nil
}
