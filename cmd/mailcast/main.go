package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nn1-dev/mailcast"
	"github.com/nn1-dev/mailcast/emails"
	"github.com/nn1-dev/mailcast/handlers"
	"github.com/nn1-dev/mailcast/middlewares"
	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/broadcast"
	"github.com/nn1-dev/mailcast/pkg/health"
	"github.com/nn1-dev/mailcast/pkg/logger"
	"github.com/nn1-dev/mailcast/pkg/mailer"
	"github.com/nn1-dev/mailcast/pkg/mailer/resend"
	"github.com/nn1-dev/mailcast/pkg/mailer/ses"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger, middlewares.RequestIDExtractor())

	app, err := newApp(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to start", slog.Any("error", err))
		_ = logger.Flush(context.Background())
		os.Exit(1)
	}

	if err := app.Run(cfg.Addr,
		mailcast.Logger(log),
		mailcast.WriteTimeout(cfg.RequestTimeout+cfg.Audience.Timeout),
		mailcast.ShutdownHook(logger.Flush),
	); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		_ = logger.Flush(context.Background())
		os.Exit(1)
	}
}

// newApp wires the broadcast pipeline behind the HTTP app.
func newApp(ctx context.Context, cfg config, log *slog.Logger) (*mailcast.App, error) {
	reg, err := templates.Load(mailer.NewRenderer(emails.FS), emails.FS, cfg.Mailer.Layout)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	sender, err := newSender(ctx, cfg)
	if err != nil {
		return nil, err
	}

	dispatcher, err := broadcast.NewDispatcher(sender,
		broadcast.WithMode(cfg.Broadcast.Mode),
		broadcast.WithBatchSize(cfg.Broadcast.MaxBatch),
		broadcast.WithRate(cfg.Broadcast.RatePerSec),
		broadcast.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("create dispatcher: %w", err)
	}

	svc := broadcast.NewService(
		reg,
		audience.NewResolver(audience.NewClient(ctx, cfg.Audience), log),
		broadcast.NewBuilder(cfg.Mailer.From, cfg.Broadcast.SiteURL, cfg.Broadcast.RenderConcurrency),
		dispatcher,
		log,
	)

	log.Info("broadcast pipeline ready",
		slog.String("provider", cfg.Mailer.Provider),
		slog.String("mode", string(dispatcher.Mode())),
		slog.Int("templates", reg.Len()),
	)

	return mailcast.New(
		mailcast.WithLogger(log),
		mailcast.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.APIKey(cfg.APIKey,
				middlewares.WithAuthSkipPaths(mailcast.DefaultLivenessPath, mailcast.DefaultReadinessPath),
			),
			middlewares.Timeout(cfg.RequestTimeout),
		),
		mailcast.WithHealthChecks(
			mailcast.WithReadinessCheck("config", health.Configured(cfg.readiness())),
		),
		mailcast.WithHandlers(handlers.NewBroadcast(svc, svc.Templates())),
	), nil
}

func newSender(ctx context.Context, cfg config) (mailer.Sender, error) {
	switch cfg.Mailer.Provider {
	case providerResend:
		rcfg := cfg.Resend
		if rcfg.From == "" {
			rcfg.From = cfg.Mailer.From
		}
		return resend.New(rcfg)
	case providerSES:
		scfg := cfg.SES
		if scfg.From == "" {
			scfg.From = cfg.Mailer.From
		}
		return ses.New(ctx, scfg)
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Mailer.Provider)
	}
}
