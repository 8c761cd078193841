package broadcast

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/nn1-dev/mailcast/pkg/chunk"
	"github.com/nn1-dev/mailcast/pkg/logger"
	"github.com/nn1-dev/mailcast/pkg/mailer"
)

// Dispatcher hands rendered emails to the mail provider, one call at a time.
type Dispatcher struct {
	sender    mailer.Sender
	batch     mailer.BatchSender
	limiter   *rate.Limiter
	logger    *slog.Logger
	mode      Mode
	batchSize int
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMode sets the dispatch mode. Default: ModeBatch.
func WithMode(m Mode) DispatcherOption {
	return func(d *Dispatcher) { d.mode = m }
}

// WithBatchSize caps the batch size below the provider maximum.
func WithBatchSize(n int) DispatcherOption {
	return func(d *Dispatcher) { d.batchSize = n }
}

// WithRate paces provider calls to perSec calls per second.
// perSec <= 0 disables pacing.
func WithRate(perSec float64) DispatcherOption {
	return func(d *Dispatcher) {
		if perSec <= 0 {
			d.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		d.limiter = rate.NewLimiter(rate.Limit(perSec), 1)
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a Dispatcher. Batch mode requires sender to implement
// mailer.BatchSender.
func NewDispatcher(sender mailer.Sender, opts ...DispatcherOption) (*Dispatcher, error) {
	d := &Dispatcher{
		sender:  sender,
		mode:    ModeBatch,
		limiter: rate.NewLimiter(rate.Inf, 0),
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}

	switch d.mode {
	case ModeIndividual:
	case ModeBatch:
		bs, ok := sender.(mailer.BatchSender)
		if !ok {
			return nil, ErrBatchUnsupported
		}
		d.batch = bs
		if limit := bs.MaxBatchSize(); d.batchSize <= 0 || d.batchSize > limit {
			d.batchSize = limit
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, d.mode)
	}
	return d, nil
}

// Mode returns the configured dispatch mode.
func (d *Dispatcher) Mode() Mode { return d.mode }

// Dispatch sends emails and reports which recipients were covered.
func (d *Dispatcher) Dispatch(ctx context.Context, emails []*mailer.Email) (*Outcome, error) {
	if d.mode == ModeIndividual {
		return d.dispatchIndividual(ctx, emails), nil
	}
	return d.dispatchBatches(ctx, emails)
}

func (d *Dispatcher) dispatchBatches(ctx context.Context, emails []*mailer.Email) (*Outcome, error) {
	batches, err := chunk.Chunk(emails, d.batchSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	for i, batch := range batches {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, d.batchFailed(ctx, i, len(batches), err)
		}
		if err := d.batch.SendBatch(ctx, batch); err != nil {
			return nil, d.batchFailed(ctx, i, len(batches), err)
		}
	}

	return &Outcome{Mode: ModeBatch, Sent: recipients(emails)}, nil
}

func (d *Dispatcher) batchFailed(ctx context.Context, index, total int, err error) error {
	d.logger.ErrorContext(ctx, "failed to send email batch",
		slog.Int("batch", index+1),
		slog.Int("batches", total),
		slog.Any("error", err),
	)
	return fmt.Errorf("%w: batch %d of %d: %w", ErrDispatchFailed, index+1, total, err)
}

func (d *Dispatcher) dispatchIndividual(ctx context.Context, emails []*mailer.Email) *Outcome {
	out := &Outcome{
		Mode:        ModeIndividual,
		SentSuccess: make([]string, 0, len(emails)),
		SentError:   []string{},
	}

	for _, email := range emails {
		to := email.To[0]

		err := d.limiter.Wait(ctx)
		if err == nil {
			err = d.sender.Send(ctx, email)
		}
		if err != nil {
			d.logger.WarnContext(ctx, "failed to send email",
				slog.String("to", to),
				slog.Any("error", err),
			)
			out.SentError = append(out.SentError, to)
			continue
		}
		out.SentSuccess = append(out.SentSuccess, to)
	}
	return out
}

func recipients(emails []*mailer.Email) []string {
	out := make([]string, len(emails))
	for i, e := range emails {
		out[i] = e.To[0]
	}
	return out
}
