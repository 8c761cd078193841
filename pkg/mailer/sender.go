package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
type Sender interface {
	// Send delivers a single email message.
	// Returns an error if the provider rejected the message or was unreachable.
	Send(ctx context.Context, email *Email) error
}

// BatchSender is implemented by providers that accept several independent
// messages in one API call.
type BatchSender interface {
	Sender

	// SendBatch delivers all emails in one provider call. The call either
	// succeeds or fails as a whole; no per-message result is reported.
	SendBatch(ctx context.Context, emails []*Email) error

	// MaxBatchSize is the largest number of emails SendBatch accepts.
	MaxBatchSize() int
}
