// Package resend implements mailer.BatchSender on top of the Resend API.
package resend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/nn1-dev/mailcast/pkg/mailer"
)

// Sender implements mailer.BatchSender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		client.BaseURL = u
	}
	return &Sender{client: client, config: cfg}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if _, err := s.client.Emails.SendWithContext(ctx, s.request(email)); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

// SendBatch implements mailer.BatchSender.
func (s *Sender) SendBatch(ctx context.Context, emails []*mailer.Email) error {
	if len(emails) == 0 {
		return nil
	}
	if len(emails) > MaxBatchSize {
		return fmt.Errorf("resend: %w: %d > %d", mailer.ErrBatchTooLarge, len(emails), MaxBatchSize)
	}

	reqs := make([]*resend.SendEmailRequest, len(emails))
	for i, email := range emails {
		reqs[i] = s.request(email)
	}

	if _, err := s.client.Batch.SendWithContext(ctx, reqs); err != nil {
		return fmt.Errorf("resend: failed to send batch of %d: %w", len(emails), err)
	}
	return nil
}

// MaxBatchSize implements mailer.BatchSender.
func (s *Sender) MaxBatchSize() int {
	return MaxBatchSize
}

func (s *Sender) request(email *mailer.Email) *resend.SendEmailRequest {
	from := email.From
	if from == "" {
		from = s.config.From
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Headers: email.Headers,
	}
	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}
	return req
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{Name: name, Value: tagValue(value)})
	}
	return result
}

// tagValue converts a tag value to the string Resend expects.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
