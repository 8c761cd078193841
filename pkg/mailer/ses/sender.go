// Package ses implements mailer.Sender on top of Amazon SES v2.
// SES has no batch endpoint for independent messages, so only per-recipient
// dispatch is available with this provider.
package ses

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/nn1-dev/mailcast/pkg/mailer"
)

const charset = "UTF-8"

// API is the subset of the SES v2 client used by Sender.
type API interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements mailer.Sender using Amazon SES.
type Sender struct {
	client API
	config Config
}

// New loads AWS configuration and creates an SES sender.
func New(ctx context.Context, cfg Config) (*Sender, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("ses: load aws config: %w", err)
	}

	return NewWithClient(sesv2.NewFromConfig(awsCfg), cfg), nil
}

// NewWithClient creates a sender around an existing SES client.
func NewWithClient(client API, cfg Config) *Sender {
	return &Sender{client: client, config: cfg}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = s.config.From
	}
	if from == "" {
		return mailer.ErrNoSender
	}

	body := &types.Body{
		Html: &types.Content{Data: aws.String(email.HTML), Charset: aws.String(charset)},
	}
	if email.Text != "" {
		body.Text = &types.Content{Data: aws.String(email.Text), Charset: aws.String(charset)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charset)},
				Body:    body,
				Headers: convertHeaders(email.Headers),
			},
		},
		EmailTags: convertTags(email.Tags),
	}
	if email.ReplyTo != "" {
		input.ReplyToAddresses = []string{email.ReplyTo}
	}
	if s.config.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(s.config.ConfigurationSet)
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses: failed to send email: %w", err)
	}
	return nil
}

func convertHeaders(headers map[string]string) []types.MessageHeader {
	if len(headers) == 0 {
		return nil
	}
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]types.MessageHeader, len(names))
	for i, name := range names {
		result[i] = types.MessageHeader{Name: aws.String(name), Value: aws.String(headers[name])}
	}
	return result
}

func convertTags(tags mailer.Tags) []types.MessageTag {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]types.MessageTag, len(names))
	for i, name := range names {
		value := "true"
		if v, ok := tags[name].(string); ok {
			value = v
		}
		result[i] = types.MessageTag{Name: aws.String(name), Value: aws.String(value)}
	}
	return result
}
