package ses

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/pkg/mailer"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) SendEmail(ctx context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sesv2.SendEmailOutput)
	return out, args.Error(1)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	api := &mockAPI{}
	s := NewWithClient(api, Config{From: "Club <club@nn1.dev>", ConfigurationSet: "broadcasts"})

	api.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *sesv2.SendEmailInput) bool {
		msg := in.Content.Simple
		return aws.ToString(in.FromEmailAddress) == "Club <club@nn1.dev>" &&
			in.Destination.ToAddresses[0] == "a@example.com" &&
			aws.ToString(msg.Subject.Data) == "Hi" &&
			aws.ToString(msg.Body.Html.Data) == "<p>Hi</p>" &&
			aws.ToString(msg.Body.Text.Data) == "Hi" &&
			len(msg.Headers) == 1 &&
			aws.ToString(msg.Headers[0].Name) == "List-Unsubscribe" &&
			len(in.EmailTags) == 2 &&
			aws.ToString(in.EmailTags[0].Name) == "audience" &&
			aws.ToString(in.EmailTags[0].Value) == "newsletter" &&
			aws.ToString(in.EmailTags[1].Value) == "true" &&
			aws.ToString(in.ConfigurationSetName) == "broadcasts"
	})).Return(&sesv2.SendEmailOutput{MessageId: aws.String("m-1")}, nil)

	err := s.Send(context.Background(), &mailer.Email{
		To:      []string{"a@example.com"},
		Subject: "Hi",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
		Headers: map[string]string{"List-Unsubscribe": "<https://nn1.dev/newsletter/unsubscribe/1>"},
		Tags:    mailer.Tags{"audience": "newsletter", "broadcast": struct{}{}},
	})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestSender_Send_Error(t *testing.T) {
	t.Parallel()

	api := &mockAPI{}
	s := NewWithClient(api, Config{From: "club@nn1.dev"})

	api.On("SendEmail", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	err := s.Send(context.Background(), &mailer.Email{To: []string{"a@example.com"}, Subject: "Hi", HTML: "<p>Hi</p>"})
	require.ErrorContains(t, err, "throttled")
}

func TestSender_Send_NoSender(t *testing.T) {
	t.Parallel()

	api := &mockAPI{}
	s := NewWithClient(api, Config{})

	err := s.Send(context.Background(), &mailer.Email{To: []string{"a@example.com"}, Subject: "Hi", HTML: "<p>Hi</p>"})
	require.ErrorIs(t, err, mailer.ErrNoSender)
	api.AssertNotCalled(t, "SendEmail")
}
