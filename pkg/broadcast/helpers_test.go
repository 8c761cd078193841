package broadcast_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/mailer"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

// recordingSender records every provider call in order.
type recordingSender struct {
	mu       sync.Mutex
	batches  [][]string
	singles  []string
	maxBatch int
	failOn   map[int]error // batch index -> error
}

func (s *recordingSender) Send(_ context.Context, email *mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.singles = append(s.singles, email.To[0])
	return nil
}

func (s *recordingSender) SendBatch(_ context.Context, emails []*mailer.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failOn[len(s.batches)]; err != nil {
		s.batches = append(s.batches, nil)
		return err
	}
	to := make([]string, len(emails))
	for i, e := range emails {
		to[i] = e.To[0]
	}
	s.batches = append(s.batches, to)
	return nil
}

func (s *recordingSender) MaxBatchSize() int { return s.maxBatch }

// mockSender is a plain mailer.Sender without batch support.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, email *mailer.Email) error {
	return m.Called(ctx, email.To[0]).Error(0)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, a audience.Audience) []audience.Recipient {
	recipients, _ := m.Called(ctx, a).Get(0).([]audience.Recipient)
	return recipients
}

func makeRecipients(n int) []audience.Recipient {
	out := make([]audience.Recipient, n)
	for i := range out {
		out[i] = audience.Recipient{ID: fmt.Sprintf("id-%d", i), Email: fmt.Sprintf("r%d@example.com", i), Confirmed: true}
	}
	return out
}

func makeEmails(n int) []*mailer.Email {
	out := make([]*mailer.Email, n)
	for i := range out {
		out[i] = &mailer.Email{To: []string{fmt.Sprintf("r%d@example.com", i)}, Subject: "s", HTML: "h"}
	}
	return out
}

// echoRender renders the link field of the template data.
func echoRender(_ context.Context, data any) (templates.Content, error) {
	switch d := data.(type) {
	case audience.NewsletterData:
		return templates.Content{HTML: "<a>" + d.UnsubscribeURL + "</a>", Text: d.UnsubscribeURL}, nil
	case audience.EventData:
		return templates.Content{HTML: "<a>" + d.TicketURL + "</a>", Text: d.TicketURL}, nil
	default:
		return templates.Content{}, fmt.Errorf("unexpected data %T", data)
	}
}

func testRegistry() *templates.Registry {
	reg, err := templates.New(
		templates.Descriptor{Audience: audience.KindNewsletter, Key: "2025-09-30", Subject: "Newsletter", Render: echoRender},
		templates.Descriptor{Audience: audience.KindEvent, Key: "8-2025-09-24", Subject: "Event", Render: echoRender},
	)
	if err != nil {
		panic(err)
	}
	return reg
}
