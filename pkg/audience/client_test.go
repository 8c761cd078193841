package audience_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nn1-dev/mailcast/pkg/audience"
)

const newsletterBody = `{"data":[
	{"key":["nn1-dev-newsletter","01HZX1"],"value":{"timestamp":"2025-05-01T10:00:00.000Z","email":"ada@example.com"},"versionstamp":"0001"},
	{"key":["nn1-dev-newsletter","01HZX2"],"value":{"timestamp":"not-a-date","email":"grace@example.com"},"versionstamp":"0002"}
]}`

const membersBody = `{"data":[
	{"key":["nn1-dev-tickets",8,"t-1"],"value":{"timestamp":"2025-09-01T10:00:00Z","eventId":8,"name":"Ada","email":"ada@example.com","confirmed":true},"versionstamp":"0001"},
	{"key":["nn1-dev-tickets",8,"t-2"],"value":{"timestamp":"2025-09-02T10:00:00Z","name":"Linus","email":"linus@example.com","confirmed":false},"versionstamp":"0002"}
]}`

type upstream struct {
	newsletter *httptest.Server
	tickets    *httptest.Server
	auth       map[string]string
	paths      map[string]string
}

func newUpstream(t *testing.T, newsletterStatus int, newsletter string, ticketsStatus int, tickets string) *upstream {
	t.Helper()

	u := &upstream{auth: map[string]string{}, paths: map[string]string{}}
	serve := func(name string, status int, body string) *httptest.Server {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u.auth[name] = r.Header.Get("Authorization")
			u.paths[name] = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		t.Cleanup(srv.Close)
		return srv
	}
	u.newsletter = serve("newsletter", newsletterStatus, newsletter)
	u.tickets = serve("tickets", ticketsStatus, tickets)
	return u
}

func (u *upstream) client() *audience.Client {
	return audience.NewClient(context.Background(), audience.Config{
		NewsletterURL:    u.newsletter.URL,
		NewsletterAPIKey: "newsletter-secret",
		TicketsURL:       u.tickets.URL + "/",
		TicketsAPIKey:    "tickets-secret",
		Timeout:          5 * time.Second,
	})
}

func TestClient_FetchNewsletter(t *testing.T) {
	t.Parallel()

	u := newUpstream(t, http.StatusOK, newsletterBody, http.StatusOK, membersBody)

	recipients, err := u.client().FetchNewsletter(context.Background())
	require.NoError(t, err)

	require.Equal(t, "Bearer newsletter-secret", u.auth["newsletter"])
	require.Equal(t, "/", u.paths["newsletter"])

	require.Len(t, recipients, 2)
	require.Equal(t, "01HZX1", recipients[0].ID)
	require.Equal(t, "ada@example.com", recipients[0].Email)
	require.Equal(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), recipients[0].JoinedAt)
	require.Equal(t, "grace@example.com", recipients[1].Email)
	require.True(t, recipients[1].JoinedAt.IsZero())
}

func TestClient_FetchEventMembers(t *testing.T) {
	t.Parallel()

	u := newUpstream(t, http.StatusOK, newsletterBody, http.StatusOK, membersBody)

	recipients, err := u.client().FetchEventMembers(context.Background(), 8)
	require.NoError(t, err)

	require.Equal(t, "Bearer tickets-secret", u.auth["tickets"])
	require.Equal(t, "/8", u.paths["tickets"])

	require.Len(t, recipients, 2)
	require.Equal(t, audience.Recipient{
		ID:        "t-1",
		Email:     "ada@example.com",
		Name:      "Ada",
		EventID:   8,
		Confirmed: true,
		JoinedAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}, recipients[0])
	require.False(t, recipients[1].Confirmed)
	require.Equal(t, 8, recipients[1].EventID, "event id falls back to the key segment")
}

func TestClient_UpstreamFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"nope"}`},
		{name: "malformed json", status: http.StatusOK, body: `{"data":[`},
		{name: "missing data", status: http.StatusOK, body: `{"items":[]}`},
		{name: "null data", status: http.StatusOK, body: `{"data":null}`},
		{name: "wrong data type", status: http.StatusOK, body: `{"data":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := newUpstream(t, tt.status, tt.body, tt.status, tt.body)
			c := u.client()

			_, err := c.FetchNewsletter(context.Background())
			require.ErrorIs(t, err, audience.ErrUpstream)

			_, err = c.FetchEventMembers(context.Background(), 1)
			require.ErrorIs(t, err, audience.ErrUpstream)
		})
	}
}

func TestClient_EmptyList(t *testing.T) {
	t.Parallel()

	u := newUpstream(t, http.StatusOK, `{"data":[]}`, http.StatusOK, `{"data":[]}`)

	recipients, err := u.client().FetchNewsletter(context.Background())
	require.NoError(t, err)
	require.Empty(t, recipients)
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	u := newUpstream(t, http.StatusOK, newsletterBody, http.StatusOK, membersBody)
	c := u.client()
	u.newsletter.Close()

	_, err := c.FetchNewsletter(context.Background())
	require.ErrorIs(t, err, audience.ErrUpstream)
}

func TestKey_Segment(t *testing.T) {
	t.Parallel()

	key := audience.Key{[]byte(`"nn1-dev-tickets"`), []byte(`8`), []byte(`"t-1"`), []byte(`null`)}

	require.Equal(t, "nn1-dev-tickets", key.Segment(0))
	require.Equal(t, "8", key.Segment(1))
	require.Equal(t, "t-1", key.Segment(2))
	require.Empty(t, key.Segment(3))
	require.Empty(t, key.Segment(4))
	require.Empty(t, key.Segment(-1))
}
