package audience

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// maxResponseBytes caps upstream response bodies.
const maxResponseBytes = 32 << 20

// Config holds the upstream service endpoints and credentials.
type Config struct {
	NewsletterURL    string        `env:"NEWSLETTER_URL" envDefault:"https://newsletter.nn1.dev"`
	NewsletterAPIKey string        `env:"API_KEY_NEWSLETTER"`
	TicketsURL       string        `env:"TICKETS_URL" envDefault:"https://tickets.nn1.dev"`
	TicketsAPIKey    string        `env:"API_KEY_TICKETS"`
	Timeout          time.Duration `env:"AUDIENCE_TIMEOUT" envDefault:"10s"`
}

// Client fetches subscriber and member lists from the upstream services.
// Each service gets its own HTTP client carrying that service's bearer token.
type Client struct {
	newsletter    *http.Client
	tickets       *http.Client
	newsletterURL string
	ticketsURL    string
}

// NewClient creates a Client. ctx may carry a base *http.Client under
// oauth2.HTTPClient, which is then used as the underlying transport.
func NewClient(ctx context.Context, cfg Config) *Client {
	return &Client{
		newsletter:    bearerClient(ctx, cfg.NewsletterAPIKey, cfg.Timeout),
		tickets:       bearerClient(ctx, cfg.TicketsAPIKey, cfg.Timeout),
		newsletterURL: strings.TrimRight(cfg.NewsletterURL, "/"),
		ticketsURL:    strings.TrimRight(cfg.TicketsURL, "/"),
	}
}

func bearerClient(ctx context.Context, token string, timeout time.Duration) *http.Client {
	c := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	c.Timeout = timeout
	return c
}

// FetchNewsletter returns every newsletter subscriber in upstream order.
func (c *Client) FetchNewsletter(ctx context.Context) ([]Recipient, error) {
	entries, err := fetchList[subscriberValue](ctx, c.newsletter, c.newsletterURL+"/")
	if err != nil {
		return nil, err
	}

	recipients := make([]Recipient, 0, len(entries))
	for _, e := range entries {
		recipients = append(recipients, Recipient{
			ID:       e.Key.Segment(1),
			Email:    e.Value.Email,
			JoinedAt: parseTimestamp(e.Value.Timestamp),
		})
	}
	return recipients, nil
}

// FetchEventMembers returns every registered member of an event, confirmed or not.
func (c *Client) FetchEventMembers(ctx context.Context, eventID int) ([]Recipient, error) {
	entries, err := fetchList[memberValue](ctx, c.tickets, c.ticketsURL+"/"+strconv.Itoa(eventID))
	if err != nil {
		return nil, err
	}

	recipients := make([]Recipient, 0, len(entries))
	for _, e := range entries {
		id := e.Value.EventID
		if id == 0 {
			id, _ = strconv.Atoi(e.Key.Segment(1))
		}
		recipients = append(recipients, Recipient{
			ID:        e.Key.Segment(2),
			Email:     e.Value.Email,
			Name:      e.Value.Name,
			EventID:   id,
			Confirmed: e.Value.Confirmed,
			JoinedAt:  parseTimestamp(e.Value.Timestamp),
		})
	}
	return recipients, nil
}

func fetchList[V any](ctx context.Context, client *http.Client, url string) ([]entry[V], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: GET %s: status %d", ErrUpstream, url, resp.StatusCode)
	}

	var body listResponse[V]
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrUpstream, url, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("%w: %s: response has no data", ErrUpstream, url)
	}
	return *body.Data, nil
}
