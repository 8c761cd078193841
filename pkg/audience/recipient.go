package audience

import (
	"bytes"
	"encoding/json"
	"time"
)

// Recipient is one resolved entry of an audience.
type Recipient struct {
	JoinedAt  time.Time
	ID        string // opaque subscriber or member id used in unsubscribe and ticket URLs
	Email     string
	Name      string
	EventID   int
	Confirmed bool
}

// Emails returns the addresses of recipients in order.
func Emails(recipients []Recipient) []string {
	emails := make([]string, len(recipients))
	for i, r := range recipients {
		emails[i] = r.Email
	}
	return emails
}

// Key is a key-value store key as returned by the upstream services.
// Segments may be strings or numbers, so they are kept raw.
type Key []json.RawMessage

// Segment returns segment i as text. Strings are unquoted, numbers are
// returned as written. Missing or null segments yield "".
func (k Key) Segment(i int) string {
	if i < 0 || i >= len(k) {
		return ""
	}
	raw := bytes.TrimSpace(k[i])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return string(raw)
}

// entry is one item of an upstream list response.
type entry[V any] struct {
	Value        V      `json:"value"`
	Versionstamp string `json:"versionstamp"`
	Key          Key    `json:"key"`
}

// listResponse is the upstream list envelope: {"data": [...]}.
type listResponse[V any] struct {
	Data *[]entry[V] `json:"data"`
}

type subscriberValue struct {
	Timestamp string `json:"timestamp"`
	Email     string `json:"email"`
}

type memberValue struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventID   int    `json:"eventId"`
	Confirmed bool   `json:"confirmed"`
}

// parseTimestamp accepts RFC 3339 timestamps and yields the zero time otherwise.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
