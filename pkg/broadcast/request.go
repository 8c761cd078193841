package broadcast

import (
	"fmt"

	"github.com/nn1-dev/mailcast/pkg/audience"
)

// Request is the body of a broadcast call.
type Request struct {
	EventID               *int   `json:"eventId,omitempty"`
	ExcludeMembersEventID *int   `json:"excludeMembersEventId,omitempty"`
	Audience              string `json:"audience"`
	Template              string `json:"template"`
}

// Target converts the raw request into an audience. Non-positive exclusion ids
// are ignored.
func (r Request) Target() (audience.Audience, error) {
	kind, err := audience.ParseKind(r.Audience)
	if err != nil {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidAudience, r.Audience)
	}

	switch kind {
	case audience.KindEvent:
		if r.EventID == nil || *r.EventID <= 0 {
			return nil, ErrMissingEventID
		}
		return audience.Event{ID: *r.EventID}, nil
	default:
		n := audience.Newsletter{}
		if r.ExcludeMembersEventID != nil && *r.ExcludeMembersEventID > 0 {
			id := *r.ExcludeMembersEventID
			n.ExcludeMembersEventID = &id
		}
		return n, nil
	}
}
