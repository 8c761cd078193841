package mailer

import "fmt"

// Tags represents email tags that can be either presence-only
// (struct{}{}) or key-value pairs. Providers convert them to their own format.
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Address formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully-prepared message ready for a provider.
// Broadcast payloads always have exactly one recipient in To.
type Email struct {
	Headers map[string]string // Custom headers (e.g. List-Unsubscribe)
	Tags    Tags              // Provider-specific tags
	From    string
	Subject string
	HTML    string
	Text    string // Plain text alternative
	ReplyTo string
	To      []string
}

// Validate reports whether the email carries everything a provider needs.
// An empty From is allowed when the provider has a default sender.
func (e *Email) Validate() error {
	if len(e.To) == 0 || e.To[0] == "" {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
