// Package mailer holds the email primitives shared by the broadcast pipeline:
// the Email payload, the provider interfaces, and a markdown template renderer.
//
// # Providers
//
// A provider implements Sender to deliver one message per call. Providers that
// can accept many independent messages in one API call also implement
// BatchSender:
//
//	type BatchSender interface {
//		Sender
//		SendBatch(ctx context.Context, emails []*Email) error
//		MaxBatchSize() int
//	}
//
// The resend subpackage implements both; the ses subpackage implements Sender
// only.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: NN1 Dev Club #9
//	---
//
//	# See you on Thursday
//
//	[!button|Get your ticket]({{.TicketURL}})
//
// The body is executed as a text/template with the caller's data, converted to
// HTML with goldmark and wrapped into an html/template layout that receives
// the rendered markdown as {{.Content}}. The executed markdown doubles as the
// plain text alternative.
//
// The [!button|Label](URL) syntax renders an email-safe call-to-action link.
package mailer
