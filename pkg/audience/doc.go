// Package audience resolves who receives a broadcast.
//
// An Audience is one of two variants: Newsletter (every newsletter
// subscriber, optionally minus the members of one event) or Event (the
// confirmed ticket holders of one event). The Resolver turns an Audience into
// an ordered list of Recipients by calling the newsletter and ticketing
// services through a Fetcher.
//
// Resolution fails open: when an upstream fetch fails, the failure is logged
// at ERROR level (which reaches Sentry) and that list is treated as empty.
// A broadcast therefore proceeds with zero recipients instead of failing the
// request when the newsletter or ticketing service is down.
package audience
