// Package broadcast runs the broadcast pipeline: it validates a request,
// resolves the audience, renders one email per recipient and dispatches the
// emails through a mail provider.
//
// Two dispatch modes are supported. In batch mode (the default) emails are
// grouped into provider-sized batches and sent one batch after another; any
// failed batch fails the whole broadcast. In individual mode every email is
// sent on its own and failures are collected per recipient.
//
//	svc := broadcast.NewService(registry, resolver, builder, dispatcher, log)
//	outcome, err := svc.Broadcast(ctx, broadcast.Request{Audience: "event", Template: "8-2025-09-24", EventID: &id})
package broadcast
