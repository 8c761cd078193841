// Package emails embeds the broadcast email templates.
//
// Templates live under <audience>/<key>.md with a YAML frontmatter carrying the
// Subject; layouts live under layouts/. Newsletter templates receive
// .UnsubscribeURL, event templates receive .TicketURL.
package emails

import "embed"

// Layout is the layout every broadcast is wrapped in.
const Layout = "base.html"

//go:embed layouts newsletter event
var FS embed.FS
