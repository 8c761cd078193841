// Package templates holds the registry of broadcast email templates.
//
// A template is registered for one audience kind under a key. The registry is
// built once at startup, either from explicit descriptors:
//
//	reg, err := templates.New(templates.Descriptor{
//		Audience: audience.KindNewsletter,
//		Key:      "2025-09-30",
//		Subject:  "NN1 Dev Club #8",
//		Render:   templates.NoData(renderFn),
//	})
//
// or from markdown files laid out as newsletter/<key>.md and event/<key>.md:
//
//	reg, err := templates.Load(mailer.NewRenderer(emails.FS), emails.FS, "base.html")
//
// Lookup returns ErrTemplateNotConfigured for keys unknown to an audience.
package templates
