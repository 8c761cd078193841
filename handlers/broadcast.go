package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/nn1-dev/mailcast/internal"
	"github.com/nn1-dev/mailcast/pkg/audience"
	"github.com/nn1-dev/mailcast/pkg/broadcast"
	"github.com/nn1-dev/mailcast/pkg/templates"
)

// Response messages for pipeline failures.
const (
	MsgInvalidBody           = "Invalid request body"
	MsgTemplateNotConfigured = "Template is not configured"
	MsgDispatchFailed        = "Failed to schedule an email."
	MsgRenderFailed          = "Failed to render an email."
)

// Broadcaster runs a broadcast request.
type Broadcaster interface {
	Broadcast(ctx context.Context, req broadcast.Request) (*broadcast.Outcome, error)
}

// TemplateCatalog lists the registered template keys per audience.
type TemplateCatalog interface {
	Keys(kind audience.Kind) []string
}

// Broadcast serves the broadcast endpoint.
// Implements internal.Handler.
type Broadcast struct {
	svc     Broadcaster
	catalog TemplateCatalog
}

// NewBroadcast creates the broadcast handler.
func NewBroadcast(svc Broadcaster, catalog TemplateCatalog) *Broadcast {
	return &Broadcast{svc: svc, catalog: catalog}
}

// Routes declares the broadcast routes.
func (h *Broadcast) Routes(r internal.Router) {
	r.POST("/", h.send)
	r.GET("/templates", h.listTemplates)
}

func (h *Broadcast) send(c internal.Context) error {
	var req broadcast.Request
	if err := c.BindJSON(&req); err != nil {
		return internal.ErrBadRequest(MsgInvalidBody, internal.WithError(err))
	}

	outcome, err := h.svc.Broadcast(c, req)
	if err != nil {
		return mapError(err)
	}

	return c.Success(outcome.Data())
}

func (h *Broadcast) listTemplates(c internal.Context) error {
	out := make(map[audience.Kind][]string, len(audience.Kinds))
	for _, kind := range audience.Kinds {
		keys := h.catalog.Keys(kind)
		if keys == nil {
			keys = []string{}
		}
		out[kind] = keys
	}
	return c.Success(out)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, broadcast.ErrInvalidAudience):
		return internal.ErrBadRequest(broadcast.ErrInvalidAudience.Error(), internal.WithError(err))
	case errors.Is(err, broadcast.ErrMissingEventID):
		return internal.ErrBadRequest(broadcast.ErrMissingEventID.Error(), internal.WithError(err))
	case errors.Is(err, templates.ErrTemplateNotConfigured):
		return internal.ErrBadRequest(MsgTemplateNotConfigured, internal.WithError(err))
	case errors.Is(err, broadcast.ErrDispatchFailed):
		return internal.ErrInternal(MsgDispatchFailed, internal.WithError(err))
	case errors.Is(err, broadcast.ErrRenderFailed):
		return internal.ErrInternal(MsgRenderFailed, internal.WithError(err))
	default:
		return err
	}
}
