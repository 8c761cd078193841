package templates

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/nn1-dev/mailcast/pkg/audience"
)

// Content is a rendered message body.
type Content struct {
	HTML string
	Text string
}

// RenderFunc renders a template with per-recipient data.
type RenderFunc func(ctx context.Context, data any) (Content, error)

// NoData adapts a render function that takes no per-recipient data.
func NoData(fn func(ctx context.Context) (Content, error)) RenderFunc {
	return func(ctx context.Context, _ any) (Content, error) {
		return fn(ctx)
	}
}

// Descriptor describes one registered template.
type Descriptor struct {
	Render   RenderFunc
	Audience audience.Kind
	Key      string
	Subject  string
}

func (d Descriptor) validate() error {
	switch {
	case d.Key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidDescriptor)
	case d.Subject == "":
		return fmt.Errorf("%w: %s/%s: empty subject", ErrInvalidDescriptor, d.Audience, d.Key)
	case d.Render == nil:
		return fmt.Errorf("%w: %s/%s: nil render func", ErrInvalidDescriptor, d.Audience, d.Key)
	}
	if _, err := audience.ParseKind(string(d.Audience)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDescriptor, d.Key, err)
	}
	return nil
}

// Registry maps (audience kind, key) to a template. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	byKind map[audience.Kind]map[string]Descriptor
}

// New builds a registry from descriptors.
func New(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byKind: make(map[audience.Kind]map[string]Descriptor, len(audience.Kinds))}
	for _, k := range audience.Kinds {
		r.byKind[k] = make(map[string]Descriptor)
	}

	for _, d := range descriptors {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, ok := r.byKind[d.Audience][d.Key]; ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrDuplicateTemplate, d.Audience, d.Key)
		}
		r.byKind[d.Audience][d.Key] = d
	}
	return r, nil
}

// Lookup returns the template registered under key for kind.
func (r *Registry) Lookup(kind audience.Kind, key string) (Descriptor, error) {
	d, ok := r.byKind[kind][key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s/%s", ErrTemplateNotConfigured, kind, key)
	}
	return d, nil
}

// Keys returns the sorted template keys registered for kind.
func (r *Registry) Keys(kind audience.Kind) []string {
	return slices.Sorted(maps.Keys(r.byKind[kind]))
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	n := 0
	for _, m := range r.byKind {
		n += len(m)
	}
	return n
}
