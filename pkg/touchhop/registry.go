package touchhop

import (
	"slices"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

// Registry holds the attached views in registration order.
//
// Hit testing has no notion of z-order: when registered views overlap, the
// one registered last wins. That is an artifact of registration sequence,
// not of paint order.
type Registry struct {
	views []*Controller
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends c. It fails if a controller with the same id is present.
func (r *Registry) Register(c *Controller) error {
	if _, ok := r.Lookup(c.id); ok {
		return ErrAlreadyAttached
	}
	r.views = append(r.views, c)
	return nil
}

// Unregister removes the view with the given id. It is a no-op when the id
// is absent, since detach can race with disposal.
func (r *Registry) Unregister(id ViewID) {
	r.views = slices.DeleteFunc(r.views, func(c *Controller) bool {
		return c.id == id
	})
}

// Lookup returns the controller registered under id.
func (r *Registry) Lookup(id ViewID) (*Controller, bool) {
	for _, c := range r.views {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// Has reports whether c itself is registered.
func (r *Registry) Has(c *Controller) bool {
	return c != nil && slices.Contains(r.views, c)
}

// HitTest returns the last registered controller whose current screen
// rectangle contains p, or nil. Views whose bounds cannot be computed are
// skipped.
func (r *Registry) HitTest(p geom.Point) *Controller {
	var hit *Controller
	for _, c := range r.views {
		bounds, ok := c.bounds()
		if !ok {
			continue
		}
		if bounds.Contains(p) {
			hit = c
		}
	}
	return hit
}

// Len returns the number of registered views.
func (r *Registry) Len() int {
	return len(r.views)
}

// Views returns a snapshot of the registered controllers in registration
// order.
func (r *Registry) Views() []*Controller {
	return slices.Clone(r.views)
}
