// Package ios binds views driven by UIKit gesture recognizer callbacks.
//
// The embedding toolkit installs one gesture recognizer per attached view
// and forwards its touchesBegan/Moved/Ended/Cancelled callbacks. Touch
// locations are reported in window coordinates (locationInView: nil), the
// same space View.WindowFrame uses, so no unit conversion is needed.
package ios

import (
	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

// View is the UIView a binding is attached to.
type View interface {
	// WindowFrame returns the view's frame converted to window
	// coordinates. ok is false once the view has left its window.
	WindowFrame() (r geom.Rect, ok bool)
}

// Touch is one UITouch of a callback's touch set.
type Touch struct {
	Handle   uintptr    // Object identity, stable for the life of the touch
	Location geom.Point // Window coordinates
}

func (t Touch) id() touchhop.PointerID {
	return touchhop.PointerID(t.Handle)
}

// BindOptions configures one attached view.
type BindOptions struct {
	Name    string
	Capture bool
}

// Router attaches UIKit views to a shared Service. Every recognizer
// created by a Router shares the Service's ownership table, so a touch
// that began on one view can be handed to another.
type Router struct {
	svc *touchhop.Service
}

// NewRouter creates a Router over svc.
func NewRouter(svc *touchhop.Service) *Router {
	return &Router{svc: svc}
}

// Attach registers view and returns the binding its recognizer forwards
// touches to.
func (r *Router) Attach(view View, handler touchhop.Handler, options BindOptions) (*Binding, error) {
	if view == nil {
		return nil, touchhop.ErrMissingContext
	}

	c, err := r.svc.Attach(touchhop.SurfaceFunc(view.WindowFrame), handler, touchhop.ViewOptions{
		Name:    options.Name,
		Capture: options.Capture,
	})
	if err != nil {
		return nil, err
	}
	return &Binding{svc: r.svc, ctrl: c}, nil
}

// Binding is the recognizer state of one view.
type Binding struct {
	svc  *touchhop.Service
	ctrl *touchhop.Controller
}

// Controller returns the routing controller of the view.
func (b *Binding) Controller() *touchhop.Controller {
	return b.ctrl
}

// Capture reports the view's capture flag.
func (b *Binding) Capture() bool {
	return b.ctrl.Capture()
}

// SetCapture changes the view's capture flag.
func (b *Binding) SetCapture(capture bool) {
	b.ctrl.SetCapture(capture)
}

// Detach unregisters the view. Call it when the recognizer is removed.
func (b *Binding) Detach() {
	b.svc.Detach(b.ctrl)
}

// TouchesBegan presses every touch on this view.
func (b *Binding) TouchesBegan(touches []Touch) error {
	return b.each(touches, func(t Touch) error {
		return b.svc.Press(b.ctrl, t.id(), t.Location)
	})
}

// TouchesMoved moves every touch, handing it to whichever view is now
// under it unless the view it began on captures it.
func (b *Binding) TouchesMoved(touches []Touch) error {
	return b.each(touches, func(t Touch) error {
		return b.svc.Move(b.ctrl, t.id(), t.Location)
	})
}

// TouchesEnded releases every touch on the view now under it, or on the
// view it began on while that view captures it.
func (b *Binding) TouchesEnded(touches []Touch) error {
	return b.each(touches, func(t Touch) error {
		return b.svc.Release(b.ctrl, t.id(), t.Location)
	})
}

// TouchesCancelled cancels every touch, routed like TouchesEnded.
func (b *Binding) TouchesCancelled(touches []Touch) error {
	return b.each(touches, func(t Touch) error {
		return b.svc.Cancel(b.ctrl, t.id(), t.Location)
	})
}

// each applies fn to every touch, including those after a failure, and
// returns the first error.
func (b *Binding) each(touches []Touch, fn func(Touch) error) error {
	var first error
	for _, t := range touches {
		if err := fn(t); err != nil && first == nil {
			first = err
		}
	}
	return first
}
