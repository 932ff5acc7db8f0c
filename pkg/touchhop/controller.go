package touchhop

import (
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"go.uber.org/atomic"
)

// Surface is the capability an attached view hands to the Service so the
// view can be hit tested.
type Surface interface {
	// ScreenBounds returns the view's current rectangle in screen space,
	// in the same units as the points passed to the Service. ok is false
	// once the underlying native view is gone.
	ScreenBounds() (r geom.Rect, ok bool)
}

// SurfaceFunc adapts a function to the Surface interface.
type SurfaceFunc func() (geom.Rect, bool)

func (f SurfaceFunc) ScreenBounds() (geom.Rect, bool) {
	return f()
}

// StaticSurface is a Surface with fixed bounds.
type StaticSurface geom.Rect

func (s StaticSurface) ScreenBounds() (geom.Rect, bool) {
	return geom.Rect(s), true
}

// ViewOptions configures a view at attach time.
type ViewOptions struct {
	Name            string      // Label used in log records
	Capture         bool        // Initial capture flag
	PixelsToLogical geom.Scaler // Conversion applied to emitted locations (default identity)
}

// Controller is the routing state of one attached view.
type Controller struct {
	id      ViewID
	name    string
	surface Surface
	handler Handler
	scale   geom.Scaler
	capture atomic.Bool
}

// ID returns the identifier issued when the view was attached.
func (c *Controller) ID() ViewID {
	return c.id
}

// Name returns the label given in ViewOptions.
func (c *Controller) Name() string {
	return c.name
}

// Capture reports whether the view currently captures its pointers.
func (c *Controller) Capture() bool {
	return c.capture.Load()
}

// SetCapture changes the capture flag. While set, every event for a pointer
// that began on this view is routed to it without hit testing. It takes
// effect on the next event of an in-flight pointer.
func (c *Controller) SetCapture(capture bool) {
	c.capture.Store(capture)
}

// bounds calls the surface, treating a panic as a disposed view.
func (c *Controller) bounds() (r geom.Rect, ok bool) {
	defer func() {
		if recover() != nil {
			r, ok = geom.Rect{}, false
		}
	}()
	return c.surface.ScreenBounds()
}

// local converts a screen point to the view's logical local space.
func (c *Controller) local(at geom.Point) geom.Point {
	var origin geom.Point
	if r, ok := c.bounds(); ok {
		origin = r.Min()
	}
	return c.scale.Scale(geom.ToLocal(at, origin))
}
