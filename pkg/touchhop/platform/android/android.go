// Package android binds views that receive Android MotionEvent callbacks.
//
// The embedding toolkit implements View for its native view and forwards
// every touch callback to Binding.OnTouch. Pointer coordinates in a
// MotionEvent are view-local pixels; the binding adds the view's location
// on screen to obtain screen pixels for hit testing, and emitted locations
// are converted back to view-local density-independent units.
package android

import (
	"fmt"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

// Action is a masked MotionEvent action. Values match MotionEvent.ACTION_*.
type Action int

const (
	ActionDown        Action = 0
	ActionUp          Action = 1
	ActionMove        Action = 2
	ActionCancel      Action = 3
	ActionOutside     Action = 4
	ActionPointerDown Action = 5
	ActionPointerUp   Action = 6
	ActionHoverMove   Action = 7
	ActionScroll      Action = 8
	ActionHoverEnter  Action = 9
	ActionHoverExit   Action = 10
)

// Pointer is one entry of a MotionEvent's pointer array.
type Pointer struct {
	ID int     // getPointerId: small, reused once the finger lifts
	X  float64 // getX, view-local pixels
	Y  float64 // getY, view-local pixels
}

// MotionEvent is the subset of android.view.MotionEvent the binding reads.
type MotionEvent struct {
	Action      Action // getActionMasked
	ActionIndex int    // getActionIndex, meaningful for down/up actions
	Pointers    []Pointer
}

// View is the native view a binding is attached to.
type View interface {
	// LocationOnScreen mirrors getLocationOnScreen. It fails once the
	// view has been disposed.
	LocationOnScreen() (x, y int, err error)
	// Size returns the view's width and height in pixels.
	Size() (width, height int)
}

// BindOptions configures one attached view.
type BindOptions struct {
	Name    string  // Label used in log records
	Capture bool    // Initial capture flag
	Density float64 // Display density used to convert pixels to dp (0 = no conversion)
}

// Router attaches Android views to a shared Service.
type Router struct {
	svc *touchhop.Service
}

// NewRouter creates a Router over svc.
func NewRouter(svc *touchhop.Service) *Router {
	return &Router{svc: svc}
}

// Attach registers view and returns the binding that its touch listener
// must forward events to.
func (r *Router) Attach(view View, handler touchhop.Handler, options BindOptions) (*Binding, error) {
	if view == nil {
		return nil, touchhop.ErrMissingContext
	}

	c, err := r.svc.Attach(viewSurface{view: view}, handler, touchhop.ViewOptions{
		Name:            options.Name,
		Capture:         options.Capture,
		PixelsToLogical: geom.DensityScaler(options.Density),
	})
	if err != nil {
		return nil, err
	}

	return &Binding{svc: r.svc, view: view, ctrl: c}, nil
}

type viewSurface struct {
	view View
}

func (s viewSurface) ScreenBounds() (geom.Rect, bool) {
	x, y, err := s.view.LocationOnScreen()
	if err != nil {
		return geom.Rect{}, false
	}
	w, h := s.view.Size()
	return geom.Rect{X: float64(x), Y: float64(y), Width: float64(w), Height: float64(h)}, true
}

// Binding routes the touch callbacks of one view.
type Binding struct {
	svc  *touchhop.Service
	view View
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

// Detach unregisters the view. Call it before the native view is disposed.
func (b *Binding) Detach() {
	b.svc.Detach(b.ctrl)
}

// OnTouch handles one touch callback.
//
// Down and up actions carry a single representative pointer selected by
// ActionIndex; only that pointer is processed. Move batches every active
// pointer and each one is evaluated independently.
func (b *Binding) OnTouch(ev MotionEvent) error {
	x, y, err := b.view.LocationOnScreen()
	if err != nil {
		return touchhop.NewBindingError("motion_event", err)
	}
	origin := geom.Pt(float64(x), float64(y))

	screen := func(p Pointer) geom.Point {
		return origin.Add(geom.Pt(p.X, p.Y))
	}

	switch ev.Action {
	case ActionDown, ActionPointerDown:
		p, err := ev.actionPointer()
		if err != nil {
			return err
		}
		return b.svc.Press(b.ctrl, touchhop.PointerID(p.ID), screen(p))

	case ActionMove:
		for _, p := range ev.Pointers {
			if err := b.svc.Move(b.ctrl, touchhop.PointerID(p.ID), screen(p)); err != nil {
				return err
			}
		}

	case ActionUp, ActionPointerUp:
		p, err := ev.actionPointer()
		if err != nil {
			return err
		}
		return b.svc.Release(b.ctrl, touchhop.PointerID(p.ID), screen(p))

	case ActionCancel:
		// The whole gesture is aborted, so every pointer ends.
		for _, p := range ev.Pointers {
			if err := b.svc.Cancel(b.ctrl, touchhop.PointerID(p.ID), screen(p)); err != nil {
				return err
			}
		}

	case ActionHoverEnter, ActionHoverMove:
		p, err := ev.actionPointer()
		if err != nil {
			return err
		}
		return b.svc.Hover(touchhop.PointerID(p.ID), screen(p))

	case ActionHoverExit:
		p, err := ev.actionPointer()
		if err != nil {
			return err
		}
		return b.svc.Leave(touchhop.PointerID(p.ID), screen(p))
	}

	return nil
}

func (ev MotionEvent) actionPointer() (Pointer, error) {
	if ev.ActionIndex < 0 || ev.ActionIndex >= len(ev.Pointers) {
		return Pointer{}, touchhop.NewBindingError("motion_event",
			fmt.Errorf("action index %d out of range for %d pointers", ev.ActionIndex, len(ev.Pointers)))
	}
	return ev.Pointers[ev.ActionIndex], nil
}
