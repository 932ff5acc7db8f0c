// Package sdlinput routes SDL2 mouse and finger events through a Service.
//
// SDL delivers input per window rather than per view, so every press is
// resolved to a view by hit testing and moves are routed without a
// delivering view. Views are attached to the Service directly with their
// bounds in window pixels.
package sdlinput

import (
	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/constants"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/veandco/go-sdl2/sdl"
)

// MousePointerID identifies the system mouse.
const MousePointerID = touchhop.PointerID(constants.MousePointerID)

// touchMouseID is the Which value SDL gives mouse events it synthesizes
// from touch input (SDL_TOUCH_MOUSEID).
const touchMouseID = ^uint32(0)

const leftButtonMask = uint32(1) << (sdl.BUTTON_LEFT - 1)

// SizeFunc reports the window size in pixels. Finger coordinates are
// normalized to the window and are scaled by it.
type SizeFunc func() (w, h int32)

// Router translates SDL events for one window.
type Router struct {
	svc   *touchhop.Service
	size  SizeFunc
	mouse geom.Point // last known mouse position
}

// NewRouter creates a Router. size is usually window.GetSize.
func NewRouter(svc *touchhop.Service, size SizeFunc) *Router {
	return &Router{svc: svc, size: size}
}

// Service returns the Service the router drives.
func (r *Router) Service() *touchhop.Service {
	return r.svc
}

// HandleEvent routes ev if it is pointer input. handled is false for every
// other event so the caller can keep processing it.
func (r *Router) HandleEvent(ev sdl.Event) (handled bool, err error) {
	switch e := ev.(type) {
	case *sdl.TouchFingerEvent:
		return true, r.finger(e)

	case *sdl.MouseButtonEvent:
		if e.Which == touchMouseID || e.Button != sdl.BUTTON_LEFT {
			return false, nil
		}
		at := geom.Pt(float64(e.X), float64(e.Y))
		r.mouse = at
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return true, r.press(MousePointerID, at)
		}
		return true, r.svc.Release(nil, MousePointerID, at)

	case *sdl.MouseMotionEvent:
		if e.Which == touchMouseID {
			return false, nil
		}
		at := geom.Pt(float64(e.X), float64(e.Y))
		r.mouse = at
		if e.State&leftButtonMask != 0 {
			return true, r.svc.Move(nil, MousePointerID, at)
		}
		return true, r.svc.Hover(MousePointerID, at)

	case *sdl.WindowEvent:
		if e.Event != sdl.WINDOWEVENT_LEAVE {
			return false, nil
		}
		return true, r.svc.Leave(MousePointerID, r.mouse)
	}

	return false, nil
}

func (r *Router) finger(e *sdl.TouchFingerEvent) error {
	w, h := r.size()
	at := geom.Pt(float64(e.X)*float64(w), float64(e.Y)*float64(h))
	id := touchhop.PointerID(e.FingerID)

	switch e.Type {
	case sdl.FINGERDOWN:
		return r.press(id, at)
	case sdl.FINGERMOTION:
		return r.svc.Move(nil, id, at)
	case sdl.FINGERUP:
		return r.svc.Release(nil, id, at)
	}
	return nil
}

// press starts the pointer on the view under it. A press outside every view
// leaves the pointer untracked until a move carries it into one.
func (r *Router) press(id touchhop.PointerID, at geom.Point) error {
	hit := r.svc.HitTest(at)
	if hit == nil {
		return nil
	}
	return r.svc.Press(hit, id, at)
}
