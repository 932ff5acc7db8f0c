// Package windows binds WinUI framework elements that raise Pointer*
// routed events.
//
// Mouse, pen and touch all arrive through the same events; IsInContact
// separates a pressed pointer from a hovering one. Positions in PointerArgs
// are element-local (GetCurrentPoint(element)) and RootBounds places the
// element in the root visual's coordinate space.
package windows

import (
	"errors"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

var errNoBounds = errors.New("element is not in the visual tree")

// Element is the FrameworkElement a binding is attached to.
type Element interface {
	// RootBounds returns the element's bounds relative to the root
	// visual. ok is false once the element has been unloaded.
	RootBounds() (r geom.Rect, ok bool)
	// CapturePointer asks the platform to route further input for the
	// pointer to this element. It reports whether capture was granted.
	CapturePointer(id uint32) bool
}

// PointerArgs is the subset of PointerRoutedEventArgs the binding reads.
type PointerArgs struct {
	PointerID   uint32
	Position    geom.Point // Element-local
	IsInContact bool
}

// BindOptions configures one attached element.
type BindOptions struct {
	Name    string
	Capture bool
}

// Router attaches framework elements to a shared Service.
type Router struct {
	svc *touchhop.Service
}

// NewRouter returns a Router that attaches elements to svc.
func NewRouter(svc *touchhop.Service) *Router {
	return &Router{svc: svc}
}

// Attach registers element. The caller subscribes the binding's On*
// methods to the element's Pointer* events.
func (r *Router) Attach(element Element, handler touchhop.Handler, options BindOptions) (*Binding, error) {
	if element == nil {
		return nil, touchhop.ErrMissingContext
	}

	c, err := r.svc.Attach(touchhop.SurfaceFunc(element.RootBounds), handler, touchhop.ViewOptions{
		Name:    options.Name,
		Capture: options.Capture,
	})
	if err != nil {
		return nil, err
	}
	return &Binding{svc: r.svc, element: element, ctrl: c}, nil
}

// Binding holds the routing state of one element.
type Binding struct {
	svc     *touchhop.Service
	element Element
	ctrl    *touchhop.Controller
}

// Controller returns the routing controller of the element.
func (b *Binding) Controller() *touchhop.Controller {
	return b.ctrl
}

// Capture reports the element's capture flag.
func (b *Binding) Capture() bool {
	return b.ctrl.Capture()
}

// SetCapture changes the element's capture flag.
func (b *Binding) SetCapture(capture bool) {
	b.ctrl.SetCapture(capture)
}

// Detach unregisters the element. Unsubscribe the Pointer* handlers first.
func (b *Binding) Detach() {
	b.svc.Detach(b.ctrl)
}

// OnPointerPressed handles PointerPressed. When the element captures its
// pointers, native capture is requested as well so that the element keeps
// receiving events once the pointer is outside it.
func (b *Binding) OnPointerPressed(args PointerArgs) error {
	at, err := b.root(args, "pointer_pressed")
	if err != nil {
		return err
	}
	if err := b.svc.Press(b.ctrl, touchhop.PointerID(args.PointerID), at); err != nil {
		return err
	}

	if b.ctrl.Capture() && !b.element.CapturePointer(args.PointerID) {
		b.svc.Logger().Debug("native pointer capture refused",
			"pointer", args.PointerID, "view", b.ctrl.ID())
	}
	return nil
}

// OnPointerMoved handles PointerMoved for pressed and hovering pointers.
func (b *Binding) OnPointerMoved(args PointerArgs) error {
	at, err := b.root(args, "pointer_moved")
	if err != nil {
		return err
	}
	id := touchhop.PointerID(args.PointerID)
	if args.IsInContact {
		return b.svc.Move(b.ctrl, id, at)
	}
	return b.svc.Hover(id, at)
}

// OnPointerReleased handles PointerReleased. The pointer goes to the
// element under it, or to the element it began on while that one captures.
func (b *Binding) OnPointerReleased(args PointerArgs) error {
	at, err := b.root(args, "pointer_released")
	if err != nil {
		return err
	}
	return b.svc.Release(b.ctrl, touchhop.PointerID(args.PointerID), at)
}

// OnPointerCanceled handles PointerCanceled and PointerCaptureLost,
// routed like OnPointerReleased.
func (b *Binding) OnPointerCanceled(args PointerArgs) error {
	at, err := b.root(args, "pointer_canceled")
	if err != nil {
		return err
	}
	return b.svc.Cancel(b.ctrl, touchhop.PointerID(args.PointerID), at)
}

// OnPointerEntered handles PointerEntered. Entering is derived from
// movement by the Service, so the native event carries nothing new.
func (b *Binding) OnPointerEntered(PointerArgs) error {
	return nil
}

// OnPointerExited handles PointerExited.
//
// A pointer in contact is treated as a move, which re-runs the hit test. A
// hovering pointer that this element still owns has left every view; an
// exit that arrives after the pointer was already handed to another element
// is ignored.
func (b *Binding) OnPointerExited(args PointerArgs) error {
	at, err := b.root(args, "pointer_exited")
	if err != nil {
		return err
	}
	id := touchhop.PointerID(args.PointerID)
	if args.IsInContact {
		return b.svc.Move(b.ctrl, id, at)
	}
	if b.svc.Owner(id) != b.ctrl {
		return nil
	}
	return b.svc.Leave(id, at)
}

// root converts the element-local position to root coordinates.
func (b *Binding) root(args PointerArgs, op string) (geom.Point, error) {
	r, ok := b.element.RootBounds()
	if !ok {
		return geom.Point{}, touchhop.NewBindingError(op, errNoBounds)
	}
	return args.Position.Add(r.Min()), nil
}
