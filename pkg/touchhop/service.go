package touchhop

import (
	"log/slog"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/internal"
)

// Options configures a Service.
type Options struct {
	Logger *slog.Logger // Destination for routing diagnostics (default: internal logger)
}

// Service owns the view registry and the pointer ownership table shared by
// every attached view. All methods must be called from the one goroutine
// that delivers native input; the Service does no locking of its own.
//
// Points passed to the Service are in screen space, in the same units the
// attached surfaces report their bounds in.
type Service struct {
	registry *Registry
	tracker  *tracker
	nextID   ViewID
	logger   *slog.Logger
}

// New creates a Service with no attached views.
func New(options Options) *Service {
	logger := options.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	return &Service{
		registry: NewRegistry(),
		tracker:  newTracker(),
		logger:   logger,
	}
}

// Attach registers a view and returns its controller.
func (s *Service) Attach(surface Surface, handler Handler, options ViewOptions) (*Controller, error) {
	if surface == nil || handler == nil {
		return nil, ErrMissingContext
	}

	s.nextID++
	c := &Controller{
		id:      s.nextID,
		name:    options.Name,
		surface: surface,
		handler: handler,
		scale:   options.PixelsToLogical,
	}
	if c.scale == nil {
		c.scale = geom.Identity
	}
	c.capture.Store(options.Capture)

	if err := s.registry.Register(c); err != nil {
		return nil, err
	}

	s.logger.Debug("view attached", "view", c.id, "name", c.name)
	return c, nil
}

// Detach unregisters c and forgets every pointer it owns or originated.
// It is safe to call more than once.
func (s *Service) Detach(c *Controller) {
	if c == nil {
		return
	}
	s.registry.Unregister(c.id)
	dropped := s.tracker.drop(c)
	s.logger.Debug("view detached", "view", c.id, "name", c.name, "dropped_pointers", dropped)
}

// Logger returns the logger the Service reports to. Bindings log through
// it as well.
func (s *Service) Logger() *slog.Logger {
	return s.logger
}

// Registry exposes the view registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// HitTest returns the view under a screen point, or nil.
func (s *Service) HitTest(at geom.Point) *Controller {
	return s.registry.HitTest(at)
}

// Owner returns the view currently owning a pointer, or nil.
func (s *Service) Owner(id PointerID) *Controller {
	return s.tracker.owner(id)
}

// ActivePointers returns the number of pointers with an owner.
func (s *Service) ActivePointers() int {
	return s.tracker.len()
}

// Press starts pointer id on c. The Pressed event goes to c without hit
// testing; c then owns the pointer.
func (s *Service) Press(c *Controller, id PointerID, at geom.Point) error {
	if !s.registry.Has(c) {
		return ErrNotAttached
	}
	if prev := s.tracker.origin(id); prev != nil {
		s.logger.Warn("press for pointer that is still pressed", "pointer", id, "origin", prev.id)
	}

	if err := s.emit(c, ActionPressed, id, at, true); err != nil {
		return err
	}
	if s.registry.Has(c) {
		s.tracker.begin(id, c)
	}
	return nil
}

// Move reports that pointer id moved to at. via is the view whose native
// layer delivered the event, or nil for window-level input.
func (s *Service) Move(via *Controller, id PointerID, at geom.Point) error {
	holder, err := s.holder(via, id)
	if err != nil {
		return err
	}
	if holder != nil && holder.Capture() {
		return s.emit(holder, ActionMoved, id, at, true)
	}

	owner, err := s.hop(id, at, true)
	if err != nil || owner == nil {
		return err
	}
	return s.emit(owner, ActionMoved, id, at, true)
}

// Release ends pointer id normally.
func (s *Service) Release(via *Controller, id PointerID, at geom.Point) error {
	return s.end(via, id, at, ActionReleased)
}

// Cancel ends pointer id because the platform aborted it.
func (s *Service) Cancel(via *Controller, id PointerID, at geom.Point) error {
	return s.end(via, id, at, ActionCancelled)
}

// Hover reports movement of a pointer that is not in contact, such as a
// mouse with no button held. Capture does not apply.
func (s *Service) Hover(id PointerID, at geom.Point) error {
	owner, err := s.hop(id, at, false)
	if err != nil || owner == nil {
		return err
	}
	return s.emit(owner, ActionMoved, id, at, false)
}

// Leave reports that a pointer left the input surface altogether. Its
// owner, if any, receives Exited. A pressed pointer keeps the view it began
// on, and one held by a capturing view is not affected at all.
func (s *Service) Leave(id PointerID, at geom.Point) error {
	owner := s.tracker.owner(id)
	origin := s.tracker.origin(id)
	switch {
	case origin == nil:
		s.tracker.forget(id)
	case origin.Capture():
		return nil
	default:
		s.tracker.setOwner(id, nil)
	}
	if owner == nil {
		return nil
	}
	return s.emit(owner, ActionExited, id, at, origin != nil)
}

func (s *Service) end(via *Controller, id PointerID, at geom.Point, action ActionType) error {
	defer s.tracker.forget(id)

	holder, err := s.holder(via, id)
	if err != nil {
		return err
	}
	if holder != nil && holder.Capture() {
		return s.emit(holder, action, id, at, false)
	}

	owner, err := s.hop(id, at, true)
	if err != nil || owner == nil {
		return err
	}
	return s.emit(owner, action, id, at, false)
}

// holder returns the controller whose capture flag governs pointer id: the
// view it began on if known, otherwise the delivering view.
func (s *Service) holder(via *Controller, id PointerID) (*Controller, error) {
	if origin := s.tracker.origin(id); origin != nil {
		return origin, nil
	}
	if via == nil {
		return nil, nil
	}
	if !s.registry.Has(via) {
		return nil, ErrNotAttached
	}
	return via, nil
}

// hop re-resolves the owner of pointer id from a hit test at at, emitting
// Exited to the previous owner and Entered to the new one when they differ.
func (s *Service) hop(id PointerID, at geom.Point, contact bool) (*Controller, error) {
	hit := s.registry.HitTest(at)
	prev := s.tracker.owner(id)
	if hit == prev {
		return hit, nil
	}

	s.logger.Debug("boundary hop", "pointer", id, "from", viewName(prev), "to", viewName(hit), "at", at.String())

	// The table follows every delivered event, including one whose handler
	// panicked.
	if prev != nil {
		err := s.emit(prev, ActionExited, id, at, contact)
		s.tracker.setOwner(id, nil)
		if err != nil {
			return nil, err
		}
	}
	if hit != nil {
		err := s.emit(hit, ActionEntered, id, at, contact)
		// A handler may have detached the view it was just told about.
		if !s.registry.Has(hit) {
			hit = nil
		}
		s.tracker.setOwner(id, hit)
		if err != nil {
			return nil, err
		}
	}
	return hit, nil
}

func (s *Service) emit(c *Controller, action ActionType, id PointerID, at geom.Point, contact bool) (err error) {
	ev := TouchEvent{
		ID:        id,
		Type:      action,
		Location:  c.local(at),
		InContact: contact,
	}

	defer func() {
		if v := recover(); v != nil {
			s.logger.Error("touch handler panicked", "view", c.id, "action", action.String(), "panic", v)
			err = &HandlerError{View: c.id, Action: action, Value: v}
		}
	}()

	c.handler(c.id, ev)
	return nil
}

func viewName(c *Controller) string {
	switch {
	case c == nil:
		return "none"
	case c.name != "":
		return c.name
	default:
		return "unnamed"
	}
}
