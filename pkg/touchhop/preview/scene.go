package preview

import (
	"log/slog"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/config"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/veandco/go-sdl2/sdl"
)

// viewState is what the preview knows about one attached view, built only
// from the events the view received.
type viewState struct {
	ctrl    *touchhop.Controller
	rect    geom.Rect
	inside  map[touchhop.PointerID]bool
	pressed map[touchhop.PointerID]bool
}

func (v *viewState) apply(ev touchhop.TouchEvent) {
	switch ev.Type {
	case touchhop.ActionEntered, touchhop.ActionPressed, touchhop.ActionMoved:
		v.inside[ev.ID] = true
		if ev.InContact {
			v.pressed[ev.ID] = true
		} else {
			delete(v.pressed, ev.ID)
		}
	case touchhop.ActionReleased, touchhop.ActionCancelled, touchhop.ActionExited:
		delete(v.inside, ev.ID)
		delete(v.pressed, ev.ID)
	}
}

func (v *viewState) fill(theme Theme) sdl.Color {
	switch {
	case len(v.pressed) > 0:
		return theme.PressedColor
	case len(v.inside) > 0:
		return theme.HoverColor
	default:
		return theme.ViewColor
	}
}

func (v *viewState) outline(theme Theme) sdl.Color {
	if v.ctrl.Capture() {
		return theme.CaptureColor
	}
	return theme.BorderColor
}

// scene is the set of views shown by the preview, in attach order.
type scene struct {
	views  []*viewState
	byID   map[touchhop.ViewID]*viewState
	logger *slog.Logger
}

// newScene attaches every configured view to svc. Locations reported to
// the handlers are divided by density.
func newScene(svc *touchhop.Service, views []config.View, density float64, logger *slog.Logger) (*scene, error) {
	s := &scene{
		byID:   make(map[touchhop.ViewID]*viewState, len(views)),
		logger: logger,
	}

	for _, cv := range views {
		c, err := svc.Attach(touchhop.StaticSurface(cv.Rect()), s.handle, touchhop.ViewOptions{
			Name:            cv.Name,
			Capture:         cv.Capture,
			PixelsToLogical: geom.DensityScaler(density),
		})
		if err != nil {
			return nil, err
		}

		v := &viewState{
			ctrl:    c,
			rect:    cv.Rect(),
			inside:  make(map[touchhop.PointerID]bool),
			pressed: make(map[touchhop.PointerID]bool),
		}
		s.views = append(s.views, v)
		s.byID[c.ID()] = v
	}
	return s, nil
}

func (s *scene) handle(view touchhop.ViewID, ev touchhop.TouchEvent) {
	v, ok := s.byID[view]
	if !ok {
		return
	}
	v.apply(ev)
	s.logger.Info("touch",
		"view", v.ctrl.Name(),
		"action", ev.Type.String(),
		"pointer", ev.ID,
		"x", ev.Location.X,
		"y", ev.Location.Y,
		"in_contact", ev.InContact,
	)
}

// toggleCapture flips the capture flag of the n-th view, counting from
// zero. It reports whether such a view exists.
func (s *scene) toggleCapture(n int) bool {
	if n < 0 || n >= len(s.views) {
		return false
	}
	c := s.views[n].ctrl
	c.SetCapture(!c.Capture())
	s.logger.Info("capture toggled", "view", c.Name(), "capture", c.Capture())
	return true
}

func (s *scene) draw(r *sdl.Renderer, theme Theme) {
	setColor(r, theme.BackgroundColor)
	r.Clear()

	for _, v := range s.views {
		rect := toSDLRect(v.rect)
		setColor(r, v.fill(theme))
		r.FillRect(&rect)
		setColor(r, v.outline(theme))
		r.DrawRect(&rect)
	}
}

func setColor(r *sdl.Renderer, c sdl.Color) {
	r.SetDrawColor(c.R, c.G, c.B, c.A)
}

func toSDLRect(r geom.Rect) sdl.Rect {
	return sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)}
}
