package touchhop

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
)

func newTestController(id ViewID, surface Surface) *Controller {
	return &Controller{
		id:      id,
		surface: surface,
		handler: func(ViewID, TouchEvent) {},
		scale:   geom.Identity,
	}
}

func TestRegistryLastRegisteredWinsOnOverlap(t *testing.T) {
	r := NewRegistry()
	under := newTestController(1, StaticSurface(geom.Rect{Width: 100, Height: 100}))
	over := newTestController(2, StaticSurface(geom.Rect{X: 50, Y: 50, Width: 100, Height: 100}))
	mustOK(t, r.Register(under))
	mustOK(t, r.Register(over))

	if got := r.HitTest(geom.Pt(75, 75)); got != over {
		t.Errorf("overlap hit = %v, want later registration", got)
	}
	if got := r.HitTest(geom.Pt(10, 10)); got != under {
		t.Errorf("hit = %v, want first view", got)
	}
	if got := r.HitTest(geom.Pt(300, 300)); got != nil {
		t.Errorf("hit outside every view = %v", got)
	}
}

func TestRegistrySkipsUnavailableSurfaces(t *testing.T) {
	r := NewRegistry()
	alive := newTestController(1, StaticSurface(geom.Rect{Width: 100, Height: 100}))
	disposed := newTestController(2, SurfaceFunc(func() (geom.Rect, bool) {
		return geom.Rect{}, false
	}))
	panicking := newTestController(3, SurfaceFunc(func() (geom.Rect, bool) {
		panic("object disposed")
	}))
	mustOK(t, r.Register(alive))
	mustOK(t, r.Register(disposed))
	mustOK(t, r.Register(panicking))

	if got := r.HitTest(geom.Pt(10, 10)); got != alive {
		t.Errorf("hit = %v, want the live view", got)
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	r := NewRegistry()
	c := newTestController(7, StaticSurface{})
	mustOK(t, r.Register(c))

	if err := r.Register(newTestController(7, StaticSurface{})); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("duplicate register: err = %v", err)
	}
	if got, ok := r.Lookup(7); !ok || got != c {
		t.Errorf("Lookup(7) = %v, %v", got, ok)
	}
	if !r.Has(c) || r.Len() != 1 {
		t.Errorf("registry does not hold the view")
	}

	r.Unregister(7)
	r.Unregister(7)
	if r.Has(c) || r.Len() != 0 {
		t.Errorf("view still registered after Unregister")
	}
	if r.Has(nil) {
		t.Errorf("Has(nil) = true")
	}
}

func TestRegistryViewsKeepsOrder(t *testing.T) {
	r := NewRegistry()
	for id := ViewID(1); id <= 3; id++ {
		mustOK(t, r.Register(newTestController(id, StaticSurface{})))
	}
	r.Unregister(2)

	views := r.Views()
	if len(views) != 2 || views[0].ID() != 1 || views[1].ID() != 3 {
		t.Errorf("Views() order = %v", views)
	}

	views[0] = nil
	if r.Views()[0] == nil {
		t.Errorf("Views() returned internal storage")
	}
}
