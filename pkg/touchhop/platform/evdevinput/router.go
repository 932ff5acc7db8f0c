package evdevinput

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/holoplot/go-evdev"
)

// Axis is the value range a device reports for one coordinate.
type Axis struct {
	Min, Max int32
}

// scale maps v from the axis range onto [0, size-1], clamping values the
// device reports outside its advertised range.
func (a Axis) scale(v int32, size float64) float64 {
	if size <= 1 {
		return 0
	}
	lo, hi := a.Min, a.Max
	if hi <= lo {
		hi = lo + 1
	}
	v = min(max(v, lo), hi)
	return float64(v-lo) * (size - 1) / float64(hi-lo)
}

// Calibration maps device units to screen units.
type Calibration struct {
	X, Y          Axis
	Width, Height float64 // Screen size
}

// Map converts a device position to a screen point.
func (c Calibration) Map(x, y int32) geom.Point {
	return geom.Pt(c.X.scale(x, c.Width), c.Y.scale(y, c.Height))
}

// CalibrationFromAbsInfo builds a Calibration from a device's axis ranges,
// preferring the multitouch axes over the legacy ones. Missing axes map
// one device unit to one screen unit.
func CalibrationFromAbsInfo(infos map[evdev.EvCode]evdev.AbsInfo, width, height float64) Calibration {
	axis := func(mt, legacy evdev.EvCode, size float64) Axis {
		if info, ok := infos[mt]; ok {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
		if info, ok := infos[legacy]; ok {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
		return Axis{Min: 0, Max: int32(size) - 1}
	}

	return Calibration{
		X:      axis(evdev.ABS_MT_POSITION_X, evdev.ABS_X, width),
		Y:      axis(evdev.ABS_MT_POSITION_Y, evdev.ABS_Y, height),
		Width:  width,
		Height: height,
	}
}

// Source delivers decoded frames. The channel is closed when the source
// stops; Err then reports why, or nil after a clean Close.
type Source interface {
	Frames() <-chan Frame
	Err() error
}

// Router drives a Service from touchscreen frames. Views are attached to
// the Service with their bounds in screen units.
type Router struct {
	svc    *touchhop.Service
	cal    Calibration
	logger *slog.Logger
}

func NewRouter(svc *touchhop.Service, cal Calibration) *Router {
	return &Router{svc: svc, cal: cal, logger: svc.Logger()}
}

// Apply routes every contact of f. A contact that begins outside every
// view is not tracked until it moves into one.
func (r *Router) Apply(f Frame) error {
	var first error
	for _, c := range f.Contacts {
		if err := r.contact(c); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (r *Router) contact(c Contact) error {
	id := touchhop.PointerID(c.TrackingID)
	at := r.cal.Map(c.X, c.Y)

	switch c.Phase {
	case Began:
		hit := r.svc.HitTest(at)
		if hit == nil {
			return nil
		}
		return r.svc.Press(hit, id, at)
	case Moved:
		return r.svc.Move(nil, id, at)
	case Ended:
		return r.svc.Release(nil, id, at)
	case Cancelled:
		return r.svc.Cancel(nil, id, at)
	}
	return nil
}

// Run routes frames from src on the calling goroutine until ctx is done or
// the source stops. Handler failures are logged and do not stop routing.
func (r *Router) Run(ctx context.Context, src Source) error {
	frames := src.Frames()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f, ok := <-frames:
			if !ok {
				return src.Err()
			}
			if err := r.Apply(f); err != nil {
				r.logger.Warn("touch frame routing failed", "contacts", len(f.Contacts), "error", err)
			}
		}
	}
}
