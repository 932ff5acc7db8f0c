package evdevinput

import (
	"errors"
	"strings"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

var ErrNoTouchscreen = errors.New("no touchscreen input device found")

// Reader reads one evdev device on its own goroutine and publishes decoded
// frames. It implements Source.
type Reader struct {
	dev    *evdev.InputDevice
	cal    Calibration
	frames chan Frame
	done   chan struct{}
	closed atomic.Bool
	err    error
}

// Open opens the device at path and starts reading it. Device coordinates
// are calibrated to a screen of the given size.
func Open(path string, screenWidth, screenHeight float64) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, touchhop.NewBindingError("open_device", err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		_ = dev.Close()
		return nil, touchhop.NewBindingError("read_abs_info", err)
	}

	name, _ := dev.Name()
	internal.GetInternalLogger().Debug("touchscreen opened", "path", path, "name", name)

	r := &Reader{
		dev:    dev,
		cal:    CalibrationFromAbsInfo(infos, screenWidth, screenHeight),
		frames: make(chan Frame, 16),
		done:   make(chan struct{}),
	}
	go r.loop()
	return r, nil
}

// Calibration returns the mapping derived from the device's axis ranges.
func (r *Reader) Calibration() Calibration {
	return r.cal
}

func (r *Reader) Frames() <-chan Frame {
	return r.frames
}

// Err reports why the frame channel was closed. It is only meaningful
// after the channel is closed.
func (r *Reader) Err() error {
	return r.err
}

// Close stops the reader and closes the device.
func (r *Reader) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(r.done)
	return r.dev.Close()
}

func (r *Reader) loop() {
	defer close(r.frames)

	dec := NewDecoder()
	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				r.err = touchhop.NewBindingError("read_event", err)
			}
			return
		}

		f, ok := dec.Feed(*ev)
		if !ok {
			continue
		}
		select {
		case r.frames <- f:
		case <-r.done:
			return
		}
	}
}

// FindTouchscreen returns the path of the first input device whose name
// looks like a touchscreen.
func FindTouchscreen() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", touchhop.NewBindingError("list_devices", err)
	}
	for _, p := range paths {
		if looksLikeTouchscreen(p.Name) {
			return p.Path, nil
		}
	}
	return "", ErrNoTouchscreen
}

var touchscreenNames = []string{"touch", "goodix", "gt911", "ft5x06", "edt-ft5", "ili210"}

func looksLikeTouchscreen(name string) bool {
	low := strings.ToLower(name)
	for _, n := range touchscreenNames {
		if strings.Contains(low, n) {
			return true
		}
	}
	return false
}
