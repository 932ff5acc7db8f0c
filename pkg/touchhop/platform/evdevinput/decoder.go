// Package evdevinput routes Linux touchscreen input read through evdev.
//
// Multitouch devices speaking protocol B (ABS_MT_SLOT / ABS_MT_TRACKING_ID)
// are decoded into frames of per-contact changes, one frame per
// SYN_REPORT. Single-touch devices that only report ABS_X/ABS_Y and
// BTN_TOUCH are decoded as one contact. Protocol A (SYN_MT_REPORT) is not
// supported.
package evdevinput

import (
	"fmt"

	"github.com/holoplot/go-evdev"
)

// Phase is the change a contact went through in a frame.
type Phase int

const (
	Began Phase = iota
	Moved
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "Began"
	case Moved:
		return "Moved"
	case Ended:
		return "Ended"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Contact is one finger in a frame. X and Y are in device units.
type Contact struct {
	Slot       int
	TrackingID int32
	X, Y       int32
	Phase      Phase
}

func (c Contact) String() string {
	return fmt.Sprintf("%s#%d(%d,%d)", c.Phase, c.TrackingID, c.X, c.Y)
}

// Frame is the set of contacts that changed between two SYN_REPORTs,
// ordered by slot.
type Frame struct {
	Contacts []Contact
}

// maxSlots bounds the slot index accepted from a device.
const maxSlots = 32

type slot struct {
	id     int32 // tracking id, valid while active
	x, y   int32
	active bool

	began  bool
	moved  bool
	ended  bool
	prevID int32 // id of a contact replaced within the frame
	swap   bool
}

// Decoder turns a stream of input events into frames. It is not safe for
// concurrent use.
type Decoder struct {
	slots      [maxSlots]slot
	current    int
	multitouch bool
	dropping   bool
	legacyID   int32
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed consumes one event. ok is true when the event completed a frame
// with at least one contact.
func (d *Decoder) Feed(ev evdev.InputEvent) (f Frame, ok bool) {
	if ev.Type == evdev.EV_SYN {
		switch ev.Code {
		case evdev.SYN_REPORT:
			if d.dropping {
				d.dropping = false
				d.clearFlags()
				return Frame{}, false
			}
			return d.flush()
		case evdev.SYN_DROPPED:
			d.dropping = true
			return d.cancelAll()
		}
		return Frame{}, false
	}

	if d.dropping {
		return Frame{}, false
	}

	switch ev.Type {
	case evdev.EV_ABS:
		d.abs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH && !d.multitouch {
			d.legacyTouch(ev.Value != 0)
		}
	}
	return Frame{}, false
}

func (d *Decoder) abs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.multitouch = true
		d.current = int(value)
	case evdev.ABS_MT_TRACKING_ID:
		d.multitouch = true
		if s := d.slot(); s != nil {
			s.track(value)
		}
	case evdev.ABS_MT_POSITION_X:
		d.multitouch = true
		if s := d.slot(); s != nil {
			s.x = value
			s.moved = true
		}
	case evdev.ABS_MT_POSITION_Y:
		d.multitouch = true
		if s := d.slot(); s != nil {
			s.y = value
			s.moved = true
		}
	case evdev.ABS_X:
		if !d.multitouch {
			d.slots[0].x = value
			d.slots[0].moved = true
		}
	case evdev.ABS_Y:
		if !d.multitouch {
			d.slots[0].y = value
			d.slots[0].moved = true
		}
	}
}

func (d *Decoder) slot() *slot {
	if d.current < 0 || d.current >= maxSlots {
		return nil
	}
	return &d.slots[d.current]
}

// track applies an ABS_MT_TRACKING_ID value to the slot.
func (s *slot) track(id int32) {
	switch {
	case id < 0:
		if s.active {
			s.active = false
			s.ended = true
		}
	case !s.active:
		switch {
		case s.ended && !s.began:
			// Lifted and reused within one frame: the old contact still
			// has to end before the new one begins.
			s.prevID, s.swap, s.ended = s.id, true, false
		case s.ended:
			// A contact that began and lifted within this frame was never
			// reported, so it is dropped.
			s.ended = false
		}
		s.id, s.active, s.began = id, true, true
	case id != s.id:
		// The slot was reused for a new contact without a lift in between.
		s.prevID, s.swap = s.id, true
		s.id, s.began = id, true
	}
}

func (d *Decoder) legacyTouch(down bool) {
	s := &d.slots[0]
	switch {
	case down && !s.active:
		d.legacyID++
		s.id, s.active, s.began = d.legacyID, true, true
	case !down && s.active:
		s.active = false
		s.ended = true
	}
}

func (d *Decoder) flush() (Frame, bool) {
	var f Frame
	for i := range d.slots {
		s := &d.slots[i]
		if s.swap {
			f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.prevID, X: s.x, Y: s.y, Phase: Ended})
		}
		switch {
		case s.began:
			f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.id, X: s.x, Y: s.y, Phase: Began})
			if s.ended {
				f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.id, X: s.x, Y: s.y, Phase: Ended})
			}
		case s.ended:
			f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.id, X: s.x, Y: s.y, Phase: Ended})
		case s.active && s.moved:
			f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.id, X: s.x, Y: s.y, Phase: Moved})
		}
	}
	d.clearFlags()
	return f, len(f.Contacts) > 0
}

// cancelAll ends every active contact after the kernel dropped events.
// Events up to the next SYN_REPORT are discarded.
func (d *Decoder) cancelAll() (Frame, bool) {
	var f Frame
	for i := range d.slots {
		s := &d.slots[i]
		if s.active {
			f.Contacts = append(f.Contacts, Contact{Slot: i, TrackingID: s.id, X: s.x, Y: s.y, Phase: Cancelled})
		}
		*s = slot{}
	}
	return f, len(f.Contacts) > 0
}

func (d *Decoder) clearFlags() {
	for i := range d.slots {
		s := &d.slots[i]
		s.began, s.moved, s.ended, s.swap = false, false, false, false
	}
}
