package evdevinput

import (
	"fmt"
	"testing"

	"github.com/holoplot/go-evdev"
)

func abs(code evdev.EvCode, v int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_ABS, Code: code, Value: v}
}

func key(code evdev.EvCode, v int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: v}
}

func syn() evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}
}

func dropped() evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.SYN_DROPPED}
}

// decode feeds events and returns the frames produced, one string each.
func decode(d *Decoder, events ...evdev.InputEvent) []string {
	var out []string
	for _, ev := range events {
		if f, ok := d.Feed(ev); ok {
			out = append(out, fmt.Sprint(f.Contacts))
		}
	}
	return out
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		name   string
		events []evdev.InputEvent
		want   []string
	}{
		{
			name: "single contact lifecycle",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_SLOT, 0), abs(evdev.ABS_MT_TRACKING_ID, 7),
				abs(evdev.ABS_MT_POSITION_X, 100), abs(evdev.ABS_MT_POSITION_Y, 200),
				key(evdev.BTN_TOUCH, 1), abs(evdev.ABS_X, 100), abs(evdev.ABS_Y, 200),
				syn(),
				abs(evdev.ABS_MT_POSITION_X, 110), abs(evdev.ABS_X, 110), syn(),
				abs(evdev.ABS_MT_TRACKING_ID, -1), key(evdev.BTN_TOUCH, 0), syn(),
			},
			want: []string{
				"[Began#7(100,200)]",
				"[Moved#7(110,200)]",
				"[Ended#7(110,200)]",
			},
		},
		{
			name: "two slots",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_SLOT, 0), abs(evdev.ABS_MT_TRACKING_ID, 1),
				abs(evdev.ABS_MT_POSITION_X, 10), abs(evdev.ABS_MT_POSITION_Y, 10),
				abs(evdev.ABS_MT_SLOT, 1), abs(evdev.ABS_MT_TRACKING_ID, 2),
				abs(evdev.ABS_MT_POSITION_X, 50), abs(evdev.ABS_MT_POSITION_Y, 50),
				syn(),
				abs(evdev.ABS_MT_POSITION_X, 60), syn(),
				abs(evdev.ABS_MT_SLOT, 0), abs(evdev.ABS_MT_TRACKING_ID, -1), syn(),
			},
			want: []string{
				"[Began#1(10,10) Began#2(50,50)]",
				"[Moved#2(60,50)]",
				"[Ended#1(10,10)]",
			},
		},
		{
			name: "slot reused without lift",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_TRACKING_ID, 3), abs(evdev.ABS_MT_POSITION_X, 5), syn(),
				abs(evdev.ABS_MT_TRACKING_ID, 4), syn(),
			},
			want: []string{
				"[Began#3(5,0)]",
				"[Ended#3(5,0) Began#4(5,0)]",
			},
		},
		{
			name: "slot lifted and reused in one frame",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_TRACKING_ID, 3), abs(evdev.ABS_MT_POSITION_X, 5), syn(),
				abs(evdev.ABS_MT_TRACKING_ID, -1), abs(evdev.ABS_MT_TRACKING_ID, 4), syn(),
				abs(evdev.ABS_MT_TRACKING_ID, -1), syn(),
			},
			want: []string{
				"[Began#3(5,0)]",
				"[Ended#3(5,0) Began#4(5,0)]",
				"[Ended#4(5,0)]",
			},
		},
		{
			name: "unreported tap replaced in one frame",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_TRACKING_ID, 3), abs(evdev.ABS_MT_TRACKING_ID, -1),
				abs(evdev.ABS_MT_TRACKING_ID, 4), abs(evdev.ABS_MT_POSITION_X, 2), syn(),
			},
			want: []string{"[Began#4(2,0)]"},
		},
		{
			name: "tap within one frame",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_TRACKING_ID, 9), abs(evdev.ABS_MT_POSITION_X, 1),
				abs(evdev.ABS_MT_TRACKING_ID, -1), syn(),
			},
			want: []string{"[Began#9(1,0) Ended#9(1,0)]"},
		},
		{
			name: "dropped events cancel active contacts",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_TRACKING_ID, 1), abs(evdev.ABS_MT_POSITION_X, 10), syn(),
				dropped(),
				abs(evdev.ABS_MT_POSITION_X, 99), syn(),
				abs(evdev.ABS_MT_POSITION_X, 20), syn(),
				abs(evdev.ABS_MT_TRACKING_ID, -1), syn(),
			},
			want: []string{
				"[Began#1(10,0)]",
				"[Cancelled#1(10,0)]",
			},
		},
		{
			name: "legacy single touch",
			events: []evdev.InputEvent{
				key(evdev.BTN_TOUCH, 1), abs(evdev.ABS_X, 30), abs(evdev.ABS_Y, 40), syn(),
				abs(evdev.ABS_X, 35), syn(),
				key(evdev.BTN_TOUCH, 0), syn(),
				key(evdev.BTN_TOUCH, 1), syn(),
			},
			want: []string{
				"[Began#1(30,40)]",
				"[Moved#1(35,40)]",
				"[Ended#1(35,40)]",
				"[Began#2(35,40)]",
			},
		},
		{
			name: "empty report",
			events: []evdev.InputEvent{
				syn(), syn(),
			},
		},
		{
			name: "out of range slot ignored",
			events: []evdev.InputEvent{
				abs(evdev.ABS_MT_SLOT, maxSlots), abs(evdev.ABS_MT_TRACKING_ID, 1), syn(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode(NewDecoder(), tt.events...)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("frames:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Began: "Began", Moved: "Moved", Ended: "Ended", Cancelled: "Cancelled", Phase(9): "Unknown"} {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(p), p.String(), want)
		}
	}
}
