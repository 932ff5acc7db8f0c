package preview

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/BrandonKowalski/touchhop/pkg/touchhop"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/config"
	"github.com/BrandonKowalski/touchhop/pkg/touchhop/geom"
	"github.com/veandco/go-sdl2/sdl"
)

func newTestScene(t *testing.T) (*touchhop.Service, *scene, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	svc := touchhop.New(touchhop.Options{})
	sc, err := newScene(svc, []config.View{
		{Name: "left", Width: 100, Height: 100},
		{Name: "right", X: 100, Width: 100, Height: 100, Capture: true},
	}, 2, logger)
	if err != nil {
		t.Fatal(err)
	}
	return svc, sc, &buf
}

func TestSceneTracksPointerState(t *testing.T) {
	svc, sc, _ := newTestScene(t)
	theme := DefaultTheme()
	left, right := sc.views[0], sc.views[1]

	if err := svc.Hover(touchhop.PointerID(-1), geom.Pt(10, 10)); err != nil {
		t.Fatal(err)
	}
	if left.fill(theme) != theme.HoverColor {
		t.Errorf("hovered view fill = %v", left.fill(theme))
	}

	_ = svc.Press(left.ctrl, 1, geom.Pt(20, 20))
	if left.fill(theme) != theme.PressedColor {
		t.Errorf("pressed view fill = %v", left.fill(theme))
	}

	_ = svc.Move(nil, 1, geom.Pt(150, 20))
	_ = svc.Leave(touchhop.PointerID(-1), geom.Pt(10, 10))
	if left.fill(theme) != theme.ViewColor {
		t.Errorf("left fill after pointers left = %v", left.fill(theme))
	}
	if right.fill(theme) != theme.PressedColor {
		t.Errorf("right fill = %v, want pressed", right.fill(theme))
	}

	_ = svc.Release(nil, 1, geom.Pt(150, 20))
	if right.fill(theme) != theme.ViewColor {
		t.Errorf("right fill after release = %v", right.fill(theme))
	}
}

func TestSceneOutlineFollowsCapture(t *testing.T) {
	_, sc, buf := newTestScene(t)
	theme := DefaultTheme()

	if sc.views[0].outline(theme) != theme.BorderColor || sc.views[1].outline(theme) != theme.CaptureColor {
		t.Fatalf("initial outlines do not reflect the configured capture flags")
	}

	if !sc.toggleCapture(0) || !sc.views[0].ctrl.Capture() {
		t.Errorf("toggleCapture(0) did not set capture")
	}
	if sc.views[0].outline(theme) != theme.CaptureColor {
		t.Errorf("outline after toggle = %v", sc.views[0].outline(theme))
	}
	if sc.toggleCapture(5) || sc.toggleCapture(-1) {
		t.Errorf("toggleCapture accepted a missing view")
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"capture toggled"`)) {
		t.Errorf("toggle not logged: %s", buf.String())
	}
}

func TestSceneLogsScaledLocations(t *testing.T) {
	svc, sc, buf := newTestScene(t)

	_ = svc.Press(sc.views[1].ctrl, 3, geom.Pt(140, 60))

	var rec struct {
		Msg       string  `json:"msg"`
		View      string  `json:"view"`
		Action    string  `json:"action"`
		Pointer   int64   `json:"pointer"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
		InContact bool    `json:"in_contact"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("log line: %v (%s)", err, buf.String())
	}
	if rec.Msg != "touch" || rec.View != "right" || rec.Action != "Pressed" || rec.Pointer != 3 {
		t.Errorf("log record = %+v", rec)
	}
	if rec.X != 20 || rec.Y != 30 || !rec.InContact {
		t.Errorf("logged location (%g,%g) contact=%t, want (20,30) in contact", rec.X, rec.Y, rec.InContact)
	}
}

func TestHexToColor(t *testing.T) {
	if got := HexToColor(0x12ABEF); got != (sdl.Color{R: 0x12, G: 0xAB, B: 0xEF, A: 0xFF}) {
		t.Errorf("HexToColor = %+v", got)
	}
}

func TestWindowOptionsFlags(t *testing.T) {
	tests := []struct {
		name string
		opts WindowOptions
		want uint32
	}{
		{"zero", WindowOptions{}, sdl.WINDOW_SHOWN},
		{"hidden", WindowOptions{Hidden: true}, 0},
		{"resizable borderless", WindowOptions{Resizable: true, Borderless: true}, sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_BORDERLESS},
		{"fullscreen on top", WindowOptions{Fullscreen: true, AlwaysOnTop: true}, sdl.WINDOW_SHOWN | sdl.WINDOW_FULLSCREEN_DESKTOP | sdl.WINDOW_ALWAYS_ON_TOP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.ToSDLFlags(); got != tt.want {
				t.Errorf("ToSDLFlags() = %#x, want %#x", got, tt.want)
			}
		})
	}
	if !(WindowOptions{}).IsZero() || (WindowOptions{Hidden: true}).IsZero() {
		t.Errorf("IsZero misreports")
	}
}

func TestToSDLRect(t *testing.T) {
	if got := toSDLRect(geom.Rect{X: 1, Y: 2, Width: 30, Height: 40}); got != (sdl.Rect{X: 1, Y: 2, W: 30, H: 40}) {
		t.Errorf("toSDLRect = %+v", got)
	}
}
