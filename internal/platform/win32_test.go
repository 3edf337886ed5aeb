package platform

import (
	"image"
	"testing"

	"github.com/1broseidon/winbox/internal/geom"
)

func TestBoxFromWindowRect(t *testing.T) {
	got := boxFromWindowRect(100, 100, 500, 400)
	want := geom.Box{Left: 100, Top: 100, Width: 400, Height: 300}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBoxFromWindowRectNegativeOrigin(t *testing.T) {
	// A window on a monitor left of the primary one.
	got := boxFromWindowRect(-1920, -8, -960, 1032)
	want := geom.Box{Left: -1920, Top: -8, Width: 960, Height: 1040}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolveWin32(t *testing.T) {
	cases := []struct {
		name   string
		handle Handle
		want   hwnd
		ok     bool
	}{
		{name: "numeric", handle: ID(0x2a0b4c), want: 0x2a0b4c, ok: true},
		{name: "hex text", handle: HexID("2a0b4c"), want: 0x2a0b4c, ok: true},
		{name: "hex text with prefix", handle: HexID("0x2A0B4C"), want: 0x2a0b4c, ok: true},
		{name: "bad hex", handle: HexID("not-a-window"), ok: false},
		{name: "foreign handle", handle: AppWindow{App: "TextEdit", Title: "a.txt"}, ok: false},
		{name: "nil", handle: nil, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := resolveWin32(tc.handle)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNeedsDPIAwareness(t *testing.T) {
	if !needsDPIAwareness(0, true) {
		t.Fatalf("unaware thread must opt in")
	}
	if needsDPIAwareness(2, true) {
		t.Fatalf("per-monitor aware thread must be left alone")
	}
	if !needsDPIAwareness(2, false) {
		t.Fatalf("hosts without the awareness API count as unaware")
	}
}

func TestParseHandle(t *testing.T) {
	cases := []struct {
		in   string
		want Handle
	}{
		{in: "12345", want: ID(12345)},
		{in: "0x3a00007", want: ID(0x3a00007)},
		{in: " 0X1F ", want: ID(0x1f)},
		{in: "1f2e", want: HexID("1f2e")},
		{in: "62914567", want: ID(62914567)},
		{in: "0000000000120456", want: HexID("0000000000120456")},
		{in: "0", want: ID(0)},
	}
	for _, tc := range cases {
		got, err := ParseHandle(tc.in)
		if err != nil {
			t.Fatalf("ParseHandle(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHandle(%q): expected %#v, got %#v", tc.in, tc.want, got)
		}
	}

	for _, bad := range []string{"", "0xzz", "window"} {
		if _, err := ParseHandle(bad); err == nil {
			t.Fatalf("ParseHandle(%q): expected error", bad)
		}
	}
}

func TestHexIDValue(t *testing.T) {
	cases := map[HexID]uint64{
		"0000000000120456": 0x120456,
		"3a00007":          0x3a00007,
		"0x1A2B":           0x1a2b,
	}
	for in, want := range cases {
		got, ok := in.value()
		if !ok || got != want {
			t.Fatalf("HexID(%q).value(): expected 0x%x, got 0x%x (ok=%v)", in, want, got, ok)
		}
	}
	if _, ok := HexID("zz").value(); ok {
		t.Fatalf("expected zz to be rejected")
	}
	if hw, ok := resolveWin32(HexID("0000000000120456")); !ok || hw != 0x120456 {
		t.Fatalf("expected hwnd 0x120456, got %v (ok=%v)", hw, ok)
	}
}

func TestScreenAt(t *testing.T) {
	screens := []Screen{
		{ID: 0, Name: "eDP-1", Bounds: geom.Box{Left: 0, Top: 0, Width: 1920, Height: 1080}},
		{ID: 1, Name: "HDMI-1", Bounds: geom.Box{Left: 1921, Top: 0, Width: 2560, Height: 1440}},
	}

	if s := ScreenAt(screens, 2000, 500); s == nil || s.Name != "HDMI-1" {
		t.Fatalf("expected HDMI-1, got %v", s)
	}
	if s := ScreenAt(screens, 1920, 1080); s == nil || s.Name != "eDP-1" {
		t.Fatalf("expected eDP-1 for the inclusive corner, got %v", s)
	}
	if s := ScreenAt(screens, 100, 2000); s != nil {
		t.Fatalf("expected no screen, got %v", s)
	}
}

func TestDisplayScreens(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(0, 0, 1920, 1080),
		image.Rect(-2560, -360, 0, 1080),
	}
	screens := displayScreens(len(rects), func(i int) image.Rectangle { return rects[i] })

	if len(screens) != 2 {
		t.Fatalf("expected 2 screens, got %d", len(screens))
	}
	want := Screen{ID: 1, Name: "DISPLAY2", Bounds: geom.Box{Left: -2560, Top: -360, Width: 2560, Height: 1440}}
	if screens[1] != want {
		t.Fatalf("expected %+v, got %+v", want, screens[1])
	}
	if s := ScreenAt(screens, -100, 0); s == nil || s.ID != 1 {
		t.Fatalf("expected the left display, got %v", s)
	}
}
