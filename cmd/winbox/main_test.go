package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/nudge"
	"github.com/1broseidon/winbox/internal/platform"
)

type fakeWindow string

func (w fakeWindow) String() string { return string(w) }

// fakeAdapter manages a single window with ID 0x10.
type fakeAdapter struct {
	box      geom.Box
	screens  []platform.Screen
	granted  bool
	prompted bool
	opts     platform.Options
	windows  []platform.WindowInfo
}

func (a *fakeAdapter) Name() string { return "fake" }

func (a *fakeAdapter) Resolve(h platform.Handle) platform.Window {
	if id, ok := h.(platform.ID); ok && id == 0x10 {
		return fakeWindow("0x10")
	}
	return nil
}

func (a *fakeAdapter) Query(platform.Window) (geom.Box, error) { return a.box, nil }

func (a *fakeAdapter) Set(_ platform.Window, b geom.Box) error {
	a.box = b
	return nil
}

func (a *fakeAdapter) Screens() ([]platform.Screen, error) { return a.screens, nil }

func (a *fakeAdapter) Windows() ([]platform.WindowInfo, error) { return a.windows, nil }

func (a *fakeAdapter) CheckPermissions(activate bool) bool {
	a.prompted = a.prompted || activate
	return a.granted
}

// withCLI redirects output, isolates HOME and installs adapter.
func withCLI(t *testing.T, adapter *fakeAdapter, tty bool) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}

	prevOut, prevErr, prevAdapter, prevTTY := stdout, stderr, newAdapter, stdoutIsTerminal
	t.Cleanup(func() {
		stdout, stderr, newAdapter, stdoutIsTerminal = prevOut, prevErr, prevAdapter, prevTTY
	})

	stdout, stderr = out, errOut
	stdoutIsTerminal = func() bool { return tty }
	newAdapter = func(opts platform.Options) platform.Adapter {
		adapter.opts = opts
		return adapter
	}
	t.Setenv("HOME", t.TempDir())
	return out, errOut
}

func TestRunGetText(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Left: 100, Top: 100, Width: 400, Height: 300}}
	out, errOut := withCLI(t, adapter, true)

	if rc := run("get", []string{"--window", "0x10", "center"}); rc != 0 {
		t.Fatalf("get rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	if got := strings.TrimSpace(out.String()); got != "(300, 250)" {
		t.Fatalf("expected (300, 250), got %q", got)
	}
}

func TestRunGetJSONWhenPiped(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Left: 100, Top: 100, Width: 400, Height: 300}}
	out, _ := withCLI(t, adapter, false)

	if rc := run("get", []string{"--window", "16", "size"}); rc != 0 {
		t.Fatalf("get rc=%d, want 0", rc)
	}
	var got struct {
		Window   string    `json:"window"`
		Property string    `json:"property"`
		Kind     string    `json:"kind"`
		Value    geom.Size `json:"value"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if got.Window != "0x10" || got.Kind != "size" || got.Value != (geom.Size{Width: 400, Height: 300}) {
		t.Fatalf("unexpected output: %+v", got)
	}
}

func TestRunGetErrors(t *testing.T) {
	adapter := &fakeAdapter{}
	_, errOut := withCLI(t, adapter, true)

	cases := []struct {
		args []string
		rc   int
	}{
		{[]string{"--window", "0x10"}, 2},
		{[]string{"--window", "0x10", "diagonal"}, 2},
		{[]string{"left"}, 1},
		{[]string{"--window", "0x99", "left"}, 1},
		{[]string{"--window", "0x10", "--app", "Mail", "left"}, 1},
		{[]string{"--bogus"}, 2},
	}
	for _, tc := range cases {
		if rc := run("get", tc.args); rc != tc.rc {
			t.Fatalf("get %v rc=%d, want %d (stderr: %s)", tc.args, rc, tc.rc, errOut)
		}
	}
	if !strings.Contains(errOut.String(), "not found by fake adapter") {
		t.Fatalf("expected not-found message, got %q", errOut.String())
	}
}

func TestRunSetCenterX(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Left: 0, Top: 0, Width: 100, Height: 50}}
	out, errOut := withCLI(t, adapter, true)

	if rc := run("set", []string{"--window", "0x10", "center_x", "200"}); rc != 0 {
		t.Fatalf("set rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	want := geom.Box{Left: 150, Top: 0, Width: 100, Height: 50}
	if adapter.box != want {
		t.Fatalf("expected %v, got %v", want, adapter.box)
	}
	if got := strings.TrimSpace(out.String()); got != want.String() {
		t.Fatalf("expected %q, got %q", want.String(), got)
	}
}

func TestRunSetNegativeValue(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Left: 0, Top: 0, Width: 100, Height: 50}}
	withCLI(t, adapter, true)

	if rc := run("set", []string{"--window", "0x10", "top_left", "-1920,-20"}); rc != 0 {
		t.Fatalf("set rc=%d, want 0", rc)
	}
	if adapter.box.Left != -1920 || adapter.box.Top != -20 {
		t.Fatalf("expected origin (-1920, -20), got %v", adapter.box)
	}
}

func TestRunSetBadValue(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Width: 1, Height: 1}}
	withCLI(t, adapter, true)

	if rc := run("set", []string{"--window", "0x10", "center", "12"}); rc != 2 {
		t.Fatalf("set rc=%d, want 2", rc)
	}
	if adapter.box != (geom.Box{Width: 1, Height: 1}) {
		t.Fatalf("expected box untouched, got %v", adapter.box)
	}
}

func TestRunProps(t *testing.T) {
	out, _ := withCLI(t, &fakeAdapter{}, true)

	if rc := run("props", nil); rc != 0 {
		t.Fatalf("props rc=%d, want 0", rc)
	}
	text := out.String()
	for _, want := range []string{"PROPERTY", "centerx", "bottomright", "rect"} {
		if !strings.Contains(text, want) {
			t.Fatalf("props output missing %q:\n%s", want, text)
		}
	}
}

func TestRunScreen(t *testing.T) {
	adapter := &fakeAdapter{
		box: geom.Box{Left: 2000, Top: 100, Width: 800, Height: 600},
		screens: []platform.Screen{
			{ID: 0, Name: "eDP-1", Bounds: geom.Box{Width: 1920, Height: 1080}},
			{ID: 1, Name: "HDMI-1", Bounds: geom.Box{Left: 1920, Width: 2560, Height: 1440}},
		},
	}
	out, errOut := withCLI(t, adapter, true)

	if rc := run("screen", []string{"--window", "0x10"}); rc != 0 {
		t.Fatalf("screen rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	if !strings.HasPrefix(out.String(), "HDMI-1 ") {
		t.Fatalf("expected HDMI-1, got %q", out.String())
	}
}

func TestRunPermissions(t *testing.T) {
	adapter := &fakeAdapter{granted: false}
	out, _ := withCLI(t, adapter, true)

	if rc := run("permissions", []string{"--prompt"}); rc != 1 {
		t.Fatalf("permissions rc=%d, want 1", rc)
	}
	if !adapter.prompted {
		t.Fatalf("expected --prompt to activate the dialog")
	}
	if !strings.Contains(out.String(), "missing") {
		t.Fatalf("expected missing message, got %q", out.String())
	}
}

func TestConfigOptionsReachAdapter(t *testing.T) {
	adapter := &fakeAdapter{box: geom.Box{Width: 10, Height: 10}}
	withCLI(t, adapter, true)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("macos:\n  flip: true\nx11:\n  display: \":3\"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rc := run("get", []string{"--config", path, "--window", "0x10", "width"}); rc != 0 {
		t.Fatalf("get rc=%d, want 0", rc)
	}
	if !adapter.opts.Flip || adapter.opts.Display != ":3" {
		t.Fatalf("expected config options on adapter, got %+v", adapter.opts)
	}
}

func TestRunConfig(t *testing.T) {
	out, errOut := withCLI(t, &fakeAdapter{}, true)

	if rc := run("config", []string{"validate"}); rc != 0 {
		t.Fatalf("config validate rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	if rc := run("config", []string{"print", "--defaults"}); rc != 0 {
		t.Fatalf("config print rc=%d, want 0", rc)
	}
	if !strings.Contains(out.String(), "script_timeout: 5s") {
		t.Fatalf("expected defaults in output, got %q", out.String())
	}

	out.Reset()
	if rc := run("config", []string{"path"}); rc != 0 {
		t.Fatalf("config path rc=%d, want 0", rc)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), filepath.Join(".config", "winbox", "config.yaml")) {
		t.Fatalf("unexpected path %q", out.String())
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rc := run("config", []string{"validate", "--path", bad}); rc != 1 {
		t.Fatalf("config validate bad rc=%d, want 1", rc)
	}
	if rc := run("config", []string{"nope"}); rc != 2 {
		t.Fatalf("config nope rc=%d, want 2", rc)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, errOut := withCLI(t, &fakeAdapter{}, true)
	if rc := run("tile", nil); rc != 2 {
		t.Fatalf("rc=%d, want 2", rc)
	}
	if !strings.Contains(errOut.String(), "Unknown command: tile") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}

func TestRunListJSON(t *testing.T) {
	adapter := &fakeAdapter{windows: []platform.WindowInfo{
		{Handle: platform.ID(0x10), ID: "0x10", App: "Gedit", Title: "notes.txt"},
		{Handle: platform.ID(0x11), ID: "0x11", App: "XTerm", Title: "bash"},
	}}
	out, errOut := withCLI(t, adapter, false)

	if rc := run("list", nil); rc != 0 {
		t.Fatalf("list rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	var got []map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v (%s)", err, out)
	}
	if len(got) != 2 || got[1]["app"] != "XTerm" || got[0]["id"] != "0x10" {
		t.Fatalf("unexpected list %v", got)
	}
}

func TestRunNudgePicksWindow(t *testing.T) {
	adapter := &fakeAdapter{
		box: geom.Box{Left: 2000, Top: 100, Width: 800, Height: 600},
		screens: []platform.Screen{
			{ID: 0, Name: "eDP-1", Bounds: geom.Box{Width: 1920, Height: 1080}},
			{ID: 1, Name: "HDMI-1", Bounds: geom.Box{Left: 1920, Width: 2560, Height: 1440}},
		},
		windows: []platform.WindowInfo{{Handle: platform.ID(0x10), ID: "0x10", Title: "notes.txt"}},
	}
	out, errOut := withCLI(t, adapter, true)

	prevPick, prevRun := pickWindow, runNudgeSession
	t.Cleanup(func() { pickWindow, runNudgeSession = prevPick, prevRun })

	var offered []platform.WindowInfo
	pickWindow = func(ws []platform.WindowInfo) (platform.WindowInfo, error) {
		offered = ws
		return ws[0], nil
	}
	runNudgeSession = func(s *nudge.Session, title string) (geom.Box, error) {
		if title != "0x10" {
			t.Errorf("title=%q, want 0x10", title)
		}
		s.Apply(nudge.CenterOnScreen)
		return s.Box(), nil
	}

	if rc := run("nudge", nil); rc != 0 {
		t.Fatalf("nudge rc=%d, want 0 (stderr: %s)", rc, errOut)
	}
	if len(offered) != 1 {
		t.Fatalf("expected the window list to be offered, got %v", offered)
	}
	want := geom.Box{Left: 2800, Top: 420, Width: 800, Height: 600}
	if adapter.box != want {
		t.Fatalf("box=%v, want %v", adapter.box, want)
	}
	if strings.TrimSpace(out.String()) != want.String() {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunNudgeNeedsTerminal(t *testing.T) {
	_, errOut := withCLI(t, &fakeAdapter{}, false)
	if rc := run("nudge", []string{"--window", "0x10"}); rc != 1 {
		t.Fatalf("rc=%d, want 1", rc)
	}
	if !strings.Contains(errOut.String(), "interactive terminal") {
		t.Fatalf("unexpected stderr %q", errOut.String())
	}
}
