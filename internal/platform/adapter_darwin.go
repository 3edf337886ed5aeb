//go:build darwin

package platform

import (
	"github.com/1broseidon/winbox/internal/geom"
)

// DarwinAdapter drives in-process NSWindows directly and foreign windows
// through AppleScript.
type DarwinAdapter struct {
	flip    bool
	backing bool
	bridge  *scriptBridge
}

var (
	_ Adapter           = (*DarwinAdapter)(nil)
	_ PermissionChecker = (*DarwinAdapter)(nil)
)

func newHostAdapter(opts Options) Adapter {
	return NewDarwinAdapter(opts, Osascript{})
}

// NewDarwinAdapter creates the macOS adapter. runner executes the
// AppleScript used for foreign windows.
func NewDarwinAdapter(opts Options, runner ScriptRunner) *DarwinAdapter {
	return &DarwinAdapter{
		flip:    opts.Flip,
		backing: opts.Backing,
		bridge:  newScriptBridge(runner, opts),
	}
}

func (a *DarwinAdapter) Name() string { return "darwin" }

// Resolve accepts NSWindow and AppWindow handles.
func (a *DarwinAdapter) Resolve(h Handle) Window {
	return resolveDarwin(h)
}

// Query returns the window frame. Foreign windows report a zero box when
// scripting is not permitted.
func (a *DarwinAdapter) Query(w Window) (geom.Box, error) {
	switch v := w.(type) {
	case nativeWindow:
		return frameToBox(nativeFrame(v), nativeScreen(v), a.flip, a.backing), nil
	case scriptedWindow:
		return a.bridge.query(AppWindow(v)), nil
	}
	return geom.Box{}, ErrNoWindow
}

// Set applies a new frame. The flip must mirror Query or the window drifts.
func (a *DarwinAdapter) Set(w Window, b geom.Box) error {
	switch v := w.(type) {
	case nativeWindow:
		setNativeFrame(v, boxToFrame(b, nativeScreen(v), a.flip, a.backing))
		return nil
	case scriptedWindow:
		return a.bridge.set(AppWindow(v), b)
	}
	return ErrNoWindow
}

// CheckPermissions reports whether UI scripting is enabled for this
// process, optionally prompting the user.
func (a *DarwinAdapter) CheckPermissions(activate bool) bool {
	return a.bridge.checkPermissions(activate)
}
