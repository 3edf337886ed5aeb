package platform

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/1broseidon/winbox/internal/geom"
)

//go:generate mockgen -source=adapter.go -destination=mocks/mock_adapter.go -package=mock_platform

var (
	// ErrUnsupported is returned by adapters on hosts with no window system support.
	ErrUnsupported = errors.New("platform: window control not supported on this OS")
	// ErrNoWindow is returned when an operation receives a nil or foreign window reference.
	ErrNoWindow = errors.New("platform: no window")
)

// Window is an adapter-resolved window reference. Only the adapter that
// produced it knows how to use it.
type Window interface {
	String() string
}

// Adapter abstracts window geometry access for one window system.
type Adapter interface {
	// Name identifies the adapter ("win32", "x11", "darwin", ...).
	Name() string
	// Resolve turns a caller handle into a window reference. It returns nil
	// when the handle kind is not understood by this adapter or is malformed.
	Resolve(h Handle) Window
	// Query returns the current outer box of the window in screen coordinates.
	Query(w Window) (geom.Box, error)
	// Set moves and resizes the window in one request.
	Set(w Window, b geom.Box) error
}

// Screen is a physical display as reported by the window system.
type Screen struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Bounds geom.Box `json:"bounds"`
}

// ScreenLister is implemented by adapters that can enumerate displays.
type ScreenLister interface {
	Screens() ([]Screen, error)
}

// WindowInfo describes a top-level window offered for selection.
type WindowInfo struct {
	Handle Handle `json:"-"`
	ID     string `json:"id"`
	App    string `json:"app"`
	Title  string `json:"title"`
}

// WindowLister is implemented by adapters that can enumerate top-level windows.
type WindowLister interface {
	Windows() ([]WindowInfo, error)
}

// ScreenAt returns the first screen containing (x, y), or nil.
func ScreenAt(screens []Screen, x, y int) *Screen {
	for i := range screens {
		if geom.PointInBox(x, y, screens[i].Bounds) {
			return &screens[i]
		}
	}
	return nil
}

// PermissionChecker is implemented by adapters gated by an OS permission.
type PermissionChecker interface {
	CheckPermissions(activate bool) bool
}

// Options tune adapter behavior. Fields that do not apply to the host
// adapter are ignored.
type Options struct {
	// Flip converts native macOS bottom-left origin coordinates to a
	// top-left origin on read, and back on write.
	Flip bool
	// Backing reports native macOS frames in physical pixels.
	Backing bool
	// PromptPermission shows the macOS accessibility dialog (once per
	// process) when scripting permission is missing.
	PromptPermission bool
	// ScriptTimeout bounds each osascript invocation.
	ScriptTimeout time.Duration
	// Display overrides $DISPLAY for the X11 adapter.
	Display string

	Logger *slog.Logger
}

const DefaultScriptTimeout = 5 * time.Second

// DefaultOptions returns the options used by Default.
func DefaultOptions() Options {
	return Options{
		PromptPermission: true,
		ScriptTimeout:    DefaultScriptTimeout,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// New builds the adapter for the host operating system.
func New(opts Options) Adapter {
	if opts.ScriptTimeout <= 0 {
		opts.ScriptTimeout = DefaultScriptTimeout
	}
	return newHostAdapter(opts)
}

var (
	defaultOnce    sync.Once
	defaultAdapter Adapter
)

// Default returns the process-wide host adapter, built on first use.
func Default() Adapter {
	defaultOnce.Do(func() {
		defaultAdapter = New(DefaultOptions())
	})
	return defaultAdapter
}
