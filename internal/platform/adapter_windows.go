//go:build windows

package platform

import (
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/kbinani/screenshot"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/winbox/internal/geom"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procGetWindowRect                       = user32.NewProc("GetWindowRect")
	procMoveWindow                          = user32.NewProc("MoveWindow")
	procGetThreadDpiAwarenessContext        = user32.NewProc("GetThreadDpiAwarenessContext")
	procGetAwarenessFromDpiAwarenessContext = user32.NewProc("GetAwarenessFromDpiAwarenessContext")
	procSetProcessDpiAwareness              = shcore.NewProc("SetProcessDpiAwareness")
)

// SetProcessDpiAwareness fails if called a second time in a process.
var dpiOnce sync.Once

// Win32Adapter drives windows through GetWindowRect and MoveWindow.
type Win32Adapter struct {
	logger *slog.Logger
}

var (
	_ Adapter      = (*Win32Adapter)(nil)
	_ ScreenLister = (*Win32Adapter)(nil)
)

func newHostAdapter(opts Options) Adapter {
	return NewWin32Adapter(opts.logger())
}

// NewWin32Adapter creates the Windows adapter and makes the process DPI
// aware if its thread is not.
func NewWin32Adapter(logger *slog.Logger) *Win32Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	dpiOnce.Do(func() { ensureDPIAwareness(logger) })
	return &Win32Adapter{logger: logger}
}

func ensureDPIAwareness(logger *slog.Logger) {
	awareness, supported := threadDPIAwareness()
	if !needsDPIAwareness(awareness, supported) {
		return
	}
	if err := procSetProcessDpiAwareness.Find(); err != nil {
		logger.Debug("dpi: SetProcessDpiAwareness unavailable", "err", err)
		return
	}
	hr, _, _ := procSetProcessDpiAwareness.Call(uintptr(processSystemDPIAware))
	if hr != 0 {
		logger.Debug("dpi: SetProcessDpiAwareness failed", "hresult", fmt.Sprintf("0x%x", hr))
	}
}

func threadDPIAwareness() (int, bool) {
	if procGetThreadDpiAwarenessContext.Find() != nil || procGetAwarenessFromDpiAwarenessContext.Find() != nil {
		return dpiAwarenessUnaware, false
	}
	ctx, _, _ := procGetThreadDpiAwarenessContext.Call()
	awareness, _, _ := procGetAwarenessFromDpiAwarenessContext.Call(ctx)
	return int(int32(awareness)), true
}

func (a *Win32Adapter) Name() string { return "win32" }

// Resolve accepts ID and HexID handles.
func (a *Win32Adapter) Resolve(h Handle) Window {
	hw, ok := resolveWin32(h)
	if !ok {
		return nil
	}
	return hw
}

// Query returns the window rectangle in screen coordinates.
func (a *Win32Adapter) Query(w Window) (geom.Box, error) {
	hw, ok := w.(hwnd)
	if !ok {
		return geom.Box{}, ErrNoWindow
	}
	var r windows.Rect
	ret, _, err := procGetWindowRect.Call(uintptr(hw), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return geom.Box{}, fmt.Errorf("GetWindowRect %s: %w", hw, err)
	}
	return boxFromWindowRect(r.Left, r.Top, r.Right, r.Bottom), nil
}

// Set moves and resizes the window and always repaints it.
func (a *Win32Adapter) Set(w Window, b geom.Box) error {
	hw, ok := w.(hwnd)
	if !ok {
		return ErrNoWindow
	}
	const repaint = 1
	ret, _, err := procMoveWindow.Call(
		uintptr(hw),
		uintptr(int32(b.Left)),
		uintptr(int32(b.Top)),
		uintptr(int32(b.Width)),
		uintptr(int32(b.Height)),
		repaint,
	)
	if ret == 0 {
		return fmt.Errorf("MoveWindow %s: %w", hw, err)
	}
	return nil
}

// Screens lists active displays.
func (a *Win32Adapter) Screens() ([]Screen, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, fmt.Errorf("win32: no active displays")
	}
	return displayScreens(n, screenshot.GetDisplayBounds), nil
}
