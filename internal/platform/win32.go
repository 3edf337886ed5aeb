package platform

import (
	"fmt"
	"image"

	"github.com/1broseidon/winbox/internal/geom"
)

// hwnd is a resolved Win32 window handle.
type hwnd uintptr

func (h hwnd) String() string { return fmt.Sprintf("0x%x", uintptr(h)) }

// dpiAwarenessUnaware is DPI_AWARENESS_UNAWARE.
const dpiAwarenessUnaware = 0

// processSystemDPIAware is PROCESS_SYSTEM_DPI_AWARE, the least intrusive
// setting for a process that was unaware.
const processSystemDPIAware = 1

// resolveWin32 maps a handle to an HWND. Numeric ids are taken verbatim;
// hexadecimal text is parsed base 16.
func resolveWin32(h Handle) (hwnd, bool) {
	switch v := h.(type) {
	case ID:
		return hwnd(v), true
	case HexID:
		n, ok := v.value()
		if !ok {
			return 0, false
		}
		return hwnd(n), true
	}
	return 0, false
}

// boxFromWindowRect converts the corners returned by GetWindowRect.
func boxFromWindowRect(left, top, right, bottom int32) geom.Box {
	return geom.Rect{
		Left:   int(left),
		Top:    int(top),
		Right:  int(right),
		Bottom: int(bottom),
	}.Box()
}

// needsDPIAwareness reports whether the process must opt in to DPI
// awareness. Hosts without GetAwarenessFromDpiAwarenessContext (Windows
// Server) count as unaware.
func needsDPIAwareness(awareness int, supported bool) bool {
	if !supported {
		return true
	}
	return awareness == dpiAwarenessUnaware
}

// displayScreens builds the screen list from n display rectangles in
// virtual-screen coordinates.
func displayScreens(n int, bounds func(int) image.Rectangle) []Screen {
	screens := make([]Screen, 0, n)
	for i := range n {
		r := bounds(i)
		screens = append(screens, Screen{
			ID:   i,
			Name: fmt.Sprintf("DISPLAY%d", i+1),
			Bounds: geom.Rect{
				Left:   r.Min.X,
				Top:    r.Min.Y,
				Right:  r.Max.X,
				Bottom: r.Max.Y,
			}.Box(),
		})
	}
	return screens
}
