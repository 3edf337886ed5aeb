package platform

import (
	"fmt"
	"math"

	"github.com/1broseidon/winbox/internal/geom"
)

// nativeWindow is an in-process NSWindow.
type nativeWindow NSWindow

func (w nativeWindow) String() string { return fmt.Sprintf("NSWindow(0x%x)", uintptr(w)) }

// scriptedWindow is a window of another application reached through
// System Events.
type scriptedWindow AppWindow

func (w scriptedWindow) String() string { return AppWindow(w).String() }

// cocoaFrame is an NSWindow frame in points with Cocoa's bottom-left origin.
type cocoaFrame struct {
	X, Y, W, H float64
}

// screenMetrics describe the screen a native window is on.
type screenMetrics struct {
	Height float64 // points
	Scale  float64 // backingScaleFactor
}

// flipY converts a y coordinate between Cocoa's bottom-left origin and a
// top-left origin. The transform is its own inverse.
func flipY(screenHeight, y, h float64) float64 {
	return screenHeight - (y + h)
}

// frameToBox maps a native frame to a box. The flip happens in points, before
// the optional conversion to backing pixels, so both use one unit.
func frameToBox(f cocoaFrame, s screenMetrics, flip, backing bool) geom.Box {
	if flip {
		f.Y = flipY(s.Height, f.Y, f.H)
	}
	if backing && s.Scale > 0 {
		f = cocoaFrame{X: f.X * s.Scale, Y: f.Y * s.Scale, W: f.W * s.Scale, H: f.H * s.Scale}
	}
	return geom.Box{
		Left:   int(math.Round(f.X)),
		Top:    int(math.Round(f.Y)),
		Width:  int(math.Round(f.W)),
		Height: int(math.Round(f.H)),
	}
}

// boxToFrame is the inverse of frameToBox.
func boxToFrame(b geom.Box, s screenMetrics, flip, backing bool) cocoaFrame {
	f := cocoaFrame{X: float64(b.Left), Y: float64(b.Top), W: float64(b.Width), H: float64(b.Height)}
	if backing && s.Scale > 0 {
		f = cocoaFrame{X: f.X / s.Scale, Y: f.Y / s.Scale, W: f.W / s.Scale, H: f.H / s.Scale}
	}
	if flip {
		f.Y = flipY(s.Height, f.Y, f.H)
	}
	return f
}

// resolveDarwin maps handles accepted on macOS.
func resolveDarwin(h Handle) Window {
	switch v := h.(type) {
	case NSWindow:
		if v == 0 {
			return nil
		}
		return nativeWindow(v)
	case AppWindow:
		if v.App == "" || v.Title == "" {
			return nil
		}
		return scriptedWindow(v)
	}
	return nil
}
