//go:build darwin && !cgo

package platform

// Without cgo there is no access to AppKit; native windows read as a zero
// box and ignore writes.

func nativeFrame(nativeWindow) cocoaFrame { return cocoaFrame{} }

func nativeScreen(nativeWindow) screenMetrics { return screenMetrics{} }

func setNativeFrame(nativeWindow, cocoaFrame) {}
