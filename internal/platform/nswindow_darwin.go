//go:build darwin && cgo

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit
#import <AppKit/AppKit.h>

typedef struct {
	double x, y, w, h;
} wbFrame;

static void wbOnMain(void (^block)(void)) {
	if ([NSThread isMainThread]) {
		block();
	} else {
		dispatch_sync(dispatch_get_main_queue(), block);
	}
}

static wbFrame wbWindowFrame(void *ptr) {
	__block wbFrame out = {0, 0, 0, 0};
	wbOnMain(^{
		NSRect f = [(NSWindow *)ptr frame];
		out.x = f.origin.x;
		out.y = f.origin.y;
		out.w = f.size.width;
		out.h = f.size.height;
	});
	return out;
}

typedef struct {
	double height, scale;
} wbScreen;

static wbScreen wbWindowScreen(void *ptr) {
	__block wbScreen out = {0, 1};
	wbOnMain(^{
		NSWindow *win = (NSWindow *)ptr;
		NSScreen *screen = [win screen];
		if (screen == nil) {
			screen = [NSScreen mainScreen];
		}
		out.height = [screen frame].size.height;
		out.scale = [win backingScaleFactor];
	});
	return out;
}

static void wbSetWindowFrame(void *ptr, double x, double y, double w, double h) {
	wbOnMain(^{
		[(NSWindow *)ptr setFrame:NSMakeRect(x, y, w, h) display:YES animate:NO];
	});
}
*/
import "C"

import "unsafe"

// nativeFrame reads the frame in points.
func nativeFrame(w nativeWindow) cocoaFrame {
	f := C.wbWindowFrame(unsafe.Pointer(uintptr(w)))
	return cocoaFrame{X: float64(f.x), Y: float64(f.y), W: float64(f.w), H: float64(f.h)}
}

func nativeScreen(w nativeWindow) screenMetrics {
	s := C.wbWindowScreen(unsafe.Pointer(uintptr(w)))
	return screenMetrics{Height: float64(s.height), Scale: float64(s.scale)}
}

func setNativeFrame(w nativeWindow, f cocoaFrame) {
	C.wbSetWindowFrame(
		unsafe.Pointer(uintptr(w)),
		C.double(f.X), C.double(f.Y),
		C.double(f.W), C.double(f.H),
	)
}
