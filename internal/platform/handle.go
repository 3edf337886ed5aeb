package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgbutil/xwindow"
)

// Handle is a caller-supplied window identity. The concrete types below
// form a closed set; each adapter accepts the subset that makes sense on its
// platform.
type Handle interface {
	handle()
}

// ID is a numeric window identifier: a Win32 HWND or an X11 resource id.
type ID uint64

// HexID is a window identifier in hexadecimal text, as some UI toolkits
// print an HWND. A leading "0x" is optional.
type HexID string

// XWindow wraps an existing xgbutil window object.
type XWindow struct {
	Win *xwindow.Window
}

// NSWindow is a pointer to an NSWindow owned by this process.
type NSWindow uintptr

// AppWindow names a window of another macOS application by application
// process name and window title.
type AppWindow struct {
	App   string
	Title string
}

func (ID) handle()        {}
func (HexID) handle()     {}
func (XWindow) handle()   {}
func (NSWindow) handle()  {}
func (AppWindow) handle() {}

func (id ID) String() string { return fmt.Sprintf("0x%x", uint64(id)) }

func (a AppWindow) String() string { return fmt.Sprintf("%s/%q", a.App, a.Title) }

// value parses the text base 16, with or without a 0x prefix.
func (h HexID) value() (uint64, bool) {
	s := strings.TrimSpace(string(h))
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseHandle parses the handle forms accepted on the command line: decimal or
// 0x-prefixed numbers become ID, other hexadecimal text becomes HexID.
// Zero-padded digits ("0000000000120456", as toolkits print native window
// ids) are hexadecimal, never decimal.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty window handle")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid window handle %q: %w", s, err)
		}
		return ID(v), nil
	}
	zeroPadded := len(s) > 1 && s[0] == '0'
	if !zeroPadded {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return ID(v), nil
		}
	}
	if _, ok := HexID(s).value(); ok {
		return HexID(s), nil
	}
	return nil, fmt.Errorf("invalid window handle %q", s)
}
