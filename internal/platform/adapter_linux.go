//go:build linux

package platform

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/x11"
)

// LinuxAdapter drives X11 windows through EWMH hints.
type LinuxAdapter struct {
	display string
	logger  *slog.Logger

	once    sync.Once
	conn    *x11.Connection
	connErr error
}

var (
	_ Adapter      = (*LinuxAdapter)(nil)
	_ ScreenLister = (*LinuxAdapter)(nil)
	_ WindowLister = (*LinuxAdapter)(nil)
)

// x11Window is a resolved X11 window.
type x11Window struct {
	win *xwindow.Window
}

func (w x11Window) String() string { return fmt.Sprintf("0x%x", uint32(w.win.Id)) }

func newHostAdapter(opts Options) Adapter {
	return NewLinuxAdapter(opts.Display, opts.logger())
}

// NewLinuxAdapter creates an adapter that connects to display (or $DISPLAY)
// on first use.
func NewLinuxAdapter(display string, logger *slog.Logger) *LinuxAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinuxAdapter{display: display, logger: logger}
}

// NewLinuxAdapterFromConnection wraps an existing X11 connection.
func NewLinuxAdapterFromConnection(conn *x11.Connection, logger *slog.Logger) *LinuxAdapter {
	a := NewLinuxAdapter("", logger)
	a.once.Do(func() {
		a.conn = conn
		if conn != nil && conn.Logger == nil {
			conn.Logger = a.logger
		}
	})
	return a
}

// Disconnect closes the underlying X11 connection.
func (a *LinuxAdapter) Disconnect() {
	if a != nil && a.conn != nil {
		a.conn.Close()
	}
}

func (a *LinuxAdapter) Name() string { return "x11" }

// Resolve accepts raw resource ids, existing xgbutil windows, and
// app/title pairs looked up in the client list.
func (a *LinuxAdapter) Resolve(h Handle) Window {
	switch v := h.(type) {
	case ID:
		return a.resolveID(v)
	case HexID:
		n, ok := v.value()
		if !ok {
			return nil
		}
		return a.resolveID(ID(n))
	case AppWindow:
		if v.Title == "" {
			return nil
		}
		conn, err := a.connection()
		if err != nil {
			a.logger.Warn("x11: cannot resolve window", "app", v.App, "title", v.Title, "err", err)
			return nil
		}
		id, err := conn.FindWindow(v.App, v.Title)
		if err != nil {
			a.logger.Debug("x11: window lookup failed", "err", err)
			return nil
		}
		return x11Window{win: conn.Window(id)}
	case XWindow:
		if v.Win == nil {
			return nil
		}
		return x11Window{win: v.Win}
	}
	return nil
}

func (a *LinuxAdapter) resolveID(id ID) Window {
	conn, err := a.connection()
	if err != nil {
		a.logger.Warn("x11: cannot resolve window", "id", id, "err", err)
		return nil
	}
	return x11Window{win: conn.Window(xproto.Window(id))}
}

// Query returns the decorated window box in root coordinates.
func (a *LinuxAdapter) Query(w Window) (geom.Box, error) {
	xw, ok := w.(x11Window)
	if !ok {
		return geom.Box{}, ErrNoWindow
	}
	conn, err := a.connection()
	if err != nil {
		return geom.Box{}, err
	}
	return conn.WindowBox(xw.win.Id)
}

// Set moves and resizes the window as a user-initiated action.
func (a *LinuxAdapter) Set(w Window, b geom.Box) error {
	xw, ok := w.(x11Window)
	if !ok {
		return ErrNoWindow
	}
	conn, err := a.connection()
	if err != nil {
		return err
	}
	return conn.MoveResizeWindow(xw.win.Id, b)
}

// Screens lists RandR monitors.
func (a *LinuxAdapter) Screens() ([]Screen, error) {
	conn, err := a.connection()
	if err != nil {
		return nil, err
	}
	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	screens := make([]Screen, 0, len(monitors))
	for _, m := range monitors {
		screens = append(screens, Screen{ID: m.ID, Name: m.Name, Bounds: m.Bounds})
	}
	return screens, nil
}

// Windows lists EWMH managed clients. App is the WM_CLASS class name.
func (a *LinuxAdapter) Windows() ([]WindowInfo, error) {
	conn, err := a.connection()
	if err != nil {
		return nil, err
	}
	clients, err := conn.Clients()
	if err != nil {
		return nil, err
	}
	out := make([]WindowInfo, 0, len(clients))
	for _, c := range clients {
		id := ID(c.ID)
		out = append(out, WindowInfo{Handle: id, ID: id.String(), App: c.Class, Title: c.Name})
	}
	return out, nil
}

func (a *LinuxAdapter) connection() (*x11.Connection, error) {
	a.once.Do(func() {
		a.conn, a.connErr = x11.NewConnection(a.display)
		if a.connErr != nil {
			a.connErr = fmt.Errorf("failed to connect to X11: %w", a.connErr)
			return
		}
		a.conn.Logger = a.logger
	})
	if a.conn == nil && a.connErr == nil {
		return nil, fmt.Errorf("x11 connection is nil")
	}
	return a.conn, a.connErr
}
