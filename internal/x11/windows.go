package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/winbox/internal/geom"
)

// sourcePager marks a request as coming from a pager or direct user
// action, which window managers honor without focus-stealing checks.
const sourcePager = 2

// WindowBox returns the visible box of a window: absolute position from the
// window tree, adjusted by whatever frame extents the window advertises.
func (c *Connection) WindowBox(windowID xproto.Window) (geom.Box, error) {
	raw, err := absoluteGeometry(xtree{c: c}, c.Root, windowID)
	if err != nil {
		return geom.Box{}, err
	}
	netExtents, gtkExtents := c.FrameExtents(windowID)
	return Reconcile(raw, netExtents, gtkExtents), nil
}

// mover is the part of the X server a move-resize talks to.
type mover interface {
	frameExtents(win xproto.Window) (netExtents, gtkExtents *Extents)
	unmaximize(win xproto.Window)
	moveresize(win xproto.Window, b geom.Box, gravity, source int) error
	configure(win xproto.Window, b geom.Box)
}

type xmover struct {
	c *Connection
}

func (m xmover) frameExtents(win xproto.Window) (*Extents, *Extents) {
	return m.c.FrameExtents(win)
}

func (m xmover) unmaximize(win xproto.Window) {
	m.c.unmaximizeWindow(win)
}

func (m xmover) moveresize(win xproto.Window, b geom.Box, gravity, source int) error {
	return ewmh.MoveresizeWindowExtra(m.c.XUtil, win, b.Left, b.Top, b.Width, b.Height, gravity, source, true, true)
}

func (m xmover) configure(win xproto.Window, b geom.Box) {
	xwindow.New(m.c.XUtil, win).MoveResize(b.Left, b.Top, b.Width, b.Height)
}

// MoveResizeWindow places a window so that its visible box matches b.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, b geom.Box) error {
	return moveResize(xmover{c: c}, c.logger(), windowID, b)
}

// moveResize clamps the visible origin on screen, converts to client
// geometry and asks the window manager to place the client with static
// gravity. A configure request is sent when the EWMH message fails.
func moveResize(m mover, logger *slog.Logger, win xproto.Window, b geom.Box) error {
	// Maximized windows ignore move requests on most window managers.
	m.unmaximize(win)

	netExtents, gtkExtents := m.frameExtents(win)
	target := ClientGeometry(clampOrigin(b), netExtents, gtkExtents)

	if err := m.moveresize(win, target, int(xproto.GravityStatic), sourcePager); err != nil {
		logger.Debug("x11: _NET_MOVERESIZE_WINDOW failed, configuring directly",
			"window", fmt.Sprintf("0x%x", uint32(win)), "err", err)
		m.configure(win, target)
	}
	return nil
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state)
		}
	}
}

// FrameExtents returns the _NET_FRAME_EXTENTS and _GTK_FRAME_EXTENTS hints
// of a window. Either is nil when the window does not set it.
func (c *Connection) FrameExtents(windowID xproto.Window) (netExtents, gtkExtents *Extents) {
	if ext, err := ewmh.FrameExtentsGet(c.XUtil, windowID); err == nil && ext != nil {
		netExtents = &Extents{
			Left:   ext.Left,
			Right:  ext.Right,
			Top:    ext.Top,
			Bottom: ext.Bottom,
		}
	}

	vals, err := xprop.PropValNums(xprop.GetProperty(c.XUtil, windowID, "_GTK_FRAME_EXTENTS"))
	if err == nil && len(vals) >= 4 {
		gtkExtents = &Extents{
			Left:   int(vals[0]),
			Right:  int(vals[1]),
			Top:    int(vals[2]),
			Bottom: int(vals[3]),
		}
	}
	return netExtents, gtkExtents
}

// Window returns an xgbutil wrapper for the given resource id.
func (c *Connection) Window(windowID xproto.Window) *xwindow.Window {
	return xwindow.New(c.XUtil, windowID)
}
