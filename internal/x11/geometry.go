package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winbox/internal/geom"
)

// Extents are decoration sizes around (or inside) a window, in the
// _NET_FRAME_EXTENTS order.
type Extents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// tree is the subset of the X protocol needed to place a window on screen.
type tree interface {
	geometry(win xproto.Window) (geom.Box, error)
	parent(win xproto.Window) (xproto.Window, error)
}

type xtree struct {
	c *Connection
}

func (t xtree) geometry(win xproto.Window) (geom.Box, error) {
	g, err := xproto.GetGeometry(t.c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return geom.Box{}, err
	}
	return geom.Box{
		Left:   int(g.X),
		Top:    int(g.Y),
		Width:  int(g.Width),
		Height: int(g.Height),
	}, nil
}

func (t xtree) parent(win xproto.Window) (xproto.Window, error) {
	reply, err := xproto.QueryTree(t.c.XUtil.Conn(), win).Reply()
	if err != nil {
		return 0, err
	}
	return reply.Parent, nil
}

// absoluteGeometry returns win's geometry in root coordinates. X reports
// positions relative to the immediate parent, so every ancestor's offset is
// added until the walk reaches the root.
func absoluteGeometry(t tree, root, win xproto.Window) (geom.Box, error) {
	box, err := t.geometry(win)
	if err != nil {
		return geom.Box{}, fmt.Errorf("failed to get geometry of 0x%x: %w", win, err)
	}

	cur := win
	for {
		p, err := t.parent(cur)
		if err != nil || p == 0 || p == root {
			break
		}
		pg, err := t.geometry(p)
		if err != nil {
			break
		}
		box.Left += pg.Left
		box.Top += pg.Top
		cur = p
	}
	return box, nil
}

// Reconcile folds window manager decorations into a raw geometry.
// _NET_FRAME_EXTENTS describe a border outside the window, so the box grows.
// _GTK_FRAME_EXTENTS describe client-side shadows inside it, so the box
// shrinks. EWMH wins when both are set; with neither the raw box is used.
func Reconcile(raw geom.Box, netExtents, gtkExtents *Extents) geom.Box {
	switch {
	case netExtents != nil:
		e := netExtents
		return geom.Box{
			Left:   raw.Left - e.Left,
			Top:    raw.Top - e.Top,
			Width:  raw.Width + e.Left + e.Right,
			Height: raw.Height + e.Top + e.Bottom,
		}
	case gtkExtents != nil:
		e := gtkExtents
		return geom.Box{
			Left:   raw.Left + e.Left,
			Top:    raw.Top + e.Top,
			Width:  raw.Width - (e.Left + e.Right),
			Height: raw.Height - (e.Top + e.Bottom),
		}
	}
	return raw
}

// ClientGeometry is the inverse of Reconcile: it maps a visible box back to
// the geometry the X window itself must take.
func ClientGeometry(b geom.Box, netExtents, gtkExtents *Extents) geom.Box {
	switch {
	case netExtents != nil:
		e := netExtents
		return geom.Box{
			Left:   b.Left + e.Left,
			Top:    b.Top + e.Top,
			Width:  b.Width - (e.Left + e.Right),
			Height: b.Height - (e.Top + e.Bottom),
		}
	case gtkExtents != nil:
		e := gtkExtents
		return geom.Box{
			Left:   b.Left - e.Left,
			Top:    b.Top - e.Top,
			Width:  b.Width + e.Left + e.Right,
			Height: b.Height + e.Top + e.Bottom,
		}
	}
	return b
}

// clampOrigin keeps the requested origin on screen; the X server rejects
// negative window positions for move requests issued on behalf of the user.
func clampOrigin(b geom.Box) geom.Box {
	b.Left = max(0, b.Left)
	b.Top = max(0, b.Top)
	return b
}
