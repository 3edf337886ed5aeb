package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Client is a managed top-level window from the EWMH client list.
type Client struct {
	ID       xproto.Window
	Name     string
	Instance string
	Class    string
}

// matches reports whether the client has title in its name and, when app is
// set, an instance or class equal to app ignoring case.
func (ci Client) matches(app, title string) bool {
	if title == "" || !strings.Contains(ci.Name, title) {
		return false
	}
	if app == "" {
		return true
	}
	return strings.EqualFold(ci.Instance, app) || strings.EqualFold(ci.Class, app)
}

func (c *Connection) client(win xproto.Window) Client {
	ci := Client{ID: win}
	if name, err := ewmh.WmNameGet(c.XUtil, win); err == nil && name != "" {
		ci.Name = name
	} else if name, err := icccm.WmNameGet(c.XUtil, win); err == nil {
		ci.Name = name
	}
	if wc, err := icccm.WmClassGet(c.XUtil, win); err == nil && wc != nil {
		ci.Instance, ci.Class = wc.Instance, wc.Class
	}
	return ci
}

// Clients lists the windows managed by the window manager in mapping order.
func (c *Connection) Clients() ([]Client, error) {
	wins, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	clients := make([]Client, 0, len(wins))
	for _, win := range wins {
		clients = append(clients, c.client(win))
	}
	return clients, nil
}

// FindWindow returns the first client whose title contains title and whose
// WM_CLASS matches app (when app is set).
func (c *Connection) FindWindow(app, title string) (xproto.Window, error) {
	clients, err := c.Clients()
	if err != nil {
		return 0, err
	}
	for _, cl := range clients {
		if cl.matches(app, title) {
			return cl.ID, nil
		}
	}
	return 0, fmt.Errorf("no window of %q with title containing %q", app, title)
}
