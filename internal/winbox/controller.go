// Package winbox exposes a window (or any rectangular area) as a set of
// derived geometry properties. Reads refresh the box through a query
// function; writes compute a new box and hand it to a set function.
package winbox

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/platform"
)

// ErrMissingCallbacks is returned by New when no handle is given and the
// query or set function is nil.
var ErrMissingCallbacks = errors.New("winbox: query and set functions are required without a window handle")

// QueryFunc returns the current box of the managed area.
type QueryFunc func() geom.Box

// SetFunc applies a new box to the managed area.
type SetFunc func(geom.Box)

// Option configures a Controller.
type Option func(*Controller)

// WithHandle attaches a window handle. Nil query or set functions passed to
// New then fall back to the adapter.
func WithHandle(h platform.Handle) Option {
	return func(c *Controller) { c.handle = h }
}

// WithAdapter overrides the host adapter used to resolve and drive the handle.
func WithAdapter(a platform.Adapter) Option {
	return func(c *Controller) { c.adapter = a }
}

// WithLogger sets the logger for absorbed adapter failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns a cached box and the functions that read and write it.
// Methods are safe for concurrent use; each call is one query and at most
// one set.
type Controller struct {
	mu  sync.Mutex
	box geom.Box

	query QueryFunc
	set   SetFunc

	handle  platform.Handle
	window  platform.Window
	adapter platform.Adapter
	logger  *slog.Logger
}

// New creates a Controller. Without WithHandle both query and set are
// required. With a handle, either may be nil to use the adapter.
func New(query QueryFunc, set SetFunc, opts ...Option) (*Controller, error) {
	c := &Controller{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.handle == nil {
		if query == nil || set == nil {
			return nil, ErrMissingCallbacks
		}
		c.query, c.set = query, set
		return c, nil
	}

	if c.adapter == nil {
		c.adapter = platform.Default()
	}
	c.window = c.adapter.Resolve(c.handle)
	if c.window == nil {
		c.logger.Warn("winbox: window handle did not resolve; default query and set are no-ops",
			"adapter", c.adapter.Name(), "handle", fmt.Sprintf("%#v", c.handle))
	}

	c.query = query
	if c.query == nil {
		c.query = c.defaultQuery
	}
	c.set = set
	if c.set == nil {
		c.set = c.defaultSet
	}
	return c, nil
}

// Window returns the resolved window, or nil.
func (c *Controller) Window() platform.Window {
	return c.window
}

// defaultQuery reads the window through the adapter. Failures keep the last
// known box.
func (c *Controller) defaultQuery() geom.Box {
	if c.window == nil {
		return c.box
	}
	b, err := c.adapter.Query(c.window)
	if err != nil {
		c.logger.Debug("winbox: query failed", "window", c.window, "err", err)
		return c.box
	}
	return b
}

func (c *Controller) defaultSet(b geom.Box) {
	if c.window == nil {
		return
	}
	if err := c.adapter.Set(c.window, b); err != nil {
		c.logger.Debug("winbox: set failed", "window", c.window, "box", b, "err", err)
	}
}

// read refreshes the cached box. Callers hold mu.
func (c *Controller) read() geom.Box {
	c.box = c.query()
	return c.box
}

// write stores b and hands it to the set function. Callers hold mu.
func (c *Controller) write(b geom.Box) {
	c.box = b
	c.set(b)
}

// get refreshes the box and projects a value from it.
func get[T any](c *Controller, project func(geom.Box) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return project(c.read())
}

// update refreshes the box, derives the new one and writes it.
func (c *Controller) update(derive func(geom.Box) geom.Box) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.write(derive(c.read()))
}

// String formats the cached box without querying.
func (c *Controller) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.box.String()
}

// GoString formats the cached box as a constructor-like expression.
func (c *Controller) GoString() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("Controller(left=%d, top=%d, width=%d, height=%d)",
		c.box.Left, c.box.Top, c.box.Width, c.box.Height)
}

// half is floor division by two, so negative extents round the same way
// as positive ones.
func half(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}
