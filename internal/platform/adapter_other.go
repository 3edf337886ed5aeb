//go:build !linux && !windows && !darwin

package platform

import "github.com/1broseidon/winbox/internal/geom"

// unsupportedAdapter is used on hosts without a known window system.
type unsupportedAdapter struct{}

func newHostAdapter(Options) Adapter { return unsupportedAdapter{} }

func (unsupportedAdapter) Name() string { return "unsupported" }

func (unsupportedAdapter) Resolve(Handle) Window { return nil }

func (unsupportedAdapter) Query(Window) (geom.Box, error) { return geom.Box{}, ErrUnsupported }

func (unsupportedAdapter) Set(Window, geom.Box) error { return ErrUnsupported }
