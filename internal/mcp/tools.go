package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winbox/internal/platform"
	"github.com/1broseidon/winbox/internal/winbox"
)

var errNoWindowRef = errors.New("window or title is required")

// resolveHandle builds a handle from the tool's window selector fields.
func resolveHandle(window, app, title string) (platform.Handle, error) {
	window = strings.TrimSpace(window)
	if window != "" {
		if app != "" || title != "" {
			return nil, fmt.Errorf("window cannot be combined with app/title")
		}
		return platform.ParseHandle(window)
	}
	if strings.TrimSpace(title) == "" {
		return nil, errNoWindowRef
	}
	return platform.AppWindow{App: app, Title: title}, nil
}

// controllerFor builds a controller bound to the selected window. Unlike the
// library default, a handle that does not resolve is an error here so the
// caller learns about it.
func (s *Server) controllerFor(window, app, title string) (*winbox.Controller, error) {
	h, err := resolveHandle(window, app, title)
	if err != nil {
		return nil, err
	}
	adapter := s.currentAdapter()
	c, err := winbox.New(nil, nil,
		winbox.WithHandle(h),
		winbox.WithAdapter(adapter),
		winbox.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}
	if c.Window() == nil {
		return nil, fmt.Errorf("%w: %v not found by %s adapter", platform.ErrNoWindow, h, adapter.Name())
	}
	return c, nil
}

func (s *Server) handleGetBoxProperty(_ context.Context, _ *mcpsdk.CallToolRequest, args GetBoxPropertyInput) (*mcpsdk.CallToolResult, GetBoxPropertyOutput, error) {
	kind, err := winbox.PropertyKind(args.Property)
	if err != nil {
		return nil, GetBoxPropertyOutput{}, err
	}
	c, err := s.controllerFor(args.Window, args.App, args.Title)
	if err != nil {
		return nil, GetBoxPropertyOutput{}, err
	}

	v, err := c.Get(args.Property)
	if err != nil {
		return nil, GetBoxPropertyOutput{}, err
	}
	s.logger.Debug("get_box_property", "window", c.Window(), "property", args.Property, "value", v)
	return nil, GetBoxPropertyOutput{
		Property: args.Property,
		Kind:     kind.String(),
		Value:    v.String(),
		Box:      c.Box(),
	}, nil
}

func (s *Server) handleSetBoxProperty(_ context.Context, _ *mcpsdk.CallToolRequest, args SetBoxPropertyInput) (*mcpsdk.CallToolResult, SetBoxPropertyOutput, error) {
	kind, err := winbox.PropertyKind(args.Property)
	if err != nil {
		return nil, SetBoxPropertyOutput{}, err
	}
	v, err := winbox.ParseValue(kind, args.Value)
	if err != nil {
		return nil, SetBoxPropertyOutput{}, fmt.Errorf("invalid value for %s: %w", args.Property, err)
	}
	c, err := s.controllerFor(args.Window, args.App, args.Title)
	if err != nil {
		return nil, SetBoxPropertyOutput{}, err
	}

	if err := c.Set(args.Property, v); err != nil {
		return nil, SetBoxPropertyOutput{}, err
	}
	s.logger.Debug("set_box_property", "window", c.Window(), "property", args.Property, "value", v)
	return nil, SetBoxPropertyOutput{
		Property: args.Property,
		Box:      c.Box(),
	}, nil
}

func (s *Server) handleListBoxProperties(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListBoxPropertiesInput) (*mcpsdk.CallToolResult, ListBoxPropertiesOutput, error) {
	props := winbox.Properties()
	out := ListBoxPropertiesOutput{Properties: make([]PropertyItem, len(props))}
	for i, p := range props {
		out.Properties[i] = PropertyItem{Name: p.Name, Kind: p.Kind.String()}
	}
	return nil, out, nil
}
