package mcp

import "github.com/1broseidon/winbox/internal/geom"

// GetBoxPropertyInput is the input for the get_box_property tool.
type GetBoxPropertyInput struct {
	Window   string `json:"window,omitempty" jsonschema:"Native window handle: 0x-prefixed hex, decimal, or bare hex (X11 window ID or Win32 HWND)"`
	App      string `json:"app,omitempty" jsonschema:"Application name (macOS, required there) or WM_CLASS (X11); used with title instead of window"`
	Title    string `json:"title,omitempty" jsonschema:"Window title; on X11 a substring match of _NET_WM_NAME"`
	Property string `json:"property" jsonschema:"required,Property name, e.g. left, center_x, bottom_right, size, box (see list_box_properties)"`
}

// GetBoxPropertyOutput is the output for the get_box_property tool.
type GetBoxPropertyOutput struct {
	Property string   `json:"property"`
	Kind     string   `json:"kind"`
	Value    string   `json:"value"`
	Box      geom.Box `json:"box"`
}

// SetBoxPropertyInput is the input for the set_box_property tool.
type SetBoxPropertyInput struct {
	Window   string `json:"window,omitempty" jsonschema:"Native window handle: 0x-prefixed hex, decimal, or bare hex (X11 window ID or Win32 HWND)"`
	App      string `json:"app,omitempty" jsonschema:"Application name (macOS, required there) or WM_CLASS (X11); used with title instead of window"`
	Title    string `json:"title,omitempty" jsonschema:"Window title; on X11 a substring match of _NET_WM_NAME"`
	Property string `json:"property" jsonschema:"required,Property name to write"`
	Value    string `json:"value" jsonschema:"required,Comma separated integers: n for edges and centers, x,y for points, w,h for size, l,t,w,h for box, l,t,r,b for rect"`
}

// SetBoxPropertyOutput is the output for the set_box_property tool.
type SetBoxPropertyOutput struct {
	Property string `json:"property"`
	// Box is read back after the write and reflects any window manager
	// constraints.
	Box geom.Box `json:"box"`
}

// ListBoxPropertiesInput is the input for the list_box_properties tool.
type ListBoxPropertiesInput struct{}

// PropertyItem describes one settable property.
type PropertyItem struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// ListBoxPropertiesOutput is the output for the list_box_properties tool.
type ListBoxPropertiesOutput struct {
	Properties []PropertyItem `json:"properties"`
}
