package main

import (
	"flag"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/platform"
	"github.com/1broseidon/winbox/internal/winbox"
)

// windowFlags select the target window.
type windowFlags struct {
	window string
	app    string
	title  string
}

func (w *windowFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&w.window, "window", "", "Window handle: X11 window ID or HWND (0x-prefixed hex, decimal, or bare hex)")
	fs.StringVar(&w.app, "app", "", "Application name (macOS) or WM_CLASS (X11); required on macOS")
	fs.StringVar(&w.title, "title", "", "Window title; on X11 a substring of _NET_WM_NAME")
}

func (w *windowFlags) empty() bool {
	return w.window == "" && w.app == "" && w.title == ""
}

func (w *windowFlags) handle() (platform.Handle, error) {
	switch {
	case w.window != "" && (w.app != "" || w.title != ""):
		return nil, fmt.Errorf("--window cannot be combined with --app/--title")
	case w.window != "":
		return platform.ParseHandle(w.window)
	case w.title != "":
		return platform.AppWindow{App: w.app, Title: w.title}, nil
	}
	return nil, fmt.Errorf("a window is required: --window ID or [--app NAME] --title TITLE")
}

// boxCommand carries what every window command needs once flags are parsed.
type boxCommand struct {
	common  commonFlags
	target  windowFlags
	adapter platform.Adapter
	logger  *slog.Logger
}

func (b *boxCommand) register(fs *flag.FlagSet) {
	b.common.register(fs)
	b.target.register(fs)
}

// connect loads config and builds the adapter.
func (b *boxCommand) connect() error {
	adapter, logger, err := b.common.setup()
	if err != nil {
		return err
	}
	b.adapter, b.logger = adapter, logger
	return nil
}

// controller resolves the window selected by flags.
func (b *boxCommand) controller() (*winbox.Controller, error) {
	h, err := b.target.handle()
	if err != nil {
		return nil, err
	}
	if err := b.connect(); err != nil {
		return nil, err
	}
	return b.bind(h)
}

// bind builds a controller for h. A handle that does not resolve is reported
// instead of silently doing nothing.
func (b *boxCommand) bind(h platform.Handle) (*winbox.Controller, error) {
	c, err := winbox.New(nil, nil,
		winbox.WithHandle(h),
		winbox.WithAdapter(b.adapter),
		winbox.WithLogger(b.logger),
	)
	if err != nil {
		return nil, err
	}
	if c.Window() == nil {
		return nil, fmt.Errorf("%w: %v not found by %s adapter", platform.ErrNoWindow, h, b.adapter.Name())
	}
	return c, nil
}

func runGet(args []string) int {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cmd boxCommand
	cmd.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox get [--window ID | --app NAME --title TITLE] [--json] <property>")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Read one geometry property. Run 'winbox props' for the list.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	name := fs.Arg(0)

	kind, err := winbox.PropertyKind(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	c, err := cmd.controller()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	v, err := c.Get(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if cmd.common.wantJSON() {
		return printJSON(struct {
			Window   string `json:"window"`
			Property string `json:"property"`
			Kind     string `json:"kind"`
			Value    any    `json:"value"`
		}{c.Window().String(), name, kind.String(), v.Any()})
	}
	fmt.Fprintln(stdout, v.String())
	return 0
}

func runSet(args []string) int {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cmd boxCommand
	cmd.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox set [--window ID | --app NAME --title TITLE] [--json] <property> <value>")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Values are comma separated integers: n, x,y, w,h, or l,t,w,h (box) / l,t,r,b (rect).")
		fmt.Fprintln(stderr, "Prints the window box read back after the change.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	name, raw := fs.Arg(0), fs.Arg(1)

	kind, err := winbox.PropertyKind(name)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	v, err := winbox.ParseValue(kind, raw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	c, err := cmd.controller()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := c.Set(name, v); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	box := c.Box()
	if cmd.common.wantJSON() {
		return printJSON(struct {
			Window string   `json:"window"`
			Box    geom.Box `json:"box"`
		}{c.Window().String(), box})
	}
	fmt.Fprintln(stdout, box.String())
	return 0
}

func runProps(args []string) int {
	fs := flag.NewFlagSet("props", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "Print JSON (default when stdout is not a terminal)")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	props := winbox.Properties()
	if *asJSON || !stdoutIsTerminal() {
		type propJSON struct {
			Name string `json:"name"`
			Kind string `json:"kind"`
		}
		out := make([]propJSON, len(props))
		for i, p := range props {
			out[i] = propJSON{Name: p.Name, Kind: p.Kind.String()}
		}
		return printJSON(out)
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PROPERTY\tKIND")
	for _, p := range props {
		fmt.Fprintf(tw, "%s\t%s\n", p.Name, p.Kind)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runScreen(args []string) int {
	fs := flag.NewFlagSet("screen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cmd boxCommand
	cmd.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox screen [--window ID] [--json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Show the screen that contains the window's center point.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	c, err := cmd.controller()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	lister, ok := cmd.adapter.(platform.ScreenLister)
	if !ok {
		fmt.Fprintf(stderr, "screen listing is not supported by the %s adapter\n", cmd.adapter.Name())
		return 1
	}
	screens, err := lister.Screens()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	center := c.Center()
	screen := platform.ScreenAt(screens, center.X, center.Y)
	if screen == nil {
		fmt.Fprintf(stderr, "no screen contains %s\n", center)
		return 1
	}

	if cmd.common.wantJSON() {
		return printJSON(struct {
			Window string          `json:"window"`
			Center geom.Point      `json:"center"`
			Screen platform.Screen `json:"screen"`
		}{c.Window().String(), center, *screen})
	}
	fmt.Fprintf(stdout, "%s %s (center %s)\n", screen.Name, screen.Bounds, center)
	return 0
}
