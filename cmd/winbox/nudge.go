package main

import (
	"errors"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/nudge"
	"github.com/1broseidon/winbox/internal/platform"
)

// pickWindow and runNudgeSession are replaced in tests.
var (
	pickWindow      = nudge.PickWindow
	runNudgeSession = nudge.Run
)

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cmd boxCommand
	cmd.common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox list [--json]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "List top-level windows and their handles.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if err := cmd.connect(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	windows, err := listWindows(cmd.adapter)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if cmd.common.wantJSON() {
		return printJSON(windows)
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAPP\tTITLE")
	for _, w := range windows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", w.ID, w.App, w.Title)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func listWindows(adapter platform.Adapter) ([]platform.WindowInfo, error) {
	lister, ok := adapter.(platform.WindowLister)
	if !ok {
		return nil, fmt.Errorf("window listing is not supported by the %s adapter", adapter.Name())
	}
	return lister.Windows()
}

func runNudge(args []string) int {
	fs := flag.NewFlagSet("nudge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cmd boxCommand
	cmd.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: winbox nudge [--window ID | --app NAME --title TITLE]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Move and resize a window interactively from the keyboard.")
		fmt.Fprintln(stderr, "Without a window flag, choose one from the window list.")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if !stdoutIsTerminal() {
		fmt.Fprintln(stderr, "nudge needs an interactive terminal")
		return 1
	}
	if err := cmd.connect(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var h platform.Handle
	if cmd.target.empty() {
		windows, err := listWindows(cmd.adapter)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		picked, err := pickWindow(windows)
		if errors.Is(err, huh.ErrUserAborted) {
			return 0
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		h = picked.Handle
	} else {
		var err error
		if h, err = cmd.target.handle(); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	c, err := cmd.bind(h)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var screen *geom.Box
	if lister, ok := cmd.adapter.(platform.ScreenLister); ok {
		if screens, err := lister.Screens(); err == nil {
			center := c.Center()
			if s := platform.ScreenAt(screens, center.X, center.Y); s != nil {
				screen = &s.Bounds
			}
		} else {
			cmd.logger.Debug("screen lookup failed", "error", err)
		}
	}

	session := nudge.NewSession(c, screen)
	final, err := runNudgeSession(session, c.Window().String())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintln(stdout, final.String())
	return 0
}
