package nudge

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/winbox/internal/platform"
)

// ErrNoWindows is returned by PickWindow when there is nothing to choose.
var ErrNoWindows = errors.New("nudge: no windows to choose from")

func windowLabel(w platform.WindowInfo) string {
	title := w.Title
	if title == "" {
		title = "(untitled)"
	}
	if w.App == "" {
		return fmt.Sprintf("%s  %s", w.ID, title)
	}
	return fmt.Sprintf("%s  [%s] %s", w.ID, w.App, title)
}

// PickWindow asks the user to choose one of windows.
func PickWindow(windows []platform.WindowInfo) (platform.WindowInfo, error) {
	if len(windows) == 0 {
		return platform.WindowInfo{}, ErrNoWindows
	}

	opts := make([]huh.Option[int], len(windows))
	for i, w := range windows {
		opts[i] = huh.NewOption(windowLabel(w), i)
	}

	var idx int
	err := huh.NewSelect[int]().
		Title("Window to nudge").
		Options(opts...).
		Value(&idx).
		Run()
	if err != nil {
		return platform.WindowInfo{}, err
	}
	return windows[idx], nil
}
