package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/1broseidon/winbox/internal/geom"
)

// ScriptRunner executes an AppleScript program with positional arguments
// and returns its standard output.
type ScriptRunner interface {
	Run(ctx context.Context, script string, args ...string) (string, error)
}

// Osascript runs scripts through /usr/bin/osascript, feeding the program on
// stdin.
type Osascript struct{}

func (Osascript) Run(ctx context.Context, script string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "osascript", append([]string{"-"}, args...)...)
	cmd.Stdin = strings.NewReader(script)
	out, err := cmd.Output()
	if err != nil {
		return string(out), fmt.Errorf("osascript: %w", err)
	}
	return string(out), nil
}

const permissionScript = `tell application "System Events"
	set UI_enabled to UI elements enabled
end tell
return UI_enabled`

const permissionPromptScript = `tell application "System Events"
	set UI_enabled to UI elements enabled
end tell
if UI_enabled is false then
	display dialog "This program requires Accessibility permissions" & return & return & "Enable it in System Settings > Privacy & Security > Accessibility" with icon 1 buttons {"Ok"} default button 1
	tell application "System Preferences"
		activate
		set current pane to pane id "com.apple.preference.security"
	end tell
end if
return UI_enabled`

const queryBoundsScript = `on run {arg1, arg2}
	set procName to arg1
	set winName to arg2
	set appBounds to {{0, 0}, {0, 0}}
	try
		tell application "System Events" to tell application process procName
			set appBounds to {position, size} of window winName
		end tell
	end try
	return appBounds
end run`

const setBoundsScript = `on run {arg1, arg2, arg3, arg4, arg5, arg6}
	set appName to arg1 as string
	set winName to arg2 as string
	set posX to arg3 as integer
	set posY to arg4 as integer
	set sizeW to arg5 as integer
	set sizeH to arg6 as integer
	try
		tell application "System Events" to tell application process appName
			set position of window winName to {posX, posY}
			set size of window winName to {sizeW, sizeH}
		end tell
	end try
end run`

// scriptBridge controls windows of other applications through System
// Events. Title matching is plain equality; with several windows sharing a
// title, System Events picks one.
type scriptBridge struct {
	runner  ScriptRunner
	timeout time.Duration
	prompt  bool
	logger  *slog.Logger

	promptOnce sync.Once
}

func newScriptBridge(runner ScriptRunner, opts Options) *scriptBridge {
	timeout := opts.ScriptTimeout
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}
	return &scriptBridge{
		runner:  runner,
		timeout: timeout,
		prompt:  opts.PromptPermission,
		logger:  opts.logger(),
	}
}

func (s *scriptBridge) run(script string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.runner.Run(ctx, script, args...)
}

// checkPermissions reports whether UI scripting is enabled. With activate
// set and permission missing, it also shows a dialog and opens the security
// preferences.
func (s *scriptBridge) checkPermissions(activate bool) bool {
	script := permissionScript
	if activate {
		script = permissionPromptScript
	}
	out, err := s.run(script)
	if err != nil {
		s.logger.Debug("applescript: permission check failed", "err", err)
		return false
	}
	return strings.TrimSpace(strings.ReplaceAll(out, "\n", "")) == "true"
}

// permitted gates every scripted operation. The interactive prompt is shown
// at most once per bridge.
func (s *scriptBridge) permitted() bool {
	if s.checkPermissions(false) {
		return true
	}
	granted := false
	if s.prompt {
		s.promptOnce.Do(func() {
			granted = s.checkPermissions(true)
		})
	}
	if !granted {
		s.logger.Warn("applescript: accessibility permission not granted")
	}
	return granted
}

func (s *scriptBridge) query(w AppWindow) geom.Box {
	if w.App == "" || w.Title == "" || !s.permitted() {
		return geom.Box{}
	}
	out, err := s.run(queryBoundsScript, w.App, w.Title)
	if err != nil {
		s.logger.Debug("applescript: query failed", "window", w, "err", err)
		return geom.Box{}
	}
	return parseScriptBounds(out)
}

func (s *scriptBridge) set(w AppWindow, b geom.Box) error {
	if w.App == "" || w.Title == "" || !s.permitted() {
		return nil
	}
	_, err := s.run(setBoundsScript,
		w.App, w.Title,
		strconv.Itoa(b.Left), strconv.Itoa(b.Top),
		strconv.Itoa(b.Width), strconv.Itoa(b.Height),
	)
	if err != nil {
		return fmt.Errorf("set bounds of %s: %w", w, err)
	}
	return nil
}

// parseScriptBounds parses the "x, y, w, h" list printed by osascript.
// Anything else yields a zero box.
func parseScriptBounds(out string) geom.Box {
	fields := strings.Split(strings.TrimSpace(strings.ReplaceAll(out, "\n", "")), ",")
	if len(fields) != 4 {
		return geom.Box{}
	}
	var v [4]int
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.Box{}
		}
		v[i] = n
	}
	return geom.Box{Left: v[0], Top: v[1], Width: v[2], Height: v[3]}
}
