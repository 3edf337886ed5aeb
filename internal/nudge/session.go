// Package nudge moves and resizes one window from the keyboard.
package nudge

import (
	"github.com/1broseidon/winbox/internal/geom"
	"github.com/1broseidon/winbox/internal/winbox"
)

// Action is one keyboard command.
type Action int

const (
	ActionNone Action = iota
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	GrowWidth
	ShrinkWidth
	GrowHeight
	ShrinkHeight
	CenterOnScreen
	FinerStep
	CoarserStep
	Revert
	Quit
)

var keymap = map[string]Action{
	"left": MoveLeft, "h": MoveLeft,
	"right": MoveRight, "l": MoveRight,
	"up": MoveUp, "k": MoveUp,
	"down": MoveDown, "j": MoveDown,
	"shift+right": GrowWidth, "L": GrowWidth,
	"shift+left": ShrinkWidth, "H": ShrinkWidth,
	"shift+down": GrowHeight, "J": GrowHeight,
	"shift+up": ShrinkHeight, "K": ShrinkHeight,
	"c": CenterOnScreen,
	"-": FinerStep,
	"+": CoarserStep, "=": CoarserStep,
	"u": Revert,
	"q": Quit, "esc": Quit, "enter": Quit, "ctrl+c": Quit,
}

// ActionForKey maps a key name as reported by bubbletea to an action.
func ActionForKey(key string) Action {
	return keymap[key]
}

// Steps are the selectable move/resize increments in pixels.
var Steps = []int{1, 10, 50, 100}

const defaultStep = 1 // 10px

// Session applies actions to one window.
type Session struct {
	ctrl     *winbox.Controller
	screen   *geom.Box
	original geom.Box
	step     int
}

// NewSession reads the starting box so Revert can restore it. screen may be
// nil, which disables CenterOnScreen.
func NewSession(c *winbox.Controller, screen *geom.Box) *Session {
	return &Session{
		ctrl:     c,
		screen:   screen,
		original: c.Box(),
		step:     defaultStep,
	}
}

// Step returns the current increment in pixels.
func (s *Session) Step() int { return Steps[s.step] }

// Original returns the box the session started from.
func (s *Session) Original() geom.Box { return s.original }

// Box reads the current window box.
func (s *Session) Box() geom.Box { return s.ctrl.Box() }

// Apply performs a.
func (s *Session) Apply(a Action) {
	step := s.Step()
	switch a {
	case MoveLeft:
		s.ctrl.SetLeft(s.ctrl.Left() - step)
	case MoveRight:
		s.ctrl.SetLeft(s.ctrl.Left() + step)
	case MoveUp:
		s.ctrl.SetTop(s.ctrl.Top() - step)
	case MoveDown:
		s.ctrl.SetTop(s.ctrl.Top() + step)
	case GrowWidth:
		s.ctrl.SetWidth(s.ctrl.Width() + step)
	case ShrinkWidth:
		s.ctrl.SetWidth(max(1, s.ctrl.Width()-step))
	case GrowHeight:
		s.ctrl.SetHeight(s.ctrl.Height() + step)
	case ShrinkHeight:
		s.ctrl.SetHeight(max(1, s.ctrl.Height()-step))
	case CenterOnScreen:
		if s.screen != nil {
			s.ctrl.SetCenter(geom.Point{
				X: s.screen.Left + s.screen.Width/2,
				Y: s.screen.Top + s.screen.Height/2,
			})
		}
	case FinerStep:
		s.step = max(0, s.step-1)
	case CoarserStep:
		s.step = min(len(Steps)-1, s.step+1)
	case Revert:
		s.ctrl.SetBox(s.original)
	}
}
