package nudge

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winbox/internal/geom"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(10).
			Align(lipgloss.Right)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			PaddingLeft(1)
	changedStyle = valueStyle.
			Foreground(lipgloss.Color("226"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// model is the bubbletea model for a nudge session.
type model struct {
	session *Session
	title   string
	box     geom.Box
	width   int
}

func newModel(s *Session, title string) model {
	return model{session: s, title: title, box: s.Original()}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a := ActionForKey(msg.String())
		switch a {
		case Quit:
			return m, tea.Quit
		case ActionNone:
			return m, nil
		}
		m.session.Apply(a)
		m.box = m.session.Box()
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	orig := m.session.Original()
	r, or := m.box.Rect(), orig.Rect()

	row := func(label string, v, was int) string {
		style := valueStyle
		if v != was {
			style = changedStyle
		}
		return labelStyle.Render(label) + style.Render(fmt.Sprintf("%d", v))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(row("left", m.box.Left, orig.Left) + "\n")
	b.WriteString(row("top", m.box.Top, orig.Top) + "\n")
	b.WriteString(row("width", m.box.Width, orig.Width) + "\n")
	b.WriteString(row("height", m.box.Height, orig.Height) + "\n")
	b.WriteString(row("right", r.Right, or.Right) + "\n")
	b.WriteString(row("bottom", r.Bottom, or.Bottom) + "\n")
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("step") + valueStyle.Render(fmt.Sprintf("%dpx", m.session.Step())))
	b.WriteString("\n\n")

	help := "arrows/hjkl move  shift+arrows/HJKL resize  c center  -/+ step  u revert  q quit"
	if m.width > 0 {
		help = lipgloss.NewStyle().Width(m.width).Render(help)
	}
	b.WriteString(dimStyle.Render(help))
	return b.String()
}

// Run opens the interactive session on the terminal and returns the final
// box once the user quits.
func Run(s *Session, title string) (geom.Box, error) {
	final, err := tea.NewProgram(newModel(s, title), tea.WithAltScreen()).Run()
	if err != nil {
		return geom.Box{}, fmt.Errorf("nudge: %w", err)
	}
	return final.(model).box, nil
}
