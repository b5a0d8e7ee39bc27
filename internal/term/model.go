// Package term hosts a session in the terminal with Bubble Tea. Every frame
// message is one paint opportunity for the scheduler.
package term

import (
	"fmt"
	"strings"
	"time"

	"lifeloop/internal/session"
	"lifeloop/internal/widgets"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FrameRate is how often the model offers the scheduler a paint opportunity.
const FrameRate = 60

const sliderWidth = 20

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubble Tea model of a running session.
type Model struct {
	session *session.Session
	canvas  *Canvas
	keys    keyMap
	help    help.Model
	width   int
	height  int
}

// New wraps a session whose renderer is canvas.
func New(s *session.Session, canvas *Canvas) *Model {
	return &Model{session: s, canvas: canvas, keys: defaultKeys(), help: help.New()}
}

// Init starts the frame ticker.
func (m *Model) Init() tea.Cmd { return frameCmd() }

// Update handles frames, keys and mouse clicks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.session.Paint()
		return m, frameCmd()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if row, col, ok := m.canvas.CellAt(msg.X, msg.Y); ok {
			m.session.Toggle(row, col)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	panel := m.session.Panel
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.PlayPause):
		panel.PlayPause.Click()
	case key.Matches(msg, m.keys.Next):
		panel.NextFrame.Click()
	case key.Matches(msg, m.keys.Faster):
		panel.Range.Nudge(1)
	case key.Matches(msg, m.keys.Slower):
		panel.Range.Nudge(-1)
	case key.Matches(msg, m.keys.Max):
		panel.Range.SetValue(widgets.RangeMax)
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset(m.session.Seed())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View draws the canvas with the control panel to its right.
func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.View(), m.panelView())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

var (
	accent     = lipgloss.Color("#7D56F4")
	muted      = lipgloss.Color("#7D7A85")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(accent).
	Padding(0, 1).
	MarginLeft(2)

var buttonStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(muted).
	Padding(0, 1)

func (m *Model) panelView() string {
	p := m.session.Panel
	lines := []string{
		titleStyle.Render(p.Display.Title()),
		p.Display.Target(),
	}
	lines = append(lines, p.Display.Stats()...)
	lines = append(lines,
		"",
		mutedStyle.Render(fmt.Sprintf("Generation %d", m.session.Scheduler.Generation())),
		lipgloss.JoinHorizontal(lipgloss.Center,
			buttonStyle.Render(p.PlayPause.Label()),
			" ",
			buttonStyle.Render(p.NextFrame.Label()),
		),
		"Target FPS " + sliderBar(p.Range.Value()) + " " + p.Range.Label(),
	)
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func sliderBar(value int) string {
	span := widgets.RangeMax - widgets.RangeMin
	filled := (value - widgets.RangeMin) * sliderWidth / span
	if filled < 0 {
		filled = 0
	}
	if filled > sliderWidth {
		filled = sliderWidth
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", sliderWidth-filled) + "]"
}
