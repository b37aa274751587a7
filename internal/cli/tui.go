package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cardstack/pkg/observability"
	"github.com/matzehuels/cardstack/pkg/render/term"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// =============================================================================
// StackModel - Interactive card stack
// =============================================================================

// frameMsg advances the animation by one frame.
type frameMsg time.Time

// StackModel is the bubbletea model for the interactive stack. The stack
// controller is shared between copies of the model; Update is the only
// place it is stepped.
type StackModel struct {
	ctx     context.Context
	stack   *stack.Controller
	painter *term.Painter
	keys    keyMap
	help    help.Model

	// fixedWidth keeps the container width from --width across resizes.
	fixedWidth bool
	// ticking is set while a frame tick is scheduled.
	ticking bool
}

// NewStackModel creates a model painting s with p. When fixedWidth is false
// the container follows the terminal width.
func NewStackModel(ctx context.Context, s *stack.Controller, p *term.Painter, fixedWidth bool) StackModel {
	return StackModel{
		ctx:        ctx,
		stack:      s,
		painter:    p,
		keys:       newKeyMap(),
		help:       help.New(),
		fixedWidth: fixedWidth,
	}
}

func (m StackModel) Init() tea.Cmd {
	return nil
}

func (m StackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.tap(0)
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, y := m.painter.ToFrame(msg.X, msg.Y)
		index, ok := m.stack.HitTest(x, y)
		if !ok {
			return m, nil
		}
		return m.tap(index)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if !m.fixedWidth {
			cellW, _ := m.painter.CellSize()
			m.stack.SetContainerWidth(float64(msg.Width) * cellW)
			m.painter.SetCanvas(m.stack.Bounds())
			loggerFromContext(m.ctx).Debug("Resized", "cols", msg.Width, "width", m.stack.ContainerWidth())
		}
	case frameMsg:
		if m.stack.Step() {
			return m, m.tick()
		}
		m.ticking = false
	}
	return m, nil
}

// tap routes a tap to the controller and starts the frame loop if needed.
func (m StackModel) tap(index int) (tea.Model, tea.Cmd) {
	if !m.stack.Tap(index) {
		observability.Stack().OnIgnoredTap(m.ctx, index)
		return m, nil
	}
	if m.ticking || !m.stack.Animating() {
		return m, nil
	}
	m.ticking = true
	return m, m.tick()
}

func (m StackModel) tick() tea.Cmd {
	interval := time.Second / time.Duration(m.stack.Driver().FPS())
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m StackModel) View() string {
	f := m.stack.Frame()
	lines := strings.Split(m.painter.Paint(f, m.stack.Views()), "\n")

	// The footer follows the container, so it moves with the animation.
	lines = lines[:m.painter.Rows(f.Extent().Bottom())]

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// status renders the state and the live progress value.
func (m StackModel) status() string {
	p := m.stack.Progress()
	value := StyleNumber.Render(fmt.Sprintf("%.3f", p))
	if p < 0 || p > 1 {
		value = StyleWarning.Render(fmt.Sprintf("%.3f", p))
	}
	return StyleDim.Render(m.stack.State().String()+iconDot+"progress ") + value
}
