// Package stack implements the collapsible card stack controller.
//
// A [Controller] owns the expanded/collapsed toggle, the spring that
// animates the stack between its two configurations, and the decision of
// what each card shows. It has no knowledge of terminals or image formats:
// callers read a [layout.Frame] for geometry and an [ItemView] per card for
// content, then paint them however they like.
//
// The state machine has two states, Collapsed (initial) and Expanded. A tap
// on the top card flips between them; taps anywhere else are ignored.
package stack

import (
	"github.com/matzehuels/cardstack/pkg/anim"
	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/layout"
)

// DefaultContainerWidth is the container width used when none is given.
const DefaultContainerWidth = 400.0

// State is the toggle state of a stack.
type State struct {
	Expanded bool
}

// Target returns the progress value the stack animates toward in s.
func (s State) Target() float64 {
	if s.Expanded {
		return 1
	}
	return 0
}

func (s State) String() string {
	if s.Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Option configures a [Controller].
type Option func(*Controller)

// WithConstants overrides the layout constants.
func WithConstants(c layout.Constants) Option {
	return func(s *Controller) { s.consts = c }
}

// WithContainerWidth sets the width the cards are laid out in.
func WithContainerWidth(w float64) Option {
	return func(s *Controller) {
		if w > 0 {
			s.width = w
		}
	}
}

// WithDriver supplies the spring driver. It is reset to rest at 0.
func WithDriver(d *anim.Driver) Option {
	return func(s *Controller) { s.driver = d }
}

// WithObserver registers callbacks for state changes.
func WithObserver(o Observer) Option {
	return func(s *Controller) {
		if o != nil {
			s.observer = o
		}
	}
}

// Observer is notified of controller events.
type Observer interface {
	// OnToggle is called after a tap flips the state.
	OnToggle(s State)
	// OnSettle is called when a transition comes to rest.
	OnSettle(s State, frames int)
}

type noopObserver struct{}

func (noopObserver) OnToggle(State)      {}
func (noopObserver) OnSettle(State, int) {}

// Controller is the stateful card stack. It is not safe for concurrent use.
type Controller struct {
	deck     []cards.Spec
	roles    []layout.Role
	consts   layout.Constants
	width    float64
	driver   *anim.Driver
	observer Observer

	state  State
	frames int // frames stepped in the current transition
}

// New builds a collapsed controller over deck. The deck is copied and
// normalized; its length is fixed for the controller's lifetime.
func New(deck []cards.Spec, opts ...Option) *Controller {
	s := &Controller{
		deck:     cards.NormalizeAll(deck),
		roles:    layout.Roles(len(deck)),
		consts:   layout.DefaultConstants(),
		width:    DefaultContainerWidth,
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.driver == nil {
		s.driver = anim.NewDriver()
	} else {
		s.driver.SetTarget(0)
		s.driver.Snap()
	}
	return s
}

// Len returns the number of cards.
func (s *Controller) Len() int { return len(s.deck) }

// Cards returns a copy of the normalized deck.
func (s *Controller) Cards() []cards.Spec {
	out := make([]cards.Spec, len(s.deck))
	copy(out, s.deck)
	return out
}

// Role returns the role of the card at index.
func (s *Controller) Role(index int) layout.Role { return s.roles[index] }

// Constants returns the layout constants.
func (s *Controller) Constants() layout.Constants { return s.consts }

// ContainerWidth returns the width the cards are laid out in.
func (s *Controller) ContainerWidth() float64 { return s.width }

// SetContainerWidth changes the layout width, e.g. after a window resize.
// Non-positive widths are ignored.
func (s *Controller) SetContainerWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

// State returns the current toggle state.
func (s *Controller) State() State { return s.state }

// Expanded reports whether the stack is expanded.
func (s *Controller) Expanded() bool { return s.state.Expanded }

// Progress returns the live progress value.
func (s *Controller) Progress() float64 { return s.driver.Value() }

// Target returns the progress value currently being animated toward.
func (s *Controller) Target() float64 { return s.driver.Target() }

// Animating reports whether a transition is in flight.
func (s *Controller) Animating() bool { return s.driver.Active() }

// Driver exposes the spring driver, mainly so callers can subscribe to it.
func (s *Controller) Driver() *anim.Driver { return s.driver }

// Tap handles a tap on the card at index. Only the top card toggles the
// stack; it reports whether the state changed.
func (s *Controller) Tap(index int) bool {
	if index < 0 || index >= len(s.roles) || s.roles[index] != layout.Top {
		return false
	}
	s.Toggle()
	return true
}

// Toggle flips the state and redirects the spring to the new target.
func (s *Controller) Toggle() {
	s.state.Expanded = !s.state.Expanded
	s.frames = 0
	s.driver.SetTarget(s.state.Target())
	s.observer.OnToggle(s.state)
}

// Step advances the animation by one frame and reports whether it is still
// running.
func (s *Controller) Step() bool {
	if !s.driver.Active() {
		return false
	}
	s.frames++
	_, active := s.driver.Step()
	if !active {
		s.observer.OnSettle(s.state, s.frames)
		s.frames = 0
	}
	return active
}

// Settle ends any running transition at its target.
func (s *Controller) Settle() {
	wasActive := s.driver.Active()
	s.driver.Snap()
	if wasActive {
		s.observer.OnSettle(s.state, s.frames)
		s.frames = 0
	}
}

// Frame returns the geometry at the live progress.
func (s *Controller) Frame() layout.Frame {
	return s.FrameAt(s.driver.Value())
}

// FrameAt returns the geometry at an arbitrary progress.
func (s *Controller) FrameAt(progress float64) layout.Frame {
	return layout.Compute(progress, s.roles, s.consts, s.width)
}

// Bounds returns the rect covering both resting configurations.
func (s *Controller) Bounds() layout.Rect {
	return layout.Bounds(s.FrameAt(0), s.FrameAt(1))
}

// HitTest maps a point in frame coordinates to the front-most card under it.
func (s *Controller) HitTest(x, y float64) (int, bool) {
	return s.Frame().HitTest(x, y)
}
