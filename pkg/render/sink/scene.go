package sink

import (
	"github.com/matzehuels/cardstack/pkg/layout"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// Background is the color behind the cards.
const Background = "#000000"

// CornerRadius is the rounding of card corners in pixels.
const CornerRadius = 10.0

// Scene is one frame of a stack, ready for export.
type Scene struct {
	Frame    layout.Frame
	Views    []stack.ItemView
	Canvas   layout.Rect
	Expanded bool
}

// NewScene captures s at the given progress. Card content follows the
// controller's current state; the canvas covers both resting
// configurations so snapshots of one stack line up with each other.
func NewScene(s *stack.Controller, progress float64) Scene {
	return Scene{
		Frame:    s.FrameAt(progress),
		Views:    s.Views(),
		Canvas:   s.Bounds(),
		Expanded: s.Expanded(),
	}
}

// view returns the presentation of the card at index.
func (sc Scene) view(index int) (stack.ItemView, bool) {
	if index < 0 || index >= len(sc.Views) {
		return stack.ItemView{}, false
	}
	return sc.Views[index], true
}
