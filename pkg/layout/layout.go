package layout

import (
	"cmp"
	"slices"
)

// Default layout constants.
const (
	DefaultOffset       = -30.0 // overlap between collapsed cards
	DefaultGap          = 10.0  // spacing between expanded cards
	DefaultCardHeight   = 68.0
	DefaultSideInset    = 60.0 // horizontal space left around a full-width card
	DefaultDepthShrink  = 20.0 // width lost per depth level when collapsed
	DefaultCollapseLift = 50.0 // extra lift per depth level when collapsed
)

// Constants are the fixed parameters of the stack geometry. They are set
// once when a stack is built and never change afterwards.
type Constants struct {
	Offset       float64
	Gap          float64
	CardHeight   float64
	SideInset    float64
	DepthShrink  float64
	CollapseLift float64
}

// DefaultConstants returns the stock geometry: offset -30, gap 10 and
// 68-pixel cards.
func DefaultConstants() Constants {
	return Constants{
		Offset:       DefaultOffset,
		Gap:          DefaultGap,
		CardHeight:   DefaultCardHeight,
		SideInset:    DefaultSideInset,
		DepthShrink:  DefaultDepthShrink,
		CollapseLift: DefaultCollapseLift,
	}
}

// collapsedStep is the per-level translation of a collapsed card.
func (c Constants) collapsedStep() float64 { return c.Offset - c.CollapseLift }

// Role tells a card apart by its position in the stack.
type Role int

const (
	// Stacked cards sit behind the top card and ignore taps.
	Stacked Role = iota
	// Top is the index-0 card: always painted last and the only tap target.
	Top
)

func (r Role) String() string {
	if r == Top {
		return "top"
	}
	return "stacked"
}

// RoleFor returns the role of the card at index.
func RoleFor(index int) Role {
	if index == 0 {
		return Top
	}
	return Stacked
}

// Roles resolves the roles of an n-card stack.
func Roles(n int) []Role {
	roles := make([]Role, n)
	for i := range roles {
		roles[i] = RoleFor(i)
	}
	return roles
}

// Lerp maps t from [0, 1] onto [from, to]. Values of t outside the unit
// interval extrapolate along the same line.
func Lerp(t, from, to float64) float64 {
	return from + (to-from)*t
}

// Item is the transform of a single card.
type Item struct {
	TranslateY float64
	Width      float64
	StackOrder int
}

// ItemLayout computes the transform of the card at index for the given
// progress and container width.
func ItemLayout(progress float64, index int, role Role, c Constants, containerWidth float64) Item {
	i := float64(index)
	order := -index
	if role == Top {
		order = index
	}
	return Item{
		TranslateY: Lerp(progress, c.collapsedStep()*i, c.Gap*i),
		Width:      Lerp(progress, containerWidth-c.SideInset-c.DepthShrink*i, containerWidth-c.SideInset),
		StackOrder: order,
	}
}

// Container is the transform of the element holding all cards.
type Container struct {
	MarginBottom float64
}

// ContainerLayout computes the container transform for an itemCount-card
// stack.
func ContainerLayout(progress float64, itemCount int, c Constants) Container {
	if itemCount < 1 {
		return Container{}
	}
	n := float64(itemCount - 1)
	return Container{MarginBottom: Lerp(progress, c.collapsedStep()*n, c.Gap*n)}
}

// Placed is a card transform resolved to an absolute rect.
type Placed struct {
	Item
	Index int
	Role  Role
	Rect  Rect
}

// Frame is the full geometry of a stack at one progress value.
type Frame struct {
	Progress     float64
	Width        float64 // container width
	Height       float64 // container extent: natural height plus bottom margin
	MarginBottom float64
	Items        []Placed // paint order: back to front
}

// Compute lays out every card for the given progress. Each card sits at its
// natural column position (index * CardHeight), shifted by its translation
// and centered horizontally in the container.
func Compute(progress float64, roles []Role, c Constants, containerWidth float64) Frame {
	n := len(roles)
	box := ContainerLayout(progress, n, c)
	f := Frame{
		Progress:     progress,
		Width:        containerWidth,
		Height:       float64(n)*c.CardHeight + box.MarginBottom,
		MarginBottom: box.MarginBottom,
		Items:        make([]Placed, n),
	}
	for i, role := range roles {
		it := ItemLayout(progress, i, role, c, containerWidth)
		f.Items[i] = Placed{
			Item:  it,
			Index: i,
			Role:  role,
			Rect: Rect{
				X: (containerWidth - it.Width) / 2,
				Y: float64(i)*c.CardHeight + it.TranslateY,
				W: it.Width,
				H: c.CardHeight,
			},
		}
	}
	slices.SortStableFunc(f.Items, func(a, b Placed) int {
		return cmp.Compare(a.StackOrder, b.StackOrder)
	})
	return f
}

// Item returns the placed card with the given index.
func (f Frame) Item(index int) (Placed, bool) {
	for _, p := range f.Items {
		if p.Index == index {
			return p, true
		}
	}
	return Placed{}, false
}

// HitTest returns the index of the front-most card containing the point.
func (f Frame) HitTest(x, y float64) (int, bool) {
	for i := len(f.Items) - 1; i >= 0; i-- {
		if f.Items[i].Rect.Contains(x, y) {
			return f.Items[i].Index, true
		}
	}
	return -1, false
}

// Extent returns the rect covering every card and the container box.
func (f Frame) Extent() Rect {
	r := Rect{W: f.Width, H: max(f.Height, 0)}
	for _, p := range f.Items {
		r = r.Union(p.Rect)
	}
	return r
}

// Bounds returns the union of the extents of frames. Painters use the
// bounds of the collapsed and expanded frames as a stable canvas so the
// top card does not move while the stack animates.
func Bounds(frames ...Frame) Rect {
	if len(frames) == 0 {
		return Rect{}
	}
	r := frames[0].Extent()
	for _, f := range frames[1:] {
		r = r.Union(f.Extent())
	}
	return r
}
