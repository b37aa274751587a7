package layout

// Rect is an axis-aligned box in screen coordinates (y grows downward).
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive. Rects with non-positive size contain nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
