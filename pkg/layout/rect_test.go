package layout

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: -20, W: 40, H: 60}

	if got := r.Right(); got != 50 {
		t.Errorf("Right() = %v, want 50", got)
	}
	if got := r.Bottom(); got != 40 {
		t.Errorf("Bottom() = %v, want 40", got)
	}
	if got := r.CenterX(); got != 30 {
		t.Errorf("CenterX() = %v, want 30", got)
	}
	if got := r.CenterY(); got != 10 {
		t.Errorf("CenterY() = %v, want 10", got)
	}
}

func TestRectContains(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		x, y float64
		want bool
	}{
		{"inside", Rect{0, 0, 10, 10}, 5, 5, true},
		{"top-left corner", Rect{0, 0, 10, 10}, 0, 0, true},
		{"right edge exclusive", Rect{0, 0, 10, 10}, 10, 5, false},
		{"bottom edge exclusive", Rect{0, 0, 10, 10}, 5, 10, false},
		{"negative width", Rect{0, 0, -10, 10}, -5, 5, false},
		{"zero height", Rect{0, 0, 10, 0}, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 5}

	want := Rect{X: 0, Y: -5, W: 15, H: 15}
	if got := a.Union(b); got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}
