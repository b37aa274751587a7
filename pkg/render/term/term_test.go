package term

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/stack"
)

func newPainter(s *stack.Controller) *Painter {
	return New(s.Bounds())
}

func countContaining(lines []string, sub string) int {
	n := 0
	for _, l := range lines {
		if strings.Contains(l, sub) {
			n++
		}
	}
	return n
}

func TestSize(t *testing.T) {
	s := stack.New(cards.Default())
	cols, rows := newPainter(s).Size()
	if cols != 80 || rows != 36 {
		t.Errorf("Size() = (%d, %d), want (80, 36)", cols, rows)
	}
}

func TestCollapsedShowsOnlyTopTitle(t *testing.T) {
	s := stack.New(cards.Default())
	lines := newPainter(s).Plain(s.Frame(), s.Views())

	if got := countContaining(lines, "HEADER"); got != 1 {
		t.Errorf("HEADER appears on %d rows, want 1", got)
	}
	for _, title := range []string{"CHARTS", "BOOK", "CALENDAR", "CAMERA"} {
		if countContaining(lines, title) != 0 {
			t.Errorf("collapsed stack shows %s", title)
		}
	}
	if countContaining(lines, cards.Chevron) != 1 {
		t.Error("collapsed stack should show one chevron")
	}
}

func TestExpandedShowsAllTitles(t *testing.T) {
	s := stack.New(cards.Default())
	s.Tap(0)
	s.Settle()

	lines := newPainter(s).Plain(s.Frame(), s.Views())
	for _, title := range []string{"HEADER", "CHARTS", "BOOK", "CALENDAR", "CAMERA"} {
		if got := countContaining(lines, title); got != 1 {
			t.Errorf("%s appears on %d rows, want 1", title, got)
		}
	}
}

func TestCollapsedPeekingEdges(t *testing.T) {
	s := stack.New(cards.Default())
	p := newPainter(s)
	bgs := p.Backgrounds(s.Frame(), s.Views())

	// Each deeper card peeks out one row above the one in front of it.
	want := []string{"#606060", "#585858", "#505050", "#484848", "#404040"}
	for row, color := range want {
		if got := bgs[row][40]; got != color {
			t.Errorf("row %d center = %s, want %s", row, got, color)
		}
	}
	// Deeper cards are narrower.
	if got := bgs[0][8]; got != DefaultBackground {
		t.Errorf("deepest card reaches column 8: %s", got)
	}
	if got := bgs[4][8]; got != "#404040" {
		t.Errorf("top card at column 8 = %s, want #404040", got)
	}
}

func TestExpandedUsesUniformBackground(t *testing.T) {
	s := stack.New(cards.Default())
	s.Tap(0)
	s.Settle()

	p := newPainter(s)
	bgs := p.Backgrounds(s.Frame(), s.Views())
	for i := 0; i < 5; i++ {
		it, _ := s.Frame().Item(i)
		col, row := p.ToCell(it.Rect.CenterX(), it.Rect.CenterY())
		if got := bgs[row][col]; got != cards.ExpandedBackground {
			t.Errorf("card %d background = %s, want %s", i, got, cards.ExpandedBackground)
		}
	}
}

func TestOvershootIsClipped(t *testing.T) {
	s := stack.New(cards.Default())
	p := newPainter(s)
	cols, rows := p.Size()

	lines := p.Plain(s.FrameAt(1.3), s.Views())
	if len(lines) != rows {
		t.Fatalf("got %d rows, want %d", len(lines), rows)
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != cols {
			t.Errorf("row %d has %d cells, want %d", i, n, cols)
		}
	}

	// Negative widths paint nothing.
	lines = p.Plain(s.FrameAt(-20), s.Views())
	if countContaining(lines, "HEADER") != 1 {
		t.Error("top card should still paint at strong undershoot")
	}
}

func TestCellMapping(t *testing.T) {
	s := stack.New(cards.Default())
	p := newPainter(s)

	x, y := p.ToFrame(40, 8)
	col, row := p.ToCell(x, y)
	if col != 40 || row != 8 {
		t.Errorf("ToCell(ToFrame(40, 8)) = (%d, %d)", col, row)
	}

	// Row 8 lies inside the collapsed top card.
	if idx, ok := s.HitTest(x, y); !ok || idx != 0 {
		t.Errorf("HitTest at row 8 = (%d, %v), want top card", idx, ok)
	}
}

func TestPaintContainsTitles(t *testing.T) {
	s := stack.New(cards.Default())
	out := newPainter(s).Paint(s.Frame(), s.Views())

	if !strings.Contains(out, "HEADER") {
		t.Error("Paint() output missing HEADER")
	}
	if got := strings.Count(out, "\n") + 1; got != 36 {
		t.Errorf("Paint() produced %d lines, want 36", got)
	}
}

func TestRows(t *testing.T) {
	s := stack.New(cards.Default())
	p := newPainter(s)

	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"collapsed extent", s.FrameAt(0).Extent().Bottom(), 10},
		{"expanded extent", s.FrameAt(1).Extent().Bottom(), 36},
		{"above canvas", -100, 0},
		{"below canvas", 1000, 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Rows(tt.y); got != tt.want {
				t.Errorf("Rows(%v) = %d, want %d", tt.y, got, tt.want)
			}
		})
	}
}
