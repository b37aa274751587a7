// Package term paints card stack frames onto a terminal cell grid.
//
// Frame geometry is in pixels. A [Painter] maps pixels to cells with a fixed
// cell size, rasterizes cards back to front so front cards overwrite the
// ones behind them, clips everything to its canvas, and finally styles runs
// of equally colored cells with lipgloss.
package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/layout"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// Defaults for the pixel-to-cell mapping.
const (
	DefaultCellWidth  = 5.0
	DefaultCellHeight = 12.0
	DefaultBackground = "#000000"
	badgeBackground   = "#000000"
	textColor         = "#ffffff"
)

// Option configures a [Painter].
type Option func(*Painter)

// WithCellSize sets how many pixels one terminal cell covers.
func WithCellSize(w, h float64) Option {
	return func(p *Painter) {
		if w > 0 {
			p.cellW = w
		}
		if h > 0 {
			p.cellH = h
		}
	}
}

// WithBackground sets the color behind the cards.
func WithBackground(hex string) Option {
	return func(p *Painter) { p.background = hex }
}

// Painter converts frames to styled terminal text.
type Painter struct {
	canvas     layout.Rect
	cellW      float64
	cellH      float64
	background string
	styles     map[cell]lipgloss.Style
}

// New returns a painter whose canvas covers the given pixel rect.
func New(canvas layout.Rect, opts ...Option) *Painter {
	p := &Painter{
		canvas:     canvas,
		cellW:      DefaultCellWidth,
		cellH:      DefaultCellHeight,
		background: DefaultBackground,
		styles:     make(map[cell]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetCanvas moves or resizes the painted area.
func (p *Painter) SetCanvas(r layout.Rect) { p.canvas = r }

// Canvas returns the painted area in pixels.
func (p *Painter) Canvas() layout.Rect { return p.canvas }

// Size returns the grid size in cells.
func (p *Painter) Size() (cols, rows int) {
	return int(math.Ceil(p.canvas.W / p.cellW)), int(math.Ceil(p.canvas.H / p.cellH))
}

// CellSize returns how many pixels one cell covers.
func (p *Painter) CellSize() (w, h float64) { return p.cellW, p.cellH }

// Rows returns how many cell rows are needed to show everything above the
// frame coordinate y, clamped to the grid.
func (p *Painter) Rows(y float64) int {
	_, total := p.Size()
	n := int(math.Ceil((y - p.canvas.Y) / p.cellH))
	return min(max(n, 0), total)
}

// ToFrame maps the center of a cell to frame coordinates.
func (p *Painter) ToFrame(col, row int) (x, y float64) {
	return p.canvas.X + (float64(col)+0.5)*p.cellW, p.canvas.Y + (float64(row)+0.5)*p.cellH
}

// ToCell maps a frame coordinate to the cell containing it.
func (p *Painter) ToCell(x, y float64) (col, row int) {
	return int(math.Floor((x - p.canvas.X) / p.cellW)), int(math.Floor((y - p.canvas.Y) / p.cellH))
}

type cell struct {
	ch   string
	bg   string
	fg   string
	bold bool
}

type grid struct {
	cols, rows int
	cells      [][]cell
}

func (g *grid) set(col, row int, c cell) {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return
	}
	g.cells[row][col] = c
}

// rasterize paints the frame into a fresh grid.
func (p *Painter) rasterize(f layout.Frame, views []stack.ItemView) *grid {
	cols, rows := p.Size()
	g := &grid{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]cell, cols)
		for c := range g.cells[r] {
			g.cells[r][c] = cell{ch: " ", bg: p.background}
		}
	}

	for _, it := range f.Items {
		if it.Index < 0 || it.Index >= len(views) {
			continue
		}
		p.paintCard(g, it.Rect, views[it.Index])
	}
	return g
}

func (p *Painter) paintCard(g *grid, r layout.Rect, v stack.ItemView) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	c0 := int(math.Round((r.X - p.canvas.X) / p.cellW))
	c1 := int(math.Round((r.Right() - p.canvas.X) / p.cellW))
	r0 := int(math.Round((r.Y - p.canvas.Y) / p.cellH))
	r1 := int(math.Round((r.Bottom() - p.canvas.Y) / p.cellH))
	if c1 <= c0 || r1 <= r0 {
		return
	}

	shell := cell{ch: " ", bg: v.Background}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			g.set(col, row, shell)
		}
	}
	if v.Content != stack.ContentRow {
		return
	}

	// Icon badge, title and chevron on the middle row, padded by two cells.
	row := r0 + (r1-r0-1)/2
	left, right := c0+2, c1-2
	badge := cell{bg: badgeBackground, fg: textColor}
	text := cell{bg: v.Background, fg: textColor}

	col := left
	for _, s := range []string{" ", v.Glyph, " "} {
		if col >= right {
			return
		}
		badge.ch = s
		g.set(col, row, badge)
		col++
	}
	col++

	// Keep one cell free before the chevron.
	titleEnd := right - 2
	for _, rn := range v.Title {
		if col >= titleEnd {
			break
		}
		text.ch = string(rn)
		g.set(col, row, text)
		col++
	}

	if right-1 > left+3 {
		text.ch = cards.Chevron
		text.bold = true
		g.set(right-1, row, text)
	}
}

// Paint renders the frame as lines of styled text, one per cell row.
func (p *Painter) Paint(f layout.Frame, views []stack.ItemView) string {
	g := p.rasterize(f, views)
	lines := make([]string, g.rows)
	for r, row := range g.cells {
		var b strings.Builder
		start := 0
		for c := 1; c <= len(row); c++ {
			if c < len(row) && sameStyle(row[c], row[start]) {
				continue
			}
			b.WriteString(p.style(row[start]).Render(runText(row[start:c])))
			start = c
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Plain renders the frame without styling; used for snapshots and tests.
func (p *Painter) Plain(f layout.Frame, views []stack.ItemView) []string {
	g := p.rasterize(f, views)
	lines := make([]string, g.rows)
	for r, row := range g.cells {
		lines[r] = runText(row)
	}
	return lines
}

// Backgrounds returns the background color of every cell, row by row.
func (p *Painter) Backgrounds(f layout.Frame, views []stack.ItemView) [][]string {
	g := p.rasterize(f, views)
	out := make([][]string, g.rows)
	for r, row := range g.cells {
		out[r] = make([]string, len(row))
		for c, cl := range row {
			out[r][c] = cl.bg
		}
	}
	return out
}

func (p *Painter) style(c cell) lipgloss.Style {
	key := cell{bg: c.bg, fg: c.fg, bold: c.bold}
	if s, ok := p.styles[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(c.bg))
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bold {
		s = s.Bold(true)
	}
	p.styles[key] = s
	return s
}

func sameStyle(a, b cell) bool {
	return a.bg == b.bg && a.fg == b.fg && a.bold == b.bold
}

func runText(cells []cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c.ch)
	}
	return b.String()
}
