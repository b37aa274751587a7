// Package cards defines the content of the cards in a stack.
//
// A [Spec] carries only presentational data: an icon name, a title and a
// background color. Specs coming from configuration may be incomplete, so
// [Normalize] fills in placeholders instead of failing; a missing title must
// never take the screen down.
package cards

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Placeholder values used by [Normalize].
const (
	PlaceholderTitle = "—"
	PlaceholderColor = "#505050"
	PlaceholderIcon  = "dot"
)

// ExpandedBackground is the uniform card color of an expanded stack,
// rgb(53, 57, 53).
const ExpandedBackground = "#353935"

// Spec describes one card.
type Spec struct {
	Icon    string `toml:"icon" json:"icon"`
	Title   string `toml:"title" json:"title"`
	BgColor string `toml:"bg_color" json:"bg_color"`
}

// Default returns the stock five-card deck. The first card is the one shown
// on top of a collapsed stack.
func Default() []Spec {
	return []Spec{
		{Icon: "more-horizontal", Title: "HEADER", BgColor: "#404040"},
		{Icon: "barschart", Title: "CHARTS", BgColor: "#484848"},
		{Icon: "book", Title: "BOOK", BgColor: "#505050"},
		{Icon: "ios-calendar", Title: "CALENDAR", BgColor: "#585858"},
		{Icon: "camera", Title: "CAMERA", BgColor: "#606060"},
	}
}

// Normalize returns a copy of s with blank fields replaced by placeholders,
// the title trimmed, and the color rewritten as a lowercase #rrggbb hex
// string. Unparseable colors fall back to [PlaceholderColor].
func Normalize(s Spec) Spec {
	s.Title = strings.TrimSpace(s.Title)
	if s.Title == "" {
		s.Title = PlaceholderTitle
	}
	s.Icon = strings.TrimSpace(s.Icon)
	if _, ok := glyphs[s.Icon]; !ok {
		s.Icon = PlaceholderIcon
	}
	hex, err := NormalizeColor(s.BgColor)
	if err != nil {
		hex = PlaceholderColor
	}
	s.BgColor = hex
	return s
}

// NormalizeAll applies [Normalize] to every spec in a fresh slice.
func NormalizeAll(specs []Spec) []Spec {
	out := make([]Spec, len(specs))
	for i, s := range specs {
		out[i] = Normalize(s)
	}
	return out
}

// Glyph returns the single-cell glyph drawn for s.Icon.
func (s Spec) Glyph() string { return Glyph(s.Icon) }

// Color parses s.BgColor, falling back to the placeholder color.
func (s Spec) Color() colorful.Color {
	c, err := ParseColor(s.BgColor)
	if err != nil {
		c, _ = colorful.Hex(PlaceholderColor)
	}
	return c
}
