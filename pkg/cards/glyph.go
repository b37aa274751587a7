package cards

// Chevron trails the title of a card that shows content.
const Chevron = "›"

var glyphs = map[string]string{
	"more-horizontal": "⋯",
	"barschart":       "▇",
	"book":            "❑",
	"ios-calendar":    "▦",
	"calendar":        "▦",
	"camera":          "◉",
	"chevron-right":   Chevron,
	"dot":             "•",
}

// Glyph maps an icon name to a single-cell glyph. Unknown names get a dot.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return glyphs[PlaceholderIcon]
}

// KnownIcon reports whether name has a glyph of its own.
func KnownIcon(name string) bool {
	_, ok := glyphs[name]
	return ok
}
