package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/cardstack/pkg/cards"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// RenderSVG draws the scene as an SVG document. Cards appear in paint
// order, so the top card is the last group in the file.
func RenderSVG(sc Scene) []byte {
	c := sc.Canvas

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.X, c.Y, c.W, c.H, c.W, c.H)
	fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		c.X, c.Y, c.W, c.H, Background)

	for _, it := range sc.Frame.Items {
		v, ok := sc.view(it.Index)
		if !ok {
			continue
		}
		r := it.Rect
		fmt.Fprintf(&buf, `  <g id="card-%d" class="card %s" data-stack-order="%d">`+"\n", it.Index, it.Role, it.StackOrder)
		if r.W > 0 && r.H > 0 {
			fmt.Fprintf(&buf, `    <rect class="card-shell" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.0f" fill="%s"/>`+"\n",
				r.X, r.Y, r.W, r.H, CornerRadius, v.Background)
			if v.Content == stack.ContentRow {
				renderRow(&buf, r.X, r.Y, r.W, r.H, v)
			}
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderRow draws the icon badge, title and chevron of a card.
func renderRow(buf *bytes.Buffer, x, y, w, h float64, v stack.ItemView) {
	cy := y + h/2
	bx := x + 10
	fmt.Fprintf(buf, `    <rect class="icon" x="%.2f" y="%.2f" width="38" height="38" rx="12" fill="#000000"/>`+"\n", bx, cy-19)
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" fill="white" font-size="20" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		bx+19, cy, escapeXML(v.Glyph))
	fmt.Fprintf(buf, `    <text class="title" x="%.2f" y="%.2f" fill="white" font-size="16" dominant-baseline="central">%s</text>`+"\n",
		bx+48, cy, escapeXML(v.Title))
	fmt.Fprintf(buf, `    <text class="chevron" x="%.2f" y="%.2f" fill="white" font-size="24" text-anchor="end" dominant-baseline="central">%s</text>`+"\n",
		x+w-10, cy, cards.Chevron)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
