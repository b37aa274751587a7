package sink

import (
	"encoding/json"

	"github.com/matzehuels/cardstack/pkg/buildinfo"
	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/layout"
)

// Document is the JSON form of a scene.
type Document struct {
	Generator string     `json:"generator"`
	Progress  float64    `json:"progress"`
	Expanded  bool       `json:"expanded"`
	Container Container  `json:"container"`
	Canvas    JSONRect   `json:"canvas"`
	Cards     []JSONCard `json:"cards"` // paint order
}

// Container is the container box of a frame.
type Container struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginBottom float64 `json:"margin_bottom"`
}

// JSONRect is a rect in pixels.
type JSONRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// JSONCard is one placed card.
type JSONCard struct {
	Index      int      `json:"index"`
	Role       string   `json:"role"`
	StackOrder int      `json:"stack_order"`
	TranslateY float64  `json:"translate_y"`
	Width      float64  `json:"width"`
	Rect       JSONRect `json:"rect"`
	Content    string   `json:"content"`
	Background string   `json:"background"`
	Title      string   `json:"title,omitempty"`
	Glyph      string   `json:"glyph,omitempty"`
}

// RenderJSON exports the scene geometry as pretty-printed JSON.
func RenderJSON(sc Scene) ([]byte, error) {
	doc := Document{
		Generator: buildinfo.Generator(),
		Progress:  sc.Frame.Progress,
		Expanded:  sc.Expanded,
		Container: Container{
			Width:        sc.Frame.Width,
			Height:       sc.Frame.Height,
			MarginBottom: sc.Frame.MarginBottom,
		},
		Canvas: jsonRect(sc.Canvas),
		Cards:  make([]JSONCard, 0, len(sc.Frame.Items)),
	}
	for _, it := range sc.Frame.Items {
		c := JSONCard{
			Index:      it.Index,
			Role:       it.Role.String(),
			StackOrder: it.StackOrder,
			TranslateY: it.TranslateY,
			Width:      it.Width,
			Rect:       jsonRect(it.Rect),
		}
		if v, ok := sc.view(it.Index); ok {
			c.Content = v.Content.String()
			c.Background = v.Background
			c.Title = v.Title
			c.Glyph = v.Glyph
		}
		doc.Cards = append(doc.Cards, c)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode scene")
	}
	return data, nil
}

// ReadJSON decodes a document written by [RenderJSON].
func ReadJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode scene")
	}
	return doc, nil
}

func jsonRect(r layout.Rect) JSONRect {
	return JSONRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
