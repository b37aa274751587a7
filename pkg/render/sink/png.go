package sink

import (
	"bytes"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/cardstack/pkg/cards"
	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor. Non-positive values are ignored.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// PNGSize returns the pixel size of the PNG produced for sc at scale.
func PNGSize(sc Scene, scale float64) (w, h int) {
	return int(math.Ceil(sc.Canvas.W * scale)), int(math.Ceil(sc.Canvas.H * scale))
}

var (
	fontOnce sync.Once
	textFont *truetype.Font
	fontErr  error
)

// loadFont parses the embedded Go Regular face once.
func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		textFont, fontErr = truetype.Parse(goregular.TTF)
	})
	return textFont, fontErr
}

// RenderPNG rasterizes the scene. Text is set in Go Regular; runes the face
// has no glyph for are left out, and the chevron is drawn as a path.
func RenderPNG(sc Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := PNGSize(sc, r.scale)
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidInput, "empty canvas %.0fx%.0f", sc.Canvas.W, sc.Canvas.H)
	}

	f, err := loadFont()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "load font")
	}

	dc := gg.NewContext(w, h)
	dc.SetHexColor(Background)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 15 * r.scale}))

	// Map frame pixels to image pixels.
	px := func(x float64) float64 { return (x - sc.Canvas.X) * r.scale }
	py := func(y float64) float64 { return (y - sc.Canvas.Y) * r.scale }
	s := r.scale

	for _, it := range sc.Frame.Items {
		v, ok := sc.view(it.Index)
		rc := it.Rect
		if !ok || rc.W <= 0 || rc.H <= 0 {
			continue
		}
		dc.SetColor(cards.Spec{BgColor: v.Background}.Color())
		dc.DrawRoundedRectangle(px(rc.X), py(rc.Y), rc.W*s, rc.H*s, CornerRadius*s)
		dc.Fill()

		if v.Content != stack.ContentRow {
			continue
		}
		cy := py(rc.CenterY())
		bx := px(rc.X + 10)

		dc.SetHexColor("#000000")
		dc.DrawRoundedRectangle(bx, cy-19*s, 38*s, 38*s, 12*s)
		dc.Fill()

		dc.SetHexColor("#ffffff")
		dc.DrawStringAnchored(drawable(f, v.Glyph), bx+19*s, cy, 0.5, 0.35)
		dc.DrawStringAnchored(drawable(f, v.Title), bx+48*s, cy, 0, 0.35)

		// Chevron.
		cx := px(rc.Right() - 16)
		dc.SetLineWidth(2 * s)
		dc.MoveTo(cx-5*s, cy-7*s)
		dc.LineTo(cx+2*s, cy)
		dc.LineTo(cx-5*s, cy+7*s)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// drawable drops the runes f has no glyph for.
func drawable(f *truetype.Font, s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if f.Index(r) != 0 {
			out = append(out, r)
		}
	}
	return string(out)
}
