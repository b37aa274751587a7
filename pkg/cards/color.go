package cards

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rgb", "#rrggbb" and "rgb(r, g, b)" notations.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s[len("rgb(") : len(s)-1])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c, nil
}

// NormalizeColor rewrites any accepted color notation as #rrggbb.
func NormalizeColor(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return c.Clamped().Hex(), nil
}

func parseRGBFunc(args string) (colorful.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("rgb() needs 3 components, got %d", len(parts))
	}
	var ch [3]float64
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return colorful.Color{}, fmt.Errorf("invalid rgb component %q", strings.TrimSpace(p))
		}
		ch[i] = float64(n) / 255
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
