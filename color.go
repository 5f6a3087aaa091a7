package symstyle

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// ParseColor parses a color string: a CSS color name ("red"), a hex
// notation ("#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA"), or a functional
// notation ("rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)"). The second
// return value reports whether the string was recognized.
func ParseColor(s string) (RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, false
	}

	if s[0] == '#' {
		return parseHexColor(s[1:])
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseFuncColor(lower)
	}

	if c, ok := colornames.Map[lower]; ok {
		return RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, true
	}
	return RGBA{}, false
}

// parseHexColor parses the digits of a hex color (leading '#' stripped).
// Supports RGB, RGBA, RRGGBB and RRGGBBAA forms.
func parseHexColor(hex string) (RGBA, bool) {
	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return RGBA{}, false
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) ||
			!parseHex(hex[2:3], &b) || !parseHex(hex[3:4], &a) {
			return RGBA{}, false
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return RGBA{}, false
		}
	case 8: // RRGGBBAA
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) ||
			!parseHex(hex[4:6], &b) || !parseHex(hex[6:8], &a) {
			return RGBA{}, false
		}
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// parseFuncColor parses "rgb(r, g, b)" and "rgba(r, g, b, a)" notation.
// RGB channels are 0-255, alpha is 0-1.
func parseFuncColor(s string) (RGBA, bool) {
	wantAlpha := strings.HasPrefix(s, "rgba(")
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, false
	}

	parts := strings.Split(s[open+1:len(s)-1], ",")
	want := 3
	if wantAlpha {
		want = 4
	}
	if len(parts) != want {
		return RGBA{}, false
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return RGBA{}, false
		}
		vals[i] = v
	}

	c := RGBA{R: vals[0] / 255, G: vals[1] / 255, B: vals[2] / 255, A: 1}
	if wantAlpha {
		c.A = vals[3]
	}
	return c, true
}
