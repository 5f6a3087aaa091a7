package symstyle

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func colorsClose(a, b RGBA) bool {
	const tolerance = 0.005
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance &&
		absDiff(a.A, b.A) <= tolerance
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGBA
		ok    bool
	}{
		{name: "named red", input: "red", want: RGBA{1, 0, 0, 1}, ok: true},
		{name: "named white", input: "white", want: RGBA{1, 1, 1, 1}, ok: true},
		{name: "named mixed case", input: "Blue", want: RGBA{0, 0, 1, 1}, ok: true},
		{name: "hex short", input: "#f00", want: RGBA{1, 0, 0, 1}, ok: true},
		{name: "hex short alpha", input: "#f008", want: RGBA{1, 0, 0, 0.533}, ok: true},
		{name: "hex full", input: "#3498db", want: RGBA{0.204, 0.596, 0.859, 1}, ok: true},
		{name: "hex full alpha", input: "#ff000080", want: RGBA{1, 0, 0, 0.502}, ok: true},
		{name: "functional rgb", input: "rgb(255, 0, 0)", want: RGBA{1, 0, 0, 1}, ok: true},
		{name: "functional rgba", input: "rgba(0, 255, 0, 0.5)", want: RGBA{0, 1, 0, 0.5}, ok: true},
		{name: "whitespace", input: "  red  ", want: RGBA{1, 0, 0, 1}, ok: true},
		{name: "not a color", input: "population", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "bad hex digits", input: "#zzz", ok: false},
		{name: "bad hex length", input: "#12345", ok: false},
		{name: "functional wrong arity", input: "rgb(1, 2)", ok: false},
		{name: "functional garbage", input: "rgb(a, b, c)", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !colorsClose(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBA_Premultiply(t *testing.T) {
	c := RGBA{1, 0.5, 0, 0.5}
	got := c.Premultiply()
	want := RGBA{0.5, 0.25, 0, 0.5}
	if !colorsClose(got, want) {
		t.Errorf("Premultiply() = %+v, want %+v", got, want)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 1, 1, 1}
	got := a.Lerp(b, 0.5)
	want := RGBA{0.5, 0.5, 0.5, 1}
	if !colorsClose(got, want) {
		t.Errorf("Lerp() = %+v, want %+v", got, want)
	}
}
