// Package wgsl provides small helpers for emitting WGSL source text.
package wgsl

import (
	"strconv"
	"strings"
)

// Float formats a number as a WGSL f32 literal. The result always reads
// as a float: a decimal point is appended when the plain formatting
// would otherwise look like an integer. Formatting is idempotent: the
// numeric value of the output formats back to the same text.
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Vec emits a vecN<f32> constructor call over pre-formatted components.
// Supported sizes are 2 to 4 components.
func Vec(components ...string) string {
	var b strings.Builder
	b.WriteString("vec")
	b.WriteString(strconv.Itoa(len(components)))
	b.WriteString("<f32>(")
	for i, c := range components {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c)
	}
	b.WriteString(")")
	return b.String()
}

// VecFloats emits a vecN<f32> constructor call over numeric components.
func VecFloats(values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Float(v)
	}
	return Vec(parts...)
}
