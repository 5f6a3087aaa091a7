package render

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/symstyle"
)

// UniformValues holds the fixed preamble members of the generated
// StyleUniforms struct. Matrices are column-major, matching WGSL
// mat4x4<f32> layout.
type UniformValues struct {
	Projection   [16]float32
	OffsetScale  [16]float32
	OffsetRotate [16]float32
	Time         float32
}

// Identity returns a 4x4 identity matrix.
func Identity() [16]float32 {
	return [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// DefaultUniformValues returns uniform values with identity matrices and
// time zero.
func DefaultUniformValues() UniformValues {
	return UniformValues{
		Projection:   Identity(),
		OffsetScale:  Identity(),
		OffsetRotate: Identity(),
	}
}

// UniformBufferSize returns the byte size of the packed uniform buffer
// for a compiled style, padded to a 16-byte multiple as uniform buffer
// bindings require.
func UniformBufferSize(res *symstyle.Result) int {
	size := 3*64 + 4 + 4*len(res.Builder.UniformDeclarations())
	if rem := size % 16; rem != 0 {
		size += 16 - rem
	}
	return size
}

// PackUniforms packs the fixed preamble plus the style's registered
// float uniforms (evaluated through the result's uniform callbacks, in
// declaration order) into a little-endian byte slice laid out like the
// generated StyleUniforms struct.
func PackUniforms(res *symstyle.Result, u UniformValues) []byte {
	buf := make([]byte, 0, UniformBufferSize(res))

	for _, m := range [][16]float32{u.Projection, u.OffsetScale, u.OffsetRotate} {
		for _, v := range m {
			buf = appendF32(buf, v)
		}
	}
	buf = appendF32(buf, u.Time)

	for _, decl := range res.Builder.UniformDeclarations() {
		var v float64
		if fn, ok := res.Uniforms[decl.Name]; ok {
			if f, ok := fn().(float64); ok {
				v = f
			}
		}
		buf = appendF32(buf, float32(v))
	}

	for len(buf)%16 != 0 {
		buf = append(buf, 0)
	}
	return buf
}

func appendF32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}
