package render

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/symstyle"
)

// baseVertexFloats is the number of floats every vertex carries before
// style attributes: a_position (vec2) and a_index.
const baseVertexFloats = 3

// VertexStride returns the byte stride per vertex for a style with the
// given number of attributes. Layout per vertex:
//
//	a_position (vec2<f32>) = 8 bytes  (location 0)
//	a_index    (f32)       = 4 bytes  (location 1)
//	one f32 per style attribute       (locations 2+)
func VertexStride(attrCount int) int {
	return 4 * (baseVertexFloats + attrCount)
}

// VertexLayout derives the vertex buffer layout matching the generated
// vertex shader's input struct for a style with the given number of
// attributes.
func VertexLayout(attrCount int) []gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 0, 2+attrCount)
	attrs = append(attrs,
		gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // a_position
		gputypes.VertexAttribute{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},   // a_index
	)
	for i := 0; i < attrCount; i++ {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format:         gputypes.VertexFormatFloat32,
			Offset:         uint64(12 + 4*i),
			ShaderLocation: uint32(2 + i),
		})
	}

	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: uint64(VertexStride(attrCount)),
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  attrs,
		},
	}
}

// Point is one point feature to draw: its projected position and the
// feature the style's attribute callbacks read from.
type Point struct {
	X, Y    float32
	Feature symstyle.Feature
}

// QuadVertices generates interleaved vertex data for the given points.
// Each point expands to four corners sharing the point position,
// distinguished by a_index 0 through 3; per-feature attribute values are
// extracted once per point and repeated on every corner.
func QuadVertices(points []Point, attrs []symstyle.Attribute) []float32 {
	floats := baseVertexFloats + len(attrs)
	out := make([]float32, 0, len(points)*4*floats)
	vals := make([]float32, len(attrs))

	for _, p := range points {
		for i, a := range attrs {
			vals[i] = 0
			if p.Feature != nil {
				vals[i] = float32(a.Extract(p.Feature))
			}
		}
		for corner := 0; corner < 4; corner++ {
			out = append(out, p.X, p.Y, float32(corner))
			out = append(out, vals...)
		}
	}
	return out
}

// QuadIndices generates triangle-list indices for the given number of
// quads: two triangles per quad, 0-1-2 and 0-2-3, matching the corner
// parity the vertex shader expands.
func QuadIndices(numQuads int) []uint16 {
	indices := make([]uint16, 0, numQuads*6)
	for q := 0; q < numQuads; q++ {
		base := uint16(q * 4) //nolint:gosec // quad count bounded by uint16 index space
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return indices
}
