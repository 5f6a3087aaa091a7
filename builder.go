package symstyle

import (
	"strconv"
	"strings"
)

// DataType is the declared shader type of a uniform, attribute or
// varying: a scalar float or a 2/3/4-component float vector.
type DataType uint8

const (
	TypeFloat DataType = iota
	TypeVec2
	TypeVec3
	TypeVec4
)

// WGSL returns the WGSL spelling of the type.
func (t DataType) WGSL() string {
	switch t {
	case TypeVec2:
		return "vec2<f32>"
	case TypeVec3:
		return "vec3<f32>"
	case TypeVec4:
		return "vec4<f32>"
	default:
		return "f32"
	}
}

// Uniform declares a named uniform struct member.
type Uniform struct {
	Name string
	Type DataType
}

// AttributeDecl declares a named per-vertex input.
type AttributeDecl struct {
	Name string
	Type DataType
}

// Varying declares a value computed once per vertex and interpolated to
// the fragment stage, together with the vertex-stage expression that
// produces it.
type Varying struct {
	Name string
	Type DataType
	Expr string
}

// Builder accumulates declarations and slot expressions and renders
// complete WGSL vertex and fragment programs around fixed boilerplate.
//
// Slot expressions default to identity values: unit size, zero offset,
// opaque white color, whole unit square texture coordinates, and a
// discard predicate that never fires. Mutating methods record state and
// return the builder for chaining; they do not validate their string
// arguments, which are expected to come out of Context.Compile.
//
// A Builder is owned by a single compiling call and is not safe for
// concurrent mutation.
type Builder struct {
	uniforms   []Uniform
	attributes []AttributeDecl
	varyings   []Varying

	sizeExpr     string
	offsetExpr   string
	colorExpr    string
	texCoordExpr string
	discardExpr  string

	rotateWithView bool
	hasTexture     bool
}

// NewBuilder returns a builder with identity slot values.
func NewBuilder() *Builder {
	return &Builder{
		sizeExpr:     "vec2<f32>(1.0, 1.0)",
		offsetExpr:   "vec2<f32>(0.0, 0.0)",
		colorExpr:    "vec4<f32>(1.0, 1.0, 1.0, 1.0)",
		texCoordExpr: "vec4<f32>(0.0, 0.0, 1.0, 1.0)",
		discardExpr:  "0.0",
	}
}

// AddUniform declares a uniform struct member.
func (b *Builder) AddUniform(name string, typ DataType) *Builder {
	b.uniforms = append(b.uniforms, Uniform{Name: name, Type: typ})
	return b
}

// AddAttribute declares a per-vertex input.
func (b *Builder) AddAttribute(name string, typ DataType) *Builder {
	b.attributes = append(b.attributes, AttributeDecl{Name: name, Type: typ})
	return b
}

// AddVarying declares an interpolated value and the vertex-stage
// expression assigned to it.
func (b *Builder) AddVarying(name string, typ DataType, expr string) *Builder {
	b.varyings = append(b.varyings, Varying{Name: name, Type: typ, Expr: expr})
	return b
}

// AddTexture declares the symbol texture and sampler bindings used by
// image symbols.
func (b *Builder) AddTexture() *Builder {
	b.hasTexture = true
	return b
}

// SetSizeExpression sets the quad size slot (vec2-valued).
func (b *Builder) SetSizeExpression(expr string) *Builder {
	b.sizeExpr = expr
	return b
}

// SetOffsetExpression sets the quad offset slot (vec2-valued).
func (b *Builder) SetOffsetExpression(expr string) *Builder {
	b.offsetExpr = expr
	return b
}

// SetColorExpression sets the fragment color slot (vec4-valued).
func (b *Builder) SetColorExpression(expr string) *Builder {
	b.colorExpr = expr
	return b
}

// SetTextureCoordinateExpression sets the texture coordinate bounds slot
// (vec4-valued [s, t, p, q]).
func (b *Builder) SetTextureCoordinateExpression(expr string) *Builder {
	b.texCoordExpr = expr
	return b
}

// SetDiscardExpression sets the discard predicate slot. The fragment is
// discarded when the expression evaluates greater than zero.
func (b *Builder) SetDiscardExpression(expr string) *Builder {
	b.discardExpr = expr
	return b
}

// SetRotateWithView controls whether symbols rotate with the view. When
// disabled, the offset-rotate matrix is composed into the offset
// transform so symbols stay screen-aligned as the view rotates; when
// enabled the rotate matrix is omitted and symbols follow the view.
// (This matches the long-observed rendering behavior; see
// TestVertexShaderRotateWithView.)
func (b *Builder) SetRotateWithView(enabled bool) *Builder {
	b.rotateWithView = enabled
	return b
}

// UniformDeclarations returns the registered uniforms in declaration
// order, excluding the fixed preamble members.
func (b *Builder) UniformDeclarations() []Uniform { return b.uniforms }

// AttributeDeclarations returns the registered attributes in declaration
// order, excluding the fixed a_position and a_index inputs.
func (b *Builder) AttributeDeclarations() []AttributeDecl { return b.attributes }

// HasTexture reports whether texture bindings were declared.
func (b *Builder) HasTexture() bool { return b.hasTexture }

// SizeExpression returns the current size slot expression.
func (b *Builder) SizeExpression() string { return b.sizeExpr }

// ColorExpression returns the current color slot expression.
func (b *Builder) ColorExpression() string { return b.colorExpr }

// writeUniformStruct emits the StyleUniforms declaration and its
// binding. The fixed preamble members come first so the CPU-side packing
// layout stays independent of registered uniforms.
func (b *Builder) writeUniformStruct(w *strings.Builder) {
	w.WriteString("struct StyleUniforms {\n")
	w.WriteString("    u_projection: mat4x4<f32>,\n")
	w.WriteString("    u_offset_scale: mat4x4<f32>,\n")
	w.WriteString("    u_offset_rotate: mat4x4<f32>,\n")
	w.WriteString("    u_time: f32,\n")
	for _, u := range b.uniforms {
		w.WriteString("    " + u.Name + ": " + u.Type.WGSL() + ",\n")
	}
	w.WriteString("}\n\n")
	w.WriteString("@group(0) @binding(0) var<uniform> style: StyleUniforms;\n\n")
}

// writeVertexOutput emits the inter-stage struct shared verbatim by both
// programs so the interface locations always agree.
func (b *Builder) writeVertexOutput(w *strings.Builder) {
	w.WriteString("struct VertexOutput {\n")
	w.WriteString("    @builtin(position) position: vec4<f32>,\n")
	w.WriteString("    @location(0) v_texCoord: vec2<f32>,\n")
	w.WriteString("    @location(1) v_quadCoord: vec2<f32>,\n")
	for i, v := range b.varyings {
		w.WriteString("    @location(" + strconv.Itoa(2+i) + ") " + v.Name + ": " + v.Type.WGSL() + ",\n")
	}
	w.WriteString("}\n\n")
}

// VertexShader renders the complete vertex program. The body expands a
// point into a screen-aligned quad: corners 0 and 3 take the negative X
// half-size, corners 2 and 3 take the positive Y half-size, matching a
// triangle-list quad of corner order 0..3.
func (b *Builder) VertexShader() string {
	var w strings.Builder
	w.WriteString("// Generated by symstyle. Do not edit.\n\n")
	b.writeUniformStruct(&w)

	w.WriteString("struct VertexInput {\n")
	w.WriteString("    @location(0) a_position: vec2<f32>,\n")
	w.WriteString("    @location(1) a_index: f32,\n")
	for i, a := range b.attributes {
		w.WriteString("    @location(" + strconv.Itoa(2+i) + ") " + a.Name + ": " + a.Type.WGSL() + ",\n")
	}
	w.WriteString("}\n\n")

	b.writeVertexOutput(&w)

	w.WriteString("@vertex\n")
	w.WriteString("fn vs_main(in: VertexInput) -> VertexOutput {\n")
	w.WriteString("    var out: VertexOutput;\n")
	if b.rotateWithView {
		w.WriteString("    let offset_matrix = style.u_offset_scale;\n")
	} else {
		w.WriteString("    let offset_matrix = style.u_offset_scale * style.u_offset_rotate;\n")
	}
	w.WriteString("    let size = " + b.sizeExpr + ";\n")
	w.WriteString("    let offset = " + b.offsetExpr + ";\n")
	w.WriteString("    let half_size = size * 0.5;\n")
	w.WriteString("    let left = in.a_index == 0.0 || in.a_index == 3.0;\n")
	w.WriteString("    let top = in.a_index >= 2.0;\n")
	w.WriteString("    let offset_x = select(offset.x + half_size.x, offset.x - half_size.x, left);\n")
	w.WriteString("    let offset_y = select(offset.y - half_size.y, offset.y + half_size.y, top);\n")
	w.WriteString("    let offsets = offset_matrix * vec4<f32>(offset_x, offset_y, 0.0, 0.0);\n")
	w.WriteString("    out.position = style.u_projection * vec4<f32>(in.a_position, 0.0, 1.0) + offsets;\n")
	w.WriteString("    let tex_coord = " + b.texCoordExpr + ";\n")
	w.WriteString("    out.v_texCoord = vec2<f32>(select(tex_coord.z, tex_coord.x, left), select(tex_coord.w, tex_coord.y, top));\n")
	w.WriteString("    out.v_quadCoord = vec2<f32>(select(1.0, 0.0, left), select(0.0, 1.0, top));\n")
	for _, v := range b.varyings {
		w.WriteString("    out." + v.Name + " = " + v.Expr + ";\n")
	}
	w.WriteString("    return out;\n")
	w.WriteString("}\n")
	return w.String()
}

// FragmentShader renders the complete fragment program: conditional
// discard, color slot evaluation, and premultiplied-alpha output.
func (b *Builder) FragmentShader() string {
	var w strings.Builder
	w.WriteString("// Generated by symstyle. Do not edit.\n\n")
	b.writeUniformStruct(&w)
	if b.hasTexture {
		w.WriteString("@group(0) @binding(1) var u_texture: texture_2d<f32>;\n")
		w.WriteString("@group(0) @binding(2) var u_sampler: sampler;\n\n")
	}
	b.writeVertexOutput(&w)

	w.WriteString("@fragment\n")
	w.WriteString("fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {\n")
	w.WriteString("    if (" + b.discardExpr + " > 0.0) {\n")
	w.WriteString("        discard;\n")
	w.WriteString("    }\n")
	w.WriteString("    let color = " + b.colorExpr + ";\n")
	w.WriteString("    return vec4<f32>(color.rgb * color.a, color.a);\n")
	w.WriteString("}\n")
	return w.String()
}
