package symstyle

import (
	"strings"
	"testing"
)

func TestVertexShaderDefaults(t *testing.T) {
	src := NewBuilder().VertexShader()

	for _, want := range []string{
		"struct StyleUniforms {",
		"u_projection: mat4x4<f32>,",
		"u_offset_scale: mat4x4<f32>,",
		"u_offset_rotate: mat4x4<f32>,",
		"u_time: f32,",
		"@group(0) @binding(0) var<uniform> style: StyleUniforms;",
		"@location(0) a_position: vec2<f32>,",
		"@location(1) a_index: f32,",
		"let size = vec2<f32>(1.0, 1.0);",
		"let offset = vec2<f32>(0.0, 0.0);",
		"let half_size = size * 0.5;",
		"let left = in.a_index == 0.0 || in.a_index == 3.0;",
		"let top = in.a_index >= 2.0;",
		"out.position = style.u_projection * vec4<f32>(in.a_position, 0.0, 1.0) + offsets;",
		"let tex_coord = vec4<f32>(0.0, 0.0, 1.0, 1.0);",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("vertex shader missing %q:\n%s", want, src)
		}
	}
}

func TestVertexShaderRotateWithView(t *testing.T) {
	aligned := NewBuilder().VertexShader()
	if !strings.Contains(aligned, "let offset_matrix = style.u_offset_scale * style.u_offset_rotate;") {
		t.Errorf("screen-aligned vertex shader does not compose the rotate matrix:\n%s", aligned)
	}

	rotating := NewBuilder().SetRotateWithView(true).VertexShader()
	if !strings.Contains(rotating, "let offset_matrix = style.u_offset_scale;\n") {
		t.Errorf("rotating vertex shader does not use the bare scale matrix:\n%s", rotating)
	}
	if strings.Contains(rotating, "u_offset_scale * style.u_offset_rotate") {
		t.Errorf("rotating vertex shader still composes the rotate matrix:\n%s", rotating)
	}
}

func TestVertexShaderDeclarations(t *testing.T) {
	b := NewBuilder().
		AddUniform("u_threshold", TypeFloat).
		AddAttribute("a_population", TypeFloat).
		AddVarying("v_population", TypeFloat, "in.a_population").
		SetSizeExpression("vec2<f32>(in.a_population, in.a_population)")
	src := b.VertexShader()

	for _, want := range []string{
		"u_threshold: f32,",
		"@location(2) a_population: f32,",
		"@location(2) v_population: f32,",
		"out.v_population = in.a_population;",
		"let size = vec2<f32>(in.a_population, in.a_population);",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("vertex shader missing %q:\n%s", want, src)
		}
	}

	if got := b.UniformDeclarations(); len(got) != 1 || got[0].Name != "u_threshold" {
		t.Errorf("UniformDeclarations() = %v", got)
	}
	if got := b.AttributeDeclarations(); len(got) != 1 || got[0].Name != "a_population" {
		t.Errorf("AttributeDeclarations() = %v", got)
	}
}

func TestFragmentShaderDefaults(t *testing.T) {
	src := NewBuilder().FragmentShader()

	for _, want := range []string{
		"@fragment",
		"fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {",
		"if (0.0 > 0.0) {",
		"discard;",
		"let color = vec4<f32>(1.0, 1.0, 1.0, 1.0);",
		"return vec4<f32>(color.rgb * color.a, color.a);",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("fragment shader missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "u_texture") {
		t.Errorf("fragment shader declares texture bindings without AddTexture:\n%s", src)
	}
}

func TestFragmentShaderTexture(t *testing.T) {
	b := NewBuilder().AddTexture()
	src := b.FragmentShader()

	for _, want := range []string{
		"@group(0) @binding(1) var u_texture: texture_2d<f32>;",
		"@group(0) @binding(2) var u_sampler: sampler;",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("fragment shader missing %q:\n%s", want, src)
		}
	}
	if !b.HasTexture() {
		t.Error("HasTexture() = false after AddTexture")
	}
}

func TestShadersShareInterfaceStruct(t *testing.T) {
	b := NewBuilder().AddVarying("v_opacity", TypeFloat, "1.0")
	vert := b.VertexShader()
	frag := b.FragmentShader()

	start := strings.Index(vert, "struct VertexOutput {")
	end := strings.Index(vert[start:], "}")
	if start < 0 || end < 0 {
		t.Fatalf("vertex shader has no VertexOutput struct:\n%s", vert)
	}
	iface := vert[start : start+end+1]
	if !strings.Contains(frag, iface) {
		t.Errorf("fragment shader does not carry the vertex interface struct %q:\n%s", iface, frag)
	}
	if !strings.Contains(iface, "@location(2) v_opacity: f32,") {
		t.Errorf("interface struct missing varying declaration: %q", iface)
	}
}

func TestDataTypeWGSL(t *testing.T) {
	tests := []struct {
		typ  DataType
		want string
	}{
		{TypeFloat, "f32"},
		{TypeVec2, "vec2<f32>"},
		{TypeVec3, "vec3<f32>"},
		{TypeVec4, "vec4<f32>"},
	}
	for _, tt := range tests {
		if got := tt.typ.WGSL(); got != tt.want {
			t.Errorf("DataType(%d).WGSL() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
