package symstyle

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/symstyle/internal/wgsl"
)

// SymbolType names the shape drawn for each point feature.
type SymbolType string

const (
	SymbolSquare   SymbolType = "square"
	SymbolCircle   SymbolType = "circle"
	SymbolTriangle SymbolType = "triangle"
	SymbolImage    SymbolType = "image"
)

// Style compilation errors.
var (
	// ErrUnsupportedSymbolType is returned for symbol shapes outside
	// square, circle, triangle and image.
	ErrUnsupportedSymbolType = errors.New("symstyle: unsupported symbol type")

	// ErrMissingSource is returned when an image symbol declares no
	// source path.
	ErrMissingSource = errors.New("symstyle: image symbol requires a source path")
)

// Symbol describes the point symbol of a style. Expression-bearing
// fields hold JSON-shaped literal trees (see ParseExpr) or typed Expr
// values.
type Symbol struct {
	// Type selects the symbol shape.
	Type SymbolType `json:"symbolType"`

	// Size is the quad size in pixels: a number, a two-element array,
	// or a number-valued expression. Defaults to 1.
	Size any `json:"size,omitempty"`

	// Color is the base color: a color name or hex string, a channel
	// array, or a color-valued expression. Defaults to opaque white.
	Color any `json:"color,omitempty"`

	// TexCoord is a literal [s, t, p, q] texture coordinate bounds
	// array. Defaults to the whole unit square.
	TexCoord any `json:"textureCoord,omitempty"`

	// Offset shifts the quad in pixels: a number, a two-element array,
	// or a number-valued expression. Defaults to zero.
	Offset any `json:"offset,omitempty"`

	// Opacity scales the symbol alpha. Defaults to 1.
	Opacity any `json:"opacity,omitempty"`

	// RotateWithView makes symbols follow the view rotation instead of
	// staying screen-aligned.
	RotateWithView bool `json:"rotateWithView,omitempty"`

	// Src is the image source path for image symbols.
	Src string `json:"src,omitempty"`
}

// Style is a declarative point-symbol style: the symbol description, an
// optional feature filter expression, and the runtime variable bag read
// by var expressions.
type Style struct {
	Symbol    Symbol             `json:"symbol"`
	Filter    any                `json:"filter,omitempty"`
	Variables map[string]float64 `json:"variables,omitempty"`
}

// Feature exposes per-feature property lookup by name. Generated
// attribute extraction callbacks read features through this interface.
type Feature interface {
	Property(name string) (float64, bool)
}

// Attribute binds a declared vertex attribute to a per-feature
// extraction callback. Extract returns 0 for absent properties.
type Attribute struct {
	Name    string
	Extract func(Feature) float64
}

// UniformFunc returns the current value of a uniform, re-evaluated once
// per draw. Values are float64 for float uniforms; the texture uniform
// yields the texture handle, or nil while loading.
type UniformFunc func() any

// Result is the output of CompileStyle: the assembled shader builder,
// the vertex attribute descriptors in declaration order, and the uniform
// value map. The caller owns all three; nothing is retained by the
// compiler, and a Result stays valid until the input style changes.
type Result struct {
	Builder    *Builder
	Attributes []Attribute
	Uniforms   map[string]UniformFunc
}

// CompileStyle compiles a declarative point-symbol style into shader
// programs plus the attribute and uniform descriptors the rendering
// layer needs. Compilation is pure and synchronous; concurrent calls on
// independent styles are safe.
func CompileStyle(style *Style, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Vertex-stage slots read feature attributes directly; fragment-stage
	// slots read them through varyings. The variable set is shared so one
	// uniform serves both stages.
	variables := &NameSet{}
	vert := &Context{AttributePrefix: "in.a_", Attributes: &NameSet{}, Variables: variables}
	frag := &Context{AttributePrefix: "in.v_", Attributes: &NameSet{}, Variables: variables}

	b := NewBuilder().SetRotateWithView(style.Symbol.RotateWithView)

	sizeCode, err := compileVec2(vert, style.Symbol.Size, 1)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	b.SetSizeExpression(sizeCode)

	if style.Symbol.Offset != nil {
		offsetCode, err := compileVec2(vert, style.Symbol.Offset, 0)
		if err != nil {
			return nil, fmt.Errorf("offset: %w", err)
		}
		b.SetOffsetExpression(offsetCode)
	}

	if style.Symbol.TexCoord != nil {
		texCode, err := compileTexCoord(style.Symbol.TexCoord)
		if err != nil {
			return nil, fmt.Errorf("textureCoord: %w", err)
		}
		b.SetTextureCoordinateExpression(texCode)
	}

	base := "vec4<f32>(1.0, 1.0, 1.0, 1.0)"
	if style.Symbol.Color != nil {
		expr, err := ParseExpr(style.Symbol.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		base, err = frag.Compile(expr, KindColor)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
	}

	opacity := "1.0"
	if style.Symbol.Opacity != nil {
		opacity, err = compileNumber(frag, style.Symbol.Opacity)
		if err != nil {
			return nil, fmt.Errorf("opacity: %w", err)
		}
	}

	// The shape mask is evaluated per fragment, so the size expression is
	// compiled a second time against the fragment context.
	fragSize, err := compileVec2(frag, style.Symbol.Size, 1)
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	mask, err := opacityMask(style.Symbol.Type, fragSize)
	if err != nil {
		return nil, err
	}

	uniforms := make(map[string]UniformFunc)

	if style.Symbol.Type == SymbolImage {
		if style.Symbol.Src == "" {
			return nil, ErrMissingSource
		}
		b.AddTexture()
		base = "(" + base + " * textureSample(u_texture, u_sampler, in.v_texCoord))"
		handle := loadSymbolTexture(style.Symbol.Src, &o)
		uniforms["u_texture"] = handle.get
	}

	b.SetColorExpression(fmt.Sprintf("(%s * vec4<f32>(1.0, 1.0, 1.0, %s * %s))", base, opacity, mask))

	if style.Filter != nil {
		filter, err := compileNumber(frag, style.Filter)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		b.SetDiscardExpression(fmt.Sprintf("select(0.0, 1.0, (%s <= 0.0))", filter))
	}

	// Fragment-stage attribute reads are routed through float varyings;
	// any attribute only the fragment stage touches becomes a vertex
	// attribute as well.
	for _, name := range frag.Attributes.Names() {
		vert.Attributes.Add(name)
		b.AddVarying("v_"+name, TypeFloat, "in.a_"+name)
	}

	attributes := make([]Attribute, 0, vert.Attributes.Len())
	for _, name := range vert.Attributes.Names() {
		b.AddAttribute("a_"+name, TypeFloat)
		attributes = append(attributes, Attribute{
			Name:    name,
			Extract: extractProperty(name),
		})
	}

	// One float uniform per referenced variable, bound lazily to the
	// style's variable bag so values change without recompiling.
	for _, name := range variables.Names() {
		uniforms["u_"+name] = lookupVariable(style, name)
		b.AddUniform("u_"+name, TypeFloat)
	}

	Logger().Debug("style compiled",
		slog.String("symbol", string(style.Symbol.Type)),
		slog.Int("attributes", vert.Attributes.Len()),
		slog.Int("variables", variables.Len()))

	return &Result{Builder: b, Attributes: attributes, Uniforms: uniforms}, nil
}

// extractProperty returns the per-feature extraction callback for a
// property name. Absent properties extract as 0.
func extractProperty(name string) func(Feature) float64 {
	return func(f Feature) float64 {
		v, ok := f.Property(name)
		if !ok {
			return 0
		}
		return v
	}
}

// lookupVariable returns the lazy uniform callback for a style variable.
// Absent variables read as 0.
func lookupVariable(style *Style, name string) UniformFunc {
	return func() any {
		if style.Variables == nil {
			return float64(0)
		}
		return style.Variables[name]
	}
}

// compileVec2 normalizes a scalar-or-pair style field into a vec2-valued
// WGSL expression. A nil value yields the given default for both
// components.
func compileVec2(ctx *Context, v any, def float64) (string, error) {
	if v == nil {
		return wgsl.VecFloats(def, def), nil
	}
	expr, err := ParseExpr(v)
	if err != nil {
		return "", err
	}
	if ch, ok := expr.(Channels); ok {
		if len(ch) != 2 {
			return "", fmt.Errorf("%w: expects a number or a pair, got %s", ErrTypeMismatch, ExprString(ch))
		}
		return ctx.Compile(ch, KindUnknown)
	}
	if k := InferKind(expr); k != KindNumber {
		return "", fmt.Errorf("%w: expects a number or a pair, got %s in %s", ErrTypeMismatch, k, ExprString(expr))
	}
	code, err := ctx.Compile(expr, KindUnknown)
	if err != nil {
		return "", err
	}
	return wgsl.Vec(code, code), nil
}

// compileNumber compiles a number-valued style field.
func compileNumber(ctx *Context, v any) (string, error) {
	expr, err := ParseExpr(v)
	if err != nil {
		return "", err
	}
	if k := InferKind(expr); k != KindNumber {
		return "", fmt.Errorf("%w: expects a number, got %s in %s", ErrTypeMismatch, k, ExprString(expr))
	}
	return ctx.Compile(expr, KindUnknown)
}

// compileTexCoord compiles the texture coordinate bounds. Bounds are
// literal [s, t, p, q] arrays and are emitted raw, without the 0-255
// color channel scaling.
func compileTexCoord(v any) (string, error) {
	expr, err := ParseExpr(v)
	if err != nil {
		return "", err
	}
	ch, ok := expr.(Channels)
	if !ok || len(ch) != 4 {
		return "", fmt.Errorf("%w: expects a [s, t, p, q] array, got %s", ErrTypeMismatch, ExprString(expr))
	}
	return wgsl.VecFloats(ch...), nil
}

// triSector is the angular size of one third of the circle, used to fold
// the quad around the triangle's three-way symmetry.
const triSector = "2.0943951023931953"

// opacityMask derives the procedural opacity mask for a symbol shape.
// The mask multiplies the symbol alpha: 1 inside the shape, smoothly
// falling to 0 over roughly one pixel at the edge. Square and image
// symbols cover the whole quad, so their mask is the constant 1.
func opacityMask(t SymbolType, sizeCode string) (string, error) {
	switch t {
	case SymbolSquare, SymbolImage:
		return "1.0", nil

	case SymbolCircle:
		// Radial falloff over the quad-local coordinate, with the
		// smoothing band scaled by the visible size so the edge stays
		// about a pixel wide.
		return fmt.Sprintf(
			"(1.0 - smoothstep(0.5 - 1.0 / %s.x, 0.5, length(in.v_quadCoord - vec2<f32>(0.5, 0.5))))",
			sizeCode), nil

	case SymbolTriangle:
		// Fold the quad angle into one sector of three-way symmetry and
		// threshold the folded distance, approximating a triangular
		// footprint with the same smoothing band as the circle.
		q := "(in.v_quadCoord - vec2<f32>(0.5, 0.5))"
		a := fmt.Sprintf("atan2(%s.x, -%s.y)", q, q)
		return fmt.Sprintf(
			"(1.0 - smoothstep(0.5 - 1.5 / %s.x, 0.5, cos(floor(0.5 + %s / %s) * %s - %s) * length(%s)))",
			sizeCode, a, triSector, triSector, a, q), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedSymbolType, string(t))
}
