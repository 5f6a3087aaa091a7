// Package symstyle compiles data-driven point-symbol styles into WGSL
// shader programs for the GoGPU ecosystem.
//
// # Overview
//
// A style describes how point features are drawn: symbol shape, size,
// color, offset, opacity and an optional filter. Any of these fields may
// be a literal value or a small expression (numbers, colors, strings and
// a closed set of operators written as nested sequences, typically
// decoded from JSON). symstyle type-checks the expressions, lowers them
// to WGSL fragments, and assembles complete vertex and fragment programs
// around them.
//
// # Quick Start
//
//	style := &symstyle.Style{
//	    Symbol: symstyle.Symbol{
//	        Type:  symstyle.SymbolCircle,
//	        Size:  []any{"get", "population"},
//	        Color: "red",
//	    },
//	}
//
//	res, err := symstyle.CompileStyle(style)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vert := res.Builder.VertexShader()
//	frag := res.Builder.FragmentShader()
//
// The returned attribute descriptors drive per-vertex buffer population
// (one extraction callback per referenced feature property) and the
// uniform map supplies per-draw values without recompiling the shader.
//
// # Architecture
//
// The package is organized into:
//   - Expression model: Expr, ParseExpr, the closed operator set
//   - Type checking: InferKind, Validate
//   - Code generation: Context.Compile (expression to WGSL fragment)
//   - Assembly: Builder (fragments plus boilerplate to full programs)
//   - Pipeline: CompileStyle (style object to Builder plus descriptors)
//
// The render subpackage turns a compiled style into a gogpu/wgpu render
// pipeline: vertex layouts, quad expansion, uniform packing and SPIR-V
// lowering via gogpu/naga.
//
// # Rendering Model
//
// Each point feature becomes a screen-aligned quad of four corners,
// expanded in the vertex stage from a single position and a corner
// index. The fragment stage applies a procedural opacity mask for the
// symbol shape and writes premultiplied-alpha output.
package symstyle
