// Package render turns a compiled symbol style into GPU resources using
// gogpu/wgpu: a render pipeline with premultiplied-alpha blending, vertex
// buffer layouts derived from the style's attribute list, quad expansion
// for point features, and uniform buffer packing matching the generated
// StyleUniforms layout.
//
// The package owns no draw loop. Callers create a PointPipeline, fill
// vertex/index/uniform buffers with the helpers here, and record draws
// into their own render passes.
package render
