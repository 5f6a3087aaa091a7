package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/symstyle"
)

// Pipeline errors.
var (
	// ErrNilStyle is returned when creating a pipeline from a nil
	// compiled style.
	ErrNilStyle = errors.New("render: compiled style is nil")

	// ErrNilDevice is returned when creating a pipeline without a device.
	ErrNilDevice = errors.New("render: device is nil")
)

// PointPipeline owns the GPU objects for drawing one compiled symbol
// style: the shader modules, layouts, render pipeline and (for image
// symbols) the texture sampler. Buffers and bind groups are per-frame
// state owned by the caller.
//
// A PointPipeline is created for one style and must be destroyed and
// recreated when the style changes.
type PointPipeline struct {
	device hal.Device
	queue  hal.Queue

	vertShader hal.ShaderModule
	fragShader hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler

	attrCount  int
	hasTexture bool
}

// NewPointPipeline builds the render pipeline for a compiled style
// targeting the given color format. The pipeline uses premultiplied
// alpha blending, matching the generated fragment program's output
// convention.
func NewPointPipeline(device hal.Device, queue hal.Queue, res *symstyle.Result, target gputypes.TextureFormat) (*PointPipeline, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if res == nil || res.Builder == nil {
		return nil, ErrNilStyle
	}

	p := &PointPipeline{
		device:     device,
		queue:      queue,
		attrCount:  len(res.Attributes),
		hasTexture: res.Builder.HasTexture(),
	}
	if err := p.create(res, target); err != nil {
		p.Destroy()
		return nil, err
	}
	return p, nil
}

func (p *PointPipeline) create(res *symstyle.Result, target gputypes.TextureFormat) error {
	vert, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "symstyle_vertex",
		Source: hal.ShaderSource{WGSL: res.Builder.VertexShader()},
	})
	if err != nil {
		return fmt.Errorf("render: compile vertex shader: %w", err)
	}
	p.vertShader = vert

	frag, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "symstyle_fragment",
		Source: hal.ShaderSource{WGSL: res.Builder.FragmentShader()},
	})
	if err != nil {
		return fmt.Errorf("render: compile fragment shader: %w", err)
	}
	p.fragShader = frag

	// Bind group layout:
	//   Binding 0: StyleUniforms (uniform buffer, vertex+fragment)
	//   Binding 1: symbol texture (texture_2d, fragment; image symbols only)
	//   Binding 2: sampler (fragment; image symbols only)
	entries := []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
	}
	if p.hasTexture {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		)
	}

	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "symstyle_bind_layout",
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("render: create bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "symstyle_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("render: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	if p.hasTexture {
		sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
			Label:        "symstyle_sampler",
			AddressModeU: gputypes.AddressModeClampToEdge,
			AddressModeV: gputypes.AddressModeClampToEdge,
			AddressModeW: gputypes.AddressModeClampToEdge,
			MagFilter:    gputypes.FilterModeLinear,
			MinFilter:    gputypes.FilterModeLinear,
		})
		if err != nil {
			return fmt.Errorf("render: create sampler: %w", err)
		}
		p.sampler = sampler
	}

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "symstyle_point_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vertShader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayout(p.attrCount),
		},
		Fragment: &hal.FragmentState{
			Module:     p.fragShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    target,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("render: create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// Pipeline returns the underlying render pipeline for pass recording.
func (p *PointPipeline) Pipeline() hal.RenderPipeline { return p.pipeline }

// BindGroupLayout returns the layout for building per-frame bind groups.
func (p *PointPipeline) BindGroupLayout() hal.BindGroupLayout { return p.bindLayout }

// Sampler returns the symbol texture sampler, or nil for styles without
// an image symbol.
func (p *PointPipeline) Sampler() hal.Sampler { return p.sampler }

// RecordDraws records indexed quad draws into an existing render pass.
// The caller owns the pass, the buffers and the bind group.
func (p *PointPipeline) RecordDraws(rp hal.RenderPassEncoder, bindGroup hal.BindGroup, vertBuf, idxBuf hal.Buffer, indexCount uint32) {
	if indexCount == 0 {
		return
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.SetIndexBuffer(idxBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(indexCount, 1, 0, 0, 0)
}

// Destroy releases all GPU resources held by the pipeline. Safe to call
// multiple times or on a partially constructed pipeline.
func (p *PointPipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.sampler != nil {
		p.device.DestroySampler(p.sampler)
		p.sampler = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.fragShader != nil {
		p.device.DestroyShaderModule(p.fragShader)
		p.fragShader = nil
	}
	if p.vertShader != nil {
		p.device.DestroyShaderModule(p.vertShader)
		p.vertShader = nil
	}
}
