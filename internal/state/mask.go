package state

import "github.com/gogpu/nine/d3d9"

type unitKey struct {
	sampler uint32
	t       uint32
}

// Mask is the set of states written to a store while it tracks them. A
// recorded state block carries one and copies only those states.
type Mask struct {
	rs         map[d3d9.RenderStateType]struct{}
	samplers   map[unitKey]struct{}
	stages     map[unitKey]struct{}
	textures   map[uint32]struct{}
	transforms map[d3d9.TransformStateType]struct{}

	decl, fvf, viewport, scissor, material bool
}

// NewMask returns an empty mask.
func NewMask() *Mask {
	return &Mask{
		rs:         make(map[d3d9.RenderStateType]struct{}),
		samplers:   make(map[unitKey]struct{}),
		stages:     make(map[unitKey]struct{}),
		textures:   make(map[uint32]struct{}),
		transforms: make(map[d3d9.TransformStateType]struct{}),
	}
}

// Viewport reports whether the mask holds the viewport.
func (m *Mask) Viewport() bool { return m.viewport }

// Track makes s record every successful write into m; nil stops tracking.
func (s *Store) Track(m *Mask) { s.mask = m }

// CopyMasked copies the states named by m from src into s.
func (s *Store) CopyMasked(src *Store, m *Mask) {
	for k := range m.rs {
		v, _ := src.RenderState(k)
		s.SetRenderState(k, v)
	}
	for k := range m.samplers {
		t := d3d9.SamplerStateType(k.t)
		v, _ := src.SamplerState(k.sampler, t)
		s.SetSamplerState(k.sampler, t, v)
	}
	for k := range m.stages {
		t := d3d9.TextureStageStateType(k.t)
		v, _ := src.TextureStageState(k.sampler, t)
		s.SetTextureStageState(k.sampler, t, v)
	}
	for sampler := range m.textures {
		t, _ := src.Texture(sampler)
		s.SetTexture(sampler, t)
	}
	for t := range m.transforms {
		v, _ := src.Transform(t)
		s.SetTransform(t, v)
	}
	if m.decl {
		s.SetVertexDeclaration(src.decl)
	}
	if m.fvf {
		s.SetFVF(src.fvf)
	}
	if m.viewport {
		s.SetViewport(src.viewport)
	}
	if m.scissor {
		s.SetScissorRect(src.scissor)
	}
	if m.material {
		s.SetMaterial(src.material)
	}
}
