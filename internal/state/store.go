// Package state mirrors the settable state of the fixed-function pipeline.
//
// The store is a plain key/value mirror split into a vertex and a pixel
// block, matching how the legacy API groups state for state blocks. It has
// no transitions and never fails except for out-of-range keys.
package state

import (
	"maps"

	"github.com/gogpu/nine/d3d9"
)

// Texture unit counts.
const (
	PixelUnits  = 16
	VertexUnits = 4
	Textures    = PixelUnits + VertexUnits
)

// Shared is a reference-counted object the store can hold.
type Shared interface {
	AddRef() uint32
	Release() uint32
}

// Store is the fixed-function state of one device.
type Store struct {
	vertex Block
	pixel  Block

	textures [Textures]Shared
	decl     Shared
	fvf      uint32

	viewport   d3d9.Viewport
	scissor    d3d9.Rect
	transforms map[d3d9.TransformStateType]d3d9.Matrix
	material   d3d9.Material

	mask *Mask
}

// New returns a store holding the legacy defaults.
func New() *Store {
	return &Store{
		vertex:     newBlock(vertexDefaults, VertexUnits),
		pixel:      newBlock(pixelDefaults, PixelUnits),
		transforms: make(map[d3d9.TransformStateType]d3d9.Matrix, 4),
	}
}

// Vertex returns the vertex block.
func (s *Store) Vertex() *Block { return &s.vertex }

// Pixel returns the pixel block.
func (s *Store) Pixel() *Block { return &s.pixel }

// SetRenderState writes v to every block owning k. It reports whether any
// block owns k.
func (s *Store) SetRenderState(k d3d9.RenderStateType, v uint32) bool {
	vok := s.vertex.SetRenderState(k, v)
	pok := s.pixel.SetRenderState(k, v)
	if (vok || pok) && s.mask != nil {
		s.mask.rs[k] = struct{}{}
	}
	return vok || pok
}

// RenderState reads k from the vertex block, then the pixel block.
func (s *Store) RenderState(k d3d9.RenderStateType) (uint32, bool) {
	if v, ok := s.vertex.RenderState(k); ok {
		return v, true
	}
	return s.pixel.RenderState(k)
}

// route maps a legacy sampler index to a block and unit.
func (s *Store) route(sampler uint32) (*Block, uint32) {
	if sampler >= d3d9.VertexTextureSampler0 && sampler <= d3d9.VertexTextureSampler3 {
		return &s.vertex, sampler - d3d9.VertexTextureSampler0
	}
	return &s.pixel, sampler
}

// SetSamplerState sets state t of a sampler. Samplers 0..15 are pixel
// units; VertexTextureSampler0..3 are vertex units 0..3.
func (s *Store) SetSamplerState(sampler uint32, t d3d9.SamplerStateType, v uint32) bool {
	b, i := s.route(sampler)
	if !b.SetSamplerState(i, t, v) {
		return false
	}
	if s.mask != nil {
		s.mask.samplers[unitKey{sampler, uint32(t)}] = struct{}{}
	}
	return true
}

// SamplerState returns state t of a sampler.
func (s *Store) SamplerState(sampler uint32, t d3d9.SamplerStateType) (uint32, bool) {
	b, i := s.route(sampler)
	return b.SamplerState(i, t)
}

// SetTextureStageState sets combiner state t of a stage, routed like
// samplers.
func (s *Store) SetTextureStageState(stage uint32, t d3d9.TextureStageStateType, v uint32) bool {
	b, i := s.route(stage)
	if !b.SetTextureStageState(i, t, v) {
		return false
	}
	if s.mask != nil {
		s.mask.stages[unitKey{stage, uint32(t)}] = struct{}{}
	}
	return true
}

// TextureStageState returns combiner state t of a stage.
func (s *Store) TextureStageState(stage uint32, t d3d9.TextureStageStateType) (uint32, bool) {
	b, i := s.route(stage)
	return b.TextureStageState(i, t)
}

func textureSlot(sampler uint32) (int, bool) {
	switch {
	case sampler < PixelUnits:
		return int(sampler), true
	case sampler >= d3d9.VertexTextureSampler0 && sampler <= d3d9.VertexTextureSampler3:
		return PixelUnits + int(sampler-d3d9.VertexTextureSampler0), true
	}
	return 0, false
}

// SetTexture binds t to a sampler, retaining t and releasing the previous
// texture. t may be nil.
func (s *Store) SetTexture(sampler uint32, t Shared) bool {
	slot, ok := textureSlot(sampler)
	if !ok {
		return false
	}
	swap(&s.textures[slot], t)
	if s.mask != nil {
		s.mask.textures[sampler] = struct{}{}
	}
	return true
}

// Texture returns the texture bound to a sampler.
func (s *Store) Texture(sampler uint32) (Shared, bool) {
	slot, ok := textureSlot(sampler)
	if !ok {
		return nil, false
	}
	return s.textures[slot], true
}

// SetVertexDeclaration retains d and releases the previous declaration.
func (s *Store) SetVertexDeclaration(d Shared) {
	swap(&s.decl, d)
	if s.mask != nil {
		s.mask.decl = true
	}
}

// VertexDeclaration returns the current declaration or nil.
func (s *Store) VertexDeclaration() Shared { return s.decl }

// SetFVF sets the flexible vertex format code.
func (s *Store) SetFVF(fvf uint32) {
	s.fvf = fvf
	if s.mask != nil {
		s.mask.fvf = true
	}
}

// FVF returns the flexible vertex format code.
func (s *Store) FVF() uint32 { return s.fvf }

// SetViewport sets the viewport.
func (s *Store) SetViewport(vp d3d9.Viewport) {
	s.viewport = vp
	if s.mask != nil {
		s.mask.viewport = true
	}
}

// Viewport returns the viewport.
func (s *Store) Viewport() d3d9.Viewport { return s.viewport }

// SetScissorRect sets the scissor rectangle.
func (s *Store) SetScissorRect(r d3d9.Rect) {
	s.scissor = r
	if s.mask != nil {
		s.mask.scissor = true
	}
}

// ScissorRect returns the scissor rectangle.
func (s *Store) ScissorRect() d3d9.Rect { return s.scissor }

// ValidTransform reports whether t names a matrix.
func ValidTransform(t d3d9.TransformStateType) bool {
	switch {
	case t == d3d9.TSView, t == d3d9.TSProjection:
		return true
	case t >= d3d9.TSTexture0 && t <= d3d9.TSTexture7:
		return true
	case t >= d3d9.TSWorld && t < d3d9.TSWorld+256:
		return true
	}
	return false
}

// SetTransform sets matrix t.
func (s *Store) SetTransform(t d3d9.TransformStateType, m d3d9.Matrix) bool {
	if !ValidTransform(t) {
		return false
	}
	s.transforms[t] = m
	if s.mask != nil {
		s.mask.transforms[t] = struct{}{}
	}
	return true
}

// Transform returns matrix t; unset matrices are the identity.
func (s *Store) Transform(t d3d9.TransformStateType) (d3d9.Matrix, bool) {
	if !ValidTransform(t) {
		return d3d9.Matrix{}, false
	}
	if m, ok := s.transforms[t]; ok {
		return m, true
	}
	return d3d9.Identity(), true
}

// MultiplyTransform replaces matrix t with m × t.
func (s *Store) MultiplyTransform(t d3d9.TransformStateType, m d3d9.Matrix) bool {
	cur, ok := s.Transform(t)
	if !ok {
		return false
	}
	return s.SetTransform(t, m.Mul(cur))
}

// SetMaterial sets the lighting material.
func (s *Store) SetMaterial(m d3d9.Material) {
	s.material = m
	if s.mask != nil {
		s.mask.material = true
	}
}

// Material returns the lighting material.
func (s *Store) Material() d3d9.Material { return s.material }

// Clone returns a deep copy of s that holds its own references.
func (s *Store) Clone() *Store {
	c := &Store{
		vertex:     s.vertex.clone(),
		pixel:      s.pixel.clone(),
		fvf:        s.fvf,
		viewport:   s.viewport,
		scissor:    s.scissor,
		transforms: maps.Clone(s.transforms),
		material:   s.material,
	}
	for i, t := range s.textures {
		swap(&c.textures[i], t)
	}
	swap(&c.decl, s.decl)
	return c
}

// Apply copies the states of kind from src into s.
func (s *Store) Apply(src *Store, kind d3d9.StateBlockType) {
	if kind == d3d9.SBTAll || kind == d3d9.SBTVertexState {
		s.vertex = src.vertex.clone()
		s.fvf = src.fvf
		swap(&s.decl, src.decl)
	}
	if kind == d3d9.SBTAll || kind == d3d9.SBTPixelState {
		s.pixel = src.pixel.clone()
	}
	if kind == d3d9.SBTAll {
		for i, t := range src.textures {
			swap(&s.textures[i], t)
		}
		s.viewport = src.viewport
		s.scissor = src.scissor
		s.transforms = maps.Clone(src.transforms)
		s.material = src.material
	}
}

// Reset releases every reference held by s.
func (s *Store) Reset() {
	for i := range s.textures {
		swap(&s.textures[i], nil)
	}
	swap(&s.decl, nil)
}

func swap(dst *Shared, v Shared) {
	if *dst == v {
		return
	}
	if v != nil {
		v.AddRef()
	}
	if *dst != nil {
		(*dst).Release()
	}
	*dst = v
}
