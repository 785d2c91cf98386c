package state

import (
	"testing"

	"github.com/gogpu/nine/d3d9"
)

type counted struct{ refs uint32 }

func (c *counted) AddRef() uint32  { c.refs++; return c.refs }
func (c *counted) Release() uint32 { c.refs--; return c.refs }

func TestDefaults(t *testing.T) {
	s := New()

	renderTests := []struct {
		k    d3d9.RenderStateType
		want uint32
	}{
		{d3d9.RSCullMode, d3d9.CullCCW},
		{d3d9.RSFogTableMode, d3d9.FogNone},
		{d3d9.RSMultisampleAntialias, d3d9.True},
		{d3d9.RSPointSize, d3d9.FloatBits(1)},
		{d3d9.RSZFunc, d3d9.CmpLessEqual},
		{d3d9.RSColorWriteEnable, 0xF},
		{d3d9.RSWrap8 + 4, 0},
	}
	for _, tt := range renderTests {
		got, ok := s.RenderState(tt.k)
		if !ok || got != tt.want {
			t.Errorf("RenderState(%d) = %d, %v; want %d", tt.k, got, ok, tt.want)
		}
	}

	if v, _ := s.TextureStageState(0, d3d9.TSSColorOp); v != d3d9.TOPModulate {
		t.Errorf("stage 0 color op = %d, want Modulate", v)
	}
	if v, _ := s.TextureStageState(0, d3d9.TSSAlphaOp); v != d3d9.TOPSelectArg1 {
		t.Errorf("stage 0 alpha op = %d, want SelectArg1", v)
	}
	for i := uint32(1); i < PixelUnits; i++ {
		if v, _ := s.TextureStageState(i, d3d9.TSSColorOp); v != d3d9.TOPDisable {
			t.Errorf("stage %d color op = %d, want Disable", i, v)
		}
		if v, _ := s.TextureStageState(i, d3d9.TSSTexCoordIndex); v != i {
			t.Errorf("stage %d tex coord index = %d, want %d", i, v, i)
		}
	}
	if v, _ := s.SamplerState(3, d3d9.SampAddressU); v != d3d9.TAddressWrap {
		t.Errorf("sampler 3 address U = %d, want Wrap", v)
	}
	if v, _ := s.SamplerState(d3d9.VertexTextureSampler1, d3d9.SampMaxAnisotropy); v != 1 {
		t.Errorf("vertex sampler 1 max anisotropy = %d, want 1", v)
	}
}

func TestUnknownRenderState(t *testing.T) {
	s := New()
	if s.SetRenderState(d3d9.RenderStateType(3), 1) {
		t.Error("SetRenderState(3) accepted an unknown state")
	}
	if _, ok := s.RenderState(d3d9.RenderStateType(3)); ok {
		t.Error("RenderState(3) found an unknown state")
	}
}

func TestSharedStateWritesBothBlocks(t *testing.T) {
	s := New()
	s.SetRenderState(d3d9.RSFogColor, 0xFF00FF00)
	if v, _ := s.Vertex().RenderState(d3d9.RSFogColor); v != 0xFF00FF00 {
		t.Errorf("vertex fog color = %#x", v)
	}
	if v, _ := s.Pixel().RenderState(d3d9.RSFogColor); v != 0xFF00FF00 {
		t.Errorf("pixel fog color = %#x", v)
	}

	s.SetRenderState(d3d9.RSCullMode, d3d9.CullNone)
	if _, ok := s.Pixel().RenderState(d3d9.RSCullMode); ok {
		t.Error("pixel block owns cull mode")
	}
}

func TestVertexSamplerRemap(t *testing.T) {
	s := New()
	if !s.SetSamplerState(260, d3d9.SampMagFilter, uint32(d3d9.TexFLinear)) {
		t.Fatal("SetSamplerState(260) rejected")
	}
	got, ok := s.SamplerState(260, d3d9.SampMagFilter)
	if !ok || got != uint32(d3d9.TexFLinear) {
		t.Errorf("SamplerState(260) = %d, %v", got, ok)
	}
	inner, _ := s.Vertex().SamplerState(3, d3d9.SampMagFilter)
	if inner != got {
		t.Errorf("vertex unit 3 = %d, want %d", inner, got)
	}
	if pixel, _ := s.Pixel().SamplerState(3, d3d9.SampMagFilter); pixel != uint32(d3d9.TexFPoint) {
		t.Errorf("pixel unit 3 changed to %d", pixel)
	}
}

func TestSamplerOutOfRange(t *testing.T) {
	s := New()
	if s.SetSamplerState(16, d3d9.SampMagFilter, 1) {
		t.Error("sampler 16 accepted")
	}
	if s.SetSamplerState(261, d3d9.SampMagFilter, 1) {
		t.Error("sampler 261 accepted")
	}
	if s.SetSamplerState(0, d3d9.SamplerStateType(14), 1) {
		t.Error("sampler state 14 accepted")
	}
}

func TestTexturesRetainAndRelease(t *testing.T) {
	s := New()
	a, b := &counted{refs: 1}, &counted{refs: 1}

	s.SetTexture(d3d9.VertexTextureSampler2, a)
	if a.refs != 2 {
		t.Errorf("refs after bind = %d, want 2", a.refs)
	}
	got, ok := s.Texture(d3d9.VertexTextureSampler2)
	if !ok || got != a {
		t.Error("Texture(vertex 2) did not return the bound texture")
	}
	s.SetTexture(d3d9.VertexTextureSampler2, b)
	if a.refs != 1 || b.refs != 2 {
		t.Errorf("refs after rebind = %d/%d, want 1/2", a.refs, b.refs)
	}
	s.Reset()
	if b.refs != 1 {
		t.Errorf("refs after Reset = %d, want 1", b.refs)
	}
	if s.SetTexture(20, a) {
		t.Error("texture slot 20 accepted")
	}
}

func TestVertexDeclarationShared(t *testing.T) {
	s := New()
	d := &counted{refs: 1}
	s.SetVertexDeclaration(d)
	s.SetVertexDeclaration(d)
	if d.refs != 2 {
		t.Errorf("refs = %d, want 2", d.refs)
	}
	s.SetVertexDeclaration(nil)
	if d.refs != 1 || s.VertexDeclaration() != nil {
		t.Errorf("refs = %d after clearing", d.refs)
	}
}

func TestTransforms(t *testing.T) {
	s := New()
	m, ok := s.Transform(d3d9.TSView)
	if !ok || m != d3d9.Identity() {
		t.Errorf("default view = %v, want identity", m)
	}
	scale := d3d9.Matrix{{2, 0, 0, 0}, {0, 2, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 1}}
	s.SetTransform(d3d9.WorldMatrix(0), scale)
	s.MultiplyTransform(d3d9.WorldMatrix(0), scale)
	m, _ = s.Transform(d3d9.WorldMatrix(0))
	if m[0][0] != 4 || m[3][3] != 1 {
		t.Errorf("world after multiply = %v", m)
	}
	if s.SetTransform(d3d9.TransformStateType(1), scale) {
		t.Error("transform 1 accepted")
	}
}

func TestCloneAndApply(t *testing.T) {
	s := New()
	tex := &counted{refs: 1}
	s.SetTexture(0, tex)
	s.SetRenderState(d3d9.RSLighting, d3d9.False)
	s.SetRenderState(d3d9.RSAlphaBlendEnable, d3d9.True)

	snap := s.Clone()
	if tex.refs != 3 {
		t.Errorf("refs after Clone = %d, want 3", tex.refs)
	}

	s.SetRenderState(d3d9.RSLighting, d3d9.True)
	s.SetRenderState(d3d9.RSAlphaBlendEnable, d3d9.False)
	s.Apply(snap, d3d9.SBTPixelState)

	if v, _ := s.RenderState(d3d9.RSAlphaBlendEnable); v != d3d9.True {
		t.Error("pixel state not applied")
	}
	if v, _ := s.RenderState(d3d9.RSLighting); v != d3d9.True {
		t.Error("vertex state applied by a pixel state block")
	}

	s.Apply(snap, d3d9.SBTAll)
	if v, _ := s.RenderState(d3d9.RSLighting); v != d3d9.False {
		t.Error("vertex state not applied by SBTAll")
	}

	snap.Reset()
	if tex.refs != 2 {
		t.Errorf("refs after snapshot Reset = %d, want 2", tex.refs)
	}
}

func TestMaskedCopy(t *testing.T) {
	dev := New()
	rec := dev.Clone()
	m := NewMask()
	rec.Track(m)
	rec.SetRenderState(d3d9.RSZWriteEnable, d3d9.False)
	rec.SetSamplerState(d3d9.VertexTextureSampler1, d3d9.SampMagFilter, uint32(d3d9.TexFPoint))
	rec.SetRenderState(3, 1)
	rec.Track(nil)
	rec.SetRenderState(d3d9.RSLighting, d3d9.False)

	if len(m.rs) != 1 || len(m.samplers) != 1 || m.Viewport() {
		t.Fatalf("mask = %+v", m)
	}

	dev.SetRenderState(d3d9.RSCullMode, d3d9.CullNone)
	dev.CopyMasked(rec, m)
	if v, _ := dev.RenderState(d3d9.RSZWriteEnable); v != d3d9.False {
		t.Error("recorded ZWriteEnable not copied")
	}
	if v, _ := dev.SamplerState(d3d9.VertexTextureSampler1, d3d9.SampMagFilter); v != uint32(d3d9.TexFPoint) {
		t.Error("recorded vertex sampler state not copied")
	}
	if v, _ := dev.RenderState(d3d9.RSCullMode); v != d3d9.CullNone {
		t.Errorf("CullMode = %d, unrecorded state overwritten", v)
	}
	if v, _ := dev.RenderState(d3d9.RSLighting); v != d3d9.True {
		t.Error("state written after tracking stopped was copied")
	}
}
