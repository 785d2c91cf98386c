package nine

import (
	"errors"
	"testing"

	"github.com/gogpu/nine/d3d9"
)

func TestRenderStates(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if v, err := d.RenderState(d3d9.RSZEnable); err != nil || v != d3d9.ZBTrue {
		t.Errorf("RenderState(ZEnable) = %d, %v; want ZBTrue with an automatic depth buffer", v, err)
	}
	if err := d.SetRenderState(d3d9.RSCullMode, 1); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.RenderState(d3d9.RSCullMode); v != 1 {
		t.Errorf("RenderState(CullMode) = %d, want 1", v)
	}
	if err := d.SetRenderState(3, 0); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetRenderState(3) error = %v, want InvalidCall", err)
	}
	if _, err := d.RenderState(3); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("RenderState(3) error = %v, want InvalidCall", err)
	}
}

func TestSamplerStates(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	tests := []struct {
		sampler uint32
		ok      bool
	}{
		{0, true},
		{15, true},
		{16, false},
		{256, false},
		{d3d9.VertexTextureSampler0, true},
		{d3d9.VertexTextureSampler3, true},
		{261, false},
	}
	for _, tt := range tests {
		err := d.SetSamplerState(tt.sampler, d3d9.SampMagFilter, uint32(d3d9.TexFPoint))
		_, gerr := d.SamplerState(tt.sampler, d3d9.SampMagFilter)
		if tt.ok {
			if err != nil || gerr != nil {
				t.Errorf("sampler %d: set = %v, get = %v", tt.sampler, err, gerr)
			}
			continue
		}
		if !errors.Is(err, d3d9.InvalidCall) || !errors.Is(gerr, d3d9.InvalidCall) {
			t.Errorf("sampler %d: set = %v, get = %v; want InvalidCall", tt.sampler, err, gerr)
		}
	}
	if v, _ := d.SamplerState(d3d9.VertexTextureSampler3, d3d9.SampMagFilter); v != uint32(d3d9.TexFPoint) {
		t.Errorf("vertex sampler 3 MagFilter = %d", v)
	}
	if v, _ := d.SamplerState(3, d3d9.SampAddressU); v != 1 {
		t.Errorf("AddressU default = %d, want wrap", v)
	}
}

func TestTextureStageStates(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if v, _ := d.TextureStageState(0, d3d9.TSSColorOp); v != 4 {
		t.Errorf("stage 0 ColorOp = %d, want modulate", v)
	}
	if v, _ := d.TextureStageState(1, d3d9.TSSColorOp); v != 1 {
		t.Errorf("stage 1 ColorOp = %d, want disable", v)
	}
	if err := d.SetTextureStageState(2, d3d9.TSSTexCoordIndex, 5); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.TextureStageState(2, d3d9.TSSTexCoordIndex); v != 5 {
		t.Errorf("TexCoordIndex = %d, want 5", v)
	}
	if err := d.SetTextureStageState(16, d3d9.TSSColorOp, 1); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetTextureStageState(16) error = %v", err)
	}
}

func TestSetTexture(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	tex, err := d.CreateTexture(16, 16, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetTexture(d3d9.VertexTextureSampler1, tex); err != nil {
		t.Fatalf("SetTexture() error = %v", err)
	}
	got, err := d.Texture(d3d9.VertexTextureSampler1)
	if err != nil || got != tex {
		t.Fatalf("Texture() = %v, %v", got, err)
	}
	got.Release()

	// The device keeps the texture alive.
	if tex.Release() != 1 {
		t.Error("device holds no reference")
	}
	if err := d.SetTexture(d3d9.VertexTextureSampler1, nil); err != nil {
		t.Fatal(err)
	}
	if got, _ := d.Texture(d3d9.VertexTextureSampler1); got != nil {
		t.Errorf("Texture() after unbind = %v", got)
	}
	if tex.img.modern != nil {
		t.Error("unbinding the last reference did not free the texture")
	}
	if err := d.SetTexture(300, nil); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetTexture(300) error = %v", err)
	}

	other, _ := newTestDevice(t, nil)
	foreign, err := other.CreateTexture(16, 16, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged)
	if err != nil {
		t.Fatal(err)
	}
	defer foreign.Release()
	if err := d.SetTexture(0, foreign); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetTexture(foreign) error = %v", err)
	}
}

func TestTransforms(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	id, err := d.Transform(d3d9.TSWorld)
	if err != nil {
		t.Fatal(err)
	}
	if id != d3d9.Identity() {
		t.Errorf("default world = %v, want identity", id)
	}
	scale := d3d9.Identity()
	scale[0][0], scale[1][1] = 2, 3
	if err := d.SetTransform(d3d9.TSView, scale); err != nil {
		t.Fatal(err)
	}
	if err := d.MultiplyTransform(d3d9.TSView, scale); err != nil {
		t.Fatal(err)
	}
	m, _ := d.Transform(d3d9.TSView)
	if m[0][0] != 4 || m[1][1] != 9 || m[2][2] != 1 {
		t.Errorf("view after multiply = %v", m)
	}
	if err := d.SetTransform(1, scale); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetTransform(1) error = %v", err)
	}
}

func TestViewportBounds(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	vp := d3d9.Viewport{X: 100, Y: 100, Width: 700, Height: 500, MaxZ: 1}
	if err := d.SetViewport(vp); err != nil {
		t.Fatalf("SetViewport() error = %v", err)
	}
	if got := softDevice(d).Context().Viewports(); got[0].TopLeftX != 100 || got[0].Width != 700 {
		t.Errorf("modern viewport = %+v", got[0])
	}
	vp.Width = 701
	if err := d.SetViewport(vp); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetViewport(outside) error = %v, want InvalidCall", err)
	}
	if d.Viewport().Width != 700 {
		t.Errorf("rejected viewport was stored: %+v", d.Viewport())
	}
}

func TestMiscState(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	mat := d3d9.Material{Power: 8}
	d.SetMaterial(mat)
	if d.Material() != mat {
		t.Errorf("Material() = %+v", d.Material())
	}
	r := d3d9.Rect{Right: 10, Bottom: 20}
	d.SetScissorRect(r)
	if d.ScissorRect() != r {
		t.Errorf("ScissorRect() = %+v", d.ScissorRect())
	}
	d.SetFVF(0x142)
	if d.FVF() != 0x142 {
		t.Errorf("FVF() = %#x", d.FVF())
	}

	decl, err := d.CreateVertexDeclaration([]d3d9.VertexElement{{Type: 2}, d3d9.DeclEnd})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetVertexDeclaration(decl); err != nil {
		t.Fatal(err)
	}
	got, _ := d.VertexDeclaration()
	if got != decl {
		t.Errorf("VertexDeclaration() = %v", got)
	}
	got.Release()
	if decl.Release() != 1 {
		t.Error("device holds no declaration reference")
	}
	d.SetVertexDeclaration(nil)
	if decl.refs != 0 {
		t.Errorf("declaration refs after unbind = %d", decl.refs)
	}
}

func TestStateBlockCaptureApply(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	d.SetRenderState(d3d9.RSLighting, 0)
	sb, err := d.CreateStateBlock(d3d9.SBTAll)
	if err != nil {
		t.Fatal(err)
	}
	defer sb.Release()

	d.SetRenderState(d3d9.RSLighting, 1)
	d.SetSamplerState(260, d3d9.SampMagFilter, uint32(d3d9.TexFAnisotropic))
	if err := sb.Apply(); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.RenderState(d3d9.RSLighting); v != 0 {
		t.Errorf("Lighting after Apply = %d, want 0", v)
	}
	if v, _ := d.SamplerState(260, d3d9.SampMagFilter); v == uint32(d3d9.TexFAnisotropic) {
		t.Error("vertex sampler state survived Apply")
	}

	d.SetRenderState(d3d9.RSLighting, 1)
	if err := sb.Capture(); err != nil {
		t.Fatal(err)
	}
	d.SetRenderState(d3d9.RSLighting, 0)
	sb.Apply()
	if v, _ := d.RenderState(d3d9.RSLighting); v != 1 {
		t.Errorf("Lighting after Capture and Apply = %d, want 1", v)
	}
	if owner, err := sb.Device(); err != nil || owner != d {
		t.Errorf("Device() = %v, %v", owner, err)
	}
	if _, err := d.CreateStateBlock(0); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("CreateStateBlock(0) error = %v", err)
	}
}

func TestStateBlockRecording(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if _, err := d.EndStateBlock(); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("EndStateBlock() without Begin error = %v", err)
	}
	if err := d.BeginStateBlock(); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginStateBlock(); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("nested BeginStateBlock() error = %v", err)
	}
	d.SetRenderState(d3d9.RSCullMode, 1)
	d.SetViewport(d3d9.Viewport{Width: 10, Height: 10, MaxZ: 1})
	if v, _ := d.RenderState(d3d9.RSCullMode); v == 1 {
		t.Error("recorded state reached the device")
	}
	if vp := d.Viewport(); vp.Width != 800 {
		t.Errorf("recorded viewport reached the device: %+v", vp)
	}
	sb, err := d.EndStateBlock()
	if err != nil {
		t.Fatal(err)
	}
	defer sb.Release()

	if err := sb.Apply(); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.RenderState(d3d9.RSCullMode); v != 1 {
		t.Errorf("CullMode after Apply = %d, want 1", v)
	}
	if vp := d.Viewport(); vp.Width != 10 {
		t.Errorf("viewport after Apply = %+v", vp)
	}
	if got := softDevice(d).Context().Viewports(); got[0].Width != 10 {
		t.Errorf("modern viewport after Apply = %+v", got[0])
	}
}

func TestRecordedBlockTouchesOnlyRecordedStates(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if err := d.BeginStateBlock(); err != nil {
		t.Fatal(err)
	}
	d.SetRenderState(d3d9.RSZWriteEnable, d3d9.False)
	sb, err := d.EndStateBlock()
	if err != nil {
		t.Fatal(err)
	}
	defer sb.Release()

	tex, err := d.CreateTexture(16, 16, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Release()
	d.SetRenderState(d3d9.RSCullMode, d3d9.CullNone)
	d.SetTexture(0, tex)
	d.SetViewport(d3d9.Viewport{Width: 20, Height: 20, MaxZ: 1})

	if err := sb.Apply(); err != nil {
		t.Fatal(err)
	}
	if v, _ := d.RenderState(d3d9.RSZWriteEnable); v != d3d9.False {
		t.Errorf("ZWriteEnable after Apply = %d, want false", v)
	}
	if v, _ := d.RenderState(d3d9.RSCullMode); v != d3d9.CullNone {
		t.Errorf("CullMode after Apply = %d, want %d", v, d3d9.CullNone)
	}
	if got, _ := d.Texture(0); got != tex {
		t.Errorf("Texture(0) after Apply = %v, want the bound texture", got)
	} else {
		got.Release()
	}
	if vp := d.Viewport(); vp.Width != 20 {
		t.Errorf("viewport after Apply = %+v", vp)
	}

	d.SetRenderState(d3d9.RSZWriteEnable, d3d9.True)
	if err := sb.Capture(); err != nil {
		t.Fatal(err)
	}
	d.SetRenderState(d3d9.RSZWriteEnable, d3d9.False)
	d.SetRenderState(d3d9.RSCullMode, d3d9.CullCCW)
	sb.Apply()
	if v, _ := d.RenderState(d3d9.RSZWriteEnable); v != d3d9.True {
		t.Errorf("ZWriteEnable after Capture and Apply = %d, want true", v)
	}
	if v, _ := d.RenderState(d3d9.RSCullMode); v != d3d9.CullCCW {
		t.Errorf("CullMode after Capture and Apply = %d, want %d", v, d3d9.CullCCW)
	}
}

func TestStateBlockViewportClampedToRenderTarget(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	sb, err := d.CreateStateBlock(d3d9.SBTAll)
	if err != nil {
		t.Fatal(err)
	}
	defer sb.Release()

	rt, err := d.CreateRenderTarget(256, 128, d3d9.FmtX8R8G8B8, d3d9.MultisampleNone, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Release()
	if err := d.SetRenderTarget(0, rt); err != nil {
		t.Fatal(err)
	}

	if err := sb.Apply(); err != nil {
		t.Fatal(err)
	}
	if vp := d.Viewport(); vp.Width != 256 || vp.Height != 128 {
		t.Errorf("viewport after Apply = %+v, want 256x128", vp)
	}
	if got := softDevice(d).Context().Viewports(); got[0].Width != 256 || got[0].Height != 128 {
		t.Errorf("modern viewport after Apply = %+v", got[0])
	}
}
