package webgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nine/d3d11"
)

// Texture is a 2-D texture. tex is nil for staging textures.
type Texture struct {
	dev    *Device
	desc   d3d11.Texture2DDesc
	format gputypes.TextureFormat
	tex    hal.Texture
	shadow [][]byte
	mapped []bool
}

func (t *Texture) size(sub uint32) int {
	w, h := t.desc.MipSize(sub % t.desc.MipLevels)
	return int(t.desc.Format.RowPitch(w) * t.desc.Format.RowCount(h))
}

// Desc implements d3d11.Texture2D.
func (t *Texture) Desc() d3d11.Texture2DDesc { return t.desc }

// HAL returns the GPU texture, or nil for staging textures.
func (t *Texture) HAL() hal.Texture { return t.tex }

// Release implements d3d11.Resource.
func (t *Texture) Release() {
	if t.tex != nil {
		t.dev.device.DestroyTexture(t.tex)
		t.tex = nil
	}
	t.shadow = nil
}

// upload writes a host subresource to the GPU texture.
func (t *Texture) upload(sub uint32) {
	if t.tex == nil {
		return
	}
	level := sub % t.desc.MipLevels
	w, h := t.desc.MipSize(level)
	t.dev.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: level,
			Origin:   hal.Origin3D{Z: sub / t.desc.MipLevels},
			Aspect:   gputypes.TextureAspectAll,
		},
		t.shadow[sub],
		&hal.ImageDataLayout{
			BytesPerRow:  t.desc.Format.RowPitch(w),
			RowsPerImage: t.desc.Format.RowCount(h),
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
}

// Buffer is a linear resource. buf is nil for staging buffers.
type Buffer struct {
	dev    *Device
	desc   d3d11.BufferDesc
	buf    hal.Buffer
	shadow []byte
	mapped bool
}

// Desc implements d3d11.Buffer.
func (b *Buffer) Desc() d3d11.BufferDesc { return b.desc }

// HAL returns the GPU buffer, or nil for staging buffers.
func (b *Buffer) HAL() hal.Buffer { return b.buf }

// Release implements d3d11.Resource.
func (b *Buffer) Release() {
	if b.buf != nil {
		b.dev.device.DestroyBuffer(b.buf)
		b.buf = nil
	}
	b.shadow = nil
}

func (b *Buffer) upload() {
	if b.buf == nil {
		return
	}
	data := b.shadow
	if pad := len(data) % 4; pad != 0 {
		data = append(data[:len(data):len(data)], make([]byte, 4-pad)...)
	}
	b.dev.queue.WriteBuffer(b.buf, 0, data)
}

// View is a render-target or depth-stencil view.
type View struct {
	dev  *Device
	tex  *Texture
	view hal.TextureView
}

// Texture implements d3d11.RenderTargetView.
func (v *View) Texture() d3d11.Texture2D { return v.tex }

// HAL returns the GPU view.
func (v *View) HAL() hal.TextureView { return v.view }

// Release implements d3d11.RenderTargetView.
func (v *View) Release() {
	if v.view != nil {
		v.dev.device.DestroyTextureView(v.view)
		v.view = nil
	}
}
