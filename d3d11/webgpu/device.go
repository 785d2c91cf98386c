package webgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nine/d3d11"
)

// Device adapts a HAL device and queue.
type Device struct {
	device hal.Device
	queue  hal.Queue
	ctx    *Context
	owned  bool
}

// NewDevice wraps an already opened HAL device. The caller keeps ownership
// of device and queue.
func NewDevice(device hal.Device, queue hal.Queue) *Device {
	d := &Device{device: device, queue: queue}
	d.ctx = &Context{dev: d}
	return d
}

// CreateTexture2D implements d3d11.Device.
func (d *Device) CreateTexture2D(desc *d3d11.Texture2DDesc) (d3d11.Texture2D, error) {
	dd, err := desc.Validate()
	if err != nil {
		return nil, err
	}
	tf := TextureFormat(dd.Format)
	if tf == gputypes.TextureFormatUndefined && dd.Usage != d3d11.UsageStaging {
		return nil, fmt.Errorf("%w: format %d", d3d11.ErrUnsupported, dd.Format)
	}

	t := &Texture{dev: d, desc: dd, format: tf}
	t.mapped = make([]bool, dd.Subresources())
	if dd.Usage != d3d11.UsageDefault {
		t.shadow = make([][]byte, dd.Subresources())
		for i := range t.shadow {
			t.shadow[i] = make([]byte, t.size(uint32(i)))
		}
	}
	if dd.Usage == d3d11.UsageStaging {
		return t, nil
	}
	t.tex, err = d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "nine_texture",
		Size:          hal.Extent3D{Width: dd.Width, Height: dd.Height, DepthOrArrayLayers: dd.ArraySize},
		MipLevelCount: dd.MipLevels,
		SampleCount:   dd.SampleDesc.Count,
		Dimension:     gputypes.TextureDimension2D,
		Format:        tf,
		Usage:         textureUsage(dd.BindFlags),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create texture: %v", d3d11.ErrOutOfMemory, err)
	}
	return t, nil
}

// CreateBuffer implements d3d11.Device.
func (d *Device) CreateBuffer(desc *d3d11.BufferDesc) (d3d11.Buffer, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	b := &Buffer{dev: d, desc: *desc}
	if desc.Usage != d3d11.UsageDefault {
		b.shadow = make([]byte, desc.ByteWidth)
	}
	if desc.Usage == d3d11.UsageStaging {
		return b, nil
	}
	var err error
	b.buf, err = d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "nine_buffer",
		Size:  uint64(desc.ByteWidth+3) &^ 3,
		Usage: bufferUsage(desc.BindFlags),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create buffer: %v", d3d11.ErrOutOfMemory, err)
	}
	return b, nil
}

func (d *Device) createView(t d3d11.Texture2D, bind d3d11.BindFlag) (*View, error) {
	wt, ok := t.(*Texture)
	if !ok || wt.tex == nil || wt.desc.BindFlags&bind == 0 {
		return nil, fmt.Errorf("%w: texture is not bound as %#x", d3d11.ErrInvalidArg, uint32(bind))
	}
	view, err := d.device.CreateTextureView(wt.tex, &hal.TextureViewDescriptor{
		Label:           "nine_view",
		Format:          wt.format,
		Dimension:       gputypes.TextureViewDimension2D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create view: %v", d3d11.ErrOutOfMemory, err)
	}
	return &View{dev: d, tex: wt, view: view}, nil
}

// CreateRenderTargetView implements d3d11.Device.
func (d *Device) CreateRenderTargetView(t d3d11.Texture2D) (d3d11.RenderTargetView, error) {
	return d.createView(t, d3d11.BindRenderTarget)
}

// CreateDepthStencilView implements d3d11.Device.
func (d *Device) CreateDepthStencilView(t d3d11.Texture2D) (d3d11.DepthStencilView, error) {
	return d.createView(t, d3d11.BindDepthStencil)
}

// CheckFormatSupport implements d3d11.Device.
func (d *Device) CheckFormatSupport(f d3d11.Format) (d3d11.FormatSupport, error) {
	switch {
	case f == d3d11.FormatR16Uint || f == d3d11.FormatR32Uint:
		return d3d11.FormatSupportBuffer | d3d11.FormatSupportIAIndexBuffer, nil
	case TextureFormat(f) == gputypes.TextureFormatUndefined:
		return 0, fmt.Errorf("%w: format %d", d3d11.ErrUnsupported, f)
	case f.IsDepth():
		return d3d11.FormatSupportTexture2D | d3d11.FormatSupportDepthStencil, nil
	}
	sup := d3d11.FormatSupportTexture2D | d3d11.FormatSupportTextureCube |
		d3d11.FormatSupportMip | d3d11.FormatSupportCPULockable |
		d3d11.FormatSupportRenderTarget | d3d11.FormatSupportBlendable |
		d3d11.FormatSupportMultisampleRT
	if f == d3d11.FormatB8G8R8A8Unorm {
		sup |= d3d11.FormatSupportDisplay
	}
	return sup, nil
}

// CheckMultisampleQualityLevels implements d3d11.Device. WebGPU guarantees
// 4x multisampling for renderable formats and nothing else.
func (d *Device) CheckMultisampleQualityLevels(f d3d11.Format, count uint32) (uint32, error) {
	sup, err := d.CheckFormatSupport(f)
	if err != nil {
		return 0, err
	}
	switch {
	case count == 1:
		return 1, nil
	case count == 4 && sup&(d3d11.FormatSupportMultisampleRT|d3d11.FormatSupportDepthStencil) != 0:
		return 1, nil
	}
	return 0, nil
}

// FeatureLevel implements d3d11.Device.
func (d *Device) FeatureLevel() d3d11.FeatureLevel { return d3d11.FeatureLevel11_0 }

// HAL returns the wrapped device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) { return d.device, d.queue }

// ImmediateContext implements d3d11.Device.
func (d *Device) ImmediateContext() d3d11.DeviceContext { return d.ctx }

// Release implements d3d11.Device. Devices opened by a Factory are
// destroyed.
func (d *Device) Release() {
	d.ctx.OMSetRenderTargets(nil, nil)
	if d.owned {
		d.device.Destroy()
		d.owned = false
	}
}
