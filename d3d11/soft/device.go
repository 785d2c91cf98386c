package soft

import (
	"fmt"

	"github.com/gogpu/nine/d3d11"
)

// Device is a software device.
type Device struct {
	ctx  *Context
	busy bool
}

// NewDevice returns a device with an empty immediate context.
func NewDevice() *Device {
	d := &Device{}
	d.ctx = &Context{dev: d}
	return d
}

// SetGPUBusy simulates outstanding GPU work. While busy, maps and presents
// with a do-not-wait flag fail with DXGI_ERROR_WAS_STILL_DRAWING; blocking
// calls wait, which clears the flag.
func (d *Device) SetGPUBusy(busy bool) { d.busy = busy }

// wait returns ErrWasStillDrawing for a refused probe.
func (d *Device) wait(probe bool) error {
	if !d.busy {
		return nil
	}
	if probe {
		return d3d11.ErrWasStillDrawing
	}
	d.busy = false
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{d3d11.ErrInvalidArg}, args...)...)
}

// CreateTexture2D implements d3d11.Device.
func (d *Device) CreateTexture2D(desc *d3d11.Texture2DDesc) (d3d11.Texture2D, error) {
	dd, err := desc.Validate()
	if err != nil {
		return nil, err
	}

	t := &Texture{desc: dd}
	t.data = make([][]byte, dd.Subresources())
	t.mapped = make([]bool, len(t.data))
	for i := range t.data {
		w, h := dd.MipSize(uint32(i) % dd.MipLevels)
		t.data[i] = make([]byte, dd.Format.RowPitch(w)*dd.Format.RowCount(h))
	}
	return t, nil
}

// CreateBuffer implements d3d11.Device.
func (d *Device) CreateBuffer(desc *d3d11.BufferDesc) (d3d11.Buffer, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{desc: *desc, data: make([]byte, desc.ByteWidth)}, nil
}

// CreateRenderTargetView implements d3d11.Device.
func (d *Device) CreateRenderTargetView(t d3d11.Texture2D) (d3d11.RenderTargetView, error) {
	st, ok := t.(*Texture)
	if !ok || st.desc.BindFlags&d3d11.BindRenderTarget == 0 {
		return nil, invalid("texture is not bound as render target")
	}
	return &View{tex: st}, nil
}

// CreateDepthStencilView implements d3d11.Device.
func (d *Device) CreateDepthStencilView(t d3d11.Texture2D) (d3d11.DepthStencilView, error) {
	st, ok := t.(*Texture)
	if !ok || st.desc.BindFlags&d3d11.BindDepthStencil == 0 {
		return nil, invalid("texture is not bound as depth stencil")
	}
	return &View{tex: st}, nil
}

const colorSupport = d3d11.FormatSupportTexture2D | d3d11.FormatSupportTextureCube |
	d3d11.FormatSupportMip | d3d11.FormatSupportCPULockable

const renderSupport = d3d11.FormatSupportRenderTarget | d3d11.FormatSupportBlendable |
	d3d11.FormatSupportMipAutogen | d3d11.FormatSupportMultisampleRT

// CheckFormatSupport implements d3d11.Device.
func (d *Device) CheckFormatSupport(f d3d11.Format) (d3d11.FormatSupport, error) {
	switch {
	case f == d3d11.FormatUnknown:
		return 0, invalid("unknown format")
	case f.IsDepth():
		return d3d11.FormatSupportTexture2D | d3d11.FormatSupportDepthStencil, nil
	case f == d3d11.FormatR16Uint || f == d3d11.FormatR32Uint:
		return d3d11.FormatSupportBuffer | d3d11.FormatSupportIAIndexBuffer | colorSupport, nil
	case f.Compressed():
		return colorSupport, nil
	case f == d3d11.FormatB8G8R8A8Unorm || f == d3d11.FormatR10G10B10A2Unorm:
		return colorSupport | renderSupport | d3d11.FormatSupportDisplay, nil
	case f.ElementSize() > 0:
		return colorSupport | renderSupport | d3d11.FormatSupportIAVertexBuffer, nil
	}
	return 0, invalid("format %d", f)
}

// CheckMultisampleQualityLevels implements d3d11.Device.
func (d *Device) CheckMultisampleQualityLevels(f d3d11.Format, count uint32) (uint32, error) {
	sup, err := d.CheckFormatSupport(f)
	if err != nil {
		return 0, err
	}
	switch count {
	case 1:
		return 1, nil
	case 2, 4, 8:
		if sup&(d3d11.FormatSupportMultisampleRT|d3d11.FormatSupportDepthStencil) != 0 {
			return 1, nil
		}
	}
	return 0, nil
}

// FeatureLevel implements d3d11.Device.
func (d *Device) FeatureLevel() d3d11.FeatureLevel { return d3d11.FeatureLevel11_0 }

// ImmediateContext implements d3d11.Device.
func (d *Device) ImmediateContext() d3d11.DeviceContext { return d.ctx }

// Context returns the immediate context with its concrete type.
func (d *Device) Context() *Context { return d.ctx }

// Release implements d3d11.Device.
func (d *Device) Release() {
	d.ctx.OMSetRenderTargets(nil, nil)
}
