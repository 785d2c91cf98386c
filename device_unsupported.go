package nine

import (
	"github.com/gogpu/nine/d3d9"
)

// The methods below belong to the legacy device but need a draw pipeline
// or display control this package does not provide. Each reports
// NotAvailable.

// Reset is not available.
func (d *Device) Reset(pp *d3d9.PresentParameters) error { return notAvailable("Reset") }

// Clear is not available.
func (d *Device) Clear(rects []d3d9.Rect, flags uint32, color uint32, z float32, stencil uint32) error {
	return notAvailable("Clear", "flags", flags)
}

// ColorFill is not available.
func (d *Device) ColorFill(s *Surface, r *d3d9.Rect, color uint32) error {
	return notAvailable("ColorFill")
}

// StretchRect is not available.
func (d *Device) StretchRect(src *Surface, srcRect *d3d9.Rect, dst *Surface, dstRect *d3d9.Rect, filter d3d9.TextureFilterType) error {
	return notAvailable("StretchRect")
}

// UpdateSurface is not available.
func (d *Device) UpdateSurface(src *Surface, srcRect *d3d9.Rect, dst *Surface, dstX, dstY int32) error {
	return notAvailable("UpdateSurface")
}

// UpdateTexture is not available.
func (d *Device) UpdateTexture(src, dst BaseTexture) error { return notAvailable("UpdateTexture") }

// RenderTargetData is not available.
func (d *Device) RenderTargetData(rt, dst *Surface) error { return notAvailable("GetRenderTargetData") }

// FrontBufferData is not available.
func (d *Device) FrontBufferData(sc uint32, dst *Surface) error {
	return notAvailable("GetFrontBufferData")
}

// CreateVolumeTexture is not available.
func (d *Device) CreateVolumeTexture(w, h, depth, levels uint32, u d3d9.Usage, f d3d9.Format, p d3d9.Pool) error {
	return notAvailable("CreateVolumeTexture")
}

// DrawPrimitive is not available.
func (d *Device) DrawPrimitive(pt d3d9.PrimitiveType, start, count uint32) error {
	return notAvailable("DrawPrimitive", "type", pt, "count", count)
}

// DrawIndexedPrimitive is not available.
func (d *Device) DrawIndexedPrimitive(pt d3d9.PrimitiveType, baseVertex int32, minIndex, numVertices, start, count uint32) error {
	return notAvailable("DrawIndexedPrimitive", "type", pt, "count", count)
}

// DrawPrimitiveUP is not available.
func (d *Device) DrawPrimitiveUP(pt d3d9.PrimitiveType, count uint32, data []byte, stride uint32) error {
	return notAvailable("DrawPrimitiveUP", "type", pt, "count", count)
}

// SetStreamSource is not available.
func (d *Device) SetStreamSource(stream uint32, vb *VertexBuffer, offset, stride uint32) error {
	return notAvailable("SetStreamSource", "stream", stream)
}

// SetIndices is not available.
func (d *Device) SetIndices(ib *IndexBuffer) error { return notAvailable("SetIndices") }

// CreateVertexShader is not available.
func (d *Device) CreateVertexShader(code []uint32) error { return notAvailable("CreateVertexShader") }

// CreatePixelShader is not available.
func (d *Device) CreatePixelShader(code []uint32) error { return notAvailable("CreatePixelShader") }

// SetLight is not available.
func (d *Device) SetLight(i uint32, l d3d9.Light) error { return notAvailable("SetLight", "index", i) }

// LightEnable is not available.
func (d *Device) LightEnable(i uint32, enable bool) error {
	return notAvailable("LightEnable", "index", i)
}

// SetClipPlane is not available.
func (d *Device) SetClipPlane(i uint32, plane [4]float32) error {
	return notAvailable("SetClipPlane", "index", i)
}

// SetPaletteEntries is not available.
func (d *Device) SetPaletteEntries(palette uint32, entries [][4]byte) error {
	return notAvailable("SetPaletteEntries", "palette", palette)
}

// SetGammaRamp is not available.
func (d *Device) SetGammaRamp(sc uint32, flags uint32, ramp *d3d9.GammaRamp) error {
	return notAvailable("SetGammaRamp")
}

// SetCursorProperties is not available.
func (d *Device) SetCursorProperties(x, y uint32, bitmap *Surface) error {
	return notAvailable("SetCursorProperties")
}

// CreateQuery is not available.
func (d *Device) CreateQuery(t d3d9.QueryType) error { return notAvailable("CreateQuery", "type", t) }

// DrawRectPatch is not available.
func (d *Device) DrawRectPatch(handle uint32, segs [4]float32) error {
	return notAvailable("DrawRectPatch")
}
