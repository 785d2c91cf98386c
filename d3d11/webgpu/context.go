package webgpu

import (
	"fmt"

	"github.com/gogpu/nine/d3d11"
)

// Context is the immediate context. Map returns host shadows, so it never
// waits on the GPU.
type Context struct {
	dev       *Device
	rtvs      []d3d11.RenderTargetView
	dsv       d3d11.DepthStencilView
	viewports []d3d11.Viewport
}

// Map implements d3d11.DeviceContext.
func (c *Context) Map(r d3d11.Resource, sub uint32, mt d3d11.MapType, _ d3d11.MapFlag) (d3d11.MappedSubresource, error) {
	switch res := r.(type) {
	case *Texture:
		if err := d3d11.CheckMap(res.desc.Usage, res.desc.CPUAccessFlags, mt); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if res.shadow == nil || sub >= res.desc.Subresources() {
			return d3d11.MappedSubresource{}, fmt.Errorf("%w: subresource %d", d3d11.ErrInvalidArg, sub)
		}
		if res.mapped[sub] {
			return d3d11.MappedSubresource{}, fmt.Errorf("%w: subresource %d already mapped", d3d11.ErrInvalidArg, sub)
		}
		if mt == d3d11.MapWriteDiscard {
			res.shadow[sub] = make([]byte, len(res.shadow[sub]))
		}
		res.mapped[sub] = true
		w, h := res.desc.MipSize(sub % res.desc.MipLevels)
		pitch := res.desc.Format.RowPitch(w)
		return d3d11.MappedSubresource{
			Data:       res.shadow[sub],
			RowPitch:   pitch,
			DepthPitch: pitch * res.desc.Format.RowCount(h),
		}, nil
	case *Buffer:
		if err := d3d11.CheckMap(res.desc.Usage, res.desc.CPUAccessFlags, mt); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if res.shadow == nil || sub != 0 {
			return d3d11.MappedSubresource{}, fmt.Errorf("%w: subresource %d", d3d11.ErrInvalidArg, sub)
		}
		if res.mapped {
			return d3d11.MappedSubresource{}, fmt.Errorf("%w: buffer already mapped", d3d11.ErrInvalidArg)
		}
		if mt == d3d11.MapWriteDiscard {
			res.shadow = make([]byte, len(res.shadow))
		}
		res.mapped = true
		n := uint32(len(res.shadow))
		return d3d11.MappedSubresource{Data: res.shadow, RowPitch: n, DepthPitch: n}, nil
	}
	return d3d11.MappedSubresource{}, fmt.Errorf("%w: foreign resource %T", d3d11.ErrInvalidArg, r)
}

// Unmap implements d3d11.DeviceContext. Dynamic resources are uploaded.
func (c *Context) Unmap(r d3d11.Resource, sub uint32) {
	switch res := r.(type) {
	case *Texture:
		if int(sub) < len(res.mapped) && res.mapped[sub] {
			res.mapped[sub] = false
			res.upload(sub)
		}
	case *Buffer:
		if res.mapped {
			res.mapped = false
			res.upload()
		}
	}
}

// OMSetRenderTargets implements d3d11.DeviceContext.
func (c *Context) OMSetRenderTargets(rtvs []d3d11.RenderTargetView, dsv d3d11.DepthStencilView) {
	c.rtvs = append(c.rtvs[:0], rtvs...)
	c.dsv = dsv
}

// RenderTargets returns the bound output views.
func (c *Context) RenderTargets() ([]d3d11.RenderTargetView, d3d11.DepthStencilView) {
	return c.rtvs, c.dsv
}

// RSSetViewports implements d3d11.DeviceContext.
func (c *Context) RSSetViewports(vps []d3d11.Viewport) {
	c.viewports = append(c.viewports[:0], vps...)
}

// Viewports returns the bound viewports.
func (c *Context) Viewports() []d3d11.Viewport { return c.viewports }
