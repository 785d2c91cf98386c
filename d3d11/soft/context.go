package soft

import (
	"github.com/gogpu/nine/d3d11"
)

// Context is the immediate context of a software device.
type Context struct {
	dev       *Device
	rtvs      []d3d11.RenderTargetView
	dsv       d3d11.DepthStencilView
	viewports []d3d11.Viewport
	maps      int
}

// Map implements d3d11.DeviceContext.
func (c *Context) Map(r d3d11.Resource, sub uint32, mt d3d11.MapType, flags d3d11.MapFlag) (d3d11.MappedSubresource, error) {
	switch res := r.(type) {
	case *Texture:
		if res.released || sub >= res.desc.Subresources() {
			return d3d11.MappedSubresource{}, invalid("subresource %d", sub)
		}
		if res.mapped[sub] {
			return d3d11.MappedSubresource{}, invalid("subresource %d already mapped", sub)
		}
		if err := d3d11.CheckMap(res.desc.Usage, res.desc.CPUAccessFlags, mt); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if err := c.dev.wait(flags&d3d11.MapDoNotWait != 0 && mt != d3d11.MapWriteNoOverwrite); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if mt == d3d11.MapWriteDiscard {
			res.data[sub] = make([]byte, len(res.data[sub]))
		}
		res.mapped[sub] = true
		c.maps++
		w, h := res.desc.MipSize(sub % res.desc.MipLevels)
		pitch := res.desc.Format.RowPitch(w)
		return d3d11.MappedSubresource{
			Data:       res.data[sub],
			RowPitch:   pitch,
			DepthPitch: pitch * res.desc.Format.RowCount(h),
		}, nil
	case *Buffer:
		if res.released || sub != 0 {
			return d3d11.MappedSubresource{}, invalid("subresource %d", sub)
		}
		if res.mapped {
			return d3d11.MappedSubresource{}, invalid("buffer already mapped")
		}
		if err := d3d11.CheckMap(res.desc.Usage, res.desc.CPUAccessFlags, mt); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if err := c.dev.wait(flags&d3d11.MapDoNotWait != 0 && mt != d3d11.MapWriteNoOverwrite); err != nil {
			return d3d11.MappedSubresource{}, err
		}
		if mt == d3d11.MapWriteDiscard {
			res.data = make([]byte, len(res.data))
		}
		res.mapped = true
		c.maps++
		n := uint32(len(res.data))
		return d3d11.MappedSubresource{Data: res.data, RowPitch: n, DepthPitch: n}, nil
	}
	return d3d11.MappedSubresource{}, invalid("foreign resource %T", r)
}

// Unmap implements d3d11.DeviceContext.
func (c *Context) Unmap(r d3d11.Resource, sub uint32) {
	switch res := r.(type) {
	case *Texture:
		if int(sub) < len(res.mapped) && res.mapped[sub] {
			res.mapped[sub] = false
			c.maps--
		}
	case *Buffer:
		if res.mapped {
			res.mapped = false
			c.maps--
		}
	}
}

// OutstandingMaps returns the number of subresources currently mapped.
func (c *Context) OutstandingMaps() int { return c.maps }

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
