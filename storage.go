package nine

import (
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/format"
	"github.com/gogpu/nine/internal/usage"
)

// image is the storage behind a surface, texture or cube texture: a modern
// texture, or host memory for the Scratch pool.
type image struct {
	dev    DeviceID
	desc   d3d11.Texture2DDesc
	modern d3d11.Texture2D
	host   [][]byte

	format    d3d9.Format
	usage     d3d9.Usage
	pool      d3d9.Pool
	msType    d3d9.MultisampleType
	msQuality uint32
}

// newImage allocates storage for desc. Scratch images are validated like
// modern ones but never reach the device.
func (d *Device) newImage(op string, desc d3d11.Texture2DDesc, f d3d9.Format, u d3d9.Usage, p d3d9.Pool) (*image, error) {
	if err := d.live(op); err != nil {
		return nil, err
	}
	im := &image{dev: d.id, format: f, usage: u, pool: p}
	if p == d3d9.PoolScratch {
		norm, err := desc.Validate()
		if err != nil {
			return nil, invalidCall(op, err.Error())
		}
		im.desc = norm
		im.host = make([][]byte, norm.Subresources())
		for sub := range im.host {
			w, h := norm.MipSize(uint32(sub) % norm.MipLevels)
			im.host[sub] = make([]byte, norm.Format.RowPitch(w)*norm.Format.RowCount(h))
		}
		return im, nil
	}
	t, err := d.modern.CreateTexture2D(&desc)
	if err != nil {
		return nil, translate(op, err)
	}
	im.modern = t
	im.desc = t.Desc()
	return im, nil
}

func (im *image) release() {
	if im.modern != nil {
		im.modern.Release()
		im.modern = nil
	}
	im.host = nil
}

// levelSize returns the extent of subresource sub.
func (im *image) levelSize(sub uint32) (uint32, uint32) {
	return im.desc.MipSize(sub % im.desc.MipLevels)
}

func (im *image) levelDesc(sub uint32) d3d9.SurfaceDesc {
	w, h := im.levelSize(sub)
	return d3d9.SurfaceDesc{
		Format:             im.format,
		Type:               d3d9.RTypeSurface,
		Usage:              im.usage,
		Pool:               im.pool,
		MultiSampleType:    im.msType,
		MultiSampleQuality: im.msQuality,
		Width:              w,
		Height:             h,
	}
}

// lockable reports whether the CPU can map the image at all.
func (im *image) lockable() bool {
	return im.modern == nil || im.desc.Usage != d3d11.UsageDefault
}

// checkRect validates a lock rectangle on subresource sub.
func (im *image) checkRect(op string, sub uint32, r *d3d9.Rect) error {
	if r == nil {
		return nil
	}
	w, h := im.levelSize(sub)
	if r.Empty() || r.Left < 0 || r.Top < 0 || uint32(r.Right) > w || uint32(r.Bottom) > h {
		return invalidCall(op, "rectangle outside the surface", "rect", *r)
	}
	if im.desc.Format.Compressed() && (r.Left%4 != 0 || r.Top%4 != 0) {
		return invalidCall(op, "rectangle not block aligned", "rect", *r)
	}
	return nil
}

// rectOffset returns the byte offset of the origin of a checked rectangle
// within a row pitch of pitch.
func (im *image) rectOffset(r *d3d9.Rect, pitch uint32) uint32 {
	if r == nil {
		return 0
	}
	f := im.desc.Format
	if f.Compressed() {
		return uint32(r.Top/4)*pitch + uint32(r.Left/4)*f.ElementSize()
	}
	return uint32(r.Top)*pitch + f.RowPitch(uint32(r.Left))
}

// lock maps subresource sub for the CPU.
func (im *image) lock(op string, sub uint32, r *d3d9.Rect, flags d3d9.LockFlags) (d3d9.LockedRect, error) {
	if sub >= im.desc.Subresources() {
		return d3d9.LockedRect{}, invalidCall(op, "subresource out of range", "sub", sub)
	}
	if !im.lockable() {
		return d3d9.LockedRect{}, invalidCall(op, "resource is not lockable", "usage", im.usage, "pool", im.pool)
	}
	if format.IsDepthStencil(im.format) && !format.IsLockable(im.format) {
		return d3d9.LockedRect{}, invalidCall(op, "depth format is not lockable", "format", im.format)
	}
	if err := im.checkRect(op, sub, r); err != nil {
		return d3d9.LockedRect{}, err
	}

	var data []byte
	var pitch uint32
	if im.modern == nil {
		w, _ := im.levelSize(sub)
		data, pitch = im.host[sub], im.desc.Format.RowPitch(w)
	} else {
		d, err := lookupDevice(im.dev)
		if err != nil {
			return d3d9.LockedRect{}, err
		}
		mt, mf := usage.MapFor(im.usage, im.desc.CPUAccessFlags, flags)
		m, err := d.imm.Map(im.modern, sub, mt, mf)
		if err != nil {
			return d3d9.LockedRect{}, translate(op, err)
		}
		data, pitch = m.Data, m.RowPitch
	}

	return d3d9.LockedRect{Pitch: int32(pitch), Bits: data[im.rectOffset(r, pitch):]}, nil
}

// unlock unmaps subresource sub. It never fails.
func (im *image) unlock(sub uint32) {
	if im.modern == nil || sub >= im.desc.Subresources() {
		return
	}
	if d, err := lookupDevice(im.dev); err == nil {
		d.imm.Unmap(im.modern, sub)
	}
}

// linear is the storage behind a vertex or index buffer.
type linear struct {
	dev    DeviceID
	modern d3d11.Buffer
	size   uint32
	usage  d3d9.Usage
	pool   d3d9.Pool
}

func (d *Device) newLinear(op string, size uint32, u d3d9.Usage, p d3d9.Pool, bind d3d11.BindFlag) (*linear, error) {
	if err := d.live(op); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, invalidCall(op, "zero length")
	}
	if p == d3d9.PoolScratch {
		return nil, invalidCall(op, "buffers cannot live in the scratch pool")
	}
	r, err := usage.Buffer(u, p, bind)
	if err != nil {
		return nil, translate(op, err)
	}
	b, err := d.modern.CreateBuffer(&d3d11.BufferDesc{
		ByteWidth:      size,
		Usage:          r.Usage,
		BindFlags:      r.Bind,
		CPUAccessFlags: r.CPUAccess,
	})
	if err != nil {
		return nil, translate(op, err)
	}
	return &linear{dev: d.id, modern: b, size: size, usage: u, pool: p}, nil
}

func (l *linear) release() {
	if l.modern != nil {
		l.modern.Release()
		l.modern = nil
	}
}

// lock maps size bytes at offset. A zero size locks up to the end of the
// buffer.
func (l *linear) lock(op string, offset, size uint32, flags d3d9.LockFlags) ([]byte, error) {
	if size == 0 && offset < l.size {
		size = l.size - offset
	}
	if size == 0 || uint64(offset)+uint64(size) > uint64(l.size) {
		return nil, invalidCall(op, "range outside the buffer", "offset", offset, "size", size)
	}
	d, err := lookupDevice(l.dev)
	if err != nil {
		return nil, err
	}
	mt, mf := usage.MapFor(l.usage, l.modern.Desc().CPUAccessFlags, flags)
	m, err := d.imm.Map(l.modern, 0, mt, mf)
	if err != nil {
		return nil, translate(op, err)
	}
	return m.Data[offset : offset+size], nil
}

func (l *linear) unlock() {
	if d, err := lookupDevice(l.dev); err == nil && l.modern != nil {
		d.imm.Unmap(l.modern, 0)
	}
}
