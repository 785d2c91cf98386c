package nine

import (
	"github.com/gogpu/nine/d3d9"
)

// VertexBuffer holds vertex data.
type VertexBuffer struct {
	resource
	buf *linear
	fvf uint32
}

// Desc describes the buffer.
func (b *VertexBuffer) Desc() d3d9.VertexBufferDesc {
	return d3d9.VertexBufferDesc{
		Format: d3d9.FmtVertexData,
		Type:   d3d9.RTypeVertexBuffer,
		Usage:  b.buf.usage,
		Pool:   b.buf.pool,
		Size:   b.buf.size,
		FVF:    b.fvf,
	}
}

// Lock maps size bytes starting at offset. A zero size maps the rest of
// the buffer.
func (b *VertexBuffer) Lock(offset, size uint32, flags d3d9.LockFlags) ([]byte, error) {
	return b.buf.lock("VertexBuffer.Lock", offset, size, flags)
}

// Unlock unmaps the buffer. It always succeeds.
func (b *VertexBuffer) Unlock() error {
	b.buf.unlock()
	return nil
}

// IndexBuffer holds 16 or 32 bit indices.
type IndexBuffer struct {
	resource
	buf    *linear
	format d3d9.Format
}

// Desc describes the buffer.
func (b *IndexBuffer) Desc() d3d9.IndexBufferDesc {
	return d3d9.IndexBufferDesc{
		Format: b.format,
		Type:   d3d9.RTypeIndexBuffer,
		Usage:  b.buf.usage,
		Pool:   b.buf.pool,
		Size:   b.buf.size,
	}
}

// Lock maps size bytes starting at offset. A zero size maps the rest of
// the buffer.
func (b *IndexBuffer) Lock(offset, size uint32, flags d3d9.LockFlags) ([]byte, error) {
	return b.buf.lock("IndexBuffer.Lock", offset, size, flags)
}

// Unlock unmaps the buffer. It always succeeds.
func (b *IndexBuffer) Unlock() error {
	b.buf.unlock()
	return nil
}

// VertexDeclaration describes the layout of vertex streams. Devices hold
// a counted reference to the declaration bound to them.
type VertexDeclaration struct {
	dev   DeviceID
	refs  uint32
	elems []d3d9.VertexElement
}

// Device returns the device that created the declaration.
func (v *VertexDeclaration) Device() (*Device, error) { return lookupDevice(v.dev) }

// Elements returns the elements including the terminating DeclEnd.
func (v *VertexDeclaration) Elements() []d3d9.VertexElement {
	return append(append([]d3d9.VertexElement(nil), v.elems...), d3d9.DeclEnd)
}

// AddRef increments the reference count.
func (v *VertexDeclaration) AddRef() uint32 {
	v.refs++
	return v.refs
}

// Release decrements the reference count.
func (v *VertexDeclaration) Release() uint32 {
	if v.refs > 0 {
		v.refs--
	}
	return v.refs
}
