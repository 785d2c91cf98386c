package soft

import "github.com/gogpu/nine/d3d11"

// Texture is a host-memory 2-D texture. Subresources are stored tightly
// packed in the order of d3d11.CalcSubresource.
type Texture struct {
	desc     d3d11.Texture2DDesc
	data     [][]byte
	mapped   []bool
	released bool
}

// Desc implements d3d11.Texture2D.
func (t *Texture) Desc() d3d11.Texture2DDesc { return t.desc }

// Release implements d3d11.Resource.
func (t *Texture) Release() {
	t.released = true
	t.data = nil
}

// Released reports whether Release was called.
func (t *Texture) Released() bool { return t.released }

// Bytes returns the storage of a subresource.
func (t *Texture) Bytes(sub uint32) []byte {
	if int(sub) >= len(t.data) {
		return nil
	}
	return t.data[sub]
}

// Mapped reports whether a subresource is currently mapped.
func (t *Texture) Mapped(sub uint32) bool {
	return int(sub) < len(t.mapped) && t.mapped[sub]
}

// Buffer is a host-memory buffer.
type Buffer struct {
	desc     d3d11.BufferDesc
	data     []byte
	mapped   bool
	released bool
}

// Desc implements d3d11.Buffer.
func (b *Buffer) Desc() d3d11.BufferDesc { return b.desc }

// Release implements d3d11.Resource.
func (b *Buffer) Release() {
	b.released = true
	b.data = nil
}

// Released reports whether Release was called.
func (b *Buffer) Released() bool { return b.released }

// Bytes returns the buffer storage.
func (b *Buffer) Bytes() []byte { return b.data }

// View is a render-target or depth-stencil view.
type View struct {
	tex      *Texture
	released bool
}

// Texture implements d3d11.RenderTargetView and d3d11.DepthStencilView.
func (v *View) Texture() d3d11.Texture2D { return v.tex }

// Release implements d3d11.RenderTargetView.
func (v *View) Release() { v.released = true }

// Released reports whether Release was called.
func (v *View) Released() bool { return v.released }
