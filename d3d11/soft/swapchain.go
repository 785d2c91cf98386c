package soft

import (
	"encoding/binary"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/nine/d3d11"
)

// Window is an offscreen presentation target. Each present replaces Frame
// with the back buffer scaled to Width by Height.
type Window struct {
	Width     uint32
	Height    uint32
	Frame     *image.RGBA
	Presented int
}

// ClientSize implements platform.Window.
func (w *Window) ClientSize() (uint32, uint32, error) {
	return w.Width, w.Height, nil
}

// Show replaces the frame with src scaled to the window size.
func (w *Window) Show(src *image.RGBA) {
	dst := image.NewRGBA(image.Rect(0, 0, int(w.Width), int(w.Height)))
	if dst.Bounds().Size() == src.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	w.Frame = dst
	w.Presented++
}

// Image converts rows of a back buffer in format f to RGBA. Formats other
// than B8G8R8A8 and R10G10B10A2 are copied as R8G8B8A8.
func Image(f d3d11.Format, width, height, pitch uint32, pix []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for y := range height {
		row := pix[y*pitch:]
		out := img.Pix[y*uint32(img.Stride):]
		for x := range width {
			p := row[x*4 : x*4+4]
			q := out[x*4 : x*4+4]
			switch f {
			case d3d11.FormatB8G8R8A8Unorm, d3d11.FormatB8G8R8X8Unorm:
				q[0], q[1], q[2], q[3] = p[2], p[1], p[0], p[3]
			case d3d11.FormatR10G10B10A2Unorm:
				v := binary.LittleEndian.Uint32(p)
				q[0] = uint8(v >> 2 & 0xff)
				q[1] = uint8(v >> 12 & 0xff)
				q[2] = uint8(v >> 22 & 0xff)
				q[3] = uint8(v >> 30 * 85)
			default:
				copy(q, p)
			}
		}
	}
	return img
}

// SwapChain is a software swap chain.
type SwapChain struct {
	dev     *Device
	desc    d3d11.SwapChainDesc
	buffers []*Texture
	current int
}

// CreateSwapChain implements d3d11.Factory.
func (f *Factory) CreateSwapChain(dev d3d11.Device, desc *d3d11.SwapChainDesc) (d3d11.SwapChain, error) {
	sd, ok := dev.(*Device)
	if !ok {
		return nil, invalid("foreign device %T", dev)
	}
	if desc.OutputWindow == nil {
		return nil, invalid("swap chain without output window")
	}
	if desc.BufferCount == 0 || desc.BufferCount > 16 {
		return nil, invalid("%d swap chain buffers", desc.BufferCount)
	}
	d := *desc
	if d.BufferDesc.Width == 0 || d.BufferDesc.Height == 0 {
		w, h, err := d.OutputWindow.ClientSize()
		if err != nil {
			return nil, err
		}
		if d.BufferDesc.Width == 0 {
			d.BufferDesc.Width = w
		}
		if d.BufferDesc.Height == 0 {
			d.BufferDesc.Height = h
		}
	}
	switch d.BufferDesc.Format {
	case d3d11.FormatB8G8R8A8Unorm, d3d11.FormatR8G8B8A8Unorm, d3d11.FormatR10G10B10A2Unorm:
	default:
		return nil, invalid("back buffer format %d", d.BufferDesc.Format)
	}

	sc := &SwapChain{dev: sd, desc: d}
	for range d.BufferCount {
		t, err := sd.CreateTexture2D(&d3d11.Texture2DDesc{
			Width:      d.BufferDesc.Width,
			Height:     d.BufferDesc.Height,
			MipLevels:  1,
			ArraySize:  1,
			Format:     d.BufferDesc.Format,
			SampleDesc: d.SampleDesc,
			Usage:      d3d11.UsageDefault,
			BindFlags:  d3d11.BindRenderTarget | d3d11.BindShaderResource,
		})
		if err != nil {
			sc.Release()
			return nil, err
		}
		sc.buffers = append(sc.buffers, t.(*Texture))
	}
	return sc, nil
}

// Present implements d3d11.SwapChain.
func (s *SwapChain) Present(syncInterval uint32, flags d3d11.PresentFlag) error {
	if syncInterval > 4 {
		return invalid("sync interval %d", syncInterval)
	}
	if err := s.dev.wait(flags&d3d11.PresentDoNotWait != 0); err != nil {
		return err
	}
	back := s.buffers[s.current]
	if w, ok := s.desc.OutputWindow.(*Window); ok {
		d := back.desc
		w.Show(Image(d.Format, d.Width, d.Height, d.Format.RowPitch(d.Width), back.data[0]))
	}
	if s.desc.SwapEffect == d3d11.SwapEffectSequential {
		s.current = (s.current + 1) % len(s.buffers)
	}
	return nil
}

// Buffer implements d3d11.SwapChain.
func (s *SwapChain) Buffer(i uint32) (d3d11.Texture2D, error) {
	if int(i) >= len(s.buffers) {
		return nil, invalid("swap chain buffer %d of %d", i, len(s.buffers))
	}
	return s.buffers[(s.current+int(i))%len(s.buffers)], nil
}

// Desc implements d3d11.SwapChain.
func (s *SwapChain) Desc() d3d11.SwapChainDesc { return s.desc }

// Release implements d3d11.SwapChain.
func (s *SwapChain) Release() {
	for _, b := range s.buffers {
		b.Release()
	}
	s.buffers = nil
}
