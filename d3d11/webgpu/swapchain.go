package webgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/soft"
)

// copyPitchAlignment is the row alignment of texture-to-buffer copies.
const copyPitchAlignment = 256

const presentTimeout = 5 * time.Second

// SwapChain is an offscreen swap chain of GPU textures.
type SwapChain struct {
	dev     *Device
	desc    d3d11.SwapChainDesc
	buffers []*Texture
	current int
}

// CreateSwapChain implements d3d11.Factory.
func (f *Factory) CreateSwapChain(dev d3d11.Device, desc *d3d11.SwapChainDesc) (d3d11.SwapChain, error) {
	wd, ok := dev.(*Device)
	if !ok {
		return nil, fmt.Errorf("%w: foreign device %T", d3d11.ErrInvalidArg, dev)
	}
	sc, err := wd.CreateSwapChain(desc)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// CreateSwapChain creates a swap chain on d. It serves devices that were
// not opened through a Factory.
func (d *Device) CreateSwapChain(desc *d3d11.SwapChainDesc) (*SwapChain, error) {
	if desc.OutputWindow == nil || desc.BufferCount == 0 || desc.BufferCount > 16 {
		return nil, fmt.Errorf("%w: swap chain with %d buffers", d3d11.ErrInvalidArg, desc.BufferCount)
	}
	sd := *desc
	if sd.BufferDesc.Width == 0 || sd.BufferDesc.Height == 0 {
		w, h, err := sd.OutputWindow.ClientSize()
		if err != nil {
			return nil, err
		}
		if sd.BufferDesc.Width == 0 {
			sd.BufferDesc.Width = w
		}
		if sd.BufferDesc.Height == 0 {
			sd.BufferDesc.Height = h
		}
	}
	s := &SwapChain{dev: d, desc: sd}
	for range sd.BufferCount {
		t, err := d.CreateTexture2D(&d3d11.Texture2DDesc{
			Width:      sd.BufferDesc.Width,
			Height:     sd.BufferDesc.Height,
			MipLevels:  1,
			ArraySize:  1,
			Format:     sd.BufferDesc.Format,
			SampleDesc: sd.SampleDesc,
			Usage:      d3d11.UsageDefault,
			BindFlags:  d3d11.BindRenderTarget | d3d11.BindShaderResource,
		})
		if err != nil {
			s.Release()
			return nil, err
		}
		s.buffers = append(s.buffers, t.(*Texture))
	}
	return s, nil
}

// Present implements d3d11.SwapChain. Multisampled back buffers are not
// read back.
func (s *SwapChain) Present(syncInterval uint32, _ d3d11.PresentFlag) error {
	if syncInterval > 4 {
		return fmt.Errorf("%w: sync interval %d", d3d11.ErrInvalidArg, syncInterval)
	}
	back := s.buffers[s.current]
	if w, ok := s.desc.OutputWindow.(*soft.Window); ok && back.desc.SampleDesc.Count == 1 {
		pix, pitch, err := s.readback(back)
		if err != nil {
			return err
		}
		d := back.desc
		w.Show(soft.Image(d.Format, d.Width, d.Height, pitch, pix))
	}
	if s.desc.SwapEffect == d3d11.SwapEffectSequential {
		s.current = (s.current + 1) % len(s.buffers)
	}
	return nil
}

// readback copies a back buffer into host memory and returns its rows.
func (s *SwapChain) readback(t *Texture) ([]byte, uint32, error) {
	device, queue := s.dev.device, s.dev.queue
	w, h := t.desc.Width, t.desc.Height
	pitch := (t.desc.Format.RowPitch(w) + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)

	staging, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "nine_present_staging",
		Size:  uint64(pitch) * uint64(h),
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("create staging buffer: %w", err)
	}
	defer device.DestroyBuffer(staging)

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "nine_present"})
	if err != nil {
		return nil, 0, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("nine_present"); err != nil {
		return nil, 0, fmt.Errorf("begin encoding: %w", err)
	}
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(t.tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: pitch, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: t.tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, 0, fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return nil, 0, fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)
	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, 0, fmt.Errorf("submit: %w", err)
	}
	ok, err := device.Wait(fence, 1, presentTimeout)
	if err != nil || !ok {
		return nil, 0, fmt.Errorf("%w: wait for GPU: ok=%v err=%v", d3d11.ErrWasStillDrawing, ok, err)
	}
	pix := make([]byte, uint64(pitch)*uint64(h))
	if err := queue.ReadBuffer(staging, 0, pix); err != nil {
		return nil, 0, fmt.Errorf("read back: %w", err)
	}
	return pix, pitch, nil
}

// Buffer implements d3d11.SwapChain.
func (s *SwapChain) Buffer(i uint32) (d3d11.Texture2D, error) {
	if int(i) >= len(s.buffers) {
		return nil, fmt.Errorf("%w: swap chain buffer %d of %d", d3d11.ErrInvalidArg, i, len(s.buffers))
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
