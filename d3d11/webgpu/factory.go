// Package webgpu implements the modern API on a wgpu HAL device.
//
// Default-usage textures and buffers are GPU resources. Dynamic resources
// keep a host shadow that is uploaded through the queue on Unmap, and
// staging resources live only in host memory. Swap chains are offscreen:
// Present reads the back buffer back into the frame of a soft.Window or
// discards it for any other window.
package webgpu

import (
	"fmt"
	"unicode/utf16"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nine/d3d11"
)

// Backend creates HAL instances. hal.Backend and noop.API satisfy it.
type Backend interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// Factory enumerates the adapters of one HAL instance.
type Factory struct {
	instance hal.Instance
	adapters []*Adapter
}

// NewFactory creates an instance on b and enumerates its adapters.
func NewFactory(b Backend) (*Factory, error) {
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("webgpu: create instance: %w", err)
	}
	f := &Factory{instance: instance}
	exposed := instance.EnumerateAdapters(nil)
	for i := range exposed {
		f.adapters = append(f.adapters, &Adapter{exposed: &exposed[i]})
	}
	if len(f.adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("webgpu: %w: no adapters", d3d11.ErrNotFound)
	}
	return f, nil
}

// Adapters implements d3d11.Factory.
func (f *Factory) Adapters() ([]d3d11.Adapter, error) {
	out := make([]d3d11.Adapter, len(f.adapters))
	for i, a := range f.adapters {
		out[i] = a
	}
	return out, nil
}

// NewSharedFactory exposes an already opened HAL device as the single
// adapter name. Devices created from it share device and queue, which stay
// owned by the caller.
func NewSharedFactory(name string, device hal.Device, queue hal.Queue) *Factory {
	return &Factory{adapters: []*Adapter{{name: name, device: device, queue: queue}}}
}

// CreateDevice implements d3d11.Factory.
func (f *Factory) CreateDevice(a d3d11.Adapter) (d3d11.Device, error) {
	wa, ok := a.(*Adapter)
	if !ok {
		return nil, fmt.Errorf("%w: foreign adapter %T", d3d11.ErrInvalidArg, a)
	}
	if wa.device != nil {
		return NewDevice(wa.device, wa.queue), nil
	}
	openDev, err := wa.exposed.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("webgpu: open device: %w", err)
	}
	d := NewDevice(openDev.Device, openDev.Queue)
	d.owned = true
	return d, nil
}

// Release destroys the HAL instance. Devices must be released first.
func (f *Factory) Release() {
	if f.instance != nil {
		f.instance.Destroy()
		f.instance = nil
	}
}

// Adapter wraps a HAL adapter, or a shared device. HAL adapters expose no
// outputs, so display mode enumeration reports ErrNotFound.
type Adapter struct {
	exposed *hal.ExposedAdapter

	name   string
	device hal.Device
	queue  hal.Queue
}

// Desc implements d3d11.Adapter.
func (a *Adapter) Desc() d3d11.AdapterDesc {
	name := a.name
	if a.exposed != nil {
		name = a.exposed.Info.Name
	}
	return d3d11.AdapterDesc{Description: utf16.Encode([]rune(name))}
}

// DisplayModes implements d3d11.Adapter.
func (a *Adapter) DisplayModes(d3d11.Format) ([]d3d11.ModeDesc, error) {
	return nil, d3d11.ErrNotFound
}
