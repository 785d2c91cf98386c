// Package native registers the GPU driver, which runs the translation
// layer on a gogpu/wgpu HAL device.
//
// Import it for its side effect:
//
//	import _ "github.com/gogpu/nine/backend/native"
//
// Applications that already own a GPU device, such as a gogpu window, pass
// it to FromProvider instead so legacy resources live on the same device.
package native

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/nine"
	"github.com/gogpu/nine/backend"
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/webgpu"
)

// init registers the native driver on package import.
func init() {
	backend.Register(backend.BackendNative, func() backend.Driver {
		return &Driver{}
	})
}

// Driver opens the first HAL instance available. A zero Driver uses the
// Vulkan HAL backend.
type Driver struct {
	hal     webgpu.Backend
	factory *webgpu.Factory

	// shared device, owned by the host application
	device hal.Device
	queue  hal.Queue
}

// New returns a driver on a specific HAL backend.
func New(b webgpu.Backend) *Driver {
	return &Driver{hal: b}
}

// SharedAdapterName is the adapter description of drivers running on a
// shared device.
const SharedAdapterName = "Shared GPU device"

// FromHAL returns a driver whose only adapter is an already opened device.
// Closing the driver leaves device and queue alive.
func FromHAL(device hal.Device, queue hal.Queue) *Driver {
	return &Driver{device: device, queue: queue}
}

// FromProvider returns a driver on the device of a host application, such
// as a gogpu window. The provider must also expose HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider) (*Driver, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, errors.New("native: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, errors.New("native: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, errors.New("native: provider HalQueue is not hal.Queue")
	}
	return FromHAL(device, queue), nil
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return backend.BackendNative
}

// Init creates the HAL instance, or wraps the shared device.
func (d *Driver) Init() error {
	if d.device != nil {
		d.factory = webgpu.NewSharedFactory(SharedAdapterName, d.device, d.queue)
		nine.Logger().Info("native: using shared device")
		return nil
	}
	if d.hal == nil {
		b, ok := hal.GetBackend(gputypes.BackendVulkan)
		if !ok {
			return fmt.Errorf("%w: vulkan HAL backend not registered", backend.ErrBackendNotAvailable)
		}
		d.hal = b
	}
	f, err := webgpu.NewFactory(d.hal)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrBackendNotAvailable, err)
	}
	d.factory = f
	adapters, _ := f.Adapters()
	for _, a := range adapters {
		nine.Logger().Debug("native: adapter", "desc", string(utf16.Decode(a.Desc().Description)))
	}
	return nil
}

// Factory returns the GPU factory.
func (d *Driver) Factory() d3d11.Factory {
	if d.factory == nil {
		return nil
	}
	return d.factory
}

// Close destroys the HAL instance.
func (d *Driver) Close() {
	if d.factory != nil {
		d.factory.Release()
		d.factory = nil
	}
}
