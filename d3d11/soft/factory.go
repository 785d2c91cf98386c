// Package soft is an in-memory implementation of the modern API.
//
// Resources live in host memory and the immediate context only records
// bindings; nothing is rasterized. Presenting copies the back buffer into
// the frame of a Window, scaling it when the window size differs. The
// driver enforces the modern usage rules for creation and mapping so it can
// stand in for a hardware driver in tests and headless runs.
package soft

import (
	"unicode/utf16"

	"github.com/gogpu/nine/d3d11"
)

// Options configure the emulated adapter.
type Options struct {
	// Description is the adapter name. Defaults to "Software Adapter".
	Description string
	VendorID    uint32
	DeviceID    uint32
	// VideoMemory is the reported dedicated memory in bytes.
	VideoMemory uint64
	// Modes lists display modes at refresh rate 60. Defaults to a small set
	// of common resolutions.
	Modes [][2]uint32
	// Headless removes the adapter's output.
	Headless bool
}

var defaultModes = [][2]uint32{{640, 480}, {800, 600}, {1024, 768}, {1280, 720}, {1920, 1080}}

// Factory creates software devices and swap chains.
type Factory struct {
	adapter *Adapter
}

// NewFactory returns a factory exposing one adapter described by opts.
func NewFactory(opts Options) *Factory {
	if opts.Description == "" {
		opts.Description = "Software Adapter"
	}
	if opts.Modes == nil {
		opts.Modes = defaultModes
	}
	if opts.VideoMemory == 0 {
		opts.VideoMemory = 512 << 20
	}
	return &Factory{adapter: &Adapter{opts: opts}}
}

// Adapters implements d3d11.Factory.
func (f *Factory) Adapters() ([]d3d11.Adapter, error) {
	return []d3d11.Adapter{f.adapter}, nil
}

// CreateDevice implements d3d11.Factory.
func (f *Factory) CreateDevice(a d3d11.Adapter) (d3d11.Device, error) {
	if a != d3d11.Adapter(f.adapter) {
		return nil, d3d11.ErrInvalidArg
	}
	return NewDevice(), nil
}

// Adapter is the emulated adapter.
type Adapter struct {
	opts Options
}

// Desc implements d3d11.Adapter.
func (a *Adapter) Desc() d3d11.AdapterDesc {
	return d3d11.AdapterDesc{
		Description:          utf16.Encode([]rune(a.opts.Description)),
		VendorID:             a.opts.VendorID,
		DeviceID:             a.opts.DeviceID,
		DedicatedVideoMemory: a.opts.VideoMemory,
	}
}

// DisplayModes implements d3d11.Adapter.
func (a *Adapter) DisplayModes(f d3d11.Format) ([]d3d11.ModeDesc, error) {
	if a.opts.Headless {
		return nil, d3d11.ErrNotFound
	}
	if f != d3d11.FormatB8G8R8A8Unorm && f != d3d11.FormatR10G10B10A2Unorm {
		return nil, nil
	}
	modes := make([]d3d11.ModeDesc, len(a.opts.Modes))
	for i, m := range a.opts.Modes {
		modes[i] = d3d11.ModeDesc{
			Width:       m[0],
			Height:      m[1],
			RefreshRate: d3d11.Rational{Numerator: 60, Denominator: 1},
			Format:      f,
		}
	}
	return modes, nil
}
