package backend

import (
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/soft"
)

// Driver name constants.
const (
	// BackendSoftware is the name of the in-memory software driver.
	BackendSoftware = "software"
	// BackendNative is the name of the Pure Go GPU driver (gogpu/wgpu).
	BackendNative = "native"
)

// SoftwareDriver runs the translation layer on host memory.
type SoftwareDriver struct {
	opts    soft.Options
	factory *soft.Factory
}

// init registers the software driver on package import.
func init() {
	Register(BackendSoftware, func() Driver {
		return &SoftwareDriver{}
	})
}

// NewSoftwareDriver creates a software driver whose adapter is described by
// opts.
func NewSoftwareDriver(opts soft.Options) *SoftwareDriver {
	return &SoftwareDriver{opts: opts}
}

// Name returns the driver identifier.
func (d *SoftwareDriver) Name() string {
	return BackendSoftware
}

// Init initializes the driver.
func (d *SoftwareDriver) Init() error {
	d.factory = soft.NewFactory(d.opts)
	return nil
}

// Factory returns the software factory.
func (d *SoftwareDriver) Factory() d3d11.Factory {
	if d.factory == nil {
		return nil
	}
	return d.factory
}

// Close releases the factory.
func (d *SoftwareDriver) Close() {
	d.factory = nil
}
