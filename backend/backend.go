package backend

import (
	"errors"

	"github.com/gogpu/nine/d3d11"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Driver is a modern-API implementation the translation layer can run on.
//
// Drivers must be registered via Register() and are selected via
// Get() or Default().
type Driver interface {
	// Name returns the driver identifier (e.g., "software", "native").
	Name() string

	// Init acquires the driver's system resources. A driver whose
	// substrate is missing returns ErrBackendNotAvailable.
	Init() error

	// Factory returns the driver's display factory. It returns nil
	// before Init.
	Factory() d3d11.Factory

	// Close releases all driver resources.
	// The driver should not be used after Close is called.
	Close()
}
