// Package backend selects the modern-API driver the translation layer runs
// on.
//
// # Driver Registration
//
// Drivers are registered via init() functions and selected at runtime.
// The software driver is automatically registered on import:
//
//	import _ "github.com/gogpu/nine/backend"
//
// The GPU driver registers itself when its package is imported:
//
//	import _ "github.com/gogpu/nine/backend/native"
//
// # Driver Selection
//
// Use InitDefault() to get the best driver that initializes, or Get() to
// request a specific driver by name:
//
//	d, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	ctx, err := nine.NewContext(d.Factory())
//
// # Available Drivers
//
// - "software": host-memory driver (always available)
// - "native": GPU driver via gogpu/wgpu HAL
package backend
