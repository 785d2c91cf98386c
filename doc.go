// Package nine runs legacy Direct3D 9 applications on a modern
// Direct3D 11 style driver.
//
// # Overview
//
// A Context enumerates the adapters of a display factory and answers the
// capability queries a legacy application makes before it creates a
// device: adapter identity, display modes, format and multisample support.
// A Device created from it owns an implicit swap chain, the legacy render
// state and the render target and depth/stencil bindings, and creates
// surfaces, textures and buffers whose storage is a modern resource.
//
// # Quick Start
//
//	d, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	ctx, err := nine.NewContext(d.Factory())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctx.Release()
//
//	pp := &d3d9.PresentParameters{Windowed: true, SwapEffect: d3d9.SwapEffectDiscard}
//	dev, err := ctx.CreateDevice(0, d3d9.DevTypeHAL, window, 0, pp)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Release()
//
// # Translation
//
// Legacy formats, usages, pools and multisample types have modern
// counterparts chosen by the internal/format, internal/usage and
// internal/msample packages. Render, sampler and texture stage state is
// kept by the device and read back verbatim; only the bindings the modern
// pipeline knows about (render targets, depth/stencil and viewport) reach
// the driver immediately.
//
// # Locking
//
// LockRect and Lock map the backing modern resource. The map type follows
// the usage and lock flags: write-only resources prefer NoOverwrite, then
// Discard, then a plain write; everything else maps for reading as well.
// Lock offsets are computed from the mapped row pitch, in blocks for
// compressed formats. D3DLOCK_DONOTWAIT surfaces a busy GPU as
// WasStillDrawing instead of blocking.
//
// # Errors
//
// Every method returns either nil or a d3d9.Status. Driver failures are
// logged with their modern error code before they are reduced to a legacy
// status.
//
// # Logging
//
// The package is silent by default. SetLogger installs a log/slog logger
// that nine and the backend packages share.
//
// # Drawing
//
// Draw calls, shaders, clears, StretchRect and the other pipeline entry
// points report NotAvailable. The package covers resource management and
// presentation only.
package nine
