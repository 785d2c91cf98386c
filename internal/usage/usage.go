// Package usage translates legacy usage flags and memory pools to modern
// usage, bind and CPU access flags, and legacy lock flags to modern map
// requests.
package usage

import (
	"errors"
	"fmt"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
)

var (
	// ErrCPUReadback is returned for Default-pool resources that would need
	// CPU read access.
	ErrCPUReadback = errors.New("usage: default pool resources cannot be read by the CPU")

	// ErrInvalidPool is returned for pool values outside the legacy enum.
	ErrInvalidPool = errors.New("usage: invalid memory pool")
)

// Result is the modern description of a legacy usage/pool pair.
type Result struct {
	Usage     d3d11.Usage
	Bind      d3d11.BindFlag
	CPUAccess d3d11.CPUAccessFlag
}

const cpuReadWrite = d3d11.CPUAccessRead | d3d11.CPUAccessWrite

func writable(u d3d9.Usage) bool {
	return u&(d3d9.UsageDynamic|d3d9.UsageWriteOnly) != 0
}

// ToModern translates usage u in pool p. The result only depends on its
// arguments.
//
// In the Default pool, render target and depth/stencil usage without
// Dynamic or WriteOnly gives GPU-only storage with no CPU access. Any other
// Default-pool usage that is not writable would need CPU reads and fails
// with ErrCPUReadback.
func ToModern(u d3d9.Usage, p d3d9.Pool) (Result, error) {
	var r Result
	switch p {
	case d3d9.PoolDefault:
		switch {
		case writable(u):
			r = Result{Usage: d3d11.UsageDynamic, CPUAccess: d3d11.CPUAccessWrite}
		case u&(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil) != 0:
			r = Result{Usage: d3d11.UsageDefault}
		default:
			return Result{}, fmt.Errorf("%w: usage %#x", ErrCPUReadback, uint32(u))
		}
	case d3d9.PoolManaged:
		r = Result{Usage: d3d11.UsageDynamic, CPUAccess: d3d11.CPUAccessWrite}
	case d3d9.PoolSystemMem, d3d9.PoolScratch:
		if writable(u) {
			r = Result{Usage: d3d11.UsageDynamic, CPUAccess: d3d11.CPUAccessWrite}
		} else {
			r = Result{Usage: d3d11.UsageStaging, CPUAccess: cpuReadWrite}
		}
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPool, p)
	}

	switch {
	case p == d3d9.PoolScratch:
		// Scratch memory never reaches the pipeline.
	case u&d3d9.UsageRenderTarget != 0:
		r.Bind = d3d11.BindRenderTarget
	case u&d3d9.UsageDepthStencil != 0:
		r.Bind = d3d11.BindDepthStencil
	case r.Usage != d3d11.UsageStaging:
		r.Bind = d3d11.BindShaderResource
	}
	return r, nil
}

// Buffer translates usage u in pool p for a vertex or index buffer bound
// with bind. Buffers are never render targets, so only the pool and the
// write flags matter.
func Buffer(u d3d9.Usage, p d3d9.Pool, bind d3d11.BindFlag) (Result, error) {
	r, err := ToModern(u&^(d3d9.UsageRenderTarget|d3d9.UsageDepthStencil), p)
	if err != nil {
		return Result{}, err
	}
	if r.Bind != 0 {
		r.Bind = bind
	}
	return r, nil
}

// MapFor returns the modern map request for a lock with flags f on a
// resource with legacy usage u and modern CPU access cpu.
//
// A resource is write-only when its usage says so or when the CPU cannot
// read it. Write-only resources honor NO_OVERWRITE before DISCARD; other
// resources ignore both and map for reading, plus writing unless READ_ONLY
// was requested.
func MapFor(u d3d9.Usage, cpu d3d11.CPUAccessFlag, f d3d9.LockFlags) (d3d11.MapType, d3d11.MapFlag) {
	var mt d3d11.MapType
	switch {
	case u&d3d9.UsageWriteOnly != 0 || cpu&d3d11.CPUAccessRead == 0:
		switch {
		case f&d3d9.LockNoOverwrite != 0:
			mt = d3d11.MapWriteNoOverwrite
		case f&d3d9.LockDiscard != 0:
			mt = d3d11.MapWriteDiscard
		default:
			mt = d3d11.MapWrite
		}
	case f&d3d9.LockReadOnly != 0:
		mt = d3d11.MapRead
	default:
		mt = d3d11.MapReadWrite
	}

	var mf d3d11.MapFlag
	if f&d3d9.LockDoNotWait != 0 {
		mf = d3d11.MapDoNotWait
	}
	return mt, mf
}
