package usage

import (
	"errors"
	"testing"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
)

func TestToModern(t *testing.T) {
	tests := []struct {
		name  string
		usage d3d9.Usage
		pool  d3d9.Pool
		want  Result
	}{
		{
			name:  "default dynamic write-only",
			usage: d3d9.UsageDynamic | d3d9.UsageWriteOnly,
			pool:  d3d9.PoolDefault,
			want:  Result{d3d11.UsageDynamic, d3d11.BindShaderResource, d3d11.CPUAccessWrite},
		},
		{
			name:  "default render target is gpu only",
			usage: d3d9.UsageRenderTarget,
			pool:  d3d9.PoolDefault,
			want:  Result{d3d11.UsageDefault, d3d11.BindRenderTarget, 0},
		},
		{
			name:  "default depth stencil is gpu only",
			usage: d3d9.UsageDepthStencil,
			pool:  d3d9.PoolDefault,
			want:  Result{d3d11.UsageDefault, d3d11.BindDepthStencil, 0},
		},
		{
			name:  "managed",
			usage: 0,
			pool:  d3d9.PoolManaged,
			want:  Result{d3d11.UsageDynamic, d3d11.BindShaderResource, d3d11.CPUAccessWrite},
		},
		{
			name:  "systemmem static",
			usage: 0,
			pool:  d3d9.PoolSystemMem,
			want:  Result{d3d11.UsageStaging, 0, d3d11.CPUAccessRead | d3d11.CPUAccessWrite},
		},
		{
			name:  "systemmem dynamic",
			usage: d3d9.UsageDynamic,
			pool:  d3d9.PoolSystemMem,
			want:  Result{d3d11.UsageDynamic, d3d11.BindShaderResource, d3d11.CPUAccessWrite},
		},
		{
			name:  "scratch dynamic",
			usage: d3d9.UsageDynamic | d3d9.UsageRenderTarget,
			pool:  d3d9.PoolScratch,
			want:  Result{d3d11.UsageDynamic, 0, d3d11.CPUAccessWrite},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToModern(tt.usage, tt.pool)
			if err != nil {
				t.Fatalf("ToModern() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToModern() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToModernDefaultPoolReadback(t *testing.T) {
	_, err := ToModern(0, d3d9.PoolDefault)
	if !errors.Is(err, ErrCPUReadback) {
		t.Errorf("ToModern(0, Default) error = %v, want ErrCPUReadback", err)
	}
}

func TestToModernInvalidPool(t *testing.T) {
	_, err := ToModern(0, d3d9.Pool(7))
	if !errors.Is(err, ErrInvalidPool) {
		t.Errorf("ToModern(0, 7) error = %v, want ErrInvalidPool", err)
	}
}

func TestScratchNeverBinds(t *testing.T) {
	for u := d3d9.Usage(0); u < 1<<11; u++ {
		r, err := ToModern(u, d3d9.PoolScratch)
		if err != nil {
			t.Fatalf("ToModern(%#x, Scratch) error = %v", u, err)
		}
		if r.Bind != 0 {
			t.Fatalf("ToModern(%#x, Scratch).Bind = %#x, want 0", u, r.Bind)
		}
		again, _ := ToModern(u, d3d9.PoolScratch)
		if again != r {
			t.Fatalf("ToModern(%#x, Scratch) not deterministic", u)
		}
	}
}

func TestBuffer(t *testing.T) {
	r, err := Buffer(d3d9.UsageWriteOnly, d3d9.PoolDefault, d3d11.BindVertexBuffer)
	if err != nil {
		t.Fatalf("Buffer() error = %v", err)
	}
	if r.Bind != d3d11.BindVertexBuffer || r.Usage != d3d11.UsageDynamic {
		t.Errorf("Buffer() = %+v", r)
	}
	r, err = Buffer(0, d3d9.PoolSystemMem, d3d11.BindIndexBuffer)
	if err != nil {
		t.Fatalf("Buffer() error = %v", err)
	}
	if r.Bind != 0 || r.Usage != d3d11.UsageStaging {
		t.Errorf("Buffer(systemmem) = %+v, want unbound staging", r)
	}
}

func TestMapFor(t *testing.T) {
	rw := d3d11.CPUAccessRead | d3d11.CPUAccessWrite
	tests := []struct {
		name  string
		usage d3d9.Usage
		cpu   d3d11.CPUAccessFlag
		flags d3d9.LockFlags
		mt    d3d11.MapType
		mf    d3d11.MapFlag
	}{
		{"write-only discard", d3d9.UsageWriteOnly, d3d11.CPUAccessWrite, d3d9.LockDiscard, d3d11.MapWriteDiscard, 0},
		{"write-only no-overwrite wins", d3d9.UsageWriteOnly, d3d11.CPUAccessWrite, d3d9.LockDiscard | d3d9.LockNoOverwrite, d3d11.MapWriteNoOverwrite, 0},
		{"write-only plain", d3d9.UsageWriteOnly, d3d11.CPUAccessWrite, 0, d3d11.MapWrite, 0},
		{"cpu write access only", d3d9.UsageDynamic, d3d11.CPUAccessWrite, d3d9.LockDiscard, d3d11.MapWriteDiscard, 0},
		{"staging discard ignored", 0, rw, d3d9.LockDiscard, d3d11.MapReadWrite, 0},
		{"staging read only", 0, rw, d3d9.LockReadOnly, d3d11.MapRead, 0},
		{"do not wait", 0, rw, d3d9.LockDoNotWait, d3d11.MapReadWrite, d3d11.MapDoNotWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, mf := MapFor(tt.usage, tt.cpu, tt.flags)
			if mt != tt.mt || mf != tt.mf {
				t.Errorf("MapFor() = %v, %#x; want %v, %#x", mt, mf, tt.mt, tt.mf)
			}
		})
	}
}
