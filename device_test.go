package nine

import (
	"errors"
	"testing"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/soft"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/platform"
)

// defaultParams returns windowed parameters with an automatic D24S8
// depth/stencil buffer and every size left to the window.
func defaultParams() *d3d9.PresentParameters {
	return &d3d9.PresentParameters{
		Windowed:               true,
		SwapEffect:             d3d9.SwapEffectDiscard,
		EnableAutoDepthStencil: true,
		AutoDepthStencilFormat: d3d9.FmtD24S8,
	}
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(soft.NewFactory(soft.Options{}))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	t.Cleanup(c.Release)
	return c
}

// newTestDevice creates a software device presenting into an 800x600
// window. A nil pp selects defaultParams.
func newTestDevice(t *testing.T, pp *d3d9.PresentParameters) (*Device, *soft.Window) {
	t.Helper()
	if pp == nil {
		pp = defaultParams()
	}
	w := &soft.Window{Width: 800, Height: 600}
	d, err := newTestContext(t).CreateDevice(0, d3d9.DevTypeHAL, w, d3d9.CreateHardwareVertexProcessing, pp)
	if err != nil {
		t.Fatalf("CreateDevice() error = %v", err)
	}
	t.Cleanup(d.Release)
	return d, w
}

func softDevice(d *Device) *soft.Device { return d.modern.(*soft.Device) }

func TestCreateDeviceDefaults(t *testing.T) {
	pp := defaultParams()
	d, _ := newTestDevice(t, pp)

	if pp.BackBufferWidth != 800 || pp.BackBufferHeight != 600 {
		t.Errorf("back buffer = %dx%d, want 800x600", pp.BackBufferWidth, pp.BackBufferHeight)
	}
	if pp.BackBufferFormat != d3d9.FmtA8R8G8B8 {
		t.Errorf("BackBufferFormat = %v, want A8R8G8B8", pp.BackBufferFormat)
	}
	if pp.BackBufferCount != 1 {
		t.Errorf("BackBufferCount = %d, want 1", pp.BackBufferCount)
	}

	rt, err := d.RenderTarget(0)
	if err != nil {
		t.Fatalf("RenderTarget(0) error = %v", err)
	}
	defer rt.Release()
	if desc := rt.Desc(); desc.Width != 800 || desc.Height != 600 || desc.Format != d3d9.FmtA8R8G8B8 {
		t.Errorf("RenderTarget(0).Desc() = %+v", desc)
	}
	bb, err := d.BackBuffer(0, 0, d3d9.BackBufferMono)
	if err != nil {
		t.Fatalf("BackBuffer() error = %v", err)
	}
	defer bb.Release()
	if bb != rt {
		t.Error("render target 0 is not back buffer 0")
	}

	ds, err := d.DepthStencilSurface()
	if err != nil {
		t.Fatalf("DepthStencilSurface() error = %v", err)
	}
	defer ds.Release()
	if desc := ds.Desc(); desc.Width != 800 || desc.Height != 600 || desc.Format != d3d9.FmtD24S8 {
		t.Errorf("DepthStencilSurface().Desc() = %+v", desc)
	}

	want := d3d9.Viewport{Width: 800, Height: 600, MinZ: 0, MaxZ: 1}
	if vp := d.Viewport(); vp != want {
		t.Errorf("Viewport() = %+v, want %+v", vp, want)
	}

	ctx := softDevice(d).Context()
	rtvs, dsv := ctx.RenderTargets()
	if len(rtvs) != 1 || rtvs[0] == nil || dsv == nil {
		t.Errorf("bound views = %v, %v; want one render target and a depth/stencil view", rtvs, dsv)
	}
	if vps := ctx.Viewports(); len(vps) != 1 || vps[0].Width != 800 || vps[0].Height != 600 || vps[0].MaxDepth != 1 {
		t.Errorf("modern viewports = %+v", vps)
	}
}

func TestCreateDeviceErrors(t *testing.T) {
	c := newTestContext(t)
	w := &soft.Window{Width: 64, Height: 64}
	tests := []struct {
		name   string
		dt     d3d9.DeviceType
		window bool
		pp     *d3d9.PresentParameters
		want   d3d9.Status
	}{
		{"nil parameters", d3d9.DevTypeHAL, true, nil, d3d9.InvalidCall},
		{"reference device", d3d9.DevTypeRef, true, defaultParams(), d3d9.InvalidCall},
		{"no window", d3d9.DevTypeHAL, false, defaultParams(), d3d9.InvalidCall},
		{"fullscreen without size", d3d9.DevTypeHAL, true, &d3d9.PresentParameters{SwapEffect: d3d9.SwapEffectDiscard}, d3d9.InvalidCall},
		{"color depth format", d3d9.DevTypeHAL, true, &d3d9.PresentParameters{
			Windowed:               true,
			EnableAutoDepthStencil: true,
			AutoDepthStencilFormat: d3d9.FmtA8R8G8B8,
		}, d3d9.InvalidCall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var focus platform.Window
			if tt.window {
				focus = w
			}
			_, err := c.CreateDevice(0, tt.dt, focus, 0, tt.pp)
			if !errors.Is(err, tt.want) {
				t.Errorf("CreateDevice() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSetRenderTarget(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	ctx := softDevice(d).Context()

	if err := d.SetRenderTarget(0, nil); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetRenderTarget(0, nil) error = %v, want InvalidCall", err)
	}
	if rtvs, _ := ctx.RenderTargets(); len(rtvs) != 1 {
		t.Errorf("after rejected unbind: %d render targets bound, want 1", len(rtvs))
	}
	if vp := d.Viewport(); vp.Width != 800 || vp.Height != 600 {
		t.Errorf("after rejected unbind: viewport = %+v", vp)
	}

	rt, err := d.CreateRenderTarget(256, 128, d3d9.FmtX8R8G8B8, d3d9.MultisampleNone, 0, false, false)
	if err != nil {
		t.Fatalf("CreateRenderTarget() error = %v", err)
	}
	defer rt.Release()

	if err := d.SetRenderTarget(2, rt); err != nil {
		t.Fatalf("SetRenderTarget(2) error = %v", err)
	}
	if rtvs, _ := ctx.RenderTargets(); len(rtvs) != 3 || rtvs[1] != nil || rtvs[2] == nil {
		t.Errorf("render targets after slot 2 = %v", rtvs)
	}
	if vp := d.Viewport(); vp.Width != 800 || vp.Height != 600 {
		t.Errorf("viewport follows slot 2: %+v", vp)
	}

	if err := d.SetRenderTarget(0, rt); err != nil {
		t.Fatalf("SetRenderTarget(0) error = %v", err)
	}
	if vp := d.Viewport(); vp.Width != 256 || vp.Height != 128 {
		t.Errorf("viewport after slot 0 = %+v, want 256x128", vp)
	}

	if err := d.SetRenderTarget(2, nil); err != nil {
		t.Fatalf("SetRenderTarget(2, nil) error = %v", err)
	}
	if rtvs, _ := ctx.RenderTargets(); len(rtvs) != 1 {
		t.Errorf("render targets after unbinding slot 2 = %v", rtvs)
	}
	if _, err := d.RenderTarget(2); !errors.Is(err, d3d9.NotFound) {
		t.Errorf("RenderTarget(2) error = %v, want NotFound", err)
	}
	if err := d.SetRenderTarget(8, rt); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetRenderTarget(8) error = %v, want InvalidCall", err)
	}

	ds, err := d.DepthStencilSurface()
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Release()
	if err := d.SetRenderTarget(1, ds); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetRenderTarget(depth) error = %v, want InvalidCall", err)
	}
	if err := d.SetDepthStencilSurface(rt); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetDepthStencilSurface(color) error = %v, want InvalidCall", err)
	}
}

func TestSetRenderTargetForeignDevice(t *testing.T) {
	d1, _ := newTestDevice(t, nil)
	d2, _ := newTestDevice(t, nil)
	rt, err := d2.CreateRenderTarget(64, 64, d3d9.FmtA8R8G8B8, d3d9.MultisampleNone, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Release()
	if err := d1.SetRenderTarget(1, rt); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("SetRenderTarget(foreign) error = %v, want InvalidCall", err)
	}
}

func TestDepthStencilUnbind(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if err := d.SetDepthStencilSurface(nil); err != nil {
		t.Fatalf("SetDepthStencilSurface(nil) error = %v", err)
	}
	if _, err := d.DepthStencilSurface(); !errors.Is(err, d3d9.NotFound) {
		t.Errorf("DepthStencilSurface() error = %v, want NotFound", err)
	}
	if _, dsv := softDevice(d).Context().RenderTargets(); dsv != nil {
		t.Error("depth/stencil view still bound")
	}

	ds, err := d.CreateDepthStencilSurface(800, 600, d3d9.FmtD16, d3d9.Multisample4Samples, 0, false, false)
	if err != nil {
		t.Fatalf("CreateDepthStencilSurface() error = %v", err)
	}
	defer ds.Release()
	if ds.img.desc.SampleDesc.Count != 1 {
		t.Errorf("depth/stencil sample count = %d, want 1", ds.img.desc.SampleDesc.Count)
	}
	if err := d.SetDepthStencilSurface(ds); err != nil {
		t.Fatalf("SetDepthStencilSurface() error = %v", err)
	}
	if _, dsv := softDevice(d).Context().RenderTargets(); dsv == nil {
		t.Error("depth/stencil view not bound")
	}
}

func TestCreateRenderTargetUnavailable(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	tests := []struct {
		name     string
		lockable bool
		shared   bool
	}{
		{"lockable", true, false},
		{"shared", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.CreateRenderTarget(64, 64, d3d9.FmtA8R8G8B8, d3d9.MultisampleNone, 0, tt.lockable, tt.shared)
			if !errors.Is(err, d3d9.NotAvailable) {
				t.Errorf("CreateRenderTarget() error = %v, want NotAvailable", err)
			}
		})
	}
	if _, err := d.CreateRenderTarget(64, 64, d3d9.FmtD24S8, d3d9.MultisampleNone, 0, false, false); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("CreateRenderTarget(D24S8) error = %v, want InvalidCall", err)
	}
	if _, err := d.CreateRenderTarget(0, 64, d3d9.FmtA8R8G8B8, d3d9.MultisampleNone, 0, false, false); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("CreateRenderTarget(0x64) error = %v, want InvalidCall", err)
	}
}

func TestMultisampledRenderTarget(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	rt, err := d.CreateRenderTarget(64, 64, d3d9.FmtA8R8G8B8, d3d9.Multisample4Samples, 0, false, false)
	if err != nil {
		t.Fatalf("CreateRenderTarget() error = %v", err)
	}
	defer rt.Release()
	if got := rt.img.desc.SampleDesc.Count; got != 4 {
		t.Errorf("sample count = %d, want 4", got)
	}
	if desc := rt.Desc(); desc.MultiSampleType != d3d9.Multisample4Samples {
		t.Errorf("Desc().MultiSampleType = %v", desc.MultiSampleType)
	}
	if _, err := rt.LockRect(nil, 0); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("LockRect(render target) error = %v, want InvalidCall", err)
	}
}

func TestScenes(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if err := d.EndScene(); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("EndScene() outside a scene error = %v", err)
	}
	if err := d.BeginScene(); err != nil {
		t.Fatal(err)
	}
	if err := d.BeginScene(); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("nested BeginScene() error = %v", err)
	}
	if err := d.EndScene(); err != nil {
		t.Error(err)
	}
}

func TestDeviceQueries(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if err := d.TestCooperativeLevel(); err != nil {
		t.Errorf("TestCooperativeLevel() = %v", err)
	}
	if got := d.AvailableTextureMem(); got != 512<<20 {
		t.Errorf("AvailableTextureMem() = %d, want %d", got, 512<<20)
	}
	if got := d.DeviceCaps().NumSimultaneousRTs; got != 8 {
		t.Errorf("NumSimultaneousRTs = %d", got)
	}
	p := d.CreationParameters()
	if p.AdapterOrdinal != 0 || p.DeviceType != d3d9.DevTypeHAL {
		t.Errorf("CreationParameters() = %+v", p)
	}
	if d.NumberOfSwapChains() != 1 {
		t.Errorf("NumberOfSwapChains() = %d", d.NumberOfSwapChains())
	}
	mode, err := d.DisplayMode(0)
	if err != nil || mode.Width != 800 || mode.Format != d3d9.FmtA8R8G8B8 {
		t.Errorf("DisplayMode(0) = %+v, %v", mode, err)
	}
	if _, err := d.DisplayMode(1); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("DisplayMode(1) error = %v", err)
	}
	if _, err := d.RasterStatus(0); !errors.Is(err, d3d9.NotAvailable) {
		t.Errorf("RasterStatus(0) error = %v", err)
	}
	if d.Direct3D() == nil {
		t.Error("Direct3D() = nil")
	}
}

func TestUnsupportedOperations(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	tests := []struct {
		name string
		call func() error
	}{
		{"Reset", func() error { return d.Reset(defaultParams()) }},
		{"Clear", func() error { return d.Clear(nil, d3d9.ClearTarget, 0, 1, 0) }},
		{"DrawPrimitive", func() error { return d.DrawPrimitive(d3d9.PTTriangleList, 0, 1) }},
		{"SetStreamSource", func() error { return d.SetStreamSource(0, nil, 0, 0) }},
		{"CreateVertexShader", func() error { return d.CreateVertexShader(nil) }},
		{"SetLight", func() error { return d.SetLight(0, d3d9.Light{}) }},
		{"CreateQuery", func() error { return d.CreateQuery(d3d9.QueryTypeEvent) }},
		{"StretchRect", func() error { return d.StretchRect(nil, nil, nil, nil, d3d9.TexFLinear) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, d3d9.NotAvailable) {
				t.Errorf("%s() error = %v, want NotAvailable", tt.name, err)
			}
		})
	}
}

func TestReleasedDevice(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	tex, err := d.CreateTexture(16, 16, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := d.CreateStateBlock(d3d9.SBTAll)
	if err != nil {
		t.Fatal(err)
	}
	rt, err := d.CreateRenderTarget(64, 64, d3d9.FmtX8R8G8B8, d3d9.MultisampleNone, 0, false, false)
	if err != nil {
		t.Fatal(err)
	}
	d.Release()
	d.Release()

	calls := []struct {
		name string
		call func() error
	}{
		{"SetViewport", func() error { return d.SetViewport(d3d9.Viewport{Width: 8, Height: 8, MaxZ: 1}) }},
		{"SetRenderTarget", func() error { return d.SetRenderTarget(0, rt) }},
		{"SetDepthStencilSurface", func() error { return d.SetDepthStencilSurface(nil) }},
		{"CreateTexture", func() error {
			_, err := d.CreateTexture(16, 16, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged)
			return err
		}},
		{"CreateVertexBuffer", func() error {
			_, err := d.CreateVertexBuffer(64, 0, 0, d3d9.PoolManaged)
			return err
		}},
	}
	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, d3d9.InvalidDevice) {
				t.Errorf("%s() after release error = %v, want InvalidDevice", tt.name, err)
			}
		})
	}
	rt.Release()

	if _, err := tex.Device(); !errors.Is(err, d3d9.InvalidDevice) {
		t.Errorf("Texture.Device() after release error = %v, want InvalidDevice", err)
	}
	if _, err := tex.LockRect(0, nil, 0); !errors.Is(err, d3d9.InvalidDevice) {
		t.Errorf("Texture.LockRect() after release error = %v, want InvalidDevice", err)
	}
	if err := sb.Apply(); !errors.Is(err, d3d9.InvalidDevice) {
		t.Errorf("StateBlock.Apply() after release error = %v, want InvalidDevice", err)
	}
	if err := tex.UnlockRect(0); err != nil {
		t.Errorf("UnlockRect() after release error = %v", err)
	}
	tex.Release()
	sb.Release()
}

func TestDriverErrorsAreTranslated(t *testing.T) {
	d, _ := newTestDevice(t, nil)
	if _, err := d.CreateTexture(d3d11.MaxTextureSize*2, 4, 1, 0, d3d9.FmtA8R8G8B8, d3d9.PoolManaged); !errors.Is(err, d3d9.InvalidCall) {
		t.Errorf("oversized CreateTexture() error = %v, want InvalidCall", err)
	}
}
