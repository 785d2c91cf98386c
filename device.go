package nine

import (
	"math"
	"slices"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/caps"
	"github.com/gogpu/nine/internal/format"
	"github.com/gogpu/nine/internal/msample"
	"github.com/gogpu/nine/internal/state"
	"github.com/gogpu/nine/internal/usage"
	"github.com/gogpu/nine/platform"
)

// Device is a legacy device on top of one modern device and its immediate
// context. It adds no synchronization: callers using it from several
// goroutines must serialize access themselves.
type Device struct {
	id      DeviceID
	ctx     *Context
	adapter *adapter
	modern  d3d11.Device
	imm     d3d11.DeviceContext
	params  d3d9.CreationParameters
	caps    d3d9.Caps

	swapChains    []*SwapChain
	renderTargets [caps.MaxSimultaneousRTs]*Surface
	depthStencil  *Surface

	state     *state.Store
	recording *StateBlock
	inScene   bool
	released  bool
}

// newDevice builds the implicit swap chain and the default render target
// and depth/stencil surface, then binds them.
func newDevice(c *Context, a *adapter, modern d3d11.Device, params d3d9.CreationParameters, pp *d3d9.PresentParameters) (*Device, error) {
	d := &Device{
		ctx:     c,
		adapter: a,
		modern:  modern,
		imm:     modern.ImmediateContext(),
		params:  params,
		caps:    caps.Capabilities(params.AdapterOrdinal),
		state:   state.New(),
	}
	d.id = registerDevice(d)

	sc, err := d.newSwapChain(pp)
	if err != nil {
		d.Release()
		return nil, err
	}
	d.swapChains = append(d.swapChains, sc)

	bb := sc.buffers[0]
	bb.AddRef()
	d.renderTargets[0] = bb

	if pp.EnableAutoDepthStencil {
		ds, err := d.newDepthStencil("CreateDevice", pp.BackBufferWidth, pp.BackBufferHeight,
			pp.AutoDepthStencilFormat, pp.MultiSampleType, pp.MultiSampleQuality)
		if err != nil {
			d.Release()
			return nil, err
		}
		d.depthStencil = ds
		d.state.SetRenderState(d3d9.RSZEnable, d3d9.ZBTrue)
	}
	d.updateRenderTargets()

	Logger().Info("nine: device created",
		"adapter", params.AdapterOrdinal,
		"width", pp.BackBufferWidth, "height", pp.BackBufferHeight,
		"format", pp.BackBufferFormat, "depthStencil", pp.EnableAutoDepthStencil)
	return d, nil
}

// Release destroys the device, its swap chains and every binding. Resources
// created by the device stay valid objects but report InvalidDevice.
func (d *Device) Release() {
	if d.released {
		return
	}
	d.released = true
	if d.recording != nil {
		d.recording.Release()
		d.recording = nil
	}
	for i, rt := range d.renderTargets {
		if rt != nil {
			rt.Release()
			d.renderTargets[i] = nil
		}
	}
	if d.depthStencil != nil {
		d.depthStencil.Release()
		d.depthStencil = nil
	}
	d.state.Reset()
	for _, sc := range slices.Clone(d.swapChains) {
		sc.free()
	}
	d.swapChains = nil
	d.modern.Release()
	unregisterDevice(d.id)
	Logger().Info("nine: device released", "adapter", d.params.AdapterOrdinal)
}

// ID returns the handle resources use to refer to the device.
func (d *Device) ID() DeviceID { return d.id }

// Direct3D returns the context that created the device.
func (d *Device) Direct3D() *Context { return d.ctx }

// TestCooperativeLevel reports whether the device can render. Modern
// devices are never lost the legacy way.
func (d *Device) TestCooperativeLevel() error { return nil }

// AvailableTextureMem returns the adapter's dedicated video memory.
func (d *Device) AvailableTextureMem() uint32 {
	return uint32(min(d.adapter.modern.Desc().DedicatedVideoMemory, math.MaxUint32))
}

// EvictManagedResources is accepted and ignored.
func (d *Device) EvictManagedResources() error { return nil }

// DeviceCaps returns the capabilities of the device.
func (d *Device) DeviceCaps() d3d9.Caps { return d.caps }

// CreationParameters returns the arguments the device was created with.
func (d *Device) CreationParameters() d3d9.CreationParameters { return d.params }

// --- swap chains ---

// CreateAdditionalSwapChain creates a swap chain for pp, normalizing pp in
// place.
func (d *Device) CreateAdditionalSwapChain(pp *d3d9.PresentParameters) (*SwapChain, error) {
	if err := d.live("CreateAdditionalSwapChain"); err != nil {
		return nil, err
	}
	if pp == nil {
		return nil, invalidCall("CreateAdditionalSwapChain", "nil present parameters")
	}
	sc, err := d.newSwapChain(pp)
	if err != nil {
		return nil, err
	}
	d.swapChains = append(d.swapChains, sc)
	return sc, nil
}

func (d *Device) forgetSwapChain(sc *SwapChain) {
	d.swapChains = slices.DeleteFunc(d.swapChains, func(c *SwapChain) bool { return c == sc })
}

func (d *Device) swapChain(op string, i uint32) (*SwapChain, error) {
	if int(i) >= len(d.swapChains) {
		return nil, invalidCall(op, "swap chain out of range", "index", i)
	}
	return d.swapChains[i], nil
}

// NumberOfSwapChains returns the number of live swap chains.
func (d *Device) NumberOfSwapChains() uint32 { return uint32(len(d.swapChains)) }

// SwapChain returns swap chain i; 0 is the implicit swap chain.
func (d *Device) SwapChain(i uint32) (*SwapChain, error) {
	sc, err := d.swapChain("SwapChain", i)
	if err != nil {
		return nil, err
	}
	sc.AddRef()
	return sc, nil
}

// BackBuffer returns back buffer i of swap chain sc.
func (d *Device) BackBuffer(sc, i uint32, t d3d9.BackBufferType) (*Surface, error) {
	c, err := d.swapChain("BackBuffer", sc)
	if err != nil {
		return nil, err
	}
	return c.BackBuffer(i, t)
}

// Present presents the implicit swap chain.
func (d *Device) Present(src, dst *d3d9.Rect, window platform.Window, dirty []d3d9.Rect) error {
	sc, err := d.swapChain("Present", 0)
	if err != nil {
		return err
	}
	return sc.Present(src, dst, window, dirty, 0)
}

// DisplayMode returns the mode of swap chain sc.
func (d *Device) DisplayMode(sc uint32) (d3d9.DisplayMode, error) {
	c, err := d.swapChain("DisplayMode", sc)
	if err != nil {
		return d3d9.DisplayMode{}, err
	}
	return c.DisplayMode(), nil
}

// RasterStatus is not available.
func (d *Device) RasterStatus(sc uint32) (d3d9.RasterStatus, error) {
	c, err := d.swapChain("RasterStatus", sc)
	if err != nil {
		return d3d9.RasterStatus{}, err
	}
	return c.RasterStatus()
}

// --- output bindings ---

// updateRenderTargets rebinds every populated render target slot and the
// depth/stencil surface, then resets the viewport to cover slot 0.
func (d *Device) updateRenderTargets() {
	last := -1
	for i, rt := range d.renderTargets {
		if rt != nil {
			last = i
		}
	}
	rtvs := make([]d3d11.RenderTargetView, last+1)
	for i := range rtvs {
		if rt := d.renderTargets[i]; rt != nil {
			rtvs[i] = rt.rtv
		}
	}
	var dsv d3d11.DepthStencilView
	if d.depthStencil != nil {
		dsv = d.depthStencil.dsv
	}
	d.imm.OMSetRenderTargets(rtvs, dsv)

	w, h := d.renderTargets[0].size()
	d.state.SetViewport(d3d9.Viewport{Width: w, Height: h, MinZ: 0, MaxZ: 1})
	d.applyViewport()
}

func (d *Device) applyViewport() {
	vp := d.state.Viewport()
	d.imm.RSSetViewports([]d3d11.Viewport{{
		TopLeftX: float32(vp.X),
		TopLeftY: float32(vp.Y),
		Width:    float32(vp.Width),
		Height:   float32(vp.Height),
		MinDepth: vp.MinZ,
		MaxDepth: vp.MaxZ,
	}})
}

// live fails with InvalidDevice once the device is released.
func (d *Device) live(op string) error {
	if d.released {
		Logger().Debug("nine: call on released device", "op", op)
		return d3d9.InvalidDevice
	}
	return nil
}

func (d *Device) owns(op string, s *Surface) error {
	if s.dev != d.id {
		return invalidCall(op, "surface belongs to another device")
	}
	return nil
}

// SetRenderTarget binds s to render target slot i. Slot 0 can never be
// emptied.
func (d *Device) SetRenderTarget(i uint32, s *Surface) error {
	const op = "SetRenderTarget"
	if err := d.live(op); err != nil {
		return err
	}
	if i >= d.caps.NumSimultaneousRTs {
		return invalidCall(op, "slot out of range", "slot", i)
	}
	if s == nil {
		if i == 0 {
			return invalidCall(op, "slot 0 cannot be unbound")
		}
	} else {
		if err := d.owns(op, s); err != nil {
			return err
		}
		if s.rtv == nil {
			return invalidCall(op, "surface is not a render target", "kind", s.kind)
		}
		s.AddRef()
	}
	if old := d.renderTargets[i]; old != nil {
		old.Release()
	}
	d.renderTargets[i] = s
	d.updateRenderTargets()
	return nil
}

// RenderTarget returns the surface bound to slot i.
func (d *Device) RenderTarget(i uint32) (*Surface, error) {
	if i >= d.caps.NumSimultaneousRTs {
		return nil, invalidCall("RenderTarget", "slot out of range", "slot", i)
	}
	s := d.renderTargets[i]
	if s == nil {
		return nil, d3d9.NotFound
	}
	s.AddRef()
	return s, nil
}

// SetDepthStencilSurface binds s as the depth/stencil buffer; nil unbinds
// it.
func (d *Device) SetDepthStencilSurface(s *Surface) error {
	const op = "SetDepthStencilSurface"
	if err := d.live(op); err != nil {
		return err
	}
	if s != nil {
		if err := d.owns(op, s); err != nil {
			return err
		}
		if s.dsv == nil {
			return invalidCall(op, "surface is not a depth/stencil buffer", "kind", s.kind)
		}
		s.AddRef()
	}
	if d.depthStencil != nil {
		d.depthStencil.Release()
	}
	d.depthStencil = s
	d.updateRenderTargets()
	return nil
}

// DepthStencilSurface returns the bound depth/stencil buffer.
func (d *Device) DepthStencilSurface() (*Surface, error) {
	if d.depthStencil == nil {
		return nil, d3d9.NotFound
	}
	d.depthStencil.AddRef()
	return d.depthStencil, nil
}

// --- resource creation ---

func modernFormat(op string, f d3d9.Format) (d3d11.Format, error) {
	mf, err := format.ToModern(f)
	if err != nil {
		return 0, translate(op, err)
	}
	if mf == d3d11.FormatUnknown {
		return 0, notAvailable(op, "format", f)
	}
	return mf, nil
}

func checkSize(op string, w, h uint32) error {
	if w == 0 || h == 0 || w > caps.MaxTextureSize || h > caps.MaxTextureSize {
		return invalidCall(op, "invalid size", "width", w, "height", h)
	}
	return nil
}

// newTextureImage creates the storage of a texture with arraySize slices.
func (d *Device) newTextureImage(op string, w, h, levels, arraySize uint32, u d3d9.Usage, f d3d9.Format, p d3d9.Pool) (*image, error) {
	if err := checkSize(op, w, h); err != nil {
		return nil, err
	}
	if u&d3d9.UsageAutoGenMipMap != 0 {
		if levels > 1 {
			return nil, invalidCall(op, "generated mip levels need a level count of 0 or 1", "levels", levels)
		}
		levels = 1
	}
	if u&d3d9.UsageDepthStencil != 0 && !format.IsDepthStencil(f) {
		return nil, invalidCall(op, "depth/stencil usage with a color format", "format", f)
	}
	mf, err := modernFormat(op, f)
	if err != nil {
		return nil, err
	}
	r, err := usage.ToModern(u, p)
	if err != nil {
		return nil, translate(op, err)
	}
	desc := d3d11.Texture2DDesc{
		Width:          w,
		Height:         h,
		MipLevels:      levels,
		ArraySize:      arraySize,
		Format:         mf,
		SampleDesc:     msample.Single,
		Usage:          r.Usage,
		BindFlags:      r.Bind,
		CPUAccessFlags: r.CPUAccess,
	}
	if arraySize == uint32(d3d9.CubeFaceCount) {
		desc.MiscFlags = d3d11.MiscTextureCube
	}
	return d.newImage(op, desc, f, u, p)
}

// CreateTexture creates a 2-D texture. A level count of 0 creates the full
// mip chain.
func (d *Device) CreateTexture(w, h, levels uint32, u d3d9.Usage, f d3d9.Format, p d3d9.Pool) (*Texture, error) {
	img, err := d.newTextureImage("CreateTexture", w, h, levels, 1, u, f, p)
	if err != nil {
		return nil, err
	}
	t := &Texture{
		resource: newResource(d.id, d3d9.RTypeTexture),
		texture:  newTexture(img, img.desc.MipLevels),
	}
	t.destroy = t.free
	return t, nil
}

// CreateCubeTexture creates a cube texture with faces of edge × edge.
func (d *Device) CreateCubeTexture(edge, levels uint32, u d3d9.Usage, f d3d9.Format, p d3d9.Pool) (*CubeTexture, error) {
	img, err := d.newTextureImage("CreateCubeTexture", edge, edge, levels, uint32(d3d9.CubeFaceCount), u, f, p)
	if err != nil {
		return nil, err
	}
	t := &CubeTexture{
		resource: newResource(d.id, d3d9.RTypeCubeTexture),
		texture:  newTexture(img, img.desc.MipLevels),
	}
	t.destroy = t.free
	return t, nil
}

// CreateOffscreenPlainSurface creates a surface that can only be locked
// and copied.
func (d *Device) CreateOffscreenPlainSurface(w, h uint32, f d3d9.Format, p d3d9.Pool, shared bool) (*Surface, error) {
	const op = "CreateOffscreenPlainSurface"
	if shared {
		return nil, notAvailable(op, "reason", "shared resources")
	}
	img, err := d.newTextureImage(op, w, h, 1, 1, 0, f, p)
	if err != nil {
		return nil, err
	}
	return newSurface(surfacePlain, img, 0, nil), nil
}

// CreateRenderTarget creates a standalone render target surface. Lockable
// and shared render targets are not available.
func (d *Device) CreateRenderTarget(w, h uint32, f d3d9.Format, ms d3d9.MultisampleType, quality uint32, lockable, shared bool) (*Surface, error) {
	const op = "CreateRenderTarget"
	if lockable {
		return nil, notAvailable(op, "reason", "lockable render targets")
	}
	if shared {
		return nil, notAvailable(op, "reason", "shared resources")
	}
	if err := checkSize(op, w, h); err != nil {
		return nil, err
	}
	if format.IsDepthStencil(f) {
		return nil, invalidCall(op, "depth/stencil format", "format", f)
	}
	mf, err := modernFormat(op, f)
	if err != nil {
		return nil, err
	}
	r, err := usage.ToModern(d3d9.UsageRenderTarget, d3d9.PoolDefault)
	if err != nil {
		return nil, translate(op, err)
	}
	img, err := d.newImage(op, d3d11.Texture2DDesc{
		Width:      w,
		Height:     h,
		MipLevels:  1,
		ArraySize:  1,
		Format:     mf,
		SampleDesc: msample.ToModern(ms, quality),
		Usage:      r.Usage,
		BindFlags:  r.Bind,
	}, f, d3d9.UsageRenderTarget, d3d9.PoolDefault)
	if err != nil {
		return nil, err
	}
	img.msType, img.msQuality = ms, quality
	rtv, err := d.modern.CreateRenderTargetView(img.modern)
	if err != nil {
		img.release()
		return nil, translate(op, err)
	}
	s := newSurface(surfaceRenderTarget, img, 0, nil)
	s.rtv = rtv
	return s, nil
}

// CreateDepthStencilSurface creates a standalone depth/stencil surface.
func (d *Device) CreateDepthStencilSurface(w, h uint32, f d3d9.Format, ms d3d9.MultisampleType, quality uint32, discard, shared bool) (*Surface, error) {
	const op = "CreateDepthStencilSurface"
	if shared {
		return nil, notAvailable(op, "reason", "shared resources")
	}
	if discard {
		Logger().Debug("nine: depth/stencil discard is not tracked")
	}
	return d.newDepthStencil(op, w, h, f, ms, quality)
}

// newDepthStencil creates a depth/stencil surface. Depth buffers are always
// single-sampled.
func (d *Device) newDepthStencil(op string, w, h uint32, f d3d9.Format, ms d3d9.MultisampleType, quality uint32) (*Surface, error) {
	if err := checkSize(op, w, h); err != nil {
		return nil, err
	}
	if !format.IsDepthStencil(f) {
		return nil, invalidCall(op, "not a depth/stencil format", "format", f)
	}
	if ms > d3d9.MultisampleNonMaskable {
		Logger().Warn("nine: depth/stencil surfaces are single-sampled", "requested", ms)
	}
	mf, err := modernFormat(op, f)
	if err != nil {
		return nil, err
	}
	r, err := usage.ToModern(d3d9.UsageDepthStencil, d3d9.PoolDefault)
	if err != nil {
		return nil, translate(op, err)
	}
	img, err := d.newImage(op, d3d11.Texture2DDesc{
		Width:      w,
		Height:     h,
		MipLevels:  1,
		ArraySize:  1,
		Format:     mf,
		SampleDesc: msample.Single,
		Usage:      r.Usage,
		BindFlags:  r.Bind,
	}, f, d3d9.UsageDepthStencil, d3d9.PoolDefault)
	if err != nil {
		return nil, err
	}
	dsv, err := d.modern.CreateDepthStencilView(img.modern)
	if err != nil {
		img.release()
		return nil, translate(op, err)
	}
	s := newSurface(surfaceDepthStencil, img, 0, nil)
	s.dsv = dsv
	return s, nil
}

// CreateVertexBuffer creates a vertex buffer of length bytes.
func (d *Device) CreateVertexBuffer(length uint32, u d3d9.Usage, fvf uint32, p d3d9.Pool) (*VertexBuffer, error) {
	buf, err := d.newLinear("CreateVertexBuffer", length, u, p, d3d11.BindVertexBuffer)
	if err != nil {
		return nil, err
	}
	b := &VertexBuffer{resource: newResource(d.id, d3d9.RTypeVertexBuffer), buf: buf, fvf: fvf}
	b.destroy = buf.release
	return b, nil
}

// CreateIndexBuffer creates an index buffer of length bytes holding
// FmtIndex16 or FmtIndex32 indices.
func (d *Device) CreateIndexBuffer(length uint32, u d3d9.Usage, f d3d9.Format, p d3d9.Pool) (*IndexBuffer, error) {
	const op = "CreateIndexBuffer"
	if f != d3d9.FmtIndex16 && f != d3d9.FmtIndex32 {
		return nil, invalidCall(op, "not an index format", "format", f)
	}
	buf, err := d.newLinear(op, length, u, p, d3d11.BindIndexBuffer)
	if err != nil {
		return nil, err
	}
	b := &IndexBuffer{resource: newResource(d.id, d3d9.RTypeIndexBuffer), buf: buf, format: f}
	b.destroy = buf.release
	return b, nil
}

// CreateVertexDeclaration copies elems up to the terminating DeclEnd.
func (d *Device) CreateVertexDeclaration(elems []d3d9.VertexElement) (*VertexDeclaration, error) {
	end := slices.IndexFunc(elems, d3d9.VertexElement.IsEnd)
	if end < 0 {
		return nil, invalidCall("CreateVertexDeclaration", "missing DeclEnd")
	}
	return &VertexDeclaration{dev: d.id, refs: 1, elems: slices.Clone(elems[:end])}, nil
}

// --- scene ---

// BeginScene starts a scene. Scenes do not nest.
func (d *Device) BeginScene() error {
	if d.inScene {
		return invalidCall("BeginScene", "already in a scene")
	}
	d.inScene = true
	return nil
}

// EndScene ends the current scene.
func (d *Device) EndScene() error {
	if !d.inScene {
		return invalidCall("EndScene", "not in a scene")
	}
	d.inScene = false
	return nil
}
