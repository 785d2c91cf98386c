package nine

import (
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/format"
	"github.com/gogpu/nine/internal/msample"
	"github.com/gogpu/nine/platform"
)

// Swap chain limits.
const (
	MaxBackBuffers     = 3
	MaxPresentInterval = 4
)

const supportedPresentFlags = d3d9.PresentFlagDiscardDepthStencil

// SwapChain is a set of back buffers presented to one window.
type SwapChain struct {
	dev     DeviceID
	refs    uint32
	pp      d3d9.PresentParameters
	window  platform.Window
	modern  d3d11.SwapChain
	buffers []*Surface
}

// normalizePresentParameters resolves the defaults of pp in place and
// returns the window to present into.
func normalizePresentParameters(pp *d3d9.PresentParameters, focus platform.Window) (platform.Window, error) {
	const op = "CreateSwapChain"
	window := pp.DeviceWindow
	if window == nil {
		window = focus
	}
	if window == nil {
		return nil, invalidCall(op, "no device or focus window")
	}

	if pp.BackBufferWidth == 0 || pp.BackBufferHeight == 0 {
		if !pp.Windowed {
			return nil, invalidCall(op, "fullscreen swap chains need an explicit size")
		}
		w, h, err := window.ClientSize()
		if err != nil {
			return nil, translate(op, err)
		}
		if pp.BackBufferWidth == 0 {
			pp.BackBufferWidth = w
		}
		if pp.BackBufferHeight == 0 {
			pp.BackBufferHeight = h
		}
	}

	if pp.BackBufferFormat == d3d9.FmtUnknown {
		pp.BackBufferFormat = d3d9.FmtA8R8G8B8
	}

	switch pp.SwapEffect {
	case d3d9.SwapEffectDiscard, d3d9.SwapEffectCopy:
	default:
		Logger().Warn("nine: unsupported swap effect, using discard", "effect", pp.SwapEffect)
		pp.SwapEffect = d3d9.SwapEffectDiscard
	}

	pp.MultiSampleType = min(pp.MultiSampleType, msample.MaxSamples)
	if pp.MultiSampleType > d3d9.MultisampleNonMaskable && pp.SwapEffect != d3d9.SwapEffectDiscard {
		Logger().Warn("nine: multisampling needs the discard swap effect, disabling it", "effect", pp.SwapEffect)
		pp.MultiSampleType = d3d9.MultisampleNone
		pp.MultiSampleQuality = 0
	}

	if pp.SwapEffect == d3d9.SwapEffectCopy && pp.BackBufferCount > 1 {
		Logger().Warn("nine: copy swap effect supports one back buffer", "requested", pp.BackBufferCount)
		pp.BackBufferCount = 1
	}
	pp.BackBufferCount = min(max(pp.BackBufferCount, 1), MaxBackBuffers)

	if extra := pp.Flags &^ supportedPresentFlags; extra != 0 {
		Logger().Warn("nine: unsupported present parameter flags ignored", "flags", extra)
	}
	return window, nil
}

// newSwapChain creates a swap chain for pp, which is normalized in place.
// The swap chain starts with one reference.
func (d *Device) newSwapChain(pp *d3d9.PresentParameters) (*SwapChain, error) {
	const op = "CreateSwapChain"
	window, err := normalizePresentParameters(pp, d.params.FocusWindow)
	if err != nil {
		return nil, err
	}
	mf, err := format.ToModernDisplay(pp.BackBufferFormat)
	if err != nil {
		return nil, translate(op, err)
	}

	effect := d3d11.SwapEffectDiscard
	if pp.SwapEffect == d3d9.SwapEffectCopy {
		effect = d3d11.SwapEffectSequential
	}
	modern, err := d.ctx.factory.CreateSwapChain(d.modern, &d3d11.SwapChainDesc{
		BufferDesc: d3d11.ModeDesc{
			Width:       pp.BackBufferWidth,
			Height:      pp.BackBufferHeight,
			RefreshRate: d3d11.Rational{Numerator: pp.FullScreenRefreshRateInHz, Denominator: 1},
			Format:      mf,
		},
		SampleDesc:   msample.ToModern(pp.MultiSampleType, pp.MultiSampleQuality),
		BufferUsage:  d3d11.UsageRenderTargetOutput,
		BufferCount:  pp.BackBufferCount,
		OutputWindow: window,
		Windowed:     pp.Windowed,
		SwapEffect:   effect,
	})
	if err != nil {
		return nil, translate(op, err)
	}

	sc := &SwapChain{dev: d.id, refs: 1, pp: *pp, window: window, modern: modern}
	for i := range pp.BackBufferCount {
		tex, err := modern.Buffer(i)
		if err != nil {
			sc.free()
			return nil, translate(op, err)
		}
		rtv, err := d.modern.CreateRenderTargetView(tex)
		if err != nil {
			sc.free()
			return nil, translate(op, err)
		}
		img := &image{
			dev:       d.id,
			desc:      tex.Desc(),
			modern:    tex,
			format:    pp.BackBufferFormat,
			usage:     d3d9.UsageRenderTarget,
			pool:      d3d9.PoolDefault,
			msType:    pp.MultiSampleType,
			msQuality: pp.MultiSampleQuality,
		}
		s := newSurface(surfaceRenderTarget, img, 0, sc)
		s.rtv = rtv
		sc.buffers = append(sc.buffers, s)
	}
	Logger().Debug("nine: swap chain created",
		"width", pp.BackBufferWidth, "height", pp.BackBufferHeight,
		"format", pp.BackBufferFormat, "buffers", pp.BackBufferCount)
	return sc, nil
}

func (sc *SwapChain) free() {
	for _, s := range sc.buffers {
		s.free()
	}
	sc.buffers = nil
	if sc.modern != nil {
		sc.modern.Release()
		sc.modern = nil
	}
}

// AddRef increments the reference count.
func (sc *SwapChain) AddRef() uint32 {
	sc.refs++
	return sc.refs
}

// Release decrements the reference count; the last release destroys the
// back buffers and the modern swap chain.
func (sc *SwapChain) Release() uint32 {
	if sc.refs == 0 {
		return 0
	}
	sc.refs--
	if sc.refs == 0 {
		if d, err := lookupDevice(sc.dev); err == nil {
			d.forgetSwapChain(sc)
		}
		sc.free()
	}
	return sc.refs
}

// syncInterval returns the modern vertical sync interval for a legacy
// presentation interval.
func syncInterval(interval uint32) uint32 {
	switch interval {
	case d3d9.PresentIntervalImmediate:
		return 0
	case d3d9.PresentIntervalDefault, d3d9.PresentIntervalOne:
		return 1
	case d3d9.PresentIntervalTwo:
		return 2
	case d3d9.PresentIntervalThree:
		return 3
	case d3d9.PresentIntervalFour:
		return 4
	}
	return min(interval, MaxPresentInterval)
}

// Present shows the next back buffer. Only whole-surface presentation to
// the swap chain's own window is implemented: any source or destination
// rectangle, override window or dirty region yields NotAvailable.
func (sc *SwapChain) Present(src, dst *d3d9.Rect, window platform.Window, dirty []d3d9.Rect, flags d3d9.PresentFlags) error {
	if src != nil || dst != nil || window != nil || dirty != nil {
		return notAvailable("Present", "reason", "partial presentation")
	}
	if sc.modern == nil {
		return d3d9.InvalidCall
	}
	var mf d3d11.PresentFlag
	if flags&d3d9.PresentDoNotWait != 0 {
		mf |= d3d11.PresentDoNotWait
	}
	if flags&d3d9.PresentLinearContent != 0 {
		Logger().Debug("nine: linear content presentation ignored")
	}
	return translate("Present", sc.modern.Present(syncInterval(sc.pp.PresentationInterval), mf))
}

// BackBuffer returns back buffer i. Only mono buffers exist.
func (sc *SwapChain) BackBuffer(i uint32, t d3d9.BackBufferType) (*Surface, error) {
	if t != d3d9.BackBufferMono {
		return nil, invalidCall("BackBuffer", "stereo back buffers do not exist", "type", t)
	}
	if int(i) >= len(sc.buffers) {
		return nil, invalidCall("BackBuffer", "index out of range", "index", i)
	}
	s := sc.buffers[i]
	s.AddRef()
	return s, nil
}

// PresentParameters returns the normalized parameters of the swap chain.
func (sc *SwapChain) PresentParameters() d3d9.PresentParameters { return sc.pp }

// DisplayMode returns the mode the swap chain presents in.
func (sc *SwapChain) DisplayMode() d3d9.DisplayMode {
	return d3d9.DisplayMode{
		Width:       sc.pp.BackBufferWidth,
		Height:      sc.pp.BackBufferHeight,
		RefreshRate: sc.pp.FullScreenRefreshRateInHz,
		Format:      sc.pp.BackBufferFormat,
	}
}

// RasterStatus is not available: scan-out position is not exposed.
func (sc *SwapChain) RasterStatus() (d3d9.RasterStatus, error) {
	return d3d9.RasterStatus{}, notAvailable("RasterStatus")
}

// FrontBufferData is not available.
func (sc *SwapChain) FrontBufferData(dst *Surface) error {
	return notAvailable("FrontBufferData")
}

// Device returns the device that created the swap chain.
func (sc *SwapChain) Device() (*Device, error) { return lookupDevice(sc.dev) }
