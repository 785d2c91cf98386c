package nine

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/cache"
	"github.com/gogpu/nine/internal/caps"
	"github.com/gogpu/nine/internal/format"
	"github.com/gogpu/nine/platform"
)

// Identification strings reported for every adapter.
const (
	DriverName        = "D3D 9-to-11 Driver"
	DescriptionSuffix = "(D3D 9-to-11 Device)"
)

// Context is the entry object of the legacy API. It owns the display
// factory and the adapters it enumerated.
type Context struct {
	factory  d3d11.Factory
	adapters []*adapter
}

// probeCacheSize bounds the memoized format and multisample answers per
// adapter.
const probeCacheSize = 256

type sampleKey struct {
	format d3d11.Format
	count  uint32
}

// adapter is one enumerated GPU. Format queries need a modern device, so
// one is created on first use and kept for the lifetime of the context.
type adapter struct {
	index   uint32
	modern  d3d11.Adapter
	modes   *cache.Cache[d3d9.Format, []d3d11.ModeDesc]
	support *cache.Cache[d3d11.Format, d3d11.FormatSupport]
	quality *cache.Cache[sampleKey, uint32]
	probe   d3d11.Device
}

// NewContext enumerates the adapters of factory.
func NewContext(factory d3d11.Factory) (*Context, error) {
	list, err := factory.Adapters()
	if err != nil {
		return nil, translate("NewContext", err)
	}
	c := &Context{factory: factory}
	for i, a := range list {
		c.adapters = append(c.adapters, &adapter{
			index:   uint32(i),
			modern:  a,
			modes:   cache.New[d3d9.Format, []d3d11.ModeDesc](0),
			support: cache.New[d3d11.Format, d3d11.FormatSupport](probeCacheSize),
			quality: cache.New[sampleKey, uint32](probeCacheSize),
		})
	}
	Logger().Info("nine: context created", "adapters", len(c.adapters))
	return c, nil
}

// Release destroys the probe devices. Devices created from c stay valid.
func (c *Context) Release() {
	for _, a := range c.adapters {
		if a.probe != nil {
			a.probe.Release()
			a.probe = nil
		}
		a.support.Reset()
		a.quality.Reset()
	}
}

func (c *Context) adapter(i uint32) (*adapter, error) {
	if int(i) >= len(c.adapters) {
		return nil, invalidCall("adapter", "ordinal out of range", "adapter", i)
	}
	return c.adapters[i], nil
}

func checkDeviceType(op string, dt d3d9.DeviceType) error {
	if dt != d3d9.DevTypeHAL {
		return invalidCall(op, "only HAL devices exist", "type", dt)
	}
	return nil
}

// AdapterCount returns the number of adapters.
func (c *Context) AdapterCount() uint32 { return uint32(len(c.adapters)) }

// RegisterSoftwareDevice accepts and ignores a software rasterizer.
func (c *Context) RegisterSoftwareDevice(init uintptr) error {
	Logger().Warn("nine: application tried to register a software device")
	return nil
}

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeDescription converts a NUL-terminated UTF-16 adapter name.
func decodeDescription(name []uint16) string {
	raw := make([]byte, 0, 2*len(name))
	for _, u := range name {
		if u == 0 {
			break
		}
		raw = append(raw, byte(u), byte(u>>8))
	}
	out, err := utf16Decoder.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(bytes.TrimSpace(out))
}

// AdapterIdentifier describes adapter i.
func (c *Context) AdapterIdentifier(i uint32) (d3d9.AdapterIdentifier, error) {
	a, err := c.adapter(i)
	if err != nil {
		return d3d9.AdapterIdentifier{}, err
	}
	desc := a.modern.Desc()
	return d3d9.AdapterIdentifier{
		Driver:        DriverName,
		Description:   decodeDescription(desc.Description) + " " + DescriptionSuffix,
		DeviceName:    fmt.Sprintf("DISPLAY%d", a.index),
		DriverVersion: 1,
		VendorID:      desc.VendorID,
		DeviceID:      desc.DeviceID,
		SubSysID:      desc.SubSysID,
		Revision:      desc.Revision,
		WHQLLevel:     1,
	}, nil
}

// displayModes returns the cached mode list of a for display format f. An
// adapter without outputs caches an empty list.
func (a *adapter) displayModes(f d3d9.Format) []d3d11.ModeDesc {
	mf, err := format.ToModernDisplay(f)
	if err != nil {
		return nil
	}
	modes, _ := a.modes.Load(f, func() ([]d3d11.ModeDesc, error) {
		modes, err := a.modern.DisplayModes(mf)
		if err != nil {
			Logger().Warn("nine: no outputs on adapter", "adapter", a.index, "err", err)
			return nil, nil
		}
		return modes, nil
	})
	return modes
}

func refreshRate(r d3d11.Rational) uint32 {
	if r.Denominator == 0 {
		return 0
	}
	return r.Numerator / r.Denominator
}

// AdapterModeCount returns the number of display modes of adapter i in
// format f. Unknown adapters and non-display formats have none.
func (c *Context) AdapterModeCount(i uint32, f d3d9.Format) uint32 {
	if int(i) >= len(c.adapters) || !format.IsDisplay(f) {
		return 0
	}
	return uint32(len(c.adapters[i].displayModes(f)))
}

// EnumAdapterModes returns display mode n of adapter i in format f.
func (c *Context) EnumAdapterModes(i uint32, f d3d9.Format, n uint32) (d3d9.DisplayMode, error) {
	if !format.IsDisplay(f) {
		return d3d9.DisplayMode{}, notAvailable("EnumAdapterModes", "format", f)
	}
	a, err := c.adapter(i)
	if err != nil {
		return d3d9.DisplayMode{}, err
	}
	modes := a.displayModes(f)
	if int(n) >= len(modes) {
		return d3d9.DisplayMode{}, d3d9.NotAvailable
	}
	m := modes[n]
	return d3d9.DisplayMode{Width: m.Width, Height: m.Height, RefreshRate: refreshRate(m.RefreshRate), Format: f}, nil
}

// AdapterDisplayMode returns the current mode of adapter i, taken to be
// the largest mode its output offers.
func (c *Context) AdapterDisplayMode(i uint32) (d3d9.DisplayMode, error) {
	a, err := c.adapter(i)
	if err != nil {
		return d3d9.DisplayMode{}, err
	}
	var best d3d9.DisplayMode
	for _, m := range a.displayModes(d3d9.FmtX8R8G8B8) {
		if m.Width*m.Height >= best.Width*best.Height {
			best = d3d9.DisplayMode{Width: m.Width, Height: m.Height, RefreshRate: refreshRate(m.RefreshRate), Format: d3d9.FmtX8R8G8B8}
		}
	}
	if best.Width == 0 {
		return d3d9.DisplayMode{}, notAvailable("AdapterDisplayMode", "adapter", i)
	}
	return best, nil
}

// CheckDeviceType reports whether a device of type dt can present
// backBuffer content on a display in adapterFormat.
func (c *Context) CheckDeviceType(i uint32, dt d3d9.DeviceType, adapterFormat, backBuffer d3d9.Format, windowed bool) error {
	if _, err := c.adapter(i); err != nil {
		return err
	}
	if err := checkDeviceType("CheckDeviceType", dt); err != nil {
		return err
	}
	if !format.IsDisplay(adapterFormat) {
		return notAvailable("CheckDeviceType", "adapterFormat", adapterFormat)
	}
	if backBuffer != d3d9.FmtUnknown && !format.IsDisplay(backBuffer) {
		return notAvailable("CheckDeviceType", "backBuffer", backBuffer)
	}
	return nil
}

// probeDevice returns the device used to answer format queries.
func (c *Context) probeDevice(a *adapter) (d3d11.Device, error) {
	if a.probe == nil {
		dev, err := c.factory.CreateDevice(a.modern)
		if err != nil {
			return nil, translate("CreateDevice", err)
		}
		a.probe = dev
	}
	return a.probe, nil
}

// resourceSupport is the modern support bit required per resource type.
var resourceSupport = map[d3d9.ResourceType]d3d11.FormatSupport{
	d3d9.RTypeSurface:       d3d11.FormatSupportTexture2D,
	d3d9.RTypeVolume:        d3d11.FormatSupportTexture3D,
	d3d9.RTypeTexture:       d3d11.FormatSupportTexture2D,
	d3d9.RTypeVolumeTexture: d3d11.FormatSupportTexture3D,
	d3d9.RTypeCubeTexture:   d3d11.FormatSupportTextureCube,
	d3d9.RTypeVertexBuffer:  d3d11.FormatSupportIAVertexBuffer,
	d3d9.RTypeIndexBuffer:   d3d11.FormatSupportIAIndexBuffer,
}

// usageSupport is the modern support bit required per legacy usage.
var usageSupport = []struct {
	usage   d3d9.Usage
	support d3d11.FormatSupport
}{
	{d3d9.UsageAutoGenMipMap, d3d11.FormatSupportMipAutogen},
	{d3d9.UsageRenderTarget, d3d11.FormatSupportRenderTarget},
	{d3d9.UsageDepthStencil, d3d11.FormatSupportDepthStencil},
}

// CheckDeviceFormat reports whether resources of type rtype with usage u
// can be created in format f.
func (c *Context) CheckDeviceFormat(i uint32, dt d3d9.DeviceType, adapterFormat d3d9.Format, u d3d9.Usage, rtype d3d9.ResourceType, f d3d9.Format) error {
	a, err := c.adapter(i)
	if err != nil {
		return err
	}
	if err := checkDeviceType("CheckDeviceFormat", dt); err != nil {
		return err
	}
	mf, err := format.ToModern(f)
	if err != nil || mf == d3d11.FormatUnknown {
		return d3d9.NotAvailable
	}
	dev, err := c.probeDevice(a)
	if err != nil {
		return err
	}
	support, err := a.support.Load(mf, func() (d3d11.FormatSupport, error) {
		return dev.CheckFormatSupport(mf)
	})
	if err != nil {
		return d3d9.NotAvailable
	}
	if need, ok := resourceSupport[rtype]; ok && support&need == 0 {
		return d3d9.NotAvailable
	}
	for _, us := range usageSupport {
		if u&us.usage != 0 && support&us.support == 0 {
			return d3d9.NotAvailable
		}
	}
	return nil
}

// CheckDeviceMultiSampleType returns the number of quality levels adapter i
// offers for surfaces in format f with multisample type ms. No support is
// reported as NotAvailable.
func (c *Context) CheckDeviceMultiSampleType(i uint32, dt d3d9.DeviceType, f d3d9.Format, windowed bool, ms d3d9.MultisampleType) (uint32, error) {
	a, err := c.adapter(i)
	if err != nil {
		return 0, err
	}
	if err := checkDeviceType("CheckDeviceMultiSampleType", dt); err != nil {
		return 0, err
	}
	mf, err := format.ToModern(f)
	if err != nil || mf == d3d11.FormatUnknown {
		return 0, d3d9.NotAvailable
	}
	dev, err := c.probeDevice(a)
	if err != nil {
		return 0, err
	}
	key := sampleKey{format: mf, count: max(uint32(ms), 1)}
	q, err := a.quality.Load(key, func() (uint32, error) {
		return dev.CheckMultisampleQualityLevels(key.format, key.count)
	})
	if err != nil || q == 0 {
		return 0, d3d9.NotAvailable
	}
	return q, nil
}

// DeviceCaps returns the capabilities of adapter i.
func (c *Context) DeviceCaps(i uint32, dt d3d9.DeviceType) (d3d9.Caps, error) {
	if _, err := c.adapter(i); err != nil {
		return d3d9.Caps{}, err
	}
	if err := checkDeviceType("DeviceCaps", dt); err != nil {
		return d3d9.Caps{}, err
	}
	return caps.Capabilities(i), nil
}

// CreateDevice creates a device on adapter i presenting into focus or
// pp.DeviceWindow. pp is normalized in place the way the implicit swap
// chain resolved it.
func (c *Context) CreateDevice(i uint32, dt d3d9.DeviceType, focus platform.Window, flags uint32, pp *d3d9.PresentParameters) (*Device, error) {
	a, err := c.adapter(i)
	if err != nil {
		return nil, err
	}
	if err := checkDeviceType("CreateDevice", dt); err != nil {
		return nil, err
	}
	if pp == nil {
		return nil, invalidCall("CreateDevice", "nil present parameters")
	}
	if flags&d3d9.CreateMultithreaded != 0 {
		Logger().Debug("nine: multithreaded flag recorded but not enforced")
	}
	modern, err := c.factory.CreateDevice(a.modern)
	if err != nil {
		return nil, translate("CreateDevice", err)
	}
	params := d3d9.CreationParameters{
		AdapterOrdinal: i,
		DeviceType:     dt,
		FocusWindow:    focus,
		BehaviorFlags:  flags,
	}
	return newDevice(c, a, modern, params, pp)
}
