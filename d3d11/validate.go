package d3d11

import "fmt"

// MaxTextureSize is the largest texture dimension a device accepts.
const MaxTextureSize = 16384

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArg}, args...)...)
}

// IsDepth reports whether f is a depth/stencil format.
func (f Format) IsDepth() bool {
	switch f {
	case FormatD16Unorm, FormatD24UnormS8Uint, FormatD32Float:
		return true
	}
	return false
}

func checkAccess(u Usage, bind BindFlag, cpu CPUAccessFlag) error {
	switch u {
	case UsageDefault:
		if cpu != 0 {
			return invalid("default usage with CPU access %#x", uint32(cpu))
		}
	case UsageDynamic:
		if cpu != CPUAccessWrite {
			return invalid("dynamic usage requires write-only CPU access, got %#x", uint32(cpu))
		}
		if bind&(BindRenderTarget|BindDepthStencil) != 0 {
			return invalid("dynamic resources cannot be output-bound")
		}
	case UsageStaging:
		if bind != 0 {
			return invalid("staging resources cannot be bound (%#x)", uint32(bind))
		}
		if cpu == 0 {
			return invalid("staging resources need CPU access")
		}
	default:
		return invalid("%v usage needs initial data", u)
	}
	return nil
}

// Validate applies the creation rules of the modern API to a texture
// description. It returns the description with MipLevels 0 resolved to the
// full chain.
func (d Texture2DDesc) Validate() (Texture2DDesc, error) {
	if d.Width == 0 || d.Height == 0 || d.Width > MaxTextureSize || d.Height > MaxTextureSize {
		return d, invalid("texture size %dx%d", d.Width, d.Height)
	}
	if d.Format.ElementSize() == 0 {
		return d, invalid("texture format %d", d.Format)
	}
	if d.ArraySize == 0 {
		return d, invalid("zero array size")
	}
	full := FullMipChain(d.Width, d.Height)
	if d.MipLevels == 0 {
		d.MipLevels = full
	}
	if d.MipLevels > full {
		return d, invalid("%d mip levels for %dx%d", d.MipLevels, d.Width, d.Height)
	}
	if d.SampleDesc.Count == 0 || d.SampleDesc.Count > 32 {
		return d, invalid("sample count %d", d.SampleDesc.Count)
	}
	if d.SampleDesc.Count > 1 && (d.MipLevels != 1 || d.Usage != UsageDefault) {
		return d, invalid("multisampled textures need one level and default usage")
	}
	if d.MiscFlags&MiscTextureCube != 0 && (d.ArraySize%6 != 0 || d.Width != d.Height) {
		return d, invalid("cube texture %dx%d with %d slices", d.Width, d.Height, d.ArraySize)
	}
	const mipBinds = BindRenderTarget | BindShaderResource
	if d.MiscFlags&MiscGenerateMips != 0 && d.BindFlags&mipBinds != mipBinds {
		return d, invalid("mip generation needs render target and shader resource binding")
	}
	if err := checkAccess(d.Usage, d.BindFlags, d.CPUAccessFlags); err != nil {
		return d, err
	}
	if d.Usage != UsageStaging && d.Format.IsDepth() != (d.BindFlags&BindDepthStencil != 0) {
		return d, invalid("format %d with bind flags %#x", d.Format, uint32(d.BindFlags))
	}
	if d.BindFlags&BindRenderTarget != 0 && d.Format.IsDepth() {
		return d, invalid("depth format %d bound as render target", d.Format)
	}
	return d, nil
}

// Validate applies the creation rules of the modern API to a buffer
// description.
func (d *BufferDesc) Validate() error {
	if d.ByteWidth == 0 {
		return invalid("zero byte width")
	}
	if d.BindFlags&(BindRenderTarget|BindDepthStencil) != 0 {
		return invalid("buffer bound as output")
	}
	return checkAccess(d.Usage, d.BindFlags, d.CPUAccessFlags)
}

// CheckMap reports whether a resource created with u and cpu may be mapped
// with mt.
func CheckMap(u Usage, cpu CPUAccessFlag, mt MapType) error {
	if mt < MapRead || mt > MapWriteNoOverwrite {
		return invalid("map type %d", uint32(mt))
	}
	switch u {
	case UsageDynamic:
		if mt.Reads() {
			return invalid("%v on a dynamic resource", mt)
		}
	case UsageStaging:
		if mt == MapWriteDiscard || mt == MapWriteNoOverwrite {
			return invalid("%v on a staging resource", mt)
		}
		if mt.Reads() && cpu&CPUAccessRead == 0 {
			return invalid("%v without CPU read access", mt)
		}
		if mt.Writes() && cpu&CPUAccessWrite == 0 {
			return invalid("%v without CPU write access", mt)
		}
	default:
		return invalid("%v usage is not mappable", u)
	}
	return nil
}
