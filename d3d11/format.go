package d3d11

// Format is a modern (DXGI) resource format.
type Format uint32

// Formats.
const (
	FormatUnknown           Format = 0
	FormatR32G32B32A32Float Format = 2
	FormatR16G16B16A16Float Format = 10
	FormatR16G16B16A16Unorm Format = 11
	FormatR32G32Float       Format = 16
	FormatR10G10B10A2Unorm  Format = 24
	FormatR8G8B8A8Unorm     Format = 28
	FormatR8G8B8A8UnormSRGB Format = 29
	FormatR8G8B8A8Snorm     Format = 31
	FormatR16G16Float       Format = 34
	FormatR16G16Unorm       Format = 35
	FormatR16G16Snorm       Format = 37
	FormatD32Float          Format = 40
	FormatR32Float          Format = 41
	FormatR32Uint           Format = 42
	FormatD24UnormS8Uint    Format = 45
	FormatR8G8Unorm         Format = 49
	FormatR8G8Snorm         Format = 51
	FormatR16Float          Format = 54
	FormatD16Unorm          Format = 55
	FormatR16Unorm          Format = 56
	FormatR16Uint           Format = 57
	FormatR8Unorm           Format = 61
	FormatA8Unorm           Format = 65
	FormatR8G8B8G8Unorm     Format = 68
	FormatG8R8G8B8Unorm     Format = 69
	FormatBC1Unorm          Format = 71
	FormatBC2Unorm          Format = 74
	FormatBC3Unorm          Format = 77
	FormatB5G6R5Unorm       Format = 85
	FormatB5G5R5A1Unorm     Format = 86
	FormatB8G8R8A8Unorm     Format = 87
	FormatB8G8R8X8Unorm     Format = 88
	FormatB8G8R8A8UnormSRGB Format = 91
	FormatB4G4R4A4Unorm     Format = 115
)

// Compressed reports whether f is a block-compressed format.
func (f Format) Compressed() bool {
	switch f {
	case FormatBC1Unorm, FormatBC2Unorm, FormatBC3Unorm:
		return true
	}
	return false
}

// ElementSize returns the size in bytes of one pixel, or of one 4x4 block
// for compressed formats. Unknown formats report 0.
func (f Format) ElementSize() uint32 {
	switch f {
	case FormatR32G32B32A32Float:
		return 16
	case FormatR16G16B16A16Float, FormatR16G16B16A16Unorm, FormatR32G32Float:
		return 8
	case FormatR10G10B10A2Unorm, FormatR8G8B8A8Unorm, FormatR8G8B8A8UnormSRGB,
		FormatR8G8B8A8Snorm, FormatR16G16Float, FormatR16G16Unorm, FormatR16G16Snorm,
		FormatD32Float, FormatR32Float, FormatR32Uint, FormatD24UnormS8Uint,
		FormatR8G8B8G8Unorm, FormatG8R8G8B8Unorm,
		FormatB8G8R8A8Unorm, FormatB8G8R8X8Unorm, FormatB8G8R8A8UnormSRGB:
		return 4
	case FormatR8G8Unorm, FormatR8G8Snorm, FormatR16Float, FormatD16Unorm,
		FormatR16Unorm, FormatR16Uint, FormatB5G6R5Unorm, FormatB5G5R5A1Unorm,
		FormatB4G4R4A4Unorm:
		return 2
	case FormatR8Unorm, FormatA8Unorm:
		return 1
	case FormatBC1Unorm:
		return 8
	case FormatBC2Unorm, FormatBC3Unorm:
		return 16
	}
	return 0
}

// RowPitch returns the byte size of one row (or block row) of an image of
// the given width.
func (f Format) RowPitch(width uint32) uint32 {
	if f.Compressed() {
		return (width + 3) / 4 * f.ElementSize()
	}
	if f == FormatR8G8B8G8Unorm || f == FormatG8R8G8B8Unorm {
		return (width + 1) / 2 * f.ElementSize()
	}
	return width * f.ElementSize()
}

// RowCount returns the number of rows (or block rows) of an image of the
// given height.
func (f Format) RowCount(height uint32) uint32 {
	if f.Compressed() {
		return (height + 3) / 4
	}
	return height
}

// FormatSupport is a bitset of operations a device supports for a format.
type FormatSupport uint32

// Format support flags.
const (
	FormatSupportBuffer         FormatSupport = 0x1
	FormatSupportIAVertexBuffer FormatSupport = 0x2
	FormatSupportIAIndexBuffer  FormatSupport = 0x4
	FormatSupportTexture2D      FormatSupport = 0x20
	FormatSupportTexture3D      FormatSupport = 0x40
	FormatSupportTextureCube    FormatSupport = 0x80
	FormatSupportMip            FormatSupport = 0x1000
	FormatSupportMipAutogen     FormatSupport = 0x2000
	FormatSupportRenderTarget   FormatSupport = 0x4000
	FormatSupportBlendable      FormatSupport = 0x8000
	FormatSupportDepthStencil   FormatSupport = 0x10000
	FormatSupportCPULockable    FormatSupport = 0x20000
	FormatSupportMultisampleRT  FormatSupport = 0x200000
	FormatSupportDisplay        FormatSupport = 0x80000
)
