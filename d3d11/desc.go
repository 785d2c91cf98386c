package d3d11

// Usage describes how a resource is accessed by the GPU and CPU.
type Usage uint32

// Usages.
const (
	UsageDefault   Usage = 0
	UsageImmutable Usage = 1
	UsageDynamic   Usage = 2
	UsageStaging   Usage = 3
)

func (u Usage) String() string {
	switch u {
	case UsageDefault:
		return "default"
	case UsageImmutable:
		return "immutable"
	case UsageDynamic:
		return "dynamic"
	case UsageStaging:
		return "staging"
	}
	return "invalid"
}

// BindFlag selects the pipeline stages a resource can be bound to.
type BindFlag uint32

// Bind flags.
const (
	BindVertexBuffer   BindFlag = 0x1
	BindIndexBuffer    BindFlag = 0x2
	BindConstantBuffer BindFlag = 0x4
	BindShaderResource BindFlag = 0x8
	BindStreamOutput   BindFlag = 0x10
	BindRenderTarget   BindFlag = 0x20
	BindDepthStencil   BindFlag = 0x40
)

// CPUAccessFlag selects CPU access to a resource.
type CPUAccessFlag uint32

// CPU access flags.
const (
	CPUAccessWrite CPUAccessFlag = 0x10000
	CPUAccessRead  CPUAccessFlag = 0x20000
)

// MiscFlag holds optional resource properties.
type MiscFlag uint32

// Misc flags.
const (
	MiscGenerateMips MiscFlag = 0x1
	MiscShared       MiscFlag = 0x2
	MiscTextureCube  MiscFlag = 0x4
)

// SampleDesc is a multisample count and quality level.
type SampleDesc struct {
	Count   uint32
	Quality uint32
}

// Texture2DDesc describes a 2-D texture, texture array or cube.
type Texture2DDesc struct {
	Width          uint32
	Height         uint32
	MipLevels      uint32
	ArraySize      uint32
	Format         Format
	SampleDesc     SampleDesc
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      MiscFlag
}

// Subresources returns the number of subresources of the texture.
func (d *Texture2DDesc) Subresources() uint32 { return d.MipLevels * d.ArraySize }

// MipSize returns the extent of mip level.
func (d *Texture2DDesc) MipSize(level uint32) (width, height uint32) {
	return max(d.Width>>level, 1), max(d.Height>>level, 1)
}

// CalcSubresource returns the subresource index of a mip level in an array
// slice.
func CalcSubresource(mipSlice, arraySlice, mipLevels uint32) uint32 {
	return mipSlice + arraySlice*mipLevels
}

// FullMipChain returns the number of mip levels down to 1x1.
func FullMipChain(width, height uint32) uint32 {
	n := uint32(1)
	for s := max(width, height); s > 1; s >>= 1 {
		n++
	}
	return n
}

// BufferDesc describes a linear buffer.
type BufferDesc struct {
	ByteWidth      uint32
	Usage          Usage
	BindFlags      BindFlag
	CPUAccessFlags CPUAccessFlag
	MiscFlags      MiscFlag
}

// MapType selects the CPU access of a map call.
type MapType uint32

// Map types.
const (
	MapRead             MapType = 1
	MapWrite            MapType = 2
	MapReadWrite        MapType = 3
	MapWriteDiscard     MapType = 4
	MapWriteNoOverwrite MapType = 5
)

func (m MapType) String() string {
	switch m {
	case MapRead:
		return "read"
	case MapWrite:
		return "write"
	case MapReadWrite:
		return "read-write"
	case MapWriteDiscard:
		return "write-discard"
	case MapWriteNoOverwrite:
		return "write-no-overwrite"
	}
	return "invalid"
}

// Reads reports whether the map grants read access.
func (m MapType) Reads() bool { return m == MapRead || m == MapReadWrite }

// Writes reports whether the map grants write access.
func (m MapType) Writes() bool { return m != MapRead }

// MapFlag modifies a map call.
type MapFlag uint32

// MapDoNotWait makes Map fail with DXGI_ERROR_WAS_STILL_DRAWING instead of
// blocking on the GPU.
const MapDoNotWait MapFlag = 0x100000

// MappedSubresource is CPU-visible memory of one subresource.
type MappedSubresource struct {
	Data       []byte
	RowPitch   uint32
	DepthPitch uint32
}

// Viewport is a modern viewport.
type Viewport struct {
	TopLeftX float32
	TopLeftY float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// FeatureLevel is the capability tier of a device.
type FeatureLevel uint32

// Feature levels.
const (
	FeatureLevel10_0 FeatureLevel = 0xa000
	FeatureLevel10_1 FeatureLevel = 0xa100
	FeatureLevel11_0 FeatureLevel = 0xb000
	FeatureLevel11_1 FeatureLevel = 0xb100
)

// AdapterDesc describes a physical adapter. Description holds the UTF-16
// encoded name as reported by the display factory.
type AdapterDesc struct {
	Description           []uint16
	VendorID              uint32
	DeviceID              uint32
	SubSysID              uint32
	Revision              uint32
	DedicatedVideoMemory  uint64
	DedicatedSystemMemory uint64
	SharedSystemMemory    uint64
	LUID                  uint64
}

// Rational is a refresh rate.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// ModeDesc describes a display mode or back buffer.
type ModeDesc struct {
	Width       uint32
	Height      uint32
	RefreshRate Rational
	Format      Format
}

// SwapEffect selects the presentation model.
type SwapEffect uint32

// Swap effects.
const (
	SwapEffectDiscard    SwapEffect = 0
	SwapEffectSequential SwapEffect = 1
)

// PresentFlag modifies a present call.
type PresentFlag uint32

// PresentDoNotWait makes Present fail with DXGI_ERROR_WAS_STILL_DRAWING
// instead of blocking.
const PresentDoNotWait PresentFlag = 0x8

// Buffer usage of swap chain images.
const (
	UsageRenderTargetOutput uint32 = 0x20
)
