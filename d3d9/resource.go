package d3d9

// Usage is the legacy resource usage bitset.
type Usage uint32

// Usage flags.
const (
	UsageRenderTarget    Usage = 1 << 0
	UsageDepthStencil    Usage = 1 << 1
	UsageWriteOnly       Usage = 1 << 3
	UsageSoftwareProcess Usage = 1 << 4
	UsageDoNotClip       Usage = 1 << 5
	UsagePoints          Usage = 1 << 6
	UsageRTPatches       Usage = 1 << 7
	UsageNPatches        Usage = 1 << 8
	UsageDynamic         Usage = 1 << 9
	UsageAutoGenMipMap   Usage = 1 << 10
	UsageDMap            Usage = 1 << 14
)

// Pool is the legacy memory class of a resource.
type Pool uint32

// Memory pools.
const (
	PoolDefault   Pool = 0
	PoolManaged   Pool = 1
	PoolSystemMem Pool = 2
	PoolScratch   Pool = 3
)

func (p Pool) String() string {
	switch p {
	case PoolDefault:
		return "default"
	case PoolManaged:
		return "managed"
	case PoolSystemMem:
		return "systemmem"
	case PoolScratch:
		return "scratch"
	}
	return "invalid"
}

// LockFlags modify how a resource is mapped for CPU access.
type LockFlags uint32

// Lock flags.
const (
	LockReadOnly      LockFlags = 1 << 4
	LockNoSysLock     LockFlags = 1 << 11
	LockNoOverwrite   LockFlags = 1 << 12
	LockDiscard       LockFlags = 1 << 13
	LockDoNotWait     LockFlags = 1 << 14
	LockNoDirtyUpdate LockFlags = 1 << 15
)

// ResourceType identifies the kind of a resource.
type ResourceType uint32

// Resource types.
const (
	RTypeSurface       ResourceType = 1
	RTypeVolume        ResourceType = 2
	RTypeTexture       ResourceType = 3
	RTypeVolumeTexture ResourceType = 4
	RTypeCubeTexture   ResourceType = 5
	RTypeVertexBuffer  ResourceType = 6
	RTypeIndexBuffer   ResourceType = 7
)

// MultisampleType is the legacy sample count; values 2..16 are sample
// counts and 1 (non-maskable) is treated as a single sample.
type MultisampleType uint32

// Multisample types.
const (
	MultisampleNone        MultisampleType = 0
	MultisampleNonMaskable MultisampleType = 1
	Multisample4Samples    MultisampleType = 4
	Multisample16Samples   MultisampleType = 16
)

// CubeMapFace selects one face of a cube texture.
type CubeMapFace uint32

// Cube map faces.
const (
	CubeFacePositiveX CubeMapFace = iota
	CubeFaceNegativeX
	CubeFacePositiveY
	CubeFaceNegativeY
	CubeFacePositiveZ
	CubeFaceNegativeZ
	CubeFaceCount
)

// BackBufferType selects a stereo eye; only mono buffers exist.
type BackBufferType uint32

// Back buffer types.
const (
	BackBufferMono  BackBufferType = 0
	BackBufferLeft  BackBufferType = 1
	BackBufferRight BackBufferType = 2
)

// TextureFilterType is a sampler filter and the mipmap auto-generation
// filter.
type TextureFilterType uint32

// Texture filters.
const (
	TexFNone          TextureFilterType = 0
	TexFPoint         TextureFilterType = 1
	TexFLinear        TextureFilterType = 2
	TexFAnisotropic   TextureFilterType = 3
	TexFPyramidalQuad TextureFilterType = 6
	TexFGaussianQuad  TextureFilterType = 7
)

// Rect is an integer rectangle with exclusive right and bottom edges.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// LockedRect describes mapped image memory.
type LockedRect struct {
	Pitch int32
	Bits  []byte
}

// SurfaceDesc describes a surface or one texture level.
type SurfaceDesc struct {
	Format             Format
	Type               ResourceType
	Usage              Usage
	Pool               Pool
	MultiSampleType    MultisampleType
	MultiSampleQuality uint32
	Width              uint32
	Height             uint32
}

// VertexBufferDesc describes a vertex buffer.
type VertexBufferDesc struct {
	Format Format
	Type   ResourceType
	Usage  Usage
	Pool   Pool
	Size   uint32
	FVF    uint32
}

// IndexBufferDesc describes an index buffer.
type IndexBufferDesc struct {
	Format Format
	Type   ResourceType
	Usage  Usage
	Pool   Pool
	Size   uint32
}

// GUID identifies a private data slot.
type GUID [16]byte
