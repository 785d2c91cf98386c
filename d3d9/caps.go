package d3d9

// Caps2 flags.
const (
	Caps2FullscreenGamma   uint32 = 0x00020000
	Caps2CanCalibrateGamma uint32 = 0x00100000
	Caps2CanManageResource uint32 = 0x10000000
	Caps2DynamicTextures   uint32 = 0x20000000
	Caps2CanAutoGenMipMap  uint32 = 0x40000000
	Caps2CanShareResource  uint32 = 0x80000000
)

// Caps3 flags.
const (
	Caps3AlphaFullscreenFlipOrDiscard uint32 = 0x00000020
	Caps3LinearToSRGBPresentation     uint32 = 0x00000080
	Caps3CopyToVidMem                 uint32 = 0x00000100
	Caps3CopyToSystemMem              uint32 = 0x00000200
)

// PTextureCapsNoProjectedBumpEnv is a negative texture capability.
const PTextureCapsNoProjectedBumpEnv uint32 = 0x00200000

// Shader model limits.
const (
	VS20MaxDynamicFlowControlDepth = 24
	VS20MaxNumTemps                = 32
	VS20MaxStaticFlowControlDepth  = 4
	PS20MaxDynamicFlowControlDepth = 24
	PS20MaxNumTemps                = 32
	PS20MaxStaticFlowControlDepth  = 4
	PS20MaxNumInstructionSlots     = 512
)

// VertexShaderVersion encodes a vertex shader model.
func VertexShaderVersion(major, minor uint32) uint32 { return 0xFFFE0000 | major<<8 | minor }

// PixelShaderVersion encodes a pixel shader model.
func PixelShaderVersion(major, minor uint32) uint32 { return 0xFFFF0000 | major<<8 | minor }

// VShaderCaps20 describes vertex shader 2.0 extended capabilities.
type VShaderCaps20 struct {
	Caps                    uint32
	DynamicFlowControlDepth int32
	NumTemps                int32
	StaticFlowControlDepth  int32
}

// PShaderCaps20 describes pixel shader 2.0 extended capabilities.
type PShaderCaps20 struct {
	Caps                    uint32
	DynamicFlowControlDepth int32
	NumTemps                int32
	StaticFlowControlDepth  int32
	NumInstructionSlots     int32
}

// Caps is the legacy device capability descriptor.
type Caps struct {
	DeviceType     DeviceType
	AdapterOrdinal uint32

	Caps                  uint32
	Caps2                 uint32
	Caps3                 uint32
	PresentationIntervals uint32
	CursorCaps            uint32
	DevCaps               uint32

	PrimitiveMiscCaps        uint32
	RasterCaps               uint32
	ZCmpCaps                 uint32
	SrcBlendCaps             uint32
	DestBlendCaps            uint32
	AlphaCmpCaps             uint32
	ShadeCaps                uint32
	TextureCaps              uint32
	TextureFilterCaps        uint32
	CubeTextureFilterCaps    uint32
	VolumeTextureFilterCaps  uint32
	TextureAddressCaps       uint32
	VolumeTextureAddressCaps uint32
	LineCaps                 uint32

	MaxTextureWidth       uint32
	MaxTextureHeight      uint32
	MaxVolumeExtent       uint32
	MaxTextureRepeat      uint32
	MaxTextureAspectRatio uint32
	MaxAnisotropy         uint32
	MaxVertexW            float32

	GuardBandLeft   float32
	GuardBandTop    float32
	GuardBandRight  float32
	GuardBandBottom float32
	ExtentsAdjust   float32

	StencilCaps uint32

	FVFCaps                 uint32
	TextureOpCaps           uint32
	MaxTextureBlendStages   uint32
	MaxSimultaneousTextures uint32

	VertexProcessingCaps      uint32
	MaxActiveLights           uint32
	MaxUserClipPlanes         uint32
	MaxVertexBlendMatrices    uint32
	MaxVertexBlendMatrixIndex uint32

	MaxPointSize float32

	MaxPrimitiveCount uint32
	MaxVertexIndex    uint32
	MaxStreams        uint32
	MaxStreamStride   uint32

	VertexShaderVersion  uint32
	MaxVertexShaderConst uint32

	PixelShaderVersion    uint32
	PixelShader1xMaxValue float32

	DevCaps2                   uint32
	MaxNpatchTessellationLevel float32
	Reserved5                  uint32

	MasterAdapterOrdinal    uint32
	AdapterOrdinalInGroup   uint32
	NumberOfAdaptersInGroup uint32
	DeclTypes               uint32
	NumSimultaneousRTs      uint32
	StretchRectFilterCaps   uint32
	VS20Caps                VShaderCaps20
	PS20Caps                PShaderCaps20
	VertexTextureFilterCaps uint32

	MaxVShaderInstructionsExecuted    uint32
	MaxPShaderInstructionsExecuted    uint32
	MaxVertexShader30InstructionSlots uint32
	MaxPixelShader30InstructionSlots  uint32
}
