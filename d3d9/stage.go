package d3d9

// SamplerStateType names a per-sampler setting.
type SamplerStateType uint32

// Sampler states.
const (
	SampAddressU      SamplerStateType = 1
	SampAddressV      SamplerStateType = 2
	SampAddressW      SamplerStateType = 3
	SampBorderColor   SamplerStateType = 4
	SampMagFilter     SamplerStateType = 5
	SampMinFilter     SamplerStateType = 6
	SampMipFilter     SamplerStateType = 7
	SampMipMapLODBias SamplerStateType = 8
	SampMaxMipLevel   SamplerStateType = 9
	SampMaxAnisotropy SamplerStateType = 10
	SampSRGBTexture   SamplerStateType = 11
	SampElementIndex  SamplerStateType = 12
	SampDMapOffset    SamplerStateType = 13
)

// Sampler indices outside the pixel range.
const (
	DMapSampler           uint32 = 256
	VertexTextureSampler0 uint32 = 257
	VertexTextureSampler1 uint32 = 258
	VertexTextureSampler2 uint32 = 259
	VertexTextureSampler3 uint32 = 260
)

// Texture addressing modes.
const (
	TAddressWrap   uint32 = 1
	TAddressMirror uint32 = 2
	TAddressClamp  uint32 = 3
	TAddressBorder uint32 = 4
)

// TextureStageStateType names a fixed-function texture combiner setting.
type TextureStageStateType uint32

// Texture stage states.
const (
	TSSColorOp               TextureStageStateType = 1
	TSSColorArg1             TextureStageStateType = 2
	TSSColorArg2             TextureStageStateType = 3
	TSSAlphaOp               TextureStageStateType = 4
	TSSAlphaArg1             TextureStageStateType = 5
	TSSAlphaArg2             TextureStageStateType = 6
	TSSBumpEnvMat00          TextureStageStateType = 7
	TSSBumpEnvMat01          TextureStageStateType = 8
	TSSBumpEnvMat10          TextureStageStateType = 9
	TSSBumpEnvMat11          TextureStageStateType = 10
	TSSTexCoordIndex         TextureStageStateType = 11
	TSSBumpEnvLScale         TextureStageStateType = 22
	TSSBumpEnvLOffset        TextureStageStateType = 23
	TSSTextureTransformFlags TextureStageStateType = 24
	TSSColorArg0             TextureStageStateType = 26
	TSSAlphaArg0             TextureStageStateType = 27
	TSSResultArg             TextureStageStateType = 28
	TSSConstant              TextureStageStateType = 32
)

// Texture operations.
const (
	TOPDisable    uint32 = 1
	TOPSelectArg1 uint32 = 2
	TOPSelectArg2 uint32 = 3
	TOPModulate   uint32 = 4
	TOPModulate2X uint32 = 5
	TOPAdd        uint32 = 7
)

// Texture argument sources.
const (
	TADiffuse uint32 = 0
	TACurrent uint32 = 1
	TATexture uint32 = 2
)

// Texture transform flags.
const (
	TTFFDisable uint32 = 0
)

// TransformStateType selects a fixed-function matrix.
type TransformStateType uint32

// Transform states. World matrices start at 256.
const (
	TSView       TransformStateType = 2
	TSProjection TransformStateType = 3
	TSTexture0   TransformStateType = 16
	TSTexture7   TransformStateType = 23
	TSWorld      TransformStateType = 256
)

// WorldMatrix returns the transform state of world matrix i.
func WorldMatrix(i uint32) TransformStateType { return TSWorld + TransformStateType(i) }

// Matrix is a row-major 4x4 matrix.
type Matrix [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Mul returns m × n.
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[i][k] * n[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

// ColorValue is a floating point RGBA color.
type ColorValue struct {
	R, G, B, A float32
}

// Material is the fixed-function lighting material.
type Material struct {
	Diffuse  ColorValue
	Ambient  ColorValue
	Specular ColorValue
	Emissive ColorValue
	Power    float32
}

// Viewport is the legacy viewport.
type Viewport struct {
	X, Y          uint32
	Width, Height uint32
	MinZ, MaxZ    float32
}

// VertexElement is one entry of a vertex declaration.
type VertexElement struct {
	Stream     uint16
	Offset     uint16
	Type       uint8
	Method     uint8
	Usage      uint8
	UsageIndex uint8
}

// DeclEnd terminates a vertex declaration.
var DeclEnd = VertexElement{Stream: 0xFF, Type: 17}

// IsEnd reports whether e terminates a declaration.
func (e VertexElement) IsEnd() bool { return e.Stream == 0xFF }

// StateBlockType selects the states captured by a state block.
type StateBlockType uint32

// State block types.
const (
	SBTAll         StateBlockType = 1
	SBTPixelState  StateBlockType = 2
	SBTVertexState StateBlockType = 3
)
