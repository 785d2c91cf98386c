package state

import "github.com/gogpu/nine/d3d9"

var (
	one  = d3d9.FloatBits(1)
	zero = d3d9.FloatBits(0)
)

// fog settings are consumed by both stages.
var sharedDefaults = map[d3d9.RenderStateType]uint32{
	d3d9.RSShadeMode:    d3d9.ShadeGouraud,
	d3d9.RSFogEnable:    d3d9.False,
	d3d9.RSFogColor:     0,
	d3d9.RSFogTableMode: d3d9.FogNone,
	d3d9.RSFogStart:     zero,
	d3d9.RSFogEnd:       one,
	d3d9.RSFogDensity:   one,
}

var vertexDefaults = map[d3d9.RenderStateType]uint32{
	d3d9.RSCullMode:                   d3d9.CullCCW,
	d3d9.RSRangeFogEnable:             d3d9.False,
	d3d9.RSAmbient:                    0,
	d3d9.RSColorVertex:                d3d9.True,
	d3d9.RSFogVertexMode:              d3d9.FogNone,
	d3d9.RSClipping:                   d3d9.True,
	d3d9.RSLighting:                   d3d9.True,
	d3d9.RSLocalViewer:                d3d9.True,
	d3d9.RSEmissiveMaterialSource:     d3d9.MCSMaterial,
	d3d9.RSAmbientMaterialSource:      d3d9.MCSMaterial,
	d3d9.RSDiffuseMaterialSource:      d3d9.MCSColor1,
	d3d9.RSSpecularMaterialSource:     d3d9.MCSColor2,
	d3d9.RSVertexBlend:                d3d9.VBFDisable,
	d3d9.RSClipPlaneEnable:            0,
	d3d9.RSPointSize:                  one,
	d3d9.RSPointSizeMin:               one,
	d3d9.RSPointSpriteEnable:          d3d9.False,
	d3d9.RSPointScaleEnable:           d3d9.False,
	d3d9.RSPointScaleA:                one,
	d3d9.RSPointScaleB:                zero,
	d3d9.RSPointScaleC:                zero,
	d3d9.RSMultisampleAntialias:       d3d9.True,
	d3d9.RSMultisampleMask:            0xFFFFFFFF,
	d3d9.RSPatchEdgeStyle:             d3d9.PatchEdgeDiscrete,
	d3d9.RSDebugMonitorToken:          d3d9.DMTEnable,
	d3d9.RSPointSizeMax:               d3d9.FloatBits(64),
	d3d9.RSIndexedVertexBlendEnable:   d3d9.False,
	d3d9.RSTweenFactor:                zero,
	d3d9.RSPositionDegree:             d3d9.DegreeCubic,
	d3d9.RSNormalDegree:               d3d9.DegreeLinear,
	d3d9.RSMinTessellationLevel:       one,
	d3d9.RSMaxTessellationLevel:       one,
	d3d9.RSAdaptiveTessX:              zero,
	d3d9.RSAdaptiveTessY:              zero,
	d3d9.RSAdaptiveTessZ:              one,
	d3d9.RSAdaptiveTessW:              zero,
	d3d9.RSEnableAdaptiveTessellation: d3d9.False,
	d3d9.RSNormalizeNormals:           d3d9.False,
	d3d9.RSSpecularEnable:             d3d9.False,
}

var pixelDefaults = map[d3d9.RenderStateType]uint32{
	d3d9.RSZEnable:                  d3d9.ZBFalse,
	d3d9.RSFillMode:                 d3d9.FillSolid,
	d3d9.RSZWriteEnable:             d3d9.True,
	d3d9.RSAlphaTestEnable:          d3d9.False,
	d3d9.RSLastPixel:                d3d9.True,
	d3d9.RSSrcBlend:                 d3d9.BlendOne,
	d3d9.RSDestBlend:                d3d9.BlendZero,
	d3d9.RSZFunc:                    d3d9.CmpLessEqual,
	d3d9.RSAlphaRef:                 0,
	d3d9.RSAlphaFunc:                d3d9.CmpAlways,
	d3d9.RSDitherEnable:             d3d9.False,
	d3d9.RSAlphaBlendEnable:         d3d9.False,
	d3d9.RSDepthBias:                0,
	d3d9.RSStencilEnable:            d3d9.False,
	d3d9.RSStencilFail:              d3d9.StencilOpKeep,
	d3d9.RSStencilZFail:             d3d9.StencilOpKeep,
	d3d9.RSStencilPass:              d3d9.StencilOpKeep,
	d3d9.RSStencilFunc:              d3d9.CmpAlways,
	d3d9.RSStencilRef:               0,
	d3d9.RSStencilMask:              0xFFFFFFFF,
	d3d9.RSStencilWriteMask:         0xFFFFFFFF,
	d3d9.RSTextureFactor:            0xFFFFFFFF,
	d3d9.RSColorWriteEnable:         0xF,
	d3d9.RSColorWriteEnable1:        0xF,
	d3d9.RSColorWriteEnable2:        0xF,
	d3d9.RSColorWriteEnable3:        0xF,
	d3d9.RSBlendOp:                  d3d9.BlendOpAdd,
	d3d9.RSScissorTestEnable:        d3d9.False,
	d3d9.RSSlopeScaleDepthBias:      0,
	d3d9.RSAntialiasedLineEnable:    d3d9.False,
	d3d9.RSTwoSidedStencilMode:      d3d9.False,
	d3d9.RSCCWStencilFail:           d3d9.StencilOpKeep,
	d3d9.RSCCWStencilZFail:          d3d9.StencilOpKeep,
	d3d9.RSCCWStencilPass:           d3d9.StencilOpKeep,
	d3d9.RSCCWStencilFunc:           d3d9.CmpAlways,
	d3d9.RSBlendFactor:              0xFFFFFFFF,
	d3d9.RSSRGBWriteEnable:          d3d9.False,
	d3d9.RSSeparateAlphaBlendEnable: d3d9.False,
	d3d9.RSSrcBlendAlpha:            d3d9.BlendOne,
	d3d9.RSDestBlendAlpha:           d3d9.BlendZero,
	d3d9.RSBlendOpAlpha:             d3d9.BlendOpAdd,
}

func init() {
	for rs := d3d9.RSWrap0; rs <= d3d9.RSWrap7; rs++ {
		pixelDefaults[rs] = 0
	}
	for rs := d3d9.RSWrap8; rs <= d3d9.RSWrap15; rs++ {
		pixelDefaults[rs] = 0
	}
	for rs, v := range sharedDefaults {
		vertexDefaults[rs] = v
		pixelDefaults[rs] = v
	}
}

const (
	maxSamplerState = d3d9.SampDMapOffset
	maxStageState   = d3d9.TSSConstant
)

type sampler [maxSamplerState + 1]uint32

type stage [maxStageState + 1]uint32

func defaultSampler() sampler {
	var s sampler
	s[d3d9.SampAddressU] = d3d9.TAddressWrap
	s[d3d9.SampAddressV] = d3d9.TAddressWrap
	s[d3d9.SampAddressW] = d3d9.TAddressWrap
	s[d3d9.SampMagFilter] = uint32(d3d9.TexFPoint)
	s[d3d9.SampMinFilter] = uint32(d3d9.TexFPoint)
	s[d3d9.SampMipFilter] = uint32(d3d9.TexFNone)
	s[d3d9.SampMaxAnisotropy] = 1
	s[d3d9.SampDMapOffset] = 256
	return s
}

func defaultStage(i uint32) stage {
	var s stage
	s[d3d9.TSSColorOp] = d3d9.TOPDisable
	s[d3d9.TSSColorArg1] = d3d9.TATexture
	s[d3d9.TSSColorArg2] = d3d9.TACurrent
	s[d3d9.TSSAlphaOp] = d3d9.TOPDisable
	s[d3d9.TSSAlphaArg1] = d3d9.TATexture
	s[d3d9.TSSAlphaArg2] = d3d9.TACurrent
	s[d3d9.TSSTexCoordIndex] = i
	s[d3d9.TSSTextureTransformFlags] = d3d9.TTFFDisable
	s[d3d9.TSSColorArg0] = d3d9.TACurrent
	s[d3d9.TSSAlphaArg0] = d3d9.TACurrent
	s[d3d9.TSSResultArg] = d3d9.TACurrent
	if i == 0 {
		s[d3d9.TSSColorOp] = d3d9.TOPModulate
		s[d3d9.TSSAlphaOp] = d3d9.TOPSelectArg1
	}
	return s
}
