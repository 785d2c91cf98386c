package d3d9

import "math"

// RenderStateType names a fixed-function pipeline setting.
type RenderStateType uint32

// Render states.
const (
	RSZEnable                    RenderStateType = 7
	RSFillMode                   RenderStateType = 8
	RSShadeMode                  RenderStateType = 9
	RSZWriteEnable               RenderStateType = 14
	RSAlphaTestEnable            RenderStateType = 15
	RSLastPixel                  RenderStateType = 16
	RSSrcBlend                   RenderStateType = 19
	RSDestBlend                  RenderStateType = 20
	RSCullMode                   RenderStateType = 22
	RSZFunc                      RenderStateType = 23
	RSAlphaRef                   RenderStateType = 24
	RSAlphaFunc                  RenderStateType = 25
	RSDitherEnable               RenderStateType = 26
	RSAlphaBlendEnable           RenderStateType = 27
	RSFogEnable                  RenderStateType = 28
	RSSpecularEnable             RenderStateType = 29
	RSFogColor                   RenderStateType = 34
	RSFogTableMode               RenderStateType = 35
	RSFogStart                   RenderStateType = 36
	RSFogEnd                     RenderStateType = 37
	RSFogDensity                 RenderStateType = 38
	RSRangeFogEnable             RenderStateType = 48
	RSStencilEnable              RenderStateType = 52
	RSStencilFail                RenderStateType = 53
	RSStencilZFail               RenderStateType = 54
	RSStencilPass                RenderStateType = 55
	RSStencilFunc                RenderStateType = 56
	RSStencilRef                 RenderStateType = 57
	RSStencilMask                RenderStateType = 58
	RSStencilWriteMask           RenderStateType = 59
	RSTextureFactor              RenderStateType = 60
	RSWrap0                      RenderStateType = 128
	RSWrap7                      RenderStateType = 135
	RSClipping                   RenderStateType = 136
	RSLighting                   RenderStateType = 137
	RSAmbient                    RenderStateType = 139
	RSFogVertexMode              RenderStateType = 140
	RSColorVertex                RenderStateType = 141
	RSLocalViewer                RenderStateType = 142
	RSNormalizeNormals           RenderStateType = 143
	RSDiffuseMaterialSource      RenderStateType = 145
	RSSpecularMaterialSource     RenderStateType = 146
	RSAmbientMaterialSource      RenderStateType = 147
	RSEmissiveMaterialSource     RenderStateType = 148
	RSVertexBlend                RenderStateType = 151
	RSClipPlaneEnable            RenderStateType = 152
	RSPointSize                  RenderStateType = 154
	RSPointSizeMin               RenderStateType = 155
	RSPointSpriteEnable          RenderStateType = 156
	RSPointScaleEnable           RenderStateType = 157
	RSPointScaleA                RenderStateType = 158
	RSPointScaleB                RenderStateType = 159
	RSPointScaleC                RenderStateType = 160
	RSMultisampleAntialias       RenderStateType = 161
	RSMultisampleMask            RenderStateType = 162
	RSPatchEdgeStyle             RenderStateType = 163
	RSDebugMonitorToken          RenderStateType = 165
	RSPointSizeMax               RenderStateType = 166
	RSIndexedVertexBlendEnable   RenderStateType = 167
	RSColorWriteEnable           RenderStateType = 168
	RSTweenFactor                RenderStateType = 170
	RSBlendOp                    RenderStateType = 171
	RSPositionDegree             RenderStateType = 172
	RSNormalDegree               RenderStateType = 173
	RSScissorTestEnable          RenderStateType = 174
	RSSlopeScaleDepthBias        RenderStateType = 175
	RSAntialiasedLineEnable      RenderStateType = 176
	RSMinTessellationLevel       RenderStateType = 178
	RSMaxTessellationLevel       RenderStateType = 179
	RSAdaptiveTessX              RenderStateType = 180
	RSAdaptiveTessY              RenderStateType = 181
	RSAdaptiveTessZ              RenderStateType = 182
	RSAdaptiveTessW              RenderStateType = 183
	RSEnableAdaptiveTessellation RenderStateType = 184
	RSTwoSidedStencilMode        RenderStateType = 185
	RSCCWStencilFail             RenderStateType = 186
	RSCCWStencilZFail            RenderStateType = 187
	RSCCWStencilPass             RenderStateType = 188
	RSCCWStencilFunc             RenderStateType = 189
	RSColorWriteEnable1          RenderStateType = 190
	RSColorWriteEnable2          RenderStateType = 191
	RSColorWriteEnable3          RenderStateType = 192
	RSBlendFactor                RenderStateType = 193
	RSSRGBWriteEnable            RenderStateType = 194
	RSDepthBias                  RenderStateType = 195
	RSWrap8                      RenderStateType = 198
	RSWrap15                     RenderStateType = 205
	RSSeparateAlphaBlendEnable   RenderStateType = 206
	RSSrcBlendAlpha              RenderStateType = 207
	RSDestBlendAlpha             RenderStateType = 208
	RSBlendOpAlpha               RenderStateType = 209
)

// Boolean render state values.
const (
	False uint32 = 0
	True  uint32 = 1
)

// Z-buffer modes.
const (
	ZBFalse uint32 = 0
	ZBTrue  uint32 = 1
)

// Fill modes.
const (
	FillPoint     uint32 = 1
	FillWireframe uint32 = 2
	FillSolid     uint32 = 3
)

// Shade modes.
const (
	ShadeFlat    uint32 = 1
	ShadeGouraud uint32 = 2
)

// Cull modes.
const (
	CullNone uint32 = 1
	CullCW   uint32 = 2
	CullCCW  uint32 = 3
)

// Blend factors.
const (
	BlendZero        uint32 = 1
	BlendOne         uint32 = 2
	BlendSrcColor    uint32 = 3
	BlendInvSrcColor uint32 = 4
	BlendSrcAlpha    uint32 = 5
	BlendInvSrcAlpha uint32 = 6
)

// Blend operations.
const (
	BlendOpAdd uint32 = 1
)

// Comparison functions.
const (
	CmpNever        uint32 = 1
	CmpLess         uint32 = 2
	CmpEqual        uint32 = 3
	CmpLessEqual    uint32 = 4
	CmpGreater      uint32 = 5
	CmpNotEqual     uint32 = 6
	CmpGreaterEqual uint32 = 7
	CmpAlways       uint32 = 8
)

// Stencil operations.
const (
	StencilOpKeep uint32 = 1
)

// Fog modes.
const (
	FogNone   uint32 = 0
	FogExp    uint32 = 1
	FogExp2   uint32 = 2
	FogLinear uint32 = 3
)

// Material color sources.
const (
	MCSMaterial uint32 = 0
	MCSColor1   uint32 = 1
	MCSColor2   uint32 = 2
)

// Vertex blend modes.
const (
	VBFDisable uint32 = 0
)

// Patch edge styles.
const (
	PatchEdgeDiscrete uint32 = 0
)

// Tessellation degrees.
const (
	DegreeLinear uint32 = 1
	DegreeCubic  uint32 = 3
)

// Debug monitor tokens.
const (
	DMTEnable uint32 = 0
)

// FloatBits returns the render state encoding of a float setting.
func FloatBits(f float32) uint32 { return math.Float32bits(f) }

// FloatValue decodes a float render state.
func FloatValue(v uint32) float32 { return math.Float32frombits(v) }
