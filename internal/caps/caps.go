// Package caps synthesizes the legacy capability descriptor.
//
// Every device able to run the modern API is a superset of the legacy
// feature set, so bitfield capabilities are reported fully set and numeric
// ceilings are fixed architectural limits rather than device queries.
package caps

import (
	"math"

	"github.com/gogpu/nine/d3d9"
)

const all = ^uint32(0)

// Limits guaranteed by modern hardware.
const (
	MaxTextureSize     = 16384
	MaxVolumeExtent    = 2048
	MaxTextureRepeat   = 8192
	MaxAnisotropy      = 16
	MaxStreams         = 16
	MaxSimultaneousRTs = 8
	MaxSM3Instructions = 32768
)

// Capabilities returns the descriptor for the adapter with the given
// ordinal. It never fails.
func Capabilities(ordinal uint32) d3d9.Caps {
	return d3d9.Caps{
		DeviceType:     d3d9.DevTypeHAL,
		AdapterOrdinal: ordinal,

		Caps: 0,
		Caps2: d3d9.Caps2CanAutoGenMipMap |
			d3d9.Caps2CanCalibrateGamma |
			d3d9.Caps2FullscreenGamma |
			d3d9.Caps2CanManageResource |
			d3d9.Caps2DynamicTextures,
		Caps3: d3d9.Caps3AlphaFullscreenFlipOrDiscard |
			d3d9.Caps3CopyToVidMem |
			d3d9.Caps3CopyToSystemMem |
			d3d9.Caps3LinearToSRGBPresentation,
		PresentationIntervals: all,
		CursorCaps:            all,
		DevCaps:               all,

		PrimitiveMiscCaps: all,
		RasterCaps:        all,
		ZCmpCaps:          all,
		SrcBlendCaps:      all,
		DestBlendCaps:     all,
		AlphaCmpCaps:      all,
		ShadeCaps:         all,
		// Negative flag: set bits would advertise missing support.
		TextureCaps:              ^d3d9.PTextureCapsNoProjectedBumpEnv,
		TextureFilterCaps:        all,
		CubeTextureFilterCaps:    all,
		VolumeTextureFilterCaps:  all,
		TextureAddressCaps:       all,
		VolumeTextureAddressCaps: all,
		LineCaps:                 all,

		MaxTextureWidth:       MaxTextureSize,
		MaxTextureHeight:      MaxTextureSize,
		MaxVolumeExtent:       MaxVolumeExtent,
		MaxTextureRepeat:      MaxTextureRepeat,
		MaxTextureAspectRatio: MaxTextureSize,
		MaxAnisotropy:         MaxAnisotropy,
		MaxVertexW:            math.MaxFloat32,

		StencilCaps: all,

		FVFCaps:                 all,
		TextureOpCaps:           all,
		MaxTextureBlendStages:   all,
		MaxSimultaneousTextures: all,

		VertexProcessingCaps:      all,
		MaxActiveLights:           all,
		MaxUserClipPlanes:         all,
		MaxVertexBlendMatrices:    all,
		MaxVertexBlendMatrixIndex: all,

		MaxPointSize: math.MaxFloat32,

		MaxPrimitiveCount: all,
		MaxVertexIndex:    all,
		MaxStreams:        MaxStreams,
		MaxStreamStride:   1 << 31,

		VertexShaderVersion:  d3d9.VertexShaderVersion(3, 0),
		MaxVertexShaderConst: 1 << 16,

		PixelShaderVersion:    d3d9.PixelShaderVersion(3, 0),
		PixelShader1xMaxValue: 8.0,

		DevCaps2:                   all,
		MaxNpatchTessellationLevel: 256,

		MasterAdapterOrdinal:    ordinal,
		AdapterOrdinalInGroup:   0,
		NumberOfAdaptersInGroup: 1,
		DeclTypes:               all,
		NumSimultaneousRTs:      MaxSimultaneousRTs,
		StretchRectFilterCaps:   all,
		VS20Caps: d3d9.VShaderCaps20{
			Caps:                    all,
			DynamicFlowControlDepth: d3d9.VS20MaxDynamicFlowControlDepth,
			NumTemps:                d3d9.VS20MaxNumTemps,
			StaticFlowControlDepth:  d3d9.VS20MaxStaticFlowControlDepth,
		},
		PS20Caps: d3d9.PShaderCaps20{
			Caps:                    all,
			DynamicFlowControlDepth: d3d9.PS20MaxDynamicFlowControlDepth,
			NumTemps:                d3d9.PS20MaxNumTemps,
			StaticFlowControlDepth:  d3d9.PS20MaxStaticFlowControlDepth,
			NumInstructionSlots:     d3d9.PS20MaxNumInstructionSlots,
		},
		VertexTextureFilterCaps: all,

		MaxVShaderInstructionsExecuted:    all,
		MaxPShaderInstructionsExecuted:    all,
		MaxVertexShader30InstructionSlots: MaxSM3Instructions,
		MaxPixelShader30InstructionSlots:  MaxSM3Instructions,
	}
}
