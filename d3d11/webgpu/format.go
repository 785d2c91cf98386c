package webgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/nine/d3d11"
)

var textureFormats = map[d3d11.Format]gputypes.TextureFormat{
	d3d11.FormatR8G8B8A8Unorm:     gputypes.TextureFormatRGBA8Unorm,
	d3d11.FormatR8G8B8A8UnormSRGB: gputypes.TextureFormatRGBA8UnormSrgb,
	d3d11.FormatB8G8R8A8Unorm:     gputypes.TextureFormatBGRA8Unorm,
	d3d11.FormatB8G8R8X8Unorm:     gputypes.TextureFormatBGRA8Unorm,
	d3d11.FormatB8G8R8A8UnormSRGB: gputypes.TextureFormatBGRA8UnormSrgb,
	d3d11.FormatR8Unorm:           gputypes.TextureFormatR8Unorm,
	d3d11.FormatR32Float:          gputypes.TextureFormatR32Float,
	d3d11.FormatR32G32Float:       gputypes.TextureFormatRG32Float,
	d3d11.FormatR32G32B32A32Float: gputypes.TextureFormatRGBA32Float,
	d3d11.FormatD24UnormS8Uint:    gputypes.TextureFormatDepth24PlusStencil8,
}

// TextureFormat returns the HAL format backing f, or
// gputypes.TextureFormatUndefined when f has no GPU equivalent.
func TextureFormat(f d3d11.Format) gputypes.TextureFormat {
	if tf, ok := textureFormats[f]; ok {
		return tf
	}
	return gputypes.TextureFormatUndefined
}

func textureUsage(b d3d11.BindFlag) gputypes.TextureUsage {
	u := gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst
	if b&d3d11.BindShaderResource != 0 {
		u |= gputypes.TextureUsageTextureBinding
	}
	if b&(d3d11.BindRenderTarget|d3d11.BindDepthStencil) != 0 {
		u |= gputypes.TextureUsageRenderAttachment
	}
	return u
}

func bufferUsage(b d3d11.BindFlag) gputypes.BufferUsage {
	u := gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst
	if b&d3d11.BindVertexBuffer != 0 {
		u |= gputypes.BufferUsageVertex
	}
	if b&d3d11.BindIndexBuffer != 0 {
		u |= gputypes.BufferUsageIndex
	}
	if b&d3d11.BindConstantBuffer != 0 {
		u |= gputypes.BufferUsageUniform
	}
	return u
}
