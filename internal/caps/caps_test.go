package caps

import (
	"testing"

	"github.com/gogpu/nine/d3d9"
)

func TestCapabilities(t *testing.T) {
	c := Capabilities(2)

	if c.DeviceType != d3d9.DevTypeHAL {
		t.Errorf("DeviceType = %d, want HAL", c.DeviceType)
	}
	if c.AdapterOrdinal != 2 || c.MasterAdapterOrdinal != 2 {
		t.Errorf("ordinals = %d/%d, want 2/2", c.AdapterOrdinal, c.MasterAdapterOrdinal)
	}
	if c.NumberOfAdaptersInGroup != 1 {
		t.Errorf("NumberOfAdaptersInGroup = %d, want 1", c.NumberOfAdaptersInGroup)
	}
	if c.TextureCaps&d3d9.PTextureCapsNoProjectedBumpEnv != 0 {
		t.Error("TextureCaps advertises NOPROJECTEDBUMPENV")
	}
	if c.Caps2&d3d9.Caps2CanShareResource != 0 {
		t.Error("Caps2 advertises resource sharing")
	}
	if c.Caps2&d3d9.Caps2DynamicTextures == 0 {
		t.Error("Caps2 lacks DYNAMICTEXTURES")
	}
	if c.MaxTextureWidth != 16384 || c.MaxTextureHeight != 16384 {
		t.Errorf("max texture = %dx%d", c.MaxTextureWidth, c.MaxTextureHeight)
	}
	if c.NumSimultaneousRTs != 8 {
		t.Errorf("NumSimultaneousRTs = %d, want 8", c.NumSimultaneousRTs)
	}
	if c.MaxAnisotropy != 16 {
		t.Errorf("MaxAnisotropy = %d, want 16", c.MaxAnisotropy)
	}
	if c.VertexShaderVersion != 0xFFFE0300 || c.PixelShaderVersion != 0xFFFF0300 {
		t.Errorf("shader versions = %#x/%#x", c.VertexShaderVersion, c.PixelShaderVersion)
	}
	if c.RasterCaps != ^uint32(0) {
		t.Errorf("RasterCaps = %#x, want all bits", c.RasterCaps)
	}
}

func TestCapabilitiesPure(t *testing.T) {
	if Capabilities(0) != Capabilities(0) {
		t.Error("Capabilities is not deterministic")
	}
}
