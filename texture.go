package nine

import (
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/state"
)

// BaseTexture is implemented by Texture and CubeTexture. It is what can be
// bound to a sampler.
type BaseTexture interface {
	Resource
	LevelCount() uint32
	SetLOD(lod uint32) uint32
	LOD() uint32
	SetAutoGenFilterType(f d3d9.TextureFilterType) error
	AutoGenFilterType() d3d9.TextureFilterType
	GenerateMipSubLevels()
}

// texture holds what Texture and CubeTexture share. Level surfaces are
// created on first request and live as long as the texture.
type texture struct {
	img      *image
	levels   uint32
	lod      uint32
	filter   d3d9.TextureFilterType
	surfaces []*Surface
}

func newTexture(img *image, levels uint32) texture {
	return texture{
		img:      img,
		levels:   levels,
		filter:   d3d9.TexFLinear,
		surfaces: make([]*Surface, img.desc.Subresources()),
	}
}

// LevelCount returns the number of mip levels visible to the application.
func (t *texture) LevelCount() uint32 { return t.levels }

// SetLOD sets the most detailed level used by managed textures and returns
// the previous one. Textures outside the Managed pool ignore it and report
// 0.
func (t *texture) SetLOD(lod uint32) uint32 {
	if t.img.pool != d3d9.PoolManaged {
		return 0
	}
	old := t.lod
	t.lod = min(lod, t.levels-1)
	return old
}

// LOD returns the most detailed level.
func (t *texture) LOD() uint32 { return t.lod }

// SetAutoGenFilterType sets the filter used to generate mip levels. Only
// textures created with UsageAutoGenMipMap accept it.
func (t *texture) SetAutoGenFilterType(f d3d9.TextureFilterType) error {
	if t.img.usage&d3d9.UsageAutoGenMipMap == 0 {
		return invalidCall("SetAutoGenFilterType", "texture has no generated mip levels")
	}
	if f == d3d9.TexFNone {
		return invalidCall("SetAutoGenFilterType", "filter none")
	}
	t.filter = f
	return nil
}

// AutoGenFilterType returns the mip generation filter.
func (t *texture) AutoGenFilterType() d3d9.TextureFilterType { return t.filter }

// GenerateMipSubLevels is accepted; there is no pipeline to generate mip
// levels with.
func (t *texture) GenerateMipSubLevels() {
	Logger().Debug("nine: mip generation is not implemented")
}

func (t *texture) checkLevel(op string, level uint32) error {
	if level >= t.levels {
		return invalidCall(op, "level out of range", "level", level, "levels", t.levels)
	}
	return nil
}

// surface returns the surface of subresource sub, creating it on first
// use. The returned surface carries a reference for the caller.
func (t *texture) surface(sub uint32, container state.Shared) *Surface {
	s := t.surfaces[sub]
	if s == nil {
		s = newSurface(surfaceLevel, t.img, sub, container)
		t.surfaces[sub] = s
	}
	s.AddRef()
	return s
}

func (t *texture) free() {
	t.surfaces = nil
	t.img.release()
}

// Texture is a 2-D mipmapped texture.
type Texture struct {
	resource
	texture
}

// LevelDesc describes mip level level.
func (t *Texture) LevelDesc(level uint32) (d3d9.SurfaceDesc, error) {
	if err := t.checkLevel("Texture.LevelDesc", level); err != nil {
		return d3d9.SurfaceDesc{}, err
	}
	return t.img.levelDesc(level), nil
}

// SurfaceLevel returns the surface of mip level level.
func (t *Texture) SurfaceLevel(level uint32) (*Surface, error) {
	if err := t.checkLevel("Texture.SurfaceLevel", level); err != nil {
		return nil, err
	}
	return t.surface(level, t), nil
}

// LockRect maps mip level level, or the rectangle r of it.
func (t *Texture) LockRect(level uint32, r *d3d9.Rect, flags d3d9.LockFlags) (d3d9.LockedRect, error) {
	if err := t.checkLevel("Texture.LockRect", level); err != nil {
		return d3d9.LockedRect{}, err
	}
	return t.img.lock("Texture.LockRect", level, r, flags)
}

// UnlockRect unmaps mip level level. It always succeeds.
func (t *Texture) UnlockRect(level uint32) error {
	t.img.unlock(level)
	return nil
}

// AddDirtyRect is accepted and ignored: uploads happen on unlock.
func (t *Texture) AddDirtyRect(r *d3d9.Rect) error {
	Logger().Debug("nine: dirty rectangle tracking is not implemented")
	return nil
}

// CubeTexture is a cube map with six faces of equal size.
type CubeTexture struct {
	resource
	texture
}

func (t *CubeTexture) subresource(op string, face d3d9.CubeMapFace, level uint32) (uint32, error) {
	if face >= d3d9.CubeFaceCount {
		return 0, invalidCall(op, "invalid face", "face", face)
	}
	if err := t.checkLevel(op, level); err != nil {
		return 0, err
	}
	return level + uint32(face)*t.img.desc.MipLevels, nil
}

// LevelDesc describes mip level level of every face.
func (t *CubeTexture) LevelDesc(level uint32) (d3d9.SurfaceDesc, error) {
	if err := t.checkLevel("CubeTexture.LevelDesc", level); err != nil {
		return d3d9.SurfaceDesc{}, err
	}
	return t.img.levelDesc(level), nil
}

// CubeMapSurface returns the surface of one face at mip level level.
func (t *CubeTexture) CubeMapSurface(face d3d9.CubeMapFace, level uint32) (*Surface, error) {
	sub, err := t.subresource("CubeTexture.CubeMapSurface", face, level)
	if err != nil {
		return nil, err
	}
	return t.surface(sub, t), nil
}

// LockRect maps one face at mip level level, or the rectangle r of it.
func (t *CubeTexture) LockRect(face d3d9.CubeMapFace, level uint32, r *d3d9.Rect, flags d3d9.LockFlags) (d3d9.LockedRect, error) {
	sub, err := t.subresource("CubeTexture.LockRect", face, level)
	if err != nil {
		return d3d9.LockedRect{}, err
	}
	return t.img.lock("CubeTexture.LockRect", sub, r, flags)
}

// UnlockRect unmaps one face at mip level level. It always succeeds.
func (t *CubeTexture) UnlockRect(face d3d9.CubeMapFace, level uint32) error {
	if sub, err := t.subresource("CubeTexture.UnlockRect", face, level); err == nil {
		t.img.unlock(sub)
	}
	return nil
}

// AddDirtyRect is accepted and ignored.
func (t *CubeTexture) AddDirtyRect(face d3d9.CubeMapFace, r *d3d9.Rect) error {
	Logger().Debug("nine: dirty rectangle tracking is not implemented", "face", face)
	return nil
}
