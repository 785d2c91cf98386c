package nine

import (
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/state"
)

type surfaceKind uint8

const (
	surfacePlain surfaceKind = iota
	surfaceRenderTarget
	surfaceDepthStencil
	surfaceLevel
)

func (k surfaceKind) String() string {
	switch k {
	case surfacePlain:
		return "plain"
	case surfaceRenderTarget:
		return "render-target"
	case surfaceDepthStencil:
		return "depth-stencil"
	case surfaceLevel:
		return "level"
	}
	return "invalid"
}

// Surface is a 2-D image: an offscreen plain surface, a render target, a
// depth/stencil buffer, a swap chain back buffer or one level of a texture.
type Surface struct {
	resource
	kind surfaceKind
	img  *image
	sub  uint32

	// container is the texture or swap chain holding the surface, nil for
	// surfaces owned directly by the device.
	container any

	rtv d3d11.RenderTargetView
	dsv d3d11.DepthStencilView
}

// newSurface wraps subresource sub of img. Standalone surfaces own img;
// surfaces with a container forward their reference count to it.
func newSurface(kind surfaceKind, img *image, sub uint32, container state.Shared) *Surface {
	s := &Surface{
		resource: newResource(img.dev, d3d9.RTypeSurface),
		kind:     kind,
		img:      img,
		sub:      sub,
	}
	if container != nil {
		s.owner = container
		s.container = container
	}
	s.destroy = s.free
	return s
}

func (s *Surface) free() {
	if s.rtv != nil {
		s.rtv.Release()
		s.rtv = nil
	}
	if s.dsv != nil {
		s.dsv.Release()
		s.dsv = nil
	}
	if s.owner == nil {
		s.img.release()
	}
}

// Desc describes the surface.
func (s *Surface) Desc() d3d9.SurfaceDesc { return s.img.levelDesc(s.sub) }

// Container returns the *Texture, *CubeTexture or *SwapChain holding the
// surface, or the *Device for standalone surfaces.
func (s *Surface) Container() (any, error) {
	if s.container != nil {
		return s.container, nil
	}
	return s.Device()
}

// LockRect maps the surface, or the rectangle r of it, for CPU access.
func (s *Surface) LockRect(r *d3d9.Rect, flags d3d9.LockFlags) (d3d9.LockedRect, error) {
	return s.img.lock("Surface.LockRect", s.sub, r, flags)
}

// UnlockRect unmaps the surface. It always succeeds.
func (s *Surface) UnlockRect() error {
	s.img.unlock(s.sub)
	return nil
}

// DC is not available: there is no GDI interop.
func (s *Surface) DC() (uintptr, error) { return 0, notAvailable("Surface.GetDC") }

// ReleaseDC is not available.
func (s *Surface) ReleaseDC(uintptr) error { return notAvailable("Surface.ReleaseDC") }

// size returns the extent of the surface.
func (s *Surface) size() (uint32, uint32) { return s.img.levelSize(s.sub) }
