package d3d11

import "github.com/gogpu/nine/platform"

// Factory enumerates adapters and creates devices and swap chains.
type Factory interface {
	Adapters() ([]Adapter, error)
	CreateDevice(a Adapter) (Device, error)
	CreateSwapChain(dev Device, desc *SwapChainDesc) (SwapChain, error)
}

// Adapter is a physical GPU.
type Adapter interface {
	Desc() AdapterDesc
	// DisplayModes lists the modes of the adapter's primary output for a
	// format. An adapter without outputs returns ErrNotFound.
	DisplayModes(f Format) ([]ModeDesc, error)
}

// Resource is anything Map can be called on.
type Resource interface {
	Release()
}

// Texture2D is a 2-D image resource.
type Texture2D interface {
	Resource
	Desc() Texture2DDesc
}

// Buffer is a linear resource.
type Buffer interface {
	Resource
	Desc() BufferDesc
}

// RenderTargetView binds a texture as a color output.
type RenderTargetView interface {
	Texture() Texture2D
	Release()
}

// DepthStencilView binds a texture as the depth/stencil output.
type DepthStencilView interface {
	Texture() Texture2D
	Release()
}

// Device creates resources.
type Device interface {
	CreateTexture2D(desc *Texture2DDesc) (Texture2D, error)
	CreateBuffer(desc *BufferDesc) (Buffer, error)
	CreateRenderTargetView(t Texture2D) (RenderTargetView, error)
	CreateDepthStencilView(t Texture2D) (DepthStencilView, error)
	CheckFormatSupport(f Format) (FormatSupport, error)
	CheckMultisampleQualityLevels(f Format, count uint32) (uint32, error)
	FeatureLevel() FeatureLevel
	ImmediateContext() DeviceContext
	Release()
}

// DeviceContext issues commands. The immediate context executes them in
// submission order.
type DeviceContext interface {
	Map(r Resource, subresource uint32, mt MapType, flags MapFlag) (MappedSubresource, error)
	Unmap(r Resource, subresource uint32)
	OMSetRenderTargets(rtvs []RenderTargetView, dsv DepthStencilView)
	RSSetViewports(vps []Viewport)
}

// SwapChainDesc configures a swap chain.
type SwapChainDesc struct {
	BufferDesc   ModeDesc
	SampleDesc   SampleDesc
	BufferUsage  uint32
	BufferCount  uint32
	OutputWindow platform.Window
	Windowed     bool
	SwapEffect   SwapEffect
	Flags        uint32
}

// SwapChain presents back buffers to a window.
type SwapChain interface {
	Present(syncInterval uint32, flags PresentFlag) error
	Buffer(i uint32) (Texture2D, error)
	Desc() SwapChainDesc
	Release()
}
