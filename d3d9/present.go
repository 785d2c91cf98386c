package d3d9

import "github.com/gogpu/nine/platform"

// SwapEffect selects how back buffers are presented.
type SwapEffect uint32

// Swap effects.
const (
	SwapEffectDiscard SwapEffect = 1
	SwapEffectFlip    SwapEffect = 2
	SwapEffectCopy    SwapEffect = 3
	SwapEffectOverlay SwapEffect = 4
	SwapEffectFlipEx  SwapEffect = 5
)

// Presentation intervals.
const (
	PresentIntervalDefault   uint32 = 0
	PresentIntervalOne       uint32 = 1
	PresentIntervalTwo       uint32 = 2
	PresentIntervalThree     uint32 = 4
	PresentIntervalFour      uint32 = 8
	PresentIntervalImmediate uint32 = 0x80000000
)

// PresentFlags is the flags argument of Present.
type PresentFlags uint32

// Present flags.
const (
	PresentDoNotWait     PresentFlags = 1
	PresentLinearContent PresentFlags = 2
)

// Present parameter flags.
const (
	PresentFlagLockableBackBuffer  uint32 = 0x1
	PresentFlagDiscardDepthStencil uint32 = 0x2
	PresentFlagDeviceClip          uint32 = 0x4
	PresentFlagVideo               uint32 = 0x10
)

// PresentParameters configure a swap chain.
type PresentParameters struct {
	BackBufferWidth           uint32
	BackBufferHeight          uint32
	BackBufferFormat          Format
	BackBufferCount           uint32
	MultiSampleType           MultisampleType
	MultiSampleQuality        uint32
	SwapEffect                SwapEffect
	DeviceWindow              platform.Window
	Windowed                  bool
	EnableAutoDepthStencil    bool
	AutoDepthStencilFormat    Format
	Flags                     uint32
	FullScreenRefreshRateInHz uint32
	PresentationInterval      uint32
}

// DisplayMode describes a display resolution.
type DisplayMode struct {
	Width       uint32
	Height      uint32
	RefreshRate uint32
	Format      Format
}

// RasterStatus reports the display scan position.
type RasterStatus struct {
	InVBlank bool
	ScanLine uint32
}

// DeviceType selects the kind of device to create.
type DeviceType uint32

// Device types.
const (
	DevTypeHAL     DeviceType = 1
	DevTypeRef     DeviceType = 2
	DevTypeSW      DeviceType = 3
	DevTypeNullRef DeviceType = 4
)

// Device creation flags.
const (
	CreateFPUPreserve              uint32 = 0x2
	CreateMultithreaded            uint32 = 0x4
	CreatePureDevice               uint32 = 0x10
	CreateSoftwareVertexProcessing uint32 = 0x20
	CreateHardwareVertexProcessing uint32 = 0x40
	CreateMixedVertexProcessing    uint32 = 0x80
)

// CreationParameters records how a device was created.
type CreationParameters struct {
	AdapterOrdinal uint32
	DeviceType     DeviceType
	FocusWindow    platform.Window
	BehaviorFlags  uint32
}

// AdapterIdentifier describes an adapter and its driver.
type AdapterIdentifier struct {
	Driver           string
	Description      string
	DeviceName       string
	DriverVersion    uint64
	VendorID         uint32
	DeviceID         uint32
	SubSysID         uint32
	Revision         uint32
	DeviceIdentifier GUID
	WHQLLevel        uint32
}
