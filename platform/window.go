// Package platform resolves native window properties needed when a swap
// chain is created with an automatic back-buffer size.
package platform

import "errors"

// ErrUnsupported is returned when the running OS cannot query native windows.
var ErrUnsupported = errors.New("platform: native windows not supported on this OS")

// ErrInvalidWindow is returned for a zero handle or a failed native query.
var ErrInvalidWindow = errors.New("platform: invalid window handle")

// Window is anything a swap chain can present into.
type Window interface {
	// ClientSize returns the size of the drawable client area in pixels.
	ClientSize() (width, height uint32, err error)
}

// HWND is a native window handle.
type HWND uintptr

// ClientSize implements Window.
func (h HWND) ClientSize() (uint32, uint32, error) {
	if h == 0 {
		return 0, 0, ErrInvalidWindow
	}
	return clientSize(uintptr(h))
}

// SizedWindow is a Window with a fixed client size, used for headless
// presentation.
type SizedWindow struct {
	Width  uint32
	Height uint32
}

// ClientSize implements Window.
func (w SizedWindow) ClientSize() (uint32, uint32, error) {
	return w.Width, w.Height, nil
}
