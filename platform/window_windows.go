//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32            = windows.NewLazySystemDLL("user32.dll")
	procGetClientRect = user32.NewProc("GetClientRect")
)

type rect struct {
	left, top, right, bottom int32
}

func clientSize(hwnd uintptr) (uint32, uint32, error) {
	var r rect
	ret, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0, fmt.Errorf("%w: GetClientRect: %v", ErrInvalidWindow, err)
	}
	return uint32(r.right - r.left), uint32(r.bottom - r.top), nil
}
