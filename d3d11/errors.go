package d3d11

import (
	"errors"
	"fmt"
)

// ErrorCode is a failure HRESULT returned by a modern driver.
type ErrorCode struct {
	Name string
	Code uint32
}

func (e ErrorCode) Error() string {
	return fmt.Sprintf("%s: %#x", e.Name, e.Code)
}

// Driver result codes.
const (
	E_INVALIDARG                              = 0x80070057
	E_OUTOFMEMORY                             = 0x8007000E
	E_NOTIMPL                                 = 0x80004001
	DXGI_ERROR_INVALID_CALL                   = 0x887A0001
	DXGI_ERROR_NOT_FOUND                      = 0x887A0002
	DXGI_ERROR_DEVICE_REMOVED                 = 0x887A0005
	DXGI_ERROR_WAS_STILL_DRAWING              = 0x887A000A
	DXGI_ERROR_UNSUPPORTED                    = 0x887A0004
	D3D11_ERROR_TOO_MANY_UNIQUE_STATE_OBJECTS = 0x887C0001
)

// ErrWasStillDrawing is returned by Map and Present called with a
// do-not-wait flag while the GPU still uses the resource.
var ErrWasStillDrawing = ErrorCode{Name: "DXGI_ERROR_WAS_STILL_DRAWING", Code: DXGI_ERROR_WAS_STILL_DRAWING}

// ErrInvalidArg is returned for descriptors or map requests the driver
// rejects.
var ErrInvalidArg = ErrorCode{Name: "E_INVALIDARG", Code: E_INVALIDARG}

// ErrOutOfMemory is returned when a resource cannot be allocated.
var ErrOutOfMemory = ErrorCode{Name: "E_OUTOFMEMORY", Code: E_OUTOFMEMORY}

// ErrUnsupported is returned for operations the driver does not implement.
var ErrUnsupported = ErrorCode{Name: "DXGI_ERROR_UNSUPPORTED", Code: DXGI_ERROR_UNSUPPORTED}

// ErrNotFound is returned when an enumeration index is out of range.
var ErrNotFound = ErrorCode{Name: "DXGI_ERROR_NOT_FOUND", Code: DXGI_ERROR_NOT_FOUND}

// CodeOf returns the driver code carried by err, or 0 if there is none.
func CodeOf(err error) uint32 {
	var ec ErrorCode
	if errors.As(err, &ec) {
		return ec.Code
	}
	return 0
}
