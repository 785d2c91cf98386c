package d3d9

import (
	"errors"
	"fmt"
)

const facility = 0x876

const failure = 1<<31 | facility<<16

// Status is a legacy result code. The zero value is success; every other
// value implements error so it can flow through ordinary Go error returns.
type Status uint32

// Legacy result codes. OK is never returned as an error; successful calls
// return nil.
const (
	OK                  Status = 0
	NotFound            Status = failure | 2150
	MoreData            Status = failure | 2151
	DeviceLost          Status = failure | 2152
	NotAvailable        Status = failure | 2154
	InvalidDevice       Status = failure | 2155
	InvalidCall         Status = failure | 2156
	DriverInternalError Status = failure | 2087
	OutOfVideoMemory    Status = failure | 380
	WasStillDrawing     Status = failure | 540
)

var statusNames = map[Status]string{
	OK:                  "D3D_OK",
	NotFound:            "D3DERR_NOTFOUND",
	MoreData:            "D3DERR_MOREDATA",
	DeviceLost:          "D3DERR_DEVICELOST",
	NotAvailable:        "D3DERR_NOTAVAILABLE",
	InvalidDevice:       "D3DERR_INVALIDDEVICE",
	InvalidCall:         "D3DERR_INVALIDCALL",
	DriverInternalError: "D3DERR_DRIVERINTERNALERROR",
	OutOfVideoMemory:    "D3DERR_OUTOFVIDEOMEMORY",
	WasStillDrawing:     "D3DERR_WASSTILLDRAWING",
}

func (s Status) Error() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("HRESULT(0x%08X)", uint32(s))
}

// Retryable reports whether the operation may succeed if issued again later.
func (s Status) Retryable() bool { return s == WasStillDrawing }

// StatusOf reduces err to the legacy status it carries. A nil error is OK
// and errors without a Status in their chain are DriverInternalError.
func StatusOf(err error) Status {
	if err == nil {
		return OK
	}
	var s Status
	if errors.As(err, &s) {
		return s
	}
	return DriverInternalError
}
