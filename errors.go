package nine

import (
	"errors"
	"fmt"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/format"
	"github.com/gogpu/nine/internal/usage"
	"github.com/gogpu/nine/platform"
)

// translate reduces err, returned by a helper or a modern driver call made
// for op, to a legacy status. Driver failures are logged with their code
// before they lose it.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var s d3d9.Status
	switch {
	case errors.As(err, &s):
		return s
	case errors.Is(err, d3d11.ErrWasStillDrawing):
		return d3d9.WasStillDrawing
	case errors.Is(err, format.ErrUnknownFormat),
		errors.Is(err, format.ErrNotDisplayFormat),
		errors.Is(err, usage.ErrCPUReadback),
		errors.Is(err, usage.ErrInvalidPool),
		errors.Is(err, platform.ErrInvalidWindow):
		Logger().Debug("nine: invalid call", "op", op, "err", err)
		return d3d9.InvalidCall
	case errors.Is(err, platform.ErrUnsupported):
		Logger().Warn("nine: not available", "op", op, "err", err)
		return d3d9.NotAvailable
	}

	code := d3d11.CodeOf(err)
	Logger().Error("nine: driver call failed", "op", op, "code", fmt.Sprintf("%#x", code), "err", err)
	switch code {
	case d3d11.E_OUTOFMEMORY:
		return d3d9.OutOfVideoMemory
	case d3d11.DXGI_ERROR_UNSUPPORTED:
		return d3d9.NotAvailable
	}
	return d3d9.DriverInternalError
}

// invalidCall logs a rejected argument of op and returns InvalidCall.
func invalidCall(op, reason string, args ...any) error {
	Logger().Debug("nine: invalid call", append([]any{"op", op, "reason", reason}, args...)...)
	return d3d9.InvalidCall
}

// notAvailable logs a legacy feature this implementation does not provide.
func notAvailable(op string, args ...any) error {
	Logger().Warn("nine: not available", append([]any{"op", op}, args...)...)
	return d3d9.NotAvailable
}
