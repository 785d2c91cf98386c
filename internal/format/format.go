// Package format maps legacy pixel formats to modern formats and back.
//
// Several legacy byte orders collapse onto one modern layout (the unused
// alpha channel of X formats is ignored), so the forward table is
// many-to-one and FromModern returns the closest legacy equivalent rather
// than a true inverse.
package format

import (
	"errors"
	"fmt"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
)

var (
	// ErrUnknownFormat is returned for legacy enumerants the table does not
	// know.
	ErrUnknownFormat = errors.New("format: unknown legacy format")

	// ErrUnknownModernFormat is returned for modern formats with no legacy
	// equivalent.
	ErrUnknownModernFormat = errors.New("format: no legacy equivalent")

	// ErrNotDisplayFormat is returned by ToModernDisplay outside the display
	// format range.
	ErrNotDisplayFormat = errors.New("format: not a display format")
)

var toModern = map[d3d9.Format]d3d11.Format{
	d3d9.FmtA8: d3d11.FormatA8Unorm,
	d3d9.FmtL8: d3d11.FormatR8Unorm,

	d3d9.FmtR5G6B5:   d3d11.FormatB5G6R5Unorm,
	d3d9.FmtX4R4G4B4: d3d11.FormatB4G4R4A4Unorm,
	d3d9.FmtA4R4G4B4: d3d11.FormatB4G4R4A4Unorm,
	d3d9.FmtX1R5G5B5: d3d11.FormatB5G5R5A1Unorm,
	d3d9.FmtA1R5G5B5: d3d11.FormatB5G5R5A1Unorm,
	d3d9.FmtA8L8:     d3d11.FormatR8G8Unorm,
	d3d9.FmtL16:      d3d11.FormatR16Unorm,

	d3d9.FmtX8B8G8R8: d3d11.FormatR8G8B8A8Unorm,
	d3d9.FmtA8B8G8R8: d3d11.FormatR8G8B8A8Unorm,
	d3d9.FmtX8R8G8B8: d3d11.FormatB8G8R8X8Unorm,
	d3d9.FmtA8R8G8B8: d3d11.FormatB8G8R8A8Unorm,
	d3d9.FmtG16R16:   d3d11.FormatR16G16Unorm,

	d3d9.FmtA2R10G10B10: d3d11.FormatR10G10B10A2Unorm,
	d3d9.FmtA2B10G10R10: d3d11.FormatR10G10B10A2Unorm,

	d3d9.FmtD16Lockable:  d3d11.FormatD16Unorm,
	d3d9.FmtD16:          d3d11.FormatD16Unorm,
	d3d9.FmtD24S8:        d3d11.FormatD24UnormS8Uint,
	d3d9.FmtD24X8:        d3d11.FormatD24UnormS8Uint,
	d3d9.FmtD32:          d3d11.FormatD32Float,
	d3d9.FmtD32FLockable: d3d11.FormatD32Float,

	d3d9.FmtDXT1: d3d11.FormatBC1Unorm,
	d3d9.FmtDXT2: d3d11.FormatBC2Unorm,
	d3d9.FmtDXT3: d3d11.FormatBC2Unorm,
	d3d9.FmtDXT4: d3d11.FormatBC3Unorm,
	d3d9.FmtDXT5: d3d11.FormatBC3Unorm,

	d3d9.FmtR8G8B8G8: d3d11.FormatG8R8G8B8Unorm,
	d3d9.FmtG8R8G8B8: d3d11.FormatR8G8B8G8Unorm,

	d3d9.FmtV8U8:     d3d11.FormatR8G8Snorm,
	d3d9.FmtQ8W8V8U8: d3d11.FormatR8G8B8A8Snorm,
	d3d9.FmtV16U16:   d3d11.FormatR16G16Snorm,

	d3d9.FmtR16F:          d3d11.FormatR16Float,
	d3d9.FmtG16R16F:       d3d11.FormatR16G16Float,
	d3d9.FmtA16B16G16R16:  d3d11.FormatR16G16B16A16Unorm,
	d3d9.FmtA16B16G16R16F: d3d11.FormatR16G16B16A16Float,
	d3d9.FmtR32F:          d3d11.FormatR32Float,
	d3d9.FmtG32R32F:       d3d11.FormatR32G32Float,
	d3d9.FmtA32B32G32R32F: d3d11.FormatR32G32B32A32Float,

	d3d9.FmtIndex16:    d3d11.FormatR16Uint,
	d3d9.FmtIndex32:    d3d11.FormatR32Uint,
	d3d9.FmtVertexData: d3d11.FormatUnknown,

	d3d9.FmtUnknown: d3d11.FormatUnknown,

	// No modern equivalent.
	d3d9.FmtP8:           d3d11.FormatUnknown,
	d3d9.FmtA8P8:         d3d11.FormatUnknown,
	d3d9.FmtA4L4:         d3d11.FormatUnknown,
	d3d9.FmtR3G3B2:       d3d11.FormatUnknown,
	d3d9.FmtA8R3G3B2:     d3d11.FormatUnknown,
	d3d9.FmtR8G8B8:       d3d11.FormatUnknown,
	d3d9.FmtD15S1:        d3d11.FormatUnknown,
	d3d9.FmtD24FS8:       d3d11.FormatUnknown,
	d3d9.FmtD24X4S4:      d3d11.FormatUnknown,
	d3d9.FmtS8Lockable:   d3d11.FormatUnknown,
	d3d9.FmtCxV8U8:       d3d11.FormatUnknown,
	d3d9.FmtL6V5U5:       d3d11.FormatUnknown,
	d3d9.FmtX8L8V8U8:     d3d11.FormatUnknown,
	d3d9.FmtA2W10V10U10:  d3d11.FormatUnknown,
	d3d9.FmtQ16W16V16U16: d3d11.FormatUnknown,
	d3d9.FmtUYVY:         d3d11.FormatUnknown,
	d3d9.FmtYUY2:         d3d11.FormatUnknown,
}

var toLegacy = map[d3d11.Format]d3d9.Format{
	d3d11.FormatUnknown:           d3d9.FmtUnknown,
	d3d11.FormatA8Unorm:           d3d9.FmtA8,
	d3d11.FormatR8Unorm:           d3d9.FmtL8,
	d3d11.FormatB5G6R5Unorm:       d3d9.FmtR5G6B5,
	d3d11.FormatB4G4R4A4Unorm:     d3d9.FmtA4R4G4B4,
	d3d11.FormatB5G5R5A1Unorm:     d3d9.FmtA1R5G5B5,
	d3d11.FormatR8G8Unorm:         d3d9.FmtA8L8,
	d3d11.FormatR16Unorm:          d3d9.FmtL16,
	d3d11.FormatR8G8B8A8Unorm:     d3d9.FmtA8B8G8R8,
	d3d11.FormatB8G8R8X8Unorm:     d3d9.FmtX8R8G8B8,
	d3d11.FormatB8G8R8A8Unorm:     d3d9.FmtA8R8G8B8,
	d3d11.FormatR16G16Unorm:       d3d9.FmtG16R16,
	d3d11.FormatR10G10B10A2Unorm:  d3d9.FmtA2B10G10R10,
	d3d11.FormatD16Unorm:          d3d9.FmtD16,
	d3d11.FormatD24UnormS8Uint:    d3d9.FmtD24S8,
	d3d11.FormatD32Float:          d3d9.FmtD32FLockable,
	d3d11.FormatBC1Unorm:          d3d9.FmtDXT1,
	d3d11.FormatBC2Unorm:          d3d9.FmtDXT3,
	d3d11.FormatBC3Unorm:          d3d9.FmtDXT5,
	d3d11.FormatG8R8G8B8Unorm:     d3d9.FmtR8G8B8G8,
	d3d11.FormatR8G8B8G8Unorm:     d3d9.FmtG8R8G8B8,
	d3d11.FormatR8G8Snorm:         d3d9.FmtV8U8,
	d3d11.FormatR8G8B8A8Snorm:     d3d9.FmtQ8W8V8U8,
	d3d11.FormatR16G16Snorm:       d3d9.FmtV16U16,
	d3d11.FormatR16Float:          d3d9.FmtR16F,
	d3d11.FormatR16G16Float:       d3d9.FmtG16R16F,
	d3d11.FormatR16G16B16A16Unorm: d3d9.FmtA16B16G16R16,
	d3d11.FormatR16G16B16A16Float: d3d9.FmtA16B16G16R16F,
	d3d11.FormatR32Float:          d3d9.FmtR32F,
	d3d11.FormatR32G32Float:       d3d9.FmtG32R32F,
	d3d11.FormatR32G32B32A32Float: d3d9.FmtA32B32G32R32F,
	d3d11.FormatR16Uint:           d3d9.FmtIndex16,
	d3d11.FormatR32Uint:           d3d9.FmtIndex32,
}

// ToModern returns the modern format for f. Known legacy formats without a
// modern equivalent map to d3d11.FormatUnknown.
func ToModern(f d3d9.Format) (d3d11.Format, error) {
	m, ok := toModern[f]
	if !ok {
		return d3d11.FormatUnknown, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return m, nil
}

// ToModernDisplay returns the modern format used for a display mode or back
// buffer of format f. Every adapter supports the two results.
func ToModernDisplay(f d3d9.Format) (d3d11.Format, error) {
	switch {
	case f == d3d9.FmtUnknown, f >= d3d9.FmtR8G8B8 && f <= d3d9.FmtA1R5G5B5:
		return d3d11.FormatB8G8R8A8Unorm, nil
	case f == d3d9.FmtA2R10G10B10:
		return d3d11.FormatR10G10B10A2Unorm, nil
	}
	return d3d11.FormatUnknown, fmt.Errorf("%w: %v", ErrNotDisplayFormat, f)
}

// FromModern returns the closest legacy format for f.
func FromModern(f d3d11.Format) (d3d9.Format, error) {
	l, ok := toLegacy[f]
	if !ok {
		return d3d9.FmtUnknown, fmt.Errorf("%w: %d", ErrUnknownModernFormat, f)
	}
	return l, nil
}

// IsDisplay reports whether f can describe a display mode.
func IsDisplay(f d3d9.Format) bool {
	return f >= d3d9.FmtA8R8G8B8 && f <= d3d9.FmtA1R5G5B5 || f == d3d9.FmtA2R10G10B10
}

// IsDepthStencil reports whether f is a depth/stencil format.
func IsDepthStencil(f d3d9.Format) bool {
	return f >= d3d9.FmtD16Lockable && f <= d3d9.FmtS8Lockable && f != d3d9.FmtL16
}

// IsCompressed reports whether f is a block-compressed format.
func IsCompressed(f d3d9.Format) bool {
	switch f {
	case d3d9.FmtDXT1, d3d9.FmtDXT2, d3d9.FmtDXT3, d3d9.FmtDXT4, d3d9.FmtDXT5:
		return true
	}
	return false
}

// IsLockable reports whether a depth/stencil format may be locked.
func IsLockable(f d3d9.Format) bool {
	switch f {
	case d3d9.FmtD16Lockable, d3d9.FmtD32FLockable, d3d9.FmtD32Lockable, d3d9.FmtS8Lockable:
		return true
	}
	return !IsDepthStencil(f)
}
