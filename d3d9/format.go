package d3d9

import "fmt"

// Format is a legacy pixel, depth or buffer format.
type Format uint32

// Legacy formats.
const (
	FmtUnknown Format = 0

	FmtR8G8B8       Format = 20
	FmtA8R8G8B8     Format = 21
	FmtX8R8G8B8     Format = 22
	FmtR5G6B5       Format = 23
	FmtX1R5G5B5     Format = 24
	FmtA1R5G5B5     Format = 25
	FmtA4R4G4B4     Format = 26
	FmtR3G3B2       Format = 27
	FmtA8           Format = 28
	FmtA8R3G3B2     Format = 29
	FmtX4R4G4B4     Format = 30
	FmtA2B10G10R10  Format = 31
	FmtA8B8G8R8     Format = 32
	FmtX8B8G8R8     Format = 33
	FmtG16R16       Format = 34
	FmtA2R10G10B10  Format = 35
	FmtA16B16G16R16 Format = 36

	FmtA8P8 Format = 40
	FmtP8   Format = 41

	FmtL8   Format = 50
	FmtA8L8 Format = 51
	FmtA4L4 Format = 52

	FmtV8U8        Format = 60
	FmtL6V5U5      Format = 61
	FmtX8L8V8U8    Format = 62
	FmtQ8W8V8U8    Format = 63
	FmtV16U16      Format = 64
	FmtA2W10V10U10 Format = 67

	FmtD16Lockable  Format = 70
	FmtD32          Format = 71
	FmtD15S1        Format = 73
	FmtD24S8        Format = 75
	FmtD24X8        Format = 77
	FmtD24X4S4      Format = 79
	FmtD16          Format = 80
	FmtL16          Format = 81
	FmtD32FLockable Format = 82
	FmtD24FS8       Format = 83
	FmtD32Lockable  Format = 84
	FmtS8Lockable   Format = 85

	FmtVertexData Format = 100
	FmtIndex16    Format = 101
	FmtIndex32    Format = 102

	FmtQ16W16V16U16  Format = 110
	FmtR16F          Format = 111
	FmtG16R16F       Format = 112
	FmtA16B16G16R16F Format = 113
	FmtR32F          Format = 114
	FmtG32R32F       Format = 115
	FmtA32B32G32R32F Format = 116
	FmtCxV8U8        Format = 117
)

// FOURCC formats.
const (
	FmtUYVY     = Format('U') | Format('Y')<<8 | Format('V')<<16 | Format('Y')<<24
	FmtYUY2     = Format('Y') | Format('U')<<8 | Format('Y')<<16 | Format('2')<<24
	FmtR8G8B8G8 = Format('R') | Format('G')<<8 | Format('B')<<16 | Format('G')<<24
	FmtG8R8G8B8 = Format('G') | Format('R')<<8 | Format('G')<<16 | Format('B')<<24
	FmtDXT1     = Format('D') | Format('X')<<8 | Format('T')<<16 | Format('1')<<24
	FmtDXT2     = Format('D') | Format('X')<<8 | Format('T')<<16 | Format('2')<<24
	FmtDXT3     = Format('D') | Format('X')<<8 | Format('T')<<16 | Format('3')<<24
	FmtDXT4     = Format('D') | Format('X')<<8 | Format('T')<<16 | Format('4')<<24
	FmtDXT5     = Format('D') | Format('X')<<8 | Format('T')<<16 | Format('5')<<24
)

// String returns the FOURCC code for FOURCC formats and the numeric value
// otherwise.
func (f Format) String() string {
	if f > 0xFF {
		b := []byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)}
		return fmt.Sprintf("FOURCC(%s)", b)
	}
	return fmt.Sprintf("D3DFMT(%d)", uint32(f))
}
