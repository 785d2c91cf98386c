//go:build !windows

package platform

func clientSize(uintptr) (uint32, uint32, error) {
	return 0, 0, ErrUnsupported
}
