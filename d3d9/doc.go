// Package d3d9 defines the enumerants, flags and structures of the legacy
// fixed-function graphics API emulated by package nine.
//
// Values match the legacy headers so they can be passed through a binary
// dispatch layer unchanged.
package d3d9
