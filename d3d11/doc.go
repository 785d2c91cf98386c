// Package d3d11 models the modern explicit graphics API and its display
// factory as consumed by package nine.
//
// The package only declares data types and interfaces. Drivers live in
// sub-packages: soft is an in-memory implementation, webgpu runs on the
// gogpu/wgpu hardware abstraction layer.
package d3d11
