//go:build !nogpu

package native

// Import the Vulkan HAL backend so it registers via init().
import _ "github.com/gogpu/wgpu/hal/vulkan"
