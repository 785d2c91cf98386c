// Package msample converts legacy multisample settings to modern sample
// descriptions.
package msample

import (
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d9"
)

// MaxSamples is the largest sample count either API can express.
const MaxSamples = 16

// ToModern returns the sample description for legacy type t and quality q.
// The count is clamped to [1, MaxSamples]; the quality is passed through.
func ToModern(t d3d9.MultisampleType, q uint32) d3d11.SampleDesc {
	return d3d11.SampleDesc{Count: min(max(uint32(t), 1), MaxSamples), Quality: q}
}

// ToLegacy returns the legacy type and quality of d.
func ToLegacy(d d3d11.SampleDesc) (d3d9.MultisampleType, uint32) {
	return d3d9.MultisampleType(d.Count), d.Quality
}

// Single is the sample description of a non-multisampled image.
var Single = d3d11.SampleDesc{Count: 1}
