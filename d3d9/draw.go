package d3d9

// PrimitiveType selects how vertices are assembled.
type PrimitiveType uint32

// Primitive types.
const (
	PTPointList     PrimitiveType = 1
	PTLineList      PrimitiveType = 2
	PTLineStrip     PrimitiveType = 3
	PTTriangleList  PrimitiveType = 4
	PTTriangleStrip PrimitiveType = 5
	PTTriangleFan   PrimitiveType = 6
)

// Clear flags.
const (
	ClearTarget  uint32 = 0x1
	ClearZBuffer uint32 = 0x2
	ClearStencil uint32 = 0x4
)

// Light is a fixed-function light source.
type Light struct {
	Type         uint32
	Diffuse      ColorValue
	Specular     ColorValue
	Ambient      ColorValue
	Position     [3]float32
	Direction    [3]float32
	Range        float32
	Falloff      float32
	Attenuation0 float32
	Attenuation1 float32
	Attenuation2 float32
	Theta        float32
	Phi          float32
}

// GammaRamp holds one 256-entry ramp per channel.
type GammaRamp struct {
	Red, Green, Blue [256]uint16
}

// QueryType names an asynchronous query.
type QueryType uint32

// Query types.
const (
	QueryTypeVCache    QueryType = 4
	QueryTypeEvent     QueryType = 8
	QueryTypeOcclusion QueryType = 9
	QueryTypeTimestamp QueryType = 10
)
