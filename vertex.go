package oit

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v2/core1_0"
	"unsafe"
)

// Vertex is the mesh vertex layout the sample's pipelines consume: position
// and normal, plus a per-vertex color with alpha.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
}

// NewVertex builds a vertex with the given position and normal and an
// opaque white color.
func NewVertex(position, normal mgl32.Vec3) Vertex {
	return Vertex{
		Position: position,
		Normal:   normal,
		Color:    mgl32.Vec4{1, 1, 1, 1},
	}
}

// VertexBindingDescription describes one tightly packed vertex buffer
// binding for Vertex data.
func VertexBindingDescription() []core1_0.VertexInputBindingDescription {
	v := Vertex{}
	return []core1_0.VertexInputBindingDescription{
		{
			Binding:   0,
			Stride:    int(unsafe.Sizeof(v)),
			InputRate: core1_0.VertexInputRateVertex,
		},
	}
}

// VertexAttributeDescriptions describes the position, normal, and color
// attributes at locations 0, 1, and 2.
func VertexAttributeDescriptions() []core1_0.VertexInputAttributeDescription {
	v := Vertex{}
	return []core1_0.VertexInputAttributeDescription{
		{
			Binding:  0,
			Location: 0,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Position)),
		},
		{
			Binding:  0,
			Location: 1,
			Format:   core1_0.FormatR32G32B32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Normal)),
		},
		{
			Binding:  0,
			Location: 2,
			Format:   core1_0.FormatR32G32B32A32SignedFloat,
			Offset:   int(unsafe.Offsetof(v.Color)),
		},
	}
}
