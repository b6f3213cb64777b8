package oit

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func TestNewVertex(t *testing.T) {
	v := NewVertex(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0})
	if v.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position:\nhave %v\nwant (1 2 3)", v.Position)
	}
	if v.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Normal:\nhave %v\nwant (0 1 0)", v.Normal)
	}
	if v.Color != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Color:\nhave %v\nwant opaque white", v.Color)
	}
}

func TestVertexBindingDescription(t *testing.T) {
	bindings := VertexBindingDescription()
	if len(bindings) != 1 {
		t.Fatalf("bindings:\nhave %d\nwant 1", len(bindings))
	}
	b := bindings[0]
	if b.Binding != 0 {
		t.Errorf("Binding:\nhave %d\nwant 0", b.Binding)
	}
	if b.Stride != int(unsafe.Sizeof(Vertex{})) || b.Stride != 40 {
		t.Errorf("Stride:\nhave %d\nwant 40", b.Stride)
	}
	if b.InputRate != core1_0.VertexInputRateVertex {
		t.Errorf("InputRate:\nhave %d\nwant per-vertex", b.InputRate)
	}
}

func TestVertexAttributeDescriptions(t *testing.T) {
	attrs := VertexAttributeDescriptions()
	if len(attrs) != 3 {
		t.Fatalf("attributes:\nhave %d\nwant 3", len(attrs))
	}

	wants := []struct {
		location int
		format   core1_0.Format
		offset   int
	}{
		{0, core1_0.FormatR32G32B32SignedFloat, 0},
		{1, core1_0.FormatR32G32B32SignedFloat, 12},
		{2, core1_0.FormatR32G32B32A32SignedFloat, 24},
	}
	for i, want := range wants {
		a := attrs[i]
		if a.Binding != 0 {
			t.Errorf("attr %d Binding:\nhave %d\nwant 0", i, a.Binding)
		}
		if a.Location != want.location {
			t.Errorf("attr %d Location:\nhave %d\nwant %d", i, a.Location, want.location)
		}
		if a.Format != want.format {
			t.Errorf("attr %d Format:\nhave %d\nwant %d", i, a.Format, want.format)
		}
		if a.Offset != want.offset {
			t.Errorf("attr %d Offset:\nhave %d\nwant %d", i, a.Offset, want.offset)
		}
	}
}
