package shader

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/tess"
)

func TestItemVertexLayout(t *testing.T) {
	layouts := ItemVertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(layouts) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != ItemVertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, ItemVertexStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", l.StepMode)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(l.Attributes))
	}
	pos := l.Attributes[0]
	if pos.Format != gputypes.VertexFormatFloat32x2 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v", pos)
	}
	data := l.Attributes[1]
	if data.Format != gputypes.VertexFormatFloat32x4 || data.Offset != 8 || data.ShaderLocation != 1 {
		t.Errorf("data attribute = %+v", data)
	}
}

func TestPipelinePrimitiveState(t *testing.T) {
	ps := PipelinePrimitiveState()
	if ps.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want triangle list", ps.Topology)
	}
	if ps.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want none", ps.CullMode)
	}
}

func TestPipelineMultisampleState(t *testing.T) {
	ms := PipelineMultisampleState()
	if ms.Count != 4 {
		t.Errorf("Count = %d, want 4", ms.Count)
	}
	if ms.Mask != 0xFFFFFFFF {
		t.Errorf("Mask = %#x, want 0xFFFFFFFF", ms.Mask)
	}
}

func TestPipelineColorTarget(t *testing.T) {
	ct := PipelineColorTarget(gputypes.TextureFormatRGBA8Unorm)
	if ct.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", ct.Format)
	}
	if ct.Blend == nil {
		t.Fatal("Blend is nil")
	}
	if *ct.Blend != gputypes.BlendStatePremultiplied() {
		t.Errorf("Blend = %+v, want premultiplied", *ct.Blend)
	}
	if ct.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want all", ct.WriteMask)
	}
}

func TestUberBindGroupLayout(t *testing.T) {
	entries := UberBindGroupLayout()
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Binding != 0 {
		t.Errorf("Binding = %d, want 0", e.Binding)
	}
	if e.Visibility != gputypes.ShaderStageVertex|gputypes.ShaderStageFragment {
		t.Errorf("Visibility = %v, want vertex|fragment", e.Visibility)
	}
	if e.Buffer == nil || e.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Errorf("Buffer = %+v, want uniform binding", e.Buffer)
	}
}

func TestPackFillVertices(t *testing.T) {
	p := tess.NewPath().Move(tess.Pt(0, 0)).
		LineTo(tess.Pt(1, 0), tess.StartsNewEdge).
		LineTo(tess.Pt(1, 1), tess.StartsNewEdge).
		LineTo(tess.Pt(0, 1), tess.StartsNewEdge).
		EndContour(tess.StartsNewEdge)
	f, err := p.Tessellation(0).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}

	color := [4]float32{0.5, 0.25, 0.125, 1}
	verts, idx := PackFillVertices(f, tess.WindingNonzero, color)

	pts := f.Points()
	if len(verts) != len(pts) || len(verts) != 4 {
		t.Fatalf("len(verts) = %d, want 4", len(verts))
	}
	for i, v := range verts {
		want := [2]float32{float32(pts[i].X), float32(pts[i].Y)}
		if v.Position != want {
			t.Errorf("verts[%d].Position = %v, want %v", i, v.Position, want)
		}
		if v.Data != color {
			t.Errorf("verts[%d].Data = %v, want %v", i, v.Data, color)
		}
	}

	if len(idx) != 6 {
		t.Fatalf("len(idx) = %d, want 6", len(idx))
	}
	for i, ix := range idx {
		if int(ix) >= len(verts) {
			t.Errorf("idx[%d] = %d out of range", i, ix)
		}
	}
}

func TestPackStrokeVerticesSegment(t *testing.T) {
	p := tess.NewPath().Move(tess.Pt(0, 0)).LineTo(tess.Pt(10, 0), tess.StartsNewEdge)
	s := p.Tessellation(0).Stroked()

	verts, idx := PackStrokeVertices(s, 2, [3]float32{1, 0, 0})

	want := []ItemVertex{
		{Position: [2]float32{0, 1}, Data: [4]float32{1, 0, 0, 1}},
		{Position: [2]float32{0, -1}, Data: [4]float32{1, 0, 0, -1}},
		{Position: [2]float32{10, 1}, Data: [4]float32{1, 0, 0, 1}},
		{Position: [2]float32{10, -1}, Data: [4]float32{1, 0, 0, -1}},
	}
	if len(verts) != len(want) {
		t.Fatalf("len(verts) = %d, want %d", len(verts), len(want))
	}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("verts[%d] = %+v, want %+v", i, verts[i], want[i])
		}
	}

	wantIdx := []uint32{0, 1, 2, 2, 1, 3}
	if len(idx) != len(wantIdx) {
		t.Fatalf("len(idx) = %d, want %d", len(idx), len(wantIdx))
	}
	for i := range wantIdx {
		if idx[i] != wantIdx[i] {
			t.Errorf("idx[%d] = %d, want %d", i, idx[i], wantIdx[i])
		}
	}
}

func TestPackStrokeVerticesJoin(t *testing.T) {
	p := tess.NewPath().Move(tess.Pt(0, 0)).
		LineTo(tess.Pt(10, 0), tess.StartsNewEdge).
		LineTo(tess.Pt(10, 10), tess.StartsNewEdge)
	s := p.Tessellation(0).Stroked()

	verts, idx := PackStrokeVertices(s, 2, [3]float32{0, 1, 0})

	// Two segment quads plus one bevel triangle at the corner.
	if len(verts) != 11 {
		t.Fatalf("len(verts) = %d, want 11", len(verts))
	}
	if len(idx) != 15 {
		t.Fatalf("len(idx) = %d, want 15", len(idx))
	}

	// The left turn at (10,0) bevels the outer, negative side.
	vc, va, vb := verts[8], verts[9], verts[10]
	if vc.Position != [2]float32{10, 0} || vc.Data[3] != 0 {
		t.Errorf("bevel center = %+v, want (10,0) on the center line", vc)
	}
	if va.Position != [2]float32{10, -1} || va.Data[3] != -1 {
		t.Errorf("bevel enter vertex = %+v, want (10,-1) at w=-1", va)
	}
	if vb.Position != [2]float32{11, 0} || vb.Data[3] != -1 {
		t.Errorf("bevel leave vertex = %+v, want (11,0) at w=-1", vb)
	}
	if idx[12] != 8 || idx[13] != 9 || idx[14] != 10 {
		t.Errorf("bevel indices = %v, want [8 9 10]", idx[12:])
	}
}

func TestPackStrokeVerticesCollinear(t *testing.T) {
	p := tess.NewPath().Move(tess.Pt(0, 0)).
		LineTo(tess.Pt(5, 0), tess.StartsNewEdge).
		LineTo(tess.Pt(10, 0), tess.StartsNewEdge)
	s := p.Tessellation(0).Stroked()

	verts, idx := PackStrokeVertices(s, 2, [3]float32{0, 0, 1})

	if len(verts) != 8 || len(idx) != 12 {
		t.Fatalf("got %d verts, %d indices, want 8 and 12", len(verts), len(idx))
	}
	for i, v := range verts {
		if v.Data[3] == 0 {
			t.Errorf("verts[%d] is a bevel vertex, straight joins emit none", i)
		}
	}
}
