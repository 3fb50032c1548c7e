package shader

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/tess"
)

// ItemVertex is the vertex format every item shader consumes: a
// position in viewport coordinates and a four-float payload whose
// meaning the item shader defines. Fills carry the premultiplied color,
// strokes carry color in xyz and the signed cross-stroke coordinate
// in w.
type ItemVertex struct {
	Position [2]float32
	Data     [4]float32
}

// ItemVertexStride is the byte size of one ItemVertex.
const ItemVertexStride = 24

// ItemVertexLayout returns the vertex buffer layout matching
// ItemVertex and the skeleton's vs_main inputs.
func ItemVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: ItemVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x4,
					Offset:         8,
					ShaderLocation: 1,
				},
			},
		},
	}
}

// PipelinePrimitiveState returns the primitive state for uber shader
// pipelines. Triangles are emitted in both orientations, so culling
// stays off.
func PipelinePrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// PipelineMultisampleState returns the 4x MSAA state uber shader
// pipelines render with.
func PipelineMultisampleState() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count: 4,
		Mask:  0xFFFFFFFF,
	}
}

// PipelineColorTarget returns the color target for the given surface
// format with premultiplied alpha blending.
func PipelineColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	blend := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// UberBindGroupLayout returns the bind group layout the skeleton
// declares: the Globals uniform at group 0, binding 0.
func UberBindGroupLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeUniform,
			},
		},
	}
}

// PackFillVertices packs a prepared fill into item vertices for the
// fill item shader. Every tessellation vertex carries the given
// premultiplied color and the indices select the triangles inside
// under the winding rule. Indices are 32 bit.
func PackFillVertices(f *tess.FilledPath, rule tess.WindingRule, color [4]float32) ([]ItemVertex, []uint32) {
	pts := f.Points()
	vertices := make([]ItemVertex, len(pts))
	for i, p := range pts {
		vertices[i] = ItemVertex{
			Position: [2]float32{float32(p.X), float32(p.Y)},
			Data:     color,
		}
	}
	return vertices, f.Triangles(rule)
}

// PackStrokeVertices packs a stroke preparation into item vertices for
// the stroke item shader: one quad per tessellated segment, offset half
// the width to each side, plus a bevel triangle at every join. The
// payload w coordinate is +1 and -1 at the stroke boundaries and 0 on
// the center line, so the shader can feather the edges. Caps are butt.
// Indices are 32 bit.
func PackStrokeVertices(s *tess.StrokedPath, width float64, color [3]float32) ([]ItemVertex, []uint32) {
	h := 0.5 * width
	var vertices []ItemVertex
	var indices []uint32

	vertex := func(p tess.Point, w float32) uint32 {
		i := uint32(len(vertices))
		vertices = append(vertices, ItemVertex{
			Position: [2]float32{float32(p.X), float32(p.Y)},
			Data:     [4]float32{color[0], color[1], color[2], w},
		})
		return i
	}
	offset := func(p tess.Point, n tess.Vec2) tess.Point {
		return tess.Point{X: p.X + n.X, Y: p.Y + n.Y}
	}

	for _, seg := range s.Source().Segments() {
		if seg.Length <= 0 {
			continue
		}
		ns := seg.EnterTangent.Perp().Mul(h)
		ne := seg.LeaveTangent.Perp().Mul(h)
		v0 := vertex(offset(seg.Start, ns), 1)
		v1 := vertex(offset(seg.Start, ns.Neg()), -1)
		v2 := vertex(offset(seg.End, ne), 1)
		v3 := vertex(offset(seg.End, ne.Neg()), -1)
		indices = append(indices, v0, v1, v2, v2, v1, v3)
	}

	for _, j := range s.Joins() {
		cross := j.EnterTangent.Cross(j.LeaveTangent)
		if cross == 0 {
			continue
		}
		ne := j.EnterTangent.Perp().Mul(h)
		nl := j.LeaveTangent.Perp().Mul(h)
		vc := vertex(j.Point, 0)
		var va, vb uint32
		if cross > 0 {
			va = vertex(offset(j.Point, ne.Neg()), -1)
			vb = vertex(offset(j.Point, nl.Neg()), -1)
		} else {
			va = vertex(offset(j.Point, ne), 1)
			vb = vertex(offset(j.Point, nl), 1)
		}
		indices = append(indices, vc, va, vb)
	}

	return vertices, indices
}
