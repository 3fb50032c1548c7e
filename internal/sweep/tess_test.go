package sweep

import (
	"math"
	"sort"
	"strconv"
	"testing"
)

func triangulate(t *testing.T, rule WindingRule, contours ...[]float64) *Result {
	t.Helper()
	var tess Tessellator
	tess.Rule = rule
	for _, c := range contours {
		tess.AddContour(c)
	}
	res, err := tess.Tessellate()
	if err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	return res
}

// areaByWinding sums the signed area of the output triangles per
// winding number. Triangles are counterclockwise, so the sums come out
// positive for well-formed output.
func areaByWinding(res *Result) map[int]float64 {
	areas := make(map[int]float64)
	for _, tri := range res.Triangles {
		ax, ay := res.Vertices[2*tri.V[0]], res.Vertices[2*tri.V[0]+1]
		bx, by := res.Vertices[2*tri.V[1]], res.Vertices[2*tri.V[1]+1]
		cx, cy := res.Vertices[2*tri.V[2]], res.Vertices[2*tri.V[2]+1]
		areas[tri.Winding] += 0.5 * ((bx-ax)*(cy-ay) - (by-ay)*(cx-ax))
	}
	return areas
}

func windings(res *Result) []int {
	seen := make(map[int]bool)
	for _, tri := range res.Triangles {
		seen[tri.Winding] = true
	}
	var ws []int
	for w := range seen {
		ws = append(ws, w)
	}
	sort.Ints(ws)
	return ws
}

func checkTriangles(t *testing.T, res *Result) {
	t.Helper()
	if len(res.Vertices)%2 != 0 {
		t.Fatalf("odd vertex coordinate count %d", len(res.Vertices))
	}
	if len(res.VertexIndices) != len(res.Vertices)/2 {
		t.Fatalf("VertexIndices length %d, want %d", len(res.VertexIndices), len(res.Vertices)/2)
	}
	for i, tri := range res.Triangles {
		for _, vi := range tri.V {
			if vi < 0 || vi >= len(res.Vertices)/2 {
				t.Fatalf("triangle %d index %d out of range", i, vi)
			}
		}
		ax, ay := res.Vertices[2*tri.V[0]], res.Vertices[2*tri.V[0]+1]
		bx, by := res.Vertices[2*tri.V[1]], res.Vertices[2*tri.V[1]+1]
		cx, cy := res.Vertices[2*tri.V[2]], res.Vertices[2*tri.V[2]+1]
		if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
			t.Errorf("triangle %d is clockwise", i)
		}
	}
}

func TestTessellateSquare(t *testing.T) {
	res := triangulate(t, WindingNonzero, []float64{0, 0, 1, 0, 1, 1, 0, 1})
	checkTriangles(t, res)

	if got := len(res.Triangles); got != 2 {
		t.Fatalf("triangle count = %d, want 2", got)
	}
	for i, tri := range res.Triangles {
		if tri.Winding != 1 {
			t.Errorf("triangle %d winding = %d, want 1", i, tri.Winding)
		}
	}
	if got := areaByWinding(res)[1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("area = %v, want 1", got)
	}

	seen := make(map[int]bool)
	for _, idx := range res.VertexIndices {
		seen[idx] = true
	}
	for i := 0; i < 4; i++ {
		if !seen[i] {
			t.Errorf("input vertex %d missing from VertexIndices", i)
		}
	}
}

func TestTessellateSquareClockwise(t *testing.T) {
	res := triangulate(t, WindingNonzero, []float64{0, 0, 0, 1, 1, 1, 1, 0})
	checkTriangles(t, res)

	if got := windings(res); len(got) != 1 || got[0] != -1 {
		t.Fatalf("windings = %v, want [-1]", got)
	}
	if got := areaByWinding(res)[-1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("area = %v, want 1", got)
	}
}

func TestTessellateNestedSquares(t *testing.T) {
	outer := []float64{0, 0, 4, 0, 4, 4, 0, 4}
	inner := []float64{1, 1, 3, 1, 3, 3, 1, 3}

	t.Run("nonzero keeps both depths", func(t *testing.T) {
		res := triangulate(t, WindingNonzero, outer, inner)
		checkTriangles(t, res)

		if got := windings(res); len(got) != 2 || got[0] != 1 || got[1] != 2 {
			t.Fatalf("windings = %v, want [1 2]", got)
		}
		areas := areaByWinding(res)
		if math.Abs(areas[1]-12) > 1e-12 {
			t.Errorf("winding-1 area = %v, want 12", areas[1])
		}
		if math.Abs(areas[2]-4) > 1e-12 {
			t.Errorf("winding-2 area = %v, want 4", areas[2])
		}
	})

	t.Run("odd drops the double-wound region", func(t *testing.T) {
		res := triangulate(t, WindingOdd, outer, inner)
		checkTriangles(t, res)

		if got := windings(res); len(got) != 1 || got[0] != 1 {
			t.Fatalf("windings = %v, want [1]", got)
		}
		if got := areaByWinding(res)[1]; math.Abs(got-12) > 1e-12 {
			t.Errorf("area = %v, want 12", got)
		}
	})
}

func TestTessellateBowtie(t *testing.T) {
	res := triangulate(t, WindingNonzero, []float64{0, 0, 2, 2, 2, 0, 0, 2})
	checkTriangles(t, res)

	if got := windings(res); len(got) != 2 || got[0] != -1 || got[1] != 1 {
		t.Fatalf("windings = %v, want [-1 1]", got)
	}
	areas := areaByWinding(res)
	if math.Abs(areas[1]-1) > 1e-12 || math.Abs(areas[-1]-1) > 1e-12 {
		t.Errorf("areas = %v, want 1 per side", areas)
	}

	// The crossing is not an input vertex; the sweep synthesizes it.
	found := false
	for i, idx := range res.VertexIndices {
		if idx != -1 {
			continue
		}
		found = true
		x, y := res.Vertices[2*i], res.Vertices[2*i+1]
		if math.Abs(x-1) > 1e-12 || math.Abs(y-1) > 1e-12 {
			t.Errorf("synthesized vertex at (%v, %v), want (1, 1)", x, y)
		}
	}
	if !found {
		t.Error("no synthesized vertex in VertexIndices")
	}
}

func TestTessellatePentagram(t *testing.T) {
	// Five points connected every second vertex; the center pentagon is
	// wound twice.
	coords := make([]float64, 0, 10)
	for k := 0; k < 5; k++ {
		a := -math.Pi/2 + float64(k)*4*math.Pi/5
		coords = append(coords, 2*math.Cos(a), 2*math.Sin(a))
	}
	res := triangulate(t, WindingNonzero, coords)
	checkTriangles(t, res)

	if got := windings(res); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("windings = %v, want [1 2]", got)
	}

	synthesized := 0
	for _, idx := range res.VertexIndices {
		if idx == -1 {
			synthesized++
		}
	}
	if synthesized != 5 {
		t.Errorf("synthesized vertex count = %d, want 5", synthesized)
	}

	areas := areaByWinding(res)
	if areas[1] <= 0 || areas[2] <= 0 {
		t.Errorf("areas = %v, want positive for both windings", areas)
	}
}

func TestTessellateSharedEdge(t *testing.T) {
	res := triangulate(t, WindingNonzero,
		[]float64{0, 0, 1, 0, 1, 1, 0, 1},
		[]float64{1, 0, 2, 0, 2, 1, 1, 1})
	checkTriangles(t, res)

	if got := windings(res); len(got) != 1 || got[0] != 1 {
		t.Fatalf("windings = %v, want [1]", got)
	}
	if got := areaByWinding(res)[1]; math.Abs(got-2) > 1e-12 {
		t.Errorf("area = %v, want 2", got)
	}
}

func TestTessellateDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		contour []float64
	}{
		{"no coordinates", nil},
		{"single point", []float64{3, 3}},
		{"two points", []float64{0, 0, 5, 5}},
		{"collinear", []float64{0, 0, 1, 0, 2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := triangulate(t, WindingNonzero, tt.contour)
			if got := len(res.Triangles); got != 0 {
				t.Errorf("triangle count = %d, want 0", got)
			}
		})
	}
}

func TestTessellateRepeatedVertex(t *testing.T) {
	res := triangulate(t, WindingNonzero, []float64{0, 0, 1, 0, 1, 0, 1, 1, 0, 1})
	checkTriangles(t, res)

	if got := areaByWinding(res)[1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("area = %v, want 1", got)
	}
}

func TestTessellateEmpty(t *testing.T) {
	var tess Tessellator
	res, err := tess.Tessellate()
	if err != nil {
		t.Fatalf("Tessellate() error: %v", err)
	}
	if len(res.Vertices) != 0 || len(res.Triangles) != 0 {
		t.Errorf("empty input produced %d vertices, %d triangles",
			len(res.Vertices)/2, len(res.Triangles))
	}
}

func BenchmarkTessellatePolygon(b *testing.B) {
	for _, n := range []int{8, 64, 256} {
		coords := make([]float64, 0, 2*n)
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			coords = append(coords, math.Cos(a), math.Sin(a))
		}
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				tess := &Tessellator{Rule: WindingNonzero}
				tess.AddContour(coords)
				if _, err := tess.Tessellate(); err != nil {
					b.Fatalf("Tessellate() error: %v", err)
				}
			}
		})
	}
}
