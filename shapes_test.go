package tess

import (
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	p := NewPath().Rect(1, 2, 3, 4)

	if got := p.NumberContours(); got != 1 {
		t.Fatalf("NumberContours() = %d, want 1", got)
	}
	c := p.Contour(0)
	if !c.Closed() {
		t.Error("rectangle contour not closed")
	}
	if got := c.NumberEdges(); got != 4 {
		t.Errorf("NumberEdges() = %d, want 4", got)
	}
	if !p.IsFlat() {
		t.Error("IsFlat() = false")
	}

	bb, _ := p.ApproximateBoundingBox()
	if !pointsEqual(bb.Min, Pt(1, 2), epsilon) || !pointsEqual(bb.Max, Pt(4, 6), epsilon) {
		t.Errorf("bbox = %v, want [(1,2) (4,6)]", bb)
	}
	if got := filled(t, p).Area(WindingNonzero); math.Abs(got-12) > epsilon {
		t.Errorf("Area(nonzero) = %v, want 12", got)
	}
}

func TestRoundRect(t *testing.T) {
	p := NewPath().RoundRect(0, 0, 6, 4, 1)
	if !p.Contour(0).Closed() {
		t.Fatal("contour not closed")
	}

	f, err := p.Tessellation(0.001).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	want := 24 - (4-math.Pi)
	if got := f.Area(WindingNonzero); math.Abs(got-want) > 0.01 {
		t.Errorf("Area(nonzero) = %v, want %v", got, want)
	}

	// Corner arcs continue the sides, so only the closing seam carries
	// a join, and that seam is smooth.
	sp := p.ArcTessellation(0.01).Stroked()
	joins := sp.Joins()
	if len(joins) != 1 {
		t.Fatalf("len(Joins()) = %d, want 1", len(joins))
	}
	j := joins[0]
	if !j.EnterTangent.Approx(j.LeaveTangent, 1e-9) {
		t.Errorf("seam tangents %v -> %v, want smooth", j.EnterTangent, j.LeaveTangent)
	}
	if got := len(sp.Caps()); got != 0 {
		t.Errorf("len(Caps()) = %d, want 0", got)
	}
}

func TestRoundRectZeroRadius(t *testing.T) {
	p := NewPath().RoundRect(0, 0, 6, 4, 0)
	if got := p.Contour(0).NumberEdges(); got != 4 {
		t.Errorf("NumberEdges() = %d, want 4 (plain rectangle)", got)
	}
	if !p.IsFlat() {
		t.Error("IsFlat() = false, want true for zero corner radius")
	}
}

func TestCircle(t *testing.T) {
	p := NewPath().Circle(1, -2, 3)
	if !p.Contour(0).Closed() {
		t.Fatal("contour not closed")
	}

	f, err := p.Tessellation(0.001).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	want := math.Pi * 9
	if got := f.Area(WindingNonzero); math.Abs(got-want) > 0.05 {
		t.Errorf("Area(nonzero) = %v, want %v", got, want)
	}

	bb, _ := p.Tessellation(0.001).BoundingBox()
	wantBB := Rect{Min: Pt(-2, -5), Max: Pt(4, 1)}
	if !pointsEqual(bb.Min, wantBB.Min, 0.01) || !pointsEqual(bb.Max, wantBB.Max, 0.01) {
		t.Errorf("bbox = %v, want %v", bb, wantBB)
	}
}

func TestEllipse(t *testing.T) {
	p := NewPath().Ellipse(0, 0, 3, 2)
	c := p.Contour(0)
	if !c.Closed() {
		t.Fatal("contour not closed")
	}
	if got := c.NumberEdges(); got != 4 {
		t.Errorf("NumberEdges() = %d, want 4", got)
	}

	f, err := p.Tessellation(0.001).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	want := math.Pi * 3 * 2
	if got := f.Area(WindingNonzero); math.Abs(got-want) > 0.05 {
		t.Errorf("Area(nonzero) = %v, want %v", got, want)
	}
}

func TestPolygon(t *testing.T) {
	p := NewPath().Polygon(0, 0, 2, 6)
	c := p.Contour(0)
	if !c.Closed() {
		t.Fatal("contour not closed")
	}
	if got := c.NumberEdges(); got != 6 {
		t.Errorf("NumberEdges() = %d, want 6", got)
	}
	if got := c.Point(0); !pointsEqual(got, Pt(0, -2), epsilon) {
		t.Errorf("first vertex = %v, want (0,-2)", got)
	}

	want := 6 * math.Sqrt(3) // regular hexagon of circumradius 2
	if got := filled(t, p).Area(WindingNonzero); math.Abs(got-want) > 1e-9 {
		t.Errorf("Area(nonzero) = %v, want %v", got, want)
	}
}

func TestPolygonTooFewSides(t *testing.T) {
	p := NewPath().Polygon(0, 0, 2, 2)
	if got := p.NumberContours(); got != 0 {
		t.Errorf("NumberContours() = %d, want 0", got)
	}
}

func TestStar(t *testing.T) {
	p := NewPath().Star(0, 0, 2, 1, 5)
	c := p.Contour(0)
	if !c.Closed() {
		t.Fatal("contour not closed")
	}
	if got := c.NumberEdges(); got != 10 {
		t.Errorf("NumberEdges() = %d, want 10", got)
	}

	// Triangles from the center to consecutive vertex pairs.
	want := 5 * 2.0 * 1.0 * math.Sin(math.Pi/5)
	if got := filled(t, p).Area(WindingNonzero); math.Abs(got-want) > 1e-9 {
		t.Errorf("Area(nonzero) = %v, want %v", got, want)
	}
}

func TestStarTooFewPoints(t *testing.T) {
	p := NewPath().Star(0, 0, 2, 1, 2)
	if got := p.NumberContours(); got != 0 {
		t.Errorf("NumberContours() = %d, want 0", got)
	}
}
