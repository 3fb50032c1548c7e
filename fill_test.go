package tess

import (
	"math"
	"testing"
)

func TestWindingRuleInside(t *testing.T) {
	tests := []struct {
		rule    WindingRule
		inside  []int
		outside []int
	}{
		{WindingNonzero, []int{-2, -1, 1, 2}, []int{0}},
		{WindingOdd, []int{-3, -1, 1, 3}, []int{-2, 0, 2}},
		{WindingPositive, []int{1, 2, 3}, []int{-2, -1, 0}},
		{WindingNegative, []int{-3, -2, -1}, []int{0, 1, 2}},
		{WindingAbsGeqTwo, []int{-3, -2, 2, 3}, []int{-1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			for _, w := range tt.inside {
				if !tt.rule.Inside(w) {
					t.Errorf("Inside(%d) = false, want true", w)
				}
			}
			for _, w := range tt.outside {
				if tt.rule.Inside(w) {
					t.Errorf("Inside(%d) = true, want false", w)
				}
			}
		})
	}
}

func TestWindingRuleString(t *testing.T) {
	tests := []struct {
		rule WindingRule
		want string
	}{
		{WindingNonzero, "nonzero"},
		{WindingOdd, "odd"},
		{WindingPositive, "positive"},
		{WindingNegative, "negative"},
		{WindingAbsGeqTwo, "abs-geq-two"},
		{WindingRule(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("WindingRule(%d).String() = %q, want %q", int(tt.rule), got, tt.want)
		}
	}
}

// squareInto appends an axis-aligned square contour. Positive size
// winds counterclockwise, negative size clockwise.
func squareInto(p *Path, x, y, size float64) *Path {
	s := math.Abs(size)
	p.Move(Pt(x, y))
	if size > 0 {
		p.LineTo(Pt(x+s, y), StartsNewEdge).
			LineTo(Pt(x+s, y+s), StartsNewEdge).
			LineTo(Pt(x, y+s), StartsNewEdge)
	} else {
		p.LineTo(Pt(x, y+s), StartsNewEdge).
			LineTo(Pt(x+s, y+s), StartsNewEdge).
			LineTo(Pt(x+s, y), StartsNewEdge)
	}
	return p.EndContour(StartsNewEdge)
}

func filled(t *testing.T, p *Path) *FilledPath {
	t.Helper()
	f, err := p.Tessellation(0).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	return f
}

func TestFilledSquareOrientation(t *testing.T) {
	t.Run("counterclockwise", func(t *testing.T) {
		f := filled(t, squareInto(NewPath(), 0, 0, 1))
		if got := f.Windings(); len(got) != 1 || got[0] != 1 {
			t.Errorf("Windings() = %v, want [1]", got)
		}
		if got := f.Area(WindingPositive); math.Abs(got-1) > epsilon {
			t.Errorf("Area(positive) = %v, want 1", got)
		}
		if got := f.Area(WindingNegative); got != 0 {
			t.Errorf("Area(negative) = %v, want 0", got)
		}
	})

	t.Run("clockwise", func(t *testing.T) {
		f := filled(t, squareInto(NewPath(), 0, 0, -1))
		if got := f.Windings(); len(got) != 1 || got[0] != -1 {
			t.Errorf("Windings() = %v, want [-1]", got)
		}
		if got := f.Area(WindingNegative); math.Abs(got-1) > epsilon {
			t.Errorf("Area(negative) = %v, want 1", got)
		}
		if got := f.Area(WindingPositive); got != 0 {
			t.Errorf("Area(positive) = %v, want 0", got)
		}
	})
}

func TestFilledNestedSquares(t *testing.T) {
	// Inner square wound the same way: its interior has winding two.
	p := squareInto(NewPath(), 0, 0, 4)
	squareInto(p, 1, 1, 2)
	f := filled(t, p)

	if got := f.Windings(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Windings() = %v, want [1 2]", got)
	}

	tests := []struct {
		rule WindingRule
		want float64
	}{
		{WindingNonzero, 16},
		{WindingOdd, 12},
		{WindingPositive, 16},
		{WindingNegative, 0},
		{WindingAbsGeqTwo, 4},
	}
	for _, tt := range tests {
		if got := f.Area(tt.rule); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Area(%v) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

func TestFilledSquareWithHole(t *testing.T) {
	// Inner square wound the opposite way cancels to winding zero, so
	// the hole is never triangulated.
	p := squareInto(NewPath(), 0, 0, 4)
	squareInto(p, 1, 1, -2)
	f := filled(t, p)

	if got := f.Windings(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Windings() = %v, want [1]", got)
	}
	if got := f.Area(WindingNonzero); math.Abs(got-12) > epsilon {
		t.Errorf("Area(nonzero) = %v, want 12", got)
	}
	if got := f.Area(WindingAbsGeqTwo); got != 0 {
		t.Errorf("Area(abs-geq-two) = %v, want 0", got)
	}
}

func TestFilledBowtie(t *testing.T) {
	// The self-intersection splits the contour into two loops of
	// opposite orientation.
	p := NewPath().
		Move(Pt(0, 0)).
		LineTo(Pt(2, 2), StartsNewEdge).
		LineTo(Pt(2, 0), StartsNewEdge).
		LineTo(Pt(0, 2), StartsNewEdge).
		EndContour(StartsNewEdge)
	f := filled(t, p)

	if got := f.Windings(); len(got) != 2 || got[0] != -1 || got[1] != 1 {
		t.Fatalf("Windings() = %v, want [-1 1]", got)
	}

	tests := []struct {
		rule WindingRule
		want float64
	}{
		{WindingNonzero, 2},
		{WindingOdd, 2},
		{WindingPositive, 1},
		{WindingNegative, 1},
	}
	for _, tt := range tests {
		if got := f.Area(tt.rule); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Area(%v) = %v, want %v", tt.rule, got, tt.want)
		}
	}
}

func TestFilledOpenContourClosesToStart(t *testing.T) {
	p := NewPath().
		Move(Pt(0, 0)).
		LineTo(Pt(4, 0), StartsNewEdge).
		LineTo(Pt(4, 4), StartsNewEdge)
	f := filled(t, p)

	if got := f.Area(WindingNonzero); math.Abs(got-8) > epsilon {
		t.Errorf("Area(nonzero) = %v, want 8", got)
	}
}

func TestFilledSharedEdge(t *testing.T) {
	// Two squares meeting along x=1 with exactly equal vertex
	// coordinates merge into one winding-one region without a seam.
	p := squareInto(NewPath(), 0, 0, 1)
	squareInto(p, 1, 0, 1)
	f := filled(t, p)

	if got := f.Windings(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Windings() = %v, want [1]", got)
	}
	if got := f.Area(WindingNonzero); math.Abs(got-2) > epsilon {
		t.Errorf("Area(nonzero) = %v, want 2", got)
	}
}

func TestFilledTriangleOutput(t *testing.T) {
	p := squareInto(NewPath(), 0, 0, 4)
	squareInto(p, 1, 1, 2)
	f := filled(t, p)

	idx := f.Triangles(WindingNonzero)
	if len(idx)%3 != 0 {
		t.Fatalf("Triangles index count = %d, not a multiple of 3", len(idx))
	}
	if len(idx) == 0 {
		t.Fatal("Triangles(nonzero) empty")
	}
	pts := f.Points()
	for i := 0; i+2 < len(idx); i += 3 {
		for k := 0; k < 3; k++ {
			if int(idx[i+k]) >= len(pts) {
				t.Fatalf("triangle %d index %d out of range (%d points)", i/3, idx[i+k], len(pts))
			}
		}
		a, b, c := pts[idx[i]], pts[idx[i+1]], pts[idx[i+2]]
		if b.Sub(a).Cross(c.Sub(a)) <= 0 {
			t.Errorf("triangle %d (%v %v %v) is not counterclockwise", i/3, a, b, c)
		}
	}
}

func TestFilledWindingTriangles(t *testing.T) {
	p := squareInto(NewPath(), 0, 0, 4)
	squareInto(p, 1, 1, 2)
	f := filled(t, p)

	idx := f.WindingTriangles(2)
	if idx == nil {
		t.Fatal("WindingTriangles(2) = nil")
	}
	area := 0.0
	pts := f.Points()
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := pts[idx[i]], pts[idx[i+1]], pts[idx[i+2]]
		area += 0.5 * b.Sub(a).Cross(c.Sub(a))
	}
	if math.Abs(area-4) > epsilon {
		t.Errorf("winding-2 area = %v, want 4", area)
	}

	if got := f.WindingTriangles(3); got != nil {
		t.Errorf("WindingTriangles(3) = %v, want nil", got)
	}
	if got := f.WindingTriangles(0); got != nil {
		t.Errorf("WindingTriangles(0) = %v, want nil", got)
	}
}

func TestFilledDegenerateInput(t *testing.T) {
	tests := []struct {
		name string
		path *Path
	}{
		{"empty path", NewPath()},
		{"bare move", NewPath().Move(Pt(3, 3))},
		{
			"collinear contour",
			NewPath().
				Move(Pt(0, 0)).
				LineTo(Pt(1, 0), StartsNewEdge).
				LineTo(Pt(2, 0), StartsNewEdge).
				EndContour(StartsNewEdge),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filled(t, tt.path)
			if got := f.Area(WindingNonzero); math.Abs(got) > epsilon {
				t.Errorf("Area(nonzero) = %v, want 0", got)
			}
		})
	}
}

func TestFilledCached(t *testing.T) {
	tp := squareInto(NewPath(), 0, 0, 1).Tessellation(0)
	f1, err := tp.Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	f2, err := tp.Filled()
	if err != nil {
		t.Fatalf("second Filled() error: %v", err)
	}
	if f1 != f2 {
		t.Error("Filled() did not reuse the cached preparation")
	}
}

func TestFilledArcTessellation(t *testing.T) {
	// Arc segments cannot enter the sweep directly; the fill works on
	// the linear tessellation of the companion path instead.
	f, err := circlePath(Pt(0, 0), 2).ArcTessellation(0.01).Filled()
	if err != nil {
		t.Fatalf("Filled() error: %v", err)
	}
	want := math.Pi * 4
	if got := f.Area(WindingNonzero); math.Abs(got-want) > 0.15 {
		t.Errorf("Area(nonzero) = %v, want %v within 0.15", got, want)
	}
	if got := f.Windings(); len(got) != 1 {
		t.Errorf("Windings() = %v, want a single winding", got)
	}
}
