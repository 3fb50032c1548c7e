package tess

import (
	"image"
	"math"
	"testing"
)

// maskMass sums a mask's coverage in units of fully covered pixels.
func maskMass(m *image.Alpha) float64 {
	sum := 0.0
	for _, a := range m.Pix {
		sum += float64(a)
	}
	return sum / 255
}

func TestCoverageUnitSquare(t *testing.T) {
	f := filled(t, squareInto(NewPath(), 0, 0, 1))
	mask := f.Coverage(WindingNonzero, 10, 10, Scale(10, 10))

	if got := mask.Bounds(); got != image.Rect(0, 0, 10, 10) {
		t.Fatalf("Bounds() = %v, want (0,0)-(10,10)", got)
	}
	if got := mask.AlphaAt(5, 5).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
	if got := mask.AlphaAt(1, 1).A; got != 255 {
		t.Errorf("alpha at (1,1) = %d, want 255", got)
	}
	if got := maskMass(mask); math.Abs(got-100) > 0.5 {
		t.Errorf("mask mass = %v, want 100", got)
	}
}

func TestCoverageWindingRules(t *testing.T) {
	p := squareInto(NewPath(), 0, 0, 4)
	squareInto(p, 1, 1, 2)
	f := filled(t, p)

	t.Run("nonzero", func(t *testing.T) {
		mask := f.Coverage(WindingNonzero, 40, 40, Scale(10, 10))
		if got := mask.AlphaAt(20, 20).A; got != 255 {
			t.Errorf("inner alpha = %d, want 255", got)
		}
		if got := maskMass(mask); math.Abs(got-1600) > 1 {
			t.Errorf("mask mass = %v, want 1600", got)
		}
	})

	t.Run("odd leaves the double-wound interior empty", func(t *testing.T) {
		mask := f.Coverage(WindingOdd, 40, 40, Scale(10, 10))
		if got := mask.AlphaAt(20, 20).A; got != 0 {
			t.Errorf("inner alpha = %d, want 0", got)
		}
		if got := mask.AlphaAt(5, 20).A; got != 255 {
			t.Errorf("ring alpha = %d, want 255", got)
		}
		if got := maskMass(mask); math.Abs(got-1200) > 1 {
			t.Errorf("mask mass = %v, want 1200", got)
		}
	})
}

func TestCoverageTransform(t *testing.T) {
	f := filled(t, squareInto(NewPath(), 0, 0, 1))
	mask := f.Coverage(WindingNonzero, 4, 4, Translate(2, 1))

	if got := mask.AlphaAt(2, 1).A; got != 255 {
		t.Errorf("alpha at (2,1) = %d, want 255", got)
	}
	if got := mask.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("alpha at (0,0) = %d, want 0", got)
	}
	if got := maskMass(mask); math.Abs(got-1) > 0.01 {
		t.Errorf("mask mass = %v, want 1", got)
	}
}

func TestCoverageDegenerate(t *testing.T) {
	f := filled(t, NewPath())
	mask := f.Coverage(WindingNonzero, 8, 8, Identity())
	if got := maskMass(mask); got != 0 {
		t.Errorf("empty path mask mass = %v, want 0", got)
	}

	square := filled(t, squareInto(NewPath(), 0, 0, 1))
	if mask := square.Coverage(WindingNonzero, 0, 0, Identity()); len(mask.Pix) != 0 {
		t.Errorf("zero-size mask has %d pixels, want 0", len(mask.Pix))
	}
}
