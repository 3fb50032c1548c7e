package tess

import "math"

// Quadratic root solver behind the curve extrema computations, in the
// numerically careful shape of kurbo's solvers: coefficients are scaled
// by the leading term and every division is checked, so degenerate
// equations degrade to the lower-order solve instead of producing NaNs.

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in
// ascending order. A vanishing leading coefficient reduces to the
// linear equation; the all-zero equation reports the single root 0.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// The discriminant overflowed; the roots are far enough apart
		// that -sc1 and sc0/-sc1 are accurate on their own.
		return sortedRootPair(-sc1, sc0/-sc1)
	}
	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	// The textbook formula cancels for the root with the smaller
	// magnitude; take the larger root and divide out for the other.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedRootPair(root1, sc0/root1)
}

func sortedRootPair(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if b == 0 && c == 0 {
		return []float64{0}
	}
	return nil
}

// solveQuadraticInUnitInterval returns the roots of a*x^2 + b*x + c = 0
// that lie in [0, 1]. Roots within 1e-12 of a boundary are clamped onto
// it, so extrema that land on a curve endpoint are not lost to rounding.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var out []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r < -eps || r > 1+eps {
			continue
		}
		out = append(out, math.Min(math.Max(r, 0), 1))
	}
	return out
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
