package tess

import "math"

// Matrix is a 2x3 affine transform in row-major order,
//
//	| A B C |
//	| D E F |
//
// mapping (x, y) to (A*x + B*y + C, D*x + E*y + F). Coverage applies
// one to place path coordinates onto the pixel grid.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform moving points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform scaling by x horizontally and y vertically.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate returns a transform rotating by angle radians,
// counter-clockwise in a y-up coordinate system.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Shear returns a transform adding x times the y coordinate to x and y
// times the x coordinate to y.
func Shear(x, y float64) Matrix {
	return Matrix{A: 1, B: x, D: y, E: 1}
}

// Multiply returns the composed transform applying other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint returns p transformed by m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// MaxScaleFactor returns the largest factor by which the matrix scales
// any direction: the maximum singular value of the linear part.
// Dividing a device-space tessellation threshold by this factor gives a
// path-space threshold that still meets it after transformation.
func (m Matrix) MaxScaleFactor() float64 {
	// Largest eigenvalue of M^T M via trace and discriminant.
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	return math.Sqrt((p + r + disc) / 2)
}
