package tess

import "math"

// Rect adds an axis-aligned rectangle contour.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.Move(Pt(x, y)).
		LineTo(Pt(x+w, y), StartsNewEdge).
		LineTo(Pt(x+w, y+h), StartsNewEdge).
		LineTo(Pt(x, y+h), StartsNewEdge).
		EndContour(StartsNewEdge)
}

// RoundRect adds a rectangle contour with circular corners of radius
// r. The corner arcs continue the straight sides smoothly, so the
// contour strokes without joins.
func (p *Path) RoundRect(x, y, w, h, r float64) *Path {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return p.Rect(x, y, w, h)
	}
	quarter := math.Pi / 2
	return p.Move(Pt(x+r, y)).
		LineTo(Pt(x+w-r, y), StartsNewEdge).
		ArcTo(quarter, Pt(x+w, y+r), ContinuesEdge).
		LineTo(Pt(x+w, y+h-r), ContinuesEdge).
		ArcTo(quarter, Pt(x+w-r, y+h), ContinuesEdge).
		LineTo(Pt(x+r, y+h), ContinuesEdge).
		ArcTo(quarter, Pt(x, y+h-r), ContinuesEdge).
		LineTo(Pt(x, y+r), ContinuesEdge).
		EndContourArc(quarter, ContinuesEdge)
}

// Circle adds a circle contour of two half arcs.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Move(Pt(cx+r, cy)).
		ArcTo(math.Pi, Pt(cx-r, cy), StartsNewEdge).
		EndContourArc(math.Pi, ContinuesEdge)
}

// Ellipse adds an axis-aligned ellipse contour of four cubics.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	kx := 0.5522847498 * rx
	ky := 0.5522847498 * ry
	return p.Move(Pt(cx+rx, cy)).
		CubicTo(Pt(cx+rx, cy+ky), Pt(cx+kx, cy+ry), Pt(cx, cy+ry), StartsNewEdge).
		CubicTo(Pt(cx-kx, cy+ry), Pt(cx-rx, cy+ky), Pt(cx-rx, cy), ContinuesEdge).
		CubicTo(Pt(cx-rx, cy-ky), Pt(cx-kx, cy-ry), Pt(cx, cy-ry), ContinuesEdge).
		EndContourCubic(Pt(cx+kx, cy-ry), Pt(cx+rx, cy-ky), ContinuesEdge)
}

// Polygon adds a regular polygon contour with the given number of
// sides, the first vertex at the top.
func (p *Path) Polygon(cx, cy, radius float64, sides int) *Path {
	if sides < 3 {
		return p
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		pt := Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		if i == 0 {
			p.Move(pt)
		} else {
			p.LineTo(pt, StartsNewEdge)
		}
	}
	return p.EndContour(StartsNewEdge)
}

// Star adds a star contour alternating between the outer and inner
// radius, the first point at the top.
func (p *Path) Star(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	if points < 3 {
		return p
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		pt := Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			p.Move(pt)
		} else {
			p.LineTo(pt, StartsNewEdge)
		}
	}
	return p.EndContour(StartsNewEdge)
}
