package tess

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// Coverage rasterizes the triangles selected by rule into an 8-bit
// alpha mask of the given size. transform maps path coordinates to
// pixel coordinates. The triangles of a region tile it without
// overlap, so the accumulated coverage does not depend on the
// rasterizer's own fill convention.
func (f *FilledPath) Coverage(rule WindingRule, width, height int, transform Matrix) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	idx := f.Triangles(rule)
	if len(idx) == 0 || width <= 0 || height <= 0 {
		return dst
	}

	r := vector.NewRasterizer(width, height)
	for i := 0; i+2 < len(idx); i += 3 {
		a := transform.TransformPoint(f.points[idx[i]])
		b := transform.TransformPoint(f.points[idx[i+1]])
		c := transform.TransformPoint(f.points[idx[i+2]])
		r.MoveTo(float32(a.X), float32(a.Y))
		r.LineTo(float32(b.X), float32(b.Y))
		r.LineTo(float32(c.X), float32(c.Y))
		r.ClosePath()
	}
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})
	return dst
}
