// Package tess provides path tessellation for 2D vector graphics in Go.
//
// # Overview
//
// tess is a Pure Go tessellation library designed to integrate with the
// GoGPU ecosystem. It approximates paths built from line segments,
// quadratic and cubic beziers and circular arcs by chains of line and
// arc segments with bounded error, and triangulates the results for
// filling under the usual winding rules.
//
// # Quick Start
//
//	import "github.com/gogpu/tess"
//
//	// Build a path
//	p := tess.NewPath()
//	p.Move(tess.Pt(0, 0)).
//		QuadraticTo(tess.Pt(1, 1), tess.Pt(2, 0), tess.StartsNewEdge).
//		EndContour(tess.StartsNewEdge)
//
//	// Tessellate with a maximum deviation of 0.01 units
//	t := p.Tessellation(0.01)
//
//	// Triangulate for filling
//	f, err := t.Filled()
//	if err != nil {
//		// degenerate input
//	}
//	tris := f.Triangles(tess.WindingNonzero)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, TessellatedPath, FilledPath, StrokedPath, Matrix
//   - Internal: sweep (polygon triangulation)
//   - GPU support: shader (uber shader assembly, pipeline recipes)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, positive is counter-clockwise with y up
package tess

// Version is the library version.
const Version = "0.1.0-alpha.1"
