// Package stroke expands stroked paths into filled polygon contours.
//
// Stroking turns a path plus a Stroke style (width, cap, join, dash) into
// the set of closed contours a non-zero-rule fill would need to reproduce
// the stroked outline. The package is organized around four pieces:
//
//   - Pen: a rounded or polygonal cross-section swept along the path,
//     sampled from its VertexRange at a given angle.
//   - Face: the forward and backward offset curves traced alongside the
//     flattened path at distance width/2.
//   - Dasher: splits a flattened path into on/off segments according to a
//     dash pattern and offset before the Face/Pen stage sees it.
//   - Plotter: drives flattening, dashing, offsetting, and capping/joining
//     together and emits the final contours.
//
// # Line caps
//
//   - LineCapButt: flat, ending exactly at the endpoint
//   - LineCapRound: semicircular, radius width/2
//   - LineCapSquare: square, extending width/2 past the endpoint
//
// # Line joins
//
//   - LineJoinMiter: sharp corner, falls back to bevel past MiterLimit
//   - LineJoinRound: circular arc at the corner
//   - LineJoinBevel: straight line across the corner
//
// # Usage
//
//	style := stroke.Stroke{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	elements := []stroke.PathElement{
//	    stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 0}},
//	    stroke.LineTo{Point: stroke.Point{X: 100, Y: 100}},
//	}
//
//	contours := stroke.Plot(elements, style, 0.1, nil)
package stroke
