// Package gg provides a 2D vector graphics rasterization engine for Go.
//
// # Overview
//
// gg is a Pure Go 2D graphics library inspired by fogleman/gg. It provides an
// immediate-mode drawing API similar to HTML Canvas, backed by a CPU
// rasterization core: curve flattening, stroke expansion, polygon
// rasterization and alpha compositing.
//
// # Quick Start
//
//	import "github.com/gogpu/gg"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc := gg.NewContext(512, 512)
//
//	// Draw shapes
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	// Save to PNG
//	dc.SavePNG("output.png")
//
// # API Compatibility
//
// The API is designed to be compatible with fogleman/gg for easy migration.
// Most fogleman/gg code should work with minimal changes.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, Path, Paint, Matrix, Brush
//   - Internal: raster (polygon scanning, sparse coverage), path (curve
//     flattening, fill plotting), stroke (pen/dasher/plotter expansion),
//     blend (Porter-Duff and W3C compositing)
//   - surface: a standalone Surface abstraction independent of Context
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise (toward +Y)
package gg
