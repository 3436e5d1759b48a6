// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides a unified surface abstraction for 2D rendering.
//
// Surface is the core rendering target abstraction that decouples drawing
// operations from their implementation, following the Cairo/Skia pattern
// where surfaces are rendering targets independent of the drawing context.
//
// # Surface Types
//
//   - ImageSurface: CPU-based rendering to *image.RGBA, backed by the
//     internal path/stroke/raster pipeline (path flattening, stroke
//     expansion, polygon rasterization).
//
// # Usage
//
// Basic usage with ImageSurface:
//
//	// Create a CPU-based surface
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	// Clear with white background
//	s.Clear(color.White)
//
//	// Create a path
//	path := surface.NewPath()
//	path.MoveTo(100, 100)
//	path.LineTo(200, 100)
//	path.LineTo(150, 200)
//	path.Close()
//
//	// Fill with red
//	s.Fill(path, surface.FillStyle{
//	    Color: color.RGBA{255, 0, 0, 255},
//	    Rule:  surface.FillRuleNonZero,
//	})
//
//	// Get the result
//	img := s.Snapshot()
//
// # References
//
//   - Cairo: https://cairographics.org/manual/cairo-Image-Surfaces.html
//   - Skia: https://skia.org/docs/user/api/skcanvas_overview/
package surface
