package stroke

// plotDashed is the dashed variant of Plot: each subpath's flattened
// polyline is walked segment by segment, using a Dasher to split it into
// "on" runs (plotted as ordinary open strokes, joins between their
// sub-points) and "off" gaps (which simply break the run). Zero-length on
// runs are rendered as dots.
func plotDashed(elements []PathElement, style Stroke, tolerance float64, transform Transform, pen *Pen, thickness float64) [][]Point {
	var out [][]Point

	for _, sp := range flattenSubpaths(elements, tolerance) {
		pts := sp.pts
		if len(pts) < 2 {
			continue
		}

		dasher := NewDasher(style.Dashes, style.DashOffset)
		if dasher == nil {
			out = append(out, plotSubpath(pts, sp.closed, style, thickness, pen, transform)...)
			continue
		}

		var run []Point
		flushRun := func() {
			if len(run) == 0 {
				return
			}
			if len(run) == 1 {
				out = append(out, plotDot(run[0], style, pen)...)
			} else {
				out = append(out, plotSubpath(run, false, style, thickness, pen, transform)...)
			}
			run = nil
		}

		if dasher.On() {
			run = append(run, pts[0])
		}

		for i := 0; i+1 < len(pts); i++ {
			p0, p1 := pts[i], pts[i+1]
			segLen := segmentUserLength(p0, p1, transform)
			if segLen <= 0 {
				continue
			}

			remaining := segLen
			cursor := 0.0
			for remaining > 0 {
				step := dasher.Remain()
				if step <= 0 || step > remaining {
					step = remaining
				}
				cursor += step
				remaining -= step
				boundary := lerp(p0, p1, cursor/segLen)

				wasOn := dasher.On()
				dasher.Step(step)
				nowOn := dasher.On()

				if wasOn {
					run = append(run, boundary)
				}
				if wasOn && !nowOn {
					flushRun()
				} else if !wasOn && nowOn {
					run = append(run, boundary)
				}
			}
		}
		flushRun()
	}

	return out
}

// segmentUserLength returns the user-space length of the device-space
// segment p0->p1, inverse-transforming the slope when a non-identity
// transform is active.
func segmentUserLength(p0, p1 Point, transform Transform) float64 {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if transform == nil || transform.IsIdentity() {
		return Point{dx, dy}.Length()
	}
	ux, uy, err := transform.DeviceToUserDistance(dx, dy)
	if err != nil {
		return Point{dx, dy}.Length()
	}
	return Point{ux, uy}.Length()
}

func lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}
