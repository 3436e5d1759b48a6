package stroke

// FlattenCubic decomposes the cubic Bezier (a, b, c, d) into line segments
// such that the squared deviation from the curve is bounded by
// tolerance^2, using recursive de Casteljau midpoint subdivision. out
// receives a LineTo for every produced point except the curve's own start
// (the caller already holds that point); it always receives a final LineTo
// to d.
func FlattenCubic(a, b, c, d Point, tolerance float64, out LineCurvePlotter) {
	if a.Equal(b) && c.Equal(d) {
		out.LineTo(d)
		return
	}
	flattenCubicRec(a, b, c, d, tolerance*tolerance, a, out)
	out.LineTo(d)
}

// flattenCubicRec recurses until the chord-projection error estimate drops
// below tol2 (tolerance squared), then emits a LineTo for the subcurve's
// start point a (unless it's the original curve start, origStart).
func flattenCubicRec(a, b, c, d Point, tol2 float64, origStart Point, out LineCurvePlotter) {
	if cubicError(a, b, c, d) < tol2 {
		if !a.Equal(origStart) {
			out.LineTo(a)
		}
		return
	}

	ab := a.Add(b).Scale(0.5)
	bc := b.Add(c).Scale(0.5)
	cd := c.Add(d).Scale(0.5)
	abbc := ab.Add(bc).Scale(0.5)
	bccd := bc.Add(cd).Scale(0.5)
	mid := abbc.Add(bccd).Scale(0.5)

	flattenCubicRec(a, ab, abbc, mid, tol2, origStart, out)
	flattenCubicRec(mid, bccd, cd, d, tol2, origStart, out)
}

// cubicError estimates the squared deviation of control points b, c from
// the chord a->d: project b-a and c-a onto d-a; if the projection exceeds
// the chord's squared length, measure from d instead.
func cubicError(a, b, c, d Point) float64 {
	chord := d.Sub(a)
	chordLen2 := chord.LengthSquared()

	if chordLen2 == 0 {
		// a == d: use raw offsets from a.
		return maxPerp2(b.Sub(a), c.Sub(a), chord)
	}

	errB := perp2FromChord(b.Sub(a), chord, chordLen2, b, d)
	errC := perp2FromChord(c.Sub(a), chord, chordLen2, c, d)
	if errB > errC {
		return errB
	}
	return errC
}

// perp2FromChord returns the squared perpendicular distance of point from
// the chord a->d (chord = d-a, v = point-a), switching to measuring from d
// when the projection of v onto chord exceeds the chord's squared length.
func perp2FromChord(v, chord Point, chordLen2 float64, point, d Point) float64 {
	dot := v.Dot(chord)
	if dot > chordLen2 {
		w := point.Sub(d)
		return w.LengthSquared()
	}
	cross := v.Cross(chord)
	return (cross * cross) / chordLen2
}

// maxPerp2 returns the larger of |u|^2, |v|^2 for the degenerate a==d case,
// where chord has zero length and raw offsets are used directly.
func maxPerp2(u, v, _ Point) float64 {
	lu := u.LengthSquared()
	lv := v.LengthSquared()
	if lu > lv {
		return lu
	}
	return lv
}
