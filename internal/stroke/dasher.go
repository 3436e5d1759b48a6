package stroke

// Dasher tracks on/off phase through a dash pattern as a stroke is plotted.
// It holds its own copy of the pattern (the root package's Dash type is not
// reachable here, to avoid an import cycle) plus the phase offset and
// runtime state (index, remain, on).
type Dasher struct {
	dashes []float64
	offset float64

	index  int
	remain float64
	on     bool
}

// NewDasher validates dashes (non-empty, at least one positive entry) and
// returns a Dasher initialized at the given phase offset. Returns nil if
// the pattern is not active.
func NewDasher(dashes []float64, offset float64) *Dasher {
	if !PatternActive(dashes) {
		return nil
	}
	d := &Dasher{dashes: append([]float64(nil), dashes...), offset: offset}
	d.reset()
	return d
}

// PatternActive reports whether a dash pattern is active: non-empty and
// containing at least one strictly-positive entry.
func PatternActive(dashes []float64) bool {
	for _, v := range dashes {
		if v > 0 {
			return true
		}
	}
	return false
}

// reset restores the initial-after-offset state.
func (d *Dasher) reset() {
	d.index = 0
	d.on = true
	d.remain = d.dashes[0]

	remain := d.offset
	for remain < 0 || remain > d.dashes[d.index] {
		if remain < 0 {
			d.index = (d.index - 1 + len(d.dashes)) % len(d.dashes)
			d.on = !d.on
			remain += d.dashes[d.index]
		} else {
			remain -= d.dashes[d.index]
			d.index = (d.index + 1) % len(d.dashes)
			d.on = !d.on
		}
	}
	d.remain = d.dashes[d.index] - remain
}

// Reset restores the Dasher to its initial-after-offset state.
func (d *Dasher) Reset() { d.reset() }

// On reports whether the dasher is currently in an "on" (drawn) segment.
func (d *Dasher) On() bool { return d.on }

// Remain returns the remaining length in the current dash entry.
func (d *Dasher) Remain() float64 { return d.remain }

// Step consumes len units of path length, toggling on/off and advancing
// through the pattern as entries are exhausted. Returns true if at least
// one on/off transition occurred.
func (d *Dasher) Step(length float64) bool {
	transitioned := false
	d.remain -= length
	for d.remain <= 0 {
		d.on = !d.on
		d.index = (d.index + 1) % len(d.dashes)
		d.remain += d.dashes[d.index]
		transitioned = true
		if d.dashes[d.index] == 0 && len(d.dashes) > 1 {
			continue
		}
	}
	return transitioned
}
