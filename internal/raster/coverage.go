package raster

import "math"

// run is one coverage run: pixels [x, x+length) all carry value, in the
// range [0, scale*scale].
type run struct {
	x, length int
	value     int
}

// Coverage is a run-length-encoded accumulator of per-pixel subpixel
// coverage for one scanline, used to rasterize at supersampling scale s
// (currently 4) without allocating a full subpixel-resolution row.
type Coverage struct {
	scale int
	runs  []run // ascending by x, covering [0, highWater) with no gaps
}

// NewCoverage returns an empty coverage buffer at the given supersampling
// scale.
func NewCoverage(scale int) *Coverage {
	return &Coverage{scale: scale}
}

// Reset empties the buffer for reuse on the next scanline.
func (c *Coverage) Reset() {
	c.runs = c.runs[:0]
}

func (c *Coverage) highWater() int {
	if len(c.runs) == 0 {
		return 0
	}
	last := c.runs[len(c.runs)-1]
	return last.x + last.length
}

// extend ensures the run list has a boundary at x and at x+length,
// splitting an existing run if either falls strictly inside it, and
// appending a zero-coverage run past the current high-water mark so the
// requested range is always covered.
func (c *Coverage) extend(x, length int) {
	hi := x + length
	if high := c.highWater(); high < hi {
		c.runs = append(c.runs, run{x: high, length: hi - high, value: 0})
	}
	c.splitAt(x)
	c.splitAt(hi)
}

func (c *Coverage) splitAt(x int) {
	for i, r := range c.runs {
		if x > r.x && x < r.x+r.length {
			left := run{x: r.x, length: x - r.x, value: r.value}
			right := run{x: x, length: r.x + r.length - x, value: r.value}
			rest := append([]run{left, right}, c.runs[i+1:]...)
			c.runs = append(c.runs[:i], rest...)
			return
		}
	}
}

// get returns the coverage value and run length starting at x.
func (c *Coverage) get(x int) (value, length int) {
	for _, r := range c.runs {
		if x >= r.x && x < r.x+r.length {
			return r.value, r.x + r.length - x
		}
	}
	return 0, 0
}

// put overwrites [x, x+length) with a single uniform value.
func (c *Coverage) put(x, value, length int) {
	if length <= 0 {
		return
	}
	c.extend(x, length)
	for i := range c.runs {
		if c.runs[i].x == x && c.runs[i].length == length {
			c.runs[i].value = value
			return
		}
	}
}

// addSpan accumulates one subpixel-resolution span [x_sub, x_sub+len_sub)
// into the buffer: full-coverage pixels in the middle, partial coverage at
// the boundaries, following the pixel/offset decomposition of x_sub.
func (c *Coverage) addSpan(xSub, lenSub int) {
	if lenSub <= 0 {
		return
	}
	s := c.scale
	x := xSub / s
	off := xSub - x*s

	if off == 0 && lenSub >= s {
		full := lenSub / s
		c.addRange(x, full, s)
		rem := lenSub - full*s
		if rem > 0 {
			c.addRange(x+full, 1, rem)
		}
		return
	}

	first := s - off
	if first > lenSub {
		first = lenSub
	}
	if first > s {
		first = s
	}
	c.addRange(x, 1, first)
	remaining := lenSub - first
	px := x + 1
	for remaining >= s {
		c.addRange(px, 1, s)
		remaining -= s
		px++
	}
	if remaining > 0 {
		c.addRange(px, 1, remaining)
	}
}

// addRange adds delta to each of count consecutive pixels starting at x.
func (c *Coverage) addRange(x, count, delta int) {
	for i := 0; i < count; i++ {
		px := x + i
		c.extend(px, 1)
		v, length := c.get(px)
		c.put(px, v+delta, length)
	}
}

// ToAlpha scales accumulated coverage to 8-bit alpha for pixels
// [0, width), with fast paths for fully-empty and fully-covered pixels.
func (c *Coverage) ToAlpha(width int) []uint8 {
	out := make([]uint8, width)
	maxVal := c.scale * c.scale
	for x := 0; x < width; x++ {
		v, _ := c.get(x)
		switch {
		case v <= 0:
			out[x] = 0
		case v >= maxVal:
			out[x] = 255
		default:
			out[x] = uint8(math.Round(255 * float64(v) / float64(maxVal)))
		}
	}
	return out
}
