package gg

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing.
//
// Stroke geometry (width, cap, join, miter limit, dash) can be set either
// through the flat LineWidth/LineCap/LineJoin/MiterLimit fields, for simple
// callers, or through the Stroke field, for dashed or preset strokes (see
// stroke.go). When Stroke is non-nil it takes precedence; GetStroke
// synthesizes one from the flat fields otherwise.
type Paint struct {
	// Pattern is the legacy fill or stroke pattern.
	Pattern Pattern

	// Brush is the fill or stroke brush. Takes precedence over Pattern
	// when both are set (see PainterFromPaint).
	Brush Brush

	// LineWidth is the width of strokes.
	LineWidth float64

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins.
	MiterLimit float64

	// FillRule is the fill rule for paths.
	FillRule FillRule

	// Antialias enables anti-aliasing.
	Antialias bool

	// Tolerance is the maximum deviation, in device pixels, allowed when
	// flattening curves to line segments. Zero means "use the renderer
	// default".
	Tolerance float64

	// Stroke, when non-nil, overrides LineWidth/LineCap/LineJoin/MiterLimit
	// and additionally carries a dash pattern.
	Stroke *Stroke

	// TransformScale is the scale factor of the current transform at the
	// time of a Stroke call (see Matrix.ScaleFactor). The renderer uses it
	// to keep stroke widths visually consistent under non-uniform scales.
	TransformScale float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Pattern:        NewSolidPattern(Black),
		LineWidth:      1.0,
		LineCap:        LineCapButt,
		LineJoin:       LineJoinMiter,
		MiterLimit:     4.0,
		FillRule:       FillRuleNonZero,
		Antialias:      true,
		TransformScale: 1.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	clone := *p
	if p.Stroke != nil {
		s := p.Stroke.Clone()
		clone.Stroke = &s
	}
	return &clone
}

// SetBrush sets the brush used for both fill and stroke operations.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
}

// GetBrush returns the current brush, falling back to the legacy Pattern
// wrapped as a Brush if no Brush has been set.
func (p *Paint) GetBrush() Brush {
	if p.Brush != nil {
		return p.Brush
	}
	if p.Pattern != nil {
		return BrushFromPattern(p.Pattern)
	}
	return Solid(Black)
}

// SetStroke replaces the stroke configuration wholesale.
func (p *Paint) SetStroke(s Stroke) {
	p.Stroke = &s
}

// GetStroke returns the effective stroke configuration, synthesizing one
// from the flat LineWidth/LineCap/LineJoin/MiterLimit fields when Stroke
// has not been set explicitly.
func (p *Paint) GetStroke() Stroke {
	if p.Stroke != nil {
		return *p.Stroke
	}
	return Stroke{
		Width:      p.LineWidth,
		Cap:        p.LineCap,
		Join:       p.LineJoin,
		MiterLimit: p.MiterLimit,
	}
}

// IsDashed returns true if the current stroke uses an active dash pattern.
func (p *Paint) IsDashed() bool {
	return p.Stroke != nil && p.Stroke.IsDashed()
}
