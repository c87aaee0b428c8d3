package cell

import (
	"image/color"

	"cellboard/src/base"
)

// Style is one conditional fragment of a cell's appearance. Fragments are
// layered with Merge: a set (non-nil) field of the upper fragment replaces
// the lower one, unset fields show through.
type Style struct {
	Fill    *color.RGBA
	Corners *Corners
	Ring    *Ring
}

// Corners holds per-corner rounding radii in pixels.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Ring is an inset outline drawn on top of the fill.
type Ring struct {
	Color color.RGBA
	Width float64
}

func Fill(c color.RGBA) Style {
	return Style{Fill: &c}
}

func (s Style) Merge(over Style) Style {
	out := s
	if over.Fill != nil {
		out.Fill = over.Fill
	}
	if over.Corners != nil {
		out.Corners = over.Corners
	}
	if over.Ring != nil {
		out.Ring = over.Ring
	}
	return out
}

func (s Style) IsZero() bool {
	return s.Fill == nil && s.Corners == nil && s.Ring == nil
}

// Theme carries the board-level style fragments every cell composes from.
type Theme struct {
	Light        Style
	Dark         Style
	PremoveLight Style
	PremoveDark  Style
	DropHover    Style
	CornerRadius float64
}

// Inputs is everything ComposeCell and ComposeContent depend on. Both are
// pure: same inputs, same style.
type Inputs struct {
	Square      base.Square
	Color       base.CellColor
	Orientation base.Orientation
	Premove     bool
	Over        bool
	Custom      *Style
	Theme       Theme
	BoardWidth  int
}

// CornerStyle returns the rounding fragment for the four literal board
// corners; every other square gets an empty style. Which edge of a corner
// square is rounded depends on the viewing side: a8 sits top-left seen
// from white and bottom-right seen from black.
func CornerStyle(sq base.Square, o base.Orientation, radius float64) Style {
	if radius <= 0 {
		return Style{}
	}
	white := o == base.WhiteSide
	var c Corners
	switch sq {
	case base.A1:
		if white {
			c.BottomLeft = radius
		} else {
			c.TopRight = radius
		}
	case base.H1:
		if white {
			c.BottomRight = radius
		} else {
			c.TopLeft = radius
		}
	case base.A8:
		if white {
			c.TopLeft = radius
		} else {
			c.BottomRight = radius
		}
	case base.H8:
		if white {
			c.TopRight = radius
		} else {
			c.BottomLeft = radius
		}
	default:
		return Style{}
	}
	return Style{Corners: &c}
}

// ComposeCell layers the cell's final style: corner rounding, base color,
// premove override (replaces the base), drop-hover override, then the
// per-cell custom override. A premove highlight suppresses the custom
// override entirely.
func ComposeCell(in Inputs) Style {
	s := CornerStyle(in.Square, in.Orientation, in.Theme.CornerRadius)

	if in.Color == base.LightCell {
		s = s.Merge(in.Theme.Light)
	} else {
		s = s.Merge(in.Theme.Dark)
	}

	if in.Premove {
		if in.Color == base.LightCell {
			s = s.Merge(in.Theme.PremoveLight)
		} else {
			s = s.Merge(in.Theme.PremoveDark)
		}
	}

	if in.Over {
		s = s.Merge(in.Theme.DropHover)
	}

	if !in.Premove && in.Custom != nil {
		s = s.Merge(*in.Custom)
	}
	return s
}

// ContentStyle sizes and aligns the cell's inner content wrapper.
type ContentStyle struct {
	Side     float64
	Centered bool
	Style    Style
}

// ComposeContent produces the inner wrapper style: a fixed square of one
// eighth of the board width, centered, with the same premove-gated custom
// override as the outer layer.
func ComposeContent(in Inputs) ContentStyle {
	cs := ContentStyle{
		Side:     float64(in.BoardWidth) / 8,
		Centered: true,
	}
	if !in.Premove && in.Custom != nil {
		cs.Style = cs.Style.Merge(*in.Custom)
	}
	return cs
}
