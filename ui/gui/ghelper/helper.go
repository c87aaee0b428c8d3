package ghelper

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"cellboard/src/cell"
)

// RenderRoundedRect renders a uniformly rounded rect (buttons, modals).
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

// cornerPath traces a rect with independent corner radii; this is what
// lets only the four outer board corners carry rounding.
func cornerPath(dc *gg.Context, x, y, w, h float64, c cell.Corners) {
	dc.NewSubPath()
	dc.MoveTo(x+c.TopLeft, y)
	dc.LineTo(x+w-c.TopRight, y)
	if c.TopRight > 0 {
		dc.DrawArc(x+w-c.TopRight, y+c.TopRight, c.TopRight, -math.Pi/2, 0)
	}
	dc.LineTo(x+w, y+h-c.BottomRight)
	if c.BottomRight > 0 {
		dc.DrawArc(x+w-c.BottomRight, y+h-c.BottomRight, c.BottomRight, 0, math.Pi/2)
	}
	dc.LineTo(x+c.BottomLeft, y+h)
	if c.BottomLeft > 0 {
		dc.DrawArc(x+c.BottomLeft, y+h-c.BottomLeft, c.BottomLeft, math.Pi/2, math.Pi)
	}
	dc.LineTo(x, y+c.TopLeft)
	if c.TopLeft > 0 {
		dc.DrawArc(x+c.TopLeft, y+c.TopLeft, c.TopLeft, math.Pi, 1.5*math.Pi)
	}
	dc.ClosePath()
}

// RenderCellImage rasterizes one composed cell style into a square image
// of the given side.
func RenderCellImage(side int, s cell.Style) *ebiten.Image {
	dc := gg.NewContext(side, side)
	var corners cell.Corners
	if s.Corners != nil {
		corners = *s.Corners
	}
	cornerPath(dc, 0, 0, float64(side), float64(side), corners)
	if s.Fill != nil {
		dc.SetRGBA255(int(s.Fill.R), int(s.Fill.G), int(s.Fill.B), int(s.Fill.A))
	} else {
		dc.SetRGBA255(0, 0, 0, 0)
	}
	dc.Fill()
	if s.Ring != nil && s.Ring.Width > 0 {
		in := s.Ring.Width / 2
		cornerPath(dc, in, in, float64(side)-2*in, float64(side)-2*in, corners)
		dc.SetRGBA255(int(s.Ring.Color.R), int(s.Ring.Color.G), int(s.Ring.Color.B), int(s.Ring.Color.A))
		dc.SetLineWidth(s.Ring.Width)
		dc.Stroke()
	}
	return ebiten.NewImageFromImage(dc.Image())
}

// RenderArrowOverlay draws annotation arrows into a transparent overlay
// sized to the board.
func RenderArrowOverlay(size int, arrows [][4]float64, col color.RGBA) *ebiten.Image {
	dc := gg.NewContext(size, size)
	dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
	for _, a := range arrows {
		drawArrow(dc, a[0], a[1], a[2], a[3], float64(size)/64)
	}
	return ebiten.NewImageFromImage(dc.Image())
}

func drawArrow(dc *gg.Context, x0, y0, x1, y1, w float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length < 1 {
		return
	}
	ux, uy := dx/length, dy/length
	head := w * 3
	// shaft
	dc.SetLineWidth(w * 1.6)
	dc.DrawLine(x0, y0, x1-ux*head, y1-uy*head)
	dc.Stroke()
	// head
	px, py := -uy, ux
	dc.NewSubPath()
	dc.MoveTo(x1, y1)
	dc.LineTo(x1-ux*head+px*head*0.6, y1-uy*head+py*head*0.6)
	dc.LineTo(x1-ux*head-px*head*0.6, y1-uy*head-py*head*0.6)
	dc.ClosePath()
	dc.Fill()
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// DrawRectStroke draws an axis-aligned stroked rectangle directly on the
// screen without allocating an offscreen context.
func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	maxTh := math.Min(w, h) / 2
	if thickness > maxTh {
		thickness = maxTh
	}

	px := ebiten.NewImage(1, 1)
	px.Fill(col)

	// top
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, thickness)
	op.GeoM.Translate(x, y)
	screen.DrawImage(px, op)

	// bottom
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, thickness)
	op.GeoM.Translate(x, y+h-thickness)
	screen.DrawImage(px, op)

	// left
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(thickness, h-thickness*2)
	op.GeoM.Translate(x, y+thickness)
	screen.DrawImage(px, op)

	// right
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(thickness, h-thickness*2)
	op.GeoM.Translate(x+w-thickness, y+thickness)
	screen.DrawImage(px, op)
}
