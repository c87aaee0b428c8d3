// Package gimages builds piece sprites at runtime with gg instead of
// shipping bitmap assets: a disc in the piece color with its letter.
package gimages

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"cellboard/src/base"
)

var pieces = []base.Piece{
	base.WPawn, base.WKnight, base.WBishop, base.WRook, base.WQueen, base.WKing,
	base.BPawn, base.BKnight, base.BBishop, base.BRook, base.BQueen, base.BKing,
}

// BuildPieceImages renders the twelve piece sprites at the given side.
func BuildPieceImages(side int) map[base.Piece]*ebiten.Image {
	out := make(map[base.Piece]*ebiten.Image, len(pieces))
	for _, p := range pieces {
		out[p] = renderPiece(p, side)
	}
	return out
}

func renderPiece(p base.Piece, side int) *ebiten.Image {
	dc := gg.NewContext(side, side)

	fill := color.RGBA{0xf8, 0xf8, 0xf8, 0xff}
	stroke := color.RGBA{0x20, 0x20, 0x20, 0xff}
	label := stroke
	if p.IsBlack() {
		fill = color.RGBA{0x26, 0x26, 0x26, 0xff}
		stroke = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
		label = stroke
	}

	c := float64(side) / 2
	r := float64(side) * 0.36
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawCircle(c, c, r)
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(float64(side) / 24)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGBA255(int(label.R), int(label.G), int(label.B), int(label.A))
	letter := string([]rune{toUpper(p.Rune())})
	dc.DrawStringAnchored(letter, c, c, 0.5, 0.35)

	return ebiten.NewImageFromImage(dc.Image())
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
