package cli

import (
	"fmt"
	"image/color"
	"io"

	"cellboard/src"
	"cellboard/src/base"
	"cellboard/src/cell"
)

const ansiReset = "\033[0m"

// truecolor SGR sequences from the composed style's fill
func bgOf(c color.RGBA) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

func fgOf(c color.RGBA) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// DrawCells paints the 8x8 character grid from each cell's composed
// frame. Every visual layer comes out of the same composition the GUI
// renders, so a style override or premove mark looks the same here.
func DrawCells(out io.Writer, b *src.BoardController, cells *[64]*cell.Cell, cursor base.Square) {
	files := "   a  b  c  d  e  f  g  h"
	if b.Orientation() == base.BlackSide {
		files = "   h  g  f  e  d  c  b  a"
	}
	fmt.Fprintf(out, "%s\r\n", files)

	for gy := 0; gy < 8; gy++ {
		rank := 8 - gy
		if b.Orientation() == base.BlackSide {
			rank = gy + 1
		}
		fmt.Fprintf(out, "%d ", rank)
		for gx := 0; gx < 8; gx++ {
			sq := squareAt(b.Orientation(), gx, gy)
			fr := cells[sq].Frame()
			fmt.Fprint(out, renderCell(b, fr, sq == cursor))
		}
		fmt.Fprintf(out, "%s %d\r\n", ansiReset, rank)
	}
	fmt.Fprintf(out, "%s\r\n", files)
}

func squareAt(o base.Orientation, gx, gy int) base.Square {
	sq := base.NewSquare(gx, 7-gy)
	if o == base.BlackSide {
		sq = base.NewSquare(7-sq.File(), 7-sq.Rank())
	}
	return sq
}

// renderCell emits one three-column cell: background from the composed
// fill, a glyph for the piece, and ring styling as bracket characters.
func renderCell(b *src.BoardController, fr cell.Frame, cursor bool) string {
	var bg string
	if fr.Style.Fill != nil {
		bg = bgOf(*fr.Style.Fill)
	}

	glyph := " "
	var fg string
	if p, ok := b.PieceAt(fr.Square); ok {
		glyph = p.Glyph()
		if p.IsWhite() {
			fg = fgOf(color.RGBA{0xff, 0xff, 0xff, 0xff})
		} else {
			fg = fgOf(color.RGBA{0x10, 0x10, 0x10, 0xff})
		}
	}

	left, right := " ", " "
	if fr.Style.Ring != nil {
		left, right = "[", "]"
	}

	s := fmt.Sprintf("%s%s%s%s%s", bg, fg, left, glyph, right)
	if cursor {
		s = "\033[7m" + s // inverse video marks the cursor
	}
	return s + ansiReset
}
