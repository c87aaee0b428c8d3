package gboard

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/ui/gui/gctx"
	"cellboard/ui/gui/ghelper"
)

func (b *Board) Draw(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	ghelper.DrawRectStroke(screen,
		float64(b.boardX)-2, float64(b.boardY)-2,
		float64(b.boardSize)+4, float64(b.boardSize)+4,
		2, ctx.Theme.ButtonStroke)

	b.drawCells(ctx, screen)
	b.drawPieces(ctx, screen)
	b.drawSelection(ctx, screen)
	b.drawArrows(ctx, screen)
	b.drawAnimPiece(ctx, screen)
	b.drawDragGhost(ctx, screen)

	face := ctx.AssetsWorker.Face()
	for _, btn := range b.buttons {
		btn.DrawAnimated(screen, face, ctx.Theme)
	}

	if ctx.Board.Promotion().Open {
		b.drawPromotion(ctx, screen)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

// drawCells paints every cell's composed style. A cell with a custom
// renderer draws itself through Dispatch; the rest go through the
// rasterized-style cache keyed by the style's value.
func (b *Board) drawCells(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	o := ctx.Board.Orientation()
	for _, c := range b.cells {
		fr := c.Frame()
		x, y := b.squareOrigin(fr.Square, o)
		props := cell.RenderProps{
			Square:  fr.Square,
			Color:   fr.Color,
			Bounds:  base.Rect{X: float64(x), Y: float64(y), W: float64(b.sqSize), H: float64(b.sqSize)},
			Style:   fr.Style,
			Content: fr.Content,
		}
		if fr.Renderer.Dispatch(props) {
			continue
		}
		img := b.cellImage(fr.Style)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
	}
}

func (b *Board) cellImage(s cell.Style) *ebiten.Image {
	key := cacheKey{side: b.sqSize}
	if s.Fill != nil {
		key.fill = *s.Fill
		key.hasFill = true
	}
	if s.Corners != nil {
		key.corners = *s.Corners
	}
	if s.Ring != nil {
		key.ring = *s.Ring
		key.hasRing = true
	}
	if img, ok := b.cellCache[key]; ok {
		return img
	}
	img := ghelper.RenderCellImage(b.sqSize, s)
	b.cellCache[key] = img
	return img
}

func (b *Board) drawPieces(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	o := ctx.Board.Orientation()
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		p, ok := ctx.Board.PieceAt(sq)
		if !ok {
			continue
		}
		if b.dragging && sq == b.payload.Origin {
			continue
		}
		if b.anim.active && sq == b.anim.dest {
			continue
		}
		x, y := b.squareOrigin(sq, o)
		b.drawPieceAt(ctx, screen, p, float64(x), float64(y))
	}
}

func (b *Board) drawPieceAt(ctx *gctx.GUIBoardContext, screen *ebiten.Image, p base.Piece, x, y float64) {
	side := b.sqSize * 3 / 4
	img := ctx.AssetsWorker.Piece(p, side)
	if img == nil {
		return
	}
	pad := float64(b.sqSize-side) / 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x+pad, y+pad)
	screen.DrawImage(img, op)
}

func (b *Board) drawSelection(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	sq, ok := ctx.Board.Selected()
	if !ok {
		return
	}
	x, y := b.squareOrigin(sq, ctx.Board.Orientation())
	ghelper.DrawRectStroke(screen,
		float64(x)+2, float64(y)+2,
		float64(b.sqSize)-4, float64(b.sqSize)-4,
		3, ctx.Theme.Accent)
}

// drawArrows renders finalized arrows plus the live right-drag preview
// on one cached overlay; the overlay is rebuilt only when the arrow set
// or board geometry changes.
func (b *Board) drawArrows(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	arrows := ctx.Board.Arrows()
	pf, pt, pending := ctx.Board.PendingArrow()

	key := fmt.Sprintf("%d/%s/%v", b.boardSize, ctx.Board.Orientation(), arrows)
	if pending {
		key += fmt.Sprintf("+%s%s", pf, pt)
	}
	if b.arrowImg == nil || key != b.arrowKey {
		segs := make([][4]float64, 0, len(arrows)+1)
		for _, a := range arrows {
			if a.From == a.To {
				continue
			}
			segs = append(segs, b.arrowSegment(ctx, a.From, a.To))
		}
		if pending && pf != pt {
			segs = append(segs, b.arrowSegment(ctx, pf, pt))
		}
		b.arrowImg = ghelper.RenderArrowOverlay(b.boardSize, segs, ctx.Theme.Accent)
		b.arrowKey = key
	}
	if b.arrowImg == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.boardX), float64(b.boardY))
	screen.DrawImage(b.arrowImg, op)
}

// arrowSegment returns center-to-center coordinates relative to the
// board origin.
func (b *Board) arrowSegment(ctx *gctx.GUIBoardContext, from, to base.Square) [4]float64 {
	o := ctx.Board.Orientation()
	fx, fy := b.squareOrigin(from, o)
	tx, ty := b.squareOrigin(to, o)
	half := float64(b.sqSize) / 2
	return [4]float64{
		float64(fx-b.boardX) + half, float64(fy-b.boardY) + half,
		float64(tx-b.boardX) + half, float64(ty-b.boardY) + half,
	}
}

func (b *Board) drawAnimPiece(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	if !b.anim.active {
		return
	}
	t := float64(time.Since(b.anim.start)) / float64(animDuration)
	if t > 1 {
		t = 1
	}
	// ease-out quad
	t = 1 - (1-t)*(1-t)
	cx := b.anim.from.X + (b.anim.to.X-b.anim.from.X)*t
	cy := b.anim.from.Y + (b.anim.to.Y-b.anim.from.Y)*t
	b.drawPieceAt(ctx, screen, b.anim.piece, cx-float64(b.sqSize)/2, cy-float64(b.sqSize)/2)
}

func (b *Board) drawDragGhost(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	if !b.dragging {
		return
	}
	half := float64(b.sqSize) / 2
	b.drawPieceAt(ctx, screen, b.payload.Piece, float64(b.dragX)-half, float64(b.dragY)-half)
}

func (b *Board) drawPromotion(ctx *gctx.GUIBoardContext, screen *ebiten.Image) {
	overlay := ebiten.NewImage(screen.Bounds().Dx(), screen.Bounds().Dy())
	overlay.Fill(ctx.Theme.ModalBg)
	screen.DrawImage(overlay, nil)

	face := ctx.AssetsWorker.Face()
	choices := promotionChoices(ctx.Board.LastDraggedColor())
	for i, r := range b.promotionRects(ctx) {
		tile := ghelper.RenderRoundedRect(r[2], r[3], 10, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r[0]), float64(r[1]))
		screen.DrawImage(tile, op)

		side := r[2] * 3 / 4
		img := ctx.AssetsWorker.Piece(choices[i], side)
		if img != nil {
			pop := &ebiten.DrawImageOptions{}
			pop.GeoM.Translate(float64(r[0]+(r[2]-side)/2), float64(r[1]+(r[3]-side)/2))
			screen.DrawImage(img, pop)
		}
	}
	label := "Choose promotion"
	bounds := text.BoundString(face, label)
	lx := ctx.Config.WindowW/2 - bounds.Dx()/2
	text.Draw(screen, label, face, lx, ctx.Config.WindowH/2-b.sqSize, ctx.Theme.ButtonText)
}
