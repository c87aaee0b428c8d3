package gboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"cellboard/src"
	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/src/position"
	"cellboard/ui/gui/gctx"
	"cellboard/ui/gui/ghelper"
	"cellboard/ui/gui/ghelper/gdialog"
)

// Update translates one tick of polled input into raw cell events. Every
// event is handed to exactly one cell's router; the routers produce the
// semantic gesture calls on the shared controller.
func (b *Board) Update(ctx *gctx.GUIBoardContext) error {
	b.recalcLayout(ctx)

	// geometry triggers are width/orientation changes; the trackers gate
	// re-measurement internally so this is cheap every tick
	for _, c := range b.cells {
		c.SyncGeometry()
	}

	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	justPressedL := left && !b.prevLeft
	justReleasedL := !left && b.prevLeft
	justPressedR := right && !b.prevRight
	justReleasedR := !right && b.prevRight
	b.prevLeft = left
	b.prevRight = right

	if b.anim.active && time.Since(b.anim.start) >= animDuration {
		b.anim.active = false
		ctx.Board.FinishAnimation()
	}

	// promotion dialog swallows all pointer input while open
	if ctx.Board.Promotion().Open {
		if justPressedL {
			b.handlePromotionClick(ctx, mx, my)
		}
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	for i, btn := range b.buttons {
		clicked := btn.HandleInput(mx, my, justPressedL, justReleasedL)
		btn.UpdateAnim(dt)
		if clicked {
			b.handleButton(ctx, i)
		}
	}

	held := buttonMask(left, right)

	// pointer crossing between cells synthesizes the over/out pair with
	// the related element attached, same as the host DOM would
	cur, curOK := b.CellAt(mx, my)
	if curOK != b.hasCursorCell || (curOK && b.hasCursorCell && cur != b.cursorCell) {
		if b.hasCursorCell {
			prev := b.cursorCell
			b.cells[prev].Gesture().MouseOut(cell.PointerEvent{
				X: mx, Y: my, Buttons: held,
				Related: cell.Target{Cell: cur, Valid: curOK},
			})
			if b.dragging {
				b.cells[prev].Drop().SetOver(false)
			}
		}
		if curOK {
			b.cells[cur].Gesture().MouseOver(cell.PointerEvent{
				X: mx, Y: my, Buttons: held,
				Related: cell.Target{Cell: b.cursorCell, Valid: b.hasCursorCell},
			})
			if b.dragging {
				b.cells[cur].Gesture().DragEnter()
				b.cells[cur].Drop().SetOver(true)
			}
		}
		b.cursorCell, b.hasCursorCell = cur, curOK
	}

	if justPressedR && curOK {
		b.cells[cur].Gesture().MouseDown(cell.ButtonSecondary)
	}
	if justReleasedR && curOK {
		b.cells[cur].Gesture().MouseUp(cell.ButtonSecondary)
	}

	if justPressedL && curOK {
		b.pressCell = cur
		b.hasPress = true
		if p, ok := ctx.Board.PieceAt(cur); ok && !b.dragging {
			b.startDrag(ctx, cur, p, false)
		}
	}

	if justReleasedL {
		b.dragX, b.dragY = mx, my
		b.finishMouseRelease(ctx, cur, curOK)
	}

	if b.dragging && !b.dragByTouch {
		b.dragX, b.dragY = mx, my
	}

	b.updateTouches(ctx)
	return nil
}

func buttonMask(left, right bool) cell.Button {
	m := cell.ButtonNone
	if left {
		m |= cell.ButtonPrimary
	}
	if right {
		m |= cell.ButtonSecondary
	}
	return m
}

// ---- drag subsystem ----

func (b *Board) startDrag(ctx *gctx.GUIBoardContext, origin base.Square, p base.Piece, byTouch bool) {
	b.dragging = true
	b.dragByTouch = byTouch
	b.payload = cell.DragPayload{Piece: p, Origin: origin, DragID: uuid.New()}
	if c, ok := p.Color(); ok {
		ctx.Board.SetDraggedColor(c)
	}
	b.cells[origin].Drop().SetOver(true)
	ctx.Logx.Debugf("drag %s start %s", b.payload.DragID, origin)
}

// finishMouseRelease resolves a left-button release: a drop onto a cell,
// a released-in-place click, or an abandoned drag outside the board.
func (b *Board) finishMouseRelease(ctx *gctx.GUIBoardContext, cur base.Square, curOK bool) {
	if b.dragging && !b.dragByTouch {
		payload := b.payload
		b.clearDrag(ctx)
		switch {
		case curOK && cur != payload.Origin:
			b.cells[cur].Drop().Drop(payload)
		case curOK:
			// released where it started: a click, not a move
			b.cells[cur].Gesture().Click()
		default:
			ctx.Logx.Debugf("drag %s abandoned", payload.DragID)
		}
		b.hasPress = false
		return
	}

	if b.hasPress && curOK && cur == b.pressCell {
		b.cells[cur].Gesture().Click()
	}
	b.hasPress = false
}

func (b *Board) clearDrag(ctx *gctx.GUIBoardContext) {
	for _, c := range b.cells {
		c.Drop().SetOver(false)
	}
	b.dragging = false
	b.dragByTouch = false
}

// ---- touch path ----

// updateTouches drives the touch front-end: touch start over a piece
// begins a drag, finger movement goes through the origin cell's
// TouchMove hit-testing, lift resolves the drop.
func (b *Board) updateTouches(ctx *gctx.GUIBoardContext) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		if !b.prevTouched {
			if sq, ok := b.CellAt(x, y); ok {
				if p, ok2 := ctx.Board.PieceAt(sq); ok2 && !b.dragging {
					b.startDrag(ctx, sq, p, true)
				}
			}
		} else if b.dragging && b.dragByTouch {
			b.cells[b.payload.Origin].Gesture().TouchMove(x, y)
			if sq, ok := b.CellAt(x, y); ok {
				for _, c := range b.cells {
					c.Drop().SetOver(c.Square() == sq)
				}
			}
		}
		b.lastTouchX, b.lastTouchY = x, y
		b.dragX, b.dragY = x, y
		b.prevTouched = true
		return
	}

	if b.prevTouched {
		if b.dragging && b.dragByTouch {
			payload := b.payload
			b.clearDrag(ctx)
			if sq, ok := b.CellAt(b.lastTouchX, b.lastTouchY); ok && sq != payload.Origin {
				b.cells[sq].Drop().Drop(payload)
			} else {
				ctx.Logx.Debugf("drag %s abandoned", payload.DragID)
			}
		}
		b.prevTouched = false
	}
}

// ---- promotion dialog ----

// promotionChoices returns the four candidate pieces in dialog order,
// colored by the last dragged piece.
func promotionChoices(c base.Color) [4]base.Piece {
	if c == base.Black {
		return [4]base.Piece{base.BQueen, base.BRook, base.BBishop, base.BKnight}
	}
	return [4]base.Piece{base.WQueen, base.WRook, base.WBishop, base.WKnight}
}

func (b *Board) promotionRects(ctx *gctx.GUIBoardContext) (rects [4][4]int) {
	s := b.sqSize + 16
	total := s * 4
	x := ctx.Config.WindowW/2 - total/2
	y := ctx.Config.WindowH/2 - s/2
	for i := 0; i < 4; i++ {
		rects[i] = [4]int{x + i*s, y, s - 8, s - 8}
	}
	return rects
}

func (b *Board) handlePromotionClick(ctx *gctx.GUIBoardContext, mx, my int) {
	choices := promotionChoices(ctx.Board.LastDraggedColor())
	for i, r := range b.promotionRects(ctx) {
		if ghelper.PointInRect(mx, my, r[0], r[1], r[2], r[3]) {
			ctx.Board.ClosePromotion(choices[i])
			return
		}
	}
	// clicking elsewhere cancels without committing
	ctx.Board.ClosePromotion(base.InvalidPiece)
}

// ---- button actions ----

func (b *Board) handleButton(ctx *gctx.GUIBoardContext, idx int) {
	switch idx {
	case b.idxFlip:
		ctx.Board.FlipOrientation()
		ctx.Config.Orientation = ctx.Board.Orientation().String()
	case b.idxTheme:
		if ctx.Config.Theme == "light" {
			ctx.Config.Theme = "dark"
		} else {
			ctx.Config.Theme = "light"
		}
		ctx.ApplyTheme()
		b.makeLayoutButtons(ctx)
	case b.idxAutoQ:
		ctx.Config.AutoPromote = !ctx.Config.AutoPromote
		ctx.Board.SetAutoPromote(ctx.Config.AutoPromote)
		b.buttons[b.idxAutoQ].Label = autoQLabel(ctx)
	case b.idxStyle:
		res, err := gdialog.OpenFile("Select board style")
		if err != nil {
			ctx.Logx.Warnf("style dialog: %v", err)
			return
		}
		if err := ctx.Board.LoadSquareStyles(res.Data); err != nil {
			ctx.Logx.Errorf("style file %s: %v", res.Name, err)
			return
		}
		ctx.Logx.Infof("loaded styles from %s", res.Name)
	case b.idxClear:
		ctx.Board.ClearPremoves()
		ctx.Board.ArrowClear()
		ctx.Board.ClearSquareStyles()
	case b.idxReset:
		b.resetPosition(ctx)
	}
}

func (b *Board) resetPosition(ctx *gctx.GUIBoardContext) {
	mb := position.Start()
	if ctx.Config.FEN != "" {
		parsed, err := position.FromFEN(ctx.Config.FEN)
		if err != nil {
			ctx.Logx.Errorf("reset: %v", err)
			return
		}
		mb = parsed
	}
	ctx.Board.SetPosition(mb)
	ctx.Board.ClearPremoves()
	ctx.Board.ArrowClear()
}

// ---- move animation ----

func (b *Board) startMoveAnim(ctx *gctx.GUIBoardContext, mv src.Move) {
	if !mv.Animate {
		return
	}
	geo := ctx.Board.Geometry()
	fromR, ok1 := geo[mv.From]
	toR, ok2 := geo[mv.To]
	if !ok1 || !ok2 {
		ctx.Board.FinishAnimation()
		return
	}
	b.anim = moveAnim{
		active: true,
		piece:  mv.Piece,
		dest:   mv.To,
		from:   fromR.Center(),
		to:     toR.Center(),
		start:  time.Now(),
	}
}
