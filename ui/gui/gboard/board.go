// Package gboard mounts the 64 cell instances into an ebiten scene: it
// translates polled input into raw cell events, runs the drag subsystem,
// and paints composed cell styles.
package gboard

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"cellboard/src"
	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/ui/gui/gctx"
	"cellboard/ui/gui/ghelper"
)

const animDuration = 180 * time.Millisecond

type moveAnim struct {
	active bool
	piece  base.Piece
	dest   base.Square
	from   base.Point
	to     base.Point
	start  time.Time
}

// cacheKey identifies a rasterized cell style.
type cacheKey struct {
	side    int
	fill    color.RGBA
	hasFill bool
	corners cell.Corners
	ring    cell.Ring
	hasRing bool
}

type Board struct {
	bctx *gctx.GUIBoardContext

	// layout
	boardX, boardY int
	boardSize      int
	sqSize         int
	laidOut        bool

	cells [64]*cell.Cell

	// pointer state
	prevLeft, prevRight bool
	cursorCell          base.Square
	hasCursorCell       bool
	pressCell           base.Square
	hasPress            bool

	// drag subsystem
	dragging    bool
	dragByTouch bool
	payload     cell.DragPayload
	dragX, dragY int

	// touch bookkeeping
	prevTouched            bool
	lastTouchX, lastTouchY int

	anim moveAnim

	cellCache map[cacheKey]*ebiten.Image

	arrowImg *ebiten.Image
	arrowKey string

	// buttons
	buttons  []*ghelper.Button
	idxFlip  int
	idxTheme int
	idxAutoQ int
	idxStyle int
	idxClear int
	idxReset int
}

func NewBoard(ctx *gctx.GUIBoardContext) *Board {
	b := &Board{bctx: ctx, cellCache: make(map[cacheKey]*ebiten.Image)}

	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		b.cells[i] = cell.New(cell.Config{
			Square: sq,
			Ctx:    ctx.Board,
			Host:   b,
			Node:   b.nodeFor(sq),
			Sink:   ctx.Board.Geometry(),
		})
	}

	ctx.Board.OnCommit = func(mv src.Move) {
		b.startMoveAnim(ctx, mv)
	}

	b.recalcLayout(ctx)
	b.makeLayoutButtons(ctx)
	return b
}

// ---- cell.Host ----

// CellAt hit-tests a viewport point to the square underneath it. This is
// the shared substitute for native hover/drag-enter on touch devices.
func (b *Board) CellAt(x, y int) (base.Square, bool) {
	if !b.laidOut || !b.inBoard(x, y) {
		return base.NoSquare, false
	}
	return b.cellUnder(x, y, b.bctx.Board.Orientation()), true
}

// Contains reports whether the related element lives inside the owner
// cell's subtree; pointer noise between a cell and its own content is
// suppressed with this.
func (b *Board) Contains(owner base.Square, related cell.Target) bool {
	return related.Valid && related.Cell == owner
}

// ---- layout ----

func (b *Board) recalcLayout(ctx *gctx.GUIBoardContext) {
	ww := ctx.Config.WindowW
	wh := ctx.Config.WindowH

	maxSize := ww - 360
	if maxSize > wh-120 {
		maxSize = wh - 120
	}
	if maxSize < 320 {
		maxSize = 320
	}
	b.sqSize = maxSize / 8
	b.boardSize = b.sqSize * 8
	b.boardX = (ww-b.boardSize)/2 + 80
	b.boardY = (wh - b.boardSize) / 2
	b.laidOut = true

	ctx.Board.SetBoardWidth(b.boardSize)
}

func (b *Board) nodeFor(sq base.Square) cell.Node {
	return cell.NodeFunc(func() (base.Rect, bool) {
		if !b.laidOut {
			return base.Rect{}, false
		}
		x, y := b.squareOrigin(sq, b.bctx.Board.Orientation())
		return base.Rect{X: float64(x), Y: float64(y), W: float64(b.sqSize), H: float64(b.sqSize)}, true
	})
}

func (b *Board) inBoard(px, py int) bool {
	return px >= b.boardX && py >= b.boardY && px < b.boardX+b.boardSize && py < b.boardY+b.boardSize
}

func (b *Board) squareOrigin(sq base.Square, o base.Orientation) (int, int) {
	fs := sq.File()
	rs := 7 - sq.Rank()
	if o == base.BlackSide {
		fs = 7 - fs
		rs = 7 - rs
	}
	return b.boardX + fs*b.sqSize, b.boardY + rs*b.sqSize
}

// cellUnder maps a pixel to its square; the top screen row is rank 8
// seen from white and rank 1 seen from black.
func (b *Board) cellUnder(px, py int, o base.Orientation) base.Square {
	fx := (px - b.boardX) / b.sqSize
	fy := (py - b.boardY) / b.sqSize
	if fx < 0 {
		fx = 0
	}
	if fx > 7 {
		fx = 7
	}
	if fy < 0 {
		fy = 0
	}
	if fy > 7 {
		fy = 7
	}
	sq := base.NewSquare(fx, 7-fy)
	if o == base.BlackSide {
		sq = base.NewSquare(7-sq.File(), 7-sq.Rank())
	}
	return sq
}

// ---- buttons ----

func (b *Board) makeLayoutButtons(ctx *gctx.GUIBoardContext) {
	b.buttons = nil

	addBtn := func(label string, x, y, w, h int) int {
		idx := len(b.buttons)
		b.buttons = append(b.buttons, ghelper.NewButton(label, x, y, w, h, ctx.Theme))
		return idx
	}

	x := b.boardX - 220
	if x < 20 {
		x = 20
	}
	y := b.boardY + 40
	w, h := 170, 44
	b.idxFlip = addBtn("Flip board", x, y, w, h)
	y += h + 12
	b.idxTheme = addBtn("Theme", x, y, w, h)
	y += h + 12
	b.idxAutoQ = addBtn(autoQLabel(ctx), x, y, w, h)
	y += h + 12
	b.idxStyle = addBtn("Load styles...", x, y, w, h)
	y += h + 12
	b.idxClear = addBtn("Clear marks", x, y, w, h)
	y += h + 12
	b.idxReset = addBtn("Reset board", x, y, w, h)
}

func autoQLabel(ctx *gctx.GUIBoardContext) string {
	if ctx.Config.AutoPromote {
		return "Auto-queen: on"
	}
	return "Auto-queen: off"
}
