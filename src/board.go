// Package src hosts the shared board controller: the one object every
// mounted cell coordinates through. Cells call its gesture mutators, the
// controller mutates board-level state, and the next render reads it
// back. Everything runs on the single UI goroutine.
package src

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/src/logx"
	"cellboard/src/position"
)

// Move is one committed transition, as reported to the host for
// animation.
type Move struct {
	From    base.Square
	To      base.Square
	Piece   base.Piece
	Animate bool
}

// Arrow is a finalized right-click-drag annotation.
type Arrow struct {
	From base.Square
	To   base.Square
}

// PromotionState records a move waiting on the promotion dialog.
type PromotionState struct {
	From base.Square
	To   base.Square
	Open bool
}

// BoardController implements cell.Context for all 64 cells. It owns the
// current placement, premove marks, arrows, promotion dialog state and
// the shared geometry map.
type BoardController struct {
	logx logx.Logger

	pos      position.Mailbox
	geometry cell.GeometryMap

	theme       cell.Theme
	orientation base.Orientation
	boardWidth  int
	autoPromote bool

	premoves  map[base.Square]struct{}
	styles    map[base.Square]cell.Style
	renderers map[base.Square]cell.Renderer

	hovered     base.Square
	hasHovered  bool
	dragOver    base.Square
	hasDragOver bool

	rightDown    base.Square
	hasRightDown bool
	arrows       []Arrow
	pendingTo    base.Square
	hasPending   bool

	promotion PromotionState

	selected    base.Square
	hasSelected bool

	draggedColor base.Color
	animating    bool

	// OnCommit lets the host start a travel animation; may be nil.
	OnCommit func(Move)
}

func NewBoardController(l logx.Logger) *BoardController {
	if l == nil {
		l = logx.Nop{}
	}
	return &BoardController{
		logx:      l,
		pos:       position.Start(),
		geometry:  make(cell.GeometryMap),
		premoves:  make(map[base.Square]struct{}),
		styles:    make(map[base.Square]cell.Style),
		renderers: make(map[base.Square]cell.Renderer),
	}
}

// ---- host-side setup ----

func (bc *BoardController) SetPosition(m position.Mailbox) { bc.pos = m }
func (bc *BoardController) Position() *position.Mailbox    { return &bc.pos }

func (bc *BoardController) SetTheme(t cell.Theme)              { bc.theme = t }
func (bc *BoardController) SetBoardWidth(w int)                { bc.boardWidth = w }
func (bc *BoardController) SetOrientation(o base.Orientation)  { bc.orientation = o }
func (bc *BoardController) FlipOrientation()                   { bc.orientation = bc.orientation.Flip() }
func (bc *BoardController) SetAutoPromote(on bool)             { bc.autoPromote = on }
func (bc *BoardController) SetRenderer(sq base.Square, r cell.Renderer) { bc.renderers[sq] = r }

func (bc *BoardController) SetSquareStyle(sq base.Square, s cell.Style) {
	bc.styles[sq] = s
}

func (bc *BoardController) ClearSquareStyles() {
	bc.styles = make(map[base.Square]cell.Style)
}

func (bc *BoardController) SetPremove(sq base.Square, on bool) {
	if on {
		bc.premoves[sq] = struct{}{}
	} else {
		delete(bc.premoves, sq)
	}
}

func (bc *BoardController) ClearPremoves() {
	bc.premoves = make(map[base.Square]struct{})
}

// Geometry exposes the shared geometry map; the animation subsystem reads
// it to compute inter-cell travel vectors.
func (bc *BoardController) Geometry() cell.GeometryMap { return bc.geometry }

func (bc *BoardController) Arrows() []Arrow { return bc.arrows }

// PendingArrow is the preview target while a right-click drag is in
// progress.
func (bc *BoardController) PendingArrow() (from, to base.Square, ok bool) {
	if !bc.hasRightDown || !bc.hasPending {
		return base.NoSquare, base.NoSquare, false
	}
	return bc.rightDown, bc.pendingTo, true
}

func (bc *BoardController) Promotion() PromotionState { return bc.promotion }

// ClosePromotion resolves the pending promotion. choose == InvalidPiece
// cancels without committing.
func (bc *BoardController) ClosePromotion(choose base.Piece) {
	p := bc.promotion
	bc.promotion = PromotionState{}
	if !p.Open || choose == base.InvalidPiece {
		return
	}
	bc.CommitMove(p.From, p.To, choose, true)
}

func (bc *BoardController) Hovered() (base.Square, bool) {
	return bc.hovered, bc.hasHovered
}

func (bc *BoardController) DragHover() (base.Square, bool) {
	return bc.dragOver, bc.hasDragOver
}

func (bc *BoardController) Selected() (base.Square, bool) {
	return bc.selected, bc.hasSelected
}

func (bc *BoardController) SetDraggedColor(c base.Color) { bc.draggedColor = c }

// FinishAnimation is called by the host when a travel animation lands.
func (bc *BoardController) FinishAnimation() { bc.animating = false }

// ---- cell.Context reads ----

func (bc *BoardController) BoardWidth() int                { return bc.boardWidth }
func (bc *BoardController) Orientation() base.Orientation  { return bc.orientation }
func (bc *BoardController) AutoPromote() bool              { return bc.autoPromote }
func (bc *BoardController) CellTheme() cell.Theme          { return bc.theme }
func (bc *BoardController) LastDraggedColor() base.Color   { return bc.draggedColor }
func (bc *BoardController) AnimationInFlight() bool        { return bc.animating }

func (bc *BoardController) PieceAt(sq base.Square) (base.Piece, bool) {
	p := bc.pos.At(sq)
	if p == base.EmptyPiece || p == base.InvalidPiece {
		return base.EmptyPiece, false
	}
	return p, true
}

func (bc *BoardController) IsPremove(sq base.Square) bool {
	_, ok := bc.premoves[sq]
	return ok
}

func (bc *BoardController) SquareStyle(sq base.Square) (cell.Style, bool) {
	s, ok := bc.styles[sq]
	return s, ok
}

func (bc *BoardController) RightDownOrigin() (base.Square, bool) {
	return bc.rightDown, bc.hasRightDown
}

func (bc *BoardController) RendererFor(sq base.Square) cell.Renderer {
	if r, ok := bc.renderers[sq]; ok {
		return r
	}
	return cell.BuiltIn("cell")
}

// ---- cell.Context mutators ----

// CommitMove applies the transition to the placement. A same-square move
// is a released-in-place drop and commits nothing.
func (bc *BoardController) CommitMove(from, to base.Square, p base.Piece, animate bool) {
	if !from.IsValid() || !to.IsValid() || from == to {
		return
	}
	bc.pos.Set(from, base.EmptyPiece)
	bc.pos.Set(to, p)
	bc.hasSelected = false
	if animate {
		bc.animating = true
	}
	bc.logx.Debugf("commit %s%s %c animate=%v", from, to, p.Rune(), animate)
	if bc.OnCommit != nil {
		bc.OnCommit(Move{From: from, To: to, Piece: p, Animate: animate})
	}
}

func (bc *BoardController) OpenPromotion(from, to base.Square) {
	bc.promotion = PromotionState{From: from, To: to, Open: true}
	bc.logx.Debugf("promotion dialog %s%s", from, to)
}

func (bc *BoardController) HoverEnter(sq base.Square) {
	bc.hovered = sq
	bc.hasHovered = true
}

func (bc *BoardController) HoverLeave(sq base.Square) {
	if bc.hasHovered && bc.hovered == sq {
		bc.hasHovered = false
	}
}

func (bc *BoardController) DragOver(sq base.Square) {
	bc.dragOver = sq
	bc.hasDragOver = true
}

func (bc *BoardController) RightDown(sq base.Square) {
	bc.rightDown = sq
	bc.hasRightDown = true
	bc.hasPending = false
}

func (bc *BoardController) RightUp(sq base.Square) {
	bc.hasRightDown = false
	bc.hasPending = false
}

func (bc *BoardController) ArrowExtend(to base.Square) {
	if !bc.hasRightDown {
		return
	}
	bc.pendingTo = to
	bc.hasPending = true
}

// ArrowFinalize toggles the finalized annotation: a drag onto a distinct
// square toggles an arrow, a right-click released in place toggles the
// premove-style square mark.
func (bc *BoardController) ArrowFinalize(from, to base.Square) {
	if from == to {
		bc.SetPremove(from, !bc.IsPremove(from))
		return
	}
	for i, a := range bc.arrows {
		if a.From == from && a.To == to {
			bc.arrows = append(bc.arrows[:i], bc.arrows[i+1:]...)
			return
		}
	}
	bc.arrows = append(bc.arrows, Arrow{From: from, To: to})
}

func (bc *BoardController) ArrowClear() {
	bc.arrows = nil
	bc.hasPending = false
}

// CellClick implements free-move click-click: first click selects an
// occupied square, second click moves the piece there. No legality is
// checked; this widget only reports gestures.
func (bc *BoardController) CellClick(sq base.Square) {
	if !bc.hasSelected {
		if _, ok := bc.PieceAt(sq); ok {
			bc.selected = sq
			bc.hasSelected = true
		}
		return
	}
	from := bc.selected
	bc.hasSelected = false
	if from == sq {
		return
	}
	p, ok := bc.PieceAt(from)
	if !ok {
		return
	}
	bc.CommitMove(from, sq, p, true)
}

// ---- custom style files ----

type squareStyleFile map[string]struct {
	Fill string  `json:"fill"`
	Ring string  `json:"ring"`
	RingWidth float64 `json:"ring_width"`
}

// StylesFromJSON parses a per-square style override file, e.g.
// {"e4": {"fill": "#ff000080"}, "d5": {"ring": "#00ff00", "ring_width": 3}}.
func StylesFromJSON(data []byte) (map[base.Square]cell.Style, error) {
	var raw squareStyleFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	out := make(map[base.Square]cell.Style, len(raw))
	for name, entry := range raw {
		sq, err := base.ParseSquare(name)
		if err != nil {
			return nil, err
		}
		var s cell.Style
		if entry.Fill != "" {
			c, err := parseHexColor(entry.Fill)
			if err != nil {
				return nil, fmt.Errorf("square %s: %w", name, err)
			}
			s.Fill = &c
		}
		if entry.Ring != "" {
			c, err := parseHexColor(entry.Ring)
			if err != nil {
				return nil, fmt.Errorf("square %s: %w", name, err)
			}
			w := entry.RingWidth
			if w <= 0 {
				w = 2
			}
			s.Ring = &cell.Ring{Color: c, Width: w}
		}
		if s.IsZero() {
			continue
		}
		out[sq] = s
	}
	return out, nil
}

// LoadSquareStyles replaces the per-square overrides from a style file.
func (bc *BoardController) LoadSquareStyles(data []byte) error {
	styles, err := StylesFromJSON(data)
	if err != nil {
		return err
	}
	bc.styles = styles
	return nil
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	c := color.RGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}
