// Package cell implements one square of an interactive board widget: its
// geometry capture, drop-target behavior, pointer/touch gesture routing
// and layered styling. The package is host-UI-agnostic; a hosting layer
// supplies hit-testing, bounds measurement and the shared Context all 64
// cells coordinate through.
package cell

import (
	"github.com/google/uuid"

	"cellboard/src/base"
)

// Context is the shared interaction surface handed to every cell at
// construction. Reads are snapshots of board-level state; mutators are
// the semantic gestures a cell reports. All calls happen on the single
// UI goroutine, so implementations need no locking.
type Context interface {
	BoardWidth() int
	Orientation() base.Orientation
	AutoPromote() bool
	PieceAt(sq base.Square) (base.Piece, bool)
	IsPremove(sq base.Square) bool
	SquareStyle(sq base.Square) (Style, bool)
	CellTheme() Theme
	RightDownOrigin() (base.Square, bool)
	LastDraggedColor() base.Color
	AnimationInFlight() bool
	RendererFor(sq base.Square) Renderer

	CommitMove(from, to base.Square, p base.Piece, animate bool)
	OpenPromotion(from, to base.Square)
	HoverEnter(sq base.Square)
	HoverLeave(sq base.Square)
	DragOver(sq base.Square)
	RightDown(sq base.Square)
	RightUp(sq base.Square)
	ArrowExtend(to base.Square)
	ArrowFinalize(from, to base.Square)
	ArrowClear()
	CellClick(sq base.Square)
}

// DragPayload travels with an active drag gesture. It is created by the
// host drag subsystem and read-only here.
type DragPayload struct {
	Piece  base.Piece
	Origin base.Square
	DragID uuid.UUID
}

// PromotionJudge decides whether moving p from one square to another
// needs a promotion choice. Move legality is the judge's problem, not
// the cell's.
type PromotionJudge interface {
	RequiresPromotion(p base.Piece, from, to base.Square) bool
}

// PawnJudge is the default judge: a pawn arriving on its promotion rank.
type PawnJudge struct{}

func (PawnJudge) RequiresPromotion(p base.Piece, from, to base.Square) bool {
	if !p.IsPawn() {
		return false
	}
	c, ok := p.Color()
	if !ok {
		return false
	}
	return to.Rank() == base.PromotionRank(c)
}

// RenderProps is what a renderer receives for one cell draw.
type RenderProps struct {
	Square  base.Square
	Color   base.CellColor
	Bounds  base.Rect
	Style   Style
	Content ContentStyle
}

// Renderer selects how a cell's body is drawn: the host's built-in
// element named by Tag, or a custom draw callback. Dispatch is the single
// resolution point.
type Renderer struct {
	Tag    string
	Custom func(RenderProps)
}

// BuiltIn names a host element as the cell body.
func BuiltIn(tag string) Renderer { return Renderer{Tag: tag} }

// CustomRenderer wraps a draw callback as the cell body.
func CustomRenderer(draw func(RenderProps)) Renderer { return Renderer{Custom: draw} }

// Dispatch runs the custom renderer when present and reports whether it
// handled the draw; otherwise the host renders the Tag element itself.
func (r Renderer) Dispatch(p RenderProps) bool {
	if r.Custom == nil {
		return false
	}
	r.Custom(p)
	return true
}
