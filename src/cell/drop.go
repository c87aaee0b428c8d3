package cell

import "cellboard/src/base"

// DropTarget accepts a dragged piece payload on one cell. Dropping either
// commits the move or routes into the promotion flow; the hover flag only
// feeds styling.
type DropTarget struct {
	sq    base.Square
	ctx   Context
	judge PromotionJudge
	over  bool
}

func NewDropTarget(sq base.Square, ctx Context, judge PromotionJudge) *DropTarget {
	if judge == nil {
		judge = PawnJudge{}
	}
	return &DropTarget{sq: sq, ctx: ctx, judge: judge}
}

// SetOver records whether a drag currently hovers this cell. Maintained
// by the host drag subsystem; no semantic meaning beyond styling.
func (d *DropTarget) SetOver(over bool) { d.over = over }

func (d *DropTarget) IsOver() bool { return d.over }

// Drop resolves a released payload. A promotion-requiring move either
// commits immediately with the payload color's queen (auto-promote) or
// opens the promotion flow without committing anything. Every other move
// commits right away as an animated transition.
func (d *DropTarget) Drop(p DragPayload) {
	if d.judge.RequiresPromotion(p.Piece, p.Origin, d.sq) {
		if d.ctx.AutoPromote() {
			c, ok := p.Piece.Color()
			if !ok {
				return
			}
			d.ctx.CommitMove(p.Origin, d.sq, base.QueenOf(c), true)
			return
		}
		d.ctx.OpenPromotion(p.Origin, d.sq)
		return
	}
	d.ctx.CommitMove(p.Origin, d.sq, p.Piece, true)
}
