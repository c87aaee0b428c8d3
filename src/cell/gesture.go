package cell

import "cellboard/src/base"

// Button is a bitmask of pointer buttons held at event time.
type Button uint8

const (
	ButtonNone      Button = 0
	ButtonPrimary   Button = 1 << 0
	ButtonSecondary Button = 1 << 1
)

func (b Button) Has(q Button) bool { return b&q != 0 }

// Target identifies the element a pointer event relates to: the cell it
// belongs to and how deep inside that cell's subtree the element sits
// (0 is the cell element itself). Valid is false when the pointer came
// from or went to nothing the host tracks.
type Target struct {
	Cell  base.Square
	Depth int
	Valid bool
}

// PointerEvent is a raw pointer event as delivered by the host layer.
// Related is the element the pointer left (for over) or entered (for
// out); it drives the bubbling-noise suppression.
type PointerEvent struct {
	X       int
	Y       int
	Buttons Button
	Related Target
}

// Host supplies the two UI-layer primitives the router cannot know:
// hit-testing a viewport point to a cell, and deciding whether a related
// element lives inside a given cell's subtree. Touch devices emit no
// native hover or drag-enter events, so CellAt substitutes for them.
type Host interface {
	CellAt(x, y int) (base.Square, bool)
	Contains(owner base.Square, related Target) bool
}

// GestureRouter turns raw pointer and touch events on one cell into
// semantic gesture calls on the shared Context. Every transition is
// synchronous; a branch whose precondition fails produces no side effect.
type GestureRouter struct {
	sq   base.Square
	ctx  Context
	host Host

	lastTouch base.Square
	touched   bool
}

func NewGestureRouter(sq base.Square, ctx Context, host Host) *GestureRouter {
	return &GestureRouter{sq: sq, ctx: ctx, host: host}
}

// TouchMove hit-tests the point under the finger and reports a drag-over
// for the cell found there, once per cell change. Repeated events over
// the same cell are deduplicated; a point over nothing does nothing.
func (g *GestureRouter) TouchMove(x, y int) {
	target, ok := g.host.CellAt(x, y)
	if !ok {
		return
	}
	if g.touched && target == g.lastTouch {
		return
	}
	g.lastTouch = target
	g.touched = true
	g.ctx.DragOver(target)
}

// MouseOver extends an arrow in progress when the secondary button is
// held, then reports hover-enter unless the pointer merely crossed from
// a child of this cell.
func (g *GestureRouter) MouseOver(ev PointerEvent) {
	if ev.Buttons.Has(ButtonSecondary) {
		if _, ok := g.ctx.RightDownOrigin(); ok {
			g.ctx.ArrowExtend(g.sq)
		}
	}
	if g.host.Contains(g.sq, ev.Related) {
		return
	}
	g.ctx.HoverEnter(g.sq)
}

// MouseOut reports hover-leave unless the pointer merely moved onto a
// child of this cell.
func (g *GestureRouter) MouseOut(ev PointerEvent) {
	if g.host.Contains(g.sq, ev.Related) {
		return
	}
	g.ctx.HoverLeave(g.sq)
}

func (g *GestureRouter) MouseDown(b Button) {
	if b.Has(ButtonSecondary) {
		g.ctx.RightDown(g.sq)
	}
}

// MouseUp finalizes the arrow from the recorded right-down origin to this
// cell, then reports right-click-up regardless.
func (g *GestureRouter) MouseUp(b Button) {
	if !b.Has(ButtonSecondary) {
		return
	}
	if origin, ok := g.ctx.RightDownOrigin(); ok {
		g.ctx.ArrowFinalize(origin, g.sq)
	}
	g.ctx.RightUp(g.sq)
}

// DragEnter is the desktop drag-and-drop twin of TouchMove.
func (g *GestureRouter) DragEnter() {
	g.ctx.DragOver(g.sq)
}

// Click reports a primary click and clears arrow-drawing state.
func (g *GestureRouter) Click() {
	g.ctx.CellClick(g.sq)
	g.ctx.ArrowClear()
}

// ContextMenu suppresses the host's native menu so right-click drags can
// drive arrow drawing. Always handled.
func (g *GestureRouter) ContextMenu() bool {
	return true
}
