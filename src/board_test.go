package src

import (
	"image/color"
	"testing"

	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/src/logx"
	"cellboard/src/position"
)

func newTestController() *BoardController {
	bc := NewBoardController(logx.Nop{})
	bc.SetPosition(position.Start())
	bc.SetBoardWidth(400)
	return bc
}

func TestCommitMoveUpdatesPlacement(t *testing.T) {
	bc := newTestController()

	bc.CommitMove(base.E2, base.E4, base.WPawn, true)

	if p, ok := bc.PieceAt(base.E4); !ok || p != base.WPawn {
		t.Errorf("e4 = %v %v", p, ok)
	}
	if _, ok := bc.PieceAt(base.E2); ok {
		t.Error("e2 still occupied")
	}
	if !bc.AnimationInFlight() {
		t.Error("animated commit left no animation in flight")
	}
	bc.FinishAnimation()
	if bc.AnimationInFlight() {
		t.Error("animation did not finish")
	}
}

func TestCommitMoveIgnoresNullMove(t *testing.T) {
	bc := newTestController()
	fired := false
	bc.OnCommit = func(Move) { fired = true }

	bc.CommitMove(base.E2, base.E2, base.WPawn, true)

	if fired {
		t.Error("null move committed")
	}
	if p, _ := bc.PieceAt(base.E2); p != base.WPawn {
		t.Error("placement disturbed")
	}
}

func TestCommitMoveNotifiesHost(t *testing.T) {
	bc := newTestController()
	var got Move
	bc.OnCommit = func(mv Move) { got = mv }

	bc.CommitMove(base.G1, base.F3, base.WKnight, true)

	want := Move{From: base.G1, To: base.F3, Piece: base.WKnight, Animate: true}
	if got != want {
		t.Errorf("OnCommit got %+v, want %+v", got, want)
	}
}

func TestArrowFinalizeToggles(t *testing.T) {
	bc := newTestController()

	bc.ArrowFinalize(base.E2, base.E4)
	if len(bc.Arrows()) != 1 {
		t.Fatalf("arrows = %v", bc.Arrows())
	}
	bc.ArrowFinalize(base.E2, base.E4)
	if len(bc.Arrows()) != 0 {
		t.Errorf("second draw did not remove the arrow: %v", bc.Arrows())
	}
}

func TestArrowFinalizeInPlaceTogglesMark(t *testing.T) {
	bc := newTestController()

	bc.ArrowFinalize(base.E4, base.E4)
	if !bc.IsPremove(base.E4) {
		t.Fatal("in-place right click did not mark the square")
	}
	bc.ArrowFinalize(base.E4, base.E4)
	if bc.IsPremove(base.E4) {
		t.Error("second in-place click did not unmark")
	}
}

func TestArrowExtendNeedsRightDown(t *testing.T) {
	bc := newTestController()

	bc.ArrowExtend(base.E4)
	if _, _, ok := bc.PendingArrow(); ok {
		t.Fatal("pending arrow without a right-down origin")
	}

	bc.RightDown(base.E2)
	bc.ArrowExtend(base.E4)
	from, to, ok := bc.PendingArrow()
	if !ok || from != base.E2 || to != base.E4 {
		t.Errorf("pending = %s %s %v", from, to, ok)
	}

	bc.RightUp(base.E4)
	if _, _, ok := bc.PendingArrow(); ok {
		t.Error("pending arrow survived right-up")
	}
}

func TestCellClickSelectsThenMoves(t *testing.T) {
	bc := newTestController()

	bc.CellClick(base.E2)
	if sq, ok := bc.Selected(); !ok || sq != base.E2 {
		t.Fatalf("selected = %s %v", sq, ok)
	}

	bc.CellClick(base.E4)
	if _, ok := bc.Selected(); ok {
		t.Error("selection survived the move")
	}
	if p, _ := bc.PieceAt(base.E4); p != base.WPawn {
		t.Error("click-click move not committed")
	}
}

func TestCellClickEmptySquareNoSelect(t *testing.T) {
	bc := newTestController()

	bc.CellClick(base.E4)
	if _, ok := bc.Selected(); ok {
		t.Error("empty square selected")
	}
}

func TestCellClickSameSquareDeselects(t *testing.T) {
	bc := newTestController()

	bc.CellClick(base.E2)
	bc.CellClick(base.E2)
	if _, ok := bc.Selected(); ok {
		t.Error("second click did not deselect")
	}
	if p, _ := bc.PieceAt(base.E2); p != base.WPawn {
		t.Error("placement disturbed")
	}
}

func TestHoverTracking(t *testing.T) {
	bc := newTestController()

	bc.HoverEnter(base.C3)
	if sq, ok := bc.Hovered(); !ok || sq != base.C3 {
		t.Fatalf("hovered = %s %v", sq, ok)
	}

	// a stale leave for another square must not clear the current hover
	bc.HoverLeave(base.D4)
	if _, ok := bc.Hovered(); !ok {
		t.Error("stale leave cleared hover")
	}

	bc.HoverLeave(base.C3)
	if _, ok := bc.Hovered(); ok {
		t.Error("hover not cleared")
	}
}

func TestPromotionFlow(t *testing.T) {
	bc := newTestController()
	bc.SetPosition(position.Mailbox{})
	bc.Position().Set(base.E7, base.WPawn)
	bc.SetDraggedColor(base.White)

	bc.OpenPromotion(base.E7, base.E8)
	if !bc.Promotion().Open {
		t.Fatal("dialog not open")
	}

	bc.ClosePromotion(base.WKnight)
	if bc.Promotion().Open {
		t.Fatal("dialog still open")
	}
	if p, _ := bc.PieceAt(base.E8); p != base.WKnight {
		t.Errorf("e8 = %v, want knight", p)
	}
	if _, ok := bc.PieceAt(base.E7); ok {
		t.Error("e7 still occupied")
	}
}

func TestPromotionCancel(t *testing.T) {
	bc := newTestController()
	bc.SetPosition(position.Mailbox{})
	bc.Position().Set(base.E7, base.WPawn)

	bc.OpenPromotion(base.E7, base.E8)
	bc.ClosePromotion(base.InvalidPiece)

	if bc.Promotion().Open {
		t.Fatal("dialog still open")
	}
	if p, _ := bc.PieceAt(base.E7); p != base.WPawn {
		t.Error("cancel moved the pawn anyway")
	}
}

func TestStylesFromJSON(t *testing.T) {
	data := []byte(`{"e4": {"fill": "#ff000080"}, "d5": {"ring": "#00ff00", "ring_width": 3}}`)

	styles, err := StylesFromJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	e4, ok := styles[base.E4]
	if !ok || e4.Fill == nil {
		t.Fatalf("e4 style = %+v", e4)
	}
	if e4.Fill.R != 0xff || e4.Fill.A != 0x80 {
		t.Errorf("e4 fill = %+v", *e4.Fill)
	}
	d5 := styles[base.D5]
	if d5.Ring == nil || d5.Ring.Width != 3 || d5.Ring.Color.G != 0xff {
		t.Errorf("d5 ring = %+v", d5.Ring)
	}
	if d5.Ring.Color.A != 0xff {
		t.Errorf("six-digit color alpha = %d", d5.Ring.Color.A)
	}
}

func TestStylesFromJSONErrors(t *testing.T) {
	bad := [][]byte{
		[]byte(`{`),
		[]byte(`{"x9": {"fill": "#ff0000"}}`),
		[]byte(`{"e4": {"fill": "red"}}`),
	}
	for _, data := range bad {
		if _, err := StylesFromJSON(data); err == nil {
			t.Errorf("StylesFromJSON(%s) accepted", data)
		}
	}
}

func TestLoadSquareStylesReplaces(t *testing.T) {
	bc := newTestController()
	bc.SetSquareStyle(base.A1, cell.Fill(color.RGBA{0xff, 0, 0, 0xff}))

	if err := bc.LoadSquareStyles([]byte(`{"h8": {"fill": "#00ff00"}}`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := bc.SquareStyle(base.A1); ok {
		t.Error("old override survived the load")
	}
	if _, ok := bc.SquareStyle(base.H8); !ok {
		t.Error("loaded override missing")
	}
}

func TestSetPremove(t *testing.T) {
	bc := newTestController()

	bc.SetPremove(base.E2, true)
	bc.SetPremove(base.E4, true)
	if !bc.IsPremove(base.E2) || !bc.IsPremove(base.E4) {
		t.Fatal("marks not set")
	}
	bc.ClearPremoves()
	if bc.IsPremove(base.E2) || bc.IsPremove(base.E4) {
		t.Error("marks survived clear")
	}
}
