package cell

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"cellboard/src/base"
)

func payload(p base.Piece, origin base.Square) DragPayload {
	return DragPayload{Piece: p, Origin: origin, DragID: uuid.New()}
}

func TestDropPlainMoveCommits(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.F3, ctx, nil)

	d.Drop(payload(base.WKnight, base.G1))

	want := []string{"commit g1 f3 N true"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDropAutoPromotesToQueen(t *testing.T) {
	ctx := newFakeContext()
	ctx.autoPromote = true
	d := NewDropTarget(base.E8, ctx, nil)

	d.Drop(payload(base.WPawn, base.E7))

	want := []string{"commit e7 e8 Q true"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDropOpensPromotionDialog(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.A1, ctx, nil)

	d.Drop(payload(base.BPawn, base.A2))

	want := []string{"promotion a2 a1"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDropPawnOffPromotionRank(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.E4, ctx, nil)

	d.Drop(payload(base.WPawn, base.E2))

	want := []string{"commit e2 e4 P true"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDropNonPawnOnLastRank(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.E8, ctx, nil)

	d.Drop(payload(base.WRook, base.E1))

	want := []string{"commit e1 e8 R true"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

type alwaysJudge struct{}

func (alwaysJudge) RequiresPromotion(base.Piece, base.Square, base.Square) bool { return true }

func TestDropCustomJudge(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.D4, ctx, alwaysJudge{})

	d.Drop(payload(base.WKnight, base.B3))

	want := []string{"promotion b3 d4"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDropOverFlag(t *testing.T) {
	ctx := newFakeContext()
	d := NewDropTarget(base.D4, ctx, nil)

	if d.IsOver() {
		t.Fatal("over before any drag")
	}
	d.SetOver(true)
	if !d.IsOver() {
		t.Error("over flag not set")
	}
	d.SetOver(false)
	if d.IsOver() {
		t.Error("over flag not cleared")
	}
}
