package cell

import (
	"reflect"
	"testing"

	"cellboard/src/base"
)

func TestTouchMoveDedupe(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.E2, ctx, fakeHost{})

	// three points over a1 (bottom-left from white), then one over b1
	g.TouchMove(10, 390)
	g.TouchMove(20, 380)
	g.TouchMove(40, 395)
	g.TouchMove(60, 390)

	want := []string{"dragover a1", "dragover b1"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestTouchMoveOutsideBoard(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.E2, ctx, fakeHost{})

	g.TouchMove(-5, 100)
	g.TouchMove(100, 500)
	if len(ctx.calls) != 0 {
		t.Errorf("calls = %v, want none", ctx.calls)
	}
}

func TestMouseOverEnterAndSuppression(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.E4, ctx, fakeHost{})

	// crossing in from another cell reports enter
	g.MouseOver(PointerEvent{Related: Target{Cell: base.D4, Valid: true}})
	// crossing in from this cell's own content does not
	g.MouseOver(PointerEvent{Related: Target{Cell: base.E4, Depth: 1, Valid: true}})

	want := []string{"enter e4"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestMouseOutSuppression(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.E4, ctx, fakeHost{})

	g.MouseOut(PointerEvent{Related: Target{Cell: base.E4, Depth: 1, Valid: true}})
	if len(ctx.calls) != 0 {
		t.Fatalf("leave reported while moving onto own content: %v", ctx.calls)
	}

	g.MouseOut(PointerEvent{Related: Target{Cell: base.F4, Valid: true}})
	want := []string{"leave e4"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestMouseOverInvalidRelated(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.A8, ctx, fakeHost{})

	// pointer came from outside anything the host tracks
	g.MouseOver(PointerEvent{Related: Target{Valid: false}})
	want := []string{"enter a8"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestArrowDrawLifecycle(t *testing.T) {
	ctx := newFakeContext()
	from := NewGestureRouter(base.E2, ctx, fakeHost{})
	mid := NewGestureRouter(base.E3, ctx, fakeHost{})
	to := NewGestureRouter(base.E4, ctx, fakeHost{})

	from.MouseDown(ButtonSecondary)
	mid.MouseOver(PointerEvent{Buttons: ButtonSecondary, Related: Target{Cell: base.E2, Valid: true}})
	to.MouseOver(PointerEvent{Buttons: ButtonSecondary, Related: Target{Cell: base.E3, Valid: true}})
	to.MouseUp(ButtonSecondary)

	want := []string{
		"rightdown e2",
		"extend e3", "enter e3",
		"extend e4", "enter e4",
		"finalize e2 e4",
		"rightup e4",
	}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestMouseOverWithoutRightDownDoesNotExtend(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.E4, ctx, fakeHost{})

	// secondary held but no recorded origin
	g.MouseOver(PointerEvent{Buttons: ButtonSecondary})
	want := []string{"enter e4"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestMouseUpWithoutOriginStillReportsRightUp(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.C6, ctx, fakeHost{})

	g.MouseUp(ButtonSecondary)
	want := []string{"rightup c6"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestMouseDownPrimaryIgnored(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.C6, ctx, fakeHost{})

	g.MouseDown(ButtonPrimary)
	g.MouseUp(ButtonPrimary)
	if len(ctx.calls) != 0 {
		t.Errorf("calls = %v, want none", ctx.calls)
	}
}

func TestClickReportsAndClearsArrows(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.D5, ctx, fakeHost{})

	g.Click()
	want := []string{"click d5", "clear"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestDragEnter(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.D5, ctx, fakeHost{})

	g.DragEnter()
	want := []string{"dragover d5"}
	if !reflect.DeepEqual(ctx.calls, want) {
		t.Errorf("calls = %v, want %v", ctx.calls, want)
	}
}

func TestContextMenuAlwaysHandled(t *testing.T) {
	ctx := newFakeContext()
	g := NewGestureRouter(base.D5, ctx, fakeHost{})

	if !g.ContextMenu() {
		t.Error("context menu not suppressed")
	}
}
