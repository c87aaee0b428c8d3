package cell

import (
	"testing"

	"cellboard/src/base"
)

// countingNode reports a fixed rect and counts measurements.
type countingNode struct {
	rect    base.Rect
	mounted bool
	reads   int
}

func (n *countingNode) Bounds() (base.Rect, bool) {
	n.reads++
	return n.rect, n.mounted
}

func TestGeometryPublishOnMount(t *testing.T) {
	node := &countingNode{rect: base.Rect{X: 50, Y: 100, W: 50, H: 50}, mounted: true}
	sink := make(GeometryMap)
	tr := NewGeometryTracker(base.C4, node, sink)

	tr.Sync(400, base.WhiteSide)

	r, ok := sink[base.C4]
	if !ok {
		t.Fatal("nothing published after mount")
	}
	if r != node.rect {
		t.Errorf("published %+v, want %+v", r, node.rect)
	}
}

func TestGeometrySkipsUnchangedInputs(t *testing.T) {
	node := &countingNode{rect: base.Rect{W: 50, H: 50}, mounted: true}
	sink := make(GeometryMap)
	tr := NewGeometryTracker(base.C4, node, sink)

	tr.Sync(400, base.WhiteSide)
	reads := node.reads
	for i := 0; i < 10; i++ {
		tr.Sync(400, base.WhiteSide)
	}
	if node.reads != reads {
		t.Errorf("re-measured %d times on identical inputs", node.reads-reads)
	}
}

func TestGeometryRepublishOnWidthChange(t *testing.T) {
	node := &countingNode{rect: base.Rect{W: 50, H: 50}, mounted: true}
	sink := make(GeometryMap)
	tr := NewGeometryTracker(base.C4, node, sink)

	tr.Sync(400, base.WhiteSide)
	node.rect = base.Rect{W: 60, H: 60}
	tr.Sync(480, base.WhiteSide)

	if got := sink[base.C4]; got != node.rect {
		t.Errorf("published %+v after resize, want %+v", got, node.rect)
	}
}

func TestGeometryRepublishOnOrientationChange(t *testing.T) {
	node := &countingNode{rect: base.Rect{W: 50, H: 50}, mounted: true}
	sink := make(GeometryMap)
	tr := NewGeometryTracker(base.C4, node, sink)

	tr.Sync(400, base.WhiteSide)
	reads := node.reads
	tr.Sync(400, base.BlackSide)
	if node.reads == reads {
		t.Error("orientation flip did not re-measure")
	}
}

func TestGeometryUnmountedNodeRetries(t *testing.T) {
	node := &countingNode{rect: base.Rect{W: 50, H: 50}}
	sink := make(GeometryMap)
	tr := NewGeometryTracker(base.C4, node, sink)

	tr.Sync(400, base.WhiteSide)
	if _, ok := sink[base.C4]; ok {
		t.Fatal("published while unmounted")
	}

	// mounting later succeeds on the next sync with the same inputs
	node.mounted = true
	tr.Sync(400, base.WhiteSide)
	if _, ok := sink[base.C4]; !ok {
		t.Error("nothing published after late mount")
	}
}

func TestGeometryMapMergesPerSquare(t *testing.T) {
	sink := make(GeometryMap)
	sink.PublishGeometry(base.A1, base.Rect{W: 1})
	sink.PublishGeometry(base.B2, base.Rect{W: 2})
	sink.PublishGeometry(base.A1, base.Rect{W: 3})

	if len(sink) != 2 {
		t.Fatalf("len = %d, want 2", len(sink))
	}
	if sink[base.A1].W != 3 || sink[base.B2].W != 2 {
		t.Errorf("map state %v", sink)
	}
}
