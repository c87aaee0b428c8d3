package cell

import "cellboard/src/base"

// Node measures the cell's on-screen bounding box. ok is false while the
// underlying element is not mounted yet.
type Node interface {
	Bounds() (r base.Rect, ok bool)
}

// NodeFunc adapts a measurement closure to Node.
type NodeFunc func() (base.Rect, bool)

func (f NodeFunc) Bounds() (base.Rect, bool) { return f() }

// GeometrySink receives one cell's bounding box. Implementations merge
// per-square: publishing one key never disturbs the others.
type GeometrySink interface {
	PublishGeometry(sq base.Square, r base.Rect)
}

// GeometryMap is the shared square-to-bounds map the animation subsystem
// reads to compute inter-cell travel distances. Mutated only from the UI
// goroutine, one key per cell.
type GeometryMap map[base.Square]base.Rect

func (m GeometryMap) PublishGeometry(sq base.Square, r base.Rect) {
	m[sq] = r
}

// GeometryTracker republishes a cell's bounding box when, and only when,
// a layout-affecting input changed: the first successful measurement
// after mount, a board width change, or an orientation change. Hosts may
// call Sync every frame; the gating here keeps 64 cells from re-measuring
// on unrelated renders.
type GeometryTracker struct {
	sq     base.Square
	node   Node
	sink   GeometrySink
	width  int
	orient base.Orientation
	synced bool
}

func NewGeometryTracker(sq base.Square, node Node, sink GeometrySink) *GeometryTracker {
	return &GeometryTracker{sq: sq, node: node, sink: sink}
}

// Sync measures and publishes if a trigger fired. An unmounted node is
// skipped silently; the tracker stays unsynced so the next call retries.
func (t *GeometryTracker) Sync(boardWidth int, o base.Orientation) {
	if t.synced && boardWidth == t.width && o == t.orient {
		return
	}
	if t.node == nil || t.sink == nil {
		return
	}
	r, ok := t.node.Bounds()
	if !ok {
		return
	}
	t.width = boardWidth
	t.orient = o
	t.synced = true
	t.sink.PublishGeometry(t.sq, r)
}
