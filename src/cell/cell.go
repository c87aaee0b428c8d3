package cell

import "cellboard/src/base"

// Config wires one cell instance into its host.
type Config struct {
	Square base.Square
	Ctx    Context
	Host   Host
	Node   Node
	Sink   GeometrySink
	Judge  PromotionJudge // nil means PawnJudge
}

// Cell is one mounted square: a geometry tracker, a drop target and a
// gesture router sharing one immutable identity, plus style composition
// over the shared context's state.
type Cell struct {
	sq      base.Square
	ctx     Context
	geo     *GeometryTracker
	drop    *DropTarget
	gesture *GestureRouter
}

func New(cfg Config) *Cell {
	return &Cell{
		sq:      cfg.Square,
		ctx:     cfg.Ctx,
		geo:     NewGeometryTracker(cfg.Square, cfg.Node, cfg.Sink),
		drop:    NewDropTarget(cfg.Square, cfg.Ctx, cfg.Judge),
		gesture: NewGestureRouter(cfg.Square, cfg.Ctx, cfg.Host),
	}
}

func (c *Cell) Square() base.Square      { return c.sq }
func (c *Cell) Gesture() *GestureRouter  { return c.gesture }
func (c *Cell) Drop() *DropTarget        { return c.drop }
func (c *Cell) Geometry() *GeometryTracker { return c.geo }

// SyncGeometry re-measures if board width or orientation changed since
// the last successful measurement. Safe to call every frame.
func (c *Cell) SyncGeometry() {
	c.geo.Sync(c.ctx.BoardWidth(), c.ctx.Orientation())
}

// Frame is one render's worth of output: layered outer style, inner
// content style and the resolved renderer.
type Frame struct {
	Square   base.Square
	Color    base.CellColor
	Style    Style
	Content  ContentStyle
	Renderer Renderer
}

// Frame recomputes the cell's visual output from the shared context plus
// local drop-hover state. Styles carry no identity between renders.
func (c *Cell) Frame() Frame {
	var custom *Style
	if s, ok := c.ctx.SquareStyle(c.sq); ok {
		custom = &s
	}
	in := Inputs{
		Square:      c.sq,
		Color:       base.CellColorOf(c.sq),
		Orientation: c.ctx.Orientation(),
		Premove:     c.ctx.IsPremove(c.sq),
		Over:        c.drop.IsOver(),
		Custom:      custom,
		Theme:       c.ctx.CellTheme(),
		BoardWidth:  c.ctx.BoardWidth(),
	}
	return Frame{
		Square:   c.sq,
		Color:    in.Color,
		Style:    ComposeCell(in),
		Content:  ComposeContent(in),
		Renderer: c.ctx.RendererFor(c.sq),
	}
}
