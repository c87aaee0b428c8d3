package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"

	"cellboard/src"
	"cellboard/src/base"
	"cellboard/src/cell"
	"cellboard/src/logx"
)

// character cell footprint on the terminal grid
const (
	cellCols = 3
	cellRows = 1
)

// CLIProcessing drives the cell core from a terminal: the 64 cells are
// mounted on a character-grid host and the cursor keys synthesize the
// pointer events a windowing system would deliver.
type CLIProcessing struct {
	board *src.BoardController
	cells [64]*cell.Cell
	logx  logx.Logger

	// cursor position on the screen grid, 0..7 each
	gx, gy int

	// simulated drag
	dragging bool
	payload  cell.DragPayload

	// simulated right-button arrow draw
	arrowing    bool
	arrowOrigin base.Square

	in  *os.File
	out io.Writer
}

func NewCLI(b *src.BoardController, l logx.Logger) *CLIProcessing {
	c := &CLIProcessing{board: b, logx: l, in: os.Stdin, out: os.Stdout}
	c.board.SetBoardWidth(cellCols * 8)
	for i := 0; i < 64; i++ {
		sq := base.Square(i)
		c.cells[i] = cell.New(cell.Config{
			Square: sq,
			Ctx:    b,
			Host:   c,
			Node:   c.nodeFor(sq),
			Sink:   b.Geometry(),
		})
	}
	return c
}

// ---- cell.Host on the character grid ----

func (c *CLIProcessing) CellAt(x, y int) (base.Square, bool) {
	gx := x / cellCols
	gy := y / cellRows
	if gx < 0 || gx > 7 || gy < 0 || gy > 7 {
		return base.NoSquare, false
	}
	return c.squareAtGrid(gx, gy), true
}

func (c *CLIProcessing) Contains(owner base.Square, related cell.Target) bool {
	return related.Valid && related.Cell == owner
}

func (c *CLIProcessing) nodeFor(sq base.Square) cell.Node {
	return cell.NodeFunc(func() (base.Rect, bool) {
		gx, gy := c.gridOfSquare(sq)
		return base.Rect{
			X: float64(gx * cellCols), Y: float64(gy * cellRows),
			W: cellCols, H: cellRows,
		}, true
	})
}

// squareAtGrid maps screen grid coordinates to a square; the top row is
// rank 8 seen from white and rank 1 seen from black.
func (c *CLIProcessing) squareAtGrid(gx, gy int) base.Square {
	sq := base.NewSquare(gx, 7-gy)
	if c.board.Orientation() == base.BlackSide {
		sq = base.NewSquare(7-sq.File(), 7-sq.Rank())
	}
	return sq
}

func (c *CLIProcessing) gridOfSquare(sq base.Square) (int, int) {
	f, r := sq.File(), sq.Rank()
	if c.board.Orientation() == base.BlackSide {
		f, r = 7-f, 7-r
	}
	return f, 7 - r
}

func (c *CLIProcessing) cursorSquare() base.Square {
	return c.squareAtGrid(c.gx, c.gy)
}

// moveCursor synthesizes the out/over pair a pointer crossing would
// produce, with the related cell attached to each side.
func (c *CLIProcessing) moveCursor(dx, dy int) {
	nx, ny := c.gx+dx, c.gy+dy
	if nx < 0 || nx > 7 || ny < 0 || ny > 7 {
		return
	}
	prev := c.cursorSquare()
	next := c.squareAtGrid(nx, ny)

	buttons := cell.ButtonNone
	if c.arrowing {
		buttons = cell.ButtonSecondary
	}

	c.cells[prev].Gesture().MouseOut(cell.PointerEvent{
		Buttons: buttons,
		Related: cell.Target{Cell: next, Valid: true},
	})
	if c.dragging {
		c.cells[prev].Drop().SetOver(false)
	}
	c.gx, c.gy = nx, ny
	c.cells[next].Gesture().MouseOver(cell.PointerEvent{
		Buttons: buttons,
		Related: cell.Target{Cell: prev, Valid: true},
	})
	if c.dragging {
		// finger-style hit-test path through the origin cell
		c.cells[c.payload.Origin].Gesture().TouchMove(nx*cellCols, ny*cellRows)
		c.cells[next].Drop().SetOver(true)
	}
}

// raw processing
// - arrow keys move the cursor
// - space picks up / drops a piece, enter is a plain click
// - 'a' begins and ends an arrow, 'm' toggles a mark on the cursor cell
// - 'f' flips, 'c' clears marks and arrows, 'q' or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	c.syncGeometry()
	c.redraw()

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprintln(c.out, "\r\nInterrupted")
			return nil
		}
		if b == 0x1b { // CSI arrow sequence
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' {
				switch b2 {
				case 'A':
					c.moveCursor(0, -1)
				case 'B':
					c.moveCursor(0, 1)
				case 'C':
					c.moveCursor(1, 0)
				case 'D':
					c.moveCursor(-1, 0)
				}
				c.redraw()
			}
			continue
		}

		switch b {
		case 'q', 'Q':
			fmt.Fprintln(c.out, "\r\nQuitting")
			return nil
		case ' ':
			c.toggleDrag()
			if c.board.Promotion().Open {
				c.promptPromotion(r)
			}
		case '\r', '\n':
			c.cells[c.cursorSquare()].Gesture().Click()
		case 'a', 'A':
			c.toggleArrow()
		case 'm', 'M':
			// a right click in place marks the cursor cell
			sq := c.cursorSquare()
			c.cells[sq].Gesture().MouseDown(cell.ButtonSecondary)
			c.cells[sq].Gesture().MouseUp(cell.ButtonSecondary)
		case 'f', 'F':
			c.board.FlipOrientation()
			c.syncGeometry()
		case 'c', 'C':
			c.board.ClearPremoves()
			c.board.ArrowClear()
			c.board.ClearSquareStyles()
		}
		c.board.FinishAnimation()
		c.redraw()
	}
}

// toggleDrag picks up the piece under the cursor or resolves the drop.
func (c *CLIProcessing) toggleDrag() {
	sq := c.cursorSquare()
	if !c.dragging {
		p, ok := c.board.PieceAt(sq)
		if !ok {
			return
		}
		c.dragging = true
		c.payload = cell.DragPayload{Piece: p, Origin: sq, DragID: uuid.New()}
		c.logx.Debugf("drag %s start %s", c.payload.DragID, sq)
		if col, ok := p.Color(); ok {
			c.board.SetDraggedColor(col)
		}
		c.cells[sq].Drop().SetOver(true)
		return
	}

	payload := c.payload
	c.dragging = false
	for _, cl := range c.cells {
		cl.Drop().SetOver(false)
	}
	if sq == payload.Origin {
		c.cells[sq].Gesture().Click()
		return
	}
	c.cells[sq].Drop().Drop(payload)
}

func (c *CLIProcessing) toggleArrow() {
	sq := c.cursorSquare()
	if !c.arrowing {
		c.arrowing = true
		c.arrowOrigin = sq
		c.cells[sq].Gesture().MouseDown(cell.ButtonSecondary)
		return
	}
	c.arrowing = false
	c.cells[sq].Gesture().MouseUp(cell.ButtonSecondary)
}

func (c *CLIProcessing) promptPromotion(r *bufio.Reader) {
	fmt.Fprint(c.out, "\r\npromote to [q/r/b/n, any other cancels]: ")
	b, err := r.ReadByte()
	if err != nil {
		c.board.ClosePromotion(base.InvalidPiece)
		return
	}
	col := c.board.LastDraggedColor()
	var p base.Piece
	switch b {
	case 'q', 'Q':
		p = base.QueenOf(col)
	case 'r', 'R':
		p = pieceFor(col, base.WRook, base.BRook)
	case 'b', 'B':
		p = pieceFor(col, base.WBishop, base.BBishop)
	case 'n', 'N':
		p = pieceFor(col, base.WKnight, base.BKnight)
	default:
		p = base.InvalidPiece
	}
	c.board.ClosePromotion(p)
}

func pieceFor(c base.Color, w, b base.Piece) base.Piece {
	if c == base.Black {
		return b
	}
	return w
}

func (c *CLIProcessing) syncGeometry() {
	for _, cl := range c.cells {
		cl.SyncGeometry()
	}
}

func (c *CLIProcessing) redraw() {
	fmt.Fprint(c.out, "\033[2J\033[H")
	DrawCells(c.out, c.board, &c.cells, c.cursorSquare())
	c.printStatus()
}

func (c *CLIProcessing) printStatus() {
	fmt.Fprint(c.out, "\r\n")
	fmt.Fprintf(c.out, "FEN: %s\r\n", c.board.Position().Placement())
	if c.dragging {
		fmt.Fprintf(c.out, "dragging %c from %s\r\n", c.payload.Piece.Rune(), c.payload.Origin)
	}
	if c.arrowing {
		fmt.Fprintf(c.out, "arrow from %s\r\n", c.arrowOrigin)
	}
	if arrows := c.board.Arrows(); len(arrows) > 0 {
		parts := make([]string, 0, len(arrows))
		for _, a := range arrows {
			if a.From == a.To {
				parts = append(parts, a.From.String())
			} else {
				parts = append(parts, a.From.String()+"-"+a.To.String())
			}
		}
		fmt.Fprintf(c.out, "arrows: %s\r\n", strings.Join(parts, " "))
	}
	fmt.Fprint(c.out, "\r\narrows move, space grab/drop, enter click, 'a' arrow, 'm' mark, 'f' flip, 'c' clear, 'q' quit\r\n")
}

// RunLineMode is the fallback when the terminal cannot enter raw mode.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.syncGeometry()
	c.redraw()
	fmt.Fprintln(c.out, "Commands: move <from> <to>, mark <sq>, arrow <from> <to>, flip, clear, q")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "q", "Q", "quit":
			return nil
		case "flip":
			c.board.FlipOrientation()
			c.syncGeometry()
		case "clear":
			c.board.ClearPremoves()
			c.board.ArrowClear()
			c.board.ClearSquareStyles()
		case "mark":
			if len(fields) == 2 {
				if sq, err := base.ParseSquare(fields[1]); err == nil {
					c.cells[sq].Gesture().MouseDown(cell.ButtonSecondary)
					c.cells[sq].Gesture().MouseUp(cell.ButtonSecondary)
				}
			}
		case "arrow":
			if len(fields) == 3 {
				from, err1 := base.ParseSquare(fields[1])
				to, err2 := base.ParseSquare(fields[2])
				if err1 == nil && err2 == nil {
					c.cells[from].Gesture().MouseDown(cell.ButtonSecondary)
					c.cells[to].Gesture().MouseUp(cell.ButtonSecondary)
				}
			}
		case "move":
			if len(fields) == 3 {
				c.lineMove(fields[1], fields[2], scanner)
			}
		default:
			fmt.Fprintf(c.out, "unknown command: %s\n", fields[0])
			continue
		}
		c.board.FinishAnimation()
		c.redraw()
	}
	return scanner.Err()
}

func (c *CLIProcessing) lineMove(fromS, toS string, scanner *bufio.Scanner) {
	from, err1 := base.ParseSquare(fromS)
	to, err2 := base.ParseSquare(toS)
	if err1 != nil || err2 != nil {
		fmt.Fprintln(c.out, "bad square")
		return
	}
	p, ok := c.board.PieceAt(from)
	if !ok {
		fmt.Fprintf(c.out, "no piece on %s\n", from)
		return
	}
	if col, ok := p.Color(); ok {
		c.board.SetDraggedColor(col)
	}
	c.cells[to].Drop().Drop(cell.DragPayload{Piece: p, Origin: from, DragID: uuid.New()})
	if c.board.Promotion().Open {
		fmt.Fprint(c.out, "promote to [q/r/b/n, any other cancels]: ")
		if !scanner.Scan() {
			c.board.ClosePromotion(base.InvalidPiece)
			return
		}
		choice := strings.TrimSpace(scanner.Text())
		col := c.board.LastDraggedColor()
		switch strings.ToLower(choice) {
		case "q":
			c.board.ClosePromotion(base.QueenOf(col))
		case "r":
			c.board.ClosePromotion(pieceFor(col, base.WRook, base.BRook))
		case "b":
			c.board.ClosePromotion(pieceFor(col, base.WBishop, base.BBishop))
		case "n":
			c.board.ClosePromotion(pieceFor(col, base.WKnight, base.BKnight))
		default:
			c.board.ClosePromotion(base.InvalidPiece)
		}
	}
}
