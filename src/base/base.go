package base

import "fmt"

// ---- Squares ----

// Square identifies one cell of the board (0..63).
// Little-endian rank-file mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the column 0..7 (0 = a).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the row 0..7 (0 = rank 1).
func (sq Square) Rank() int { return int(sq) >> 3 }

func (sq Square) IsValid() bool { return sq < NoSquare }

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Mirror flips the square vertically (a1 <-> a8).
func (sq Square) Mirror() Square { return sq ^ 56 }

// ---- Cell color ----

// CellColor is the checkered appearance of a square, derived from its
// coordinates and passed into the cell core as an input.
type CellColor uint8

const (
	LightCell CellColor = iota
	DarkCell
)

func (c CellColor) String() string {
	if c == LightCell {
		return "light"
	}
	return "dark"
}

// CellColorOf derives the checker color; a1 is a dark square.
func CellColorOf(sq Square) CellColor {
	if (sq.File()+sq.Rank())&1 == 0 {
		return DarkCell
	}
	return LightCell
}

// ---- Orientation ----

// Orientation is the side of the board facing the viewer.
type Orientation uint8

const (
	WhiteSide Orientation = iota
	BlackSide
)

func (o Orientation) Flip() Orientation {
	if o == WhiteSide {
		return BlackSide
	}
	return WhiteSide
}

func (o Orientation) String() string {
	if o == BlackSide {
		return "black"
	}
	return "white"
}

func OrientationFromString(s string) Orientation {
	if s == "black" {
		return BlackSide
	}
	return WhiteSide
}

// ---- Pieces ----

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

type Piece uint8

const (
	EmptyPiece Piece = iota
	WPawn
	WKnight
	WBishop
	WRook
	WQueen
	WKing
	BPawn
	BKnight
	BBishop
	BRook
	BQueen
	BKing
	InvalidPiece Piece = 255
)

func (p Piece) IsWhite() bool { return p >= WPawn && p <= WKing }
func (p Piece) IsBlack() bool { return p >= BPawn && p <= BKing }
func (p Piece) IsPawn() bool  { return p == WPawn || p == BPawn }

// Color reports the side owning the piece; ok is false for empty or
// invalid pieces.
func (p Piece) Color() (Color, bool) {
	switch {
	case p.IsWhite():
		return White, true
	case p.IsBlack():
		return Black, true
	default:
		return White, false
	}
}

// QueenOf returns the queen of the given side, the default choice when a
// promotion is auto-resolved.
func QueenOf(c Color) Piece {
	if c == Black {
		return BQueen
	}
	return WQueen
}

// PromotionRank is the rank a pawn of the given side promotes on.
func PromotionRank(c Color) int {
	if c == Black {
		return 0
	}
	return 7
}

func PieceFromRune(r rune) Piece {
	switch r {
	case 'P':
		return WPawn
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'R':
		return WRook
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'r':
		return BRook
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return InvalidPiece
	}
}

func (p Piece) Rune() rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

// Glyph returns the unicode figurine used by the terminal front-end.
func (p Piece) Glyph() string {
	switch p {
	case WKing:
		return "♔"
	case WQueen:
		return "♕"
	case WRook:
		return "♖"
	case WBishop:
		return "♗"
	case WKnight:
		return "♘"
	case WPawn:
		return "♙"
	case BKing:
		return "♚"
	case BQueen:
		return "♛"
	case BRook:
		return "♜"
	case BBishop:
		return "♝"
	case BKnight:
		return "♞"
	case BPawn:
		return "♟"
	case EmptyPiece:
		return " "
	default:
		return "?"
	}
}

// ---- Viewport geometry ----

type Point struct {
	X float64
	Y float64
}

// Rect is an on-screen bounding box in viewport coordinates.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) IsZero() bool {
	return r == Rect{}
}
