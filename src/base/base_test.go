package base

import "testing"

func TestSquareRoundTrip(t *testing.T) {
	for sq := A1; sq < NoSquare; sq++ {
		parsed, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("%s: %v", sq, err)
		}
		if parsed != sq {
			t.Errorf("parse(%s) = %s", sq, parsed)
		}
	}
}

func TestParseSquareRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i4", "e44", "44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) accepted", s)
		}
	}
}

func TestNewSquare(t *testing.T) {
	if sq := NewSquare(4, 3); sq != E4 {
		t.Errorf("NewSquare(4,3) = %s", sq)
	}
	if sq := NewSquare(0, 0); sq != A1 {
		t.Errorf("NewSquare(0,0) = %s", sq)
	}
	if sq := NewSquare(7, 7); sq != H8 {
		t.Errorf("NewSquare(7,7) = %s", sq)
	}
}

func TestCellColorPattern(t *testing.T) {
	cases := []struct {
		sq   Square
		want CellColor
	}{
		{A1, DarkCell},
		{H1, LightCell},
		{A8, LightCell},
		{H8, DarkCell},
		{E4, LightCell},
		{D4, DarkCell},
	}
	for _, c := range cases {
		if got := CellColorOf(c.sq); got != c.want {
			t.Errorf("CellColorOf(%s) = %v, want %v", c.sq, got, c.want)
		}
	}
}

func TestOrientationFlip(t *testing.T) {
	if WhiteSide.Flip() != BlackSide || BlackSide.Flip() != WhiteSide {
		t.Error("flip is not an involution")
	}
}

func TestPieceColor(t *testing.T) {
	if c, ok := WPawn.Color(); !ok || c != White {
		t.Errorf("WPawn color = %v %v", c, ok)
	}
	if c, ok := BQueen.Color(); !ok || c != Black {
		t.Errorf("BQueen color = %v %v", c, ok)
	}
	if _, ok := EmptyPiece.Color(); ok {
		t.Error("empty piece has a color")
	}
}

func TestPromotionRank(t *testing.T) {
	if PromotionRank(White) != 7 {
		t.Errorf("white promotes on rank %d", PromotionRank(White))
	}
	if PromotionRank(Black) != 0 {
		t.Errorf("black promotes on rank %d", PromotionRank(Black))
	}
}

func TestQueenOf(t *testing.T) {
	if QueenOf(White) != WQueen || QueenOf(Black) != BQueen {
		t.Error("wrong queen piece")
	}
}

func TestPieceFromRuneRoundTrip(t *testing.T) {
	for _, p := range []Piece{WPawn, WKnight, WBishop, WRook, WQueen, WKing, BPawn, BKnight, BBishop, BRook, BQueen, BKing} {
		if got := PieceFromRune(p.Rune()); got != p {
			t.Errorf("PieceFromRune(%c) = %v, want %v", p.Rune(), got, p)
		}
	}
	if PieceFromRune('x') != InvalidPiece {
		t.Error("garbage rune accepted")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if !r.Contains(10, 20) || !r.Contains(39, 59) {
		t.Error("interior point rejected")
	}
	if r.Contains(40, 20) || r.Contains(10, 60) || r.Contains(9, 30) {
		t.Error("exterior point accepted")
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("center = %+v", c)
	}
}
