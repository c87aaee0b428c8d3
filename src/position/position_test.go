package position

import (
	"testing"

	"cellboard/src/base"
)

func TestStartPlacement(t *testing.T) {
	m := Start()
	if m.At(base.E1) != base.WKing {
		t.Errorf("e1 = %c", m.At(base.E1).Rune())
	}
	if m.At(base.E8) != base.BKing {
		t.Errorf("e8 = %c", m.At(base.E8).Rune())
	}
	if m.At(base.A2) != base.WPawn || m.At(base.H7) != base.BPawn {
		t.Error("pawn ranks wrong")
	}
	if m.At(base.E4) != base.EmptyPiece {
		t.Error("middle of the board occupied")
	}
}

func TestFromFENRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"8/8/8/8/8/8/8/8",
		"4k3/8/8/8/8/8/4P3/4K3",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R",
	}
	for _, fen := range fens {
		m, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("%s: %v", fen, err)
		}
		if got := m.Placement(); got != fen {
			t.Errorf("placement = %s, want %s", got, fen)
		}
	}
}

func TestFromFENFullRecordPrefix(t *testing.T) {
	m, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("full FEN record rejected: %v", err)
	}
	if m != Start() {
		t.Error("placement differs from the starting position")
	}
}

func TestFromFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8",          // seven ranks
		"9/8/8/8/8/8/8/8",        // rank overflow
		"ppppppppp/8/8/8/8/8/8/8", // nine files
		"8/8/8/8/8/8/8/7x",       // unknown piece
	}
	for _, fen := range bad {
		if _, err := FromFEN(fen); err == nil {
			t.Errorf("FromFEN(%q) accepted", fen)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	var m Mailbox
	m.Set(base.D5, base.BKnight)
	if m.At(base.D5) != base.BKnight {
		t.Error("set piece not readable")
	}
	m.Set(base.D5, base.EmptyPiece)
	if m.At(base.D5) != base.EmptyPiece {
		t.Error("square not cleared")
	}
}
