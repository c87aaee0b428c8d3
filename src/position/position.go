// Package position holds the piece placement the board renders. It is a
// plain mailbox with FEN placement parsing; legality, castling and move
// generation live outside this widget.
package position

import (
	"fmt"
	"strings"

	"cellboard/src/base"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Mailbox [64]base.Piece

func (m *Mailbox) At(sq base.Square) base.Piece {
	if !sq.IsValid() {
		return base.InvalidPiece
	}
	return m[sq]
}

func (m *Mailbox) Set(sq base.Square, p base.Piece) {
	if !sq.IsValid() {
		return
	}
	m[sq] = p
}

// Start returns the classic starting placement.
func Start() Mailbox {
	m, _ := FromFEN(StartFEN)
	return m
}

// FromFEN parses the piece-placement field of a FEN string. Trailing FEN
// fields (side to move, castling, ...) are ignored.
func FromFEN(fen string) (Mailbox, error) {
	var m Mailbox
	placement := fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		placement = fen[:i]
	}

	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return m, fmt.Errorf("placement needs 8 ranks, got %d", len(rows))
	}

	for i, row := range rows {
		rank := 7 - i // FEN starts at rank 8
		file := 0
		for _, r := range row {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			default:
				p := base.PieceFromRune(r)
				if p == base.InvalidPiece {
					return m, fmt.Errorf("bad placement rune %q", r)
				}
				if file > 7 {
					return m, fmt.Errorf("rank %d overflows", rank+1)
				}
				m.Set(base.NewSquare(file, rank), p)
				file++
			}
		}
		if file != 8 {
			return m, fmt.Errorf("rank %d has %d files", rank+1, file)
		}
	}
	return m, nil
}

// Placement renders the mailbox back into a FEN placement field.
func (m *Mailbox) Placement() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := m.At(base.NewSquare(file, rank))
			if p == base.EmptyPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
