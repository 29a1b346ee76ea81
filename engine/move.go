package engine

import (
	"fmt"
	"strings"
)

// MoveType distinguishes the special-case move kinds from a plain move.
// Legality and apply logic branch on this tag rather than inferring intent
// from From/To.
type MoveType uint8

const (
	Normal MoveType = iota
	Castling
	EnPassant
	Promotion
)

// Move is a single ply. Capture is NoPiece and Promotion is NoFigure when
// not applicable. For Castling, From/To are the king's from/to squares; the
// rook's movement is derived from them in Apply.
type Move struct {
	From, To  Square
	Piece     Piece
	Capture   Piece
	Promotion Figure
	Type      MoveType
}

// String renders the move in UCI long algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Type == Promotion {
		sb.WriteString(strings.ToLower(m.Promotion.String()))
	}
	return sb.String()
}

// IsCapture reports whether the move removes an enemy piece, including
// en passant.
func (m Move) IsCapture() bool {
	return m.Capture != NoPiece
}

// ParseUCIMove parses a UCI long algebraic move string against pos, which
// supplies the piece/capture/type context the wire format omits.
func ParseUCIMove(pos *Position, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := SquareFromString(s[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	to, err := SquareFromString(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}

	for _, mv := range pos.LegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.Type == Promotion {
			if len(s) != 5 || strings.ToLower(mv.Promotion.String()) != s[4:5] {
				continue
			}
		} else if len(s) != 4 {
			continue
		}
		return mv, nil
	}
	return Move{}, fmt.Errorf("%w: %q is not legal", ErrInvalidMove, s)
}
