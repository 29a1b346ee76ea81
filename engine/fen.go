package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	pos, err := NewPositionFromFEN(StartFEN)
	if err != nil {
		panic("engine: invalid built-in start FEN: " + err.Error())
	}
	return pos
}

// PlacementEntry pins a single piece for NewPositionFromPlacement.
type PlacementEntry struct {
	Square Square
	Piece  Piece
}

// NewPositionFromPlacement builds a position from an explicit list of
// piece placements plus the surrounding game state, bypassing FEN
// notation entirely. Placements overwrite each other in list order if
// squares repeat.
func NewPositionFromPlacement(placements []PlacementEntry, sideToMove Color, castleRights Castle, epSquare Square, halfmoveClock, fullmoveNumber int) *Position {
	pos := &Position{
		SideToMove:     sideToMove,
		CastleRights:   castleRights,
		EpSquare:       epSquare,
		HalfmoveClock:  halfmoveClock,
		FullmoveNumber: fullmoveNumber,
	}
	for _, pl := range placements {
		if old := pos.PieceAt(pl.Square); old != NoPiece {
			pos.remove(pl.Square, old)
		}
		if pl.Piece != NoPiece {
			pos.put(pl.Square, pl.Piece)
		}
	}
	pos.hash = pos.computeHash()
	return pos
}

// NewPositionFromFEN parses Forsyth-Edwards Notation into a Position.
// Missing trailing fields default to "- 0 1": no en passant target,
// halfmove clock zero, fullmove number one.
func NewPositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 3 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: expected 3 to 6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	defaults := []string{"-", "0", "1"}
	fields = append(fields, defaults[len(fields)-3:]...)

	placement, stm, castle, ep, halfmove, fullmove := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	pos := &Position{EpSquare: SquareNone}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p, err := pieceFromFENByte(byte(ch))
				if err != nil {
					return nil, err
				}
				if file > 7 {
					return nil, fmt.Errorf("%w: rank %q overflows", ErrInvalidFEN, rankStr)
				}
				pos.put(RankFile(rank, file), p)
				file++
			}
		}
		if file != 8 {
			return nil, fmt.Errorf("%w: rank %q has %d files", ErrInvalidFEN, rankStr, file)
		}
	}

	switch stm {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, stm)
	}

	if castle != "-" {
		for _, ch := range castle {
			switch ch {
			case 'K':
				pos.CastleRights |= WhiteKingSide
			case 'Q':
				pos.CastleRights |= WhiteQueenSide
			case 'k':
				pos.CastleRights |= BlackKingSide
			case 'q':
				pos.CastleRights |= BlackQueenSide
			default:
				return nil, fmt.Errorf("%w: bad castling field %q", ErrInvalidFEN, castle)
			}
		}
	}

	if ep != "-" {
		sq, err := SquareFromString(ep)
		if err != nil {
			return nil, fmt.Errorf("%w: bad en passant square %q", ErrInvalidFEN, ep)
		}
		pos.EpSquare = sq
	}

	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, halfmove)
	}
	pos.HalfmoveClock = hm

	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fullmove)
	}
	pos.FullmoveNumber = fm

	pos.hash = pos.computeHash()
	return pos, nil
}

func pieceFromFENByte(b byte) (Piece, error) {
	col := White
	fb := b
	if b >= 'a' && b <= 'z' {
		col = Black
		fb = b - 'a' + 'A'
	}
	var fig Figure
	switch fb {
	case 'P':
		fig = Pawn
	case 'N':
		fig = Knight
	case 'B':
		fig = Bishop
	case 'R':
		fig = Rook
	case 'Q':
		fig = Queen
	case 'K':
		fig = King
	default:
		return NoPiece, fmt.Errorf("%w: bad piece letter %q", ErrInvalidFEN, string(b))
	}
	return MakePiece(col, fig), nil
}

// String renders pos as a FEN string.
func (pos *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(RankFile(rank, file))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.CastleRights.String())
	sb.WriteByte(' ')
	if pos.EpSquare == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(pos.EpSquare.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))
	return sb.String()
}

// UCI renders m in UCI long algebraic notation. It is equivalent to
// m.String() and exists as a Position method so callers need not import
// the Move type's own formatting directly.
func (pos *Position) UCI(m Move) string {
	return m.String()
}
