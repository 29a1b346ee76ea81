package engine

// Board is the piece-placement layer: bitboards for fast set operations,
// plus a mailbox for O(1) square-to-piece lookup. The two are always kept
// in sync by put/remove; nothing outside this file touches them directly.
type Board struct {
	ByColor  [ColorCount]Bitboard
	ByFigure [FigureCount]Bitboard
	mailbox  [64]Piece
}

// PieceAt returns the piece occupying sq, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	return b.mailbox[sq]
}

// Occupied returns the set of all occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.ByColor[White] | b.ByColor[Black]
}

// ColorBB returns the set of squares occupied by col.
func (b *Board) ColorBB(col Color) Bitboard {
	return b.ByColor[col]
}

// FigureBB returns the set of squares occupied by fig, of either color.
func (b *Board) FigureBB(fig Figure) Bitboard {
	return b.ByFigure[fig]
}

// PieceBB returns the set of squares occupied by a col/fig piece.
func (b *Board) PieceBB(col Color, fig Figure) Bitboard {
	return b.ByColor[col] & b.ByFigure[fig]
}

// King returns the square of col's king, or SquareNone if absent.
func (b *Board) King(col Color) Square {
	bb := b.PieceBB(col, King)
	if bb == 0 {
		return SquareNone
	}
	sq, _ := bb.PopLSB()
	return sq
}

// put places p on sq. sq must be empty.
func (b *Board) put(sq Square, p Piece) {
	b.mailbox[sq] = p
	b.ByColor[p.Color()] = b.ByColor[p.Color()].Set(sq)
	b.ByFigure[p.Figure()] = b.ByFigure[p.Figure()].Set(sq)
}

// remove clears sq, which must hold p.
func (b *Board) remove(sq Square, p Piece) {
	b.mailbox[sq] = NoPiece
	b.ByColor[p.Color()] = b.ByColor[p.Color()].Clear(sq)
	b.ByFigure[p.Figure()] = b.ByFigure[p.Figure()].Clear(sq)
}

// move relocates the piece on from (which must be p) to to, which must be
// empty. Use remove first if to is occupied, e.g. by a capture.
func (b *Board) move(from, to Square, p Piece) {
	b.remove(from, p)
	b.put(to, p)
}
