package engine

// LegalMoves returns every legal move in pos. Moves are generated
// pseudo-legally by piece kind and then filtered by applying each one to a
// scratch clone and checking whether the moving side's king ends up
// attacked; there is no separate pin-detection pass.
func (pos *Position) LegalMoves() []Move {
	pseudo := pos.pseudoLegalMoves()
	us := pos.SideToMove
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		clone := pos.Clone()
		clone.Apply(m)
		// A kingless side (possible in test positions built from partial
		// FENs) has nothing to leave in check.
		if k := clone.King(us); k == SquareNone || !clone.Board.IsAttacked(k, us.Opposite()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoLegalMoves generates every move obeying piece movement rules,
// without checking whether the moving side's own king is left in check.
// Captures are returned before quiet moves, a cheap ordering hint that
// helps alpha-beta cut off sooner.
func (pos *Position) pseudoLegalMoves() []Move {
	us := pos.SideToMove
	them := us.Opposite()
	occ := pos.Occupied()
	ownOcc := pos.ColorBB(us)
	enemyOcc := pos.ColorBB(them)

	var quiet, captures []Move

	addMoves := func(from Square, fig Figure, targets Bitboard) {
		p := MakePiece(us, fig)
		for targets != 0 {
			var to Square
			to, targets = targets.PopLSB()
			if enemyOcc.Has(to) {
				captures = append(captures, Move{From: from, To: to, Piece: p, Capture: pos.PieceAt(to)})
			} else {
				quiet = append(quiet, Move{From: from, To: to, Piece: p})
			}
		}
	}

	for bb := pos.PieceBB(us, Knight); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		addMoves(sq, Knight, KnightMask(sq)&^ownOcc)
	}
	for bb := pos.PieceBB(us, Bishop); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		addMoves(sq, Bishop, BishopAttacks(sq, occ)&^ownOcc)
	}
	for bb := pos.PieceBB(us, Rook); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		addMoves(sq, Rook, RookAttacks(sq, occ)&^ownOcc)
	}
	for bb := pos.PieceBB(us, Queen); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		addMoves(sq, Queen, QueenAttacks(sq, occ)&^ownOcc)
	}
	for bb := pos.PieceBB(us, King); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		addMoves(sq, King, KingMask(sq)&^ownOcc)
	}

	pos.genPawnMoves(us, occ, enemyOcc, &quiet, &captures)
	pos.genCastling(us, occ, &quiet)

	return append(captures, quiet...)
}

// promotionRank is the rank a pawn of col lands on when it promotes.
func promotionRank(col Color) int {
	if col == White {
		return 7
	}
	return 0
}

func (pos *Position) genPawnMoves(us Color, occ, enemyOcc Bitboard, quiet, captures *[]Move) {
	p := MakePiece(us, Pawn)
	for bb := pos.PieceBB(us, Pawn); bb != 0; {
		var from Square
		from, bb = bb.PopLSB()

		pushes := PawnQuietMask(us, from)
		for t := pushes; t != 0; {
			var to Square
			to, t = t.PopLSB()
			if occ.Has(to) {
				continue
			}
			// A two-square push is blocked if the intermediate square is
			// occupied, even though the landing square itself is free.
			if abs(int(to)-int(from)) == 16 {
				mid := Square((int(from) + int(to)) / 2)
				if occ.Has(mid) {
					continue
				}
			}
			appendPawnMove(quiet, from, to, p, NoPiece, us)
		}

		for t := PawnCaptureMask(us, from) & enemyOcc; t != 0; {
			var to Square
			to, t = t.PopLSB()
			appendPawnMove(captures, from, to, p, pos.PieceAt(to), us)
		}

		if pos.EpSquare != SquareNone && PawnCaptureMask(us, from).Has(pos.EpSquare) {
			capSq := RankFile(from.Rank(), pos.EpSquare.File())
			*captures = append(*captures, Move{
				From: from, To: pos.EpSquare, Piece: p,
				Capture: pos.PieceAt(capSq), Type: EnPassant,
			})
		}
	}
}

// appendPawnMove appends a single pawn push or capture, expanding to the
// four promotion moves when to lands on the back rank.
func appendPawnMove(list *[]Move, from, to Square, p, capture Piece, us Color) {
	if to.Rank() == promotionRank(us) {
		for _, promo := range [...]Figure{Queen, Rook, Bishop, Knight} {
			*list = append(*list, Move{From: from, To: to, Piece: p, Capture: capture, Promotion: promo, Type: Promotion})
		}
		return
	}
	*list = append(*list, Move{From: from, To: to, Piece: p, Capture: capture})
}

func (pos *Position) genCastling(us Color, occ Bitboard, quiet *[]Move) {
	them := us.Opposite()
	king := pos.King(us)
	if king == SquareNone || pos.Board.IsAttacked(king, them) {
		return
	}

	type side struct {
		right             Castle
		kingFrom, kingTo  Square
		transit, clearBB  Bitboard
	}

	var sides []side
	if us == White {
		sides = []side{
			{WhiteKingSide, SquareE1, SquareG1, sq2bb(SquareF1, SquareG1), sq2bb(SquareF1, SquareG1)},
			{WhiteQueenSide, SquareE1, SquareC1, sq2bb(SquareC1, SquareD1), sq2bb(SquareB1, SquareC1, SquareD1)},
		}
	} else {
		sides = []side{
			{BlackKingSide, SquareE8, SquareG8, sq2bb(SquareF8, SquareG8), sq2bb(SquareF8, SquareG8)},
			{BlackQueenSide, SquareE8, SquareC8, sq2bb(SquareC8, SquareD8), sq2bb(SquareB8, SquareC8, SquareD8)},
		}
	}

	for _, s := range sides {
		if pos.CastleRights&s.right == 0 {
			continue
		}
		if occ&s.clearBB != 0 {
			continue
		}
		attacked := false
		for bb := s.transit; bb != 0; {
			var sq Square
			sq, bb = bb.PopLSB()
			if pos.Board.IsAttacked(sq, them) {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*quiet = append(*quiet, Move{
			From: s.kingFrom, To: s.kingTo, Piece: MakePiece(us, King), Type: Castling,
		})
	}
}

func sq2bb(sqs ...Square) Bitboard {
	var bb Bitboard
	for _, sq := range sqs {
		bb = bb.Set(sq)
	}
	return bb
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
