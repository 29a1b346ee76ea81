// zobrist.go contains magic numbers used for Zobrist hashing.
//
// More information on Zobrist hashing can be found in the paper:
// http://research.cs.wisc.edu/techreports/1970/TR88.pdf

package engine

import "math/rand"

var (
	zobristPiece     [ColorCount][FigureCount][64]uint64
	zobristEnpassant [64]uint64
	zobristCastle    [AllCastle + 1]uint64
	zobristColor     [ColorCount]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func initZobristPiece(r *rand.Rand) {
	for col := Color(0); col < ColorCount; col++ {
		for fig := Pawn; fig <= King; fig++ {
			for sq := SquareA1; sq <= SquareH8; sq++ {
				zobristPiece[col][fig][sq] = rand64(r)
			}
		}
	}
}

// initZobristEnpassant seeds only the third and sixth ranks: the two ranks
// an en passant target square can ever occupy.
func initZobristEnpassant(r *rand.Rand) {
	for sq := SquareA3; sq <= SquareH3; sq++ {
		zobristEnpassant[sq] = rand64(r)
	}
	for sq := SquareA6; sq <= SquareH6; sq++ {
		zobristEnpassant[sq] = rand64(r)
	}
}

func initZobristCastle(r *rand.Rand) {
	for i := Castle(0); i <= AllCastle; i++ {
		zobristCastle[i] = rand64(r)
	}
}

func initZobristColor(r *rand.Rand) {
	for col := Color(0); col < ColorCount; col++ {
		zobristColor[col] = rand64(r)
	}
}

func init() {
	r := rand.New(rand.NewSource(1))
	initZobristPiece(r)
	initZobristEnpassant(r)
	initZobristCastle(r)
	initZobristColor(r)
}

// zobristPieceAt returns the hash contribution of placing p on sq.
func zobristPieceAt(p Piece, sq Square) uint64 {
	return zobristPiece[p.Color()][p.Figure()][sq]
}
