// material.go implements position evaluation: material, piece-square
// tables, and a handful of structural bonuses, phased between midgame and
// endgame. It is a deliberately small evaluation function, not a trained
// one: the weights below are hand-picked constants, not the product of
// texel tuning.

package engine

// MateScore - N is mate in N plies; MatedScore + N is mated in N plies.
// InfinityScore bounds the search window on either side.
const (
	MateScore     = 30000
	MatedScore    = -MateScore
	InfinityScore = 32000
)

// Score is a pair of mid game and end game evaluation scores, in
// centipawns, combined by Eval.Feed once the game phase is known.
type Score struct {
	M, E int32
}

// figureValue holds the material worth of each figure.
var figureValue = [FigureCount]Score{
	NoFigure: {0, 0},
	Pawn:     {100, 120},
	Knight:   {320, 300},
	Bishop:   {330, 320},
	Rook:     {500, 530},
	Queen:    {900, 950},
	King:     {0, 0},
}

// phaseWeight is how much each figure contributes to the non-pawn material
// count that Phase maps onto 0 (midgame)..256 (endgame). A board with all
// non-pawn material present gives phase 0; bare kings and pawns give 256.
var phaseWeight = [FigureCount]int32{
	NoFigure: 0,
	Pawn:     0,
	Knight:   1,
	Bishop:   1,
	Rook:     2,
	Queen:    4,
	King:     0,
}

// pawnPSQT, knightPSQT etc. are indexed by square from White's point of
// view (rank 0 = White's first rank); Black's contribution is mirrored by
// flipping the rank in povSquare.
var (
	pawnPSQT = [64]int32{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPSQT = [64]int32{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPSQT = [64]int32{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPSQT = [64]int32{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	queenPSQT = [64]int32{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	kingPSQTMid = [64]int32{
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	kingPSQTEnd = [64]int32{
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	}
)

// bishopPairBonus and the rook file bonuses are phase-interpolated like
// every other Score below: they matter more in the endgame, where a
// bishop pair's two-color coverage and a rook's open lines are harder
// for the opponent to neutralize with pieces traded off.
var (
	bishopPairBonus       = Score{22, 88}
	rookOpenFileBonus     = Score{8, 20}
	rookHalfOpenFileBonus = Score{4, 10}
)

// povSquare mirrors sq vertically for Black, so piece-square tables can be
// written once from White's perspective.
func povSquare(sq Square, col Color) Square {
	if col == White {
		return sq
	}
	return RankFile(7-sq.Rank(), sq.File())
}

func psqtValue(fig Figure, sq Square) (mid, end int32) {
	switch fig {
	case Pawn:
		return pawnPSQT[sq], pawnPSQT[sq]
	case Knight:
		return knightPSQT[sq], knightPSQT[sq]
	case Bishop:
		return bishopPSQT[sq], bishopPSQT[sq]
	case Rook:
		return rookPSQT[sq], rookPSQT[sq]
	case Queen:
		return queenPSQT[sq], queenPSQT[sq]
	case King:
		return kingPSQTMid[sq], kingPSQTEnd[sq]
	}
	return 0, 0
}

// Phase returns a 0 (pure midgame) .. 256 (pure endgame) interpolation
// factor based on remaining non-pawn material.
func Phase(pos *Position) int32 {
	var w int32
	for fig := Knight; fig <= Queen; fig++ {
		w += phaseWeight[fig] * int32(pos.FigureBB(fig).Count())
	}
	const maxPhase = 2 * (2*(1+1+2) + 4) // 2N+2B+2R+Q per side, both sides
	if w > int32(maxPhase) {
		w = int32(maxPhase)
	}
	return 256 - (w*256)/int32(maxPhase)
}

// Eval accumulates a midgame/endgame score pair for one evaluation pass.
type Eval struct {
	M, E int32
}

func (e *Eval) add(s Score) { e.M += s.M; e.E += s.E }

// Feed collapses the midgame/endgame pair into a single score using the
// given phase, 0 (midgame score only) .. 256 (endgame score only).
func (e *Eval) Feed(phase int32) int32 {
	return (e.M*(256-phase) + e.E*phase) / 256
}

// Evaluator scores a position from the side-to-move's point of view.
// Search depends on this interface rather than the concrete Evaluate
// function so that tests can substitute a deterministic stub.
type Evaluator interface {
	Evaluate(pos *Position) int32
}

// MaterialEvaluator is the engine's built-in Evaluator.
type MaterialEvaluator struct{}

// Evaluate scores pos from the side to move's point of view. Checkmate and
// stalemate are not handled here: callers that need terminal scores should
// consult Position.GameState first, since Evaluate has no notion of ply
// count and cannot produce a mate-distance score.
func (MaterialEvaluator) Evaluate(pos *Position) int32 {
	var e Eval
	evaluateSide(pos, White, &e)
	var black Eval
	evaluateSide(pos, Black, &black)
	e.M -= black.M
	e.E -= black.E

	score := e.Feed(Phase(pos))
	if pos.SideToMove == Black {
		score = -score
	}
	return score
}

func evaluateSide(pos *Position, us Color, e *Eval) {
	for fig := Pawn; fig <= King; fig++ {
		for bb := pos.PieceBB(us, fig); bb != 0; {
			var sq Square
			sq, bb = bb.PopLSB()
			e.add(figureValue[fig])
			mid, end := psqtValue(fig, povSquare(sq, us))
			e.add(Score{mid, end})
		}
	}

	if pos.PieceBB(us, Bishop).Count() >= 2 {
		e.add(bishopPairBonus)
	}

	pawns := pos.FigureBB(Pawn)
	for bb := pos.PieceBB(us, Rook); bb != 0; {
		var sq Square
		sq, bb = bb.PopLSB()
		file := FileMask(sq.File())
		switch {
		case file&pawns == 0:
			e.add(rookOpenFileBonus)
		case file&pos.PieceBB(us, Pawn) == 0:
			e.add(rookHalfOpenFileBonus)
		}
	}
}
