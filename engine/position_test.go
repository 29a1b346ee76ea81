package engine

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	pos := NewPosition()
	clone := pos.Clone()
	clone.Apply(clone.LegalMoves()[0])
	if pos.String() == clone.String() {
		t.Fatal("mutating the clone should not affect the original")
	}
}

func TestApplyKeepsHashIncremental(t *testing.T) {
	pos := NewPosition()
	for _, uci := range []string{"e2e4", "e7e5", "g1f3"} {
		m, err := ParseUCIMove(pos, uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q): %v", uci, err)
		}
		pos.Apply(m)
		if pos.Hash() != pos.computeHash() {
			t.Fatalf("after %s, incremental hash %d != recomputed hash %d", uci, pos.Hash(), pos.computeHash())
		}
	}
}

// checkBoardInvariants verifies the bitboard and mailbox representations
// agree: colors disjoint, figures pairwise disjoint, their unions equal,
// and every mailbox cell consistent with the bitboards.
func checkBoardInvariants(t *testing.T, pos *Position) {
	t.Helper()
	if pos.ByColor[White]&pos.ByColor[Black] != 0 {
		t.Fatalf("%s: white and black bitboards overlap", pos)
	}
	var figures Bitboard
	for fig := Pawn; fig <= King; fig++ {
		bb := pos.FigureBB(fig)
		if figures&bb != 0 {
			t.Fatalf("%s: figure bitboards overlap at %v", pos, fig)
		}
		figures |= bb
	}
	if figures != pos.Occupied() {
		t.Fatalf("%s: figure union %#x != occupancy %#x", pos, figures, pos.Occupied())
	}
	for sq := SquareA1; sq <= SquareH8; sq++ {
		p := pos.PieceAt(sq)
		if p == NoPiece {
			if pos.Occupied().Has(sq) {
				t.Fatalf("%s: mailbox empty at %v but bitboards occupied", pos, sq)
			}
			continue
		}
		if !pos.PieceBB(p.Color(), p.Figure()).Has(sq) {
			t.Fatalf("%s: mailbox has %v at %v but bitboards disagree", pos, p, sq)
		}
	}
	if pos.Hash() != pos.computeHash() {
		t.Fatalf("%s: incremental hash diverged from a fresh computation", pos)
	}
}

// TestInvariantsAcrossMoveTree walks two plies of every legal move from a
// position exercising castling, en passant, and captures, checking the
// board, mailbox, and hash invariants after every Apply.
func TestInvariantsAcrossMoveTree(t *testing.T) {
	pos, err := NewPositionFromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range pos.LegalMoves() {
		child := pos.Clone()
		child.Apply(m)
		checkBoardInvariants(t, &child)
		for _, m2 := range child.LegalMoves() {
			leaf := child.Clone()
			leaf.Apply(m2)
			checkBoardInvariants(t, &leaf)
		}
	}
}

func TestIsCheck(t *testing.T) {
	pos, err := NewPositionFromFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !pos.IsCheck() {
		t.Error("White king on e1 with Black rook on e2 should be in check")
	}
}

func TestGameStateCheckmate(t *testing.T) {
	// Fool's mate.
	pos := NewPosition()
	for _, uci := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		m, err := ParseUCIMove(pos, uci)
		if err != nil {
			t.Fatalf("ParseUCIMove(%q): %v", uci, err)
		}
		pos.Apply(m)
	}
	if got := pos.GameState(); got != Checkmate {
		t.Errorf("GameState() = %v, want Checkmate", got)
	}
}

func TestGameStateStalemate(t *testing.T) {
	pos, err := NewPositionFromFEN("7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.GameState(); got != Stalemate {
		t.Errorf("GameState() = %v, want Stalemate", got)
	}
}

func TestGameStateInsufficientMaterial(t *testing.T) {
	pos, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.GameState(); got != DrawInsufficientMaterial {
		t.Errorf("GameState() = %v, want DrawInsufficientMaterial", got)
	}
}

func TestUCIMoveStringFormat(t *testing.T) {
	pos := NewPosition()
	m, err := ParseUCIMove(pos, "e2e4")
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "e2e4" {
		t.Errorf("Move.String() = %q, want %q", m.String(), "e2e4")
	}
}
