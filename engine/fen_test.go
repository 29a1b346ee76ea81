package engine

import "testing"

func TestNewPositionFromFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		pos, err := NewPositionFromFEN(fen)
		if err != nil {
			t.Fatalf("NewPositionFromFEN(%q): %v", fen, err)
		}
		if got := pos.String(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
	}
}

func TestNewPositionIsStartPosition(t *testing.T) {
	pos := NewPosition()
	if pos.SideToMove != White {
		t.Error("start position should have White to move")
	}
	if pos.CastleRights != AllCastle {
		t.Errorf("start position castle rights = %v, want AllCastle", pos.CastleRights)
	}
	if got := len(pos.LegalMoves()); got != 20 {
		t.Errorf("start position has %d legal moves, want 20", got)
	}
}

func TestNewPositionFromFENDefaultsTrailingFields(t *testing.T) {
	pos, err := NewPositionFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	if err != nil {
		t.Fatal(err)
	}
	if pos.EpSquare != SquareNone {
		t.Errorf("EpSquare = %v, want SquareNone", pos.EpSquare)
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 1 {
		t.Errorf("clocks = (%d, %d), want (0, 1)", pos.HalfmoveClock, pos.FullmoveNumber)
	}
	if got := pos.String(); got != StartFEN {
		t.Errorf("String() = %q, want %q", got, StartFEN)
	}
}

func TestNewPositionFromFENRejectsBadInput(t *testing.T) {
	for _, fen := range []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
	} {
		if _, err := NewPositionFromFEN(fen); err == nil {
			t.Errorf("NewPositionFromFEN(%q) should have failed", fen)
		}
	}
}

func TestNewPositionFromPlacement(t *testing.T) {
	pos := NewPositionFromPlacement([]PlacementEntry{
		{SquareE1, MakePiece(White, King)},
		{SquareE8, MakePiece(Black, King)},
		{SquareA1, MakePiece(White, Rook)},
	}, White, WhiteQueenSide, SquareNone, 0, 1)

	if pos.PieceAt(SquareE1).Figure() != King {
		t.Fatal("expected White king on e1")
	}
	if pos.CastleRights != WhiteQueenSide {
		t.Errorf("castle rights = %v, want WhiteQueenSide", pos.CastleRights)
	}
	if pos.Hash() != pos.computeHash() {
		t.Error("hash should match a from-scratch computation")
	}
}
