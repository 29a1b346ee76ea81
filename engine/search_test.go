package engine

import (
	"testing"
	"time"
)

func TestSearchFindsMateInOne(t *testing.T) {
	// Black king boxed into a8 by the White king on b6; Rh1-h8 delivers
	// mate along the back rank.
	pos, err := NewPositionFromFEN("k7/8/1K6/8/8/8/8/7R w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	tt := NewHashTable(1 << 16)
	search := NewSearch(tt, MaterialEvaluator{}, nil)
	move, score := search.SearchWithDeadline(pos, time.Now().Add(200*time.Millisecond))

	clone := pos.Clone()
	clone.Apply(move)
	if clone.GameState() != Checkmate {
		t.Fatalf("search chose %v, which does not deliver mate", move)
	}
	if score <= 0 {
		t.Errorf("mating move should score positive for the side to move, got %d", score)
	}
}

func TestSearchReturnsLegalMove(t *testing.T) {
	pos := NewPosition()
	tt := NewHashTable(1 << 16)
	search := NewSearch(tt, MaterialEvaluator{}, nil)
	move, _ := search.SearchWithDeadline(pos, time.Now().Add(100*time.Millisecond))

	legal := false
	for _, m := range pos.LegalMoves() {
		if m == move {
			legal = true
		}
	}
	if !legal {
		t.Fatalf("search returned %v, which is not in LegalMoves()", move)
	}
}

func TestSearchRespectsDeadline(t *testing.T) {
	pos := NewPosition()
	tt := NewHashTable(1 << 16)
	search := NewSearch(tt, MaterialEvaluator{}, nil)

	start := time.Now()
	search.SearchWithDeadline(pos, start.Add(150*time.Millisecond))
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("search ran for %v, well past its 150ms deadline", elapsed)
	}
}
