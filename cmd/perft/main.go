// Command perft counts leaf nodes reachable from a position at a given
// depth, playing every legal move at each ply. It exists to test, debug,
// and benchmark move generation; see
// https://www.chessprogramming.org/Perft for background and published
// reference counts.
//
// Example:
//
//	$ perft -fen startpos -max_depth 5
//	Searching FEN "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//	depth        nodes   elapsed
//	-----+------------+----------
//	    1           20     4.12µs
//	    2          400     61.3µs
//	    3         8902      1.1ms
//	    4       197281     18.4ms
//	    5      4865609      412ms
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nullsector/chessbox/engine"
)

var (
	fenFlag   = flag.String("fen", "startpos", `position to search, or a FEN string`)
	minDepth  = flag.Int("min_depth", 1, "minimum depth to search (inclusive)")
	maxDepth  = flag.Int("max_depth", 5, "maximum depth to search (inclusive)")
	moveFlags = flag.String("moves", "", "comma-separated UCI moves to apply before searching")
)

var knownFENs = map[string]string{
	"startpos": engine.StartFEN,
	"kiwipete": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"duplain":  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

func main() {
	flag.Parse()

	fen := *fenFlag
	if known, ok := knownFENs[fen]; ok {
		fen = known
	}

	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	if *moveFlags != "" {
		for _, s := range strings.Split(*moveFlags, ",") {
			m, err := engine.ParseUCIMove(pos, s)
			if err != nil {
				log.Fatalf("perft: %v", err)
			}
			pos.Apply(m)
		}
	}

	fmt.Printf("Searching FEN %q\n", pos.String())
	fmt.Println("depth        nodes   elapsed")
	fmt.Println("-----+------------+----------")
	for depth := *minDepth; depth <= *maxDepth; depth++ {
		start := time.Now()
		nodes := pos.Perft(depth)
		elapsed := time.Since(start)
		fmt.Printf("%5d %12d %10s\n", depth, nodes, elapsed)
	}
}
