package engine

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Stats stores statistics about a completed search.
type Stats struct {
	CacheHit  uint64 // positions found in the transposition table
	CacheMiss uint64 // positions not found in the transposition table
	Nodes     uint64 // total nodes visited, summed across root workers
	Depth     int32  // deepest iterative-deepening depth completed
}

// CacheHitRatio returns the ratio of transposition table hits over total
// lookups.
func (s *Stats) CacheHitRatio() float32 {
	return float32(s.CacheHit) / float32(s.CacheHit+s.CacheMiss)
}

// Logger reports search progress. Search calls it from the goroutine
// running SearchWithDeadline, after each depth's root workers have joined;
// a Logger shared between concurrent searches must be safe for concurrent
// use.
type Logger interface {
	// BeginSearch signals a new search is started.
	BeginSearch()
	// EndSearch signals the end of search.
	EndSearch()
	// PrintPV logs the principal move and score found at the end of one
	// completed iterative-deepening depth.
	PrintPV(stats Stats, depth int32, score int32, move Move)
}

// NulLogger is a Logger that does nothing.
type NulLogger struct{}

func (NulLogger) BeginSearch()                      {}
func (NulLogger) EndSearch()                        {}
func (NulLogger) PrintPV(Stats, int32, int32, Move) {}

// Search runs iterative-deepening negamax search, sharing one
// transposition table across root-parallel workers.
type Search struct {
	tt   *HashTable
	eval Evaluator
	log  Logger
}

// NewSearch returns a Search backed by tt and eval. If log is nil, a
// NulLogger is used.
func NewSearch(tt *HashTable, eval Evaluator, log Logger) *Search {
	if log == nil {
		log = NulLogger{}
	}
	return &Search{tt: tt, eval: eval, log: log}
}

// SearchWithDeadline searches pos until deadline, returning the best move
// found and its score from the side-to-move's point of view. It searches
// iteratively deeper depths, parallelizing each depth's root moves across
// one goroutine per move (bounded by GOMAXPROCS), and keeps the best
// result from the deepest depth that completed before the deadline.
func (s *Search) SearchWithDeadline(pos *Position, deadline time.Time) (Move, int32) {
	clock := NewClock(deadline)
	s.log.BeginSearch()
	defer s.log.EndSearch()

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return Move{}, 0
	}

	var (
		bestMove  Move
		bestScore int32 = -InfinityScore
		stats     Stats
	)
	bestMove = moves[0]

	for depth := int32(1); ; depth++ {
		move, score, depthStats := s.searchRoot(pos, moves, depth, clock)
		stats.Nodes += depthStats.Nodes
		stats.CacheHit += depthStats.CacheHit
		stats.CacheMiss += depthStats.CacheMiss
		if clock.stopped.Load() {
			// This depth was cut short partway through; its result mixes
			// fully-searched and deadline-truncated root moves, so it is
			// discarded in favor of the last depth that ran to completion.
			break
		}
		bestMove, bestScore = move, score
		stats.Depth = depth
		s.log.PrintPV(stats, depth, score, move)
	}
	return bestMove, bestScore
}

// searchCounters accumulates one root worker's node and transposition-table
// probe counts. Each worker owns one locally and it is summed into the
// shared Stats after all workers join, avoiding an atomic increment on
// every single node visited.
type searchCounters struct {
	nodes     uint64
	cacheHit  uint64
	cacheMiss uint64
}

// searchRoot evaluates every root move at depth in parallel, one goroutine
// per move, each with its own full (-inf, +inf) window, and returns the
// best by maximum score. If the clock expires partway through, the result
// mixes finished and truncated subtrees; SearchWithDeadline detects this
// and discards it. Workers write only their own results[i]/counters[i]
// slot, so no synchronization beyond the errgroup join is needed.
func (s *Search) searchRoot(pos *Position, moves []Move, depth int32, clock *Clock) (best Move, bestScore int32, stats Stats) {
	type result struct {
		move  Move
		score int32
	}
	results := make([]result, len(moves))
	counters := make([]searchCounters, len(moves))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			child := pos.Clone()
			child.Apply(m)
			score := -s.negamax(&child, depth-1, 1, -InfinityScore, InfinityScore, clock, &counters[i])
			results[i] = result{m, score}
			return nil
		})
	}
	_ = g.Wait()

	bestScore = -InfinityScore
	for i, r := range results {
		stats.Nodes += counters[i].nodes
		stats.CacheHit += counters[i].cacheHit
		stats.CacheMiss += counters[i].cacheMiss
		if r.score > bestScore {
			bestScore, best = r.score, r.move
		}
	}
	return best, bestScore, stats
}

// negamax is alpha-beta search from side-to-move's point of view, backed
// by the shared transposition table. It does not implement quiescence
// search, null-move pruning, or any move-ordering heuristics beyond
// captures-first generation.
func (s *Search) negamax(pos *Position, depth, ply int32, alpha, beta int32, clock *Clock, counters *searchCounters) int32 {
	counters.nodes++
	if clock.Tick() {
		return s.eval.Evaluate(pos)
	}

	if depth <= 0 {
		return s.eval.Evaluate(pos)
	}

	hash := pos.Hash()
	if ttDepth, ttScore, ok := s.tt.Probe(hash); ok && int32(ttDepth) >= depth {
		counters.cacheHit++
		return ttScore
	}
	counters.cacheMiss++

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsCheck() {
			return MatedScore + ply
		}
		return 0
	}

	best := int32(-InfinityScore)
	for _, m := range moves {
		child := pos.Clone()
		child.Apply(m)
		score := -s.negamax(&child, depth-1, ply+1, -beta, -alpha, clock, counters)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			// A cutoff score is only a lower bound, and the table carries no
			// bound flag to say so; don't store it.
			return best
		}
	}

	s.tt.Store(hash, int(depth), best)
	return best
}
