package engine

import (
	"runtime"

	"github.com/blamedcloud/ChessAI/internal/chess"
	"github.com/blamedcloud/ChessAI/internal/worker"
)

// Perft counts the leaf positions of the legal-move tree to the given depth.
// It is a correctness tool for the generator and legality filter, not a
// search: every node is expanded, nothing is evaluated.
func Perft(g *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.legalUnannotated()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		trial := g.Copy()
		trial.applyMove(m)
		nodes += Perft(trial, depth-1)
	}
	return nodes
}

// PerftParallel is Perft with the root moves split over a worker pool.
// Each worker gets its own copy of the state, so no locking is needed.
// workers <= 0 means one worker per CPU.
func PerftParallel(g *GameState, depth, workers int) uint64 {
	if depth <= 1 {
		return Perft(g, depth)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	moves := g.legalUnannotated()
	if len(moves) == 0 {
		return 0
	}

	pool := worker.NewPool(workers, len(moves), func(item worker.Item) worker.Result {
		m := item.Payload.(chess.Move)
		trial := g.Copy()
		trial.applyMove(m)
		return worker.Result{Index: item.Index, Value: Perft(trial, depth-1)}
	})
	pool.Start()
	for i, m := range moves {
		pool.Submit(worker.Item{Payload: m, Index: i})
	}
	pool.Close()

	var nodes uint64
	for res := range pool.Results() {
		nodes += res.Value.(uint64)
	}
	return nodes
}
