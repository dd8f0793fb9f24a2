package engine

import (
	"testing"

	"github.com/blamedcloud/ChessAI/internal/testutil"
)

// Known node counts from the starting position.
var perftStart = []uint64{1, 20, 400, 8902, 197281}

func TestPerftStartingPosition(t *testing.T) {
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	for depth := 0; depth <= maxDepth; depth++ {
		g := NewGame()
		if got := Perft(g, depth); got != perftStart[depth] {
			t.Errorf("Perft(%d) = %d, want %d", depth, got, perftStart[depth])
		}
	}
}

func TestPerftParallelMatchesSerial(t *testing.T) {
	g := NewGame()
	testutil.AssertEqual(t, PerftParallel(g, 1, 0), perftStart[1], "depth 1")
	testutil.AssertEqual(t, PerftParallel(g, 3, 4), perftStart[3], "depth 3")
}

func TestPerftAfterMoves(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "c7c5")
	// Both sides opened one pawn line; the counts stay consistent between
	// the serial and parallel walkers.
	serial := Perft(g, 3)
	parallel := PerftParallel(g, 3, 2)
	testutil.AssertEqual(t, parallel, serial, "serial vs parallel")
}
