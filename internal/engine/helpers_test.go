package engine

import (
	"testing"

	"github.com/blamedcloud/ChessAI/internal/chess"
)

func mustSquare(t *testing.T, name string) chess.SquareID {
	t.Helper()
	id, ok := chess.SquareFromName(name)
	if !ok {
		t.Fatalf("bad square name %q", name)
	}
	return id
}

// play applies a sequence of coordinate moves ("e2e4") to the game and
// returns the last annotated move it applied.
func play(t *testing.T, g *GameState, moves ...string) AnnotatedMove {
	t.Helper()
	var last AnnotatedMove
	for _, text := range moves {
		if len(text) != 4 {
			t.Fatalf("bad move text %q", text)
		}
		from := mustSquare(t, text[:2])
		to := mustSquare(t, text[2:])
		am, err := g.FindMove(from, to)
		if err != nil {
			t.Fatalf("find %s: %v", text, err)
		}
		if err := g.Apply(am); err != nil {
			t.Fatalf("apply %s: %v", text, err)
		}
		last = am
	}
	return last
}

// moveStrings renders a move list for order-insensitive comparison.
func moveStrings(moves []AnnotatedMove) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, am := range moves {
		set[am.Move.String()] = true
	}
	return set
}
