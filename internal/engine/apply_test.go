package engine

import (
	"testing"

	"github.com/blamedcloud/ChessAI/internal/chess"
	"github.com/blamedcloud/ChessAI/internal/errors"
	"github.com/blamedcloud/ChessAI/internal/testutil"
)

func TestOpeningSequence(t *testing.T) {
	g := NewGame()
	testutil.AssertEqual(t, g.FEN(), InitialFEN, "initial FEN")

	play(t, g, "e2e4")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "after e4")
	testutil.AssertEqual(t, g.Active(), chess.Black, "side to move")
	testutil.AssertEqual(t, g.FullmoveNumber(), 1, "fullmove number")
	if target, ok := g.EnPassantTarget(); !ok || target != mustSquare(t, "e3") {
		t.Errorf("en-passant target = %v, %v, want e3", target, ok)
	}

	play(t, g, "c7c5")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2", "after c5")

	play(t, g, "g1f3")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2", "after Nf3")
	testutil.AssertEqual(t, g.HalfmoveClock(), 1, "halfmove clock")
	if _, ok := g.EnPassantTarget(); ok {
		t.Error("en-passant target should be cleared")
	}
}

func TestScholarsMate(t *testing.T) {
	g := NewGame()
	am := play(t, g, "e2e4", "e7e5", "f1c4", "f8c5", "d1f3", "b8c6", "f3f7")

	testutil.AssertEqual(t, am.Annotation, Checkmate, "Qxf7 annotation")
	result, over := g.Result()
	testutil.AssertTrue(t, over, "game over")
	testutil.AssertEqual(t, result, chess.WhiteWins, "result")
	testutil.AssertEqual(t, g.FEN(),
		"r1bqk1nr/pppp1Qpp/2n5/2b1p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", "mate FEN")
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	am := play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	testutil.AssertEqual(t, am.Annotation, Checkmate, "Qh4 annotation")
	result, over := g.Result()
	testutil.AssertTrue(t, over, "game over")
	testutil.AssertEqual(t, result, chess.BlackWins, "result")
	testutil.AssertEqual(t, g.FEN(),
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", "mate FEN")
}

func TestApplyEnPassant(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "e5d6")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3", "after exd6 e.p.")
}

func TestApplyPushPromotion(t *testing.T) {
	g := NewGame()
	play(t, g, "h2h4", "g7g5", "h4g5", "h7h6", "g5g6", "h6h5", "g6g7", "g8f6")

	am, err := g.FindPromotion(mustSquare(t, "g7"), mustSquare(t, "g8"), chess.Queen)
	testutil.AssertNoError(t, err, "find g8=Q")
	testutil.AssertNoError(t, g.Apply(am), "apply g8=Q")
	testutil.AssertEqual(t, g.FEN(),
		"rnbqkbQr/pppppp2/5n2/7p/8/8/PPPPPPP1/RNBQKBNR b KQkq - 0 5", "after g8=Q")
}

func TestApplyCapturePromotion(t *testing.T) {
	g := NewGame()
	play(t, g, "a2a4", "b7b5", "a4b5", "a7a6", "b5a6", "c8b7", "a6b7", "b8c6")

	am, err := g.FindPromotion(mustSquare(t, "b7"), mustSquare(t, "a8"), chess.Queen)
	testutil.AssertNoError(t, err, "find bxa8=Q")
	testutil.AssertNoError(t, g.Apply(am), "apply bxa8=Q")
	testutil.AssertEqual(t, g.FEN(),
		"Q2qkbnr/2pppppp/2n5/8/8/8/1PPPPPPP/RNBQKBNR b KQk - 0 5", "after bxa8=Q")
}

func TestFiftyMoveRule(t *testing.T) {
	g := NewGame()
	shuffle := []string{"b1c3", "b8c6", "c3b1", "c6b8"}
	for ply := 0; ply < 50; ply++ {
		play(t, g, shuffle[ply%4])
	}

	testutil.AssertEqual(t, g.HalfmoveClock(), 50, "halfmove clock")
	result, over := g.Result()
	testutil.AssertTrue(t, over, "fifty-move draw declared")
	testutil.AssertEqual(t, result, chess.Draw, "result")

	if moves := g.LegalMoves(); moves != nil {
		t.Errorf("drawn game returned %d moves", len(moves))
	}
	err := g.Apply(AnnotatedMove{Move: chess.NewMove(mustSquare(t, "e2"), mustSquare(t, "e4"))})
	if !errors.Is(err, errors.ErrGameOver) {
		t.Errorf("Apply after draw = %v, want ErrGameOver", err)
	}
}

func TestPawnMoveResetsClock(t *testing.T) {
	g := NewGame()
	play(t, g, "g1f3", "g8f6", "f3g1", "f6g8")
	testutil.AssertEqual(t, g.HalfmoveClock(), 4, "clock after knight shuffle")
	play(t, g, "e2e4")
	testutil.AssertEqual(t, g.HalfmoveClock(), 0, "clock after pawn push")
}

func TestFindMoveErrors(t *testing.T) {
	g := NewGame()
	_, err := g.FindMove(mustSquare(t, "e2"), mustSquare(t, "e5"))
	testutil.AssertError(t, err, "e2-e5")
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("err = %v, want ErrIllegalMove", err)
	}

	// Promotions are addressed through FindPromotion only.
	play(t, g, "h2h4", "g7g5", "h4g5", "h7h6", "g5g6", "h6h5", "g6g7", "g8f6")
	_, err = g.FindMove(mustSquare(t, "g7"), mustSquare(t, "g8"))
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("FindMove on a promotion = %v, want ErrIllegalMove", err)
	}
	_, err = g.FindPromotion(mustSquare(t, "g7"), mustSquare(t, "g8"), chess.King)
	if !errors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("promotion to king = %v, want ErrIllegalMove", err)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := NewGame()
	cp := g.Copy()
	play(t, g, "e2e4")

	testutil.AssertEqual(t, cp.FEN(), InitialFEN, "copy FEN")
	testutil.AssertEqual(t, cp.Active(), chess.White, "copy side to move")
}
