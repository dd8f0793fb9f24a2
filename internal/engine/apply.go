package engine

import (
	"github.com/blamedcloud/ChessAI/internal/chess"
	"github.com/blamedcloud/ChessAI/internal/errors"
)

// Apply plays an annotated move, mutating the game state in place: the
// en-passant target and halfmove clock are updated, the board is mutated and
// its attack map recomputed, the result is set from the annotation, the
// fullmove number advances after a Black move, and the side to move flips.
//
// The move must have been produced by LegalMoves for this exact state;
// applying anything else leaves the invariants undefined, and a fabricated
// annotation desynchronises the result from the board. Returns ErrGameOver
// if the game already has a result.
func (g *GameState) Apply(am AnnotatedMove) error {
	if g.hasResult {
		return errors.ErrGameOver
	}
	mover := g.active

	g.applyMove(am.Move)

	switch am.Annotation {
	case Checkmate:
		if mover == chess.White {
			g.setResult(chess.WhiteWins)
		} else {
			g.setResult(chess.BlackWins)
		}
	case Draw:
		g.setResult(chess.Draw)
	}

	// Fifty-move rule, counted in plies.
	if !g.hasResult && g.halfmoveClock >= 50 {
		g.setResult(chess.Draw)
	}
	return nil
}

// applyMove performs the annotation-independent part of the transition:
// clocks, en-passant bookkeeping, board mutation and turn flip. The legality
// filter uses it directly on trial copies.
func (g *GameState) applyMove(m chess.Move) {
	mover := g.active

	var movedPiece chess.Piece
	switch m.Kind {
	case chess.QuietMove, chess.CaptureMove, chess.EnPassantMove, chess.CapturePromotionMove:
		movedPiece, _ = g.board.SquareByID(m.From).Piece()
	}

	// Halfmove clock: reset on any pawn move, capture or promotion,
	// otherwise increment (castling included).
	switch m.Kind {
	case chess.CaptureMove, chess.EnPassantMove, chess.PromotionMove, chess.CapturePromotionMove:
		g.halfmoveClock = 0
	case chess.QuietMove:
		if movedPiece.Name() == chess.Pawn {
			g.halfmoveClock = 0
		} else {
			g.halfmoveClock++
		}
	default:
		g.halfmoveClock++
	}

	// A pawn double-push leaves the skipped square as the en-passant target;
	// every other move clears it.
	g.hasEPTarget = false
	if m.Kind == chess.QuietMove && movedPiece.Name() == chess.Pawn {
		if delta := m.To.Sub(m.From); delta.DRank == 2 || delta.DRank == -2 {
			skipped, _ := m.From.AddOffset(chess.SquareOffset{DFile: 0, DRank: sign(delta.DRank)})
			g.epTarget = skipped
			g.hasEPTarget = true
		}
	}

	g.board.MakeMove(m, mover)

	if mover == chess.Black {
		g.fullmoveNumber++
	}
	g.active = mover.Opponent()
}

// FindMove looks up the legal non-promotion move between two squares.
// Castling is addressed by its king squares (e1-g1, e1-c1, e8-g8, e8-c8).
// It returns ErrGameOver on a finished game and ErrIllegalMove when no such
// move exists; promotions are looked up with FindPromotion.
func (g *GameState) FindMove(from, to chess.SquareID) (AnnotatedMove, error) {
	if g.hasResult {
		return AnnotatedMove{}, errors.ErrGameOver
	}
	for _, am := range g.LegalMoves() {
		switch am.Move.Kind {
		case chess.PromotionMove, chess.CapturePromotionMove:
			continue
		}
		f, t := g.moveEndpoints(am.Move)
		if f == from && t == to {
			return am, nil
		}
	}
	return AnnotatedMove{}, errors.Wrapf(errors.ErrIllegalMove, "no move %s-%s", from.Name(), to.Name())
}

// FindPromotion looks up the legal promotion from from to to with the given
// promoted kind.
func (g *GameState) FindPromotion(from, to chess.SquareID, promoted chess.PieceName) (AnnotatedMove, error) {
	if g.hasResult {
		return AnnotatedMove{}, errors.ErrGameOver
	}
	for _, am := range g.LegalMoves() {
		switch am.Move.Kind {
		case chess.PromotionMove, chess.CapturePromotionMove:
		default:
			continue
		}
		if am.Move.Promotion != promoted {
			continue
		}
		f, t := g.moveEndpoints(am.Move)
		if f == from && t == to {
			return am, nil
		}
	}
	return AnnotatedMove{}, errors.Wrapf(errors.ErrIllegalMove, "no promotion %s-%s=%c", from.Name(), to.Name(), promoted.Letter())
}

// moveEndpoints resolves the origin and destination squares of a move,
// materialising the squares that castling and push-promotions leave implicit.
func (g *GameState) moveEndpoints(m chess.Move) (chess.SquareID, chess.SquareID) {
	rank := chess.Rank1
	if g.active == chess.Black {
		rank = chess.Rank8
	}
	switch m.Kind {
	case chess.ShortCastleMove:
		return chess.SquareID{File: chess.FileE, Rank: rank}, chess.SquareID{File: chess.FileG, Rank: rank}
	case chess.LongCastleMove:
		return chess.SquareID{File: chess.FileE, Rank: rank}, chess.SquareID{File: chess.FileC, Rank: rank}
	case chess.PromotionMove:
		origin := chess.SquareID{File: m.To.File, Rank: chess.Rank7}
		if g.active == chess.Black {
			origin.Rank = chess.Rank2
		}
		return origin, m.To
	default:
		return m.From, m.To
	}
}
