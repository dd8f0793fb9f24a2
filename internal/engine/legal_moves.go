package engine

import (
	"github.com/blamedcloud/ChessAI/internal/chess"
)

// Annotation describes the position a legal move produces.
type Annotation int

const (
	// None: the opponent is not in check and has a reply.
	None Annotation = iota
	// Check: the opponent's king is attacked and they have a reply.
	Check
	// Checkmate: the opponent's king is attacked and they have no reply.
	Checkmate
	// Draw: the opponent has no reply and is not in check (stalemate).
	Draw
)

// String returns the string representation of an annotation.
func (a Annotation) String() string {
	switch a {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	}
	return "none"
}

// AnnotatedMove is a legal move together with the status of the position it
// produces. Annotated moves are produced by LegalMoves and consumed by Apply;
// they have no identity beyond one turn.
type AnnotatedMove struct {
	Move       chess.Move
	Annotation Annotation
}

// String returns the move text.
func (am AnnotatedMove) String() string {
	return am.Move.String()
}

// LegalMoves returns every legal move for the side to move, annotated. Each
// pseudo-legal move is tried on a copy of the state; moves leaving the
// mover's own king attacked are discarded, and the survivors are annotated
// by inspecting the copy. The order is generator-determined and stable for
// a fixed position. If the game already has a result, there are no moves.
func (g *GameState) LegalMoves() []AnnotatedMove {
	if g.hasResult {
		return nil
	}
	mover := g.active
	opponent := mover.Opponent()

	pseudo := g.generateMoves()
	legal := make([]AnnotatedMove, 0, len(pseudo))
	for _, m := range pseudo {
		trial := g.Copy()
		trial.applyMove(m)
		if trial.kingAttacked(mover, opponent) {
			continue // self-check
		}

		inCheck := trial.kingAttacked(opponent, mover)
		hasReply := trial.hasLegalReply()
		annotation := None
		switch {
		case inCheck && hasReply:
			annotation = Check
		case inCheck && !hasReply:
			annotation = Checkmate
		case !inCheck && !hasReply:
			annotation = Draw
		}
		legal = append(legal, AnnotatedMove{Move: m, Annotation: annotation})
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. Unlike LegalMoves it short-circuits on the first one found.
func (g *GameState) HasLegalMoves() bool {
	if g.hasResult {
		return false
	}
	return g.hasLegalReply()
}

// hasLegalReply reports whether any pseudo-legal move of the side to move
// survives the self-check filter.
func (g *GameState) hasLegalReply() bool {
	mover := g.active
	opponent := mover.Opponent()
	for _, m := range g.generateMoves() {
		trial := g.Copy()
		trial.applyMove(m)
		if !trial.kingAttacked(mover, opponent) {
			return true
		}
	}
	return false
}

// legalUnannotated returns the legal moves without computing annotations.
// This is the cheap path used by perft.
func (g *GameState) legalUnannotated() []chess.Move {
	mover := g.active
	opponent := mover.Opponent()
	var legal []chess.Move
	for _, m := range g.generateMoves() {
		trial := g.Copy()
		trial.applyMove(m)
		if !trial.kingAttacked(mover, opponent) {
			legal = append(legal, m)
		}
	}
	return legal
}

// kingAttacked reports whether owner's king square is attacked by the given
// player. This is the engine's sole check-detection primitive.
func (g *GameState) kingAttacked(owner, by chess.Player) bool {
	kingSq := g.board.KingSquare(owner)
	return g.board.SquareByID(kingSq).IsSeenBy(by)
}
