// Package engine implements the chess rules kernel: legal move enumeration,
// move application and FEN rendering on top of the data model in
// internal/chess.
package engine

import (
	"github.com/blamedcloud/ChessAI/internal/chess"
)

// GameState is a complete game position: the board, the side to move, the
// optional terminal result, the optional en-passant target, the halfmove
// clock since the last pawn move or capture, and the fullmove number.
//
// A GameState is created in the standard starting position and mutated only
// by Apply. It is not safe for concurrent mutation; callers that want to
// analyse positions in parallel work on copies.
type GameState struct {
	board          chess.Board
	active         chess.Player
	result         chess.Result
	hasResult      bool
	epTarget       chess.SquareID
	hasEPTarget    bool
	halfmoveClock  int
	fullmoveNumber int
}

// NewGame returns a game in the standard starting position, White to move.
func NewGame() *GameState {
	return &GameState{
		board:          chess.NewBoard(),
		active:         chess.White,
		fullmoveNumber: 1,
	}
}

// Board returns the current board. Treat it as read-only: mutating it
// directly desynchronises the game state.
func (g *GameState) Board() *chess.Board {
	return &g.board
}

// Active returns the side to move.
func (g *GameState) Active() chess.Player {
	return g.active
}

// Result returns the terminal result and whether the game is over.
func (g *GameState) Result() (chess.Result, bool) {
	return g.result, g.hasResult
}

// EnPassantTarget returns the en-passant target square and whether one is
// set. It is set exactly when the previous move was a pawn double-push.
func (g *GameState) EnPassantTarget() (chess.SquareID, bool) {
	return g.epTarget, g.hasEPTarget
}

// HalfmoveClock returns the number of half-moves since the last pawn move
// or capture.
func (g *GameState) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the fullmove number; it starts at 1 and increments
// after every Black move.
func (g *GameState) FullmoveNumber() int {
	return g.fullmoveNumber
}

// Copy returns an independent copy of the game state.
func (g *GameState) Copy() *GameState {
	cp := *g
	return &cp
}

// setResult records a terminal result.
func (g *GameState) setResult(r chess.Result) {
	g.result = r
	g.hasResult = true
}
