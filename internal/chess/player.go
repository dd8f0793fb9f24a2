// Package chess provides the core chess data model: squares, pieces, moves
// and the board with its per-square attack counters.
package chess

// Player identifies one of the two sides.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// index is the player's slot in a seen-by counter pair.
func (p Player) index() int {
	return int(p)
}

// Result is the terminal outcome of a game.
type Result int

const (
	WhiteWins Result = iota
	BlackWins
	Draw
)

// String returns the conventional score notation for a result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	default:
		return "1/2-1/2"
	}
}
