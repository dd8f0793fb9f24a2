package engine

import (
	"fmt"
	"strings"

	"github.com/blamedcloud/ChessAI/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN renders the position as the canonical six-field Forsyth-Edwards
// Notation: piece placement, side to move, castling rights, en-passant
// target, halfmove clock and fullmove number.
func (g *GameState) FEN() string {
	var sb strings.Builder
	g.writePlacement(&sb)
	sb.WriteByte(' ')
	if g.active == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	g.writeCastling(&sb)
	sb.WriteByte(' ')
	if g.hasEPTarget {
		sb.WriteString(g.epTarget.Name())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", g.halfmoveClock, g.fullmoveNumber)
	return sb.String()
}

// writePlacement writes the piece placement field: ranks 8 down to 1 joined
// by '/', runs of empty squares as a single digit.
func (g *GameState) writePlacement(sb *strings.Builder) {
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		empty := 0
		for file := chess.FileA; file <= chess.FileH; file++ {
			piece, ok := g.board.SquareByID(chess.SquareID{File: file, Rank: rank}).Piece()
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes the castling availability field: KQkq in that order,
// a letter present while the corresponding king and rook are both unmoved.
func (g *GameState) writeCastling(sb *strings.Builder) {
	any := false
	write := func(letter byte, player chess.Player, rookFile chess.File) {
		if g.castlingAvailable(player, rookFile) {
			sb.WriteByte(letter)
			any = true
		}
	}
	write('K', chess.White, chess.FileH)
	write('Q', chess.White, chess.FileA)
	write('k', chess.Black, chess.FileH)
	write('q', chess.Black, chess.FileA)
	if !any {
		sb.WriteByte('-')
	}
}

// castlingAvailable reports whether the player's king and the rook on the
// given file are both present, of the right kind, and unmoved.
func (g *GameState) castlingAvailable(player chess.Player, rookFile chess.File) bool {
	rank := chess.Rank1
	if player == chess.Black {
		rank = chess.Rank8
	}
	king, ok := g.board.SquareByID(chess.SquareID{File: chess.FileE, Rank: rank}).Piece()
	if !ok || king.Name() != chess.King || king.Owner() != player || king.Moved() {
		return false
	}
	rook, ok := g.board.SquareByID(chess.SquareID{File: rookFile, Rank: rank}).Piece()
	return ok && rook.Name() == chess.Rook && rook.Owner() == player && rook.NotMoved()
}
