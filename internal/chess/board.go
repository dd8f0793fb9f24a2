package chess

import (
	"fmt"
	"strings"
)

// Board is the 64-square grid. It is a plain value: copying a Board yields
// an independent position, which the legality filter relies on.
type Board struct {
	squares [64]Square
}

// backRankNames is the piece order on each player's first rank.
var backRankNames = []PieceName{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position with all moved flags false
// and the attack map computed.
func NewBoard() Board {
	var b Board
	for i := range b.squares {
		id := SquareAt(i)
		b.squares[i] = Square{id: id, color: id.Color()}
	}
	for f := FileA; f <= FileH; f++ {
		name := backRankNames[f]
		b.squares[SquareID{f, Rank1}.Index()].SetPiece(NewPiece(White, name, false))
		b.squares[SquareID{f, Rank2}.Index()].SetPiece(NewPiece(White, Pawn, false))
		b.squares[SquareID{f, Rank7}.Index()].SetPiece(NewPiece(Black, Pawn, false))
		b.squares[SquareID{f, Rank8}.Index()].SetPiece(NewPiece(Black, name, false))
	}
	b.RecomputeSeen()
	return b
}

// SquareByID returns the square with the given identity.
func (b *Board) SquareByID(id SquareID) *Square {
	return &b.squares[id.Index()]
}

// SquareByIndex returns the i-th square, a1 = 0 through h8 = 63.
func (b *Board) SquareByIndex(i int) *Square {
	return &b.squares[i]
}

// KingSquare returns the square holding the player's king. A board missing
// that king is a contract violation and panics.
func (b *Board) KingSquare(p Player) SquareID {
	for i := range b.squares {
		piece, ok := b.squares[i].Piece()
		if ok && piece.Name() == King && piece.Owner() == p {
			return b.squares[i].ID()
		}
	}
	panic(fmt.Sprintf("board has no %v king", p))
}

// Equal reports whether two boards hold the same pieces on the same squares.
// Moved flags and seen-by counters are ignored.
func (b *Board) Equal(other *Board) bool {
	for i := range b.squares {
		p1, ok1 := b.squares[i].Piece()
		p2, ok2 := other.squares[i].Piece()
		if ok1 != ok2 {
			return false
		}
		if ok1 && !p1.Equal(p2) {
			return false
		}
	}
	return true
}

// MakeMove mutates the board according to the move and recomputes the attack
// map. The move must be well formed for the current position; applying a
// foreign move (e.g. moving from an empty square) is a caller bug.
func (b *Board) MakeMove(m Move, mover Player) {
	switch m.Kind {
	case QuietMove, CaptureMove:
		from := b.SquareByID(m.From)
		piece, _ := from.Piece()
		from.ClearPiece()
		b.SquareByID(m.To).SetPiece(piece.withMoved())

	case EnPassantMove:
		from := b.SquareByID(m.From)
		piece, _ := from.Piece()
		from.ClearPiece()
		b.SquareByID(m.To).SetPiece(piece)
		// The captured pawn is beside the destination, on the mover's rank.
		b.SquareByID(SquareID{m.To.File, m.From.Rank}).ClearPiece()

	case ShortCastleMove:
		rank := backRank(mover)
		b.moveAndFlag(SquareID{FileE, rank}, SquareID{FileG, rank})
		b.moveAndFlag(SquareID{FileH, rank}, SquareID{FileF, rank})

	case LongCastleMove:
		rank := backRank(mover)
		b.moveAndFlag(SquareID{FileE, rank}, SquareID{FileC, rank})
		b.moveAndFlag(SquareID{FileA, rank}, SquareID{FileD, rank})

	case PromotionMove:
		origin := SquareID{m.To.File, Rank7}
		if mover == Black {
			origin.Rank = Rank2
		}
		b.SquareByID(origin).ClearPiece()
		b.SquareByID(m.To).SetPiece(NewPiece(mover, m.Promotion, true))

	case CapturePromotionMove:
		b.SquareByID(m.From).ClearPiece()
		b.SquareByID(m.To).SetPiece(NewPiece(mover, m.Promotion, true))
	}

	b.RecomputeSeen()
}

// moveAndFlag moves the piece on from to to, setting its moved flag.
func (b *Board) moveAndFlag(from, to SquareID) {
	sq := b.SquareByID(from)
	piece, _ := sq.Piece()
	sq.ClearPiece()
	b.SquareByID(to).SetPiece(piece.withMoved())
}

// backRank returns the player's first rank.
func backRank(p Player) Rank {
	if p == White {
		return Rank1
	}
	return Rank8
}

// String renders the board for debugging, rank 8 at the top. Empty squares
// show as a space on light squares and an underscore on dark ones.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		for file := FileA; file <= FileH; file++ {
			sq := b.SquareByID(SquareID{file, rank})
			if piece, ok := sq.Piece(); ok {
				sb.WriteByte(piece.Letter())
			} else if sq.Color() == LightSquare {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
