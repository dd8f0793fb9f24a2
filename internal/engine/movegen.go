package engine

import (
	"github.com/blamedcloud/ChessAI/internal/chess"
)

// promotionChoices are the kinds a pawn may promote to, in generation order.
var promotionChoices = []chess.PieceName{chess.Knight, chess.Bishop, chess.Rook, chess.Queen}

// generateMoves produces the pseudo-legal moves for the side to move: the
// piece-movement rules without the constraint that the mover's king must not
// end up attacked. That filtering is the legality pass's job.
func (g *GameState) generateMoves() []chess.Move {
	var moves []chess.Move
	for i := 0; i < 64; i++ {
		sq := g.board.SquareByIndex(i)
		piece, ok := sq.Piece()
		if !ok || piece.Owner() != g.active {
			continue
		}
		switch piece.Name() {
		case chess.Pawn:
			g.addPawnMoves(sq.ID(), piece, &moves)
		case chess.Knight:
			g.addJumpMoves(sq.ID(), chess.KnightOffsets, &moves)
		case chess.Bishop:
			g.addRayMoves(sq.ID(), chess.DiagonalDirections, &moves)
		case chess.Rook:
			g.addRayMoves(sq.ID(), chess.StraightDirections, &moves)
		case chess.Queen:
			g.addRayMoves(sq.ID(), chess.DiagonalDirections, &moves)
			g.addRayMoves(sq.ID(), chess.StraightDirections, &moves)
		case chess.King:
			g.addKingMoves(sq.ID(), piece, &moves)
		}
	}
	return moves
}

// addPawnMoves generates pushes, double pushes, captures, promotions and
// en-passant captures for the pawn on id.
func (g *GameState) addPawnMoves(id chess.SquareID, piece chess.Piece, moves *[]chess.Move) {
	forward := chess.SquareOffset{DFile: 0, DRank: 1}
	promotionRank := chess.Rank8
	if g.active == chess.Black {
		forward.DRank = -1
		promotionRank = chess.Rank1
	}

	// Pushes. A pawn can never sit on its own promotion rank, so the single
	// push is always on the board.
	push, _ := id.AddOffset(forward)
	if _, occupied := g.board.SquareByID(push).Piece(); !occupied {
		if push.Rank == promotionRank {
			for _, name := range promotionChoices {
				*moves = append(*moves, chess.NewPromotion(push, name))
			}
		} else {
			*moves = append(*moves, chess.NewMove(id, push))
			if piece.NotMoved() {
				double, _ := push.AddOffset(forward)
				if _, occupied := g.board.SquareByID(double).Piece(); !occupied {
					*moves = append(*moves, chess.NewMove(id, double))
				}
			}
		}
	}

	// Captures on the two forward diagonals, including en passant onto the
	// empty target square.
	for _, df := range []int{-1, 1} {
		target, ok := push.AddOffset(chess.SquareOffset{DFile: df, DRank: 0})
		if !ok {
			continue
		}
		occupant, occupied := g.board.SquareByID(target).Piece()
		switch {
		case occupied && occupant.Owner() == g.active.Opponent():
			if target.Rank == promotionRank {
				for _, name := range promotionChoices {
					*moves = append(*moves, chess.NewCapturePromotion(id, target, name))
				}
			} else {
				*moves = append(*moves, chess.NewCapture(id, target))
			}
		case !occupied && g.hasEPTarget && g.epTarget == target:
			*moves = append(*moves, chess.NewEnPassant(id, target))
		}
	}
}

// addJumpMoves generates knight moves: empty squares become quiet moves,
// enemy-occupied squares become captures.
func (g *GameState) addJumpMoves(id chess.SquareID, offsets []chess.SquareOffset, moves *[]chess.Move) {
	for _, off := range offsets {
		target, ok := id.AddOffset(off)
		if !ok {
			continue
		}
		occupant, occupied := g.board.SquareByID(target).Piece()
		if !occupied {
			*moves = append(*moves, chess.NewMove(id, target))
		} else if occupant.Owner() != g.active {
			*moves = append(*moves, chess.NewCapture(id, target))
		}
	}
}

// addRayMoves generates sliding moves: walk each direction outward, emitting
// quiet moves until the first occupied square, which is a capture if enemy.
func (g *GameState) addRayMoves(id chess.SquareID, directions []chess.SquareOffset, moves *[]chess.Move) {
	for _, dir := range directions {
		target := id
		for {
			next, ok := target.AddOffset(dir)
			if !ok {
				break
			}
			target = next
			occupant, occupied := g.board.SquareByID(target).Piece()
			if !occupied {
				*moves = append(*moves, chess.NewMove(id, target))
				continue
			}
			if occupant.Owner() != g.active {
				*moves = append(*moves, chess.NewCapture(id, target))
			}
			break
		}
	}
}

// addKingMoves generates king steps and castling. King steps are pre-filtered
// against the opponent's attack map; the legality pass re-checks them along
// with everything else.
func (g *GameState) addKingMoves(id chess.SquareID, piece chess.Piece, moves *[]chess.Move) {
	opponent := g.active.Opponent()
	for _, off := range chess.KingOffsets {
		target, ok := id.AddOffset(off)
		if !ok {
			continue
		}
		sq := g.board.SquareByID(target)
		if sq.IsSeenBy(opponent) {
			continue
		}
		occupant, occupied := sq.Piece()
		if !occupied {
			*moves = append(*moves, chess.NewMove(id, target))
		} else if occupant.Owner() != g.active {
			*moves = append(*moves, chess.NewCapture(id, target))
		}
	}

	// Castling: the king must be unmoved and not attacked. The path squares
	// the king crosses must be empty and unattacked; on the long side the
	// b-square must merely be empty.
	if piece.Moved() || g.board.SquareByID(id).IsSeenBy(opponent) {
		return
	}
	rank := id.Rank

	if g.castlingRookReady(chess.SquareID{File: chess.FileH, Rank: rank}) &&
		g.squareFreeAndSafe(chess.SquareID{File: chess.FileF, Rank: rank}, opponent) &&
		g.squareFreeAndSafe(chess.SquareID{File: chess.FileG, Rank: rank}, opponent) {
		*moves = append(*moves, chess.NewShortCastle())
	}

	if g.castlingRookReady(chess.SquareID{File: chess.FileA, Rank: rank}) &&
		g.squareFreeAndSafe(chess.SquareID{File: chess.FileD, Rank: rank}, opponent) &&
		g.squareFreeAndSafe(chess.SquareID{File: chess.FileC, Rank: rank}, opponent) {
		if _, occupied := g.board.SquareByID(chess.SquareID{File: chess.FileB, Rank: rank}).Piece(); !occupied {
			*moves = append(*moves, chess.NewLongCastle())
		}
	}
}

// castlingRookReady reports whether id holds an unmoved rook.
func (g *GameState) castlingRookReady(id chess.SquareID) bool {
	piece, ok := g.board.SquareByID(id).Piece()
	return ok && piece.Name() == chess.Rook && piece.NotMoved()
}

// squareFreeAndSafe reports whether the square is empty and not attacked by
// the given player.
func (g *GameState) squareFreeAndSafe(id chess.SquareID, by chess.Player) bool {
	sq := g.board.SquareByID(id)
	if _, occupied := sq.Piece(); occupied {
		return false
	}
	return sq.NotSeenBy(by)
}
