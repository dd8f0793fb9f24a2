package chess

// RecomputeSeen rebuilds every square's seen-by counters from the current
// piece placement. It is called after every board mutation; a full recompute
// is a few hundred increments and keeps the counters trivially consistent.
func (b *Board) RecomputeSeen() {
	for i := range b.squares {
		b.squares[i].ClearSeen()
	}
	for i := range b.squares {
		sq := &b.squares[i]
		piece, ok := sq.Piece()
		if !ok {
			continue
		}
		owner := piece.Owner()
		switch piece.Name() {
		case Pawn:
			b.spreadPawn(sq.ID(), owner)
		case Knight:
			b.spreadJumps(sq.ID(), owner, KnightOffsets)
		case Bishop:
			b.spreadRays(sq.ID(), owner, DiagonalDirections)
		case Rook:
			b.spreadRays(sq.ID(), owner, StraightDirections)
		case Queen:
			b.spreadRays(sq.ID(), owner, DiagonalDirections)
			b.spreadRays(sq.ID(), owner, StraightDirections)
		case King:
			b.spreadJumps(sq.ID(), owner, KingOffsets)
		}
	}
}

// spreadPawn marks the two forward diagonals. Pawns attack only diagonals,
// never the square in front of them.
func (b *Board) spreadPawn(from SquareID, owner Player) {
	forward := 1
	if owner == Black {
		forward = -1
	}
	for _, df := range []int{-1, 1} {
		if target, ok := from.AddOffset(SquareOffset{df, forward}); ok {
			b.SquareByID(target).AddSeen(owner, 1)
		}
	}
}

// spreadJumps marks each reachable offset square (knights and kings).
func (b *Board) spreadJumps(from SquareID, owner Player, offsets []SquareOffset) {
	for _, off := range offsets {
		if target, ok := from.AddOffset(off); ok {
			b.SquareByID(target).AddSeen(owner, 1)
		}
	}
}

// spreadRays walks each direction outward, marking every visited square.
// The first occupied square is still marked, then the ray stops.
func (b *Board) spreadRays(from SquareID, owner Player, directions []SquareOffset) {
	for _, dir := range directions {
		target := from
		for {
			next, ok := target.AddOffset(dir)
			if !ok {
				break
			}
			target = next
			sq := b.SquareByID(target)
			sq.AddSeen(owner, 1)
			if _, occupied := sq.Piece(); occupied {
				break
			}
		}
	}
}
