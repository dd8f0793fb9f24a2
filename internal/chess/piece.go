package chess

// PieceName is one of the six piece kinds. The zero value NoPiece marks an
// empty square.
type PieceName int

const (
	NoPiece PieceName = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (n PieceName) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(n) < len(names) {
		return names[n]
	}
	return "Unknown"
}

// Letter returns the uppercase FEN letter for the piece kind.
func (n PieceName) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(n) < len(letters) {
		return letters[n]
	}
	return '?'
}

// Piece is a piece on the board: its owner, its kind, and whether it has
// ever left its starting square. The moved flag is monotonic: once set it
// never reverts.
type Piece struct {
	owner Player
	name  PieceName
	moved bool
}

// NewPiece creates a piece.
func NewPiece(owner Player, name PieceName, moved bool) Piece {
	return Piece{owner: owner, name: name, moved: moved}
}

// Owner returns the piece's owner.
func (p Piece) Owner() Player {
	return p.owner
}

// Name returns the piece's kind.
func (p Piece) Name() PieceName {
	return p.name
}

// Moved reports whether the piece has ever moved.
func (p Piece) Moved() bool {
	return p.moved
}

// NotMoved reports whether the piece has never moved. Used by castling and
// pawn double-push eligibility.
func (p Piece) NotMoved() bool {
	return !p.moved
}

// withMoved returns the piece with its moved flag set.
func (p Piece) withMoved() Piece {
	p.moved = true
	return p
}

// Equal reports whether two pieces are the same piece for board-comparison
// purposes. The moved flag is deliberately ignored.
func (p Piece) Equal(other Piece) bool {
	return p.owner == other.owner && p.name == other.name
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.name.Letter()
	if p.owner == Black {
		letter += 'a' - 'A'
	}
	return letter
}
