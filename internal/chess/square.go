package chess

// File is a board column, a through h.
type File int

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a board row, 1 through 8.
type Rank int

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// SquareID identifies one of the 64 board squares.
type SquareID struct {
	File File
	Rank Rank
}

// SquareAt returns the identity of the i-th square, counting from a1 (0),
// b1 (1), ... up to h8 (63). Values 64 and bigger wrap via mod.
func SquareAt(i int) SquareID {
	v := i % 64
	return SquareID{File: File(v % 8), Rank: Rank(v / 8)}
}

// SquareFromName returns the square named in algebraic notation ("e4").
// The second return value reports whether the name was well formed.
func SquareFromName(name string) (SquareID, bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return SquareID{}, false
	}
	return SquareID{File: File(name[0] - 'a'), Rank: Rank(name[1] - '1')}, true
}

// Index returns the square's position in a 64-element array, a1 = 0, h8 = 63.
func (id SquareID) Index() int {
	return int(id.Rank)*8 + int(id.File)
}

// Name returns the algebraic name of the square, e.g. "e4".
func (id SquareID) Name() string {
	return string([]byte{byte('a' + id.File), byte('1' + id.Rank)})
}

// Color returns the fixed color of the square.
func (id SquareID) Color() SquareColor {
	if (int(id.File)+int(id.Rank))%2 == 0 {
		return DarkSquare
	}
	return LightSquare
}

// AddOffset returns the square reached by adding the offset, and whether that
// square is on the board. Off-board results are not an error; move generation
// relies on them to prune.
func (id SquareID) AddOffset(off SquareOffset) (SquareID, bool) {
	f := int(id.File) + off.DFile
	r := int(id.Rank) + off.DRank
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SquareID{}, false
	}
	return SquareID{File: File(f), Rank: Rank(r)}, true
}

// Sub returns the offset that takes other to id.
func (id SquareID) Sub(other SquareID) SquareOffset {
	return SquareOffset{
		DFile: int(id.File) - int(other.File),
		DRank: int(id.Rank) - int(other.Rank),
	}
}

// SquareOffset is a signed (file, rank) displacement.
type SquareOffset struct {
	DFile int
	DRank int
}

// SquareColor is the fixed light/dark color of a square.
type SquareColor int

const (
	DarkSquare SquareColor = iota
	LightSquare
)

// Offset tables shared by move generation and the attack-map recompute.
var (
	KnightOffsets = []SquareOffset{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	KingOffsets = []SquareOffset{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	DiagonalDirections = []SquareOffset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	StraightDirections = []SquareOffset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Square is one board cell: identity, fixed color, the occupying piece if
// any, and a seen-by counter per player.
type Square struct {
	id     SquareID
	color  SquareColor
	piece  Piece
	seenBy [2]uint8
}

// ID returns the square's identity.
func (s *Square) ID() SquareID {
	return s.id
}

// Color returns the square's fixed color.
func (s *Square) Color() SquareColor {
	return s.color
}

// Piece returns the occupying piece and whether the square is occupied.
func (s *Square) Piece() (Piece, bool) {
	return s.piece, s.piece.name != NoPiece
}

// SetPiece places a piece on the square, replacing any occupant.
func (s *Square) SetPiece(p Piece) {
	s.piece = p
}

// ClearPiece empties the square.
func (s *Square) ClearPiece() {
	s.piece = Piece{}
}

// Seen returns the seen-by counters: attacks by White, attacks by Black.
func (s *Square) Seen() [2]uint8 {
	return s.seenBy
}

// IsSeenBy reports whether at least one of the player's pieces attacks
// this square.
func (s *Square) IsSeenBy(p Player) bool {
	return s.seenBy[p.index()] > 0
}

// NotSeenBy reports whether none of the player's pieces attack this square.
func (s *Square) NotSeenBy(p Player) bool {
	return s.seenBy[p.index()] == 0
}

// ClearSeen zeroes both seen-by counters.
func (s *Square) ClearSeen() {
	s.seenBy = [2]uint8{}
}

// AddSeen adds n attacks by the given player.
func (s *Square) AddSeen(p Player, n uint8) {
	s.seenBy[p.index()] += n
}
