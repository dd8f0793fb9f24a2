package chess

// MoveKind discriminates the seven move shapes.
type MoveKind int

const (
	QuietMove MoveKind = iota
	CaptureMove
	EnPassantMove
	ShortCastleMove
	LongCastleMove
	PromotionMove
	CapturePromotionMove
)

// Move describes a single move as a discriminator plus the union of payload
// fields. Which fields are meaningful depends on Kind:
//
//   - QuietMove, CaptureMove, EnPassantMove: From and To.
//   - ShortCastleMove, LongCastleMove: no squares; the mover and the castling
//     side determine the four affected squares.
//   - PromotionMove: To and Promotion; the origin is inferred from To and the
//     mover's direction.
//   - CapturePromotionMove: From, To and Promotion.
//
// Use the constructors rather than building Move values by hand.
type Move struct {
	Kind      MoveKind
	From      SquareID
	To        SquareID
	Promotion PieceName
}

// NewMove creates a quiet move. Pawn pushes, including the double push,
// belong here.
func NewMove(from, to SquareID) Move {
	return Move{Kind: QuietMove, From: from, To: to}
}

// NewCapture creates a capture of the enemy piece on to.
func NewCapture(from, to SquareID) Move {
	return Move{Kind: CaptureMove, From: from, To: to}
}

// NewEnPassant creates a pawn capture onto the empty en-passant target; the
// captured pawn sits on (to.File, from.Rank).
func NewEnPassant(from, to SquareID) Move {
	return Move{Kind: EnPassantMove, From: from, To: to}
}

// NewShortCastle creates a kingside castling move.
func NewShortCastle() Move {
	return Move{Kind: ShortCastleMove}
}

// NewLongCastle creates a queenside castling move.
func NewLongCastle() Move {
	return Move{Kind: LongCastleMove}
}

// NewPromotion creates a pawn push promotion onto to. The promoted kind is
// one of knight, bishop, rook or queen.
func NewPromotion(to SquareID, promoted PieceName) Move {
	return Move{Kind: PromotionMove, To: to, Promotion: promoted}
}

// NewCapturePromotion creates a capturing promotion.
func NewCapturePromotion(from, to SquareID, promoted PieceName) Move {
	return Move{Kind: CapturePromotionMove, From: from, To: to, Promotion: promoted}
}

// String returns a coordinate rendering of the move, e.g. "e2-e4", "f3xf7",
// "g8=Q" or "O-O".
func (m Move) String() string {
	switch m.Kind {
	case QuietMove:
		return m.From.Name() + "-" + m.To.Name()
	case CaptureMove:
		return m.From.Name() + "x" + m.To.Name()
	case EnPassantMove:
		return m.From.Name() + "x" + m.To.Name() + " e.p."
	case ShortCastleMove:
		return "O-O"
	case LongCastleMove:
		return "O-O-O"
	case PromotionMove:
		return m.To.Name() + "=" + string(m.Promotion.Letter())
	case CapturePromotionMove:
		return m.From.Name() + "x" + m.To.Name() + "=" + string(m.Promotion.Letter())
	}
	return "?"
}
