package testutil

import (
	"strings"

	"github.com/blamedcloud/ChessAI/internal/errors"
)

// ParsePlacement parses the piece-placement field of a FEN string into a
// 64-entry array of FEN letters indexed by square (a1 = 0 .. h8 = 63), with
// zero bytes for empty squares. The engine itself has no FEN parser; this
// exists so tests can round-trip what the renderer produced.
func ParsePlacement(field string) ([64]byte, error) {
	var out [64]byte
	rank, file := 7, 0
	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '/':
			if file != 8 {
				return out, errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
			}
			rank--
			file = 0
			if rank < 0 {
				return out, errors.Wrap(errors.ErrInvalidFEN, "too many ranks")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return out, errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
			}
		case strings.IndexByte("PNBRQKpnbrqk", c) >= 0:
			if file > 7 {
				return out, errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
			}
			out[rank*8+file] = c
			file++
		default:
			return out, errors.Wrapf(errors.ErrInvalidFEN, "bad placement character %q", c)
		}
	}
	if rank != 0 || file != 8 {
		return out, errors.Wrap(errors.ErrInvalidFEN, "truncated placement")
	}
	return out, nil
}
