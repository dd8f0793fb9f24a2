// Package errors provides sentinel errors for the chess engine. It defines
// the conditions callers are expected to branch on with errors.Is(), plus
// small wrapping helpers that preserve the underlying error.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrIllegalMove indicates a requested move that is not legal in the
	// current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates an operation on a game that already has a result.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN field.
	ErrInvalidFEN = errors.New("invalid FEN string")
)

// Is reports whether any error in err's chain matches target. It is
// re-exported so callers of this package do not also need the standard
// library errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, re-exported
// for the same reason as Is.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
