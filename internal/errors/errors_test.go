package errors

import (
	"errors"
	"fmt"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be
// detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to play move: %w", ErrIllegalMove)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Errorf("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrInvalidFEN, "placement field")
	if !Is(err, ErrInvalidFEN) {
		t.Error("Wrap should preserve the sentinel")
	}
	if got, want := err.Error(), "placement field: invalid FEN string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrIllegalMove, "no move %s-%s", "e2", "e5")
	if !Is(err, ErrIllegalMove) {
		t.Error("Wrapf should preserve the sentinel")
	}
	if got, want := err.Error(), "no move e2-e5: illegal move"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

type plyError struct {
	ply int
}

func (e *plyError) Error() string {
	return fmt.Sprintf("ply %d", e.ply)
}

func TestIsAndAs(t *testing.T) {
	if !Is(Wrap(ErrGameOver, "apply"), ErrGameOver) {
		t.Error("Is should see through Wrap")
	}

	wrapped := Wrap(&plyError{ply: 7}, "outer")
	var pe *plyError
	if !As(wrapped, &pe) {
		t.Fatal("As should find the concrete error in the chain")
	}
	if pe.ply != 7 {
		t.Errorf("ply = %d, want 7", pe.ply)
	}
}
