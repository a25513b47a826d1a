// Package board implements a generic coordinate and position layer for
// chess-like games. A variant supplies the square encoding, the file/rank
// codecs and the piece and color vocabularies; everything else (square
// arithmetic, iteration, moves, occupancy bookkeeping) is shared.
package board

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Storage is the numeric type used to encode a square's linear index.
type Storage interface {
	constraints.Unsigned
}

var (
	// ErrOutOfRange is returned when a square or coordinate lies outside the board.
	ErrOutOfRange = errors.New("board: square out of range")

	// ErrCapacityExceeded is returned when a board's square count cannot be
	// represented by its storage numeral.
	ErrCapacityExceeded = errors.New("board: capacity exceeded")
)

// maxStorage returns the largest value representable by S.
func maxStorage[S Storage]() S {
	return ^S(0)
}

// CheckCapacity reports whether a board with the given side length can be
// indexed by S. The exclusive iteration bound side*side must itself fit.
func CheckCapacity[S Storage](side S) error {
	if side == 0 {
		return fmt.Errorf("%w: side length must be positive", ErrCapacityExceeded)
	}
	if side > maxStorage[S]()/side {
		return fmt.Errorf("%w: %dx%d squares do not fit in a numeral with max %d",
			ErrCapacityExceeded, side, side, maxStorage[S]())
	}
	return nil
}
