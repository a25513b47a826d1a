package board

import "fmt"

// Slot is the contents of one square: empty, or exactly one piece of one color.
type Slot[P Piece, C Color] struct {
	piece    P
	color    C
	occupied bool
}

// Empty returns an empty slot.
func Empty[P Piece, C Color]() Slot[P, C] {
	return Slot[P, C]{}
}

// NewSlot returns a slot holding the given piece and color.
func NewSlot[P Piece, C Color](piece P, color C) Slot[P, C] {
	return Slot[P, C]{piece: piece, color: color, occupied: true}
}

// IsEmpty reports whether the slot holds no piece.
func (s Slot[P, C]) IsEmpty() bool {
	return !s.occupied
}

// Occupant returns the piece and color in the slot, and false if it is empty.
func (s Slot[P, C]) Occupant() (P, C, bool) {
	return s.piece, s.color, s.occupied
}

// Piece returns the occupying piece, or the zero piece if the slot is empty.
func (s Slot[P, C]) Piece() P {
	return s.piece
}

// Color returns the occupant's color, or the zero color if the slot is empty.
func (s Slot[P, C]) Color() C {
	return s.color
}

// Is reports whether the slot holds a piece of the given color.
func (s Slot[P, C]) Is(color C) bool {
	return s.occupied && s.color == color
}

func (s Slot[P, C]) String() string {
	if !s.occupied {
		return "empty"
	}
	return fmt.Sprintf("%v %v", s.color, s.piece)
}
