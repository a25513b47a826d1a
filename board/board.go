package board

import "iter"

// Board is the contract a concrete variant satisfies. It is the only
// integration point between this package and game-specific logic: engines,
// renderers and stores drive a variant through these methods alone.
//
// Type parameters: G is the variant's geometry, S its storage numeral,
// F and R its file and rank codecs, P and C its piece and color vocabularies.
type Board[G Geometry[S, F, R], S Storage, F Coord[S], R Coord[S], P Piece, C Color] interface {
	// SideLen returns the number of squares along one axis.
	SideLen() S

	// IsMoveLegal decides full legality of m on the current position,
	// including rules beyond raw movement such as king safety.
	IsMoveLegal(m Move[G, S, F, R]) bool

	// RawMovesForPiece yields the moves the piece on pos can make by its
	// movement pattern alone. The sequence may contain moves that are
	// illegal because they expose the mover's king. It yields nothing for
	// an empty or off-board square.
	RawMovesForPiece(pos Square[G, S, F, R]) iter.Seq[Move[G, S, F, R]]

	// AttackersOf returns, in ascending order, the squares holding a piece
	// with a legal move to target.
	AttackersOf(target Square[G, S, F, R]) []Square[G, S, F, R]

	// Squares enumerates every square in ascending linear order.
	Squares() *SquareIter[G, S, F, R]

	// Get returns the slot at pos.
	Get(pos Square[G, S, F, R]) (Slot[P, C], error)

	// Set stores slot at pos and returns the slot it replaced.
	Set(pos Square[G, S, F, R], slot Slot[P, C]) (Slot[P, C], error)

	// Swap exchanges the slot at pos with *slot.
	Swap(pos Square[G, S, F, R], slot *Slot[P, C]) error
}

// Factory constructs boards of one variant.
type Factory[B any] interface {
	// New returns a board with every square empty.
	New() B

	// Default returns a board with the variant's starting layout.
	Default() B
}
